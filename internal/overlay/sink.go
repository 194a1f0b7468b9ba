package overlay

// RenderSink is the drawing surface behind the overlay. The terminal UI
// implements it for real; tests feed the controller a recording fake.
type RenderSink interface {
	// Render pushes the current display fields. subtitle and timer may be
	// empty, which means "not shown".
	Render(title, subtitle, timer string, mode Mode)

	// Rectangle reports the overlay's current on-screen rectangle.
	Rectangle() Rect

	// SetRectangle moves and/or resizes the overlay.
	SetRectangle(Rect)

	// ContentSize measures the rendered content at the given scale so a
	// resize can re-fit the rectangle tightly around it.
	ContentSize(scale float64) (w, h int)

	// PointerPosition reports the pointer location on the surface. The
	// error signals a collaborator failure, never a fatal condition.
	PointerPosition() (Point, error)

	// RequestContextMenuAt asks the surface to open its context menu.
	RequestContextMenuAt(Point)

	// Close tears the overlay down.
	Close()
}

// InputSignalSource supplies the global unlock-modifier signal. It is
// focus-independent and sampled fresh on every tick; an error means the
// platform cannot answer, and the controller treats that as "not held".
type InputSignalSource interface {
	UnlockHeld() (bool, error)
}
