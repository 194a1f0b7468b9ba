package overlay

// GestureKind distinguishes a drag that moves the overlay from one that
// resizes it.
type GestureKind int

const (
	GestureMove GestureKind = iota
	GestureResize
)

// Gesture is the ephemeral drag state between pointer-down and pointer-up.
// It is discarded the instant the unlock modifier reads false; the rectangle
// stays wherever the last applied drag left it.
type Gesture struct {
	Kind         GestureKind
	Dir          ResizeDir
	StartPointer Point
	StartRect    Rect
	StartScale   float64

	// Offset is the pointer's offset from the rectangle's top-left at
	// pointer-down; move drags keep it constant.
	Offset Point
}

// resizeScale computes the uniform scale for the pointer position p. Edge
// drags scale along one axis; corner drags take whichever axis changed more
// relative to the start rectangle, so content proportions stay fixed.
func (g *Gesture) resizeScale(p Point, minScale, maxScale float64) float64 {
	w0, h0 := g.StartRect.W, g.StartRect.H
	if w0 <= 0 || h0 <= 0 {
		return g.StartScale
	}

	dx := p.X - g.StartPointer.X
	dy := p.Y - g.StartPointer.Y

	proposedW := float64(w0)
	proposedH := float64(h0)
	if g.Dir&DirE != 0 {
		proposedW = float64(w0 + dx)
	}
	if g.Dir&DirW != 0 {
		proposedW = float64(w0 - dx)
	}
	if g.Dir&DirS != 0 {
		proposedH = float64(h0 + dy)
	}
	if g.Dir&DirN != 0 {
		proposedH = float64(h0 - dy)
	}

	scaleW := proposedW / float64(w0)
	scaleH := proposedH / float64(h0)

	var s float64
	switch {
	case g.Dir.horizontal() && !g.Dir.vertical():
		s = scaleW
	case g.Dir.vertical() && !g.Dir.horizontal():
		s = scaleH
	default:
		s = scaleW
		if abs(scaleH-1) > abs(scaleW-1) {
			s = scaleH
		}
	}

	return clamp(g.StartScale*s, minScale, maxScale)
}

// Params tune gesture interpretation.
type Params struct {
	// ResizeMargin is the edge band width, in surface units, that turns a
	// press into a resize instead of a move.
	ResizeMargin int
	MinScale     float64
	MaxScale     float64
}

// DefaultParams mirror the overlay's historical tuning.
func DefaultParams() Params {
	return Params{
		ResizeMargin: 1,
		MinScale:     0.60,
		MaxScale:     10.0,
	}
}

// Controller decides, every tick, whether the overlay is click-through or
// interactive, and interprets pointer gestures while interactive. All methods
// must be called from the one event-loop goroutine.
type Controller struct {
	signals InputSignalSource
	sink    RenderSink
	params  Params

	mode    Mode
	gesture *Gesture
	scale   float64
}

func NewController(signals InputSignalSource, sink RenderSink, params Params) *Controller {
	if params.MinScale <= 0 || params.MaxScale <= 0 || params.MaxScale < params.MinScale {
		def := DefaultParams()
		params.MinScale = def.MinScale
		params.MaxScale = def.MaxScale
	}
	return &Controller{
		signals: signals,
		sink:    sink,
		params:  params,
		mode:    ModeLocked,
		scale:   1.0,
	}
}

// SetParams swaps the gesture tuning, e.g. after a config reload. An active
// gesture keeps the parameters it started with only until its next move.
func (c *Controller) SetParams(params Params) {
	if params.MinScale <= 0 || params.MaxScale <= 0 || params.MaxScale < params.MinScale {
		return
	}
	c.params = params
}

func (c *Controller) Mode() Mode     { return c.mode }
func (c *Controller) Scale() float64 { return c.scale }
func (c *Controller) Dragging() bool { return c.gesture != nil }

// Tick re-samples the unlock signal, recomputes the mode (level-triggered:
// the mode simply equals the signal), and pushes the display fields to the
// sink. A failing signal source always reads as locked.
func (c *Controller) Tick(title, subtitle, timer string) Mode {
	held, err := c.signals.UnlockHeld()
	if err != nil || !held {
		c.mode = ModeLocked
		c.gesture = nil
	} else {
		c.mode = ModeUnlocked
	}

	c.sink.Render(title, subtitle, timer, c.mode)
	return c.mode
}

// PointerDown starts a gesture while unlocked. A press within the resize
// margin of an edge or corner starts a resize tagged with that direction;
// anywhere else starts a move.
func (c *Controller) PointerDown(p Point) {
	if c.mode != ModeUnlocked {
		return
	}

	rect := c.sink.Rectangle()
	g := &Gesture{
		StartPointer: p,
		StartRect:    rect,
		StartScale:   c.scale,
	}

	if dir := HitRegion(rect, p, c.params.ResizeMargin); dir != DirNone {
		g.Kind = GestureResize
		g.Dir = dir
	} else {
		g.Kind = GestureMove
		g.Offset = Point{X: p.X - rect.X, Y: p.Y - rect.Y}
	}

	c.gesture = g
}

// PointerMove applies the active gesture at the new pointer position. If the
// unlock modifier has been released the gesture is abandoned on the spot: no
// snap-back, the rectangle keeps its last applied geometry.
func (c *Controller) PointerMove(p Point) {
	if c.gesture == nil {
		return
	}

	held, err := c.signals.UnlockHeld()
	if err != nil || !held {
		c.gesture = nil
		c.mode = ModeLocked
		return
	}

	g := c.gesture
	switch g.Kind {
	case GestureMove:
		c.sink.SetRectangle(Rect{
			X: p.X - g.Offset.X,
			Y: p.Y - g.Offset.Y,
			W: g.StartRect.W,
			H: g.StartRect.H,
		})

	case GestureResize:
		scale := g.resizeScale(p, c.params.MinScale, c.params.MaxScale)
		c.scale = scale

		w, h := c.sink.ContentSize(scale)

		// The dragged edge moves; the opposite edge stays fixed in
		// screen space.
		x, y := g.StartRect.X, g.StartRect.Y
		if g.Dir&DirW != 0 {
			x = g.StartRect.X + g.StartRect.W - w
		}
		if g.Dir&DirN != 0 {
			y = g.StartRect.Y + g.StartRect.H - h
		}
		c.sink.SetRectangle(Rect{X: x, Y: y, W: w, H: h})
	}
}

// PointerUp completes the gesture. The mode stays whatever the signal says.
func (c *Controller) PointerUp() {
	c.gesture = nil
}

// SecondaryDown requests the context menu at the pointer position while
// unlocked. If the surface cannot report the pointer, the event position is
// used instead.
func (c *Controller) SecondaryDown(p Point) {
	if c.mode != ModeUnlocked {
		return
	}
	if pos, err := c.sink.PointerPosition(); err == nil {
		p = pos
	}
	c.sink.RequestContextMenuAt(p)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
