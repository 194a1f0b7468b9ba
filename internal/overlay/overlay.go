// Package overlay holds the interaction core of the countdown overlay: the
// locked/unlocked mode machine and the move/resize gesture interpretation.
// It talks to the platform only through the RenderSink and InputSignalSource
// interfaces so it can be driven by scripted fakes in tests.
package overlay

// Mode says whether the overlay surface intercepts pointer input.
type Mode int

const (
	// ModeLocked is the default: the overlay is click-through and drawn
	// translucent. Pointer input belongs to whatever is underneath.
	ModeLocked Mode = iota
	// ModeUnlocked is held only while the unlock modifier reads true; the
	// overlay is opaque and pointer gestures move or resize it.
	ModeUnlocked
)

func (m Mode) String() string {
	if m == ModeUnlocked {
		return "unlocked"
	}
	return "locked"
}

// Point is a position on the overlay surface.
type Point struct {
	X, Y int
}

// Rect is the overlay's on-screen rectangle.
type Rect struct {
	X, Y, W, H int
}

// ResizeDir is a bitmask of edges being dragged. Corners combine two edges.
type ResizeDir int

const (
	DirNone ResizeDir = 0
	DirN    ResizeDir = 1 << iota
	DirS
	DirE
	DirW

	DirNE = DirN | DirE
	DirNW = DirN | DirW
	DirSE = DirS | DirE
	DirSW = DirS | DirW
)

func (d ResizeDir) String() string {
	switch d {
	case DirN:
		return "n"
	case DirS:
		return "s"
	case DirE:
		return "e"
	case DirW:
		return "w"
	case DirNE:
		return "ne"
	case DirNW:
		return "nw"
	case DirSE:
		return "se"
	case DirSW:
		return "sw"
	}
	return "none"
}

func (d ResizeDir) horizontal() bool { return d&(DirE|DirW) != 0 }
func (d ResizeDir) vertical() bool   { return d&(DirN|DirS) != 0 }

// HitRegion maps a pointer position to the edge or corner it falls on, given
// a fixed-width margin inside the rectangle. DirNone means the interior: a
// press there starts a move, not a resize.
func HitRegion(r Rect, p Point, margin int) ResizeDir {
	px := p.X - r.X
	py := p.Y - r.Y
	if px < 0 || py < 0 || px >= r.W || py >= r.H {
		return DirNone
	}

	var d ResizeDir
	if py <= margin {
		d |= DirN
	}
	if py >= r.H-1-margin {
		d |= DirS
	}
	if px <= margin {
		d |= DirW
	}
	if px >= r.W-1-margin {
		d |= DirE
	}
	return d
}
