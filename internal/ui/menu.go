package ui

import (
	"chime/internal/overlay"
)

// menuEntry is one context-menu row. A non-empty color recolors the overlay
// text; the zero color marks the Close entry.
type menuEntry struct {
	label string
	color string
}

var menuEntries = []menuEntry{
	{label: "White", color: "white"},
	{label: "Black", color: "black"},
	{label: "Yellow", color: "yellow"},
	{label: "Magenta", color: "magenta"},
	{label: "Green", color: "green"},
	{label: "Blue", color: "blue"},
	{label: "Red", color: "red"},
	{label: "Close", color: ""},
}

// menu is the transient context-menu state, opened by a secondary click while
// unlocked and dismissed by selection, escape, or a click elsewhere.
type menu struct {
	at     overlay.Point
	cursor int
}

func newMenu(at overlay.Point) *menu {
	return &menu{at: at}
}

func (mn *menu) up() {
	if mn.cursor > 0 {
		mn.cursor--
	}
}

func (mn *menu) down() {
	if mn.cursor < len(menuEntries)-1 {
		mn.cursor++
	}
}

// rect is the menu's on-screen rectangle, including its border, clamped into
// the surface.
func (mn *menu) rect(surfaceW, surfaceH int) overlay.Rect {
	w := 0
	for _, e := range menuEntries {
		if len(e.label) > w {
			w = len(e.label)
		}
	}
	w += 4 // border + one cell of padding each side
	h := len(menuEntries) + 2

	x := mn.at.X
	y := mn.at.Y
	if x+w > surfaceW {
		x = surfaceW - w
	}
	if y+h > surfaceH {
		y = surfaceH - h
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return overlay.Rect{X: x, Y: y, W: w, H: h}
}

// entryAt maps a pointer position to a menu entry index, or -1 when the
// pointer is outside the entry rows.
func (mn *menu) entryAt(p overlay.Point, surfaceW, surfaceH int) int {
	r := mn.rect(surfaceW, surfaceH)
	if p.X < r.X || p.X >= r.X+r.W {
		return -1
	}
	idx := p.Y - r.Y - 1 // border row
	if idx < 0 || idx >= len(menuEntries) {
		return -1
	}
	return idx
}
