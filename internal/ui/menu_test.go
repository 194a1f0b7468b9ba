package ui

import (
	"testing"

	"chime/internal/overlay"
)

func TestMenuCursorBounds(t *testing.T) {
	mn := newMenu(overlay.Point{X: 10, Y: 5})

	mn.up()
	if mn.cursor != 0 {
		t.Errorf("cursor moved above the first entry: %d", mn.cursor)
	}

	for i := 0; i < len(menuEntries)*2; i++ {
		mn.down()
	}
	if mn.cursor != len(menuEntries)-1 {
		t.Errorf("cursor = %d, want pinned at %d", mn.cursor, len(menuEntries)-1)
	}
}

func TestMenuRectClampsToSurface(t *testing.T) {
	// Widest label is "Magenta" (7), so the bordered menu is 11x10.
	mn := newMenu(overlay.Point{X: 70, Y: 20})

	r := mn.rect(80, 24)
	want := overlay.Rect{X: 69, Y: 14, W: 11, H: 10}
	if r != want {
		t.Errorf("rect = %v, want %v", r, want)
	}

	// A menu opened in the interior keeps its anchor.
	mn = newMenu(overlay.Point{X: 10, Y: 5})
	r = mn.rect(80, 24)
	if r.X != 10 || r.Y != 5 {
		t.Errorf("rect anchored at (%d,%d), want (10,5)", r.X, r.Y)
	}
}

func TestMenuEntryAt(t *testing.T) {
	mn := newMenu(overlay.Point{X: 10, Y: 5})

	tests := []struct {
		name string
		p    overlay.Point
		want int
	}{
		{name: "First entry", p: overlay.Point{X: 12, Y: 6}, want: 0},
		{name: "Last entry", p: overlay.Point{X: 12, Y: 6 + len(menuEntries) - 1}, want: len(menuEntries) - 1},
		{name: "Top border row", p: overlay.Point{X: 12, Y: 5}, want: -1},
		{name: "Bottom border row", p: overlay.Point{X: 12, Y: 6 + len(menuEntries)}, want: -1},
		{name: "Left of the menu", p: overlay.Point{X: 9, Y: 6}, want: -1},
		{name: "Right of the menu", p: overlay.Point{X: 21, Y: 6}, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mn.entryAt(tt.p, 80, 24); got != tt.want {
				t.Errorf("entryAt(%v) = %d, want %d", tt.p, got, tt.want)
			}
		})
	}
}

func TestMenuEntriesEndWithClose(t *testing.T) {
	last := menuEntries[len(menuEntries)-1]
	if last.label != "Close" || last.color != "" {
		t.Errorf("last entry = %+v, want the Close entry", last)
	}
	for _, e := range menuEntries[:len(menuEntries)-1] {
		if _, ok := namedColors[e.color]; !ok {
			t.Errorf("entry %q references unknown color %q", e.label, e.color)
		}
	}
}
