package ui

import (
	"errors"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"chime/internal/overlay"
)

// This file is the Model's overlay.RenderSink and overlay.InputSignalSource
// implementation: the terminal stands in for the compositor.

const helpText = "CTRL+SHIFT+RightClick for Menu!"

var errPointerUnknown = errors.New("pointer position not yet reported")

// Base padding magnitudes that the scale factor multiplies, in cells.
const (
	basePadX = 2.0
	basePadY = 0.5
)

func (m *Model) Render(title, subtitle, timer string, mode overlay.Mode) {
	m.title = title
	m.subtitle = subtitle
	m.timer = timer

	if mode != m.mode {
		m.mode = mode
		if mode == overlay.ModeLocked {
			m.menu = nil
		}
	}

	// Re-fit the rectangle around the content, keeping the top-left
	// anchored — but never while a gesture owns the geometry.
	if !m.ctrl.Dragging() {
		w, h := m.ContentSize(m.ctrl.Scale())
		m.rect.W = w
		m.rect.H = h
		m.clampRect()
	}
}

func (m *Model) Rectangle() overlay.Rect {
	return m.rect
}

func (m *Model) SetRectangle(r overlay.Rect) {
	m.rect = r
	m.clampRect()
}

// ContentSize measures the panel at the given scale. Scale drives the
// padding magnitudes; the text itself is one cell high per line regardless,
// which is as close to font scaling as a terminal gets.
func (m *Model) ContentSize(scale float64) (int, int) {
	padX, padY := scalePadding(scale)

	innerW := 0
	for _, line := range m.contentLines() {
		if w := lipgloss.Width(line); w > innerW {
			innerW = w
		}
	}

	// Border rows/columns count even while locked so the rectangle does
	// not jump when the mode flips.
	w := innerW + 2*padX + 2
	h := len(m.contentLines()) + 2*padY + 2
	return w, h
}

func (m *Model) PointerPosition() (overlay.Point, error) {
	if !m.pointerKnown {
		return overlay.Point{}, errPointerUnknown
	}
	return m.pointer, nil
}

func (m *Model) RequestContextMenuAt(p overlay.Point) {
	m.menu = newMenu(p)
}

func (m *Model) Close() {
	m.closing = true
}

func (m *Model) UnlockHeld() (bool, error) {
	return m.modifierHeld, nil
}

// contentLines returns the text rows the panel shows right now, unstyled.
func (m *Model) contentLines() []string {
	lines := []string{m.title}
	if m.subtitle != "" {
		lines = append(lines, m.fitSubtitle())
	}
	if m.timer != "" {
		lines = append(lines, m.timer)
	}
	if m.mode == overlay.ModeUnlocked {
		lines = append(lines, helpText)
	}
	return lines
}

// fitSubtitle shrinks the transition subtitle into the width the rest of the
// content already occupies, so a long "A → B" line cannot balloon the panel.
// Truncation with an ellipsis stands in for the font-shrinking fit of a
// pixel renderer.
func (m *Model) fitSubtitle() string {
	maxW := lipgloss.Width(m.title)
	if w := lipgloss.Width(m.timer); w > maxW {
		maxW = w
	}
	if m.mode == overlay.ModeUnlocked {
		if w := lipgloss.Width(helpText); w > maxW {
			maxW = w
		}
	}
	if maxW < 24 {
		maxW = 24
	}
	return truncate.StringWithTail(m.subtitle, uint(maxW), "…")
}

func scalePadding(scale float64) (padX, padY int) {
	padX = int(math.Round(basePadX * scale))
	padY = int(math.Round(basePadY * scale))
	if padX < 1 {
		padX = 1
	}
	if padY < 0 {
		padY = 0
	}
	return padX, padY
}
