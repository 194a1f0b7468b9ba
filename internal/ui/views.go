package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chime/internal/overlay"
)

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	rows := make([]string, m.height)
	m.blit(rows, m.renderPanel(), m.rect.X, m.rect.Y)

	if m.menu != nil {
		r := m.menu.rect(m.width, m.height)
		m.blit(rows, m.renderMenu(), r.X, r.Y)
	}

	return strings.Join(rows, "\n")
}

// blit places a multi-line block at (x, y) on the row canvas. Rows are
// whole-line owned by the last block drawn on them; everything left of a
// block is blank, which is the terminal's version of a transparent surface.
func (m *Model) blit(rows []string, block string, x, y int) {
	if x < 0 {
		x = 0
	}
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(rows) {
			continue
		}
		rows[row] = strings.Repeat(" ", x) + line
	}
}

func (m *Model) renderPanel() string {
	padX, padY := scalePadding(m.ctrl.Scale())

	innerW := 0
	for _, line := range m.contentLines() {
		if w := lipgloss.Width(line); w > innerW {
			innerW = w
		}
	}

	var lines []string
	style := func(s lipgloss.Style, text string) string {
		return lipgloss.PlaceHorizontal(innerW, lipgloss.Center, s.Render(text))
	}

	if m.mode == overlay.ModeUnlocked {
		lines = append(lines, style(m.styles.Title, m.title))
		if m.subtitle != "" {
			lines = append(lines, style(m.styles.Subtitle, m.fitSubtitle()))
		}
		if m.timer != "" {
			lines = append(lines, style(m.styles.Timer, m.timer))
		}
		lines = append(lines, style(m.styles.Help, helpText))

		content := lipgloss.JoinVertical(lipgloss.Center, lines...)
		return m.styles.PanelUnlocked.Padding(padY, padX).Render(content)
	}

	// Locked: dimmed text only, no backdrop, hidden border to keep the
	// rectangle's geometry identical across modes.
	dim := m.styles.PanelLocked.GetForeground()
	dimmed := lipgloss.NewStyle().Foreground(dim)

	lines = append(lines, style(dimmed.Bold(true), m.title))
	if m.subtitle != "" {
		lines = append(lines, style(dimmed, m.fitSubtitle()))
	}
	if m.timer != "" {
		lines = append(lines, style(dimmed.Bold(true), m.timer))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return m.styles.PanelLocked.Padding(padY, padX).Render(content)
}

func (m *Model) renderMenu() string {
	var lines []string
	w := 0
	for _, e := range menuEntries {
		if len(e.label) > w {
			w = len(e.label)
		}
	}

	for i, e := range menuEntries {
		label := " " + e.label + strings.Repeat(" ", w-len(e.label)) + " "
		if i == m.menu.cursor {
			lines = append(lines, m.styles.MenuSelected.Render(label))
		} else {
			lines = append(lines, m.styles.MenuItem.Render(label))
		}
	}

	return m.styles.MenuBorder.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
