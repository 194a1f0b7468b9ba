package ui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"chime/internal/config"
)

// Named colors the context menu offers, mirrored in the config file.
var namedColors = map[string]string{
	"white":   "#FFFFFF",
	"black":   "#000000",
	"yellow":  "#FFFF00",
	"magenta": "#FF00FF",
	"green":   "#7CFF00",
	"blue":    "#0000FF",
	"red":     "#FF0000",
}

// colorHex resolves a config/menu color value to hex, falling back to white
// for anything unparseable.
func colorHex(value string) string {
	if hex, ok := namedColors[value]; ok {
		return hex
	}
	if _, err := colorful.Hex(value); err == nil {
		return value
	}
	return namedColors["white"]
}

// dimHex blends a color toward black, the terminal stand-in for the
// translucent key-colored rendition of the locked overlay.
func dimHex(hex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	black := colorful.Color{}
	return c.BlendRgb(black, amount).Hex()
}

type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Timer    lipgloss.Style
	Help     lipgloss.Style

	PanelLocked   lipgloss.Style
	PanelUnlocked lipgloss.Style

	MenuItem     lipgloss.Style
	MenuSelected lipgloss.Style
	MenuBorder   lipgloss.Style
}

// newStyles builds the style set for the given text color. Locked styles are
// dimmed variants of the unlocked ones; the unlocked panel carries the grab
// backdrop and a border so the interactive state is unmistakable.
func newStyles(cfg config.Config, textColor string) Styles {
	text := colorHex(textColor)
	help := colorHex(cfg.Colors.Help)
	backdrop := colorHex(cfg.Colors.Backdrop)

	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(text)).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(text)),
		Timer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(text)).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(help)).
			Bold(true),

		PanelLocked: lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimHex(text, 0.45))).
			BorderStyle(lipgloss.HiddenBorder()),
		PanelUnlocked: lipgloss.NewStyle().
			Background(lipgloss.Color(backdrop)).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(help)),

		MenuItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		MenuSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("220")).
			Bold(true),
		MenuBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")),
	}
}
