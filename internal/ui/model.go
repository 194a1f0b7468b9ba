package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"chime/internal/config"
	"chime/internal/overlay"
	"chime/internal/schedule"
	"chime/internal/timeline"
)

type keyMap struct {
	Quit    key.Binding
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Dismiss key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
	}
}

// Model is the terminal surface of the overlay. It implements
// overlay.RenderSink and overlay.InputSignalSource, so the interaction
// controller drives it the same way it drives the test fakes.
type Model struct {
	cfg   config.Config
	items []schedule.Item
	ctrl  *overlay.Controller
	keys  keyMap

	width  int
	height int
	placed bool

	rect overlay.Rect

	// Display fields pushed by the controller on every tick.
	title    string
	subtitle string
	timer    string
	mode     overlay.Mode

	// Raw input signals, refreshed from terminal events.
	modifierHeld bool
	pointer      overlay.Point
	pointerKnown bool

	textColor string
	styles    Styles
	menu      *menu
	closing   bool
}

// Message types
type tickMsg struct{}

// ConfigReloadedMsg is posted from outside the program when the config file
// changes on disk.
type ConfigReloadedMsg struct {
	Config config.Config
}

func NewModel(cfg config.Config, items []schedule.Item) *Model {
	m := &Model{
		cfg:       cfg,
		items:     items,
		keys:      defaultKeyMap(),
		textColor: cfg.Colors.Text,
	}
	m.styles = newStyles(cfg, m.textColor)

	m.ctrl = overlay.NewController(m, m, overlay.Params{
		ResizeMargin: cfg.ResizeMargin,
		MinScale:     cfg.MinScale,
		MaxScale:     cfg.MaxScale,
	})

	// Seed the display so the first layout has real text to measure.
	m.applyState(timeline.Compute(items, time.Now()))

	return m
}

func (m *Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.placed {
			m.placeTopRight()
			m.placed = true
		}
		m.clampRect()
		return m, nil

	case tickMsg:
		state := timeline.Compute(m.items, time.Now())
		m.applyState(state)
		m.ctrl.Tick(m.title, m.subtitle, m.timer)
		if m.closing {
			return m, tea.Quit
		}
		return m, m.tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case ConfigReloadedMsg:
		m.cfg = msg.Config
		m.textColor = msg.Config.Colors.Text
		m.styles = newStyles(m.cfg, m.textColor)
		m.ctrl.SetParams(overlay.Params{
			ResizeMargin: m.cfg.ResizeMargin,
			MinScale:     m.cfg.MinScale,
			MaxScale:     m.cfg.MaxScale,
		})
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.menu != nil {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.menu.up()
		case key.Matches(msg, m.keys.Down):
			m.menu.down()
		case key.Matches(msg, m.keys.Select):
			m.selectMenuEntry(m.menu.cursor)
		case key.Matches(msg, m.keys.Dismiss):
			m.menu = nil
		}
		if m.closing {
			return m, tea.Quit
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.modifierHeld = msg.Ctrl && msg.Shift
	m.pointer = overlay.Point{X: msg.X, Y: msg.Y}
	m.pointerKnown = true

	p := m.pointer

	if m.menu != nil {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if idx := m.menu.entryAt(p, m.width, m.height); idx >= 0 {
				m.selectMenuEntry(idx)
			} else {
				m.menu = nil
			}
		}
		if m.closing {
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.ctrl.PointerDown(p)
	case msg.Action == tea.MouseActionMotion:
		m.ctrl.PointerMove(p)
	case msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft:
		m.ctrl.PointerUp()
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight:
		m.ctrl.SecondaryDown(p)
	}

	if m.closing {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) selectMenuEntry(idx int) {
	entry := menuEntries[idx]
	m.menu = nil

	if entry.color == "" {
		m.Close()
		return
	}
	m.textColor = entry.color
	m.styles = newStyles(m.cfg, m.textColor)
}

func (m *Model) applyState(state timeline.State) {
	m.title = state.Title
	m.subtitle = ""
	if state.HasSubtitle {
		m.subtitle = state.Subtitle
	}
	m.timer = state.Timer()
}

// placeTopRight positions the panel at the surface's top-right corner with
// the configured margins, matching the overlay's first appearance.
func (m *Model) placeTopRight() {
	w, h := m.ContentSize(m.ctrl.Scale())
	x := m.width - w - m.cfg.MarginX
	if x < 0 {
		x = 0
	}
	m.rect = overlay.Rect{X: x, Y: m.cfg.MarginY, W: w, H: h}
}

func (m *Model) clampRect() {
	if m.width == 0 || m.height == 0 {
		return
	}
	r := m.rect
	if r.X+r.W > m.width {
		r.X = m.width - r.W
	}
	if r.Y+r.H > m.height {
		r.Y = m.height - r.H
	}
	if r.X < 0 {
		r.X = 0
	}
	if r.Y < 0 {
		r.Y = 0
	}
	m.rect = r
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.cfg.TickInterval(), func(time.Time) tea.Msg {
		return tickMsg{}
	})
}
