package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const DefaultConfigFileName = "config.toml"

// Colors are the overlay text colors. Values are the named colors offered by
// the context menu ("white", "yellow", ...) or hex like "#7CFF00".
type Colors struct {
	Text string `toml:"text"`
	Help string `toml:"help"`
	// Backdrop fills the panel while unlocked, standing in for the
	// half-alpha grab background of a real compositor.
	Backdrop string `toml:"backdrop"`
}

type Config struct {
	// TickMillis is the update period. Ticks are periodic; nothing fires
	// exactly on schedule boundaries.
	TickMillis int `toml:"tick_ms"`

	// ResizeMargin is the edge band, in cells, that starts a resize
	// instead of a move.
	ResizeMargin int     `toml:"resize_margin"`
	MinScale     float64 `toml:"min_scale"`
	MaxScale     float64 `toml:"max_scale"`

	// MarginX/MarginY offset the initial top-right placement.
	MarginX int `toml:"margin_x"`
	MarginY int `toml:"margin_y"`

	Colors Colors `toml:"colors"`
}

func DefaultConfig() Config {
	return Config{
		TickMillis:   200,
		ResizeMargin: 1,
		MinScale:     0.60,
		MaxScale:     10.0,
		MarginX:      4,
		MarginY:      1,
		Colors: Colors{
			Text:     "white",
			Help:     "yellow",
			Backdrop: "#303030",
		},
	}
}

// DefaultPath returns the per-user config location.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "chime", DefaultConfigFileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(home, ".config", "chime", DefaultConfigFileName)
}

// LoadOrCreate reads the config at path, writing the defaults there first if
// the file does not exist yet. Unset keys fall back to their defaults.
func LoadOrCreate(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	cfg.normalize()
	return cfg, nil
}

func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// normalize clamps nonsense values back to the defaults so a hand-edited
// config cannot freeze the tick or invert the scale range.
func (c *Config) normalize() {
	def := DefaultConfig()

	if c.TickMillis <= 0 {
		c.TickMillis = def.TickMillis
	}
	if c.ResizeMargin < 0 {
		c.ResizeMargin = def.ResizeMargin
	}
	if c.MinScale <= 0 {
		c.MinScale = def.MinScale
	}
	if c.MaxScale < c.MinScale {
		c.MaxScale = def.MaxScale
	}
	if c.MarginX < 0 {
		c.MarginX = def.MarginX
	}
	if c.MarginY < 0 {
		c.MarginY = def.MarginY
	}
	if c.Colors.Text == "" {
		c.Colors.Text = def.Colors.Text
	}
	if c.Colors.Help == "" {
		c.Colors.Help = def.Colors.Help
	}
	if c.Colors.Backdrop == "" {
		c.Colors.Backdrop = def.Colors.Backdrop
	}
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
