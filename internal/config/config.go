package config

import (
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rect is a screen rectangle in pixels.
type Rect struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ScreenConfig selects the display sketches are resolved against.
type ScreenConfig struct {
	// Target is "active", "primary", a display index or a RandR output name.
	Target string `yaml:"target"`
	// Usable clips the display to its work area, excluding docks and panels.
	Usable bool `yaml:"usable"`
	// Fallback bounds are used offline or when no X server is reachable.
	Fallback Rect `yaml:"fallback"`
}

// WindowConfig controls windows opened by `sketch show`.
type WindowConfig struct {
	DefaultWidth  int  `yaml:"default_width"`
	DefaultHeight int  `yaml:"default_height"`
	CloseOnEscape bool `yaml:"close_on_escape"`
}

// PreviewConfig sizes the terminal preview. Zero means derive from the
// terminal.
type PreviewConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// Config is the effective configuration.
type Config struct {
	Display    string        `yaml:"display"`
	XAuthority string        `yaml:"xauthority"`
	LogLevel   string        `yaml:"log_level"`
	Screen     ScreenConfig  `yaml:"screen"`
	Window     WindowConfig  `yaml:"window"`
	Preview    PreviewConfig `yaml:"preview"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Screen: ScreenConfig{
			Target:   "active",
			Usable:   true,
			Fallback: Rect{Width: 1920, Height: 1080},
		},
		Window: WindowConfig{
			DefaultWidth:  800,
			DefaultHeight: 600,
			CloseOnEscape: true,
		},
	}
}

func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	if strings.TrimSpace(c.Screen.Target) == "" {
		return &ValidationError{Path: "screen.target", Err: fmt.Errorf("screen.target must not be empty")}
	}
	if c.Screen.Fallback.Width <= 0 {
		return &ValidationError{Path: "screen.fallback.width", Err: fmt.Errorf("fallback width must be > 0")}
	}
	if c.Screen.Fallback.Height <= 0 {
		return &ValidationError{Path: "screen.fallback.height", Err: fmt.Errorf("fallback height must be > 0")}
	}
	if c.Window.DefaultWidth <= 0 {
		return &ValidationError{Path: "window.default_width", Err: fmt.Errorf("default_width must be > 0")}
	}
	if c.Window.DefaultHeight <= 0 {
		return &ValidationError{Path: "window.default_height", Err: fmt.Errorf("default_height must be > 0")}
	}
	if c.Preview.Columns < 0 {
		return &ValidationError{Path: "preview.columns", Err: fmt.Errorf("preview.columns must be >= 0")}
	}
	if c.Preview.Rows < 0 {
		return &ValidationError{Path: "preview.rows", Err: fmt.Errorf("preview.rows must be >= 0")}
	}
	return nil
}

// SlogLevel maps log_level onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Marshal renders the effective configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
