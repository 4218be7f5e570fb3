package config

import "fmt"

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// BuildEffectiveConfig applies raw on top of the defaults.
func BuildEffectiveConfig(raw RawConfig) *Config {
	cfg := DefaultConfig()

	apply(&cfg.Display, raw.Display)
	apply(&cfg.XAuthority, raw.XAuthority)
	apply(&cfg.LogLevel, raw.LogLevel)

	if s := raw.Screen; s != nil {
		apply(&cfg.Screen.Target, s.Target)
		apply(&cfg.Screen.Usable, s.Usable)
		if fb := s.Fallback; fb != nil {
			apply(&cfg.Screen.Fallback.X, fb.X)
			apply(&cfg.Screen.Fallback.Y, fb.Y)
			apply(&cfg.Screen.Fallback.Width, fb.Width)
			apply(&cfg.Screen.Fallback.Height, fb.Height)
		}
	}
	if w := raw.Window; w != nil {
		apply(&cfg.Window.DefaultWidth, w.DefaultWidth)
		apply(&cfg.Window.DefaultHeight, w.DefaultHeight)
		apply(&cfg.Window.CloseOnEscape, w.CloseOnEscape)
	}
	if p := raw.Preview; p != nil {
		apply(&cfg.Preview.Columns, p.Columns)
		apply(&cfg.Preview.Rows, p.Rows)
	}
	return cfg
}

func apply[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
