package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// IncludeList supports either:
//
//	include: "/path/to/file.yaml"
//
// or:
//
//	include:
//	  - "/path/to/file.yaml"
//	  - "/path/to/dir"
type IncludeList []string

func (l *IncludeList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case 0:
		*l = nil
		return nil
	case yaml.ScalarNode:
		if value.Tag != "!!str" {
			return fmt.Errorf("include must be a string or list of strings")
		}
		*l = []string{value.Value}
		return nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return fmt.Errorf("include entries must be strings")
			}
			out = append(out, item.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("include must be a string or list of strings")
	}
}

// Raw* types mirror the file layout with pointer fields, so that a key that
// is absent can be told apart from one set to its zero value.

type RawRect struct {
	X      *int `yaml:"x"`
	Y      *int `yaml:"y"`
	Width  *int `yaml:"width"`
	Height *int `yaml:"height"`
}

type RawScreenConfig struct {
	Target   *string  `yaml:"target"`
	Usable   *bool    `yaml:"usable"`
	Fallback *RawRect `yaml:"fallback"`
}

type RawWindowConfig struct {
	DefaultWidth  *int  `yaml:"default_width"`
	DefaultHeight *int  `yaml:"default_height"`
	CloseOnEscape *bool `yaml:"close_on_escape"`
}

type RawPreviewConfig struct {
	Columns *int `yaml:"columns"`
	Rows    *int `yaml:"rows"`
}

type RawConfig struct {
	Include IncludeList `yaml:"include"`

	Display    *string           `yaml:"display"`
	XAuthority *string           `yaml:"xauthority"`
	LogLevel   *string           `yaml:"log_level"`
	Screen     *RawScreenConfig  `yaml:"screen"`
	Window     *RawWindowConfig  `yaml:"window"`
	Preview    *RawPreviewConfig `yaml:"preview"`
}

// merge overlays other onto r; keys set in other win.
func (r RawConfig) merge(other RawConfig) RawConfig {
	out := r
	out.Include = nil
	setIf(&out.Display, other.Display)
	setIf(&out.XAuthority, other.XAuthority)
	setIf(&out.LogLevel, other.LogLevel)

	if other.Screen != nil {
		s := RawScreenConfig{}
		if out.Screen != nil {
			s = *out.Screen
		}
		setIf(&s.Target, other.Screen.Target)
		setIf(&s.Usable, other.Screen.Usable)
		if other.Screen.Fallback != nil {
			fb := RawRect{}
			if s.Fallback != nil {
				fb = *s.Fallback
			}
			fb = fb.merge(*other.Screen.Fallback)
			s.Fallback = &fb
		}
		out.Screen = &s
	}

	if other.Window != nil {
		w := RawWindowConfig{}
		if out.Window != nil {
			w = *out.Window
		}
		setIf(&w.DefaultWidth, other.Window.DefaultWidth)
		setIf(&w.DefaultHeight, other.Window.DefaultHeight)
		setIf(&w.CloseOnEscape, other.Window.CloseOnEscape)
		out.Window = &w
	}

	if other.Preview != nil {
		p := RawPreviewConfig{}
		if out.Preview != nil {
			p = *out.Preview
		}
		setIf(&p.Columns, other.Preview.Columns)
		setIf(&p.Rows, other.Preview.Rows)
		out.Preview = &p
	}
	return out
}

func (r RawRect) merge(other RawRect) RawRect {
	setIf(&r.X, other.X)
	setIf(&r.Y, other.Y)
	setIf(&r.Width, other.Width)
	setIf(&r.Height, other.Height)
	return r
}

func setIf[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}
