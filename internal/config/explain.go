package config

import (
	"fmt"
	"strings"
)

// Explain returns the effective value at the given YAML-like path and its source.
//
// Supported paths include:
//
//	display
//	xauthority
//	log_level
//	screen.target
//	screen.usable
//	screen.fallback.width
//	window.default_width
//	window.close_on_escape
//	preview.columns
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}
	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault}, nil
}

// Paths lists every leaf path Explain accepts.
func Paths() []string {
	return []string{
		"display",
		"xauthority",
		"log_level",
		"screen.target",
		"screen.usable",
		"screen.fallback.x",
		"screen.fallback.y",
		"screen.fallback.width",
		"screen.fallback.height",
		"window.default_width",
		"window.default_height",
		"window.close_on_escape",
		"preview.columns",
		"preview.rows",
	}
}

func lookupValue(cfg *Config, path string) (any, error) {
	parts := strings.Split(path, ".")
	unknown := fmt.Errorf("unknown path: %s", path)

	switch parts[0] {
	case "display", "xauthority", "log_level":
		if len(parts) != 1 {
			return nil, unknown
		}
		switch parts[0] {
		case "display":
			return cfg.Display, nil
		case "xauthority":
			return cfg.XAuthority, nil
		}
		return cfg.LogLevel, nil
	case "screen":
		if len(parts) == 1 {
			return cfg.Screen, nil
		}
		switch parts[1] {
		case "target":
			if len(parts) == 2 {
				return cfg.Screen.Target, nil
			}
		case "usable":
			if len(parts) == 2 {
				return cfg.Screen.Usable, nil
			}
		case "fallback":
			if len(parts) == 2 {
				return cfg.Screen.Fallback, nil
			}
			if len(parts) == 3 {
				return rectField(cfg.Screen.Fallback, parts[2], unknown)
			}
		}
		return nil, unknown
	case "window":
		if len(parts) == 1 {
			return cfg.Window, nil
		}
		if len(parts) != 2 {
			return nil, unknown
		}
		switch parts[1] {
		case "default_width":
			return cfg.Window.DefaultWidth, nil
		case "default_height":
			return cfg.Window.DefaultHeight, nil
		case "close_on_escape":
			return cfg.Window.CloseOnEscape, nil
		}
		return nil, unknown
	case "preview":
		if len(parts) == 1 {
			return cfg.Preview, nil
		}
		if len(parts) != 2 {
			return nil, unknown
		}
		switch parts[1] {
		case "columns":
			return cfg.Preview.Columns, nil
		case "rows":
			return cfg.Preview.Rows, nil
		}
		return nil, unknown
	}
	return nil, unknown
}

func rectField(r Rect, name string, unknown error) (any, error) {
	switch name {
	case "x":
		return r.X, nil
	case "y":
		return r.Y, nil
	case "width":
		return r.Width, nil
	case "height":
		return r.Height, nil
	}
	return nil, unknown
}
