package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.Screen.Target != "active" {
		t.Fatalf("expected default target active, got %q", cfg.Screen.Target)
	}
	if cfg.Window.DefaultWidth != 800 || cfg.Window.DefaultHeight != 600 {
		t.Fatalf("unexpected default window size %dx%d", cfg.Window.DefaultWidth, cfg.Window.DefaultHeight)
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	res, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(res.Files) != 0 {
		t.Fatalf("expected no files loaded, got %v", res.Files)
	}
	if res.Config.LogLevel != "info" {
		t.Fatalf("expected default log level, got %q", res.Config.LogLevel)
	}
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "# empty\n")

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !res.Config.Screen.Usable {
		t.Fatalf("expected screen.usable default true")
	}
	if len(res.Files) != 1 {
		t.Fatalf("expected one loaded file, got %v", res.Files)
	}
}

func TestLoadFromPath_DisplayAndXAuthority(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, strings.Join([]string{
		"display: \":1\"",
		"xauthority: \"/tmp/test-xauth\"",
		"",
	}, "\n"))

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.Display != ":1" {
		t.Fatalf("expected display :1, got %q", res.Config.Display)
	}
	if res.Config.XAuthority != "/tmp/test-xauth" {
		t.Fatalf("expected xauthority /tmp/test-xauth, got %q", res.Config.XAuthority)
	}

	val, src, err := Explain(res, "display")
	if err != nil {
		t.Fatalf("explain display: %v", err)
	}
	if val != ":1" {
		t.Fatalf("expected explain display :1, got %#v", val)
	}
	if src.Kind != SourceFile || src.Line != 1 {
		t.Fatalf("expected display source at line 1, got %#v", src)
	}
}

func TestLoadFromPath_NestedOverridesKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, strings.Join([]string{
		"screen:",
		"  target: HDMI-1",
		"  fallback:",
		"    width: 1280",
		"window:",
		"  close_on_escape: false",
		"",
	}, "\n"))

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := res.Config
	if cfg.Screen.Target != "HDMI-1" {
		t.Fatalf("expected target HDMI-1, got %q", cfg.Screen.Target)
	}
	if cfg.Screen.Fallback.Width != 1280 || cfg.Screen.Fallback.Height != 1080 {
		t.Fatalf("expected fallback 1280x1080, got %+v", cfg.Screen.Fallback)
	}
	if cfg.Window.CloseOnEscape {
		t.Fatalf("expected close_on_escape false")
	}
	if cfg.Window.DefaultWidth != 800 {
		t.Fatalf("expected default_width to stay 800, got %d", cfg.Window.DefaultWidth)
	}

	_, src, err := Explain(res, "window.default_width")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if src.Kind != SourceDefault {
		t.Fatalf("expected default source, got %#v", src)
	}
}

func TestLoadFromPath_StrictUnknownKeyErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "unknown_key: 1\n")

	_, err := LoadFromPath(path)
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "unknown_key") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
	if !strings.Contains(err.Error(), "config.yaml") {
		t.Fatalf("expected error to include file path, got %v", err)
	}
}

func TestLoadFromPath_ValidationErrorHasSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "window:\n  default_height: 0\n")

	_, err := LoadFromPath(path)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Path != "window.default_height" {
		t.Fatalf("expected path window.default_height, got %q", verr.Path)
	}
	if verr.Source.Line != 2 || verr.Source.Column != 19 {
		t.Fatalf("expected source 2:19, got %d:%d", verr.Source.Line, verr.Source.Column)
	}
	if !strings.Contains(err.Error(), ":2:19: window.default_height:") {
		t.Fatalf("unexpected error text %q", err.Error())
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		path   string
	}{
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"blank target", func(c *Config) { c.Screen.Target = "  " }, "screen.target"},
		{"fallback width", func(c *Config) { c.Screen.Fallback.Width = 0 }, "screen.fallback.width"},
		{"fallback height", func(c *Config) { c.Screen.Fallback.Height = -1 }, "screen.fallback.height"},
		{"default width", func(c *Config) { c.Window.DefaultWidth = 0 }, "window.default_width"},
		{"preview rows", func(c *Config) { c.Preview.Rows = -2 }, "preview.rows"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Path != tt.path {
				t.Fatalf("expected path %q, got %q", tt.path, verr.Path)
			}
		})
	}
}

func TestLoadFromPath_IncludeDirectoryOrderAndMainOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.d", "10-base.yaml"), "preview:\n  columns: 60\n  rows: 20\n")
	writeFile(t, filepath.Join(dir, "config.d", "20-override.yaml"), "preview:\n  columns: 70\n")
	writeFile(t, filepath.Join(dir, "config.d", "notes.txt"), "ignored")

	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "include: config.d\nlog_level: debug\npreview:\n  rows: 25\n")

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.Preview.Columns != 70 {
		t.Fatalf("expected columns 70 from later include, got %d", res.Config.Preview.Columns)
	}
	if res.Config.Preview.Rows != 25 {
		t.Fatalf("expected main file rows 25, got %d", res.Config.Preview.Rows)
	}
	if res.Config.LogLevel != "debug" {
		t.Fatalf("expected log_level debug, got %q", res.Config.LogLevel)
	}
	if len(res.Files) != 3 {
		t.Fatalf("expected 3 loaded files, got %v", res.Files)
	}
	if filepath.Base(res.Files[2]) != "config.yaml" {
		t.Fatalf("expected main file loaded last, got %v", res.Files)
	}

	_, src, err := Explain(res, "preview.columns")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if filepath.Base(src.File) != "20-override.yaml" {
		t.Fatalf("expected columns from 20-override.yaml, got %#v", src)
	}
}

func TestLoadFromPath_IncludeCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.yaml"), "include: b.yaml\n")
	writeFile(t, filepath.Join(dir, "b.yaml"), "include: a.yaml\n")

	_, err := LoadFromPath(filepath.Join(dir, "a.yaml"))
	if err == nil || !strings.Contains(err.Error(), "include cycle detected") {
		t.Fatalf("expected include cycle error, got %v", err)
	}
}

func TestLoadFromPath_IncludeMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "include:\n  - missing.yaml\n")

	_, err := LoadFromPath(path)
	if err == nil || !strings.Contains(err.Error(), `include "missing.yaml"`) {
		t.Fatalf("expected include error, got %v", err)
	}
}

func TestExplain_AllPathsResolve(t *testing.T) {
	res := &LoadResult{Config: DefaultConfig()}
	for _, p := range Paths() {
		if _, _, err := Explain(res, p); err != nil {
			t.Fatalf("explain %q: %v", p, err)
		}
	}
	for _, p := range []string{"", "nope", "screen.nope", "window.default_width.x", "screen.fallback.depth"} {
		if _, _, err := Explain(res, p); err == nil {
			t.Fatalf("expected error for path %q", p)
		}
	}
}

func TestDefaultConfigPath_Env(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/sketch.yaml")
	path, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	if path != "/etc/sketch.yaml" {
		t.Fatalf("expected env override, got %q", path)
	}
}
