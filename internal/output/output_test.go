package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/1broseidon/sketch/internal/sketch"
)

func testReport() Report {
	return Report{
		File:    "main.sketch",
		Display: "eDP-1",
		Bounds:  sketch.ScreenBounds{Width: 1920, Height: 1080},
		Window: sketch.Resolved{
			Title:  "Main",
			X:      sketch.PixelAxis(100),
			Y:      sketch.CenteredAxis(),
			Height: sketch.PixelAxis(540),
		},
	}
}

func TestNewFormatter(t *testing.T) {
	for _, name := range append(Formats(), "", " JSON ") {
		f, err := NewFormatter(name)
		require.NoError(t, err, "format %q", name)
		assert.NotNil(t, f)
	}

	_, err := NewFormatter("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text, json, yaml, toml")
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TextFormatter{}.Format(&buf, testReport()))

	got := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		key, value, ok := strings.Cut(line, ":")
		require.True(t, ok, "line %q", line)
		got[key] = strings.TrimSpace(value)
	}
	want := map[string]string{
		"file":   "main.sketch",
		"screen": "eDP-1 (0,0 1920x1080)",
		"title":  `"Main"`,
		"x":      "100",
		"y":      "centered",
		"width":  "default",
		"height": "540",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("text output mismatch (-want +got):\n%s", diff)
	}
}

func TestTextFormatterFullscreen(t *testing.T) {
	r := testReport()
	r.Display = ""
	r.Window = sketch.Resolved{
		Title: "F", Fullscreen: true,
		X: sketch.PixelAxis(0), Y: sketch.PixelAxis(0),
		Width: sketch.PixelAxis(1920), Height: sketch.PixelAxis(1080),
	}

	var buf bytes.Buffer
	require.NoError(t, TextFormatter{}.Format(&buf, r))
	out := buf.String()
	assert.Contains(t, out, "fullscreen: yes")
	assert.Contains(t, out, "0,0 1920x1080")
	assert.NotContains(t, out, "(")
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONFormatter{}.Format(&buf, testReport()))

	assert.JSONEq(t, `{
		"file": "main.sketch",
		"display": "eDP-1",
		"bounds": {"x": 0, "y": 0, "width": 1920, "height": 1080},
		"window": {
			"title": "Main",
			"x": 100,
			"y": "centered",
			"width": "default",
			"height": 540,
			"fullscreen": false
		}
	}`, buf.String())
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, YAMLFormatter{}.Format(&buf, testReport()))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	want := map[string]any{
		"file":    "main.sketch",
		"display": "eDP-1",
		"bounds":  map[string]any{"x": 0, "y": 0, "width": 1920, "height": 1080},
		"window": map[string]any{
			"title":      "Main",
			"x":          100,
			"y":          "centered",
			"width":      "default",
			"height":     540,
			"fullscreen": false,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("yaml output mismatch (-want +got):\n%s", diff)
	}
}

func TestTOMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TOMLFormatter{}.Format(&buf, testReport()))

	var got map[string]any
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &got))
	want := map[string]any{
		"file":    "main.sketch",
		"display": "eDP-1",
		"bounds":  map[string]any{"x": int64(0), "y": int64(0), "width": int64(1920), "height": int64(1080)},
		"window": map[string]any{
			"title":      "Main",
			"x":          int64(100),
			"y":          "centered",
			"width":      "default",
			"height":     int64(540),
			"fullscreen": false,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("toml output mismatch (-want +got):\n%s", diff)
	}
}
