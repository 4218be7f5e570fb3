package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/sketch/internal/config"
	"github.com/1broseidon/sketch/internal/platform"
)

func testDisplays() *platform.Static {
	return platform.NewStatic(
		platform.Display{
			ID:      0,
			Name:    "eDP-1",
			Primary: true,
			Bounds:  platform.Rect{Width: 1920, Height: 1080},
			Usable:  platform.Rect{Y: 32, Width: 1920, Height: 1048},
		},
		platform.Display{
			ID:     1,
			Name:   "HDMI-1",
			Bounds: platform.Rect{X: 1920, Width: 2560, Height: 1440},
			Usable: platform.Rect{X: 1920, Width: 2560, Height: 1440},
		},
	)
}

func connect(t *testing.T, open Opener) *mcpsdk.ClientSession {
	t.Helper()
	ctx := context.Background()
	ct, st := mcpsdk.NewInMemoryTransports()

	s := NewServer(config.DefaultConfig(), open, nil)
	ss, err := s.Connect(ctx, st)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test", Version: "0"}, nil)
	cs, err := client.Connect(ctx, ct, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

func call(t *testing.T, cs *mcpsdk.ClientSession, name string, args any, out any) *mcpsdk.CallToolResult {
	t.Helper()
	res, err := cs.CallTool(context.Background(), &mcpsdk.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	if !res.IsError && out != nil {
		require.NoError(t, json.Unmarshal([]byte(text.Text), out))
	}
	return res
}

func staticOpener() Opener {
	return func() (platform.Backend, error) { return testDisplays(), nil }
}

func TestToolsAreListed(t *testing.T) {
	cs := connect(t, staticOpener())

	res, err := cs.ListTools(context.Background(), nil)
	require.NoError(t, err)
	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	sort.Strings(names)
	assert.Equal(t, []string{"check_sketch", "list_displays", "resolve_sketch"}, names)
}

func TestCheckSketchValid(t *testing.T) {
	cs := connect(t, staticOpener())

	var out CheckSketchOutput
	call(t, cs, "check_sketch", map[string]any{"text": "window = \"Main\":\n  centered\n"}, &out)
	assert.True(t, out.Valid)
	assert.Nil(t, out.Error)
	assert.Contains(t, out.Description, `window "Main"`)
	assert.Contains(t, out.Description, "centered")
}

func TestCheckSketchReportsDiagnostic(t *testing.T) {
	cs := connect(t, staticOpener())

	var out CheckSketchOutput
	res := call(t, cs, "check_sketch", map[string]any{"text": "window \"Main\":\n", "name": "main.sketch"}, &out)
	assert.False(t, res.IsError)
	assert.False(t, out.Valid)
	require.NotNil(t, out.Error)
	assert.Equal(t, "syntax error", out.Error.Kind)
	assert.Equal(t, 1, out.Error.Line)
	assert.Equal(t, 7, out.Error.Column)
	assert.Equal(t, "'='", out.Error.Expected)
	assert.Contains(t, out.Error.Rendered, "main.sketch:1:7")
}

func TestCheckSketchMissingFileIsToolError(t *testing.T) {
	cs := connect(t, staticOpener())

	res := call(t, cs, "check_sketch", map[string]any{"path": filepath.Join(t.TempDir(), "nope.sketch")}, nil)
	assert.True(t, res.IsError)

	res = call(t, cs, "check_sketch", map[string]any{}, nil)
	assert.True(t, res.IsError)
}

func TestResolveSketchFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.sketch")
	require.NoError(t, os.WriteFile(path, []byte("window = \"Main\":\n  width = 50%\n  position = 10px, centered\n"), 0644))
	cs := connect(t, staticOpener())

	var out ResolveSketchOutput
	call(t, cs, "resolve_sketch", map[string]any{"path": path, "display": "HDMI-1"}, &out)
	assert.Equal(t, "HDMI-1", out.Display)
	assert.Equal(t, BoundsInput{X: 1920, Width: 2560, Height: 1440}, out.Bounds)
	assert.Equal(t, "Main", out.Window.Title)
	assert.Equal(t, float64(1930), out.Window.X)
	assert.Equal(t, "centered", out.Window.Y)
	assert.Equal(t, float64(1280), out.Window.Width)
	assert.Equal(t, "default", out.Window.Height)
}

func TestResolveSketchUsesConfiguredTarget(t *testing.T) {
	cs := connect(t, staticOpener())

	var out ResolveSketchOutput
	call(t, cs, "resolve_sketch", map[string]any{"text": "window = \"F\":\n  fullscreen\n"}, &out)
	assert.Equal(t, "eDP-1", out.Display)
	assert.Equal(t, BoundsInput{Y: 32, Width: 1920, Height: 1048}, out.Bounds)
	assert.True(t, out.Window.Fullscreen)
	assert.Equal(t, float64(32), out.Window.Y)
}

func TestResolveSketchOfflineAndBounds(t *testing.T) {
	opened := false
	cs := connect(t, func() (platform.Backend, error) {
		opened = true
		return nil, errors.New("no X")
	})
	text := "window = \"W\":\n  width = 3000px\n"

	var out ResolveSketchOutput
	call(t, cs, "resolve_sketch", map[string]any{"text": text, "offline": true}, &out)
	assert.Equal(t, "fallback", out.Display)
	assert.Equal(t, float64(1920), out.Window.Width)

	call(t, cs, "resolve_sketch", map[string]any{"text": text, "bounds": map[string]any{"x": 0, "y": 0, "width": 800, "height": 600}}, &out)
	assert.Equal(t, float64(800), out.Window.Width)
	assert.False(t, opened)

	res := call(t, cs, "resolve_sketch", map[string]any{"text": text}, nil)
	assert.True(t, res.IsError)
	assert.True(t, opened)
}

func TestResolveSketchParseErrorDoesNotQueryScreen(t *testing.T) {
	opened := false
	cs := connect(t, func() (platform.Backend, error) {
		opened = true
		return testDisplays(), nil
	})

	res := call(t, cs, "resolve_sketch", map[string]any{"text": "window = \"W\":\n  fullscreen\n  width = 10%\n"}, nil)
	assert.True(t, res.IsError)
	assert.False(t, opened)
}

func TestListDisplays(t *testing.T) {
	cs := connect(t, staticOpener())

	var out ListDisplaysOutput
	call(t, cs, "list_displays", map[string]any{}, &out)
	require.Len(t, out.Displays, 2)
	assert.Equal(t, "eDP-1", out.Displays[0].Name)
	assert.Equal(t, platform.Rect{X: 1920, Width: 2560, Height: 1440}, out.Displays[1].Bounds)
}

func TestListDisplaysWithoutWindowSystem(t *testing.T) {
	cs := connect(t, nil)

	res := call(t, cs, "list_displays", map[string]any{}, nil)
	assert.True(t, res.IsError)
}
