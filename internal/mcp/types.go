package mcp

import "github.com/1broseidon/sketch/internal/platform"

// CheckSketchInput is the input for the check_sketch tool.
type CheckSketchInput struct {
	Path string `json:"path,omitempty" jsonschema:"Path of a .sketch file to read. Either path or text is required."`
	Text string `json:"text,omitempty" jsonschema:"Sketch source text. Used when path is empty."`
	Name string `json:"name,omitempty" jsonschema:"File name used in diagnostics for text input (default: <input>)"`
}

// Diagnostic is a structured sketch error.
type Diagnostic struct {
	Kind     string `json:"kind"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Message  string `json:"message"`
	Expected string `json:"expected,omitempty"`
	Rendered string `json:"rendered"`
}

// CheckSketchOutput is the output for the check_sketch tool.
type CheckSketchOutput struct {
	Valid       bool        `json:"valid"`
	Description string      `json:"description,omitempty"`
	Error       *Diagnostic `json:"error,omitempty"`
}

// BoundsInput overrides the screen a sketch is resolved against.
type BoundsInput struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ResolveSketchInput is the input for the resolve_sketch tool.
type ResolveSketchInput struct {
	Path    string       `json:"path,omitempty" jsonschema:"Path of a .sketch file to read. Either path or text is required."`
	Text    string       `json:"text,omitempty" jsonschema:"Sketch source text. Used when path is empty."`
	Name    string       `json:"name,omitempty" jsonschema:"File name used in diagnostics for text input (default: <input>)"`
	Display string       `json:"display,omitempty" jsonschema:"Display target: active, primary, a display index or an output name (default: screen.target from config)"`
	Offline bool         `json:"offline,omitempty" jsonschema:"Resolve against the configured fallback bounds without contacting the X server"`
	Bounds  *BoundsInput `json:"bounds,omitempty" jsonschema:"Explicit screen bounds. Overrides display and offline."`
}

// ResolvedWindow is resolved geometry. Each axis is a pixel count or one
// of the strings "centered" and "default".
type ResolvedWindow struct {
	Title      string `json:"title"`
	X          any    `json:"x"`
	Y          any    `json:"y"`
	Width      any    `json:"width"`
	Height     any    `json:"height"`
	Fullscreen bool   `json:"fullscreen"`
}

// ResolveSketchOutput is the output for the resolve_sketch tool.
type ResolveSketchOutput struct {
	Display string         `json:"display"`
	Bounds  BoundsInput    `json:"bounds"`
	Window  ResolvedWindow `json:"window"`
}

// ListDisplaysInput is the input for the list_displays tool.
type ListDisplaysInput struct{}

// ListDisplaysOutput is the output for the list_displays tool.
type ListDisplaysOutput struct {
	Displays []platform.Display `json:"displays"`
}
