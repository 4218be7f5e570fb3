package output

import (
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/1broseidon/sketch/internal/sketch"
)

// TOMLFormatter writes a TOML document. Pixel axes become integers and
// sentinels become strings.
type TOMLFormatter struct{}

type tomlWindow struct {
	Title      string `toml:"title"`
	X          any    `toml:"x"`
	Y          any    `toml:"y"`
	Width      any    `toml:"width"`
	Height     any    `toml:"height"`
	Fullscreen bool   `toml:"fullscreen"`
}

type tomlReport struct {
	File    string              `toml:"file"`
	Display string              `toml:"display,omitempty"`
	Bounds  sketch.ScreenBounds `toml:"bounds"`
	Window  tomlWindow          `toml:"window"`
}

func tomlAxis(a sketch.Axis) any {
	if n, ok := a.Value(); ok {
		return int64(n)
	}
	return a.String()
}

func (TOMLFormatter) Format(w io.Writer, r Report) error {
	doc := tomlReport{
		File:    r.File,
		Display: r.Display,
		Bounds:  r.Bounds,
		Window: tomlWindow{
			Title:      r.Window.Title,
			X:          tomlAxis(r.Window.X),
			Y:          tomlAxis(r.Window.Y),
			Width:      tomlAxis(r.Window.Width),
			Height:     tomlAxis(r.Window.Height),
			Fullscreen: r.Window.Fullscreen,
		},
	}
	return toml.NewEncoder(w).Encode(doc)
}
