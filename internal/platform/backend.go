package platform

import (
	"context"

	"github.com/1broseidon/sketch/internal/sketch"
)

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// ScreenBounds converts r for the resolver.
func (r Rect) ScreenBounds() sketch.ScreenBounds {
	return sketch.ScreenBounds{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Display describes a physical display and its usable work area.
type Display struct {
	ID      int    `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Primary bool   `json:"primary" yaml:"primary"`
	Bounds  Rect   `json:"bounds" yaml:"bounds"`
	Usable  Rect   `json:"usable" yaml:"usable"`
}

// Area returns the usable work area or the full bounds of d.
func (d Display) Area(usable bool) Rect {
	if usable {
		return d.Usable
	}
	return d.Bounds
}

// Backend abstracts window-system operations across platforms.
type Backend interface {
	Displays() ([]Display, error)
	ActiveDisplay() (Display, error)
	// OpenWindow creates and shows a window for r. Centered and default
	// axes are placed within area.
	OpenWindow(area Rect, r sketch.Resolved) (WindowID, error)
	// MoveResize applies new geometry to an open window.
	MoveResize(id WindowID, area Rect, r sketch.Resolved) error
	// Run dispatches window events until every window is closed or ctx is
	// done.
	Run(ctx context.Context) error
	Close() error
}
