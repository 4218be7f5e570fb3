// Package preview draws resolved window geometry in a terminal.
package preview

import (
	"fmt"
	"strings"

	"github.com/1broseidon/sketch/internal/platform"
	"github.com/1broseidon/sketch/internal/sketch"
)

// Frame is one window placed on one screen area.
type Frame struct {
	Title string
	Area  platform.Rect
	platform.Placement
}

// NewFrame places r within area the way a backend would.
func NewFrame(r sketch.Resolved, area platform.Rect, def platform.Size) Frame {
	return Frame{
		Title:     r.Title,
		Area:      area,
		Placement: platform.Place(r, area, def),
	}
}

// Summary is a one-line description of the placement.
func (f Frame) Summary() string {
	s := fmt.Sprintf("%d×%d at %d,%d on %d×%d", f.Width, f.Height, f.X, f.Y, f.Area.Width, f.Area.Height)
	if f.Fullscreen {
		s += " • fullscreen"
	}
	return s
}

// CanvasRows derives a row count that keeps the area's aspect ratio for the
// given column count. Terminal cells are about twice as tall as wide.
func CanvasRows(area platform.Rect, columns int) int {
	if area.Width <= 0 || columns <= 0 {
		return 0
	}
	return max(columns*area.Height/area.Width/2, 5)
}

// RenderASCII draws the area as a double-line border and the window as a
// single-line box inside it, labelled with its title. Parts of the window
// outside the area are clipped.
func RenderASCII(f Frame, width, height int) []string {
	if width < 5 || height < 3 || f.Area.Width <= 0 || f.Area.Height <= 0 {
		return emptyCanvas(width, height)
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	drawBorder(canvas, width, height)
	drawWindow(canvas, f, width, height)

	lines := make([]string, height)
	for i, row := range canvas {
		lines[i] = string(row)
	}
	return lines
}

// scale maps the pixel offset v in [0, extent] onto the interior cells
// [1, cells].
func scale(v, extent, cells int) int {
	return 1 + v*cells/extent
}

func drawWindow(canvas [][]rune, f Frame, canvasW, canvasH int) {
	innerW, innerH := canvasW-2, canvasH-2

	x1 := scale(f.X-f.Area.X, f.Area.Width, innerW)
	y1 := scale(f.Y-f.Area.Y, f.Area.Height, innerH)
	x2 := scale(f.X+f.Width-f.Area.X, f.Area.Width, innerW) - 1
	y2 := scale(f.Y+f.Height-f.Area.Y, f.Area.Height, innerH) - 1

	// Keep tiny windows visible as at least a 2x2 box.
	if x2 <= x1 {
		x2 = x1 + 1
	}
	if y2 <= y1 {
		y2 = y1 + 1
	}

	// Entirely off the area.
	if x2 < 1 || y2 < 1 || x1 > innerW || y1 > innerH {
		return
	}

	inside := func(x, y int) bool { return x >= 1 && x <= innerW && y >= 1 && y <= innerH }
	set := func(x, y int, r rune) {
		if inside(x, y) {
			canvas[y][x] = r
		}
	}

	for x := x1; x <= x2; x++ {
		set(x, y1, '─')
		set(x, y2, '─')
	}
	for y := y1; y <= y2; y++ {
		set(x1, y, '│')
		set(x2, y, '│')
	}
	set(x1, y1, '┌')
	set(x2, y1, '┐')
	set(x1, y2, '└')
	set(x2, y2, '┘')

	label := []rune(f.Title)
	room := x2 - x1 - 1
	if room <= 0 || y2-y1 < 2 {
		return
	}
	if len(label) > room {
		label = append(label[:room-1], '…')
	}
	centerY := (y1 + y2) / 2
	startX := x1 + 1 + (room-len(label))/2
	for i, r := range label {
		set(startX+i, centerY, r)
	}
}

func drawBorder(canvas [][]rune, width, height int) {
	for x := 0; x < width; x++ {
		canvas[0][x] = '═'
		canvas[height-1][x] = '═'
	}
	for y := 0; y < height; y++ {
		canvas[y][0] = '║'
		canvas[y][width-1] = '║'
	}
	canvas[0][0] = '╔'
	canvas[0][width-1] = '╗'
	canvas[height-1][0] = '╚'
	canvas[height-1][width-1] = '╝'
}

func emptyCanvas(width, height int) []string {
	if height <= 0 {
		return nil
	}
	lines := make([]string, height)
	empty := strings.Repeat(" ", max(width, 0))
	for i := range lines {
		lines[i] = empty
	}
	return lines
}
