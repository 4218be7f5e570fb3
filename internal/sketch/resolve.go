package sketch

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ScreenBounds is the rectangle of the target display.
type ScreenBounds struct {
	X      int `json:"x" yaml:"x" toml:"x"`
	Y      int `json:"y" yaml:"y" toml:"y"`
	Width  int `json:"width" yaml:"width" toml:"width"`
	Height int `json:"height" yaml:"height" toml:"height"`
}

func (b ScreenBounds) String() string {
	return fmt.Sprintf("%d,%d %dx%d", b.X, b.Y, b.Width, b.Height)
}

// AxisKind says how one resolved coordinate or extent is to be applied.
type AxisKind int

const (
	// AxisDefault leaves the value to the windowing platform.
	AxisDefault AxisKind = iota
	// AxisCentered asks the windowing platform to center on this axis.
	AxisCentered
	AxisPixels
)

// Axis is one resolved geometry value. The zero Axis is the platform default,
// which is distinct from PixelAxis(0).
type Axis struct {
	Kind   AxisKind
	Pixels int
}

func DefaultAxis() Axis { return Axis{} }

func CenteredAxis() Axis { return Axis{Kind: AxisCentered} }

func PixelAxis(n int) Axis { return Axis{Kind: AxisPixels, Pixels: n} }

func (a Axis) IsDefault() bool { return a.Kind == AxisDefault }
func (a Axis) IsCentered() bool { return a.Kind == AxisCentered }

// Value returns the pixel value and whether the axis has one.
func (a Axis) Value() (int, bool) {
	return a.Pixels, a.Kind == AxisPixels
}

func (a Axis) String() string {
	switch a.Kind {
	case AxisCentered:
		return "centered"
	case AxisPixels:
		return strconv.Itoa(a.Pixels)
	default:
		return "default"
	}
}

func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Axis) UnmarshalText(text []byte) error {
	switch s := string(text); s {
	case "default", "":
		*a = DefaultAxis()
	case "centered":
		*a = CenteredAxis()
	default:
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid axis %q", s)
		}
		*a = PixelAxis(n)
	}
	return nil
}

// MarshalJSON writes pixel values as numbers and sentinels as strings.
func (a Axis) MarshalJSON() ([]byte, error) {
	if n, ok := a.Value(); ok {
		return []byte(strconv.Itoa(n)), nil
	}
	return json.Marshal(a.String())
}

func (a *Axis) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*a = PixelAxis(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid axis %s", data)
	}
	return a.UnmarshalText([]byte(s))
}

// MarshalYAML writes pixel values as integers and sentinels as strings.
func (a Axis) MarshalYAML() (interface{}, error) {
	if n, ok := a.Value(); ok {
		return n, nil
	}
	return a.String(), nil
}

// Resolved is the concrete geometry of a window on one screen.
type Resolved struct {
	Title      string `json:"title" yaml:"title" toml:"title"`
	X          Axis   `json:"x" yaml:"x" toml:"x"`
	Y          Axis   `json:"y" yaml:"y" toml:"y"`
	Width      Axis   `json:"width" yaml:"width" toml:"width"`
	Height     Axis   `json:"height" yaml:"height" toml:"height"`
	Fullscreen bool   `json:"fullscreen" yaml:"fullscreen" toml:"fullscreen"`
}

// Resolve computes the geometry of w on the screen b. Sizes and offsets never
// exceed the screen extent. Offsets are not reduced by the window's own size,
// so a large offset can place the window partly off-screen.
func Resolve(w *Window, b ScreenBounds) Resolved {
	width, height := max(b.Width, 0), max(b.Height, 0)
	r := Resolved{Title: w.Title()}

	if w.Fullscreen() {
		r.Fullscreen = true
		r.X, r.Y = PixelAxis(b.X), PixelAxis(b.Y)
		r.Width, r.Height = PixelAxis(width), PixelAxis(height)
		return r
	}

	r.Width = resolveDimension(w.Width(), width)
	r.Height = resolveDimension(w.Height(), height)

	switch p := w.Position().(type) {
	case Centered:
		r.X, r.Y = CenteredAxis(), CenteredAxis()
	case Point:
		r.X = resolveCoordinate(p.Horizontal, b.X, width)
		r.Y = resolveCoordinate(p.Vertical, b.Y, height)
	}
	return r
}

func resolveDimension(d Dimension, extent int) Axis {
	switch d := d.(type) {
	case Full:
		return PixelAxis(extent)
	case Percent:
		return PixelAxis(percentOf(d, extent))
	case Pixels:
		return PixelAxis(min(int(d), extent))
	}
	return DefaultAxis()
}

func resolveCoordinate(c Coordinate, origin, extent int) Axis {
	switch c := c.(type) {
	case Centered:
		return CenteredAxis()
	case Percent:
		return PixelAxis(origin + percentOf(c, extent))
	case Pixels:
		return PixelAxis(origin + min(int(c), extent))
	}
	return DefaultAxis()
}

func percentOf(p Percent, extent int) int {
	v := math.Round(float64(p) * float64(extent))
	if v >= float64(extent) {
		return extent
	}
	return int(v)
}
