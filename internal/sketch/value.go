package sketch

import (
	"fmt"
	"math"
	"strconv"
)

// Dimension is a symbolic width or height. The variants are Full, Percent and
// Pixels; a nil Dimension means the size is left to the windowing platform.
type Dimension interface {
	fmt.Stringer
	dimension()
}

// Coordinate is a symbolic offset along one axis: Centered, Percent or Pixels.
type Coordinate interface {
	fmt.Stringer
	coordinate()
}

// Position places a window: Centered on both axes, or a Point.
type Position interface {
	fmt.Stringer
	position()
}

// Full spans the whole screen extent.
type Full struct{}

func (Full) dimension() {}
func (Full) String() string { return "full" }

// Centered asks the windowing platform to center the window.
type Centered struct{}

func (Centered) coordinate() {}
func (Centered) position() {}
func (Centered) String() string { return "centered" }

// Percent is a fraction of the screen extent; 0.5 is 50%. Values above 1 are
// accepted and clamped when resolved.
type Percent float64

func (Percent) dimension() {}
func (Percent) coordinate() {}

func (p Percent) String() string {
	return strconv.FormatInt(int64(math.Round(float64(p)*100)), 10) + "%"
}

// Pixels is an absolute, non-negative pixel count.
type Pixels int

func (Pixels) dimension() {}
func (Pixels) coordinate() {}

func (n Pixels) String() string { return strconv.Itoa(int(n)) + "px" }

// Point places the window independently on each axis.
type Point struct {
	Horizontal Coordinate
	Vertical   Coordinate
}

func (Point) position() {}

func (p Point) String() string {
	return p.Horizontal.String() + "," + p.Vertical.String()
}
