package platform

import "github.com/1broseidon/sketch/internal/sketch"

// Size is the window size used for dimensions left to the platform.
type Size struct {
	Width  int
	Height int
}

// Placement is the concrete geometry a backend applies for a resolved
// window. UserPosition and UserSize report whether the sketch asked for
// them; a window manager is free to override the rest.
type Placement struct {
	Rect
	UserPosition bool
	UserSize     bool
	Fullscreen   bool
}

// Place turns r into concrete geometry within area. Unspecified sizes fall
// back to def, capped at the area. Centered axes are centered in area and an
// unspecified axis starts at the area origin.
func Place(r sketch.Resolved, area Rect, def Size) Placement {
	p := Placement{Fullscreen: r.Fullscreen}

	w, wok := r.Width.Value()
	if !wok {
		w = min(def.Width, area.Width)
	}
	h, hok := r.Height.Value()
	if !hok {
		h = min(def.Height, area.Height)
	}
	p.Width, p.Height = max(w, 1), max(h, 1)
	p.UserSize = wok || hok

	p.X = placeAxis(r.X, area.X, area.Width, p.Width)
	p.Y = placeAxis(r.Y, area.Y, area.Height, p.Height)
	p.UserPosition = !r.X.IsDefault() || !r.Y.IsDefault()
	return p
}

func placeAxis(a sketch.Axis, origin, extent, size int) int {
	switch a.Kind {
	case sketch.AxisPixels:
		return a.Pixels
	case sketch.AxisCentered:
		return origin + (extent-size)/2
	default:
		return origin
	}
}
