package platform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/1broseidon/sketch/internal/sketch"
)

// Display targets understood by SelectDisplay besides an index or an output
// name.
const (
	TargetActive  = "active"
	TargetPrimary = "primary"
)

// Screen is the display a sketch is shown on together with the area it is
// resolved against.
type Screen struct {
	Display Display
	Area    Rect
}

// Bounds returns the area as resolver input.
func (s Screen) Bounds() sketch.ScreenBounds {
	return s.Area.ScreenBounds()
}

// QueryScreen selects the target display once and returns its full or
// usable area.
func QueryScreen(b Backend, target string, usable bool) (Screen, error) {
	d, err := SelectDisplay(b, target)
	if err != nil {
		return Screen{}, err
	}
	return Screen{Display: d, Area: d.Area(usable)}, nil
}

// SelectDisplay picks a display by target: "active", "primary", a display
// index, or an output name such as "HDMI-1". An empty target means active.
func SelectDisplay(b Backend, target string) (Display, error) {
	target = strings.TrimSpace(target)
	if target == "" || target == TargetActive {
		return b.ActiveDisplay()
	}

	displays, err := b.Displays()
	if err != nil {
		return Display{}, err
	}
	if len(displays) == 0 {
		return Display{}, fmt.Errorf("no displays found")
	}

	if target == TargetPrimary {
		for _, d := range displays {
			if d.Primary {
				return d, nil
			}
		}
		return displays[0], nil
	}

	if id, err := strconv.Atoi(target); err == nil {
		for _, d := range displays {
			if d.ID == id {
				return d, nil
			}
		}
		return Display{}, fmt.Errorf("display %d not found (have %s)", id, displayNames(displays))
	}

	for _, d := range displays {
		if d.Name == target {
			return d, nil
		}
	}
	return Display{}, fmt.Errorf("display %q not found (have %s)", target, displayNames(displays))
}

func displayNames(displays []Display) string {
	names := make([]string, 0, len(displays))
	for _, d := range displays {
		names = append(names, fmt.Sprintf("%d:%s", d.ID, d.Name))
	}
	return strings.Join(names, ", ")
}
