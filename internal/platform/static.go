package platform

import (
	"context"
	"errors"
	"fmt"

	"github.com/1broseidon/sketch/internal/sketch"
)

// ErrNoWindows is returned by backends that can describe displays but not
// create windows.
var ErrNoWindows = errors.New("backend cannot open windows")

// Static is a Backend over a fixed list of displays. It serves offline
// resolution, where no window system is reachable.
type Static struct {
	displays []Display
}

var _ Backend = (*Static)(nil)

// NewStatic returns a backend reporting displays. The first primary display,
// or else the first display, is the active one.
func NewStatic(displays ...Display) *Static {
	return &Static{displays: append([]Display(nil), displays...)}
}

// StaticRect returns a backend with a single primary display covering r.
func StaticRect(r Rect) *Static {
	return NewStatic(Display{ID: 0, Name: "static", Primary: true, Bounds: r, Usable: r})
}

func (s *Static) Displays() ([]Display, error) {
	return append([]Display(nil), s.displays...), nil
}

func (s *Static) ActiveDisplay() (Display, error) {
	if len(s.displays) == 0 {
		return Display{}, fmt.Errorf("no displays found")
	}
	for _, d := range s.displays {
		if d.Primary {
			return d, nil
		}
	}
	return s.displays[0], nil
}

func (s *Static) OpenWindow(Rect, sketch.Resolved) (WindowID, error) {
	return 0, ErrNoWindows
}

func (s *Static) MoveResize(WindowID, Rect, sketch.Resolved) error {
	return ErrNoWindows
}

func (s *Static) Run(context.Context) error { return nil }

func (s *Static) Close() error { return nil }
