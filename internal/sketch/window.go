package sketch

import (
	"fmt"
	"strconv"
	"strings"
)

// Window is a window declaration assembled one attribute at a time. Every
// setter validates the declaration as it mutates it and leaves the Window
// untouched when it refuses an assignment.
type Window struct {
	title      string
	width      Dimension
	height     Dimension
	position   Position
	fullscreen bool
}

func (w *Window) Title() string { return w.title }

// Width is nil when no width was declared.
func (w *Window) Width() Dimension { return w.width }

// Height is nil when no height was declared.
func (w *Window) Height() Dimension { return w.height }

// Position is nil when no position was declared.
func (w *Window) Position() Position { return w.position }

func (w *Window) Fullscreen() bool { return w.fullscreen }

func (w *Window) SetTitle(title string) error {
	if w.title != "" {
		return &AttributeError{Attr: "title"}
	}
	if title == "" {
		return ErrEmptyTitle
	}
	w.title = title
	return nil
}

func (w *Window) SetWidth(d Dimension) error {
	return w.setDimension("width", &w.width, d)
}

func (w *Window) SetHeight(d Dimension) error {
	return w.setDimension("height", &w.height, d)
}

func (w *Window) setDimension(attr string, slot *Dimension, d Dimension) error {
	if d == nil {
		return fmt.Errorf("%s: nil dimension", attr)
	}
	if *slot != nil {
		return &AttributeError{Attr: attr}
	}
	if w.fullscreen {
		return &AttributeError{Attr: attr, With: "fullscreen"}
	}
	*slot = d
	return nil
}

func (w *Window) SetPosition(p Position) error {
	if p == nil {
		return fmt.Errorf("position: nil position")
	}
	if w.position != nil {
		return &AttributeError{Attr: "position"}
	}
	if w.fullscreen {
		return &AttributeError{Attr: "position", With: "fullscreen"}
	}
	w.position = p
	return nil
}

func (w *Window) SetFullscreen() error {
	if w.fullscreen {
		return &AttributeError{Attr: "fullscreen"}
	}
	switch {
	case w.width != nil:
		return &AttributeError{Attr: "fullscreen", With: "width"}
	case w.height != nil:
		return &AttributeError{Attr: "fullscreen", With: "height"}
	case w.position != nil:
		return &AttributeError{Attr: "fullscreen", With: "position"}
	}
	w.fullscreen = true
	return nil
}

// Describe renders the declaration in a human-readable, indented form.
func (w *Window) Describe() string {
	var b strings.Builder
	b.WriteString("window ")
	b.WriteString(strconv.Quote(w.title))
	b.WriteByte('\n')

	if w.fullscreen {
		b.WriteString("\tfullscreen\n")
		return b.String()
	}

	fmt.Fprintf(&b, "\twidth = %s\n", describeDimension(w.width, "screen-wide"))
	fmt.Fprintf(&b, "\theight = %s\n", describeDimension(w.height, "screen-high"))
	fmt.Fprintf(&b, "\tposition = %s\n", describePosition(w.position))
	return b.String()
}

func describeDimension(d Dimension, full string) string {
	switch d := d.(type) {
	case nil:
		return "unspecified"
	case Full:
		return full
	default:
		return d.String()
	}
}

func describePosition(p Position) string {
	switch p := p.(type) {
	case nil:
		return "unspecified"
	case Centered:
		return "centered"
	case Point:
		_, hc := p.Horizontal.(Centered)
		_, vc := p.Vertical.(Centered)
		if hc && vc {
			return "centered"
		}
		return "{ " + describeCoordinate(p.Horizontal, "h-centered") + ", " +
			describeCoordinate(p.Vertical, "v-centered") + " }"
	default:
		return p.String()
	}
}

func describeCoordinate(c Coordinate, centered string) string {
	if _, ok := c.(Centered); ok {
		return centered
	}
	return c.String()
}
