// Package output encodes resolved window geometry.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/1broseidon/sketch/internal/sketch"
)

// Report is one resolution: the sketch, the screen it was resolved on and
// the resulting geometry.
type Report struct {
	File    string              `json:"file" yaml:"file" toml:"file"`
	Display string              `json:"display,omitempty" yaml:"display,omitempty" toml:"display,omitempty"`
	Bounds  sketch.ScreenBounds `json:"bounds" yaml:"bounds" toml:"bounds"`
	Window  sketch.Resolved     `json:"window" yaml:"window" toml:"window"`
}

// Formatter writes reports.
type Formatter interface {
	Format(w io.Writer, r Report) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatText FormatType = "text"
	FormatJSON FormatType = "json"
	FormatYAML FormatType = "yaml"
	FormatTOML FormatType = "toml"
)

// Formats lists the accepted format names.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML), string(FormatTOML)}
}

// NewFormatter creates a formatter for the named format.
func NewFormatter(format string) (Formatter, error) {
	switch FormatType(strings.ToLower(strings.TrimSpace(format))) {
	case FormatText, "":
		return TextFormatter{}, nil
	case FormatJSON:
		return JSONFormatter{}, nil
	case FormatYAML:
		return YAMLFormatter{}, nil
	case FormatTOML:
		return TOMLFormatter{}, nil
	}
	return nil, fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats(), ", "))
}
