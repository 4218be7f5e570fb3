package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// TextFormatter writes one aligned "key value" line per field.
type TextFormatter struct{}

func (TextFormatter) Format(w io.Writer, r Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	screen := r.Bounds.String()
	if r.Display != "" {
		screen = fmt.Sprintf("%s (%s)", r.Display, screen)
	}
	rows := [][2]string{
		{"file", r.File},
		{"screen", screen},
		{"title", fmt.Sprintf("%q", r.Window.Title)},
		{"x", r.Window.X.String()},
		{"y", r.Window.Y.String()},
		{"width", r.Window.Width.String()},
		{"height", r.Window.Height.String()},
	}
	if r.Window.Fullscreen {
		rows = append(rows, [2]string{"fullscreen", "yes"})
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", row[0], strings.TrimSpace(row[1])); err != nil {
			return err
		}
	}
	return tw.Flush()
}
