package preview

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const defaultColumns = 80

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	screenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	windowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// TerminalColumns returns the width of stdout, or 80 when stdout is not a
// terminal.
func TerminalColumns() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultColumns
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultColumns
	}
	return w
}

// Size picks the canvas size. Zero columns means the terminal width and
// zero rows keeps the area's aspect ratio.
func Size(f Frame, columns, rows int) (int, int) {
	if columns <= 0 {
		columns = TerminalColumns()
	}
	if rows <= 0 {
		rows = CanvasRows(f.Area, columns)
	}
	return columns, rows
}

// Render returns a styled preview: a heading, the canvas and a summary line.
func Render(f Frame, heading string, columns, rows int) string {
	columns, rows = Size(f, columns, rows)
	lines := RenderASCII(f, columns, rows)

	var b strings.Builder
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n")
	b.WriteString(colorize(lines))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(f.Summary()))
	b.WriteString("\n")
	return b.String()
}

// colorize styles the screen border and the window box apart.
func colorize(lines []string) string {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		var run strings.Builder
		screen := true
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if screen {
				b.WriteString(screenStyle.Render(run.String()))
			} else {
				b.WriteString(windowStyle.Render(run.String()))
			}
			run.Reset()
		}
		for _, r := range line {
			isScreen := strings.ContainsRune("═║╔╗╚╝ ", r)
			if isScreen != screen {
				flush()
				screen = isScreen
			}
			run.WriteRune(r)
		}
		flush()
	}
	return b.String()
}

func errorLine(msg string) string {
	return errorStyle.Render("error: " + msg)
}
