package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/sketch/internal/platform"
	"github.com/1broseidon/sketch/internal/sketch"
)

// ReloadMsg delivers a reparsed sketch to a running Model.
type ReloadMsg struct {
	Window *sketch.Window
	Err    error
}

// Options configures an interactive Model.
type Options struct {
	File        string
	Displays    []platform.Display
	Start       int // index into Displays
	Usable      bool
	DefaultSize platform.Size
}

// Model is the bubbletea model of the interactive preview. It cycles the
// sketch across displays and picks up reloads.
type Model struct {
	opts   Options
	win    *sketch.Window
	err    error
	index  int
	usable bool
	keys   KeyMap
	help   help.Model
	width  int
	height int
}

func NewModel(w *sketch.Window, opts Options) Model {
	index := opts.Start
	if index < 0 || index >= len(opts.Displays) {
		index = 0
	}
	return Model{
		opts:   opts,
		win:    w,
		index:  index,
		usable: opts.Usable,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// NewProgram runs m full-screen.
func NewProgram(m Model) *tea.Program {
	return tea.NewProgram(m, tea.WithAltScreen())
}

// Display returns the display currently shown.
func (m Model) Display() (platform.Display, bool) {
	if len(m.opts.Displays) == 0 {
		return platform.Display{}, false
	}
	return m.opts.Displays[m.index], true
}

// Frame resolves the sketch against the current display.
func (m Model) Frame() (Frame, bool) {
	d, ok := m.Display()
	if !ok || m.win == nil {
		return Frame{}, false
	}
	area := d.Area(m.usable)
	r := sketch.Resolve(m.win, area.ScreenBounds())
	return NewFrame(r, area, m.opts.DefaultSize), true
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case ReloadMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.win = msg.Window
		m.err = nil

	case tea.KeyMsg:
		n := len(m.opts.Displays)
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			if n > 0 {
				m.index = (m.index + 1) % n
			}
		case key.Matches(msg, m.keys.Prev):
			if n > 0 {
				m.index = (m.index - 1 + n) % n
			}
		case key.Matches(msg, m.keys.Usable):
			m.usable = !m.usable
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m Model) heading() string {
	d, _ := m.Display()
	area := "bounds"
	if m.usable {
		area = "work area"
	}
	title := ""
	if m.win != nil {
		title = m.win.Title()
	}
	return fmt.Sprintf("%s • %d:%s %s (%d/%d)", title, d.ID, d.Name, area, m.index+1, len(m.opts.Displays))
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	f, ok := m.Frame()
	if !ok {
		return errorLine("no displays") + "\n"
	}

	heading := titleStyle.Render(m.heading())
	summary := dimStyle.Render(f.Summary())
	helpBar := m.help.View(m.keys)
	footer := []string{summary}
	if m.err != nil {
		footer = append(footer, errorLine(firstLine(m.err)))
	}
	footer = append(footer, helpBar)
	bottom := lipgloss.JoinVertical(lipgloss.Left, footer...)

	rows := m.height - lipgloss.Height(heading) - lipgloss.Height(bottom)
	rows = min(rows, CanvasRows(f.Area, m.width))
	canvas := colorize(RenderASCII(f, m.width, max(rows, 3)))

	return lipgloss.JoinVertical(lipgloss.Left, heading, canvas, bottom)
}

func firstLine(err error) string {
	msg, _, _ := strings.Cut(err.Error(), "\n")
	return msg
}
