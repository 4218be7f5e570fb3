//go:build linux

package platform

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/1broseidon/sketch/internal/sketch"
	"github.com/1broseidon/sketch/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// Options configures a window-system backend.
type Options struct {
	// Display is the X display name; empty means $DISPLAY.
	Display string
	// DefaultSize is used for dimensions a sketch leaves unspecified.
	DefaultSize Size
	// CloseOnEscape closes a window when Escape is pressed in it.
	CloseOnEscape bool
	Logger        *slog.Logger
}

// LinuxBackend wraps an X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn *x11.Connection
	opts Options
	log  *slog.Logger

	mu      sync.Mutex
	windows map[WindowID]*xwindow.Window
}

var _ Backend = (*LinuxBackend)(nil)

// Open connects to the X server named by opts.
func Open(opts Options) (Backend, error) {
	return NewLinuxBackend(opts)
}

// NewLinuxBackend creates a Linux backend by opening a fresh X11 connection.
func NewLinuxBackend(opts Options) (*LinuxBackend, error) {
	conn, err := x11.NewConnection(opts.Display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &LinuxBackend{
		conn:    conn,
		opts:    opts,
		log:     log,
		windows: make(map[WindowID]*xwindow.Window),
	}, nil
}

// Displays returns all active displays with their work areas.
func (b *LinuxBackend) Displays() ([]Display, error) {
	monitors, err := b.conn.GetMonitors()
	if err != nil {
		return nil, err
	}

	displays := make([]Display, 0, len(monitors))
	for _, m := range monitors {
		displays = append(displays, b.displayFromMonitor(m))
	}
	sort.Slice(displays, func(i, j int) bool {
		return displays[i].ID < displays[j].ID
	})
	return displays, nil
}

// ActiveDisplay returns the display holding the focused window or pointer.
func (b *LinuxBackend) ActiveDisplay() (Display, error) {
	m, err := b.conn.GetActiveMonitor()
	if err != nil {
		return Display{}, err
	}
	return b.displayFromMonitor(m), nil
}

func (b *LinuxBackend) displayFromMonitor(m x11.Monitor) Display {
	usable := b.conn.WorkArea(m)
	return Display{
		ID:      m.ID,
		Name:    m.Name,
		Primary: m.Primary,
		Bounds:  Rect{X: m.X, Y: m.Y, Width: m.Width, Height: m.Height},
		Usable:  Rect{X: usable.X, Y: usable.Y, Width: usable.Width, Height: usable.Height},
	}
}

// OpenWindow creates and maps a window for r.
func (b *LinuxBackend) OpenWindow(area Rect, r sketch.Resolved) (WindowID, error) {
	p := Place(r, area, b.opts.DefaultSize)
	win, err := b.conn.CreateWindow(r.Title, x11.WindowGeometry{
		X:            p.X,
		Y:            p.Y,
		Width:        p.Width,
		Height:       p.Height,
		UserPosition: p.UserPosition,
		UserSize:     p.UserSize,
		Fullscreen:   p.Fullscreen,
	})
	if err != nil {
		return 0, err
	}

	id := WindowID(win.Id)
	b.mu.Lock()
	b.windows[id] = win
	b.mu.Unlock()

	b.conn.OnClose(win, func() {
		b.log.Debug("window close requested", "window", id)
		b.destroy(id)
	})
	b.conn.OnDestroy(win, func() {
		b.forget(id)
	})
	if b.opts.CloseOnEscape {
		b.conn.OnKeyPress(win, func(key string) {
			if key == "Escape" {
				b.log.Debug("escape pressed", "window", id)
				b.destroy(id)
			}
		})
	}

	b.log.Info("window opened",
		"window", id,
		"title", r.Title,
		"x", p.X, "y", p.Y,
		"width", p.Width, "height", p.Height,
		"fullscreen", p.Fullscreen,
	)
	return id, nil
}

// MoveResize applies r to an open window.
func (b *LinuxBackend) MoveResize(id WindowID, area Rect, r sketch.Resolved) error {
	b.mu.Lock()
	_, ok := b.windows[id]
	b.mu.Unlock()
	if !ok {
		return fmt.Errorf("window %d is not open", id)
	}

	if err := b.conn.SetTitle(xproto.Window(id), r.Title); err != nil {
		return err
	}
	if r.Fullscreen {
		return b.conn.SetFullscreen(xproto.Window(id), true)
	}
	p := Place(r, area, b.opts.DefaultSize)
	return b.conn.MoveResizeWindow(xproto.Window(id), p.X, p.Y, p.Width, p.Height)
}

// Run dispatches X events until every window is gone or ctx is done.
func (b *LinuxBackend) Run(ctx context.Context) error {
	if b.open() == 0 {
		return nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		b.conn.EventLoop()
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		// Destroying the windows wakes the loop so it can observe Quit.
		b.conn.Quit()
		b.destroyAll()
		return ctx.Err()
	}
}

// Close destroys open windows and disconnects from the X server.
func (b *LinuxBackend) Close() error {
	b.destroyAll()
	b.conn.Close()
	return nil
}

func (b *LinuxBackend) open() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.windows)
}

func (b *LinuxBackend) destroy(id WindowID) {
	b.mu.Lock()
	win, ok := b.windows[id]
	b.mu.Unlock()
	if ok {
		win.Destroy()
		b.forget(id)
	}
}

func (b *LinuxBackend) destroyAll() {
	b.mu.Lock()
	ids := make([]WindowID, 0, len(b.windows))
	for id := range b.windows {
		ids = append(ids, id)
	}
	b.mu.Unlock()
	for _, id := range ids {
		b.destroy(id)
	}
}

// forget drops id and stops the event loop after the last window.
func (b *LinuxBackend) forget(id WindowID) {
	b.mu.Lock()
	delete(b.windows, id)
	last := len(b.windows) == 0
	b.mu.Unlock()
	if last {
		b.conn.Quit()
	}
}
