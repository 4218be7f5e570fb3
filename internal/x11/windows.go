package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"
)

const (
	stateFullscreen = "_NET_WM_STATE_FULLSCREEN"
	deleteWindow    = "WM_DELETE_WINDOW"
)

// WindowGeometry is the initial placement of a new top-level window.
// UserPosition and UserSize mark values the window manager should honor
// instead of choosing its own.
type WindowGeometry struct {
	X, Y          int
	Width, Height int
	UserPosition  bool
	UserSize      bool
	Fullscreen    bool
}

// CreateWindow creates and maps a top-level window. It listens for key
// presses and structure changes; see OnClose and OnKeyPress.
func (c *Connection) CreateWindow(title string, g WindowGeometry) (*xwindow.Window, error) {
	win, err := xwindow.Generate(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate window id: %w", err)
	}

	err = win.CreateChecked(c.Root, g.X, g.Y, max(g.Width, 1), max(g.Height, 1),
		xproto.CwBackPixel|xproto.CwEventMask,
		c.XUtil.Screen().BlackPixel,
		xproto.EventMaskKeyPress|xproto.EventMaskStructureNotify)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if err := c.describeWindow(win.Id, title, g); err != nil {
		win.Destroy()
		return nil, err
	}

	win.Map()
	return win, nil
}

// SetTitle sets both the EWMH and the ICCCM window name.
func (c *Connection) SetTitle(id xproto.Window, title string) error {
	if err := ewmh.WmNameSet(c.XUtil, id, title); err != nil {
		return fmt.Errorf("failed to set _NET_WM_NAME: %w", err)
	}
	if err := icccm.WmNameSet(c.XUtil, id, title); err != nil {
		return fmt.Errorf("failed to set WM_NAME: %w", err)
	}
	return nil
}

func (c *Connection) describeWindow(id xproto.Window, title string, g WindowGeometry) error {
	if err := c.SetTitle(id, title); err != nil {
		return err
	}
	if err := icccm.WmClassSet(c.XUtil, id, &icccm.WmClass{Instance: "sketch", Class: "Sketch"}); err != nil {
		return fmt.Errorf("failed to set WM_CLASS: %w", err)
	}
	if err := icccm.WmProtocolsSet(c.XUtil, id, []string{deleteWindow}); err != nil {
		return fmt.Errorf("failed to set WM_PROTOCOLS: %w", err)
	}

	hints := &icccm.NormalHints{
		X:      g.X,
		Y:      g.Y,
		Width:  uint(max(g.Width, 1)),
		Height: uint(max(g.Height, 1)),
	}
	if g.UserPosition {
		hints.Flags |= icccm.SizeHintUSPosition
	}
	if g.UserSize {
		hints.Flags |= icccm.SizeHintUSSize
	}
	if err := icccm.WmNormalHintsSet(c.XUtil, id, hints); err != nil {
		return fmt.Errorf("failed to set WM_NORMAL_HINTS: %w", err)
	}

	if g.Fullscreen {
		// Set before mapping; the window manager reads it on map.
		if err := ewmh.WmStateSet(c.XUtil, id, []string{stateFullscreen}); err != nil {
			return fmt.Errorf("failed to set fullscreen state: %w", err)
		}
	}
	return nil
}

// MoveResizeWindow moves and resizes a mapped window, dropping any
// maximized or fullscreen state first.
func (c *Connection) MoveResizeWindow(windowID xproto.Window, x, y, width, height int) error {
	// Some windows do not support state changes; geometry still applies.
	_ = c.clearStates(windowID, "_NET_WM_STATE_MAXIMIZED_HORZ", "_NET_WM_STATE_MAXIMIZED_VERT", stateFullscreen)

	// EWMH first for window manager compatibility, raw configure otherwise.
	if err := ewmh.MoveresizeWindow(c.XUtil, windowID, x, y, width, height); err != nil {
		xwindow.New(c.XUtil, windowID).MoveResize(x, y, width, height)
	}
	return nil
}

// SetFullscreen asks the window manager to add or remove the fullscreen
// state of a mapped window.
func (c *Connection) SetFullscreen(windowID xproto.Window, on bool) error {
	action := ewmh.StateRemove
	if on {
		action = ewmh.StateAdd
	}
	return ewmh.WmStateReq(c.XUtil, windowID, action, stateFullscreen)
}

func (c *Connection) clearStates(windowID xproto.Window, names ...string) error {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		return err
	}
	for _, state := range states {
		for _, name := range names {
			if state == name {
				if err := ewmh.WmStateReq(c.XUtil, windowID, ewmh.StateRemove, name); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// OnClose calls fn when the window manager asks win to close.
func (c *Connection) OnClose(win *xwindow.Window, fn func()) {
	xevent.ClientMessageFun(func(xu *xgbutil.XUtil, ev xevent.ClientMessageEvent) {
		if ev.Format != 32 || len(ev.Data.Data32) == 0 {
			return
		}
		name, err := xprop.AtomName(xu, xproto.Atom(ev.Data.Data32[0]))
		if err == nil && name == deleteWindow {
			fn()
		}
	}).Connect(c.XUtil, win.Id)
}

// OnKeyPress calls fn with the keysym name of every key pressed in win,
// e.g. "Escape".
func (c *Connection) OnKeyPress(win *xwindow.Window, fn func(key string)) {
	xevent.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		fn(keybind.LookupString(xu, ev.State, ev.Detail))
	}).Connect(c.XUtil, win.Id)
}

// OnDestroy calls fn once win is gone.
func (c *Connection) OnDestroy(win *xwindow.Window, fn func()) {
	xevent.DestroyNotifyFun(func(xu *xgbutil.XUtil, ev xevent.DestroyNotifyEvent) {
		fn()
	}).Connect(c.XUtil, win.Id)
}
