package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// Monitor represents a physical display
type Monitor struct {
	ID      int
	Name    string
	Primary bool
	X       int
	Y       int
	Width   int
	Height  int
}

func (m Monitor) contains(x, y int) bool {
	return x >= m.X && x < m.X+m.Width && y >= m.Y && y < m.Y+m.Height
}

// GetMonitors retrieves all active monitors using XRandR
func (c *Connection) GetMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var primary randr.Output
	if reply, err := randr.GetOutputPrimary(c.XUtil.Conn(), c.Root).Reply(); err == nil {
		primary = reply.Output
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Disabled CRTCs have no size or no outputs.
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("Monitor%d", i)
		out, err := randr.GetOutputInfo(c.XUtil.Conn(), info.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil {
			name = string(out.Name)
		}

		isPrimary := false
		for _, o := range info.Outputs {
			if primary != 0 && o == primary {
				isPrimary = true
			}
		}

		monitors = append(monitors, Monitor{
			ID:      i,
			Name:    name,
			Primary: isPrimary,
			X:       int(info.X),
			Y:       int(info.Y),
			Width:   int(info.Width),
			Height:  int(info.Height),
		})
	}

	return monitors, nil
}

// GetActiveMonitor returns the monitor holding the focused window, falling
// back to the one under the pointer and then the first one.
func (c *Connection) GetActiveMonitor() (Monitor, error) {
	monitors, err := c.GetMonitors()
	if err != nil {
		return Monitor{}, err
	}
	if len(monitors) == 0 {
		return Monitor{}, fmt.Errorf("no monitors found")
	}

	if win, err := ewmh.ActiveWindowGet(c.XUtil); err == nil && win != 0 {
		if x, y, ok := c.windowCenter(win); ok {
			if m, ok := monitorAt(monitors, x, y); ok {
				return m, nil
			}
		}
	}

	if pointer, err := xproto.QueryPointer(c.XUtil.Conn(), c.Root).Reply(); err == nil {
		if m, ok := monitorAt(monitors, int(pointer.RootX), int(pointer.RootY)); ok {
			return m, nil
		}
	}

	return monitors[0], nil
}

func monitorAt(monitors []Monitor, x, y int) (Monitor, bool) {
	for _, m := range monitors {
		if m.contains(x, y) {
			return m, true
		}
	}
	return Monitor{}, false
}

func (c *Connection) windowCenter(win xproto.Window) (int, int, bool) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return 0, 0, false
	}
	tr, err := xproto.TranslateCoordinates(c.XUtil.Conn(), win, c.Root, 0, 0).Reply()
	if err != nil {
		return 0, 0, false
	}
	return int(tr.DstX) + int(geom.Width)/2, int(tr.DstY) + int(geom.Height)/2, true
}

// WorkArea returns the part of m not covered by docks and panels. Dock
// struts are preferred; the EWMH work area of the current desktop is the
// fallback. m itself is returned when neither is available.
func (c *Connection) WorkArea(m Monitor) Monitor {
	if area, ok := c.strutArea(m); ok {
		return area
	}

	workArea, err := ewmh.WorkareaGet(c.XUtil)
	if err != nil || len(workArea) == 0 {
		return m
	}
	desktop := 0
	if cur, err := ewmh.CurrentDesktopGet(c.XUtil); err == nil && int(cur) < len(workArea) {
		desktop = int(cur)
	}
	wa := workArea[desktop]

	isect := rectOf(m).intersect(rect{int(wa.X), int(wa.Y), int(wa.X) + int(wa.Width), int(wa.Y) + int(wa.Height)})
	if isect.empty() {
		return m
	}
	return isect.apply(m)
}

// rect is a half-open box [x1,x2) x [y1,y2).
type rect struct {
	x1, y1, x2, y2 int
}

func rectOf(m Monitor) rect {
	return rect{m.X, m.Y, m.X + m.Width, m.Y + m.Height}
}

func (r rect) intersect(o rect) rect {
	return rect{max(r.x1, o.x1), max(r.y1, o.y1), min(r.x2, o.x2), min(r.y2, o.y2)}
}

func (r rect) empty() bool { return r.x2 <= r.x1 || r.y2 <= r.y1 }

func (r rect) width() int {
	if r.empty() {
		return 0
	}
	return r.x2 - r.x1
}

func (r rect) height() int {
	if r.empty() {
		return 0
	}
	return r.y2 - r.y1
}

func (r rect) apply(m Monitor) Monitor {
	m.X, m.Y = r.x1, r.y1
	m.Width, m.Height = r.width(), r.height()
	return m
}

// insets accumulates how far docks reach into a monitor from each edge.
type insets struct {
	left, right, top, bottom int
}

func (in insets) zero() bool {
	return in.left == 0 && in.right == 0 && in.top == 0 && in.bottom == 0
}

func (c *Connection) strutArea(m Monitor) (Monitor, bool) {
	root, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return m, false
	}
	rootW, rootH := int(root.Width), int(root.Height)

	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return m, false
	}

	var in insets
	for _, win := range clients {
		if !c.isDock(win) {
			continue
		}
		sp, err := ewmh.WmStrutPartialGet(c.XUtil, win)
		if err != nil {
			// Some docks only set _NET_WM_STRUT, which spans the whole edge.
			s, err := ewmh.WmStrutGet(c.XUtil, win)
			if err != nil {
				continue
			}
			sp = &ewmh.WmStrutPartial{
				Left: s.Left, Right: s.Right, Top: s.Top, Bottom: s.Bottom,
				LeftEndY: uint(rootH - 1), RightEndY: uint(rootH - 1),
				TopEndX: uint(rootW - 1), BottomEndX: uint(rootW - 1),
			}
		}
		in = in.add(rectOf(m), rootW, rootH, sp)
	}
	if in.zero() {
		return m, false
	}

	m.X += in.left
	m.Y += in.top
	m.Width = max(m.Width-in.left-in.right, 1)
	m.Height = max(m.Height-in.top-in.bottom, 1)
	return m, true
}

func (c *Connection) isDock(win xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, win)
	if err != nil {
		return false
	}
	for _, t := range types {
		if t == "_NET_WM_WINDOW_TYPE_DOCK" {
			return true
		}
	}
	return false
}

// add grows in by the part of each strut of sp that overlaps mon. Struts are
// expressed relative to the root window edges.
func (in insets) add(mon rect, rootW, rootH int, sp *ewmh.WmStrutPartial) insets {
	if sp.Top > 0 {
		r := mon.intersect(rect{int(sp.TopStartX), 0, int(sp.TopEndX) + 1, int(sp.Top)})
		in.top = max(in.top, r.height())
	}
	if sp.Bottom > 0 {
		r := mon.intersect(rect{int(sp.BottomStartX), rootH - int(sp.Bottom), int(sp.BottomEndX) + 1, rootH})
		in.bottom = max(in.bottom, r.height())
	}
	if sp.Left > 0 {
		r := mon.intersect(rect{0, int(sp.LeftStartY), int(sp.Left), int(sp.LeftEndY) + 1})
		in.left = max(in.left, r.width())
	}
	if sp.Right > 0 {
		r := mon.intersect(rect{rootW - int(sp.Right), int(sp.RightStartY), rootW, int(sp.RightEndY) + 1})
		in.right = max(in.right, r.width())
	}
	return in
}
