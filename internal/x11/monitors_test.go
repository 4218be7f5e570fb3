package x11

import (
	"testing"

	"github.com/BurntSushi/xgbutil/ewmh"
)

func TestInsetsAddOnlyCountsOverlap(t *testing.T) {
	// Two 1920x1080 monitors side by side; a 30px top panel on the left one only.
	left := rect{0, 0, 1920, 1080}
	right := rect{1920, 0, 3840, 1080}
	panel := &ewmh.WmStrutPartial{Top: 30, TopStartX: 0, TopEndX: 1919}

	if got := (insets{}).add(left, 3840, 1080, panel); got != (insets{top: 30}) {
		t.Fatalf("left monitor insets = %+v, want top=30", got)
	}
	if got := (insets{}).add(right, 3840, 1080, panel); !got.zero() {
		t.Fatalf("right monitor insets = %+v, want none", got)
	}
}

func TestInsetsAddKeepsLargestStrut(t *testing.T) {
	mon := rect{0, 0, 1920, 1080}
	in := insets{}
	in = in.add(mon, 1920, 1080, &ewmh.WmStrutPartial{Bottom: 40, BottomStartX: 0, BottomEndX: 1919})
	in = in.add(mon, 1920, 1080, &ewmh.WmStrutPartial{Bottom: 24, BottomStartX: 0, BottomEndX: 1919})
	in = in.add(mon, 1920, 1080, &ewmh.WmStrutPartial{Left: 48, LeftStartY: 0, LeftEndY: 1079})

	want := insets{bottom: 40, left: 48}
	if in != want {
		t.Fatalf("insets = %+v, want %+v", in, want)
	}
}

func TestRectIntersect(t *testing.T) {
	m := Monitor{X: 100, Y: 0, Width: 800, Height: 600}
	area := rectOf(m).intersect(rect{0, 25, 500, 2000})

	got := area.apply(m)
	want := Monitor{X: 100, Y: 25, Width: 400, Height: 575}
	if got != want {
		t.Fatalf("apply = %+v, want %+v", got, want)
	}

	if !rectOf(m).intersect(rect{900, 0, 1000, 10}).empty() {
		t.Fatal("disjoint rectangles should not intersect")
	}
}

func TestMonitorAt(t *testing.T) {
	monitors := []Monitor{
		{ID: 0, Width: 1920, Height: 1080},
		{ID: 1, X: 1920, Width: 1280, Height: 1024},
	}
	if m, ok := monitorAt(monitors, 1920, 10); !ok || m.ID != 1 {
		t.Fatalf("monitorAt(1920,10) = %+v, %v", m, ok)
	}
	if _, ok := monitorAt(monitors, 5000, 0); ok {
		t.Fatal("point outside every monitor matched")
	}
}
