package platform

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/sketch/internal/sketch"
)

func twoDisplays() *Static {
	return NewStatic(
		Display{
			ID:     0,
			Name:   "eDP-1",
			Bounds: Rect{Width: 1920, Height: 1080},
			Usable: Rect{Y: 30, Width: 1920, Height: 1050},
		},
		Display{
			ID:      1,
			Name:    "HDMI-1",
			Primary: true,
			Bounds:  Rect{X: 1920, Width: 2560, Height: 1440},
			Usable:  Rect{X: 1920, Width: 2560, Height: 1440},
		},
	)
}

func TestSelectDisplay(t *testing.T) {
	b := twoDisplays()

	tests := []struct {
		target string
		want   string
	}{
		{"", "HDMI-1"},
		{"active", "HDMI-1"},
		{"primary", "HDMI-1"},
		{"0", "eDP-1"},
		{" 1 ", "HDMI-1"},
		{"eDP-1", "eDP-1"},
	}
	for _, tt := range tests {
		d, err := SelectDisplay(b, tt.target)
		require.NoError(t, err, "target %q", tt.target)
		assert.Equal(t, tt.want, d.Name, "target %q", tt.target)
	}
}

func TestSelectDisplayUnknown(t *testing.T) {
	b := twoDisplays()

	_, err := SelectDisplay(b, "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0:eDP-1, 1:HDMI-1")

	_, err = SelectDisplay(b, "DP-3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `display "DP-3" not found`)

	_, err = SelectDisplay(NewStatic(), "primary")
	assert.Error(t, err)
}

func TestPrimaryFallsBackToFirst(t *testing.T) {
	b := NewStatic(Display{ID: 3, Name: "a"}, Display{ID: 4, Name: "b"})

	d, err := SelectDisplay(b, "primary")
	require.NoError(t, err)
	assert.Equal(t, 3, d.ID)
}

func TestQueryScreenUsable(t *testing.T) {
	b := twoDisplays()

	s, err := QueryScreen(b, "0", true)
	require.NoError(t, err)
	assert.Equal(t, sketch.ScreenBounds{Y: 30, Width: 1920, Height: 1050}, s.Bounds())

	s, err = QueryScreen(b, "0", false)
	require.NoError(t, err)
	assert.Equal(t, sketch.ScreenBounds{Width: 1920, Height: 1080}, s.Bounds())
}

func TestStaticCannotOpenWindows(t *testing.T) {
	b := StaticRect(Rect{Width: 800, Height: 600})

	_, err := b.OpenWindow(Rect{}, sketch.Resolved{})
	assert.True(t, errors.Is(err, ErrNoWindows))
	assert.True(t, errors.Is(b.MoveResize(1, Rect{}, sketch.Resolved{}), ErrNoWindows))
	assert.NoError(t, b.Close())
}

func TestPlace(t *testing.T) {
	area := Rect{X: 100, Y: 50, Width: 1000, Height: 800}
	def := Size{Width: 640, Height: 480}

	tests := []struct {
		name string
		r    sketch.Resolved
		want Placement
	}{
		{
			name: "everything left to the platform",
			r:    sketch.Resolved{},
			want: Placement{Rect: Rect{X: 100, Y: 50, Width: 640, Height: 480}},
		},
		{
			name: "explicit geometry",
			r: sketch.Resolved{
				X: sketch.PixelAxis(110), Y: sketch.PixelAxis(60),
				Width: sketch.PixelAxis(300), Height: sketch.PixelAxis(200),
			},
			want: Placement{Rect: Rect{X: 110, Y: 60, Width: 300, Height: 200}, UserPosition: true, UserSize: true},
		},
		{
			name: "centered in the area",
			r: sketch.Resolved{
				X: sketch.CenteredAxis(), Y: sketch.CenteredAxis(),
				Width: sketch.PixelAxis(500),
			},
			want: Placement{Rect: Rect{X: 350, Y: 210, Width: 500, Height: 480}, UserPosition: true, UserSize: true},
		},
		{
			name: "default size is capped by the area",
			r:    sketch.Resolved{Y: sketch.PixelAxis(70)},
			want: Placement{Rect: Rect{X: 100, Y: 70, Width: 640, Height: 480}, UserPosition: true},
		},
		{
			name: "zero size becomes one pixel",
			r:    sketch.Resolved{Width: sketch.PixelAxis(0), Height: sketch.PixelAxis(0)},
			want: Placement{Rect: Rect{X: 100, Y: 50, Width: 1, Height: 1}, UserSize: true},
		},
		{
			name: "fullscreen",
			r: sketch.Resolved{
				X: sketch.PixelAxis(100), Y: sketch.PixelAxis(50),
				Width: sketch.PixelAxis(1000), Height: sketch.PixelAxis(800),
				Fullscreen: true,
			},
			want: Placement{Rect: area, UserPosition: true, UserSize: true, Fullscreen: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Place(tt.r, area, def)); diff != "" {
				t.Fatalf("Place() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	small := Place(sketch.Resolved{}, Rect{Width: 320, Height: 200}, def)
	assert.Equal(t, Rect{Width: 320, Height: 200}, small.Rect)
}
