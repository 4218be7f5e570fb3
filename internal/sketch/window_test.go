package sketch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowRefusalLeavesStateUntouched(t *testing.T) {
	var w Window
	require.NoError(t, w.SetTitle("Main"))
	require.NoError(t, w.SetWidth(Pixels(10)))

	err := w.SetWidth(Full{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlreadySet))
	assert.Equal(t, Pixels(10), w.Width())

	err = w.SetFullscreen()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFullscreenConflict))
	assert.False(t, w.Fullscreen())

	err = w.SetTitle("Other")
	require.Error(t, err)
	assert.Equal(t, "Main", w.Title())
}

func TestWindowRejectsNilValues(t *testing.T) {
	var w Window
	assert.Error(t, w.SetWidth(nil))
	assert.Error(t, w.SetHeight(nil))
	assert.Error(t, w.SetPosition(nil))
	assert.Nil(t, w.Width())
	assert.Nil(t, w.Position())
}

func TestValueStrings(t *testing.T) {
	assert.Equal(t, "50%", Percent(0.5).String())
	assert.Equal(t, "7%", Percent(0.07).String())
	assert.Equal(t, "300px", Pixels(300).String())
	assert.Equal(t, "full", Full{}.String())
	assert.Equal(t, "centered,10%", Point{Horizontal: Centered{}, Vertical: Percent(0.1)}.String())
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "sizes",
			text: "window = \"Main\": \n width=50%\n height=300px\n",
			want: "window \"Main\"\n\twidth = 50%\n\theight = 300px\n\tposition = unspecified\n",
		},
		{
			name: "full sizes and centered",
			text: "window = 'W':\n width=full\n height=full\n centered\n",
			want: "window \"W\"\n\twidth = screen-wide\n\theight = screen-high\n\tposition = centered\n",
		},
		{
			name: "point",
			text: "window = 'W':\n position=10%,centered\n",
			want: "window \"W\"\n\twidth = unspecified\n\theight = unspecified\n\tposition = { 10%, v-centered }\n",
		},
		{
			name: "point centered on both axes",
			text: "window = 'W':\n position=centered,centered\n",
			want: "window \"W\"\n\twidth = unspecified\n\theight = unspecified\n\tposition = centered\n",
		},
		{
			name: "horizontal centering",
			text: "window = 'W':\n position=centered,20px\n",
			want: "window \"W\"\n\twidth = unspecified\n\theight = unspecified\n\tposition = { h-centered, 20px }\n",
		},
		{
			name: "fullscreen",
			text: "window = 'W':\n fullscreen\n",
			want: "window \"W\"\n\tfullscreen\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustParse(t, tt.text).Describe())
		})
	}
}
