package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/veer/internal/car"
	"github.com/san-kum/veer/internal/geom"
	"github.com/san-kum/veer/internal/sim"
	"github.com/san-kum/veer/internal/track"
)

func sampleFrames(status sim.Status) []sim.Frame {
	return []sim.Frame{
		{Car: car.State{Pos: geom.Vec{X: 100, Y: 300}}},
		{Car: car.State{Pos: geom.Vec{X: 150, Y: 300}}},
		{Car: car.State{Pos: geom.Vec{X: 200, Y: 310}}, Status: status},
	}
}

func TestSceneSVG(t *testing.T) {
	t.Parallel()
	tr := track.Classic()

	svg := SceneSVG(tr, car.DefaultParams(), sampleFrames(sim.StatusDriving))

	assert.True(t, strings.HasPrefix(svg, `<?xml version="1.0"`))
	assert.Contains(t, svg, `viewBox="0 0 800 600"`)
	assert.True(t, strings.HasSuffix(svg, "</svg>"))

	// one rect per track rect plus the background
	assert.Equal(t, len(tr.Rects)+1, strings.Count(svg, "<rect"))

	assert.Contains(t, svg, "<polyline")
	assert.Contains(t, svg, "100.0,300.0")
	assert.Contains(t, svg, "200.0,310.0")

	assert.Contains(t, svg, `<polygon fill="#0096ff"`)
	assert.Contains(t, svg, "<line")
}

func TestSceneSVGCollidedMarker(t *testing.T) {
	t.Parallel()
	svg := SceneSVG(track.Classic(), car.DefaultParams(), sampleFrames(sim.StatusCollided))
	assert.Contains(t, svg, `<polygon fill="#ff3c3c"`)
}

func TestSceneSVGNoFrames(t *testing.T) {
	t.Parallel()
	tr := track.Open()

	svg := SceneSVG(tr, car.DefaultParams(), nil)

	assert.NotContains(t, svg, "<polyline")
	assert.NotContains(t, svg, "<polygon")
	assert.Equal(t, len(tr.Rects)+1, strings.Count(svg, "<rect"))
}

func TestSaveSVG(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "run.svg")

	svg := SceneSVG(track.Classic(), car.DefaultParams(), sampleFrames(sim.StatusDriving))
	require.NoError(t, SaveSVG(path, svg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, svg, string(data))
}
