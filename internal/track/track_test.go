package track

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/veer/internal/geom"
)

func spawnBody(t *Track) geom.Box {
	return geom.Box{
		Center:   t.Start.Pos,
		HalfW:    20,
		HalfH:    10,
		AngleDeg: t.Start.Heading,
	}
}

func TestBuiltinsAreWellFormed(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			tr, err := Builtin(name)
			require.NoError(t, err)

			assert.Equal(t, name, tr.Name)
			assert.Len(t, tr.Segments(), len(tr.Rects)*4)
			assert.GreaterOrEqual(t, len(tr.Rects), 4, "four outer walls")
			assert.True(t, tr.Contains(tr.Start.Pos), "spawn inside bounds")
			assert.False(t, tr.HitsBody(spawnBody(tr)), "spawn pose must be clear")
		})
	}
}

func TestBuiltinUnknown(t *testing.T) {
	t.Parallel()

	_, err := Builtin("moebius")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown track")
}

func TestNamesSorted(t *testing.T) {
	t.Parallel()

	names := Names()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "classic")
}

func TestClassicLayout(t *testing.T) {
	t.Parallel()

	tr := Classic()
	assert.Equal(t, 2, tr.ObstacleCount())
	assert.Equal(t, geom.Vec{X: 100, Y: 300}, tr.Start.Pos)
	assert.Zero(t, tr.Start.Heading)

	// The original pillar positions.
	assert.Contains(t, tr.Rects, geom.Rect{X: 250, Y: 150, W: 30, H: 150})
	assert.Contains(t, tr.Rects, geom.Rect{X: 500, Y: 250, W: 30, H: 150})
}

func TestHitsBody(t *testing.T) {
	t.Parallel()

	tr := Classic()

	cases := []struct {
		name string
		box  geom.Box
		want bool
	}{
		{"center of pillar", geom.Box{Center: geom.Vec{X: 265, Y: 225}, HalfW: 20, HalfH: 10}, true},
		{"clear space", geom.Box{Center: geom.Vec{X: 400, Y: 500}, HalfW: 20, HalfH: 10}, false},
		{"inside top wall", geom.Box{Center: geom.Vec{X: 400, Y: 10}, HalfW: 20, HalfH: 10}, true},
		{"outside the field", geom.Box{Center: geom.Vec{X: 900, Y: 300}, HalfW: 20, HalfH: 10}, true},
		{"grazing a pillar when rotated", geom.Box{Center: geom.Vec{X: 230, Y: 225}, HalfW: 20, HalfH: 10, AngleDeg: 45}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tr.HitsBody(tc.box))
		})
	}
}

func TestContains(t *testing.T) {
	t.Parallel()

	tr := Open()
	assert.True(t, tr.Contains(geom.Vec{X: 0, Y: 0}))
	assert.True(t, tr.Contains(geom.Vec{X: 800, Y: 600}))
	assert.False(t, tr.Contains(geom.Vec{X: -1, Y: 300}))
	assert.False(t, tr.Contains(geom.Vec{X: 400, Y: 601}))
}
