package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDeg(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		deg  float64
		want Vec
	}{
		{"east", 0, Vec{1, 0}},
		{"down is positive", 90, Vec{0, 1}},
		{"west", 180, Vec{-1, 0}},
		{"up-right", -45, Vec{math.Sqrt2 / 2, -math.Sqrt2 / 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FromDeg(tc.deg)
			assert.InDelta(t, tc.want.X, got.X, 1e-9)
			assert.InDelta(t, tc.want.Y, got.Y, 1e-9)
		})
	}
}

func TestRaySegment(t *testing.T) {
	t.Parallel()

	origin := Vec{0, 0}
	east := Vec{1, 0}

	cases := []struct {
		name string
		dir  Vec
		seg  Segment
		dist float64
		hit  bool
	}{
		{"straight ahead", east, Segment{Vec{5, -1}, Vec{5, 1}}, 5, true},
		{"endpoint graze", east, Segment{Vec{5, 0}, Vec{5, 2}}, 5, true},
		{"above the ray", east, Segment{Vec{5, 1}, Vec{5, 3}}, 0, false},
		{"behind the origin", east, Segment{Vec{-5, -1}, Vec{-5, 1}}, 0, false},
		{"parallel", east, Segment{Vec{1, 1}, Vec{4, 1}}, 0, false},
		{"diagonal hit", FromDeg(45), Segment{Vec{2, 0}, Vec{0, 2}}, math.Sqrt2, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dist, hit := RaySegment(origin, tc.dir, tc.seg)
			require.Equal(t, tc.hit, hit)
			if hit {
				assert.InDelta(t, tc.dist, dist, 1e-9)
			}
		})
	}
}

func TestRayNearest(t *testing.T) {
	t.Parallel()

	segs := []Segment{
		{Vec{5, -1}, Vec{5, 1}},
		{Vec{3, -1}, Vec{3, 1}},
		{Vec{9, -1}, Vec{9, 1}},
	}
	dist, hit := RayNearest(Vec{0, 0}, Vec{1, 0}, segs)
	require.True(t, hit)
	assert.InDelta(t, 3.0, dist, 1e-9)

	_, hit = RayNearest(Vec{0, 0}, Vec{1, 0}, nil)
	assert.False(t, hit)
}

func TestRectContains(t *testing.T) {
	t.Parallel()

	r := Rect{10, 20, 30, 40}
	assert.True(t, r.Contains(Vec{25, 40}))
	assert.True(t, r.Contains(Vec{10, 20}), "edges are inclusive")
	assert.True(t, r.Contains(Vec{40, 60}))
	assert.False(t, r.Contains(Vec{9.9, 40}))
	assert.False(t, r.Contains(Vec{25, 60.1}))
}

func TestRectEdges(t *testing.T) {
	t.Parallel()

	edges := Rect{0, 0, 4, 2}.Edges()
	total := 0.0
	for _, e := range edges {
		total += e.B.Sub(e.A).Len()
	}
	assert.InDelta(t, 12.0, total, 1e-9, "perimeter of 4x2 rect")
}
