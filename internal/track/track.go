// Package track defines the static geometry the car navigates: outer
// walls plus inner obstacles, all axis-aligned rectangles. Tracks are
// code-defined builtins selected by name.
package track

import (
	"fmt"
	"sort"

	"github.com/san-kum/veer/internal/geom"
)

const (
	// FieldWidth and FieldHeight are the playfield dimensions shared
	// by every builtin track, matching the 800x600 window.
	FieldWidth  = 800.0
	FieldHeight = 600.0

	wallThickness = 15.0
)

// Spawn is the pose the car starts from (and returns to on reset).
type Spawn struct {
	Pos     geom.Vec
	Heading float64
}

// Track is immutable for the session.
type Track struct {
	Name        string
	Description string
	Width       float64
	Height      float64
	// Rects holds the four outer walls followed by the inner
	// obstacles. Renderers draw them all the same way.
	Rects []geom.Rect
	Start Spawn

	segs []geom.Segment
}

func newTrack(name, desc string, obstacles []geom.Rect, start Spawn) *Track {
	t := &Track{
		Name:        name,
		Description: desc,
		Width:       FieldWidth,
		Height:      FieldHeight,
		Start:       start,
	}
	t.Rects = append(t.Rects,
		geom.Rect{X: 0, Y: 0, W: FieldWidth, H: wallThickness},
		geom.Rect{X: 0, Y: FieldHeight - wallThickness, W: FieldWidth, H: wallThickness},
		geom.Rect{X: 0, Y: 0, W: wallThickness, H: FieldHeight},
		geom.Rect{X: FieldWidth - wallThickness, Y: 0, W: wallThickness, H: FieldHeight},
	)
	t.Rects = append(t.Rects, obstacles...)

	t.segs = make([]geom.Segment, 0, len(t.Rects)*4)
	for _, r := range t.Rects {
		edges := r.Edges()
		t.segs = append(t.segs, edges[:]...)
	}
	return t
}

// Segments returns the cached rect edges used for ray casting.
func (t *Track) Segments() []geom.Segment { return t.segs }

// Contains reports whether a point lies inside the playfield bounds.
func (t *Track) Contains(p geom.Vec) bool {
	return p.X >= 0 && p.X <= t.Width && p.Y >= 0 && p.Y <= t.Height
}

// HitsBody reports whether a car body collides with any wall or
// obstacle, or has left the playfield entirely.
func (t *Track) HitsBody(b geom.Box) bool {
	for _, r := range t.Rects {
		if b.IntersectsRect(r) {
			return true
		}
	}
	for _, c := range b.Corners() {
		if !t.Contains(c) {
			return true
		}
	}
	return false
}

// ObstacleCount is the number of inner obstacles (walls excluded).
func (t *Track) ObstacleCount() int { return len(t.Rects) - 4 }

var builtins = map[string]func() *Track{
	"classic":  Classic,
	"open":     Open,
	"slalom":   Slalom,
	"corridor": Corridor,
}

// Builtin returns the named track.
func Builtin(name string) (*Track, error) {
	fn, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown track: %s", name)
	}
	return fn(), nil
}

// Names lists the builtin tracks, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
