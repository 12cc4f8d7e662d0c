// Package sensor implements the car's ray-cast distance sensors.
package sensor

import (
	"github.com/san-kum/veer/internal/geom"
)

// Reading is one sensor sample. Readings carry no identity and are
// recomputed every frame.
type Reading struct {
	Bearing  float64 // offset from the car heading, degrees
	Distance float64 // pixels, clamped to the rig range
	Hit      bool    // false when nothing lies within range
}

// Rig is a fixed fan of ray sensors attached to the car center.
type Rig struct {
	Offsets []float64 `yaml:"offsets"`
	Range   float64   `yaml:"range"`
}

// DefaultRig is the classic three-ray fan: forward, left, right.
func DefaultRig() Rig {
	return Rig{Offsets: []float64{0, -45, 45}, Range: 200}
}

// Sense casts one ray per offset from pos against the segments. Rays
// with no hit inside the range report the full range.
func (r Rig) Sense(pos geom.Vec, headingDeg float64, segs []geom.Segment) []Reading {
	out := make([]Reading, len(r.Offsets))
	for i, off := range r.Offsets {
		dir := geom.FromDeg(headingDeg + off)
		dist, ok := geom.RayNearest(pos, dir, segs)
		if !ok || dist > r.Range {
			out[i] = Reading{Bearing: off, Distance: r.Range}
			continue
		}
		out[i] = Reading{Bearing: off, Distance: dist, Hit: true}
	}
	return out
}
