// Package car implements the arcade vehicle kinematics: per-frame
// speed and heading updates in pixel units, no tire model.
package car

import (
	"github.com/san-kum/veer/internal/geom"
)

// Params holds the kinematics constants. Speeds are pixels per frame
// and turn rates degrees per frame, tuned for a 60 FPS loop.
type Params struct {
	Accel    float64 `yaml:"accel"`
	MaxSpeed float64 `yaml:"max_speed"`
	Friction float64 `yaml:"friction"`
	TurnRate float64 `yaml:"turn_rate"`
	Length   float64 `yaml:"length"`
	Width    float64 `yaml:"width"`
}

func DefaultParams() Params {
	return Params{
		Accel:    0.15,
		MaxSpeed: 3.0,
		Friction: 0.05,
		TurnRate: 2.5,
		Length:   40,
		Width:    20,
	}
}

// State is the car pose. Heading is in degrees, 0 along +x, positive
// clockwise on screen. Speed never goes negative.
type State struct {
	Pos     geom.Vec
	Heading float64
	Speed   float64
}

// Step advances the state one frame: steer, throttle against the
// limit, friction, then move along the new heading. A limit <= 0
// means the params maximum.
func Step(s State, accel, turn, limit float64, p Params) State {
	if limit <= 0 {
		limit = p.MaxSpeed
	}
	s.Heading += turn

	s.Speed += accel
	if s.Speed > limit {
		s.Speed = limit
	}
	if s.Speed < 0 {
		s.Speed = 0
	}
	s.Speed -= p.Friction
	if s.Speed < 0 {
		s.Speed = 0
	}

	s.Pos = s.Pos.Add(geom.FromDeg(s.Heading).Scale(s.Speed))
	return s
}

// Body returns the rotated collision rectangle for the state.
func Body(s State, p Params) geom.Box {
	return geom.Box{
		Center:   s.Pos,
		HalfW:    p.Length / 2,
		HalfH:    p.Width / 2,
		AngleDeg: s.Heading,
	}
}
