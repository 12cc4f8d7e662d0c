package control

import (
	"github.com/san-kum/veer/internal/car"
	"github.com/san-kum/veer/internal/sim"
)

// Manual passes keyboard input through to the car. The GUI calls
// SetInput each frame with throttle and steer in [-1, 1].
type Manual struct {
	car      car.Params
	throttle float64
	steer    float64
}

func NewManual(cp car.Params) *Manual {
	return &Manual{car: cp}
}

// SetInput stores the latest input, clamped to [-1, 1]. Negative
// throttle brakes harder than forward acceleration so the car can
// stop in a reasonable distance.
func (m *Manual) SetInput(throttle, steer float64) {
	m.throttle = clamp(throttle, -1, 1)
	m.steer = clamp(steer, -1, 1)
}

func (m *Manual) Decide(per sim.Perception) sim.Command {
	accel := m.throttle * m.car.Accel
	if m.throttle < 0 {
		accel = m.throttle * 2 * m.car.Accel
	}
	return sim.Command{
		Accel: accel,
		Turn:  m.steer * m.car.TurnRate,
	}
}

// Reset drops any held input.
func (m *Manual) Reset() {
	m.throttle = 0
	m.steer = 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
