package metrics

import "github.com/san-kum/veer/internal/sim"

// MinClearance tracks the shortest sensor reading seen over a run,
// the closest the rule let the car get to a wall along any ray.
type MinClearance struct {
	name    string
	min     float64
	samples int
}

func NewMinClearance() *MinClearance {
	return &MinClearance{
		name: "min_clearance",
	}
}

func (m *MinClearance) Name() string { return m.name }

func (m *MinClearance) Observe(f sim.Frame) {
	for _, r := range f.Readings {
		if m.samples == 0 || r.Distance < m.min {
			m.min = r.Distance
		}
		m.samples++
	}
}

func (m *MinClearance) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.min
}

func (m *MinClearance) Reset() {
	m.min = 0
	m.samples = 0
}
