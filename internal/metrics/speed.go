package metrics

import "github.com/san-kum/veer/internal/sim"

type AverageSpeed struct {
	name    string
	sum     float64
	samples int
}

func NewAverageSpeed() *AverageSpeed {
	return &AverageSpeed{
		name: "avg_speed",
	}
}

func (a *AverageSpeed) Name() string { return a.name }

func (a *AverageSpeed) Observe(f sim.Frame) {
	a.sum += f.Car.Speed
	a.samples++
}

func (a *AverageSpeed) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return a.sum / float64(a.samples)
}

func (a *AverageSpeed) Reset() {
	a.sum = 0
	a.samples = 0
}

type TopSpeed struct {
	name string
	max  float64
}

func NewTopSpeed() *TopSpeed {
	return &TopSpeed{
		name: "top_speed",
	}
}

func (t *TopSpeed) Name() string { return t.name }

func (t *TopSpeed) Observe(f sim.Frame) {
	if f.Car.Speed > t.max {
		t.max = f.Car.Speed
	}
}

func (t *TopSpeed) Value() float64 {
	return t.max
}

func (t *TopSpeed) Reset() {
	t.max = 0
}
