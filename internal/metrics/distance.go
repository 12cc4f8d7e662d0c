package metrics

import "github.com/san-kum/veer/internal/sim"

// Distance accumulates the length of the car's displacement each
// frame. The per-frame displacement equals the post-update speed, so
// summing speeds gives the exact path length.
type Distance struct {
	name  string
	total float64
}

func NewDistance() *Distance {
	return &Distance{
		name: "distance",
	}
}

func (d *Distance) Name() string { return d.name }

func (d *Distance) Observe(f sim.Frame) {
	d.total += f.Car.Speed
}

func (d *Distance) Value() float64 {
	return d.total
}

func (d *Distance) Reset() {
	d.total = 0
}
