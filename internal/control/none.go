package control

import "github.com/san-kum/veer/internal/sim"

// None issues no commands. The car coasts to a stop under friction.
type None struct{}

func NewNone() *None {
	return &None{}
}

func (n *None) Decide(per sim.Perception) sim.Command {
	return sim.Command{}
}
