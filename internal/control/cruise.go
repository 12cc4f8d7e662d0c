package control

import (
	"fmt"

	"github.com/san-kum/veer/internal/sim"
)

// Cruise holds the car at a target speed with a PID loop on the
// speed error, optionally applying a constant turn each frame. With
// a nonzero turn the car traces a circle, which makes a steady test
// subject for sensors and metrics.
type Cruise struct {
	Kp, Ki, Kd float64
	Target     float64 // speed to hold
	TurnDeg    float64 // constant per-frame turn

	integral float64
	prevErr  float64
	first    bool
}

func NewCruise(target float64) *Cruise {
	return &Cruise{
		Kp:     0.5,
		Ki:     0.01,
		Kd:     0.1,
		Target: target,
		first:  true,
	}
}

func (c *Cruise) Decide(per sim.Perception) sim.Command {
	err := c.Target - per.Speed

	c.integral += err
	var derivative float64
	if !c.first {
		derivative = err - c.prevErr
	}
	c.first = false
	c.prevErr = err

	accel := c.Kp*err + c.Ki*c.integral + c.Kd*derivative
	return sim.Command{Accel: accel, Turn: c.TurnDeg}
}

// Reset clears the accumulated PID state.
func (c *Cruise) Reset() {
	c.integral = 0
	c.prevErr = 0
	c.first = true
}

func (c *Cruise) GetParams() map[string]float64 {
	return map[string]float64{
		"kp":           c.Kp,
		"ki":           c.Ki,
		"kd":           c.Kd,
		"target_speed": c.Target,
		"turn":         c.TurnDeg,
	}
}

func (c *Cruise) SetParam(name string, value float64) error {
	switch name {
	case "kp":
		c.Kp = value
	case "ki":
		c.Ki = value
	case "kd":
		c.Kd = value
	case "target_speed":
		c.Target = value
	case "turn":
		c.TurnDeg = value
	default:
		return fmt.Errorf("control: unknown parameter %q", name)
	}
	return nil
}
