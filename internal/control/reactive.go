package control

import (
	"fmt"

	"github.com/san-kum/veer/internal/car"
	"github.com/san-kum/veer/internal/sim"
)

// ReactiveParams are the rule thresholds, in pixels.
type ReactiveParams struct {
	SafeDistance    float64 // brake and swerve closer than this
	WarningDistance float64 // ease off closer than this
	TurnMargin      float64 // side difference before a warning turn
	CenterMargin    float64 // side difference before centering
	CruiseFraction  float64 // speed cap fraction inside the warning zone
}

func DefaultReactiveParams() ReactiveParams {
	return ReactiveParams{
		SafeDistance:    100,
		WarningDistance: 150,
		TurnMargin:      30,
		CenterMargin:    40,
		CruiseFraction:  0.7,
	}
}

// Reactive is the hand-written avoidance rule: brake and swerve
// toward the clearer side when the forward ray is short, ease off
// and steer gently in the warning zone, otherwise cruise and keep
// centered between the side readings.
type Reactive struct {
	p   ReactiveParams
	car car.Params
}

func NewReactive(p ReactiveParams, cp car.Params) *Reactive {
	return &Reactive{p: p, car: cp}
}

func (r *Reactive) Decide(per sim.Perception) sim.Command {
	if len(per.Readings) < 3 {
		return sim.Command{}
	}
	forward := per.Readings[0].Distance
	left := per.Readings[1].Distance
	right := per.Readings[2].Distance

	switch {
	case forward < r.p.SafeDistance:
		// Obstacle very close: brake hard and turn sharply toward
		// the side with more room.
		cmd := sim.Command{Accel: -2 * r.car.Accel}
		if left > right {
			cmd.Turn = -2 * r.car.TurnRate
		} else {
			cmd.Turn = 2 * r.car.TurnRate
		}
		return cmd

	case forward < r.p.WarningDistance:
		// Obstacle moderately close: hold back and steer gently when
		// one side is clearly more open.
		cmd := sim.Command{
			Accel: 0.5 * r.car.Accel,
			Limit: r.p.CruiseFraction * r.car.MaxSpeed,
		}
		if left > right+r.p.TurnMargin {
			cmd.Turn = -r.car.TurnRate
		} else if right > left+r.p.TurnMargin {
			cmd.Turn = r.car.TurnRate
		}
		return cmd

	default:
		// Path is clear: full throttle, drifting away from the
		// tighter side to stay centered.
		cmd := sim.Command{Accel: r.car.Accel}
		if left < right-r.p.CenterMargin {
			cmd.Turn = 0.5 * r.car.TurnRate
		} else if right < left-r.p.CenterMargin {
			cmd.Turn = -0.5 * r.car.TurnRate
		}
		return cmd
	}
}

// GetParams returns the tunable thresholds for live adjustment.
func (r *Reactive) GetParams() map[string]float64 {
	return map[string]float64{
		"safe_distance":    r.p.SafeDistance,
		"warning_distance": r.p.WarningDistance,
		"turn_margin":      r.p.TurnMargin,
		"center_margin":    r.p.CenterMargin,
		"cruise_fraction":  r.p.CruiseFraction,
	}
}

// SetParam adjusts one threshold by name.
func (r *Reactive) SetParam(name string, value float64) error {
	switch name {
	case "safe_distance":
		r.p.SafeDistance = value
	case "warning_distance":
		r.p.WarningDistance = value
	case "turn_margin":
		r.p.TurnMargin = value
	case "center_margin":
		r.p.CenterMargin = value
	case "cruise_fraction":
		r.p.CruiseFraction = value
	default:
		return fmt.Errorf("control: unknown parameter %q", name)
	}
	return nil
}
