package sim

import (
	"fmt"

	"github.com/san-kum/veer/internal/car"
	"github.com/san-kum/veer/internal/sensor"
)

// Command is what a controller asks of the car for one frame.
type Command struct {
	Accel float64 // speed delta, pixels/frame; negative brakes
	Turn  float64 // heading delta, degrees
	// Limit temporarily caps speed for this frame. Zero means the
	// car's configured maximum.
	Limit float64
}

// Perception is everything a controller may look at when deciding.
type Perception struct {
	Readings []sensor.Reading
	Speed    float64
	Heading  float64
}

// Controller decides a Command once per frame.
type Controller interface {
	Decide(p Perception) Command
}

// Resettable controllers clear accumulated state when the world
// respawns the car.
type Resettable interface {
	Reset()
}

// Configurable exposes live-tunable parameters to UIs and tuners.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// Status is the world's two-state machine.
type Status int

const (
	StatusDriving Status = iota
	StatusCollided
)

func (s Status) String() string {
	switch s {
	case StatusDriving:
		return "driving"
	case StatusCollided:
		return "collided"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// CollisionPolicy selects what a run does when the car hits track
// geometry.
type CollisionPolicy int

const (
	// CollideHalt ends the run at the collision frame.
	CollideHalt CollisionPolicy = iota
	// CollideReset respawns the car at the track spawn pose and
	// keeps the run going.
	CollideReset
)

func (p CollisionPolicy) String() string {
	switch p {
	case CollideHalt:
		return "halt"
	case CollideReset:
		return "reset"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy converts a config or flag value to a CollisionPolicy.
func ParsePolicy(s string) (CollisionPolicy, error) {
	switch s {
	case "halt":
		return CollideHalt, nil
	case "reset":
		return CollideReset, nil
	}
	return CollideHalt, fmt.Errorf("sim: unknown collision policy %q", s)
}

// Frame is one step's observable snapshot. Readings are the ones the
// decision used, sampled before the move.
type Frame struct {
	Car      car.State
	Cmd      Command
	Readings []sensor.Reading
	Status   Status
}

// Metric consumes frames and reduces them to a single value.
type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

// Observer is notified after every step.
type Observer interface {
	OnStep(f Frame)
}

// Config bounds one headless run.
type Config struct {
	Hz          int     // frames per simulated second
	Duration    float64 // seconds
	OnCollision CollisionPolicy
}

func DefaultConfig() Config {
	return Config{
		Hz:          60,
		Duration:    30,
		OnCollision: CollideHalt,
	}
}

// Result summarizes a finished run.
type Result struct {
	Frames     []Frame
	Metrics    map[string]float64
	Steps      int
	Collisions int
	Final      car.State
	Status     Status
}
