package sim

import (
	"github.com/san-kum/veer/internal/car"
	"github.com/san-kum/veer/internal/sensor"
	"github.com/san-kum/veer/internal/track"
)

// World owns the mutable state of one simulation: the car pose on an
// immutable track plus the controller driving it. It advances one
// frame at a time; the Engine, the GUI and the TUI all step the same
// type.
type World struct {
	Track  *track.Track
	Params car.Params
	Rig    sensor.Rig

	ctrl Controller
	cur  car.State
	stat Status
	dist float64
}

// NewWorld assembles a world with the car at the track spawn pose.
func NewWorld(tr *track.Track, p car.Params, rig sensor.Rig, ctrl Controller) (*World, error) {
	if tr == nil {
		return nil, ErrNilTrack
	}
	if ctrl == nil {
		return nil, ErrNilController
	}
	if len(rig.Offsets) == 0 {
		return nil, ErrNoSensors
	}
	w := &World{Track: tr, Params: p, Rig: rig, ctrl: ctrl}
	w.cur = car.State{Pos: tr.Start.Pos, Heading: tr.Start.Heading}
	if tr.HitsBody(car.Body(w.cur, p)) {
		return nil, ErrSpawnBlocked
	}
	return w, nil
}

// Car returns the current car state.
func (w *World) Car() car.State { return w.cur }

// Status reports whether the car is driving or collided.
func (w *World) Status() Status { return w.stat }

// Distance is the total distance traveled since the last reset.
func (w *World) Distance() float64 { return w.dist }

// Controller returns the active controller.
func (w *World) Controller() Controller { return w.ctrl }

// SetController swaps the active controller in place, keeping the
// car where it is.
func (w *World) SetController(c Controller) {
	if c != nil {
		w.ctrl = c
	}
}

// Sense samples the rig at the current pose without stepping.
func (w *World) Sense() []sensor.Reading {
	return w.Rig.Sense(w.cur.Pos, w.cur.Heading, w.Track.Segments())
}

// SetSpawn moves the respawn pose and resets the world to it.
// Scenario steps and perturbed-start trials use this to begin runs
// away from the track default.
func (w *World) SetSpawn(s track.Spawn) error {
	body := car.Body(car.State{Pos: s.Pos, Heading: s.Heading}, w.Params)
	if w.Track.HitsBody(body) {
		return ErrSpawnBlocked
	}
	w.Track.Start = s
	w.Reset()
	return nil
}

// Step runs one sense-decide-move-collide frame and returns the
// snapshot. Stepping a collided world changes nothing.
func (w *World) Step() Frame {
	if w.stat == StatusCollided {
		return Frame{Car: w.cur, Readings: w.Sense(), Status: w.stat}
	}

	readings := w.Sense()
	cmd := w.ctrl.Decide(Perception{
		Readings: readings,
		Speed:    w.cur.Speed,
		Heading:  w.cur.Heading,
	})

	prev := w.cur.Pos
	w.cur = car.Step(w.cur, cmd.Accel, cmd.Turn, cmd.Limit, w.Params)
	w.dist += w.cur.Pos.Sub(prev).Len()

	if w.Track.HitsBody(car.Body(w.cur, w.Params)) {
		w.stat = StatusCollided
		w.cur.Speed = 0
	}

	return Frame{Car: w.cur, Cmd: cmd, Readings: readings, Status: w.stat}
}

// Reset returns the car to the track spawn pose, zeroes the distance
// tally and puts the world back in the driving state. Controllers
// carrying accumulated state are reset too.
func (w *World) Reset() {
	w.cur = car.State{Pos: w.Track.Start.Pos, Heading: w.Track.Start.Heading}
	w.stat = StatusDriving
	w.dist = 0
	if r, ok := w.ctrl.(Resettable); ok {
		r.Reset()
	}
}
