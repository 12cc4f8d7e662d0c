package sim

import (
	"math"
	"testing"

	"github.com/san-kum/veer/internal/car"
	"github.com/san-kum/veer/internal/geom"
	"github.com/san-kum/veer/internal/sensor"
	"github.com/san-kum/veer/internal/track"
)

// scripted always answers with the same command.
type scripted struct {
	cmd Command
}

func (c scripted) Decide(Perception) Command { return c.cmd }

func newTestWorld(t *testing.T, name string, cmd Command) *World {
	t.Helper()
	tr, err := track.Builtin(name)
	if err != nil {
		t.Fatalf("track: %v", err)
	}
	w, err := NewWorld(tr, car.DefaultParams(), sensor.DefaultRig(), scripted{cmd})
	if err != nil {
		t.Fatalf("world: %v", err)
	}
	return w
}

func TestNewWorldValidation(t *testing.T) {
	tr := track.Open()
	params := car.DefaultParams()
	rig := sensor.DefaultRig()

	if _, err := NewWorld(nil, params, rig, scripted{}); err != ErrNilTrack {
		t.Errorf("nil track: got %v, want ErrNilTrack", err)
	}
	if _, err := NewWorld(tr, params, rig, nil); err != ErrNilController {
		t.Errorf("nil controller: got %v, want ErrNilController", err)
	}
	if _, err := NewWorld(tr, params, sensor.Rig{Range: 200}, scripted{}); err != ErrNoSensors {
		t.Errorf("empty rig: got %v, want ErrNoSensors", err)
	}
}

func TestWorldStepMovesCar(t *testing.T) {
	w := newTestWorld(t, "open", Command{Accel: 10})

	f := w.Step()
	p := w.Params

	wantSpeed := p.MaxSpeed - p.Friction
	if math.Abs(f.Car.Speed-wantSpeed) > 1e-9 {
		t.Errorf("speed = %v, want %v", f.Car.Speed, wantSpeed)
	}
	wantX := w.Track.Start.Pos.X + wantSpeed
	if math.Abs(f.Car.Pos.X-wantX) > 1e-9 {
		t.Errorf("x = %v, want %v", f.Car.Pos.X, wantX)
	}
	if f.Car.Pos.Y != w.Track.Start.Pos.Y {
		t.Errorf("y moved without turning: %v", f.Car.Pos.Y)
	}
	if f.Status != StatusDriving {
		t.Errorf("status = %v, want driving", f.Status)
	}
}

func TestWorldInvariants(t *testing.T) {
	// Drive in a tightening circle; every frame must keep readings
	// within range and the car inside the field while driving.
	w := newTestWorld(t, "classic", Command{Accel: 10, Turn: 3})

	for i := 0; i < 500; i++ {
		f := w.Step()
		for _, r := range f.Readings {
			if r.Distance < 0 || r.Distance > w.Rig.Range {
				t.Fatalf("step %d: reading %v out of [0, %v]", i, r.Distance, w.Rig.Range)
			}
		}
		if f.Status == StatusDriving && !w.Track.Contains(f.Car.Pos) {
			t.Fatalf("step %d: driving car outside bounds at %+v", i, f.Car.Pos)
		}
	}
}

func TestWorldCollisionStopsCar(t *testing.T) {
	// Straight east from the middle of the open field into the wall.
	w := newTestWorld(t, "open", Command{Accel: 10})

	var hit bool
	for i := 0; i < 300; i++ {
		f := w.Step()
		if f.Status == StatusCollided {
			hit = true
			if f.Car.Speed != 0 {
				t.Errorf("collided with speed %v, want 0", f.Car.Speed)
			}
			break
		}
	}
	if !hit {
		t.Fatal("car never reached the wall")
	}

	// Further steps must not move a collided car.
	pos := w.Car().Pos
	f := w.Step()
	if f.Car.Pos != pos {
		t.Errorf("collided car moved from %+v to %+v", pos, f.Car.Pos)
	}
	if w.Status() != StatusCollided {
		t.Errorf("status = %v, want collided", w.Status())
	}
}

func TestWorldReset(t *testing.T) {
	w := newTestWorld(t, "open", Command{Accel: 10})
	for i := 0; i < 300; i++ {
		w.Step()
	}
	if w.Status() != StatusCollided {
		t.Fatal("expected a collision to reset from")
	}

	w.Reset()
	if w.Status() != StatusDriving {
		t.Errorf("status after reset = %v", w.Status())
	}
	if w.Car().Pos != w.Track.Start.Pos {
		t.Errorf("pos after reset = %+v, want spawn %+v", w.Car().Pos, w.Track.Start.Pos)
	}
	if w.Car().Speed != 0 || w.Distance() != 0 {
		t.Errorf("reset kept speed %v distance %v", w.Car().Speed, w.Distance())
	}
}

func TestWorldDistanceAccumulates(t *testing.T) {
	w := newTestWorld(t, "open", Command{Accel: 10})

	var want float64
	for i := 0; i < 50; i++ {
		f := w.Step()
		want += f.Car.Speed
	}
	if math.Abs(w.Distance()-want) > 1e-9 {
		t.Errorf("distance = %v, want %v", w.Distance(), want)
	}
}

func TestWorldSetSpawn(t *testing.T) {
	w := newTestWorld(t, "open", Command{Accel: 10})
	for i := 0; i < 20; i++ {
		w.Step()
	}

	spawn := track.Spawn{Pos: geom.Vec{X: 600, Y: 450}, Heading: 180}
	if err := w.SetSpawn(spawn); err != nil {
		t.Fatalf("SetSpawn: %v", err)
	}
	if w.Car().Pos != spawn.Pos || w.Car().Heading != 180 {
		t.Errorf("car at %+v heading %v after SetSpawn", w.Car().Pos, w.Car().Heading)
	}
	if w.Distance() != 0 {
		t.Errorf("distance %v after SetSpawn, want 0", w.Distance())
	}

	blocked := track.Spawn{Pos: geom.Vec{X: 5, Y: 5}}
	if err := w.SetSpawn(blocked); err != ErrSpawnBlocked {
		t.Errorf("blocked spawn: got %v, want ErrSpawnBlocked", err)
	}
}
