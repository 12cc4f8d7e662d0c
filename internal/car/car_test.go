package car

import (
	"math"
	"testing"

	"github.com/san-kum/veer/internal/geom"
)

func TestStepCruiseSpeed(t *testing.T) {
	p := DefaultParams()
	s := State{}
	for i := 0; i < 200; i++ {
		s = Step(s, p.Accel, 0, 0, p)
	}
	// Full throttle settles at the cap minus one frame of friction.
	want := p.MaxSpeed - p.Friction
	if math.Abs(s.Speed-want) > 1e-9 {
		t.Errorf("cruise speed = %.4f, want %.4f", s.Speed, want)
	}
}

func TestStepFrictionStopsCar(t *testing.T) {
	p := DefaultParams()
	s := State{Speed: 1.0}
	for i := 0; i < 25; i++ {
		s = Step(s, 0, 0, 0, p)
		if s.Speed < 0 {
			t.Fatalf("speed went negative: %v", s.Speed)
		}
	}
	if s.Speed != 0 {
		t.Errorf("speed = %v after coasting, want 0", s.Speed)
	}
}

func TestStepBrakeFloorsAtZero(t *testing.T) {
	p := DefaultParams()
	s := State{Speed: 0.1}
	s = Step(s, -2*p.Accel, 0, 0, p)
	if s.Speed != 0 {
		t.Errorf("speed = %v after hard brake, want 0", s.Speed)
	}
}

func TestStepTurnAppliesBeforeMove(t *testing.T) {
	p := DefaultParams()
	s := State{Speed: 0}
	// One step with enough throttle for speed 1 after friction.
	s = Step(s, 1.05, 90, 0, p)

	if math.Abs(s.Speed-1.0) > 1e-9 {
		t.Fatalf("speed = %v, want 1", s.Speed)
	}
	// Heading 90 points down the screen, so the move is all +y.
	if math.Abs(s.Pos.X) > 1e-9 || math.Abs(s.Pos.Y-1.0) > 1e-9 {
		t.Errorf("pos = %+v, want (0, 1)", s.Pos)
	}
}

func TestStepTemporarySpeedLimit(t *testing.T) {
	p := DefaultParams()
	s := State{Speed: p.MaxSpeed}
	s = Step(s, 0.5*p.Accel, 0, 0.7*p.MaxSpeed, p)

	want := 0.7*p.MaxSpeed - p.Friction
	if math.Abs(s.Speed-want) > 1e-9 {
		t.Errorf("speed = %.4f under limit, want %.4f", s.Speed, want)
	}
}

func TestBodyMatchesPose(t *testing.T) {
	p := DefaultParams()
	b := Body(State{Pos: geom.Vec{X: 100, Y: 300}}, p)
	for _, c := range b.Corners() {
		if c.X < 80-1e-9 || c.X > 120+1e-9 || c.Y < 290-1e-9 || c.Y > 310+1e-9 {
			t.Errorf("corner %+v outside unrotated 40x20 body", c)
		}
	}
}
