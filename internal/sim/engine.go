package sim

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Engine runs a World headless to completion, feeding metrics and
// observers and honoring the collision policy.
type Engine struct {
	world     *World
	metrics   []Metric
	observers []Observer
	log       *zap.Logger
	runID     string
}

// NewEngine wraps a world. The logger defaults to a nop.
func NewEngine(w *World) *Engine {
	return &Engine{
		world: w,
		log:   zap.NewNop(),
		runID: uuid.NewString(),
	}
}

func (e *Engine) AddMetric(m Metric) { e.metrics = append(e.metrics, m) }

func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }

// SetLogger installs a diagnostics logger. Nil is ignored.
func (e *Engine) SetLogger(l *zap.Logger) {
	if l != nil {
		e.log = l
	}
}

// World exposes the engine's world, e.g. for live parameter tuning.
func (e *Engine) World() *World { return e.world }

// RunID identifies this engine's runs in logs.
func (e *Engine) RunID() string { return e.runID }

func validateConfig(cfg Config) error {
	if cfg.Hz <= 0 {
		return ErrBadRate
	}
	if cfg.Duration <= 0 {
		return ErrBadDuration
	}
	return nil
}

// Run executes the configured number of frames, or fewer when the
// car collides under the halt policy.
func (e *Engine) Run(ctx context.Context, cfg Config) (*Result, error) {
	return e.RunWithCallback(ctx, cfg, nil)
}

// RunWithCallback streams every frame to fn and stops early when fn
// returns false. The world is reset before the run starts.
func (e *Engine) RunWithCallback(ctx context.Context, cfg Config, fn func(Frame) bool) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	e.world.Reset()
	for _, m := range e.metrics {
		m.Reset()
	}

	steps := int(cfg.Duration * float64(cfg.Hz))
	res := &Result{
		Frames:  make([]Frame, 0, steps),
		Metrics: make(map[string]float64, len(e.metrics)),
	}

	e.log.Info("run started",
		zap.String("run_id", e.runID),
		zap.String("track", e.world.Track.Name),
		zap.Int("steps", steps),
		zap.String("on_collision", cfg.OnCollision.String()),
	)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			e.log.Info("run canceled",
				zap.String("run_id", e.runID),
				zap.Int("step", i),
			)
			return nil, ctx.Err()
		default:
		}

		f := e.world.Step()
		res.Frames = append(res.Frames, f)
		res.Steps++
		for _, m := range e.metrics {
			m.Observe(f)
		}
		for _, o := range e.observers {
			o.OnStep(f)
		}
		if fn != nil && !fn(f) {
			break
		}

		if f.Status == StatusCollided {
			res.Collisions++
			e.log.Warn("collision",
				zap.String("run_id", e.runID),
				zap.Int("step", i),
				zap.Float64("x", f.Car.Pos.X),
				zap.Float64("y", f.Car.Pos.Y),
			)
			if cfg.OnCollision == CollideHalt {
				break
			}
			e.world.Reset()
			e.log.Info("car reset",
				zap.String("run_id", e.runID),
				zap.Int("step", i),
			)
		}
	}

	for _, m := range e.metrics {
		res.Metrics[m.Name()] = m.Value()
	}
	res.Final = e.world.Car()
	res.Status = e.world.Status()

	e.log.Info("run finished",
		zap.String("run_id", e.runID),
		zap.Int("steps", res.Steps),
		zap.Int("collisions", res.Collisions),
		zap.String("status", res.Status.String()),
	)
	return res, nil
}
