package automation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/san-kum/veer/internal/config"
	"github.com/san-kum/veer/internal/geom"
	"github.com/san-kum/veer/internal/scene"
	"github.com/san-kum/veer/internal/sim"
	"github.com/san-kum/veer/internal/track"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Scenario defines a scripted sequence of runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run in a scenario
type ScenarioStep struct {
	Track       string             `yaml:"track"`
	Controller  string             `yaml:"controller"`
	Duration    float64            `yaml:"duration"`
	Hz          int                `yaml:"hz"`
	OnCollision string             `yaml:"on_collision"`
	Params      map[string]float64 `yaml:"params"`
	Start       *StartPose         `yaml:"start"`
}

// StartPose overrides the track spawn for one step
type StartPose struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Heading float64 `yaml:"heading"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// StepResult pairs a scenario step with its run outcome
type StepResult struct {
	Step   ScenarioStep
	Result *sim.Result
}

// stepConfig fills a run config from a step, keeping defaults for
// whatever the step leaves unset
func stepConfig(step ScenarioStep) *config.Config {
	cfg := config.DefaultConfig()
	if step.Track != "" {
		cfg.Track = step.Track
	}
	if step.Controller != "" {
		cfg.Controller = step.Controller
	}
	if step.Duration > 0 {
		cfg.Duration = step.Duration
	}
	if step.Hz > 0 {
		cfg.Hz = step.Hz
	}
	if step.OnCollision != "" {
		cfg.OnCollision = step.OnCollision
	}
	cfg.Control = step.Params
	return cfg
}

// RunScenario executes all steps in order, stopping at the first failure
func RunScenario(ctx context.Context, scenario *Scenario, reg *scene.Registry) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		cfg := stepConfig(step)
		fmt.Printf("Running step %d/%d: %s on %s\n", i+1, len(scenario.Steps), cfg.Controller, cfg.Track)

		eng, simCfg, err := reg.Build(cfg, nil)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		if step.Start != nil {
			spawn := track.Spawn{
				Pos:     geom.Vec{X: step.Start.X, Y: step.Start.Y},
				Heading: step.Start.Heading,
			}
			if err := eng.World().SetSpawn(spawn); err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
		}

		result, err := eng.Run(ctx, simCfg)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		results = append(results, StepResult{Step: step, Result: result})
	}

	return results, nil
}

// Sweep varies one controller parameter across a range
type Sweep struct {
	Track      string
	Controller string
	Param      string
	Min        float64
	Max        float64
	Steps      int
	Duration   float64
	Hz         int
}

// SweepPoint is the outcome at one parameter value
type SweepPoint struct {
	Value        float64
	Distance     float64
	MinClearance float64
	Collisions   int
	Status       sim.Status
}

// RunSweep runs the track/controller pair once per parameter value
func RunSweep(ctx context.Context, sweep *Sweep, reg *scene.Registry) ([]SweepPoint, error) {
	if sweep.Steps < 2 {
		return nil, fmt.Errorf("automation: sweep needs at least 2 steps, got %d", sweep.Steps)
	}

	points := make([]SweepPoint, 0, sweep.Steps)
	stepSize := (sweep.Max - sweep.Min) / float64(sweep.Steps-1)

	for i := 0; i < sweep.Steps; i++ {
		val := sweep.Min + float64(i)*stepSize

		cfg := config.DefaultConfig()
		cfg.Track = sweep.Track
		cfg.Controller = sweep.Controller
		if sweep.Duration > 0 {
			cfg.Duration = sweep.Duration
		}
		if sweep.Hz > 0 {
			cfg.Hz = sweep.Hz
		}
		cfg.Control = map[string]float64{sweep.Param: val}

		eng, simCfg, err := reg.Build(cfg, nil)
		if err != nil {
			return nil, err
		}

		res, err := eng.Run(ctx, simCfg)
		if err != nil {
			return nil, err
		}

		points = append(points, SweepPoint{
			Value:        val,
			Distance:     res.Metrics["distance"],
			MinClearance: res.Metrics["min_clearance"],
			Collisions:   res.Collisions,
			Status:       res.Status,
		})

		fmt.Printf("Sweep %d/%d: %s=%.4f\n", i+1, sweep.Steps, sweep.Param, val)
	}

	return points, nil
}

// Trials runs many short simulations from jittered spawn poses to
// probe how sensitive a controller is to where the car starts
type Trials struct {
	Track         string
	Controller    string
	Count         int
	Jitter        float64 // max spawn offset per axis, px
	HeadingJitter float64 // max heading offset, deg
	Seed          uint64
	Duration      float64
	Hz            int
}

// TrialResult is the outcome of one perturbed run
type TrialResult struct {
	ID       string
	Start    track.Spawn
	Distance float64
	Collided bool
}

// trialSeed derives a stable per-trial seed from the batch seed
func trialSeed(base uint64, trial int) uint64 {
	return xxhash.Sum64String(fmt.Sprintf("%d/%d", base, trial))
}

// RunTrials executes the batch, one goroutine per trial. A spawn
// jittered into a wall counts as collided at distance zero.
func RunTrials(ctx context.Context, tr *Trials, reg *scene.Registry) ([]TrialResult, error) {
	if tr.Count <= 0 {
		return nil, fmt.Errorf("automation: trial count must be positive, got %d", tr.Count)
	}

	base := tr.Seed
	if base == 0 {
		base = uint64(time.Now().UnixNano())
	}

	results := make([]TrialResult, tr.Count)
	g, ctx := errgroup.WithContext(ctx)

	for trial := 0; trial < tr.Count; trial++ {
		g.Go(func() error {
			rng := rand.New(rand.NewSource(int64(trialSeed(base, trial))))

			cfg := config.DefaultConfig()
			cfg.Track = tr.Track
			cfg.Controller = tr.Controller
			if tr.Duration > 0 {
				cfg.Duration = tr.Duration
			}
			if tr.Hz > 0 {
				cfg.Hz = tr.Hz
			}

			eng, simCfg, err := reg.Build(cfg, nil)
			if err != nil {
				return fmt.Errorf("trial %d: %w", trial, err)
			}

			world := eng.World()
			spawn := world.Track.Start
			spawn.Pos.X += (rng.Float64() - 0.5) * 2 * tr.Jitter
			spawn.Pos.Y += (rng.Float64() - 0.5) * 2 * tr.Jitter
			spawn.Heading += (rng.Float64() - 0.5) * 2 * tr.HeadingJitter

			if err := world.SetSpawn(spawn); err != nil {
				if errors.Is(err, sim.ErrSpawnBlocked) {
					results[trial] = TrialResult{ID: eng.RunID(), Start: spawn, Collided: true}
					return nil
				}
				return fmt.Errorf("trial %d: %w", trial, err)
			}

			res, err := eng.Run(ctx, simCfg)
			if err != nil {
				return fmt.Errorf("trial %d: %w", trial, err)
			}

			results[trial] = TrialResult{
				ID:       eng.RunID(),
				Start:    spawn,
				Distance: res.Metrics["distance"],
				Collided: res.Collisions > 0,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// TrialStats summarizes a trial batch
type TrialStats struct {
	Count         int
	Collided      int
	CollisionRate float64
	MeanDistance  float64
}

// Stats computes summary statistics over trial results
func Stats(results []TrialResult) TrialStats {
	s := TrialStats{Count: len(results)}
	if len(results) == 0 {
		return s
	}

	var dist float64
	for _, r := range results {
		if r.Collided {
			s.Collided++
		}
		dist += r.Distance
	}
	s.CollisionRate = float64(s.Collided) / float64(len(results))
	s.MeanDistance = dist / float64(len(results))
	return s
}
