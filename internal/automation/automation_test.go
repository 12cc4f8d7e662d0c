package automation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/veer/internal/scene"
	"github.com/san-kum/veer/internal/sim"
)

const scenarioYAML = `name: smoke
description: two short hops
steps:
  - track: open
    controller: cruise
    duration: 2
    params:
      target_speed: 2.0
  - track: classic
    controller: reactive
    duration: 2
    hz: 30
    on_collision: reset
    start:
      x: 400
      y: 300
      heading: 90
`

func writeScenario(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioYAML), 0644))
	return path
}

func TestLoadScenario(t *testing.T) {
	t.Parallel()
	sc, err := LoadScenario(writeScenario(t))
	require.NoError(t, err)

	assert.Equal(t, "smoke", sc.Name)
	require.Len(t, sc.Steps, 2)
	assert.Equal(t, 2.0, sc.Steps[0].Params["target_speed"])
	require.NotNil(t, sc.Steps[1].Start)
	assert.Equal(t, 90.0, sc.Steps[1].Start.Heading)
	assert.Equal(t, "reset", sc.Steps[1].OnCollision)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	t.Parallel()
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestStepConfigDefaults(t *testing.T) {
	t.Parallel()
	cfg := stepConfig(ScenarioStep{Track: "slalom"})

	assert.Equal(t, "slalom", cfg.Track)
	assert.Equal(t, "reactive", cfg.Controller)
	assert.Equal(t, 60, cfg.Hz)
	assert.Equal(t, 30.0, cfg.Duration)
}

func TestRunScenario(t *testing.T) {
	t.Parallel()
	sc, err := LoadScenario(writeScenario(t))
	require.NoError(t, err)

	results, err := RunScenario(context.Background(), sc, scene.NewRegistry())
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, 120, results[0].Result.Steps)
	assert.Equal(t, sim.StatusDriving, results[0].Result.Status)

	// reset policy always runs the full budget: 2s at 30hz
	assert.Equal(t, 60, results[1].Result.Steps)
	assert.InDelta(t, 400.0, results[1].Result.Frames[0].Car.Pos.X, 1e-9)
}

func TestRunScenarioBadStep(t *testing.T) {
	t.Parallel()
	sc := &Scenario{Steps: []ScenarioStep{{Track: "void"}}}

	_, err := RunScenario(context.Background(), sc, scene.NewRegistry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 1")
}

func TestRunSweep(t *testing.T) {
	t.Parallel()
	sweep := &Sweep{
		Track:      "open",
		Controller: "cruise",
		Param:      "target_speed",
		Min:        1,
		Max:        2,
		Steps:      3,
		Duration:   2,
	}

	points, err := RunSweep(context.Background(), sweep, scene.NewRegistry())
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.InDelta(t, 1.0, points[0].Value, 1e-12)
	assert.InDelta(t, 1.5, points[1].Value, 1e-12)
	assert.InDelta(t, 2.0, points[2].Value, 1e-12)

	// faster target speed covers more ground on an empty track
	assert.Greater(t, points[2].Distance, points[0].Distance)
	for _, p := range points {
		assert.Equal(t, 0, p.Collisions)
		assert.Equal(t, sim.StatusDriving, p.Status)
	}
}

func TestRunSweepTooFewSteps(t *testing.T) {
	t.Parallel()
	_, err := RunSweep(context.Background(), &Sweep{Steps: 1}, scene.NewRegistry())
	assert.Error(t, err)
}

func TestRunTrials(t *testing.T) {
	t.Parallel()
	trials := &Trials{
		Track:         "classic",
		Controller:    "reactive",
		Count:         6,
		Jitter:        15,
		HeadingJitter: 20,
		Seed:          42,
		Duration:      2,
		Hz:            30,
	}
	reg := scene.NewRegistry()

	first, err := RunTrials(context.Background(), trials, reg)
	require.NoError(t, err)
	require.Len(t, first, 6)

	ids := make(map[string]bool)
	for _, r := range first {
		assert.NotEmpty(t, r.ID)
		ids[r.ID] = true
	}
	assert.Len(t, ids, 6)

	// same seed, same spawn poses
	second, err := RunTrials(context.Background(), trials, reg)
	require.NoError(t, err)
	for i := range first {
		assert.Equal(t, first[i].Start, second[i].Start, "trial %d", i)
		assert.Equal(t, first[i].Distance, second[i].Distance, "trial %d", i)
	}
}

func TestRunTrialsBadCount(t *testing.T) {
	t.Parallel()
	_, err := RunTrials(context.Background(), &Trials{Count: 0}, scene.NewRegistry())
	assert.Error(t, err)
}

func TestRunTrialsCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	trials := &Trials{Track: "open", Controller: "none", Count: 3, Seed: 1, Duration: 5}
	_, err := RunTrials(ctx, trials, scene.NewRegistry())
	assert.Error(t, err)
}

func TestTrialSeed(t *testing.T) {
	t.Parallel()
	assert.Equal(t, trialSeed(42, 3), trialSeed(42, 3))
	assert.NotEqual(t, trialSeed(42, 3), trialSeed(42, 4))
	assert.NotEqual(t, trialSeed(42, 3), trialSeed(43, 3))
}

func TestStats(t *testing.T) {
	t.Parallel()
	results := []TrialResult{
		{Distance: 10, Collided: true},
		{Distance: 20},
		{Distance: 30, Collided: true},
		{Distance: 40},
	}

	s := Stats(results)
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, 2, s.Collided)
	assert.InDelta(t, 0.5, s.CollisionRate, 1e-12)
	assert.InDelta(t, 25.0, s.MeanDistance, 1e-12)

	assert.Equal(t, TrialStats{}, Stats(nil))
}
