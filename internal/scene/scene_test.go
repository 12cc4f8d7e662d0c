package scene

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/veer/internal/car"
	"github.com/san-kum/veer/internal/config"
	"github.com/san-kum/veer/internal/control"
	"github.com/san-kum/veer/internal/sim"
	"github.com/san-kum/veer/internal/track"
)

func TestNewRegistryBuiltins(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	assert.Equal(t, []string{"classic", "corridor", "open", "slalom"}, r.ListTracks())
	assert.Equal(t, []string{"cruise", "manual", "none", "reactive"}, r.ListControllers())
}

func TestRegistryUnknownNames(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	_, err := r.GetTrack("moon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown track")

	_, err = r.GetController("autopilot", car.DefaultParams())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown controller")
}

func TestRegistryRegisterCustom(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	r.RegisterTrack("empty", track.Open)
	tr, err := r.GetTrack("empty")
	require.NoError(t, err)
	assert.Equal(t, 0, tr.ObstacleCount())
}

func TestBuildDefaults(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	eng, simCfg, err := r.Build(config.DefaultConfig(), nil)
	require.NoError(t, err)
	require.NotNil(t, eng)

	assert.Equal(t, 60, simCfg.Hz)
	assert.Equal(t, 30.0, simCfg.Duration)
	assert.Equal(t, sim.CollideHalt, simCfg.OnCollision)
	assert.Equal(t, "classic", eng.World().Track.Name)
}

func TestBuildAndRun(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	cfg := config.DefaultConfig()
	cfg.Duration = 5

	eng, simCfg, err := r.Build(cfg, nil)
	require.NoError(t, err)

	res, err := eng.Run(context.Background(), simCfg)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Greater(t, res.Steps, 0)
	assert.Greater(t, res.Metrics["distance"], 0.0)
	assert.Contains(t, res.Metrics, "min_clearance")
	assert.Contains(t, res.Metrics, "avg_speed")
	assert.Contains(t, res.Metrics, "top_speed")
}

func TestBuildAppliesControlParams(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	cfg := config.DefaultConfig()
	cfg.Control = map[string]float64{"safe_distance": 160}

	eng, _, err := r.Build(cfg, nil)
	require.NoError(t, err)

	tunable, ok := eng.World().Controller().(sim.Configurable)
	require.True(t, ok)
	assert.Equal(t, 160.0, tunable.GetParams()["safe_distance"])
}

func TestBuildRejectsBadParams(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	cfg := config.DefaultConfig()
	cfg.Control = map[string]float64{"warp_factor": 9}
	_, _, err := r.Build(cfg, nil)
	assert.Error(t, err)

	cfg = config.DefaultConfig()
	cfg.Controller = "none"
	cfg.Control = map[string]float64{"safe_distance": 100}
	_, _, err = r.Build(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "takes no parameters")
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	cfg := config.DefaultConfig()
	cfg.Hz = 0
	_, _, err := r.Build(cfg, nil)
	assert.Error(t, err)

	cfg = config.DefaultConfig()
	cfg.Track = "void"
	_, _, err = r.Build(cfg, nil)
	assert.Error(t, err)
}

func TestBuildCruiseController(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	cfg := config.DefaultConfig()
	cfg.Controller = "cruise"
	cfg.Track = "open"
	cfg.Control = map[string]float64{"target_speed": 2.0, "turn": 1.5}

	eng, _, err := r.Build(cfg, nil)
	require.NoError(t, err)

	cruise, ok := eng.World().Controller().(*control.Cruise)
	require.True(t, ok)
	assert.Equal(t, 2.0, cruise.Target)
	assert.Equal(t, 1.5, cruise.TurnDeg)
}
