// Package scene assembles runnable simulations from configuration:
// it resolves track and controller names, applies controller
// parameters, and wires up the standard metrics.
package scene

import (
	"fmt"
	"sort"

	"github.com/san-kum/veer/internal/config"
	"github.com/san-kum/veer/internal/metrics"
	"github.com/san-kum/veer/internal/sim"
	"go.uber.org/zap"
)

// Build turns a validated config into a ready-to-run engine plus the
// run parameters for Engine.Run. A nil logger leaves the engine on
// its nop default.
func (r *Registry) Build(cfg *config.Config, log *zap.Logger) (*sim.Engine, sim.Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, sim.Config{}, err
	}

	tr, err := r.GetTrack(cfg.Track)
	if err != nil {
		return nil, sim.Config{}, err
	}
	ctrl, err := r.GetController(cfg.Controller, cfg.Car)
	if err != nil {
		return nil, sim.Config{}, err
	}

	if len(cfg.Control) > 0 {
		tunable, ok := ctrl.(sim.Configurable)
		if !ok {
			return nil, sim.Config{}, fmt.Errorf("scene: controller %q takes no parameters", cfg.Controller)
		}
		keys := make([]string, 0, len(cfg.Control))
		for k := range cfg.Control {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := tunable.SetParam(k, cfg.Control[k]); err != nil {
				return nil, sim.Config{}, err
			}
		}
	}

	world, err := sim.NewWorld(tr, cfg.Car, cfg.Rig(), ctrl)
	if err != nil {
		return nil, sim.Config{}, err
	}

	eng := sim.NewEngine(world)
	for _, m := range metrics.Standard() {
		eng.AddMetric(m)
	}
	eng.SetLogger(log)

	simCfg := sim.Config{
		Hz:          cfg.Hz,
		Duration:    cfg.Duration,
		OnCollision: cfg.Policy(),
	}
	return eng, simCfg, nil
}
