package optim

import (
	"context"
	"fmt"
	"maps"
	"math"

	"github.com/san-kum/veer/internal/config"
	"github.com/san-kum/veer/internal/scene"
)

// Axis is one parameter dimension of the grid.
type Axis struct {
	Param string
	Min   float64
	Max   float64
	Steps int
}

func (a Axis) values() []float64 {
	if a.Steps < 2 {
		return []float64{a.Min}
	}
	vals := make([]float64, a.Steps)
	step := (a.Max - a.Min) / float64(a.Steps-1)
	for i := range vals {
		vals[i] = a.Min + float64(i)*step
	}
	return vals
}

// GridSearch exhaustively evaluates controller parameter combinations
// on one track over a fixed horizon. Runs use the halt policy, so the
// score is the distance driven before the first collision.
type GridSearch struct {
	Track      string
	Controller string
	Axes       []Axis
	Duration   float64
	Hz         int
}

// Point is one evaluated grid cell.
type Point struct {
	Params map[string]float64
	Score  float64
}

// Search walks the grid and returns the best parameters, their score
// and the full score table.
func (g *GridSearch) Search(ctx context.Context, reg *scene.Registry) (map[string]float64, float64, []Point, error) {
	if len(g.Axes) == 0 {
		return nil, 0, nil, fmt.Errorf("optim: no axes to search")
	}

	best := math.Inf(-1)
	var bestParams map[string]float64
	var table []Point

	var walk func(depth int, current map[string]float64) error
	walk = func(depth int, current map[string]float64) error {
		if depth == len(g.Axes) {
			score, err := g.evaluate(ctx, reg, current)
			if err != nil {
				return err
			}
			params := maps.Clone(current)
			table = append(table, Point{Params: params, Score: score})
			if score > best {
				best = score
				bestParams = params
			}
			return nil
		}
		axis := g.Axes[depth]
		for _, val := range axis.values() {
			current[axis.Param] = val
			if err := walk(depth+1, current); err != nil {
				return err
			}
		}
		delete(current, axis.Param)
		return nil
	}

	if err := walk(0, make(map[string]float64)); err != nil {
		return nil, 0, nil, err
	}
	return bestParams, best, table, nil
}

func (g *GridSearch) evaluate(ctx context.Context, reg *scene.Registry, params map[string]float64) (float64, error) {
	cfg := config.DefaultConfig()
	if g.Track != "" {
		cfg.Track = g.Track
	}
	if g.Controller != "" {
		cfg.Controller = g.Controller
	}
	if g.Duration > 0 {
		cfg.Duration = g.Duration
	}
	if g.Hz > 0 {
		cfg.Hz = g.Hz
	}
	cfg.OnCollision = "halt"
	cfg.Control = maps.Clone(params)

	eng, simCfg, err := reg.Build(cfg, nil)
	if err != nil {
		return 0, err
	}
	res, err := eng.Run(ctx, simCfg)
	if err != nil {
		return 0, err
	}
	return res.Metrics["distance"], nil
}
