// Package metrics collects per-run statistics from simulation frames.
package metrics

import "github.com/san-kum/veer/internal/sim"

// Standard returns the metric set attached to every run: path
// length, minimum sensor clearance, and average and top speed.
func Standard() []sim.Metric {
	return []sim.Metric{
		NewDistance(),
		NewMinClearance(),
		NewAverageSpeed(),
		NewTopSpeed(),
	}
}
