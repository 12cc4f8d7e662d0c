// Package sim owns the simulation contracts and the loop advancing
// them.
//
// The package defines the per-frame types and interfaces:
//
//   - [Command]: what a controller asks of the car for one frame
//   - [Perception]: sensor readings plus speed and heading
//   - [Controller]: decides a Command from a Perception
//   - [Frame]: one step's observable snapshot
//   - [Metric], [Observer]: consume frames during a run
//   - [World]: steps the car through sense, decide, move, collide
//   - [Engine]: runs a World to completion under a collision policy
//
// # Example
//
//	tr, _ := track.Builtin("classic")
//	w, _ := sim.NewWorld(tr, car.DefaultParams(), sensor.DefaultRig(), ctrl)
//	eng := sim.NewEngine(w)
//	result, _ := eng.Run(ctx, sim.DefaultConfig())
//
// # Thread Safety
//
// World and Engine instances are NOT thread-safe. Batch tooling runs
// one independent Engine per goroutine and never shares a World.
package sim
