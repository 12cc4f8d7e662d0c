// Package control provides the driving policies that map sensor
// perceptions to car commands.
//
// Controllers implement the [sim.Controller] interface:
//
//   - [Reactive]: the hand-written threshold avoidance rule
//   - [Cruise]: PID speed hold with an optional constant turn
//   - [Manual]: keyboard passthrough fed by the GUI
//   - [None]: zero command, coasting baseline
//
// # Usage
//
//	ctrl := control.NewReactive(control.DefaultReactiveParams(), carParams)
//	w, _ := sim.NewWorld(tr, carParams, rig, ctrl)
//
// Controllers implementing [sim.Configurable] support live tuning.
package control
