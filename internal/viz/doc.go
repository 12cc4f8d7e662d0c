// Package viz provides a terminal-based live view of a driving run.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: steps a sim.World at 60 FPS and renders it live
//   - [Canvas]: Braille-based pixel canvas the track, rays and car
//     are drawn on
//   - Theme selection with 3 built-in color schemes
//
// Beside the canvas a stats panel shows the run status, a speed
// sparkline, the distance traveled and each sensor reading colored
// by how close the obstacle is.
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Respawn the car
//	T     - Cycle color themes
//	Q     - Quit
package viz
