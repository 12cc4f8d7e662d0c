package sim

import "errors"

// Domain errors for building and running worlds.
var (
	// ErrNilTrack indicates a world built without track geometry.
	ErrNilTrack = errors.New("sim: nil track")

	// ErrNilController indicates a world built without a controller.
	ErrNilController = errors.New("sim: nil controller")

	// ErrNoSensors indicates a rig with an empty offset fan.
	ErrNoSensors = errors.New("sim: rig has no sensors")

	// ErrSpawnBlocked indicates the track spawn pose already
	// intersects track geometry.
	ErrSpawnBlocked = errors.New("sim: spawn pose collides with track geometry")

	// ErrBadRate indicates a non-positive frame rate.
	ErrBadRate = errors.New("sim: frame rate must be positive")

	// ErrBadDuration indicates a non-positive run duration.
	ErrBadDuration = errors.New("sim: duration must be positive")
)
