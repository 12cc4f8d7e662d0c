package track

import "github.com/san-kum/veer/internal/geom"

// Classic is the original demo layout: two pillars offset against
// each other so the car has to weave.
func Classic() *Track {
	return newTrack("classic", "two offset pillars, the original layout",
		[]geom.Rect{
			{X: 250, Y: 150, W: 30, H: 150},
			{X: 500, Y: 250, W: 30, H: 150},
		},
		Spawn{Pos: geom.Vec{X: 100, Y: 300}},
	)
}

// Open has no inner obstacles. Useful as a controller baseline.
func Open() *Track {
	return newTrack("open", "walls only, no obstacles",
		nil,
		Spawn{Pos: geom.Vec{X: 400, Y: 300}},
	)
}

// Slalom alternates columns hanging from the top and bottom walls.
func Slalom() *Track {
	return newTrack("slalom", "alternating columns, weave through the gaps",
		[]geom.Rect{
			{X: 200, Y: 15, W: 30, H: 330},
			{X: 360, Y: 255, W: 30, H: 330},
			{X: 520, Y: 15, W: 30, H: 330},
		},
		Spawn{Pos: geom.Vec{X: 80, Y: 450}},
	)
}

// Corridor folds the field into an S-shaped passage.
func Corridor() *Track {
	return newTrack("corridor", "an S-shaped passage with two hairpins",
		[]geom.Rect{
			{X: 15, Y: 200, W: 500, H: 30},
			{X: 285, Y: 400, W: 500, H: 30},
		},
		Spawn{Pos: geom.Vec{X: 80, Y: 100}},
	)
}
