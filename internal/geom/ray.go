package geom

import "math"

// RaySegment intersects a ray starting at origin with unit direction
// dir against a segment, returning the distance along the ray to the
// hit. Endpoint grazes count as hits.
func RaySegment(origin, dir Vec, s Segment) (float64, bool) {
	// Solve origin + t*dir = A + u*(B-A) for t >= 0 and u in [0, 1].
	e := s.B.Sub(s.A)
	denom := dir.X*e.Y - dir.Y*e.X
	if math.Abs(denom) < 1e-12 {
		// Parallel or degenerate segment.
		return 0, false
	}
	w := s.A.Sub(origin)
	t := (w.X*e.Y - w.Y*e.X) / denom
	u := (w.X*dir.Y - w.Y*dir.X) / denom
	if t < 0 || u < 0 || u > 1 {
		return 0, false
	}
	return t, true
}

// RayNearest casts a ray against every segment and returns the
// distance to the closest hit.
func RayNearest(origin, dir Vec, segs []Segment) (float64, bool) {
	nearest := math.Inf(1)
	hit := false
	for _, s := range segs {
		if t, ok := RaySegment(origin, dir, s); ok && t < nearest {
			nearest = t
			hit = true
		}
	}
	if !hit {
		return 0, false
	}
	return nearest, true
}
