package geom

import "math"

// Box is a rectangle with rotation, anchored at its center. The car
// body is a Box; track geometry stays axis-aligned.
type Box struct {
	Center   Vec
	HalfW    float64
	HalfH    float64
	AngleDeg float64
}

// Corners returns the four corners in draw order.
func (b Box) Corners() [4]Vec {
	s, c := math.Sincos(b.AngleDeg * math.Pi / 180)
	ex := Vec{c, s}.Scale(b.HalfW)
	ey := Vec{-s, c}.Scale(b.HalfH)
	return [4]Vec{
		b.Center.Add(ex).Add(ey),
		b.Center.Add(ex).Sub(ey),
		b.Center.Sub(ex).Sub(ey),
		b.Center.Sub(ex).Add(ey),
	}
}

// IntersectsRect reports whether the box overlaps an axis-aligned
// rectangle, via the separating axis test over the four face normals.
func (b Box) IntersectsRect(r Rect) bool {
	bc := b.Corners()
	rc := r.Corners()

	s, c := math.Sincos(b.AngleDeg * math.Pi / 180)
	axes := [4]Vec{{1, 0}, {0, 1}, {c, s}, {-s, c}}

	for _, axis := range axes {
		bLo, bHi := project(bc[:], axis)
		rLo, rHi := project(rc[:], axis)
		if bHi < rLo || rHi < bLo {
			return false
		}
	}
	return true
}

func project(pts []Vec, axis Vec) (lo, hi float64) {
	lo = pts[0].Dot(axis)
	hi = lo
	for _, p := range pts[1:] {
		d := p.Dot(axis)
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	return lo, hi
}
