package geom

import "math"

// Vec is a 2D point or direction in screen coordinates (y grows down).
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }
func (v Vec) Dot(o Vec) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec) Len() float64        { return math.Hypot(v.X, v.Y) }

// FromDeg returns the unit direction for a heading in degrees.
// Heading 0 points along +x and positive angles rotate clockwise on
// screen, since y grows down.
func FromDeg(deg float64) Vec {
	s, c := math.Sincos(deg * math.Pi / 180)
	return Vec{c, s}
}

// Segment is a line segment between two points.
type Segment struct {
	A, B Vec
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside or on the rectangle.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Edges returns the four sides as segments, clockwise from the top.
func (r Rect) Edges() [4]Segment {
	tl := Vec{r.X, r.Y}
	tr := Vec{r.X + r.W, r.Y}
	br := Vec{r.X + r.W, r.Y + r.H}
	bl := Vec{r.X, r.Y + r.H}
	return [4]Segment{{tl, tr}, {tr, br}, {br, bl}, {bl, tl}}
}

// Corners returns the four corners, clockwise from the top-left.
func (r Rect) Corners() [4]Vec {
	return [4]Vec{
		{r.X, r.Y},
		{r.X + r.W, r.Y},
		{r.X + r.W, r.Y + r.H},
		{r.X, r.Y + r.H},
	}
}
