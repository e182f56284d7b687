// Package geometry provides the 2D math used by the branch generator:
// points, segments, and the angle computations that keep branches inside
// a natural-looking cone.
package geometry

import "math"

// Point is a 2D coordinate (or displacement) in canvas space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// PointAtAngle returns the point that is length away from origin at the
// given angle. Angles are in radians; any real value wraps naturally.
func PointAtAngle(origin Point, length, angle float64) Point {
	return Point{
		X: origin.X + length*math.Cos(angle),
		Y: origin.Y + length*math.Sin(angle),
	}
}

// Segment is an ordered pair of points representing one drawn branch.
type Segment struct {
	Start, End Point
}

// Seg is a convenience function to create a Segment.
func Seg(start, end Point) Segment {
	return Segment{Start: start, End: end}
}

// Vector returns the segment translated to the origin (End - Start).
func (s Segment) Vector() Point {
	return s.End.Sub(s.Start)
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.Vector().Length()
}

// AngleBetween returns the unsigned angle in [0, pi] between two segments,
// each treated as a vector from its start to its end.
//
// The cosine is clamped to [-1, 1] so rounding error near parallel or
// anti-parallel segments cannot push acos outside its domain. If either
// segment has zero length the result is NaN; callers must not pass
// degenerate segments.
func AngleBetween(a, b Segment) float64 {
	v, w := a.Vector(), b.Vector()
	cos := v.Dot(w) / (v.Length() * w.Length())
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}
