package gfx

import "math"

// Point represents a 2D position or displacement in world space.
// The zero value is the origin.
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

// Length returns the distance from the origin.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// LengthSq returns the squared distance from the origin.
func (p Point) LengthSq() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Rotate returns the point rotated counter-clockwise by angle radians
// around the origin. Non-finite inputs propagate through the result.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: cos*p.X - sin*p.Y,
		Y: sin*p.X + cos*p.Y,
	}
}

// RotateAround returns the point rotated counter-clockwise by angle
// radians around an arbitrary pivot.
func (p Point) RotateAround(pivot Point, angle float64) Point {
	return p.Sub(pivot).Rotate(angle).Add(pivot)
}

// Distance returns the Euclidean distance between two points.
// Distance from the origin is Distance(p, Point{}).
func Distance(p, q Point) float64 {
	return math.Sqrt(DistanceSq(p, q))
}

// DistanceSq returns the squared Euclidean distance between two points.
// Cheaper than Distance when only comparing magnitudes.
func DistanceSq(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}
