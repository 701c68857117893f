package seg2

import "math"

// Point is a position or direction vector in 2D space. It is a plain value:
// equality is component-wise, and all operations return new values.
type Point struct {
	X, Y float64
}

// Pt is shorthand for constructing a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul scales the point by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the scalar 2D cross product, the z component of the 3D cross
// product of the two vectors extended with z = 0.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// WithX returns a copy of the point with its x coordinate replaced.
func (p Point) WithX(x float64) Point {
	return Point{X: x, Y: p.Y}
}

// WithY returns a copy of the point with its y coordinate replaced.
func (p Point) WithY(y float64) Point {
	return Point{X: p.X, Y: y}
}

// IsOrigin reports whether both coordinates are exactly zero.
func (p Point) IsOrigin() bool {
	return p.X == 0 && p.Y == 0
}
