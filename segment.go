// 2D line-segment geometry.
//
// This package provides a directed line segment value type with the usual
// geometric queries: length, angle, interpolation, nearest-point projection,
// and segment/segment intersection with full degenerate-case handling. All
// types are plain values with no shared state, so everything here is safe to
// use from any number of goroutines without synchronization.
//
// Coordinates follow the screen convention: y increases downward, and angles
// are measured clockwise from the positive x axis. Callers working in a
// y-up system can negate y on the way in and out.
package seg2

import "math"

// Segment is a directed line segment from Start to End. Like Point it is a
// plain value; operations that "modify" a segment return a new one.
//
// A segment may be degenerate (Start == End). No operation treats that as an
// error; each one documents its fallback.
type Segment struct {
	Start, End Point
}

// New creates a segment from the coordinates of its two endpoints.
func New(startX, startY, endX, endY float64) Segment {
	return Segment{Start: Point{startX, startY}, End: Point{endX, endY}}
}

// FromPoints creates a segment from its two endpoints.
func FromPoints(start, end Point) Segment {
	return Segment{Start: start, End: end}
}

// Reversed returns the segment with its direction flipped.
func (s Segment) Reversed() Segment {
	return Segment{Start: s.End, End: s.Start}
}

// WithStart returns a copy of the segment with its start point replaced.
func (s Segment) WithStart(p Point) Segment {
	return Segment{Start: p, End: s.End}
}

// WithEnd returns a copy of the segment with its end point replaced.
func (s Segment) WithEnd(p Point) Segment {
	return Segment{Start: s.Start, End: p}
}

// Length returns the Euclidean distance between the endpoints. A degenerate
// segment has length 0.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Angle returns the angle of the directed vector from Start to End, in
// radians clockwise from the positive x axis (screen convention, y down).
// A degenerate segment has angle 0.
func (s Segment) Angle() float64 {
	return math.Atan2(s.End.Y-s.Start.Y, s.End.X-s.Start.X)
}

// IsVertical reports whether the endpoints have exactly equal x coordinates.
// There is no epsilon here; callers that need tolerance must round first.
func (s Segment) IsVertical() bool {
	return s.Start.X == s.End.X
}

// IsHorizontal reports whether the endpoints have exactly equal y coordinates.
// There is no epsilon here; callers that need tolerance must round first.
func (s Segment) IsHorizontal() bool {
	return s.Start.Y == s.End.Y
}

// PointAlong returns the point at arc length d from Start along the segment's
// direction. Values of d outside [0, Length] extrapolate along the infinite
// line. For a degenerate segment the result is Start.
func (s Segment) PointAlong(d float64) Point {
	length := s.Length()
	if length == 0 {
		return s.Start
	}
	return s.Start.Add(s.End.Sub(s.Start).Mul(d / length))
}

// PointAlongOffset returns the point reached by moving d along the segment
// from Start and then perp sideways. A positive perp moves to the right when
// looking from Start toward End (clockwise perpendicular, y down). For a
// degenerate segment there is no direction to offset along, so the result is
// Start.
func (s Segment) PointAlongOffset(d, perp float64) Point {
	delta := s.End.Sub(s.Start)
	length := math.Hypot(delta.X, delta.Y)
	if length <= 0 {
		return s.Start
	}
	return Point{
		X: s.Start.X + (delta.X*d-delta.Y*perp)/length,
		Y: s.Start.Y + (delta.Y*d+delta.X*perp)/length,
	}
}

// PointAt returns Start + t*(End-Start). t = 0 gives Start, t = 1 gives End,
// and values outside [0, 1] extrapolate; there is no clamping.
func (s Segment) PointAt(t float64) Point {
	return s.Start.Add(s.End.Sub(s.Start).Mul(t))
}

// DistanceTo returns the smallest distance between the segment and a point,
// along with the point on the segment where it occurs. If the perpendicular
// projection of p falls within the segment, that projection is the nearest
// point; otherwise the nearest endpoint wins. A degenerate segment falls
// straight through to endpoint distance.
func (s Segment) DistanceTo(p Point) (float64, Point) {
	delta := s.End.Sub(s.Start)
	lengthSq := delta.Dot(delta)

	if lengthSq > 0 {
		t := p.Sub(s.Start).Dot(delta) / lengthSq
		if t >= 0 && t <= 1 {
			onLine := s.Start.Add(delta.Mul(t))
			return p.Distance(onLine), onLine
		}
	}

	fromStart := p.Distance(s.Start)
	fromEnd := p.Distance(s.End)
	if fromStart < fromEnd {
		return fromStart, s.Start
	}
	return fromEnd, s.End
}

// NearestT returns the proportional position along the segment of the point
// nearest to p, clamped to [0, 1]. A degenerate segment returns 0. Feed the
// result to PointAt to get the position.
func (s Segment) NearestT(p Point) float64 {
	delta := s.End.Sub(s.Start)
	lengthSq := delta.Dot(delta)
	if lengthSq <= 0 {
		return 0
	}
	return Clamp(0, 1, p.Sub(s.Start).Dot(delta)/lengthSq)
}

// NearestPoint returns the point on the segment nearest to p.
func (s Segment) NearestPoint(p Point) Point {
	return s.PointAt(s.NearestT(p))
}

// IsPointAbove reports whether p lies above the infinite line through the
// segment: its y coordinate is less than the line's y at p's x (y down, so
// "above" is toward smaller y). Always false for a vertical segment.
func (s Segment) IsPointAbove(p Point) bool {
	return s.Start.X != s.End.X &&
		p.Y < (s.End.Y-s.Start.Y)*(p.X-s.Start.X)/(s.End.X-s.Start.X)+s.Start.Y
}

// WithShortenedStart returns a copy of the segment with its start moved
// toward the end by distance d. d is capped at the segment's length, so the
// start can collapse onto the end but never cross past it.
func (s Segment) WithShortenedStart(d float64) Segment {
	return Segment{Start: s.PointAlong(math.Min(d, s.Length())), End: s.End}
}

// WithShortenedEnd returns a copy of the segment with its end moved toward
// the start by distance d, capped the same way as WithShortenedStart.
func (s Segment) WithShortenedEnd(d float64) Segment {
	length := s.Length()
	return Segment{Start: s.Start, End: s.PointAlong(length - math.Min(d, length))}
}
