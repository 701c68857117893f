package seg2

// Intersects finds the intersection of two segments. The returned point is
// always meaningful: when the boolean is true it is where the segments meet;
// when false it is where the infinite lines through them would meet, or a
// deterministic fallback for parallel lines (see findIntersection). Only the
// boolean distinguishes a true segment intersection.
func (s Segment) Intersects(other Segment) (Point, bool) {
	return findIntersection(s.Start, s.End, other.Start, other.End)
}

// IntersectionPoint returns the point where the infinite lines through the
// two segments cross, which may lie beyond either segment's ends. See
// Intersects for the parallel-line fallback.
func (s Segment) IntersectionPoint(other Segment) Point {
	p, _ := findIntersection(s.Start, s.End, other.Start, other.End)
	return p
}

// findIntersection solves for the crossing of segments (p1,p2) and (p3,p4).
//
// The case analysis, in order:
//   - p2 == p3: the segments chain end-to-start; that shared point is the
//     intersection.
//   - Zero cross-product divisor (parallel or degenerate directions): if
//     neither direction is the zero vector, try to resolve the axis-aligned
//     special cases (one segment horizontal or vertical, the other not) by
//     solving along the nonconstant axis alone; the hit counts only if the
//     parametric position on the other segment lands in [0, 1]. Failing
//     that, report no intersection but still produce a deterministic point:
//     the midpoint of p2 and p3.
//   - Otherwise solve the 2x2 system for the parametric positions along both
//     segments. The returned point is always p1 + d1*along1 — the
//     infinite-line crossing — and the boolean is true only when both
//     positions are in [0, 1].
func findIntersection(p1, p2, p3, p4 Point) (Point, bool) {
	if p2 == p3 {
		return p2, true
	}

	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	divisor := d1.Cross(d2)

	if divisor == 0 {
		if !(d1.IsOrigin() || d2.IsOrigin()) {
			if d1.Y == 0 && d2.Y != 0 {
				along := (p1.Y - p3.Y) / d2.Y
				return p1.WithX(p3.X + along*d2.X), along >= 0 && along <= 1
			}
			if d2.Y == 0 && d1.Y != 0 {
				along := (p3.Y - p1.Y) / d1.Y
				return p3.WithX(p1.X + along*d1.X), along >= 0 && along <= 1
			}
			if d1.X == 0 && d2.X != 0 {
				along := (p1.X - p3.X) / d2.X
				return p1.WithY(p3.Y + along*d2.Y), along >= 0 && along <= 1
			}
			if d2.X == 0 && d1.X != 0 {
				along := (p3.X - p1.X) / d1.X
				return p3.WithY(p1.Y + along*d1.Y), along >= 0 && along <= 1
			}
		}

		return p2.Add(p3).Mul(0.5), false
	}

	along1 := ((p1.Y-p3.Y)*d2.X - (p1.X-p3.X)*d2.Y) / divisor
	intersection := p1.Add(d1.Mul(along1))

	if along1 < 0 || along1 > 1 {
		return intersection, false
	}

	along2 := ((p1.Y-p3.Y)*d1.X - (p1.X-p3.X)*d1.Y) / divisor
	return intersection, along2 >= 0 && along2 <= 1
}
