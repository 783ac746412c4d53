package kintsugi

import "math"

// Seam is one straight sub-segment of a smoothed crack path. The gold lacquer
// of the mend phase flows along seams, so every seam carries the thickness of
// the path it was cut from.
type Seam struct {
	P0        Point
	P1        Point
	Thickness float64
}

// Length returns the length of the seam.
func (s Seam) Length() float64 {
	return s.P1.Sub(s.P0).Hypot()
}

// Midpoint returns the seam's midpoint.
func (s Seam) Midpoint() Point {
	return s.P0.Midpoint(s.P1)
}

// seamIntersectMargin keeps intersections away from segment endpoints.
// Consecutive seams of one path share endpoints, and endpoint touches would
// otherwise register as spurious crossings.
const seamIntersectMargin = 0.1

// Intersect computes the crossing point of two seams, restricted to the middle
// 80% of both segments. Parallel and degenerate seams report no intersection.
func (s Seam) Intersect(o Seam) (Point, bool) {
	d1 := s.P1.Sub(s.P0)
	d2 := o.P1.Sub(o.P0)
	den := d1.Cross(d2)
	if math.Abs(den) < 1e-12 {
		return Point{}, false
	}
	w := o.P0.Sub(s.P0)
	t := w.Cross(d2) / den
	u := w.Cross(d1) / den
	if t < seamIntersectMargin || t > 1.0-seamIntersectMargin ||
		u < seamIntersectMargin || u > 1.0-seamIntersectMargin {
		return Point{}, false
	}
	return s.P0.Translate(d1.Mul(t)), true
}
