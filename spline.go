package kintsugi

// CatmullRom samples a uniform Catmull-Rom spline through the given control
// points, producing the organic curved polyline used both for crack rendering
// and as fragment-boundary edges. Each control segment contributes resolution
// interpolated samples, so the output has 1 + (len(pts)-1)*resolution points
// and passes through every control point.
//
// Inputs with fewer than 3 points cannot be interpolated and are returned as a
// copy, unchanged. The first and last control points are duplicated to serve
// as the missing outer tangent anchors.
func CatmullRom(pts []Point, resolution int) []Point {
	if len(pts) < 3 || resolution < 1 {
		out := make([]Point, len(pts))
		copy(out, pts)
		return out
	}

	out := make([]Point, 0, 1+(len(pts)-1)*resolution)
	out = append(out, pts[0])
	for i := 0; i < len(pts)-1; i++ {
		p0 := pts[max(i-1, 0)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[min(i+2, len(pts)-1)]
		for j := 1; j <= resolution; j++ {
			t := float64(j) / float64(resolution)
			out = append(out, catmullRomPoint(p0, p1, p2, p3, t))
		}
	}
	return out
}

// catmullRomPoint evaluates one uniform Catmull-Rom segment between p1 and p2
// at t ∈ [0, 1], with p0 and p3 as tangent anchors.
func catmullRomPoint(p0, p1, p2, p3 Point, t float64) Point {
	t2 := t * t
	t3 := t2 * t
	eval := func(a0, a1, a2, a3 float64) float64 {
		return 0.5 * (2.0*a1 +
			(a2-a0)*t +
			(2.0*a0-5.0*a1+4.0*a2-a3)*t2 +
			(3.0*a1-a0-3.0*a2+a3)*t3)
	}
	return Point{
		X: eval(p0.X, p1.X, p2.X, p3.X),
		Y: eval(p0.Y, p1.Y, p2.Y, p3.Y),
	}
}

// PolylineLength returns the total arc length of a polyline, i.e. the sum of
// the distances between consecutive points.
func PolylineLength(pts []Point) float64 {
	var length float64
	for i := 1; i < len(pts); i++ {
		length += pts[i].Distance(pts[i-1])
	}
	return length
}
