package kintsugi

// Vessel describes the ceramic disc being broken and mended: its center in
// host coordinates and its radius. The host owns the vessel geometry and may
// replace it at any time (e.g. on viewport resize); the core reads it fresh on
// every operation and never caches it across calls.
type Vessel struct {
	Center Point
	Radius float64
}

// Contains reports whether pt lies on or inside the vessel rim.
func (v Vessel) Contains(pt Point) bool {
	return pt.DistanceSquared(v.Center) <= v.Radius*v.Radius
}

// Clamp pulls pt onto the rim if it lies outside the vessel, and returns the
// vessel center if pt is not finite. Impact coordinates arrive from pointer
// events and are not trusted.
func (v Vessel) Clamp(pt Point) Point {
	if !pt.IsFinite() {
		return v.Center
	}
	d := pt.Sub(v.Center)
	if d.Hypot2() <= v.Radius*v.Radius {
		return pt
	}
	return v.Center.Translate(d.Normalize().Mul(v.Radius))
}

// RimPoint returns the point on the rim at the given angle about the center.
func (v Vessel) RimPoint(angle float64) Point {
	return v.Center.Translate(VecFromAngle(angle).Mul(v.Radius))
}
