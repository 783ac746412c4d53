package kintsugi

import "math"

const (
	// ringThreshold is the intensity above which decorative concentric ring
	// cracks are added around the break.
	ringThreshold = 0.7
)

// SmoothedPath is one flattened, Catmull-Rom-smoothed crack line ready for
// rendering: its sampled points plus the thickness and branch depth of the
// crack it came from.
type SmoothedPath struct {
	Points    []Point
	Thickness float64
	Depth     int
}

// Partial returns the leading portion of the path covering fraction f of its
// arc length, ending on an interpolated point. This is the advancing lacquer
// front: gold flows from the path's origin outward as f goes 0→1.
func (p SmoothedPath) Partial(f float64) []Point {
	if len(p.Points) == 0 {
		return nil
	}
	f = clamp01(f)
	total := PolylineLength(p.Points)
	if f >= 1 || total == 0 {
		out := make([]Point, len(p.Points))
		copy(out, p.Points)
		return out
	}
	budget := total * f
	out := []Point{p.Points[0]}
	for i := 1; i < len(p.Points); i++ {
		if budget <= 1e-9 {
			break
		}
		d := p.Points[i].Distance(p.Points[i-1])
		if d <= budget {
			out = append(out, p.Points[i])
			budget -= d
			continue
		}
		if d > 0 {
			out = append(out, p.Points[i-1].Lerp(p.Points[i], budget/d))
		}
		break
	}
	return out
}

// Pool marks a crossing of two seams, where lacquer collects into a gold bead.
type Pool struct {
	Center Point
	Radius float64
}

// Fracture is the full result of one break: four independently consumable
// views derived from a single shared crack dataset. Paths feed the crack and
// lacquer renderer, Seams and Pools feed the gold effects, Fragments feed the
// scatter and mend motion.
type Fracture struct {
	Paths     []SmoothedPath
	Seams     []Seam
	Pools     []Pool
	Fragments []Fragment
}

// CreateFracture turns a release gesture into a complete fracture. If grown
// is non-empty it is taken as the crack set built up during the hold phase;
// otherwise a fresh set is initialized at the impact point. Either way the
// set is driven to completion, decorated with ring cracks at high intensity,
// and projected into paths, seams, pools, and fragments.
//
// The result is randomized: repeated calls with identical arguments produce
// different but statistically similar geometry. Intensity and impact are
// clamped defensively; out-of-range input degrades, it never fails. Higher
// intensity requests more primary cracks, raises branch probability, and adds
// rings, so the fragment count never trends downward as intensity rises.
func (f *Fracturer) CreateFracture(impact Point, intensity float64, grown []*CrackPath) *Fracture {
	intensity = clamp01(intensity)
	impact = f.Vessel.Clamp(impact)

	cracks := grown
	if len(cracks) == 0 {
		count := tensionTargetBase + int(intensity*tensionTargetScale)
		cracks = f.InitTensionCracks(impact, count)
	}
	f.FinalizeCracks(cracks, intensity)

	all := flattenCracks(cracks)
	if intensity > ringThreshold {
		all = append(all, f.ringCracks(intensity)...)
	}

	var paths []SmoothedPath
	for _, c := range all {
		sm := c.Smoothed(SmoothResolution)
		if len(sm) < 2 {
			continue
		}
		paths = append(paths, SmoothedPath{
			Points:    sm,
			Thickness: c.Thickness,
			Depth:     c.Depth,
		})
	}

	var seams []Seam
	var seamPath []int
	for pi, p := range paths {
		for i := 1; i < len(p.Points); i++ {
			seams = append(seams, Seam{
				P0:        p.Points[i-1],
				P1:        p.Points[i],
				Thickness: p.Thickness,
			})
			seamPath = append(seamPath, pi)
		}
	}

	pools := f.derivePools(seams, seamPath)
	fragments := f.buildFragments(cracks, impact, intensity)

	return &Fracture{
		Paths:     paths,
		Seams:     seams,
		Pools:     pools,
		Fragments: fragments,
	}
}

// derivePools intersects seams pairwise, skipping pairs cut from the same
// path; together with the middle-80% restriction in [Seam.Intersect] this
// keeps shared endpoints and near-tangent self-crossings from reading as
// pools. The result is never nil, only possibly empty.
func (f *Fracturer) derivePools(seams []Seam, seamPath []int) []Pool {
	pools := []Pool{}
	for i := range seams {
		for j := i + 1; j < len(seams); j++ {
			if seamPath[i] == seamPath[j] {
				continue
			}
			pt, ok := seams[i].Intersect(seams[j])
			if !ok {
				continue
			}
			r := 0.6*(seams[i].Thickness+seams[j].Thickness) + f.Rand.Float64()*1.2
			pools = append(pools, Pool{Center: pt, Radius: r})
		}
	}
	return pools
}

// ringCracks places one or two concentric arc cracks around the vessel
// center. They are decorative: born finished, never grown, and never used as
// fragment edges.
func (f *Fracturer) ringCracks(intensity float64) []*CrackPath {
	v := f.Vessel
	n := 1
	if intensity > 0.85 {
		n = 2
	}
	rings := make([]*CrackPath, 0, n)
	for i := range n {
		rf := 0.3 + 0.22*float64(i+1) + 0.08*f.Rand.Float64()
		span := math.Pi * (0.6 + 0.8*f.Rand.Float64())
		start := f.Rand.Float64() * 2 * math.Pi
		steps := max(8, int(span/0.12))
		pts := make([]Point, 0, steps+1)
		for j := 0; j <= steps; j++ {
			th := start + span*float64(j)/float64(steps)
			r := v.Radius * rf * (1 + (f.Rand.Float64()-0.5)*0.04)
			pts = append(pts, v.Center.Translate(VecFromAngle(th).Mul(r)))
		}
		rings = append(rings, &CrackPath{
			Points:     pts,
			Angle:      start + span,
			MaxLength:  PolylineLength(pts),
			Length:     PolylineLength(pts),
			Depth:      1,
			Thickness:  0.8 + 0.6*f.Rand.Float64(),
			Finished:   true,
			Wavelength: 1,
		})
	}
	return rings
}
