package kintsugi

import "math"

const (
	// maxBranchDepth caps branch generations; no branch chain grows deeper.
	maxBranchDepth = 3

	// boundaryFactor stops cracks just inside the rim so crack tips never
	// poke through the vessel silhouette.
	boundaryFactor = 0.92

	minStepLength = 2.0
	maxStepLength = 5.0

	// minBranchTravel is the arc length a crack must cover before it may
	// spawn its first branch.
	minBranchTravel = 18.0

	branchChance    = 0.035
	headingJitter   = 0.12
	wanderAmplitude = 0.16

	// finalizeCap bounds the finalize sweep count so a pathological heading
	// sequence cannot stall the release gesture.
	finalizeCap = 500

	tensionTargetBase  = 5
	tensionTargetScale = 7
	tensionInjectRate  = 0.35
)

// SmoothResolution is the Catmull-Rom sample count per control segment used
// throughout the package when flattening cracks for rendering and fragment
// construction.
const SmoothResolution = 4

// CrackPath is one growing fracture line: an ordered polyline from its origin
// to its current tip, plus the heading and budget state that drive further
// growth. Branches are owned exclusively by their parent, so the whole crack
// network is a strict tree.
type CrackPath struct {
	Points    []Point
	Angle     float64
	MaxLength float64
	Length    float64
	Depth     int
	Thickness float64
	Branches  []*CrackPath
	Finished  bool

	// Fixed at creation. Curvature makes a crack consistently curl to one
	// side; Wavelength and Phase drive a slow sinusoidal wander evaluated at
	// the accumulated arc length.
	Curvature  float64
	Wavelength float64
	Phase      float64
}

// Tip returns the crack's current outward end.
func (c *CrackPath) Tip() Point {
	return c.Points[len(c.Points)-1]
}

// Smoothed returns the Catmull-Rom interpolation of the crack's raw points at
// the given per-segment resolution. Cracks with fewer than 3 points are
// returned as-is.
func (c *CrackPath) Smoothed(resolution int) []Point {
	return CatmullRom(c.Points, resolution)
}

// walk visits c and every transitively owned branch, parent before children.
func (c *CrackPath) walk(fn func(*CrackPath)) {
	fn(c)
	for _, b := range c.Branches {
		b.walk(fn)
	}
}

// flattenCracks collects every crack in the forest, branches included, in
// depth-first order.
func flattenCracks(cracks []*CrackPath) []*CrackPath {
	var all []*CrackPath
	for _, c := range cracks {
		c.walk(func(n *CrackPath) {
			all = append(all, n)
		})
	}
	return all
}

func (f *Fracturer) newCrack(origin Point, angle, budget float64, depth int) *CrackPath {
	base := 2.8 / float64(1+depth)
	return &CrackPath{
		Points:     []Point{origin},
		Angle:      angle,
		MaxLength:  budget,
		Depth:      depth,
		Thickness:  base * (0.7 + 0.6*f.Rand.Float64()),
		Finished:   budget <= 0,
		Curvature:  (f.Rand.Float64() - 0.5) * 0.03,
		Wavelength: 30 + f.Rand.Float64()*50,
		Phase:      f.Rand.Float64() * 2 * math.Pi,
	}
}

// InitTensionCracks creates count primary cracks radiating from origin.
// Headings are evenly spaced around the full turn with up to ±40% of the
// spacing in jitter, so the star is irregular but still covers the disc.
// Each crack's length budget is a random 0.6–1.0 fraction of the vessel
// radius.
func (f *Fracturer) InitTensionCracks(origin Point, count int) []*CrackPath {
	if count < 1 {
		count = 1
	}
	origin = f.Vessel.Clamp(origin)
	spacing := 2 * math.Pi / float64(count)
	cracks := make([]*CrackPath, 0, count)
	for i := range count {
		angle := float64(i)*spacing + (f.Rand.Float64()-0.5)*spacing*0.8
		budget := f.Vessel.Radius * (0.6 + 0.4*f.Rand.Float64())
		cracks = append(cracks, f.newCrack(origin, angle, budget, 0))
	}
	return cracks
}

// GrowStep advances one crack by a single growth step and reports whether the
// crack moved. Finished cracks are left untouched.
//
// The heading update combines the crack's sinusoidal wander (evaluated at its
// accumulated length), its constant curl bias, and fresh jitter. The crack
// finishes when its new tip crosses the boundary circle or its length budget
// runs out. While still inside the disc it may spawn a branch; branch
// probability scales with intensity and decays with depth.
func (f *Fracturer) GrowStep(c *CrackPath, intensity float64) bool {
	if c.Finished {
		return false
	}
	intensity = clamp01(intensity)

	step := minStepLength + f.Rand.Float64()*(maxStepLength-minStepLength)
	wander := math.Sin(2*math.Pi*c.Length/c.Wavelength + c.Phase)
	jitter := (f.Rand.Float64() - 0.5) * headingJitter
	c.Angle += wander*wanderAmplitude + c.Curvature + jitter

	tip := c.Tip().Translate(VecFromAngle(c.Angle).Mul(step))
	c.Points = append(c.Points, tip)
	c.Length += step

	v := f.Vessel
	if tip.Distance(v.Center) >= v.Radius*boundaryFactor || c.Length >= c.MaxLength {
		c.Finished = true
		return true
	}

	if c.Depth < maxBranchDepth && c.Length >= minBranchTravel {
		p := branchChance * (0.5 + intensity) / float64(c.Depth+1)
		if f.Rand.Float64() < p {
			c.Branches = append(c.Branches, f.spawnBranch(c))
		}
	}
	return true
}

// spawnBranch starts a child crack at the parent's tip with a widely deflected
// heading and a budget cut from the parent's remaining length.
func (f *Fracturer) spawnBranch(c *CrackPath) *CrackPath {
	side := 1.0
	if f.Rand.Float64() < 0.5 {
		side = -1.0
	}
	angle := c.Angle + side*(0.4+0.8*f.Rand.Float64())
	budget := (c.MaxLength - c.Length) * (0.3 + 0.4*f.Rand.Float64())
	return f.newCrack(c.Tip(), angle, budget, c.Depth+1)
}

// GrowTensionCracks advances the whole crack forest by one hold-gesture tick:
// every crack and branch takes a number of steps proportional to intensity,
// and while the primary count is below the intensity-scaled target a new
// primary may be injected at the current interaction point.
//
// This call mutates the cracks in place and advances simulation time; invoke
// it at most once per animation tick. The possibly extended slice is returned.
func (f *Fracturer) GrowTensionCracks(cracks []*CrackPath, origin Point, intensity float64) []*CrackPath {
	intensity = clamp01(intensity)
	steps := 1 + int(intensity*3)
	for _, c := range flattenCracks(cracks) {
		for range steps {
			if !f.GrowStep(c, intensity) {
				break
			}
		}
	}

	target := tensionTargetBase + int(intensity*tensionTargetScale)
	if len(cracks) < target && f.Rand.Float64() < tensionInjectRate*(0.3+intensity) {
		origin = f.Vessel.Clamp(origin)
		angle := f.Rand.Float64() * 2 * math.Pi
		budget := f.Vessel.Radius * (0.6 + 0.4*f.Rand.Float64())
		cracks = append(cracks, f.newCrack(origin, angle, budget, 0))
	}
	return cracks
}

// FinalizeCracks drives every crack in the forest, branches included, to its
// finished state. Each sweep re-flattens the forest so branches spawned during
// the sweep are picked up too. The sweep count is capped; anything still
// growing at the cap is forced finished and used at its current length.
func (f *Fracturer) FinalizeCracks(cracks []*CrackPath, intensity float64) {
	intensity = clamp01(intensity)
	for range finalizeCap {
		advanced := false
		for _, c := range flattenCracks(cracks) {
			if f.GrowStep(c, intensity) {
				advanced = true
			}
		}
		if !advanced {
			return
		}
	}
	for _, c := range flattenCracks(cracks) {
		c.Finished = true
	}
}
