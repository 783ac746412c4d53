package kintsugi

import "math"

const (
	// minFragmentEdges is the minimum number of rim-reaching edges required
	// to partition the disc; synthetic wedges fill in below it.
	minFragmentEdges = 4

	// edgeMinReach is the fraction of the radius a crack tip must clear for
	// the crack to serve as a fragment edge. Degenerate cracks stay visible
	// as cracks but never bound a fragment.
	edgeMinReach = 0.3

	// edgeSkipFactor discards edge points this close to the shared origin
	// vertex, which would otherwise produce zero-width slivers where many
	// cracks meet.
	edgeSkipFactor = 0.06

	rimInset      = 0.98
	rimJitterAmp  = 0.015
	rimJitterFreq = 7.0
	rimStepAngle  = 0.15

	// minFragmentAreaFactor scales with the disc area so resizing the vessel
	// keeps the same sliver policy.
	minFragmentAreaFactor = 0.002

	fragmentBaseSpeed  = 40.0
	fragmentSpeedScale = 160.0
	impactBoost        = 0.8
	maxFragmentSpin    = 1.6
)

// Fragment is one polygonal ceramic piece. Vertices are stored relative to
// the centroid, so moving or spinning a fragment is an origin-centered
// transform. Home is the centroid at creation and never changes; the mend
// phase pulls Pos back to it.
type Fragment struct {
	Vertices []Point
	Pos      Point
	Home     Point
	Vel      Vec2
	Rot      float64
	Spin     float64
	Area     float64
}

// WorldVertices appends the fragment's vertices, transformed by its current
// rotation and position, to dst and returns the extended slice.
func (fr Fragment) WorldVertices(dst []Point) []Point {
	sin, cos := math.Sincos(fr.Rot)
	for _, p := range fr.Vertices {
		dst = append(dst, Pt(
			fr.Pos.X+p.X*cos-p.Y*sin,
			fr.Pos.Y+p.X*sin+p.Y*cos,
		))
	}
	return dst
}

// fragmentEdge is one boundary edge candidate: an origin-outward polyline and
// the angle of its outward tip about the vessel center.
type fragmentEdge struct {
	points []Point
	angle  float64
}

// buildFragments partitions the disc into closed polygons bounded by the
// grown crack curves and rim arcs. Only primary cracks serve as edges; their
// smoothed geometry is shared verbatim with the rendered crack lines, which
// keeps the visible cracks and the fragment silhouettes in exact agreement.
func (f *Fracturer) buildFragments(cracks []*CrackPath, impact Point, intensity float64) []Fragment {
	v := f.Vessel
	intensity = clamp01(intensity)

	var edges []fragmentEdge
	for _, c := range cracks {
		sm := c.Smoothed(SmoothResolution)
		if len(sm) < 2 {
			continue
		}
		tip := sm[len(sm)-1]
		if tip.Distance(v.Center) < v.Radius*edgeMinReach {
			continue
		}
		edges = append(edges, fragmentEdge{
			points: sm,
			angle:  tip.Sub(v.Center).Angle(),
		})
	}

	edges = f.fillSparseEdges(edges, impact)
	sortEdgesByAngle(edges)

	rimPhase := f.Rand.Float64() * 2 * math.Pi
	minArea := minFragmentAreaFactor * math.Pi * v.Radius * v.Radius

	frags := make([]Fragment, 0, len(edges))
	for i := range edges {
		a := edges[i]
		b := edges[(i+1)%len(edges)]
		boundary := f.buildBoundary(a, b, impact, rimPhase)
		if len(boundary) < 3 {
			continue
		}
		area := math.Abs(polygonArea(boundary))
		if area < minArea {
			continue
		}
		centroid := vertexAverage(boundary)
		if !centroid.IsFinite() {
			continue
		}

		local := make([]Point, len(boundary))
		for j, p := range boundary {
			local[j] = Pt(p.X-centroid.X, p.Y-centroid.Y)
		}

		dir := centroid.Sub(v.Center)
		if dir.Hypot2() < 1e-12 {
			dir = VecFromAngle(a.angle)
		}
		proximity := clamp01(1 - centroid.Distance(impact)/v.Radius)
		speed := (fragmentBaseSpeed + fragmentSpeedScale*intensity) * (1 + impactBoost*proximity)

		frags = append(frags, Fragment{
			Vertices: local,
			Pos:      centroid,
			Home:     centroid,
			Vel:      dir.Normalize().Mul(speed),
			Spin:     (f.Rand.Float64() - 0.5) * 2 * maxFragmentSpin,
			Area:     area,
		})
	}
	return frags
}

// fillSparseEdges tops the edge set up to minFragmentEdges by dropping
// synthetic wedges into the largest angular gaps, so the disc is fully
// partitioned even when almost no cracks grew.
func (f *Fracturer) fillSparseEdges(edges []fragmentEdge, origin Point) []fragmentEdge {
	for len(edges) < minFragmentEdges {
		var angle float64
		if len(edges) == 0 {
			angle = f.Rand.Float64() * 2 * math.Pi
		} else {
			sortEdgesByAngle(edges)
			gapStart, gapSize := 0, 0.0
			for i := range edges {
				next := edges[(i+1)%len(edges)].angle
				d := next - edges[i].angle
				if d <= 0 {
					d += 2 * math.Pi
				}
				if d > gapSize {
					gapStart, gapSize = i, d
				}
			}
			angle = edges[gapStart].angle + gapSize/2
		}
		edges = append(edges, f.syntheticWedge(angle, origin))
	}
	return edges
}

// syntheticWedge builds a gently jittered polyline from the shared origin out
// to just inside the rim at the given angle about the center, standing in for
// a crack that never grew.
func (f *Fracturer) syntheticWedge(angle float64, origin Point) fragmentEdge {
	v := f.Vessel
	target := v.Center.Translate(VecFromAngle(angle).Mul(v.Radius * boundaryFactor))
	normal := target.Sub(origin).Normalize()
	normal = Vec(-normal.Y, normal.X)

	const samples = 6
	pts := make([]Point, 0, samples+1)
	pts = append(pts, origin)
	for i := 1; i <= samples; i++ {
		t := float64(i) / samples
		wobble := (f.Rand.Float64() - 0.5) * 0.04 * v.Radius * t * (1 - t)
		pts = append(pts, origin.Lerp(target, t).Translate(normal.Mul(wobble)))
	}
	return fragmentEdge{
		points: pts,
		angle:  pts[len(pts)-1].Sub(v.Center).Angle(),
	}
}

// buildBoundary closes one fragment polygon: the cracks' shared origin, out
// along edge a, around the rim from a's tip angle to b's in the near angular
// direction, and back in along edge b reversed. A small sinusoidal radius
// jitter keeps the rim edge from reading as a perfect circle.
func (f *Fracturer) buildBoundary(a, b fragmentEdge, origin Point, rimPhase float64) []Point {
	v := f.Vessel
	skip := v.Radius * edgeSkipFactor

	boundary := []Point{origin}
	for _, p := range a.points {
		if p.Distance(origin) < skip {
			continue
		}
		boundary = append(boundary, p)
	}

	delta := b.angle - a.angle
	if delta <= 0 {
		delta += 2 * math.Pi
	}
	steps := max(2, int(delta/rimStepAngle))
	for j := 1; j < steps; j++ {
		th := a.angle + delta*float64(j)/float64(steps)
		r := v.Radius * (rimInset + rimJitterAmp*math.Sin(th*rimJitterFreq+rimPhase))
		boundary = append(boundary, v.Center.Translate(VecFromAngle(th).Mul(r)))
	}

	for i := len(b.points) - 1; i >= 0; i-- {
		p := b.points[i]
		if p.Distance(origin) < skip {
			continue
		}
		boundary = append(boundary, p)
	}
	return boundary
}

func sortEdgesByAngle(edges []fragmentEdge) {
	// Insertion sort; edge counts are small.
	for i := 1; i < len(edges); i++ {
		for j := i; j > 0 && edges[j].angle < edges[j-1].angle; j-- {
			edges[j], edges[j-1] = edges[j-1], edges[j]
		}
	}
}

// polygonArea returns the signed area of a polygon via the shoelace formula.
func polygonArea(pts []Point) float64 {
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return 0.5 * sum
}

// vertexAverage returns the unweighted mean of the vertices. For these
// organic, roughly convex boundaries it lands close enough to the true
// centroid, and it matches the rest position fragments visually snap back to.
func vertexAverage(pts []Point) Point {
	if len(pts) == 0 {
		return Point{X: math.NaN(), Y: math.NaN()}
	}
	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pts))
	return Pt(sx/n, sy/n)
}
