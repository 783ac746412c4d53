package kintsugi

import (
	"math"
	"testing"
)

func TestBuildFragments(t *testing.T) {
	f := testFracturer(20)
	cracks := f.InitTensionCracks(f.Vessel.Center, 8)
	f.FinalizeCracks(cracks, 0.5)

	frags := f.buildFragments(cracks, f.Vessel.Center, 0.5)
	if len(frags) == 0 {
		t.Fatal("no fragments from a full crack set")
	}
	for i, fr := range frags {
		if len(fr.Vertices) < 3 {
			t.Errorf("fragment %d has %d vertices", i, len(fr.Vertices))
		}
		if fr.Pos != fr.Home {
			t.Errorf("fragment %d born displaced: %v != %v", i, fr.Pos, fr.Home)
		}
		if fr.Area <= 0 {
			t.Errorf("fragment %d area %g", i, fr.Area)
		}

		// Vertices are centroid-relative, so they must average to zero.
		var sum Vec2
		for _, p := range fr.Vertices {
			sum = sum.Add(Vec2(p))
		}
		if sum.Div(float64(len(fr.Vertices))).Hypot() > 1e-6 {
			t.Errorf("fragment %d vertices not centered: mean offset %v", i, sum)
		}

		// Launch velocity points away from the vessel center.
		out := fr.Pos.Sub(f.Vessel.Center)
		if fr.Vel.Dot(out) <= 0 {
			t.Errorf("fragment %d launches inward: pos %v vel %v", i, fr.Pos, fr.Vel)
		}

		for _, p := range fr.WorldVertices(nil) {
			if p.Distance(f.Vessel.Center) > f.Vessel.Radius*1.05 {
				t.Errorf("fragment %d vertex %v outside the vessel", i, p)
			}
		}
	}
}

func TestBuildFragmentsSparse(t *testing.T) {
	// With no cracks at all, synthetic wedges still partition the disc.
	f := testFracturer(21)
	frags := f.buildFragments(nil, f.Vessel.Center, 0.2)
	if len(frags) != minFragmentEdges {
		t.Fatalf("got %d fragments from an empty crack set, want %d", len(frags), minFragmentEdges)
	}
	var total float64
	for _, fr := range frags {
		total += fr.Area
	}
	disc := math.Pi * f.Vessel.Radius * f.Vessel.Radius
	if total < 0.5*disc || total > 1.1*disc {
		t.Errorf("wedges cover %g, disc is %g", total, disc)
	}
}

func TestBuildFragmentsSkipsDegenerateCracks(t *testing.T) {
	f := testFracturer(22)
	// All cracks are single stubs; none can serve as a boundary edge.
	stubs := []*CrackPath{
		f.newCrack(f.Vessel.Center, 0, 0, 0),
		f.newCrack(f.Vessel.Center, 2, 0, 0),
	}
	frags := f.buildFragments(stubs, f.Vessel.Center, 0.5)
	if len(frags) < 3 {
		t.Errorf("degenerate cracks broke the wedge fallback: %d fragments", len(frags))
	}
}

func TestBuildFragmentsImpactProximity(t *testing.T) {
	// Fragments near the impact point launch faster.
	f := testFracturer(23)
	impact := Pt(260, 200)
	cracks := f.InitTensionCracks(impact, 8)
	f.FinalizeCracks(cracks, 0.8)
	frags := f.buildFragments(cracks, impact, 0.8)

	var near, far Fragment
	nearDist, farDist := math.Inf(1), math.Inf(-1)
	for _, fr := range frags {
		d := fr.Home.Distance(impact)
		if d < nearDist {
			near, nearDist = fr, d
		}
		if d > farDist {
			far, farDist = fr, d
		}
	}
	if len(frags) >= 2 && near.Vel.Hypot() <= far.Vel.Hypot() {
		t.Errorf("near fragment speed %g <= far fragment speed %g",
			near.Vel.Hypot(), far.Vel.Hypot())
	}
}

func TestPolygonArea(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}
	if got := polygonArea(square); math.Abs(got-1) > 1e-9 {
		t.Errorf("unit square area = %g", got)
	}
	reversed := []Point{Pt(0, 1), Pt(1, 1), Pt(1, 0), Pt(0, 0)}
	if got := polygonArea(reversed); math.Abs(got+1) > 1e-9 {
		t.Errorf("reversed unit square area = %g", got)
	}
}

func TestVertexAverage(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}
	got := vertexAverage(square)
	if math.Abs(got.X-0.5) > 1e-9 || math.Abs(got.Y-0.5) > 1e-9 {
		t.Errorf("vertexAverage = %v, want (0.5, 0.5)", got)
	}
	if vertexAverage(nil).IsFinite() {
		t.Error("empty polygon must yield a non-finite centroid")
	}
}

func TestWorldVertices(t *testing.T) {
	fr := Fragment{
		Vertices: []Point{Pt(1, 0), Pt(0, 1)},
		Pos:      Pt(10, 20),
		Rot:      math.Pi / 2,
	}
	got := fr.WorldVertices(nil)
	want := []Point{Pt(10, 21), Pt(9, 20)}
	for i := range want {
		if got[i].Distance(want[i]) > 1e-9 {
			t.Errorf("vertex %d = %v, want %v", i, got[i], want[i])
		}
	}
}
