package kintsugi

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCatmullRomDegenerate(t *testing.T) {
	for _, pts := range [][]Point{
		nil,
		{Pt(1, 2)},
		{Pt(1, 2), Pt(3, 4)},
	} {
		got := CatmullRom(pts, 4)
		if len(got) != len(pts) {
			t.Errorf("CatmullRom(%v) = %v, want input unchanged", pts, got)
		}
	}
}

func TestCatmullRomLengthens(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 5), Pt(20, 0), Pt(30, 10)}
	got := CatmullRom(pts, 4)
	want := 1 + (len(pts)-1)*4
	if len(got) != want {
		t.Errorf("got %d points, want %d", len(got), want)
	}
	if len(got) <= len(pts) {
		t.Errorf("smoothing must add samples: %d <= %d", len(got), len(pts))
	}
}

func TestCatmullRomInterpolatesControls(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 5), Pt(20, 0), Pt(30, 10)}
	res := 3
	got := CatmullRom(pts, res)
	for i, p := range pts {
		diff(t, p, got[i*res], cmpopts.EquateApprox(0, 1e-9))
	}
}

func TestCatmullRomStaysNearControls(t *testing.T) {
	// Catmull-Rom passes through its controls and overshoots only mildly
	// between them.
	pts := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}
	for _, p := range CatmullRom(pts, 8) {
		if p.X < -5 || p.X > 15 || p.Y < -5 || p.Y > 15 {
			t.Errorf("sample %v far outside the control hull", p)
		}
	}
}

func TestPolylineLength(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(3, 4), Pt(6, 4)}
	if got := PolylineLength(pts); math.Abs(got-8) > 0.01 {
		t.Errorf("PolylineLength = %g, want 8", got)
	}
	if got := PolylineLength(nil); got != 0 {
		t.Errorf("PolylineLength(nil) = %g, want 0", got)
	}
	if got := PolylineLength([]Point{Pt(5, 5)}); got != 0 {
		t.Errorf("PolylineLength(single point) = %g, want 0", got)
	}
}
