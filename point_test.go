package kintsugi

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(-10, 0), Pt(0, 0).Translate(Vec(-10, 0)))
	diff(t, Vec(3, 4), Pt(5, 6).Sub(Pt(2, 2)))
	diff(t, Pt(5, 5), Pt(0, 0).Lerp(Pt(10, 10), 0.5))
	diff(t, Pt(1, 2), Pt(0, 0).Midpoint(Pt(2, 4)))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointIsFinite(t *testing.T) {
	if !Pt(1, 2).IsFinite() {
		t.Error("finite point reported non-finite")
	}
	if Pt(math.NaN(), 0).IsFinite() {
		t.Error("NaN point reported finite")
	}
	if Pt(0, math.Inf(-1)).IsFinite() {
		t.Error("infinite point reported finite")
	}
}

func TestVecAngle(t *testing.T) {
	if a := Vec(1, 0).Angle(); a != 0 {
		t.Errorf("got angle %v, want 0", a)
	}
	if a := Vec(0, 1).Angle(); math.Abs(a-math.Pi/2) > 1e-12 {
		t.Errorf("got angle %v, want π/2", a)
	}
	v := VecFromAngle(1.3)
	if math.Abs(v.Angle()-1.3) > 1e-12 {
		t.Errorf("round trip angle %v, want 1.3", v.Angle())
	}
	if math.Abs(v.Hypot()-1) > 1e-12 {
		t.Errorf("unit vector magnitude %v", v.Hypot())
	}
}

func TestVecCrossDot(t *testing.T) {
	if c := Vec(1, 0).Cross(Vec(0, 1)); c != 1 {
		t.Errorf("got cross %v, want 1", c)
	}
	if d := Vec(2, 3).Dot(Vec(4, 5)); d != 23 {
		t.Errorf("got dot %v, want 23", d)
	}
}

func TestVecNormalize(t *testing.T) {
	n := Vec(3, 4).Normalize()
	diff(t, Vec(0.6, 0.8), n, cmpopts.EquateApprox(0, 1e-12))
	if Vec(0, 0).Normalize().IsNaN() == false {
		t.Error("normalizing the zero vector must produce NaN")
	}
}
