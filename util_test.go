package kintsugi

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// testVessel is the reference disc used throughout the tests.
var testVessel = Vessel{Center: Pt(200, 200), Radius: 100}

func testFracturer(seed int64) *Fracturer {
	return NewFracturer(testVessel, rand.New(rand.NewSource(seed)))
}
