package geometry

import (
	"math"
	"testing"

	"github.com/nkryptic/pathtracer/pkg/core"
)

// transmittance fires n straight-through rays at a unit medium of the given
// density and returns the fraction that pass through unscattered.
func transmittance(density float64, n int, seed int64) float64 {
	boundary := NewCuboid(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), fakeMaterial{})
	medium := NewConstantMediumFromColor(boundary, density, core.NewVec3(1, 1, 1))
	rng := core.NewRNG(seed)

	passed := 0
	for i := 0; i < n; i++ {
		r := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
		if _, hit := medium.Hit(r, 0.001, 1000, rng); !hit {
			passed++
		}
	}
	return float64(passed) / float64(n)
}

func TestConstantMediumDensityScaling(t *testing.T) {
	const n = 20000
	const pathLength = 2.0 // the cuboid spans z in [-1, 1]

	tLow := transmittance(0.5, n, 1)
	tHigh := transmittance(1.0, n, 2)

	wantLow := math.Exp(-0.5 * pathLength)
	wantHigh := math.Exp(-1.0 * pathLength)

	const tol = 0.05
	if math.Abs(tLow-wantLow) > tol {
		t.Errorf("transmittance at d=0.5: got %f, want ~%f", tLow, wantLow)
	}
	if math.Abs(tHigh-wantHigh) > tol {
		t.Errorf("transmittance at d=1.0: got %f, want ~%f", tHigh, wantHigh)
	}
	if tHigh >= tLow {
		t.Errorf("expected higher density to transmit less: d=1.0 gave %f, d=0.5 gave %f", tHigh, tLow)
	}
}
