package core

import (
	"math"
	"testing"
)

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	for i := 0; i < 100; i++ {
		if got, want := a.Float64(), b.Float64(); got != want {
			t.Fatalf("same seed diverged at sample %d: %f != %f", i, got, want)
		}
	}
}

func TestRNGInUnitSphere(t *testing.T) {
	rng := NewRNG(1)
	for i := 0; i < 1000; i++ {
		p := rng.InUnitSphere()
		if p.LengthSquared() >= 1 {
			t.Fatalf("point outside unit sphere: %v (len^2=%f)", p, p.LengthSquared())
		}
	}
}

func TestRNGInUnitDisk(t *testing.T) {
	rng := NewRNG(2)
	for i := 0; i < 1000; i++ {
		p := rng.InUnitDisk()
		if p.Z != 0 {
			t.Fatalf("disk sample left the XY plane: %v", p)
		}
		if p.LengthSquared() >= 1 {
			t.Fatalf("point outside unit disk: %v", p)
		}
	}
}

func TestRNGCosineDirectionUnitLength(t *testing.T) {
	rng := NewRNG(3)
	for i := 0; i < 1000; i++ {
		d := rng.CosineDirection()
		if math.Abs(d.Length()-1.0) > 1e-6 {
			t.Fatalf("cosine direction not unit length: %v (len=%f)", d, d.Length())
		}
		if d.Z < 0 {
			t.Fatalf("cosine direction below hemisphere: %v", d)
		}
	}
}
