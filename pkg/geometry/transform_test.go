package geometry

import (
	"math"
	"testing"

	"github.com/nkryptic/pathtracer/pkg/core"
)

func TestTranslateMovesHitPoint(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, -1), 0.5, fakeMaterial{})
	offset := core.NewVec3(3, -2, 1)
	moved := NewTranslate(s, offset)

	r := core.NewRay(core.NewVec3(3, -2, 0), core.NewVec3(0, 0, -1))
	rec, ok := moved.Hit(r, 0.001, 1000, nil)
	if !ok {
		t.Fatal("expected hit on translated sphere")
	}
	want := core.NewVec3(3, -2, -0.5)
	if !rec.Point.Equals(want) {
		t.Errorf("hit point = %v, want %v", rec.Point, want)
	}
}

func TestRotateYRoundTrip(t *testing.T) {
	box := NewCuboid(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), fakeMaterial{})

	forward := NewRotateY(box, 45)
	back := NewRotateY(forward, -45)

	r := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	recDirect, okDirect := box.Hit(r, 0.001, 1000, nil)
	recRound, okRound := back.Hit(r, 0.001, 1000, nil)

	if !okDirect || !okRound {
		t.Fatalf("expected both to hit: direct=%v round=%v", okDirect, okRound)
	}
	if math.Abs(recDirect.T-recRound.T) > 1e-6 {
		t.Errorf("T mismatch after rotate +45/-45 round trip: %f vs %f", recDirect.T, recRound.T)
	}
	if !recDirect.Point.Equals(recRound.Point) {
		t.Errorf("point mismatch after round trip: %v vs %v", recDirect.Point, recRound.Point)
	}
}

func TestCuboidBoundingBox(t *testing.T) {
	box := NewCuboid(core.NewVec3(0, 0, 0), core.NewVec3(1, 2, 3), fakeMaterial{})
	bb := box.BoundingBox()
	if !bb.Min.Equals(core.NewVec3(0, 0, 0)) || !bb.Max.Equals(core.NewVec3(1, 2, 3)) {
		t.Errorf("BoundingBox = %v..%v", bb.Min, bb.Max)
	}
}
