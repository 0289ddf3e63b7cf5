package geometry

import (
	"testing"

	"github.com/nkryptic/pathtracer/pkg/core"
)

func TestListHitsNearest(t *testing.T) {
	l := NewList(
		NewSphere(core.NewVec3(0, 0, -1), 0.5, fakeMaterial{}),
		NewSphere(core.NewVec3(0, 0, -3), 0.5, fakeMaterial{}),
	)
	r := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	rec, ok := l.Hit(r, 0.001, 1000, nil)
	if !ok {
		t.Fatal("expected a hit")
	}
	if rec.T > 0.6 {
		t.Errorf("expected to hit the nearer sphere, got T=%f", rec.T)
	}
}

func TestListBoundingBoxGrows(t *testing.T) {
	l := NewList(NewSphere(core.NewVec3(0, 0, 0), 1, fakeMaterial{}))
	l.Add(NewSphere(core.NewVec3(10, 0, 0), 1, fakeMaterial{}))

	box := l.BoundingBox()
	if box.Max.X < 11 {
		t.Errorf("expected bounding box to grow after Add, got max.X=%f", box.Max.X)
	}
}

func TestEmptyListHasEmptyBox(t *testing.T) {
	l := NewList()
	box := l.BoundingBox()
	if box.Min.X <= box.Max.X {
		t.Errorf("expected an empty list to report a degenerate box, got %v", box)
	}
}
