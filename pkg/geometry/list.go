package geometry

import "github.com/nkryptic/pathtracer/pkg/core"

// List is an unaccelerated collection of Hittables, tested linearly. Used
// for small fixed groups (a Cuboid's six faces) where building a BVH would
// cost more than it saves; the scene's top-level collection instead goes
// through pkg/bvh.
type List struct {
	Objects []core.Hittable
	bounds  core.AABB
	hasBox  bool
}

// NewList builds a List over the given objects.
func NewList(objects ...core.Hittable) *List {
	l := &List{Objects: objects}
	for _, o := range objects {
		l.grow(o.BoundingBox())
	}
	return l
}

// Add appends an object, extending the cached bounding box.
func (l *List) Add(o core.Hittable) {
	l.Objects = append(l.Objects, o)
	l.grow(o.BoundingBox())
}

func (l *List) grow(box core.AABB) {
	if !l.hasBox {
		l.bounds = box
		l.hasBox = true
		return
	}
	l.bounds = l.bounds.Union(box)
}

func (l *List) Hit(r core.Ray, tMin, tMax float64, rng *core.RNG) (core.HitRecord, bool) {
	var best core.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, o := range l.Objects {
		if rec, ok := o.Hit(r, tMin, closestSoFar, rng); ok {
			hitAnything = true
			closestSoFar = rec.T
			best = rec
		}
	}
	return best, hitAnything
}

func (l *List) BoundingBox() core.AABB {
	if !l.hasBox {
		return core.EmptyAABB()
	}
	return l.bounds
}
