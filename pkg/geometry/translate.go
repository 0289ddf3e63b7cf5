package geometry

import "github.com/nkryptic/pathtracer/pkg/core"

// Translate wraps a Hittable and offsets it in world space, by moving the
// incoming ray into the object's local space instead of transforming the
// object itself.
type Translate struct {
	Object core.Hittable
	Offset core.Vec3
}

func NewTranslate(object core.Hittable, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

func (t *Translate) Hit(r core.Ray, tMin, tMax float64, rng *core.RNG) (core.HitRecord, bool) {
	movedRay := core.NewRay(r.Origin.Subtract(t.Offset), r.Direction)

	rec, ok := t.Object.Hit(movedRay, tMin, tMax, rng)
	if !ok {
		return core.HitRecord{}, false
	}
	// Direction is unchanged between r and movedRay, so the normal's
	// orientation (front/back face) computed against movedRay still
	// holds against r; only the hit point needs to move back.
	rec.Point = rec.Point.Add(t.Offset)
	return rec, true
}

func (t *Translate) BoundingBox() core.AABB {
	box := t.Object.BoundingBox()
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset))
}
