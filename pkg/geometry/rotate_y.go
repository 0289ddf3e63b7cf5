package geometry

import (
	"math"

	"github.com/nkryptic/pathtracer/pkg/core"
)

// RotateY wraps a Hittable and rotates it by a fixed angle around the Y
// axis, by rotating the incoming ray into the object's local space rather
// than transforming the object itself. Its bounding box is precomputed at
// construction by rotating all eight corners of the wrapped object's box.
type RotateY struct {
	Object            core.Hittable
	sinTheta, cosTheta float64
	bbox              core.AABB
}

func NewRotateY(object core.Hittable, angleDegrees float64) *RotateY {
	radians := angleDegrees * math.Pi / 180
	sinTheta := math.Sin(radians)
	cosTheta := math.Cos(radians)

	rot := &RotateY{Object: object, sinTheta: sinTheta, cosTheta: cosTheta}

	box := object.BoundingBox()
	bbox := core.EmptyAABB()
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := lerpCorner(i, box.Min.X, box.Max.X)
				y := lerpCorner(j, box.Min.Y, box.Max.Y)
				z := lerpCorner(k, box.Min.Z, box.Max.Z)

				newX := cosTheta*x + sinTheta*z
				newZ := -sinTheta*x + cosTheta*z
				corner := core.NewVec3(newX, y, newZ)

				bbox = bbox.Union(core.AABB{Min: corner, Max: corner})
			}
		}
	}
	rot.bbox = bbox
	return rot
}

func lerpCorner(i int, lo, hi float64) float64 {
	if i == 0 {
		return lo
	}
	return hi
}

func (rot *RotateY) rotate(p core.Vec3) core.Vec3 {
	newX := rot.cosTheta*p.X + rot.sinTheta*p.Z
	newZ := -rot.sinTheta*p.X + rot.cosTheta*p.Z
	return core.NewVec3(newX, p.Y, newZ)
}

func (rot *RotateY) rotateInverse(p core.Vec3) core.Vec3 {
	newX := rot.cosTheta*p.X - rot.sinTheta*p.Z
	newZ := rot.sinTheta*p.X + rot.cosTheta*p.Z
	return core.NewVec3(newX, p.Y, newZ)
}

func (rot *RotateY) Hit(r core.Ray, tMin, tMax float64, rng *core.RNG) (core.HitRecord, bool) {
	originRotated := rot.rotateInverse(r.Origin)
	directionRotated := rot.rotateInverse(r.Direction)
	rotatedRay := core.NewRay(originRotated, directionRotated)

	rec, ok := rot.Object.Hit(rotatedRay, tMin, tMax, rng)
	if !ok {
		return core.HitRecord{}, false
	}

	rec.Point = rot.rotate(rec.Point)
	rec.Normal = rot.rotate(rec.Normal)
	return rec, true
}

func (rot *RotateY) BoundingBox() core.AABB {
	return rot.bbox
}
