package geometry

import "github.com/nkryptic/pathtracer/pkg/core"

// boundingBoxPad is added on each side of an axis-aligned rectangle's flat
// axis (a slab 2*boundingBoxPad thick), so its bounding box has non-zero
// volume and the BVH's slab test does not reject it as empty.
const boundingBoxPad = 0.001

// XYRect is a rectangle in the plane z=K.
type XYRect struct {
	X0, X1, Y0, Y1, K float64
	Material          core.Material
}

func NewXYRect(x0, x1, y0, y1, k float64, material core.Material) *XYRect {
	return &XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: material}
}

func (rect *XYRect) Hit(r core.Ray, tMin, tMax float64, rng *core.RNG) (core.HitRecord, bool) {
	t := (rect.K - r.Origin.Z) / r.Direction.Z
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}
	x := r.Origin.X + t*r.Direction.X
	y := r.Origin.Y + t*r.Direction.Y
	if x < rect.X0 || x > rect.X1 || y < rect.Y0 || y > rect.Y1 {
		return core.HitRecord{}, false
	}

	rec := core.HitRecord{
		T:        t,
		U:        (x - rect.X0) / (rect.X1 - rect.X0),
		V:        (y - rect.Y0) / (rect.Y1 - rect.Y0),
		Point:    r.At(t),
		Material: rect.Material,
	}
	rec.SetFaceNormal(r, core.NewVec3(0, 0, 1))
	return rec, true
}

func (rect *XYRect) BoundingBox() core.AABB {
	return core.NewAABB(
		core.NewVec3(rect.X0, rect.Y0, rect.K-boundingBoxPad),
		core.NewVec3(rect.X1, rect.Y1, rect.K+boundingBoxPad),
	)
}

// XZRect is a rectangle in the plane y=K.
type XZRect struct {
	X0, X1, Z0, Z1, K float64
	Material          core.Material
}

func NewXZRect(x0, x1, z0, z1, k float64, material core.Material) *XZRect {
	return &XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: material}
}

func (rect *XZRect) Hit(r core.Ray, tMin, tMax float64, rng *core.RNG) (core.HitRecord, bool) {
	t := (rect.K - r.Origin.Y) / r.Direction.Y
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}
	x := r.Origin.X + t*r.Direction.X
	z := r.Origin.Z + t*r.Direction.Z
	if x < rect.X0 || x > rect.X1 || z < rect.Z0 || z > rect.Z1 {
		return core.HitRecord{}, false
	}

	rec := core.HitRecord{
		T:        t,
		U:        (x - rect.X0) / (rect.X1 - rect.X0),
		V:        (z - rect.Z0) / (rect.Z1 - rect.Z0),
		Point:    r.At(t),
		Material: rect.Material,
	}
	rec.SetFaceNormal(r, core.NewVec3(0, 1, 0))
	return rec, true
}

func (rect *XZRect) BoundingBox() core.AABB {
	return core.NewAABB(
		core.NewVec3(rect.X0, rect.K-boundingBoxPad, rect.Z0),
		core.NewVec3(rect.X1, rect.K+boundingBoxPad, rect.Z1),
	)
}

// YZRect is a rectangle in the plane x=K.
type YZRect struct {
	Y0, Y1, Z0, Z1, K float64
	Material          core.Material
}

func NewYZRect(y0, y1, z0, z1, k float64, material core.Material) *YZRect {
	return &YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: material}
}

func (rect *YZRect) Hit(r core.Ray, tMin, tMax float64, rng *core.RNG) (core.HitRecord, bool) {
	t := (rect.K - r.Origin.X) / r.Direction.X
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}
	y := r.Origin.Y + t*r.Direction.Y
	z := r.Origin.Z + t*r.Direction.Z
	if y < rect.Y0 || y > rect.Y1 || z < rect.Z0 || z > rect.Z1 {
		return core.HitRecord{}, false
	}

	rec := core.HitRecord{
		T:        t,
		U:        (y - rect.Y0) / (rect.Y1 - rect.Y0),
		V:        (z - rect.Z0) / (rect.Z1 - rect.Z0),
		Point:    r.At(t),
		Material: rect.Material,
	}
	rec.SetFaceNormal(r, core.NewVec3(1, 0, 0))
	return rec, true
}

func (rect *YZRect) BoundingBox() core.AABB {
	return core.NewAABB(
		core.NewVec3(rect.K-boundingBoxPad, rect.Y0, rect.Z0),
		core.NewVec3(rect.K+boundingBoxPad, rect.Y1, rect.Z1),
	)
}
