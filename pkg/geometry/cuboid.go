package geometry

import "github.com/nkryptic/pathtracer/pkg/core"

// Cuboid is an axis-aligned box built from six rectangles sharing one
// material. Unlike a baked, pre-rotated box, it stays a plain Hittable so it
// composes with Translate and RotateY.
type Cuboid struct {
	Min, Max core.Point3
	sides    *List
}

// NewCuboid builds a box spanning [boxMin, boxMax].
func NewCuboid(boxMin, boxMax core.Point3, material core.Material) *Cuboid {
	sides := NewList(
		NewXYRect(boxMin.X, boxMax.X, boxMin.Y, boxMax.Y, boxMax.Z, material),
		NewXYRect(boxMin.X, boxMax.X, boxMin.Y, boxMax.Y, boxMin.Z, material),
		NewXZRect(boxMin.X, boxMax.X, boxMin.Z, boxMax.Z, boxMax.Y, material),
		NewXZRect(boxMin.X, boxMax.X, boxMin.Z, boxMax.Z, boxMin.Y, material),
		NewYZRect(boxMin.Y, boxMax.Y, boxMin.Z, boxMax.Z, boxMax.X, material),
		NewYZRect(boxMin.Y, boxMax.Y, boxMin.Z, boxMax.Z, boxMin.X, material),
	)
	return &Cuboid{Min: boxMin, Max: boxMax, sides: sides}
}

func (c *Cuboid) Hit(r core.Ray, tMin, tMax float64, rng *core.RNG) (core.HitRecord, bool) {
	return c.sides.Hit(r, tMin, tMax, rng)
}

func (c *Cuboid) BoundingBox() core.AABB {
	return core.NewAABB(c.Min, c.Max)
}
