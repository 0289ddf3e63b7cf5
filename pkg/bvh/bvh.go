// Package bvh builds a surface-area-heuristic bounding volume hierarchy over
// a set of hittable primitives and flattens it into a linear array for cache
// friendly traversal.
package bvh

import (
	"math"
	"sort"

	"github.com/nkryptic/pathtracer/pkg/core"
)

// linearNode is one entry of the flattened tree. Leaf nodes carry a run of
// primitives in BVH.primitives[start:start+count]; internal nodes carry the
// index of their right child (the left child always follows immediately).
type linearNode struct {
	bounds      core.AABB
	start       int32 // leaf: index into primitives; internal: unused
	count       int32 // leaf: number of primitives; internal: 0
	rightOffset int32 // internal: index of right child in nodes
}

// BVH is a flattened, immutable bounding volume hierarchy.
type BVH struct {
	nodes      []linearNode
	primitives []core.Hittable
}

// leafThreshold mirrors the teacher's BVHNode leaf cutoff: at or below this
// many primitives, SAH splitting costs more than it saves at traversal time.
const leafThreshold = 4

// entry pairs a shape with its precomputed bounding box for the duration of
// a build, so Union/SurfaceArea never recompute BoundingBox() mid-sort.
type entry struct {
	shape  core.Hittable
	bounds core.AABB
}

// New builds a BVH over shapes. Panics if any shape's bounding box is
// invalid (Min or Max has an infinite or NaN component, or Min exceeds Max
// on some axis), mirroring the
// fail-fast behavior of a builder encountering an unbounded primitive.
func New(shapes []core.Hittable) *BVH {
	b := &BVH{primitives: make([]core.Hittable, 0, len(shapes))}
	if len(shapes) == 0 {
		return b
	}

	entries := make([]entry, len(shapes))
	for i, s := range shapes {
		box := s.BoundingBox()
		if !validBound(box.Min) || !validBound(box.Max) || box.Min.X > box.Max.X || box.Min.Y > box.Max.Y || box.Min.Z > box.Max.Z {
			panic("bvh: encountered a hittable with no valid bounding box")
		}
		entries[i] = entry{shape: s, bounds: box}
	}

	b.nodes = make([]linearNode, 0, 2*len(shapes))

	var build func(items []entry) int32
	build = func(items []entry) int32 {
		bounds := items[0].bounds
		for _, it := range items[1:] {
			bounds = bounds.Union(it.bounds)
		}

		if len(items) <= leafThreshold {
			start := int32(len(b.primitives))
			for _, it := range items {
				b.primitives = append(b.primitives, it.shape)
			}
			idx := int32(len(b.nodes))
			b.nodes = append(b.nodes, linearNode{bounds: bounds, start: start, count: int32(len(items))})
			return idx
		}

		axis := bounds.LongestAxis()
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].bounds.Min.Axis(axis) < items[j].bounds.Min.Axis(axis)
		})

		split := bestSAHSplit(items, bounds)

		idx := int32(len(b.nodes))
		b.nodes = append(b.nodes, linearNode{bounds: bounds})

		build(items[:split])
		rightOffset := build(items[split:])

		b.nodes[idx].rightOffset = rightOffset
		return idx
	}

	build(entries)
	return b
}

// validBound reports whether every component of v is finite, rejecting the
// NaN/Inf bounding boxes a malformed Hittable could otherwise smuggle into
// the tree (NaN comparisons are silently false, so the Min-vs-Max check
// alone would let them through).
func validBound(v core.Vec3) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// bestSAHSplit considers every split position along the already-sorted
// items and returns the index minimizing the surface-area-heuristic cost
// (A_L/A)*i + (A_R/A)*(n-i). On equal cost the smallest index wins. Falls
// back to a median split only when the enclosing box has zero surface area.
func bestSAHSplit(items []entry, total core.AABB) int {
	n := len(items)
	totalArea := total.SurfaceArea()
	if totalArea == 0 {
		return n / 2
	}

	leftBounds := make([]core.AABB, n)
	b := items[0].bounds
	leftBounds[0] = b
	for i := 1; i < n; i++ {
		b = b.Union(items[i].bounds)
		leftBounds[i] = b
	}

	rightBounds := make([]core.AABB, n)
	b = items[n-1].bounds
	rightBounds[n-1] = b
	for i := n - 2; i >= 0; i-- {
		b = b.Union(items[i].bounds)
		rightBounds[i] = b
	}

	bestIdx := n / 2
	bestCost := -1.0
	for i := 1; i < n; i++ {
		leftArea := leftBounds[i-1].SurfaceArea()
		rightArea := rightBounds[i].SurfaceArea()
		cost := (leftArea/totalArea)*float64(i) + (rightArea/totalArea)*float64(n-i)
		if bestCost < 0 || cost < bestCost {
			bestCost = cost
			bestIdx = i
		}
	}
	return bestIdx
}

// Hit finds the closest intersection across the whole hierarchy.
func (b *BVH) Hit(r core.Ray, tMin, tMax float64, rng *core.RNG) (core.HitRecord, bool) {
	if len(b.nodes) == 0 {
		return core.HitRecord{}, false
	}
	return b.hitNode(0, r, tMin, tMax, rng)
}

func (b *BVH) hitNode(nodeIdx int32, r core.Ray, tMin, tMax float64, rng *core.RNG) (core.HitRecord, bool) {
	node := &b.nodes[nodeIdx]
	if !node.bounds.Hit(r, tMin, tMax) {
		return core.HitRecord{}, false
	}

	if node.count > 0 {
		var best core.HitRecord
		hitAnything := false
		closestSoFar := tMax
		for i := node.start; i < node.start+node.count; i++ {
			if rec, ok := b.primitives[i].Hit(r, tMin, closestSoFar, rng); ok {
				hitAnything = true
				closestSoFar = rec.T
				best = rec
			}
		}
		return best, hitAnything
	}

	leftIdx := nodeIdx + 1
	hitLeft, okLeft := b.hitNode(leftIdx, r, tMin, tMax, rng)
	closestSoFar := tMax
	if okLeft {
		closestSoFar = hitLeft.T
	}

	hitRight, okRight := b.hitNode(node.rightOffset, r, tMin, closestSoFar, rng)
	if okRight {
		return hitRight, true
	}
	if okLeft {
		return hitLeft, true
	}
	return core.HitRecord{}, false
}

// BoundingBox returns the bounds of the whole hierarchy, making *BVH itself
// a core.Hittable so it can be nested inside transform wrappers.
func (b *BVH) BoundingBox() core.AABB {
	if len(b.nodes) == 0 {
		return core.EmptyAABB()
	}
	return b.nodes[0].bounds
}

// Len returns the number of primitives stored in the hierarchy.
func (b *BVH) Len() int {
	return len(b.primitives)
}
