package core

import "math/rand"

// BVH is a binary bounding volume hierarchy over a fixed set of primitives.
// Every leaf holds exactly one primitive; the tree is built once, bottom-up
// is never mutated, and is safe to traverse concurrently from many workers.
type BVH struct {
	root bvhNode
}

// bvhNode is either a leaf (Prim != nil) or an interior node (Left/Right set).
type bvhNode struct {
	Bounds      AABB
	Prim        *Primitive
	Left, Right *bvhNode
}

// taggedPrimitive pairs a primitive with its precomputed bounds and centroid
// so the build doesn't recompute Geometry.Bounds() at every partition step.
type taggedPrimitive struct {
	prim     *Primitive
	bounds   AABB
	centroid Vec3
}

// BuildBVH constructs a BVH over prims, or returns nil if prims is empty — an
// empty scene has no meaningful bounds and is a valid, always-missed root.
// Construction recursively splits the primitive set at the median of the
// longest axis of the centroid bounds, found via a linear-time (quickselect /
// nth-element) partial ordering rather than a full sort, so build time is
// O(n log n) total instead of O(n log^2 n).
func BuildBVH(prims []*Primitive) *BVH {
	if len(prims) == 0 {
		return nil
	}
	tagged := make([]taggedPrimitive, len(prims))
	for i, p := range prims {
		b := p.Bounds()
		tagged[i] = taggedPrimitive{prim: p, bounds: b, centroid: b.Centroid()}
	}
	root := buildBVHNode(tagged)
	return &BVH{root: *root}
}

func buildBVHNode(prims []taggedPrimitive) *bvhNode {
	bounds := prims[0].bounds
	for _, p := range prims[1:] {
		bounds = bounds.Union(p.bounds)
	}

	if len(prims) == 1 {
		return &bvhNode{Bounds: bounds, Prim: prims[0].prim}
	}

	centroidBounds := AABBAtPoint(prims[0].centroid)
	for _, p := range prims[1:] {
		centroidBounds = centroidBounds.ExtendToInclude(p.centroid)
	}
	axis := centroidBounds.LongestAxis()

	mid := len(prims) / 2
	nthElementByCentroid(prims, mid, axis)

	left := buildBVHNode(prims[:mid])
	right := buildBVHNode(prims[mid:])
	return &bvhNode{Bounds: bounds, Left: left, Right: right}
}

// nthElementByCentroid performs a Hoare/Lomuto-style quickselect partition
// of prims around the n'th smallest centroid coordinate along axis, so that
// prims[:n] are all <= prims[n] and prims[n:] are all >= it, in expected
// linear time. This is the BVH build's only ordering step: no full sort.
func nthElementByCentroid(prims []taggedPrimitive, n, axis int) {
	lo, hi := 0, len(prims)-1
	key := func(p taggedPrimitive) float64 {
		switch axis {
		case 0:
			return p.centroid.X
		case 1:
			return p.centroid.Y
		default:
			return p.centroid.Z
		}
	}

	for lo < hi {
		pivotIdx := lo + rand.Intn(hi-lo+1)
		pivot := key(prims[pivotIdx])
		prims[pivotIdx], prims[hi] = prims[hi], prims[pivotIdx]

		store := lo
		for i := lo; i < hi; i++ {
			if key(prims[i]) < pivot {
				prims[i], prims[store] = prims[store], prims[i]
				store++
			}
		}
		prims[store], prims[hi] = prims[hi], prims[store]

		switch {
		case n < store:
			hi = store - 1
		case n > store:
			lo = store + 1
		default:
			return
		}
	}
}

// Hit traverses the BVH for the closest intersection no farther than tMax.
// tMin bounds only the box slab tests; a primitive accepts any hit at or
// beyond Epsilon. A nil BVH (the optional-root, empty-scene case) always
// misses.
func (b *BVH) Hit(ray Ray, tMin, tMax float64) (HitInfo, bool) {
	if b == nil {
		return HitInfo{}, false
	}
	return hitNode(&b.root, ray, tMin, tMax)
}

func hitNode(node *bvhNode, ray Ray, tMin, tMax float64) (HitInfo, bool) {
	if !node.Bounds.Hit(ray, tMin, tMax) {
		return HitInfo{}, false
	}

	if node.Prim != nil {
		return node.Prim.Hit(ray, tMax)
	}

	leftHit, leftOk := hitNode(node.Left, ray, tMin, tMax)
	if leftOk {
		tMax = leftHit.T
	}
	rightHit, rightOk := hitNode(node.Right, ray, tMin, tMax)

	switch {
	case leftOk && rightOk:
		if rightHit.T < leftHit.T {
			return rightHit, true
		}
		return leftHit, true
	case leftOk:
		return leftHit, true
	case rightOk:
		return rightHit, true
	default:
		return HitInfo{}, false
	}
}

// Bounds returns the world-space bounds of the whole hierarchy. Panics on a
// nil (empty-scene) BVH, since there is no meaningful bounds to return.
func (b *BVH) Bounds() AABB {
	return b.root.Bounds
}
