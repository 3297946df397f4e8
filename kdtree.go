package kdgo

import (
	"slices"

	"golang.org/x/sync/errgroup"
)

// KDTree is a binary space-partitioning tree over Points. Every node is
// itself a KDTree rooting the subtree below it; an empty tree is a node
// with no value and no children, not a nil pointer.
//
// Each node exclusively owns its child subtrees. The construction-time
// invariant is that every point in the left subtree satisfies
// point[axis] <= value[axis] and every point in the right subtree
// point[axis] >= value[axis]; points on the splitting hyperplane may land
// on either side.
type KDTree struct {
	dimension int
	axis      int
	value     *Point
	left      *KDTree
	right     *KDTree
}

// Build constructs a height-balanced tree from the given points via
// recursive median split. The slice itself is not mutated. An empty slice
// yields an empty tree, not an error.
//
// Returns ErrInvalidDimension for dimension < 1, ErrInvalidPoint for a nil
// point, and ErrDimensionMismatch if any point's coordinate count differs
// from dimension.
func Build(points []*Point, dimension int, opts ...Option) (*KDTree, error) {
	if dimension < 1 {
		return nil, &ErrInvalidDimension{Dimension: dimension}
	}
	for _, p := range points {
		if p == nil {
			return nil, ErrInvalidPoint
		}
		if p.Dimension() != dimension {
			return nil, &ErrDimensionMismatch{Expected: dimension, Actual: p.Dimension()}
		}
	}

	o := applyOptions(opts)

	t := build(slices.Clone(points), dimension, 0, o.parallelThreshold)
	o.logger.LogBuild(len(points), dimension, t.MaxDepth())

	return t, nil
}

// build recursively median-splits points on the given axis. It sorts the
// slice in place, so callers hand over ownership.
func build(points []*Point, dimension, axis, parallelThreshold int) *KDTree {
	t := &KDTree{dimension: dimension, axis: axis}
	if len(points) == 0 {
		return t
	}

	slices.SortFunc(points, func(a, b *Point) int {
		switch {
		case a.at(axis) < b.at(axis):
			return -1
		case a.at(axis) > b.at(axis):
			return 1
		default:
			return 0
		}
	})

	pivot := len(points) / 2
	t.value = points[pivot]

	childAxis := (axis + 1) % dimension
	left, right := points[:pivot], points[pivot+1:]

	if parallelThreshold > 0 && len(points) >= parallelThreshold {
		var g errgroup.Group
		g.Go(func() error {
			t.left = buildChild(left, dimension, childAxis, parallelThreshold)
			return nil
		})
		g.Go(func() error {
			t.right = buildChild(right, dimension, childAxis, parallelThreshold)
			return nil
		})
		// Both closures return nil; Wait is join-only here.
		g.Wait() //nolint:errcheck
	} else {
		t.left = buildChild(left, dimension, childAxis, parallelThreshold)
		t.right = buildChild(right, dimension, childAxis, parallelThreshold)
	}

	return t
}

// buildChild is build with an absent-child base case: an empty partition
// becomes a nil child, not an empty node.
func buildChild(points []*Point, dimension, axis, parallelThreshold int) *KDTree {
	if len(points) == 0 {
		return nil
	}
	return build(points, dimension, axis, parallelThreshold)
}

// InsertPoint adds a point by descending the existing structure. No
// rebalancing is performed; repeated skewed insertion degrades the tree
// toward linear height (see Rebuild).
//
// A point equal to a node's value on the splitting axis routes right.
func (t *KDTree) InsertPoint(p *Point) error {
	if p == nil {
		return ErrInvalidPoint
	}
	if p.Dimension() != t.dimension {
		return &ErrDimensionMismatch{Expected: t.dimension, Actual: p.Dimension()}
	}

	t.insert(p)

	return nil
}

func (t *KDTree) insert(p *Point) {
	if t.value == nil {
		t.value = p
		return
	}

	// Child axis cycles from the parent, not from absolute depth.
	childAxis := (t.axis + 1) % t.dimension

	if p.at(t.axis) >= t.value.at(t.axis) {
		if t.right == nil {
			t.right = &KDTree{dimension: t.dimension, axis: childAxis, value: p}
			return
		}
		t.right.insert(p)
		return
	}

	if t.left == nil {
		t.left = &KDTree{dimension: t.dimension, axis: childAxis, value: p}
		return
	}
	t.left.insert(p)
}

// Remove drops this node's current value and rebuilds the subtree it
// roots from the remaining points, in place. Exactly one occurrence of the
// value is removed even if duplicates exist elsewhere in the subtree.
// Removing from an empty tree is a no-op. Cost is O(m log m) for a subtree
// of m points.
func (t *KDTree) Remove() {
	if t.Empty() {
		return
	}

	removed := false
	points := make([]*Point, 0, t.Size()-1)
	t.Each(func(p *Point) {
		if !removed && p == t.value {
			removed = true
			return
		}
		points = append(points, p)
	})

	rebuilt := build(points, t.dimension, t.axis, 0)
	t.value, t.left, t.right = rebuilt.value, rebuilt.left, rebuilt.right
}

// Rebuild returns a fresh, fully height-balanced tree holding the same
// points (duplicates included). The receiver is left untouched; the caller
// decides whether to discard it.
func (t *KDTree) Rebuild(opts ...Option) *KDTree {
	o := applyOptions(opts)

	points := make([]*Point, 0, t.Size())
	t.Each(func(p *Point) {
		points = append(points, p)
	})

	rebuilt := build(points, t.dimension, 0, o.parallelThreshold)
	o.logger.LogRebuild(len(points), rebuilt.MaxDepth())

	return rebuilt
}

// MaxDepth returns the height of the tree: 0 when empty, 1 for a single
// leaf. Computed by traversal, O(n).
func (t *KDTree) MaxDepth() int {
	if t == nil || t.value == nil {
		return 0
	}
	return 1 + max(t.left.MaxDepth(), t.right.MaxDepth())
}

// Balanced reports whether the depths of the two child subtrees differ by
// at most one. This inspects the root split only; it does not recurse into
// the children's own balance.
func (t *KDTree) Balanced() bool {
	if t == nil || t.value == nil || t.Leaf() {
		return true
	}
	diff := t.left.MaxDepth() - t.right.MaxDepth()
	return diff >= -1 && diff <= 1
}

// Leaf reports whether both children are absent.
func (t *KDTree) Leaf() bool {
	return t != nil && t.left == nil && t.right == nil
}

// Empty reports whether the tree holds no points.
func (t *KDTree) Empty() bool {
	return t == nil || t.value == nil
}

// Size returns the number of points in the tree, O(n).
func (t *KDTree) Size() int {
	n := 0
	t.Each(func(*Point) { n++ })
	return n
}

// Left returns the left child subtree, or nil if absent.
func (t *KDTree) Left() *KDTree {
	return t.left
}

// Right returns the right child subtree, or nil if absent.
func (t *KDTree) Right() *KDTree {
	return t.right
}

// Value returns the point held at this node, or nil for an empty tree.
func (t *KDTree) Value() *Point {
	return t.value
}

// Dimension returns the dimensionality K shared by all points in the tree.
func (t *KDTree) Dimension() int {
	return t.dimension
}

// Axis returns the coordinate index this node splits on.
func (t *KDTree) Axis() int {
	return t.axis
}
