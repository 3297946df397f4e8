package kdgo

import (
	"github.com/hupe1980/kdgo/metric"
)

// NearestK returns the k points closest to target by squared Euclidean
// distance, sorted ascending. Fewer than k results are returned when the
// tree holds fewer points; an empty tree yields an empty slice.
//
// Returns ErrInvalidK for k < 1 and ErrDimensionMismatch if target's
// coordinate count differs from the tree's dimension.
func (t *KDTree) NearestK(target *Point, k int, opts ...Option) ([]SearchResult, error) {
	o := applyOptions(opts)

	results, err := t.searchK(target, k)
	o.logger.LogSearch(k, len(results), err)

	return results, err
}

func (t *KDTree) searchK(target *Point, k int) ([]SearchResult, error) {
	if target == nil {
		return nil, ErrInvalidPoint
	}

	best, err := NewBestK(k)
	if err != nil {
		return nil, err
	}

	if target.Dimension() != t.dimension {
		return nil, &ErrDimensionMismatch{Expected: t.dimension, Actual: target.Dimension()}
	}

	if t.Empty() {
		return []SearchResult{}, nil
	}

	t.nearestK(target, best)

	return best.Values(), nil
}

// Nearest returns the single closest point to target, or nil if the tree
// is empty.
func (t *KDTree) Nearest(target *Point, opts ...Option) (*SearchResult, error) {
	results, err := t.NearestK(target, 1, opts...)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// nearestK is the recursive descent with bounded backtracking. The
// caller has validated dimensions, so the distance error is ignored.
func (t *KDTree) nearestK(target *Point, best *BestK) {
	distance, _ := metric.SquaredL2(t.value.coords, target.coords)
	result := SearchResult{Point: t.value, Distance: distance}

	if t.Leaf() {
		best.Add(result)
		return
	}

	targetCoord := target.at(t.axis)
	valueCoord := t.value.at(t.axis)

	var near, far *KDTree
	switch {
	case targetCoord < valueCoord:
		near, far = t.left, t.right
	case targetCoord > valueCoord:
		near, far = t.right, t.left
	default:
		// On the hyperplane: prefer whichever child exists.
		if t.left != nil {
			near, far = t.left, t.right
		} else {
			near, far = t.right, t.left
		}
	}

	if near != nil {
		near.nearestK(target, best)
	}

	// Descend the far side only while the collector is short of k, or when
	// the hypersphere of radius worst-kept-distance crosses the splitting
	// hyperplane.
	if far != nil {
		if !best.Full() {
			far.nearestK(target, best)
		} else if worst, ok := best.Worst(); ok {
			d := valueCoord - targetCoord
			if worst.Distance >= d*d {
				far.nearestK(target, best)
			}
		}
	}

	// Adding this node's own result only after the descent keeps the
	// pruning radius honest: an early add could make this node the worst
	// kept and force needless exhaustive backtracking.
	best.Add(result)
}
