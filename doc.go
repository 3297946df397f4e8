// Package kdgo provides an exact k-nearest-neighbor index for Go, built as
// a classic KD-tree over points in K-dimensional Euclidean space.
//
// The tree trades an O(n log n) build for O(log n)-amortized queries and is
// aimed at callers that repeatedly look up the closest point(s) to a query
// among a static or slowly-mutating point set.
//
// # Quick Start
//
//	points := []*kdgo.Point{
//	    kdgo.MustPoint([]float32{-1, 0}, nil),
//	    kdgo.MustPoint([]float32{0, 0}, nil),
//	    kdgo.MustPoint([]float32{1, 0}, nil),
//	}
//
//	tree, _ := kdgo.Build(points, 2)
//
//	result, _ := tree.Nearest(kdgo.MustPoint([]float32{0.9, 0.1}, nil))
//	fmt.Println(result.Point.Coordinates(), result.Distance)
//
// # Mutation
//
// InsertPoint descends the existing structure without rebalancing, so
// repeated skewed insertion degrades the tree toward linear height. Call
// Rebuild to restore optimal balance:
//
//	_ = tree.InsertPoint(p)
//	if !tree.Balanced() {
//	    tree = tree.Rebuild()
//	}
//
// Remove drops the current node's value and rebuilds the subtree it roots.
//
// # Search
//
// NearestK returns the k closest points by squared Euclidean distance,
// sorted ascending. Distances are squared throughout to avoid square
// roots; take math.Sqrt on the reported values if true distance is needed.
//
//	results, _ := tree.NearestK(query, 10)
//
// # Concurrency
//
// The tree provides no internal synchronization. Callers that need
// concurrent access must serialize externally, or snapshot via Rebuild.
package kdgo
