// Package testutil provides testing utilities for kdgo.
//
// This package is intended for use in tests and benchmarks only. It
// provides seeded random vector generation and exhaustive-scan ground
// truth for verifying nearest-neighbor results. It deliberately does not
// import kdgo itself, so both in-package and external tests can use it.
package testutil

import (
	"math/rand"
	"sort"
	"sync"
)

// Neighbor is an exhaustive-scan result: a dataset index paired with its
// squared L2 distance to the query.
type Neighbor struct {
	Index    int
	Distance float32
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed used to create the RNG.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a pseudo-random int in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns a pseudo-random float32 in [0.0, 1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// UniformRangeVectors generates random vectors with values in [-1, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformRangeVectors(num int, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	vectors := make([][]float32, num)

	for i := 0; i < num; i++ {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float32()*2 - 1
		}
		vectors[i] = vec
	}

	return vectors
}

// ExactTopK computes the k nearest neighbors of query in dataset by
// exhaustive linear scan over squared L2 distance, sorted ascending.
// This is the ground truth for verifying tree search results.
func ExactTopK(query []float32, dataset [][]float32, k int) []Neighbor {
	neighbors := make([]Neighbor, 0, len(dataset))
	for i, vec := range dataset {
		var dist float32
		for j := range vec {
			d := vec[j] - query[j]
			dist += d * d
		}
		neighbors = append(neighbors, Neighbor{Index: i, Distance: dist})
	}

	sort.Slice(neighbors, func(i, j int) bool {
		return neighbors[i].Distance < neighbors[j].Distance
	})

	if k < len(neighbors) {
		neighbors = neighbors[:k]
	}

	return neighbors
}
