package kdgo

import "slices"

// SearchResult pairs a point found during search with its squared distance
// to the query point. The Point is a reference into the tree, not a copy.
type SearchResult struct {
	// Point is the matched point.
	Point *Point

	// Distance is the squared Euclidean distance to the query point.
	Distance float32
}

// BestK is a fixed-capacity collector that retains the k closest results
// seen so far, evicting the worst once over capacity.
//
// Storage is a value-based binary max-heap keyed on distance, so the worst
// kept result is always at the top and eviction is O(log k). A fresh BestK
// is created per nearest-k query and discarded afterwards.
type BestK struct {
	capacity int
	items    []SearchResult
}

// NewBestK creates a collector for the k closest results.
// Returns ErrInvalidK when k is not positive. k may exceed the number of
// results ever added; the collector simply stays below capacity.
func NewBestK(k int) (*BestK, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	return &BestK{
		capacity: k,
		items:    make([]SearchResult, 0, k),
	}, nil
}

// Add offers a result to the collector and returns the collector for
// chaining. Below capacity the result is always kept. At capacity it is
// kept only if strictly closer than the current worst, which is evicted.
func (b *BestK) Add(result SearchResult) *BestK {
	if len(b.items) < b.capacity {
		b.push(result)
		return b
	}
	if result.Distance < b.items[0].Distance {
		b.push(result)
		b.pop()
	}
	return b
}

// Full reports whether the collector holds k results.
func (b *BestK) Full() bool {
	return len(b.items) == b.capacity
}

// Worst returns the kept result with the largest distance.
// The second return value is false if the collector is empty.
func (b *BestK) Worst() (SearchResult, bool) {
	if len(b.items) == 0 {
		return SearchResult{}, false
	}
	return b.items[0], true
}

// Len returns the number of results currently held.
func (b *BestK) Len() int {
	return len(b.items)
}

// Values returns the held results sorted ascending by distance.
func (b *BestK) Values() []SearchResult {
	values := slices.Clone(b.items)
	slices.SortFunc(values, func(x, y SearchResult) int {
		switch {
		case x.Distance < y.Distance:
			return -1
		case x.Distance > y.Distance:
			return 1
		default:
			return 0
		}
	})
	return values
}

func (b *BestK) push(item SearchResult) {
	b.items = append(b.items, item)
	b.siftUp(len(b.items) - 1)
}

func (b *BestK) pop() {
	n := len(b.items)
	last := b.items[n-1]
	b.items[n-1] = SearchResult{}
	b.items = b.items[:n-1]
	if n-1 > 0 {
		b.items[0] = last
		b.siftDown(0)
	}
}

func (b *BestK) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if b.items[i].Distance <= b.items[p].Distance {
			return
		}
		b.items[i], b.items[p] = b.items[p], b.items[i]
		i = p
	}
}

func (b *BestK) siftDown(i int) {
	n := len(b.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && b.items[r].Distance > b.items[l].Distance {
			best = r
		}
		if b.items[best].Distance <= b.items[i].Distance {
			return
		}
		b.items[i], b.items[best] = b.items[best], b.items[i]
		i = best
	}
}
