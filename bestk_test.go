package kdgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Some distances in insertion order.
var distances = []float32{0.4, 9, 0.001, 0.0534, 0.234, 2.03, 2.042, 2.532, 1.0009, 0.329, 0.193, 0.999, 0.020391, 2.0991, 1.203, 10.03, 1.039, 1.0008, 5.029, 0.789}

func TestBestK(t *testing.T) {
	t.Run("InvalidK", func(t *testing.T) {
		_, err := NewBestK(0)
		assert.ErrorIs(t, err, ErrInvalidK)

		_, err = NewBestK(-1)
		assert.ErrorIs(t, err, ErrInvalidK)
	})

	t.Run("BelowCapacity", func(t *testing.T) {
		b, err := NewBestK(5)
		require.NoError(t, err)

		b.Add(SearchResult{Distance: 2}).Add(SearchResult{Distance: 1})

		assert.False(t, b.Full())
		assert.Equal(t, 2, b.Len())

		worst, ok := b.Worst()
		require.True(t, ok)
		assert.Equal(t, float32(2), worst.Distance)
	})

	t.Run("EvictsWorst", func(t *testing.T) {
		b, err := NewBestK(10)
		require.NoError(t, err)

		for _, d := range distances {
			b.Add(SearchResult{Distance: d})
		}

		assert.True(t, b.Full())
		assert.Equal(t, 10, b.Len())

		values := b.Values()
		require.Len(t, values, 10)

		// The ten smallest of the input, ascending.
		expected := []float32{0.001, 0.020391, 0.0534, 0.193, 0.234, 0.329, 0.4, 0.789, 0.999, 1.0008}
		for i, want := range expected {
			assert.Equal(t, want, values[i].Distance)
		}

		worst, ok := b.Worst()
		require.True(t, ok)
		assert.Equal(t, float32(1.0008), worst.Distance)
	})

	t.Run("EqualToWorstWhenFull", func(t *testing.T) {
		b, _ := NewBestK(2)
		b.Add(SearchResult{Distance: 1}).Add(SearchResult{Distance: 3}).Add(SearchResult{Distance: 3})

		values := b.Values()
		require.Len(t, values, 2)
		assert.Equal(t, float32(1), values[0].Distance)
		assert.Equal(t, float32(3), values[1].Distance)
	})

	t.Run("OversizedK", func(t *testing.T) {
		b, _ := NewBestK(100)
		b.Add(SearchResult{Distance: 1}).Add(SearchResult{Distance: 2})

		assert.False(t, b.Full())
		assert.Equal(t, 2, b.Len())
		assert.Len(t, b.Values(), 2)
	})

	t.Run("Empty", func(t *testing.T) {
		b, _ := NewBestK(3)

		_, ok := b.Worst()
		assert.False(t, ok)
		assert.Empty(t, b.Values())
	})
}
