package kdgo

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/hupe1980/kdgo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	ID int
}

func init() {
	gob.Register(testPayload{})
}

// preOrderShape captures axis and coordinates node by node, so two trees
// compare equal only when their exact structure matches.
func preOrderShape(tree *KDTree) [][]any {
	var shape [][]any
	tree.PreOrder(func(n *KDTree) {
		shape = append(shape, []any{n.Axis(), n.Value().Coordinates()})
	})
	return shape
}

func TestSnapshot(t *testing.T) {
	t.Run("RoundTripBalanced", func(t *testing.T) {
		rng := testutil.NewRNG(9)
		vectors := rng.UniformRangeVectors(64, 3)

		points := make([]*Point, len(vectors))
		for i, vec := range vectors {
			points[i] = MustPoint(vec, testPayload{ID: i})
		}

		tree, err := Build(points, 3)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, tree.SaveToWriter(&buf))

		loaded, err := LoadFromReader(&buf)
		require.NoError(t, err)

		assert.Equal(t, tree.Dimension(), loaded.Dimension())
		assert.Equal(t, tree.Size(), loaded.Size())
		assert.Equal(t, preOrderShape(tree), preOrderShape(loaded))

		// Payloads survive the trip.
		found := false
		loaded.Each(func(p *Point) {
			if p.Payload() == (testPayload{ID: 7}) {
				found = true
			}
		})
		assert.True(t, found)
	})

	t.Run("RoundTripSkewedShape", func(t *testing.T) {
		tree, err := Build(nil, 2)
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			require.NoError(t, tree.InsertPoint(MustPoint([]float32{float32(i), 0}, nil)))
		}
		require.Equal(t, 10, tree.MaxDepth())

		var buf bytes.Buffer
		require.NoError(t, tree.SaveToWriter(&buf))

		loaded, err := LoadFromReader(&buf)
		require.NoError(t, err)

		// An unbalanced tree round-trips unbalanced.
		assert.Equal(t, 10, loaded.MaxDepth())
		assert.False(t, loaded.Balanced())
		assert.Equal(t, preOrderShape(tree), preOrderShape(loaded))
	})

	t.Run("RoundTripEmpty", func(t *testing.T) {
		tree, err := Build(nil, 5)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, tree.SaveToWriter(&buf))

		loaded, err := LoadFromReader(&buf)
		require.NoError(t, err)

		assert.True(t, loaded.Empty())
		assert.Equal(t, 5, loaded.Dimension())
	})

	t.Run("SearchAfterLoad", func(t *testing.T) {
		rng := testutil.NewRNG(10)
		vectors := rng.UniformRangeVectors(50, 2)

		tree, err := Build(pointsFromVectors(t, vectors), 2)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, tree.SaveToWriter(&buf))

		loaded, err := LoadFromReader(&buf)
		require.NoError(t, err)

		query := []float32{0.1, 0.1}
		exact := testutil.ExactTopK(query, vectors, 5)

		results, err := loaded.NearestK(MustPoint(query, nil), 5)
		require.NoError(t, err)
		require.Len(t, results, 5)
		for i := range results {
			assert.InDelta(t, exact[i].Distance, results[i].Distance, 1e-5)
		}
	})

	t.Run("GobRoundTrip", func(t *testing.T) {
		tree, err := Build([]*Point{MustPoint([]float32{1, 2}, nil)}, 2)
		require.NoError(t, err)

		data, err := tree.GobEncode()
		require.NoError(t, err)

		decoded := &KDTree{}
		require.NoError(t, decoded.GobDecode(data))

		assert.Equal(t, 2, decoded.Dimension())
		assert.Equal(t, []float32{1, 2}, decoded.Value().Coordinates())
		assert.True(t, decoded.Leaf())
	})
}
