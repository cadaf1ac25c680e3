package weights_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/esda/weights"
)

// TestDistanceBand_FixtureNeighbors pins the fixture's neighbor sets,
// including the inclusive boundary: points 3 and 4 sit exactly 15 apart.
func TestDistanceBand_FixtureNeighbors(t *testing.T) {
	w := fixtureW(t)

	want := [][]int{{1, 3}, {0, 3, 4}, {4}, {0, 1, 4}, {1, 2, 3, 5}, {4}}
	for i, row := range want {
		got, err := w.Neighbors(i)
		require.NoError(t, err)
		assert.Equal(t, row, got, "neighbors of %d", i)
	}
}

// TestDistanceBand_Validation covers the rejection paths.
func TestDistanceBand_Validation(t *testing.T) {
	_, err := weights.DistanceBand(nil, 15)
	assert.ErrorIs(t, err, weights.ErrNoLocations)

	_, err = weights.DistanceBand(sixPoints, 0)
	assert.ErrorIs(t, err, weights.ErrBadThreshold)

	_, err = weights.DistanceBand(sixPoints, -3)
	assert.ErrorIs(t, err, weights.ErrBadThreshold)
}

// TestLat2W_Rook checks 3×3 rook contiguity: corners 2, edges 3, center 4,
// and the "r,c" ID scheme.
func TestLat2W_Rook(t *testing.T) {
	w, err := weights.Lat2W(3, 3, true)
	require.NoError(t, err)

	assert.Equal(t, 9, w.N())
	assert.Equal(t, []int{2, 3, 2, 3, 4, 3, 2, 3, 2}, w.Cardinalities())
	assert.Equal(t, "0,0", w.IDOrder()[0])
	assert.Equal(t, "2,2", w.IDOrder()[8])
	assert.InDelta(t, 24.0, w.S0(), 1e-12, "12 undirected rook edges")
}

// TestLat2W_Queen checks 3×3 queen contiguity: corners 3, edges 5, center 8.
func TestLat2W_Queen(t *testing.T) {
	w, err := weights.Lat2W(3, 3, false)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 5, 3, 5, 8, 5, 3, 5, 3}, w.Cardinalities())
	assert.InDelta(t, 40.0, w.S0(), 1e-12, "20 undirected queen edges")
}

// TestLat2W_Validation covers the dimension guard.
func TestLat2W_Validation(t *testing.T) {
	_, err := weights.Lat2W(0, 3, true)
	assert.ErrorIs(t, err, weights.ErrBadDimensions)

	_, err = weights.Lat2W(3, -1, false)
	assert.ErrorIs(t, err, weights.ErrBadDimensions)
}

// TestKNN_Basic checks cardinality and the documented asymmetry: point 4 is
// point 2's nearest neighbor, but point 4's nearest is point 5.
func TestKNN_Basic(t *testing.T) {
	w, err := weights.KNN(sixPoints, 1)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 1, 1, 1, 1, 1}, w.Cardinalities())

	nbs2, err := w.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, nbs2)

	nbs4, err := w.Neighbors(4)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, nbs4, "knn relations are asymmetric")
}

// TestKNN_Validation covers the k range guard.
func TestKNN_Validation(t *testing.T) {
	_, err := weights.KNN(sixPoints, 0)
	assert.ErrorIs(t, err, weights.ErrBadK)

	_, err = weights.KNN(sixPoints, 6)
	assert.ErrorIs(t, err, weights.ErrBadK)

	_, err = weights.KNN([][2]float64{{0, 0}}, 1)
	assert.ErrorIs(t, err, weights.ErrNoLocations)
}
