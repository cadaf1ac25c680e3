package weights_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/esda/weights"
)

// fixtureY is the attribute vector paired with sixPoints.
var fixtureY = []float64{2, 3, 3.2, 5, 8, 7}

// TestLag_Binary checks the neighbor sums of the fixture under Binary.
func TestLag_Binary(t *testing.T) {
	w := fixtureW(t)

	lag, err := weights.Lag(w, fixtureY)
	require.NoError(t, err)

	want := []float64{8, 15, 8, 13, 18.2, 8}
	require.Len(t, lag, len(want))
	for i, v := range want {
		assert.InDelta(t, v, lag[i], 1e-12, "binary lag at %d", i)
	}
}

// TestLag_RowStandardized checks the neighbor means of the fixture.
func TestLag_RowStandardized(t *testing.T) {
	w := fixtureW(t)
	require.NoError(t, w.SetTransform(weights.RowStandardized))

	lag, err := weights.Lag(w, fixtureY)
	require.NoError(t, err)

	want := []float64{4, 5, 8, 13.0 / 3, 4.55, 8}
	for i, v := range want {
		assert.InDelta(t, v, lag[i], 1e-12, "row-standardized lag at %d", i)
	}
}

// TestLag_Validation covers the rejection paths.
func TestLag_Validation(t *testing.T) {
	_, err := weights.Lag(nil, fixtureY)
	assert.ErrorIs(t, err, weights.ErrNilWeights)

	w := fixtureW(t)
	_, err = weights.Lag(w, []float64{1, 2, 3})
	assert.ErrorIs(t, err, weights.ErrLengthMismatch)
}
