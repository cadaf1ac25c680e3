package getisord_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/esda/getisord"
	"github.com/katalvlaran/esda/weights"
)

// The canonical two-cluster fixture: six points, distance band 15, attribute
// values [2 3 3.2 5 8 7]. Getis & Ord report G ≈ 0.557 and a one-sided
// normal p-value ≈ 0.173 for it.
var (
	sixPoints = [][2]float64{
		{10, 10}, {20, 10}, {40, 10}, {15, 20}, {30, 20}, {30, 30},
	}
	fixtureY = []float64{2, 3, 3.2, 5, 8, 7}
)

// fixtureW builds the distance-band weights object for sixPoints.
func fixtureW(t *testing.T) *weights.W {
	t.Helper()
	w, err := weights.DistanceBand(sixPoints, 15)
	require.NoError(t, err, "fixture distance band must build")

	return w
}

// TestGlobalG_Fixture pins the observed statistic and both analytic moments
// on the canonical fixture.
func TestGlobalG_Fixture(t *testing.T) {
	res, err := getisord.GlobalG(fixtureY, fixtureW(t), getisord.WithPermutations(0))
	require.NoError(t, err)

	assert.InDelta(t, 353.2/634.0, res.G, 1e-9, "G = Σ yᵢ·lagᵢ / ((Σy)²−Σy²)")
	assert.InDelta(t, 0.557, res.G, 1e-3)
	assert.InDelta(t, 14.0/30.0, res.EG, 1e-12, "EG = s0/(n(n-1))")
	assert.InDelta(t, 0.173, res.PNorm, 1e-3)
	assert.Greater(t, res.VG, 0.0, "fixture variance is positive")
	assert.False(t, math.IsNaN(res.ZNorm))
}

// TestGlobalG_ConstantVector: with no variation there is no spatial
// structure to detect, so G equals its expectation exactly.
func TestGlobalG_ConstantVector(t *testing.T) {
	y := []float64{3, 3, 3, 3, 3, 3}
	res, err := getisord.GlobalG(y, fixtureW(t), getisord.WithPermutations(0))
	require.NoError(t, err)

	assert.InDelta(t, res.EG, res.G, 1e-12, "constant vector: G == EG")
}

// TestGlobalG_NoPermutations: permutations=0 leaves every simulation field
// unpopulated while the analytic fields are complete.
func TestGlobalG_NoPermutations(t *testing.T) {
	res, err := getisord.GlobalG(fixtureY, fixtureW(t), getisord.WithPermutations(0))
	require.NoError(t, err)

	assert.Nil(t, res.Sim)
	assert.Zero(t, res.Completed)
	assert.Zero(t, res.PSim)
	assert.Zero(t, res.EGSim)
	assert.NotZero(t, res.EG)
	assert.NotZero(t, res.VG)
}

// TestGlobalG_PermutationInference checks the simulated sample size, the
// pseudo p-value bounds, and that PSim matches the two-tail-min rank rule
// recomputed from the recorded sample.
func TestGlobalG_PermutationInference(t *testing.T) {
	const m = 99
	res, err := getisord.GlobalG(fixtureY, fixtureW(t),
		getisord.WithPermutations(m), getisord.WithSeed(10))
	require.NoError(t, err)

	require.Len(t, res.Sim, m)
	assert.Equal(t, m, res.Completed)

	larger := 0
	for _, s := range res.Sim {
		if s >= res.G {
			larger++
		}
	}
	if m-larger < larger {
		larger = m - larger
	}
	want := (float64(larger) + 1) / (float64(m) + 1)
	assert.InDelta(t, want, res.PSim, 1e-15, "PSim follows the recorded tail count")

	assert.GreaterOrEqual(t, res.PSim, 1.0/(m+1))
	assert.LessOrEqual(t, res.PSim, 1.0)
	assert.Greater(t, res.PZSim, 0.0)
	assert.LessOrEqual(t, res.PZSim, 1.0)
	assert.InDelta(t, res.SeGSim*res.SeGSim, res.VGSim, 1e-15)
}

// TestGlobalG_Reproducible: a fixed seed reproduces the simulated sequence
// and every derived field exactly.
func TestGlobalG_Reproducible(t *testing.T) {
	w := fixtureW(t)
	a, err := getisord.GlobalG(fixtureY, w, getisord.WithPermutations(199), getisord.WithSeed(42))
	require.NoError(t, err)
	b, err := getisord.GlobalG(fixtureY, w, getisord.WithPermutations(199), getisord.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, a.Sim, b.Sim)
	assert.Equal(t, a.PSim, b.PSim)
	assert.Equal(t, a.ZSim, b.ZSim)
}

// TestGlobalG_TransformRestored: the engine forces Binary internally but the
// caller-visible mode must come back untouched.
func TestGlobalG_TransformRestored(t *testing.T) {
	w := fixtureW(t)
	require.NoError(t, w.SetTransform(weights.RowStandardized))

	_, err := getisord.GlobalG(fixtureY, w, getisord.WithPermutations(9), getisord.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, weights.RowStandardized, w.Transform())
}

// TestGlobalG_Validation walks the fail-fast paths.
func TestGlobalG_Validation(t *testing.T) {
	w := fixtureW(t)

	_, err := getisord.GlobalG(fixtureY, nil)
	assert.ErrorIs(t, err, getisord.ErrNilWeights)

	_, err = getisord.GlobalG([]float64{1, 2, 3}, w)
	assert.ErrorIs(t, err, getisord.ErrTooFewObservations)

	_, err = getisord.GlobalG([]float64{1, 2, 3, 4}, w)
	assert.ErrorIs(t, err, getisord.ErrLengthMismatch)

	_, err = getisord.GlobalG(fixtureY, w, getisord.WithPermutations(-1))
	assert.ErrorIs(t, err, getisord.ErrBadPermutations)
}

// TestGlobalG_Cancelled: a pre-cancelled context yields the analytic result
// with zero completed rounds, alongside the context's error.
func TestGlobalG_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := fixtureW(t)
	res, err := getisord.GlobalG(fixtureY, w,
		getisord.WithPermutations(50), getisord.WithContext(ctx))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	require.NotNil(t, res, "partial result must be reported, not dropped")
	assert.Zero(t, res.Completed)
	assert.Nil(t, res.Sim)
	assert.InDelta(t, 14.0/30.0, res.EG, 1e-12, "analytic fields still complete")
	assert.Equal(t, weights.Binary, w.Transform(), "transform restored on the cancel path")
}
