package getisord

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// stdNormal is the standard normal capability used for all tail
// probabilities; the distribution itself lives in gonum, not here.
var stdNormal = distuv.UnitNormal

// oneSidedP returns the one-sided p-value under normality: 1 - Φ(|z|).
// Non-finite z propagates (NaN in, NaN out).
func oneSidedP(z float64) float64 {
	return stdNormal.Survival(math.Abs(z))
}

// pseudoP derives the empirical p-value of observed against a simulated
// null sample: the count of simulated values ≥ observed, clamped to the
// smaller tail, then (larger+1)/(m+1) where m = len(sim).
//
// Bounds: pseudoP ∈ [1/(m+1), 1].
func pseudoP(sim []float64, observed float64) float64 {
	m := len(sim)
	larger := 0
	for _, s := range sim {
		if s >= observed {
			larger++
		}
	}
	if m-larger < larger {
		larger = m - larger
	}

	return (float64(larger) + 1) / (float64(m) + 1)
}

// newRand returns the configured random source, or a time-seeded one when
// the caller did not pin a seed.
func newRand(cfg options) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}
