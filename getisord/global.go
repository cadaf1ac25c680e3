package getisord

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/esda/weights"
)

// GlobalG computes the global Getis–Ord G statistic of y over w, with
// analytic (normality) inference and, when permutations > 0, Monte Carlo
// inference over full random permutations of y.
//
// The global statistic is defined over binary adjacency only, so the call
// forces w into the Binary transform for its duration and restores the
// caller's mode before returning (verified; see weights.ScopedTransform).
//
//	G = Σᵢ Σⱼ wᵢⱼ·yᵢ·yⱼ / ((Σy)² − Σy²)
//
// The numerator is the y-weighted spatial lag sum; the denominator is the
// sum of all distinct-index pairwise products, computed from vector sums.
//
// A degenerate analytic variance (VG ≤ 0) or zero denominator yields
// NaN/±Inf in ZNorm and PNorm, not an error.
//
// On context cancellation mid-simulation, the partial result (with
// Completed < Permutations) is returned together with the context's error.
//
// Complexity: O(Σ cardinality) observed + O(permutations · (n + Σ cardinality))
// simulated.
func GlobalG(y []float64, w *weights.W, opts ...Option) (*GResult, error) {
	cfg := gatherOptions(opts)
	if w == nil {
		return nil, ErrNilWeights
	}
	n := len(y)
	if n < minObservations {
		return nil, fmt.Errorf("n=%d: %w", n, ErrTooFewObservations)
	}
	if n != w.N() {
		return nil, fmt.Errorf("len(y)=%d, n=%d: %w", n, w.N(), ErrLengthMismatch)
	}
	if cfg.permutations < 0 {
		return nil, fmt.Errorf("permutations=%d: %w", cfg.permutations, ErrBadPermutations)
	}

	res := &GResult{N: n, Permutations: cfg.permutations}
	var simErr error
	err := w.ScopedTransform(weights.Binary, func() error {
		sum := floats.Sum(y)
		sum2 := floats.Dot(y, y)
		// distinct-index pairwise product sum; permutation-invariant, so it
		// is computed once and reused by every simulation round
		den := sum*sum - sum2

		g, lerr := observedG(w, y, den)
		if lerr != nil {
			return lerr
		}
		res.G = g

		globalMoments(res, y, w, sum, sum2, den)
		res.ZNorm = (res.G - res.EG) / math.Sqrt(res.VG)
		res.PNorm = oneSidedP(res.ZNorm)

		if cfg.permutations == 0 {
			return nil
		}

		rng := newRand(cfg)
		sim := make([]float64, 0, cfg.permutations)
		perm := make([]float64, n)
		for p := 0; p < cfg.permutations; p++ {
			if cerr := cfg.ctx.Err(); cerr != nil {
				simErr = cerr

				break
			}
			for i, idx := range rng.Perm(n) {
				perm[i] = y[idx]
			}
			gp, perr := observedG(w, perm, den)
			if perr != nil {
				return perr
			}
			sim = append(sim, gp)
		}
		finishGlobalSim(res, sim)

		return nil
	})
	if err != nil {
		return nil, err
	}
	if simErr != nil {
		return res, fmt.Errorf("getisord: permutation loop cancelled after %d of %d rounds: %w",
			res.Completed, res.Permutations, simErr)
	}

	return res, nil
}

// observedG evaluates the global statistic for one value assignment:
// the spatial lag dotted with the values, over the fixed denominator.
func observedG(w *weights.W, y []float64, den float64) (float64, error) {
	yl, err := weights.Lag(w, y)
	if err != nil {
		return 0, err
	}

	return floats.Dot(y, yl) / den, nil
}

// globalMoments fills EG, EG2 and VG from the graph aggregates (s0, s1, s2
// under the Binary transform) and the vector moments, following
// Getis & Ord (1992). Requires n ≥ 4.
func globalMoments(res *GResult, y []float64, w *weights.W, sum, sum2, den float64) {
	n := float64(res.N)
	s0, s1, s2 := w.S0(), w.S1(), w.S2()
	s02 := s0 * s0

	res.EG = s0 / (n * (n - 1))

	var sum3, sum4 float64
	for _, v := range y {
		v2 := v * v
		sum3 += v2 * v
		sum4 += v2 * v2
	}

	b0 := (n*n-3*n+3)*s1 - n*s2 + 3*s02
	b1 := -((n*n-n)*s1 - 2*n*s2 + 6*s02)
	b2 := -(2*n*s1 - (n+3)*s2 + 6*s02)
	b3 := 4*(n-1)*s1 - 2*(n+1)*s2 + 8*s02
	b4 := s1 - s2 + s02

	num := b0*sum2*sum2 + b1*sum4 + b2*sum*sum*sum2 + b3*sum*sum3 + b4*sum*sum*sum*sum
	res.EG2 = num / (den * den * n * (n - 1) * (n - 2) * (n - 3))
	res.VG = res.EG2 - res.EG*res.EG
}

// finishGlobalSim derives the simulation-based inference fields from the
// collected rounds. Empty sim (cancelled before the first round) leaves the
// simulation fields zero-valued.
func finishGlobalSim(res *GResult, sim []float64) {
	if len(sim) == 0 {
		return
	}
	res.Completed = len(sim)
	res.Sim = sim
	res.PSim = pseudoP(sim, res.G)
	res.EGSim = stat.Mean(sim, nil)
	res.SeGSim = stat.PopStdDev(sim, nil)
	res.VGSim = res.SeGSim * res.SeGSim
	res.ZSim = (res.G - res.EGSim) / res.SeGSim
	res.PZSim = oneSidedP(res.ZSim)
}
