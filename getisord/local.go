package getisord

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/esda/weights"
)

// LocalG computes the local Getis–Ord statistic of y over w for every
// location: G (neighbors only) by default, G* (focal location included in
// its own neighbor sum) with WithStar.
//
// The requested transform (WithTransform, default RowStandardized) is
// applied for the duration of the call and the caller's mode restored
// before returning. G* computes its neighbor sum under a nested Binary
// scope and rescales by (cardinality+1) when row-standardized weights were
// requested.
//
// Observed statistic:
//
//	G:  Gsᵢ = lagᵢ / (Σy − yᵢ)      with N = n−1, local mean/variance
//	G*: Gsᵢ = (lagᵢ + yᵢ) / Σy      with N = n, global mean/variance
//
// Analytic moments follow Ord & Getis (1995): under Binary weights the
// numerators depend on Wᵢ = cardinalityᵢ (+1 for G*); under RowStandardized
// weights rows sum to 1 and both numerators collapse to 1.
//
// When permutations > 0 the conditional-permutation engine runs: each
// location's value is held fixed while the remaining n−1 values are
// randomly assigned to its neighbor slots (see crand). Per-location pseudo
// p-values use the two-tail-min rank rule; the simulation summary moments
// are pooled over the whole matrix (see LocalGResult).
//
// On context cancellation mid-simulation, the partial result (uniform
// Completed rounds across locations) is returned with the context's error.
//
// Complexity: O(Σ cardinality) observed + O(permutations · (n + Σ cardinality))
// simulated.
func LocalG(y []float64, w *weights.W, opts ...Option) (*LocalGResult, error) {
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

	res := &LocalGResult{
		N:            n,
		Star:         cfg.star,
		Transform:    cfg.transform,
		Permutations: cfg.permutations,
	}
	var simErr error
	err := w.ScopedTransform(cfg.transform, func() error {
		if lerr := localObserved(res, y, w, cfg); lerr != nil {
			return lerr
		}
		if cfg.permutations > 0 {
			simErr = crand(res, y, w, cfg)
		}

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

// localObserved fills the observed statistics and analytic moments.
func localObserved(res *LocalGResult, y []float64, w *weights.W, cfg options) error {
	n := res.N
	sum := floats.Sum(y)
	sum2 := floats.Dot(y, y)
	cards := w.Cardinalities()

	res.Gs = make([]float64, n)
	res.EGs = make([]float64, n)
	res.VGs = make([]float64, n)
	res.Zs = make([]float64, n)
	res.PNorm = make([]float64, n)
	mean := make([]float64, n)
	s2 := make([]float64, n)

	var bigN float64
	if !cfg.star {
		yl, err := weights.Lag(w, y)
		if err != nil {
			return err
		}
		bigN = float64(n - 1)
		for i := 0; i < n; i++ {
			res.Gs[i] = yl[i] / (sum - y[i])
			mean[i] = (sum - y[i]) / bigN
			s2[i] = (sum2-y[i]*y[i])/bigN - mean[i]*mean[i]
		}
	} else {
		// self-inclusion: neighbor sum under Binary, plus the focal value
		var yl []float64
		err := w.ScopedTransform(weights.Binary, func() error {
			var lerr error
			yl, lerr = weights.Lag(w, y)

			return lerr
		})
		if err != nil {
			return err
		}
		bigN = float64(n)
		gmean := stat.Mean(y, nil)
		gvar := stat.PopVariance(y, nil)
		for i := 0; i < n; i++ {
			yl[i] += y[i]
			if cfg.transform == weights.RowStandardized {
				yl[i] /= float64(cards[i]) + 1
			}
			res.Gs[i] = yl[i] / sum
			mean[i] = gmean
			s2[i] = gvar
		}
	}

	star01 := 0.0
	if cfg.star {
		star01 = 1
	}
	for i := 0; i < n; i++ {
		egNum, vgNum := 1.0, 1.0
		if cfg.transform == weights.Binary {
			wi := float64(cards[i]) + star01
			egNum = wi
			vgNum = wi * (bigN - wi) / (bigN - 1)
		}
		res.EGs[i] = egNum / bigN
		res.VGs[i] = vgNum * (1 / (bigN * bigN)) * (s2[i] / (mean[i] * mean[i]))
		res.Zs[i] = (res.Gs[i] - res.EGs[i]) / math.Sqrt(res.VGs[i])
		res.PNorm[i] = oneSidedP(res.Zs[i])
	}

	return nil
}

// crand runs the conditional permutation engine: for each location i, hold
// yᵢ fixed and ask how Gsᵢ would look were the other n−1 values randomly
// assigned to i's cardinalityᵢ neighbor slots.
//
// Two-stage shared-pool sampling, kept exactly in this shape because
// collapsing it into independent per-location draws changes the
// cross-location correlation of the simulated distributions:
//
//  1. One shared position matrix: per round, a random permutation of
//     [0, n−1) truncated to its first k entries, k = maxCardinality+1
//     capped at n−1.
//  2. One shuffled candidate pool per location (the other n−1 indices).
//     Round p's simulated neighbor sum for location i gathers y over the
//     pool entries selected by the first cardinalityᵢ positions of row p.
//
// Draw order is fixed — all position rows first, then pools in location
// order — so a seeded source reproduces identical matrices.
//
// Returns the context error when cancelled; rounds completed before the
// cancellation are kept and reported uniformly across locations.
func crand(res *LocalGResult, y []float64, w *weights.W, cfg options) error {
	n := res.N
	m := cfg.permutations
	rng := newRand(cfg)
	n1 := n - 1
	k := w.MaxCardinality() + 1
	if k > n1 {
		k = n1
	}

	rids := make([][]int, 0, m)
	for p := 0; p < m; p++ {
		if err := cfg.ctx.Err(); err != nil {
			return err // no rounds simulated yet
		}
		rids = append(rids, rng.Perm(n1)[:k])
	}

	pools := make([][]int, n)
	for i := 0; i < n; i++ {
		if err := cfg.ctx.Err(); err != nil {
			return err
		}
		pool := make([]int, 0, n1)
		for j := 0; j < n; j++ {
			if j != i {
				pool = append(pool, j)
			}
		}
		rng.Shuffle(n1, func(a, b int) { pool[a], pool[b] = pool[b], pool[a] })
		pools[i] = pool
	}

	star01 := 0.0
	if cfg.star {
		star01 = 1
	}
	sum := floats.Sum(y)
	cards := w.Cardinalities()
	den := make([]float64, n)
	norm := make([]float64, n)
	for i := 0; i < n; i++ {
		den[i] = 1
		if cfg.transform == weights.RowStandardized {
			den[i] = float64(cards[i]) + star01
		}
		norm[i] = sum - (1-star01)*y[i]
	}

	sim := make([][]float64, n)
	for i := range sim {
		sim[i] = make([]float64, 0, m)
	}
	var ctxErr error
	for p := 0; p < m; p++ {
		if err := cfg.ctx.Err(); err != nil {
			ctxErr = err

			break
		}
		row := rids[p]
		for i := 0; i < n; i++ {
			var tot float64
			pool := pools[i]
			for j := 0; j < cards[i]; j++ {
				tot += y[pool[row[j]]]
			}
			if cfg.star {
				tot += y[i]
			}
			sim[i] = append(sim[i], tot/den[i]/norm[i])
		}
		res.Completed++
	}
	if res.Completed == 0 {
		return ctxErr
	}

	res.Sim = sim
	res.PSim = make([]float64, n)
	pooled := make([]float64, 0, n*res.Completed)
	for i := 0; i < n; i++ {
		res.PSim[i] = pseudoP(sim[i], res.Gs[i])
		pooled = append(pooled, sim[i]...)
	}
	// pooled over the whole matrix, not per location — reference behavior
	res.EGSim = stat.Mean(pooled, nil)
	res.SeGSim = stat.PopStdDev(pooled, nil)
	res.VGSim = res.SeGSim * res.SeGSim
	res.ZSim = make([]float64, n)
	res.PZSim = make([]float64, n)
	for i := 0; i < n; i++ {
		res.ZSim[i] = (res.Gs[i] - res.EGSim) / res.SeGSim
		res.PZSim[i] = oneSidedP(res.ZSim[i])
	}

	return ctxErr
}
