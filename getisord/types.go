// Package getisord defines result types, configuration options, and
// sentinel errors for the Getis–Ord G statistic engines.
//
// Both engines share one option surface:
//
//	– WithPermutations: Monte Carlo rounds (default 999; 0 disables).
//	– WithTransform:    weights transform for LocalG (default RowStandardized).
//	– WithStar:         LocalG computes G* (focal location included).
//	– WithRand/WithSeed: random source for the permutation engine.
//	– WithContext:      cooperative cancellation between permutation rounds.
//
// Errors (sentinel):
//
//	– ErrNilWeights          if the weights object is nil.
//	– ErrLengthMismatch      if len(y) differs from the location count.
//	– ErrTooFewObservations  if n < 4 (the fourth-moment formulas need it).
//	– ErrBadPermutations     if a negative permutation count is configured.
package getisord

import (
	"context"
	"errors"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/esda/weights"
)

// Sentinel errors returned by the statistic engines.
var (
	// ErrNilWeights indicates that a nil *weights.W was supplied.
	ErrNilWeights = errors.New("getisord: weights object is nil")

	// ErrLengthMismatch indicates len(y) != w.N().
	ErrLengthMismatch = errors.New("getisord: vector length does not match location count")

	// ErrTooFewObservations indicates n < 4; the analytic moments divide by
	// n·(n-1)·(n-2)·(n-3).
	ErrTooFewObservations = errors.New("getisord: at least 4 observations required")

	// ErrBadPermutations indicates a negative permutation count.
	ErrBadPermutations = errors.New("getisord: permutations must be non-negative")
)

// DefaultPermutations is the Monte Carlo round count used when
// WithPermutations is not supplied.
const DefaultPermutations = 999

// minObservations is the smallest n the moment formulas are defined for.
const minObservations = 4

// Option configures GlobalG and LocalG.
type Option func(*options)

// options collects engine configuration.
type options struct {
	permutations int
	transform    weights.Transform
	star         bool
	rng          *rand.Rand
	ctx          context.Context
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{
		permutations: DefaultPermutations,
		transform:    weights.RowStandardized,
		ctx:          context.Background(),
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) options {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.ctx == nil {
		cfg.ctx = context.Background()
	}

	return cfg
}

// WithPermutations sets the Monte Carlo round count. 0 disables permutation
// inference; a negative value surfaces as ErrBadPermutations at call time.
func WithPermutations(m int) Option {
	return func(o *options) { o.permutations = m }
}

// WithTransform sets the weights transform LocalG applies for the duration
// of the call (default RowStandardized). GlobalG ignores it: the global
// statistic is defined over binary adjacency only.
func WithTransform(t weights.Transform) Option {
	return func(o *options) { o.transform = t }
}

// WithStar makes LocalG compute G*, the variant whose neighbor sum includes
// the focal location itself. GlobalG ignores it.
func WithStar() Option {
	return func(o *options) { o.star = true }
}

// WithRand supplies the random source for the permutation engine. Fixed
// sources give reproducible simulated sequences (single-threaded draw order).
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithSeed is shorthand for WithRand over a seeded source.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithContext installs a context checked between permutation rounds. On
// cancellation the engine stops simulating, reports the rounds completed so
// far, and returns the context's error alongside the partial result.
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}

// GResult holds the outcome of a GlobalG call.
//
// Analytic fields are always populated; simulation fields only when
// Completed > 0. DegenerateVariance (VG ≤ 0 or a zero denominator)
// propagates as NaN/±Inf in ZNorm/PNorm rather than an error — check
// finiteness before interpreting them.
type GResult struct {
	// N is the number of observations.
	N int

	// G is the observed global statistic.
	G float64

	// EG is the analytic expectation of G under normality.
	EG float64

	// EG2 is the analytic second moment of G under normality.
	EG2 float64

	// VG is the analytic variance: EG2 - EG².
	VG float64

	// ZNorm is (G-EG)/√VG.
	ZNorm float64

	// PNorm is the one-sided p-value under normality: 1 - Φ(|ZNorm|).
	PNorm float64

	// Permutations is the requested Monte Carlo round count.
	Permutations int

	// Completed counts the rounds actually simulated; it is below
	// Permutations only when the context cancelled the loop.
	Completed int

	// Sim holds the simulated G values, one per completed round.
	Sim []float64

	// PSim is the pseudo p-value: (min(larger, Completed-larger)+1)/(Completed+1).
	PSim float64

	// EGSim and SeGSim are the mean and (population) standard deviation of Sim.
	EGSim, SeGSim float64

	// VGSim is SeGSim².
	VGSim float64

	// ZSim is (G-EGSim)/SeGSim.
	ZSim float64

	// PZSim is the one-sided p-value of ZSim under a normal approximation
	// fitted to the simulated distribution.
	PZSim float64
}

// LocalGResult holds the outcome of a LocalG call. Slice fields carry one
// entry per location, in the weights object's location order.
//
// Simulation summary moments (EGSim, SeGSim, VGSim) are pooled over the
// whole Completed×N simulation matrix, not per location — the behavior of
// the reference implementation, kept deliberately. ZSim and PZSim compare
// each location's observed Gs against those pooled moments.
type LocalGResult struct {
	// N is the number of observations.
	N int

	// Star reports whether the G* variant was computed.
	Star bool

	// Transform is the weights transform the call applied.
	Transform weights.Transform

	// Gs holds the observed local statistics.
	Gs []float64

	// EGs and VGs hold the analytic expectation and variance per location.
	EGs, VGs []float64

	// Zs is (Gs-EGs)/√VGs per location.
	Zs []float64

	// PNorm is the one-sided p-value under normality per location.
	PNorm []float64

	// Permutations is the requested conditional-permutation round count.
	Permutations int

	// Completed counts the rounds actually simulated (uniform across
	// locations); below Permutations only when the context cancelled.
	Completed int

	// Sim holds the simulated Gs values: Sim[i][p] is location i's value in
	// round p.
	Sim [][]float64

	// PSim is the per-location pseudo p-value over Sim[i].
	PSim []float64

	// EGSim and SeGSim are the pooled mean and (population) standard
	// deviation of all simulated values; VGSim is SeGSim².
	EGSim, SeGSim, VGSim float64

	// ZSim is (Gs-EGSim)/SeGSim per location.
	ZSim []float64

	// PZSim is the one-sided normal-approximation p-value of ZSim per location.
	PZSim []float64
}
