// Package getisord implements the Getis–Ord family of spatial-association
// statistics: the global G statistic and the local G / G* statistics, each
// with analytic (normality) and Monte Carlo (permutation) inference.
//
// Overview:
//
//   - GlobalG asks whether high or low values of an attribute cluster
//     across the whole weights graph. The statistic is the ratio of the
//     spatially weighted pairwise product sum to the sum of all
//     distinct-index pairwise products; its analytic moments come from the
//     graph aggregates s0/s1/s2 and the first four vector moments
//     (Getis & Ord 1992).
//   - LocalG asks the same question per location. G sums neighbors only;
//     G* (WithStar) includes the focal location in its own sum. Analytic
//     moments follow Ord & Getis (1995).
//   - Both engines optionally build an empirical null distribution by
//     permutation: GlobalG redraws full permutations of the vector, LocalG
//     runs a conditional permutation per location (the focal value held
//     fixed, the others randomly assigned to its neighbor slots) over a
//     shared random pool for efficiency.
//
// Inference fields:
//
//   - ZNorm/Zs and PNorm: z-score and one-sided p-value under a normality
//     assumption (standard normal survival function from gonum distuv).
//   - PSim: pseudo p-value (min(larger, m−larger)+1)/(m+1) against the
//     simulated sample.
//   - EGSim/SeGSim/VGSim, ZSim, PZSim: a normal approximation fitted to
//     the simulated distribution. In LocalG these summary moments are
//     pooled over all locations' simulated values — the reference
//     implementation's behavior, preserved deliberately.
//
// Transforms:
//
//   - GlobalG always forces Binary (the statistic is defined over binary
//     adjacency); LocalG applies the requested transform. Either way the
//     weights object's caller-visible transform mode is restored on exit,
//     and a concurrent mutation racing the scope surfaces as
//     weights.ErrTransformRaced.
//
// Concurrency & cancellation:
//
//   - Engines are pure computations; the only shared mutation is the
//     scoped transform on the weights object, so concurrent calls must use
//     weights.Clone or serialize.
//   - WithContext installs cooperative cancellation checked between
//     permutation rounds; a cancelled call returns the partial simulated
//     sample with Completed reporting the rounds finished, alongside the
//     context's error.
//
// Degenerate inputs:
//
//   - A zero or negative variance (analytic or simulated) propagates as
//     NaN/±Inf z-scores and p-values, never as an error; check finiteness
//     before interpreting those fields.
//
// Errors (sentinel):
//
//	– ErrNilWeights         if w is nil.
//	– ErrLengthMismatch     if len(y) != w.N().
//	– ErrTooFewObservations if n < 4.
//	– ErrBadPermutations    if a negative round count is configured.
//
// Example:
//
//	w, _ := weights.DistanceBand(points, 15)
//	res, err := getisord.GlobalG(y, w, getisord.WithSeed(10))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("G=%.3f p=%.3f\n", res.G, res.PNorm)
package getisord
