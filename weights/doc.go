// Package weights provides spatial weights objects — the graph structure
// that encodes which locations are neighbors of which, and with what weight.
//
// Overview:
//
//   - W stores n locations with per-location neighbor index lists and base
//     weights, plus a transform mode that rescales weights on read:
//     Binary (every edge reads as 1) or RowStandardized (rows sum to 1).
//   - Lag computes the spatial lag (weighted neighbor sum) of a value
//     vector under the current transform.
//   - S0/S1/S2 expose the aggregate weight sums the analytic variance of
//     spatial statistics is built from.
//   - Builders: DistanceBand (points within a radius), Lat2W (regular
//     lattice contiguity, rook or queen), KNN (k nearest neighbors).
//
// Transforms and scoping:
//
//   - SetTransform switches the read-side rescaling; base weights never
//     change, so any sequence of switches is reversible.
//   - ScopedTransform(t, fn) installs t, runs fn, and restores the prior
//     mode — the pattern statistic engines use to “temporarily force” a
//     transform. The restore is verified: a concurrent mutation racing the
//     scope surfaces as ErrTransformRaced rather than being swallowed.
//
// Concurrency:
//
//   - W is safe for concurrent reads but the transform mode is shared
//     mutable state: concurrent ScopedTransform/SetTransform calls on one
//     instance race. Clone per goroutine, or serialize.
//
// Determinism:
//
//   - All builders emit neighbor lists in a fixed, documented order, so a
//     given input always produces an identical W.
//
// Complexity:
//
//   - Lag, S0:  O(Σ cardinality)
//   - S1:       O(Σ cardinality · max cardinality) (per-edge reverse lookup)
//   - S2:       O(Σ cardinality)
//   - Full:     O(n²) dense export (gonum mat.Dense)
//
// Example:
//
//	points := [][2]float64{{10, 10}, {20, 10}, {40, 10}, {15, 20}, {30, 20}, {30, 30}}
//	w, err := weights.DistanceBand(points, 15)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	lag, _ := weights.Lag(w, []float64{2, 3, 3.2, 5, 8, 7})
//	fmt.Println(lag[0]) // sum of location 0's neighbor values
package weights
