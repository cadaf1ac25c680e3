// Package esda is an in-memory toolkit for exploratory spatial data
// analysis — spatial weights objects, spatial lag, and the Getis–Ord
// family of spatial-association statistics.
//
// 🚀 What is esda?
//
//	A small, deterministic library that brings together:
//		• Spatial weights: neighbor lists, binary & row-standardized transforms
//		• Weights builders: distance-band, lattice contiguity, k-nearest-neighbor
//		• Spatial lag: weighted neighbor sums over a weights object
//		• Global G: clustering of high/low values across the whole map
//		• Local G and G*: per-location hot- and cold-spot detection
//		• Inference: analytic z-tests and conditional-permutation p-values
//
// ✨ Why choose esda?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Faithful statistics – moments and permutation schemes follow
//     Getis & Ord (1992) and Ord & Getis (1995)
//   - Reproducible – every random draw flows from a caller-supplied source
//   - Extensible – weights objects accept arbitrary neighbor structures
//
// Under the hood, everything is organized under two subpackages:
//
//	weights/  — the W spatial weights object, transforms, lag & builders
//	getisord/ — GlobalG, LocalG engines with analytic & Monte Carlo inference
//
// Quick ASCII example:
//
//	    •───•        two loose point clusters; G asks whether the
//	    │   │        high attribute values concentrate in one of them,
//	    •   •──•──•  local G asks the same question per point.
//
// Dive into examples/ for end-to-end hot-spot detection walkthroughs.
//
//	go get github.com/katalvlaran/esda
package esda
