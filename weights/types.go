// Package weights defines the W spatial weights object, its transform
// modes, and configuration options for the constructors.
//
// A W holds, for each of n locations (indexed 0..n-1), the list of its
// neighbor indices and a base (as-built) weight per neighbor. A transform
// mode rescales those weights on read without changing the neighbor sets:
//
//   - Binary:          every stored edge reads as weight 1.
//   - RowStandardized: every row's weights are rescaled to sum to 1.
//
// Errors (sentinel):
//
//	– ErrNilWeights      if a nil *W is passed to a package function.
//	– ErrNoLocations     if a constructor receives zero locations.
//	– ErrBadTransform    if an unknown Transform value is supplied.
//	– ErrBadNeighbor     if a neighbor index is out of range.
//	– ErrSelfNeighbor    if a location lists itself as a neighbor.
//	– ErrDuplicateNeighbor if a neighbor appears twice in one row.
//	– ErrRaggedWeights   if supplied weights do not align with neighbors.
//	– ErrBadIDs          if supplied IDs do not have length n.
//	– ErrLengthMismatch  if a value vector does not have length n.
//	– ErrBadThreshold    if a distance-band threshold is not positive.
//	– ErrBadDimensions   if lattice dimensions are not positive.
//	– ErrBadK            if a k-nearest-neighbor k is out of range.
//	– ErrTransformRaced  if a scoped transform was mutated concurrently.
package weights

import "errors"

// Sentinel errors returned by the weights package.
var (
	// ErrNilWeights indicates that a nil *W was passed to a package function.
	ErrNilWeights = errors.New("weights: weights object is nil")

	// ErrNoLocations indicates that a constructor received zero locations.
	ErrNoLocations = errors.New("weights: at least one location is required")

	// ErrBadTransform indicates an unknown Transform value.
	ErrBadTransform = errors.New("weights: unknown transform mode")

	// ErrBadNeighbor indicates a neighbor index outside [0, n).
	ErrBadNeighbor = errors.New("weights: neighbor index out of range")

	// ErrSelfNeighbor indicates a location listing itself as a neighbor.
	ErrSelfNeighbor = errors.New("weights: self-neighbor not allowed")

	// ErrDuplicateNeighbor indicates a neighbor repeated within one row.
	ErrDuplicateNeighbor = errors.New("weights: duplicate neighbor in row")

	// ErrRaggedWeights indicates base weights misaligned with neighbor rows.
	ErrRaggedWeights = errors.New("weights: weights do not align with neighbors")

	// ErrBadIDs indicates an ID slice whose length differs from n.
	ErrBadIDs = errors.New("weights: id order must have one id per location")

	// ErrLengthMismatch indicates a value vector whose length differs from n.
	ErrLengthMismatch = errors.New("weights: vector length does not match location count")

	// ErrBadThreshold indicates a non-positive distance-band threshold.
	ErrBadThreshold = errors.New("weights: threshold must be positive")

	// ErrBadDimensions indicates non-positive lattice dimensions.
	ErrBadDimensions = errors.New("weights: lattice dimensions must be positive")

	// ErrBadK indicates a k-nearest-neighbor count outside [1, n-1].
	ErrBadK = errors.New("weights: k must be in [1, n-1]")

	// ErrTransformRaced indicates that the transform mode observed at the end
	// of a scoped mutation differs from the one the scope installed. This is a
	// caller contract violation (a concurrent mutation raced the scope); the
	// weights object is left in the raced state so the caller can inspect it.
	ErrTransformRaced = errors.New("weights: transform mutated during scoped use")
)

// Transform selects how stored edge weights are read back.
//
//   - Binary          — every edge reads as weight 1 ("B" in the literature).
//   - RowStandardized — each row's weights are rescaled to sum to 1 ("R").
//
// The zero value is Binary.
type Transform int

const (
	// Binary reads every stored edge as weight 1.
	Binary Transform = iota

	// RowStandardized rescales each row's weights to sum to 1.
	// Rows without neighbors (islands) stay all-zero.
	RowStandardized
)

// String returns the conventional one-letter code ("B", "R").
func (t Transform) String() string {
	switch t {
	case Binary:
		return "B"
	case RowStandardized:
		return "R"
	default:
		return "?"
	}
}

// valid reports whether t is a known transform mode.
func (t Transform) valid() bool {
	return t == Binary || t == RowStandardized
}

// Option configures NewW and the weights builders.
type Option func(*options)

// options collects constructor configuration; fields stay unexported so the
// zero value plus defaults remain the single source of truth.
type options struct {
	base      [][]float64
	ids       []string
	transform Transform
}

// defaultOptions returns the documented defaults: unit base weights,
// numeric string IDs, Binary transform.
func defaultOptions() options {
	return options{transform: Binary}
}

// WithWeights supplies base (as-built) weights aligned row-by-row with the
// neighbor lists. Without it every edge gets base weight 1.
func WithWeights(base [][]float64) Option {
	return func(o *options) { o.base = base }
}

// WithIDs supplies one string ID per location, in location order.
// Without it locations are labeled "0", "1", ....
func WithIDs(ids []string) Option {
	return func(o *options) { o.ids = ids }
}

// WithTransform sets the initial transform mode (default Binary).
func WithTransform(t Transform) Option {
	return func(o *options) { o.transform = t }
}
