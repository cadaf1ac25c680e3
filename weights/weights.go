package weights

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// W is a spatial weights object: n locations, per-location neighbor index
// lists with base weights, and a current transform mode.
//
// W is read-mostly. The only mutation after construction is the transform
// mode (SetTransform / ScopedTransform), and that mutation is NOT safe under
// concurrent invocations sharing one instance: callers needing concurrency
// must Clone per goroutine or serialize calls.
type W struct {
	ids       []string
	neighbors [][]int
	base      [][]float64
	transform Transform
	maxCard   int
}

// NewW builds a spatial weights object from per-location neighbor lists.
// neighbors[i] holds the indices of location i's neighbors; i itself must
// not appear and no index may repeat.
//
// Options: WithWeights (base weights aligned with neighbors, default all 1),
// WithIDs (location labels, default "0".."n-1"), WithTransform (default Binary).
//
// Complexity: O(Σ cardinality) time and space.
func NewW(neighbors [][]int, opts ...Option) (*W, error) {
	n := len(neighbors)
	if n == 0 {
		return nil, ErrNoLocations
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.transform.valid() {
		return nil, fmt.Errorf("transform %d: %w", int(cfg.transform), ErrBadTransform)
	}
	if cfg.base != nil && len(cfg.base) != n {
		return nil, fmt.Errorf("%d weight rows for %d locations: %w", len(cfg.base), n, ErrRaggedWeights)
	}
	if cfg.ids != nil && len(cfg.ids) != n {
		return nil, fmt.Errorf("%d ids for %d locations: %w", len(cfg.ids), n, ErrBadIDs)
	}

	w := &W{
		neighbors: make([][]int, n),
		base:      make([][]float64, n),
		transform: cfg.transform,
	}
	seen := make(map[int]struct{}, n)
	for i, row := range neighbors {
		if cfg.base != nil && len(cfg.base[i]) != len(row) {
			return nil, fmt.Errorf("row %d: %d weights for %d neighbors: %w",
				i, len(cfg.base[i]), len(row), ErrRaggedWeights)
		}
		clear(seen)
		for _, j := range row {
			if j < 0 || j >= n {
				return nil, fmt.Errorf("row %d: neighbor %d: %w", i, j, ErrBadNeighbor)
			}
			if j == i {
				return nil, fmt.Errorf("row %d: %w", i, ErrSelfNeighbor)
			}
			if _, dup := seen[j]; dup {
				return nil, fmt.Errorf("row %d: neighbor %d: %w", i, j, ErrDuplicateNeighbor)
			}
			seen[j] = struct{}{}
		}
		w.neighbors[i] = append([]int(nil), row...)
		if cfg.base != nil {
			w.base[i] = append([]float64(nil), cfg.base[i]...)
		} else {
			ones := make([]float64, len(row))
			for k := range ones {
				ones[k] = 1
			}
			w.base[i] = ones
		}
		if len(row) > w.maxCard {
			w.maxCard = len(row)
		}
	}

	if cfg.ids != nil {
		w.ids = append([]string(nil), cfg.ids...)
	} else {
		w.ids = make([]string, n)
		for i := range w.ids {
			w.ids[i] = strconv.Itoa(i)
		}
	}

	return w, nil
}

// N returns the number of locations.
func (w *W) N() int { return len(w.neighbors) }

// Transform returns the current transform mode.
func (w *W) Transform() Transform { return w.transform }

// SetTransform switches the transform mode. Idempotent and reversible:
// switching rescales reads only, the stored base weights never change.
func (w *W) SetTransform(t Transform) error {
	if !t.valid() {
		return fmt.Errorf("transform %d: %w", int(t), ErrBadTransform)
	}
	w.transform = t

	return nil
}

// ScopedTransform installs t, runs fn, and restores the prior mode.
//
// Restoration is checked: if the observed mode at scope exit differs from t,
// a concurrent mutation raced the scope and ErrTransformRaced is returned
// (wrapping fn's error, if any). Scopes nest — an inner ScopedTransform
// restores before the outer one checks.
func (w *W) ScopedTransform(t Transform, fn func() error) error {
	if w == nil {
		return ErrNilWeights
	}
	if !t.valid() {
		return fmt.Errorf("transform %d: %w", int(t), ErrBadTransform)
	}
	prev := w.transform
	w.transform = t

	err := fn()

	if w.transform != t {
		if err != nil {
			return fmt.Errorf("%w (inner error: %v)", ErrTransformRaced, err)
		}

		return ErrTransformRaced
	}
	w.transform = prev

	return err
}

// Cardinality returns the neighbor count of location i.
func (w *W) Cardinality(i int) (int, error) {
	if i < 0 || i >= len(w.neighbors) {
		return 0, fmt.Errorf("location %d: %w", i, ErrBadNeighbor)
	}

	return len(w.neighbors[i]), nil
}

// Cardinalities returns every location's neighbor count, in location order.
func (w *W) Cardinalities() []int {
	cards := make([]int, len(w.neighbors))
	for i, row := range w.neighbors {
		cards[i] = len(row)
	}

	return cards
}

// MaxCardinality returns the largest neighbor count over all locations.
func (w *W) MaxCardinality() int { return w.maxCard }

// Neighbors returns a copy of location i's neighbor indices.
func (w *W) Neighbors(i int) ([]int, error) {
	if i < 0 || i >= len(w.neighbors) {
		return nil, fmt.Errorf("location %d: %w", i, ErrBadNeighbor)
	}

	return append([]int(nil), w.neighbors[i]...), nil
}

// IDOrder returns the location labels in location order.
func (w *W) IDOrder() []string { return append([]string(nil), w.ids...) }

// Weight returns the effective weight of edge i→j under the current
// transform, or 0 when j is not a neighbor of i. O(cardinality(i)).
func (w *W) Weight(i, j int) float64 {
	if i < 0 || i >= len(w.neighbors) {
		return 0
	}
	row := w.rowWeights(i)
	for k, nb := range w.neighbors[i] {
		if nb == j {
			return row[k]
		}
	}

	return 0
}

// rowWeights returns location i's effective weights under the current
// transform, aligned with neighbors[i]. Binary yields all ones;
// RowStandardized divides base weights by the row sum (islands stay empty).
func (w *W) rowWeights(i int) []float64 {
	row := w.base[i]
	out := make([]float64, len(row))
	switch w.transform {
	case RowStandardized:
		var sum float64
		for _, v := range row {
			sum += v
		}
		if sum != 0 {
			for k, v := range row {
				out[k] = v / sum
			}
		}
	default: // Binary
		for k := range out {
			out[k] = 1
		}
	}

	return out
}

// S0 returns ΣᵢΣⱼ wᵢⱼ under the current transform.
func (w *W) S0() float64 {
	var s0 float64
	for i := range w.neighbors {
		for _, v := range w.rowWeights(i) {
			s0 += v
		}
	}

	return s0
}

// S1 returns ½·ΣᵢΣⱼ (wᵢⱼ + wⱼᵢ)² under the current transform.
func (w *W) S1() float64 {
	rows := w.effectiveRows()
	var acc float64
	for i, nbs := range w.neighbors {
		for k, j := range nbs {
			wij := rows[i][k]
			wji := w.lookup(rows, j, i)
			sq := (wij + wji) * (wij + wji)
			acc += sq
			// an asymmetric edge i→j also contributes the (j,i) term,
			// which no adjacency entry will visit
			if wji == 0 {
				acc += sq
			}
		}
	}

	return acc / 2
}

// S2 returns Σᵢ (rowSumᵢ + colSumᵢ)² under the current transform.
func (w *W) S2() float64 {
	n := len(w.neighbors)
	rowSum := make([]float64, n)
	colSum := make([]float64, n)
	for i, nbs := range w.neighbors {
		row := w.rowWeights(i)
		for k, j := range nbs {
			rowSum[i] += row[k]
			colSum[j] += row[k]
		}
	}
	var s2 float64
	for i := 0; i < n; i++ {
		t := rowSum[i] + colSum[i]
		s2 += t * t
	}

	return s2
}

// effectiveRows materializes every row's effective weights once.
func (w *W) effectiveRows() [][]float64 {
	rows := make([][]float64, len(w.neighbors))
	for i := range w.neighbors {
		rows[i] = w.rowWeights(i)
	}

	return rows
}

// lookup returns the effective weight i→j given pre-materialized rows.
func (w *W) lookup(rows [][]float64, i, j int) float64 {
	for k, nb := range w.neighbors[i] {
		if nb == j {
			return rows[i][k]
		}
	}

	return 0
}

// Full exports the effective n×n weight matrix under the current transform.
func (w *W) Full() *mat.Dense {
	n := len(w.neighbors)
	d := mat.NewDense(n, n, nil)
	for i, nbs := range w.neighbors {
		row := w.rowWeights(i)
		for k, j := range nbs {
			d.Set(i, j, row[k])
		}
	}

	return d
}

// Clone returns a deep copy sharing no state with w. Use one clone per
// goroutine when invoking engines concurrently over the same structure.
func (w *W) Clone() *W {
	c := &W{
		ids:       append([]string(nil), w.ids...),
		neighbors: make([][]int, len(w.neighbors)),
		base:      make([][]float64, len(w.base)),
		transform: w.transform,
		maxCard:   w.maxCard,
	}
	for i := range w.neighbors {
		c.neighbors[i] = append([]int(nil), w.neighbors[i]...)
		c.base[i] = append([]float64(nil), w.base[i]...)
	}

	return c
}
