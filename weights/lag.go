package weights

import "fmt"

// Lag computes the spatial lag of y over w: out[i] = Σⱼ wᵢⱼ·y[j] under w's
// current transform, the weighted sum of each location's neighbor values.
//
// y must have one value per location, aligned with w's location order.
//
// Complexity: O(Σ cardinality) time, O(n) space.
func Lag(w *W, y []float64) ([]float64, error) {
	if w == nil {
		return nil, ErrNilWeights
	}
	if len(y) != w.N() {
		return nil, fmt.Errorf("len(y)=%d, n=%d: %w", len(y), w.N(), ErrLengthMismatch)
	}

	out := make([]float64, w.N())
	for i, nbs := range w.neighbors {
		row := w.rowWeights(i)
		var acc float64
		for k, j := range nbs {
			acc += row[k] * y[j]
		}
		out[i] = acc
	}

	return out, nil
}
