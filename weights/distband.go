package weights

import "fmt"

// DistanceBand builds a binary spatial weights object from 2-D point
// coordinates: locations i and j are neighbors iff their Euclidean distance
// is ≤ threshold (self excluded). The resulting graph is symmetric.
//
// Contract:
//   - len(points) ≥ 1 (else ErrNoLocations).
//   - threshold > 0 (else ErrBadThreshold).
//   - Options are forwarded to NewW; WithWeights is not meaningful here
//     (distance-band weights are binary by construction).
//
// Determinism: neighbor lists are emitted in ascending index order.
//
// Complexity: O(n²) pair scan, O(Σ cardinality) space.
func DistanceBand(points [][2]float64, threshold float64, opts ...Option) (*W, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrNoLocations
	}
	if threshold <= 0 {
		return nil, fmt.Errorf("threshold %v: %w", threshold, ErrBadThreshold)
	}

	// Compare squared distances to avoid n² square roots.
	limit := threshold * threshold
	neighbors := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			dx := points[i][0] - points[j][0]
			dy := points[i][1] - points[j][1]
			if dx*dx+dy*dy <= limit {
				neighbors[i] = append(neighbors[i], j)
			}
		}
	}

	return NewW(neighbors, opts...)
}
