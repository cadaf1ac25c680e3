package weights

import (
	"fmt"
	"sort"
)

// KNN builds a k-nearest-neighbor weights object from 2-D point coordinates.
// Each location gets exactly k neighbors, the k closest other points by
// Euclidean distance. The relation is generally asymmetric: j being among
// i's nearest points does not make i one of j's.
//
// Contract:
//   - len(points) ≥ 2 (else ErrNoLocations).
//   - 1 ≤ k ≤ n-1 (else ErrBadK).
//
// Determinism: distance ties break on the lower index.
//
// Complexity: O(n² log n) time, O(n·k) space.
func KNN(points [][2]float64, k int, opts ...Option) (*W, error) {
	n := len(points)
	if n < 2 {
		return nil, ErrNoLocations
	}
	if k < 1 || k > n-1 {
		return nil, fmt.Errorf("k=%d, n=%d: %w", k, n, ErrBadK)
	}

	type candidate struct {
		idx  int
		dist float64
	}

	neighbors := make([][]int, n)
	cands := make([]candidate, 0, n-1)
	for i := 0; i < n; i++ {
		cands = cands[:0]
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			dx := points[i][0] - points[j][0]
			dy := points[i][1] - points[j][1]
			cands = append(cands, candidate{idx: j, dist: dx*dx + dy*dy})
		}
		sort.Slice(cands, func(a, b int) bool {
			if cands[a].dist != cands[b].dist {
				return cands[a].dist < cands[b].dist
			}

			return cands[a].idx < cands[b].idx
		})
		row := make([]int, k)
		for m := 0; m < k; m++ {
			row[m] = cands[m].idx
		}
		neighbors[i] = row
	}

	return NewW(neighbors, opts...)
}
