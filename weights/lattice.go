package weights

import "fmt"

// Cell ID scheme for lattice weights: "r,c" in row-major order.
const latticeIDFmt = "%d,%d"

// Lat2W builds a contiguity weights object for a regular rows×cols lattice.
//
// Cells are ordered row-major; cell (r,c) occupies index r*cols+c and gets
// the ID "r,c". With rook=true only orthogonal adjacency counts (up to 4
// neighbors); with rook=false diagonals are included too (queen contiguity,
// up to 8 neighbors). Weights are binary.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrBadDimensions).
//
// Determinism: neighbor lists are emitted in row-major scan order.
//
// Complexity: O(rows·cols) time and space.
func Lat2W(rows, cols int, rook bool, opts ...Option) (*W, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("rows=%d, cols=%d: %w", rows, cols, ErrBadDimensions)
	}

	n := rows * cols
	neighbors := make([][]int, n)
	ids := make([]string, n)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := r*cols + c
			ids[i] = fmt.Sprintf(latticeIDFmt, r, c)
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					if rook && dr != 0 && dc != 0 {
						continue
					}
					rr, cc := r+dr, c+dc
					if rr < 0 || rr >= rows || cc < 0 || cc >= cols {
						continue
					}
					neighbors[i] = append(neighbors[i], rr*cols+cc)
				}
			}
		}
	}

	return NewW(neighbors, append([]Option{WithIDs(ids)}, opts...)...)
}
