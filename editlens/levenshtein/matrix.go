// Package levenshtein computes the edit distance between two sequences and
// reconstructs a deterministic sequence of single-element edit operations
// that achieves it.
package levenshtein

// Matrix is the dynamic programming table for a pair of sequences x and y.
// Cell (i, j) holds the edit distance between the first i elements of x and
// the first j elements of y, so the bottom-right cell holds the distance
// between the full sequences. The table is built once by NewMatrix and not
// mutated afterwards.
type Matrix[T comparable] struct {
	x, y  []T
	cells [][]int
}

// NewMatrix builds the (len(x)+1) × (len(y)+1) table for x and y. Both
// sequences may be empty. Construction costs O(len(x)·len(y)) time and
// space; callers that need to bound that cost must bound the input lengths
// themselves.
func NewMatrix[T comparable](x, y []T) *Matrix[T] {
	m, n := len(x), len(y)
	cells := make([][]int, m+1)
	for i := range cells {
		cells[i] = make([]int, n+1)
		cells[i][0] = i
	}
	for j := 0; j <= n; j++ {
		cells[0][j] = j
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if x[i-1] == y[j-1] {
				cells[i][j] = cells[i-1][j-1]
				continue
			}
			cells[i][j] = 1 + min(cells[i-1][j], cells[i][j-1], cells[i-1][j-1])
		}
	}
	return &Matrix[T]{x: x, y: y, cells: cells}
}

// Distance returns the edit distance between the two sequences.
func (m *Matrix[T]) Distance() int {
	return m.cells[len(m.x)][len(m.y)]
}

// Rows returns the number of rows of the table, len(x)+1.
func (m *Matrix[T]) Rows() int { return len(m.cells) }

// Cols returns the number of columns of the table, len(y)+1.
func (m *Matrix[T]) Cols() int { return len(m.cells[0]) }

// At returns the value of cell (i, j): the edit distance between the first
// i elements of x and the first j elements of y.
func (m *Matrix[T]) At(i, j int) int { return m.cells[i][j] }

// Distance returns the minimum number of single-element insertions,
// deletions and substitutions needed to transform x into y.
func Distance[T comparable](x, y []T) int {
	return NewMatrix(x, y).Distance()
}

// Script returns the edit distance between x and y together with one
// deterministic minimal sequence of operations transforming x into y.
func Script[T comparable](x, y []T) (int, []Edit[T]) {
	m := NewMatrix(x, y)
	return m.Distance(), m.Script()
}
