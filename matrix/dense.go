// Package matrix - Dense storage (row-major) & safe accessors.
package matrix

import "fmt"

// denseErrorf wraps a sentinel with Dense method context and the offending
// coordinates, preserving errors.Is matching via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r, c hold dimensions (rows, cols), both > 0 after construction.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage, len == r*c
}

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors: ErrBadShape when rows<=0 or cols<=0.
//
// Complexity: O(r·c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows. O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. O(1).
func (m *Dense) Cols() int { return m.c }

// inBounds reports whether (row, col) addresses a valid element.
func (m *Dense) inBounds(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// At returns the element at (row, col).
//
// Errors: ErrOutOfRange on invalid indices.
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if !m.inBounds(row, col) {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Set stores v at (row, col).
//
// Errors: ErrOutOfRange on invalid indices.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if !m.inBounds(row, col) {
		return denseErrorf("Set", row, col, ErrOutOfRange)
	}
	m.data[row*m.c+col] = v

	return nil
}

// Fill assigns v to every element. O(r·c).
func (m *Dense) Fill(v float64) {
	for i := range m.data {
		m.data[i] = v
	}
}

// at is the unchecked fast-path read for hot loops. Callers own bounds.
func (m *Dense) at(row, col int) float64 {
	return m.data[row*m.c+col]
}

// UncheckedAt reads (row, col) without bounds validation. It exists for the
// solver's inner loops where indices are already proven in range; misuse
// panics like any slice access. Prefer At elsewhere.
func (m *Dense) UncheckedAt(row, col int) float64 {
	return m.at(row, col)
}
