// SPDX-License-Identifier: MIT

package matrix

// Dense is a row-major dense matrix of float64 values.
// The backing slice is owned by the Dense and never shared with callers.
type Dense struct {
	r, c int
	data []float64 // length r*c, row-major: data[i*c+j]
}

// NewDense allocates a zero-valued r×c Dense.
// Returns ErrBadShape when r<=0 or c<=0.
// Complexity: O(r*c).
func NewDense(r, c int) (*Dense, error) {
	if r <= 0 || c <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: r, c: c, data: make([]float64, r*c)}, nil
}

// NewDenseFromRows builds a Dense from a non-empty rectangular row slice.
// The input is copied. Returns ErrBadShape on empty or ragged input.
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	c := len(rows[0])
	m := &Dense{r: len(rows), c: c, data: make([]float64, len(rows)*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, ErrBadShape
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// At retrieves the element at (i, j).
// Returns ErrOutOfRange on invalid indices. Complexity: O(1).
func (m *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, ErrOutOfRange
	}

	return m.data[i*m.c+j], nil
}

// Set assigns v at (i, j).
// Returns ErrOutOfRange on invalid indices. Complexity: O(1).
func (m *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return ErrOutOfRange
	}
	m.data[i*m.c+j] = v

	return nil
}

// Clone returns a deep copy, independent of the original.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// Row returns a copy of row i, or nil when i is out of range.
// Complexity: O(c).
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}
