package linalg

import "fmt"

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r×c Dense matrix initialized to zeros.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf("At", row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf("At", row, col, ErrIndexOutOfBounds)
	}
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Row returns a copy of row i as a plain slice, used when extracting a
// single supernode's feature vector out of the backing feature matrix.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])
	return out, nil
}

// SetRow overwrites row i with the values in row.
func (m *Dense) SetRow(i int, row []float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf("SetRow", i, 0, ErrIndexOutOfBounds)
	}
	if len(row) != m.c {
		return fmt.Errorf("Dense.SetRow(%d): %w", i, ErrDimensionMismatch)
	}
	copy(m.data[i*m.c:(i+1)*m.c], row)
	return nil
}

// AddRowInPlace accumulates src into row dst (dst += src), the operation the
// merge engine performs when a supernode absorbs another's feature row.
func (m *Dense) AddRowInPlace(dst int, src []float64) error {
	if dst < 0 || dst >= m.r {
		return denseErrorf("AddRowInPlace", dst, 0, ErrIndexOutOfBounds)
	}
	if len(src) != m.c {
		return fmt.Errorf("Dense.AddRowInPlace(%d): %w", dst, ErrDimensionMismatch)
	}
	base := dst * m.c
	for j, v := range src {
		m.data[base+j] += v
	}
	return nil
}

// Clone returns a deep copy of the Dense matrix.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)
	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense) String() string {
	s := ""
	for i := 0; i < m.r; i++ {
		s += "["
		for j := 0; j < m.c; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}
	return s
}

// Gather builds a new Dense matrix by gathering the given row indices out of
// m, in order. This is how the runner assembles "one feature row per
// current supernode in this bucket" out of the full, never-resized
// feature matrix.
func (m *Dense) Gather(indices []int) (*Dense, error) {
	out, err := NewDense(len(indices), m.c)
	if err != nil {
		return nil, err
	}
	for dst, src := range indices {
		row, err := m.Row(src)
		if err != nil {
			return nil, err
		}
		if err := out.SetRow(dst, row); err != nil {
			return nil, err
		}
	}
	return out, nil
}
