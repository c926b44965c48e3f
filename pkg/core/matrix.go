package core

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Matrix is a dense row-major matrix of float64.
type Matrix struct {
	R, C int
	Data []float64
}

// NewMatrix allocates a zero matrix.
func NewMatrix(r, c int) *Matrix {
	return &Matrix{R: r, C: c, Data: make([]float64, r*c)}
}

// FromSlice creates a Matrix from a nested slice (copies the data).
func FromSlice(a [][]float64) *Matrix {
	r := len(a)
	if r == 0 {
		return &Matrix{R: 0, C: 0}
	}

	c := len(a[0])
	m := NewMatrix(r, c)
	k := 0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Data[k] = a[i][j]
			k++
		}
	}
	return m
}

// FromCols builds a matrix whose j-th column is cols[j]. All columns must
// have the same length.
func FromCols(cols ...[]float64) (*Matrix, error) {
	if len(cols) == 0 {
		return &Matrix{R: 0, C: 0}, nil
	}
	r := len(cols[0])
	for j, col := range cols {
		if len(col) != r {
			return nil, fmt.Errorf("core: column %d has length %d, want %d", j, len(col), r)
		}
	}
	m := NewMatrix(r, len(cols))
	for j, col := range cols {
		for i, v := range col {
			m.Data[i*m.C+j] = v
		}
	}
	return m, nil
}

// RBind stacks b below a. Both must have the same column count.
func RBind(a, b *Matrix) (*Matrix, error) {
	if a.C != b.C {
		return nil, errors.New("core: column count mismatch in RBind")
	}
	m := NewMatrix(a.R+b.R, a.C)
	copy(m.Data, a.Data)
	copy(m.Data[len(a.Data):], b.Data)
	return m, nil
}

// At returns element (i, j).
func (m *Matrix) At(i, j int) float64 { return m.Data[i*m.C+j] }

// Set assigns element (i, j).
func (m *Matrix) Set(i, j int, v float64) { m.Data[i*m.C+j] = v }

// Clone deep-copies the matrix.
func (m *Matrix) Clone() *Matrix {
	n := &Matrix{R: m.R, C: m.C, Data: make([]float64, len(m.Data))}
	copy(n.Data, m.Data)
	return n
}

func (m *Matrix) Transpose() *Matrix {
	t := NewMatrix(m.C, m.R)
	for i := 0; i < m.R; i++ {
		for j := 0; j < m.C; j++ {
			t.Data[j*t.C+i] = m.Data[i*m.C+j]
		}
	}
	return t
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	v := make([]float64, m.C)
	copy(v, m.Data[i*m.C:(i+1)*m.C])
	return v
}

// RowView returns row i as a slice sharing the matrix storage. Callers must
// not grow it.
func (m *Matrix) RowView(i int) []float64 {
	return m.Data[i*m.C : (i+1)*m.C]
}

// Col returns a copy of column j.
func (m *Matrix) Col(j int) []float64 {
	v := make([]float64, m.R)
	for i := 0; i < m.R; i++ {
		v[i] = m.Data[i*m.C+j]
	}
	return v
}

// Apply applies f element-wise in place.
func (m *Matrix) Apply(f func(float64) float64) {
	for i := 0; i < len(m.Data); i++ {
		m.Data[i] = f(m.Data[i])
	}
}

// Dot computes the dot product of two equal-length vectors.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, errors.New("core: mismatched vector lengths in Dot")
	}
	return floats.Dot(a, b), nil
}

// Scale returns s*A.
func Scale(a *Matrix, s float64) *Matrix {
	c := NewMatrix(a.R, a.C)
	for i := 0; i < len(a.Data); i++ {
		c.Data[i] = s * a.Data[i]
	}
	return c
}

// Add returns A + B (element-wise).
func Add(a, b *Matrix) (*Matrix, error) {
	if a.R != b.R || a.C != b.C {
		return nil, errors.New("core: dimension mismatch in Add")
	}
	c := NewMatrix(a.R, a.C)
	for i := 0; i < len(a.Data); i++ {
		c.Data[i] = a.Data[i] + b.Data[i]
	}
	return c, nil
}
