package core

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrRagged     = errors.New("core: rows have different lengths")
	ErrOutOfRange = errors.New("core: index out of range")
)

// Matrix is a dense row-major matrix. It satisfies mat.Matrix so it can be
// passed straight into gonum routines.
type Matrix struct {
	R, C int
	Data []float64
}

var _ mat.Matrix = (*Matrix)(nil)

// NewMatrix allocates a zero r×c matrix.
func NewMatrix(r, c int) *Matrix {
	return &Matrix{R: r, C: c, Data: make([]float64, r*c)}
}

// FromSlice creates a Matrix from a nested slice (copies the data).
func FromSlice(a [][]float64) (*Matrix, error) {
	r := len(a)
	if r == 0 {
		return &Matrix{}, nil
	}

	c := len(a[0])
	m := NewMatrix(r, c)
	k := 0
	for i := 0; i < r; i++ {
		if len(a[i]) != c {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrRagged, i, len(a[i]), c)
		}
		for j := 0; j < c; j++ {
			m.Data[k] = a[i][j]
			k++
		}
	}
	return m, nil
}

// FromColumns builds a matrix whose j-th column is cols[j].
func FromColumns(cols ...[]float64) (*Matrix, error) {
	if len(cols) == 0 {
		return &Matrix{}, nil
	}
	r := len(cols[0])
	m := NewMatrix(r, len(cols))
	for j, col := range cols {
		if len(col) != r {
			return nil, fmt.Errorf("%w: column %d has %d values, want %d", ErrRagged, j, len(col), r)
		}
		for i, v := range col {
			m.Data[i*m.C+j] = v
		}
	}
	return m, nil
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (int, int) { return m.R, m.C }

// At returns element (i, j).
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.R || j < 0 || j >= m.C {
		panic(ErrOutOfRange)
	}
	return m.Data[i*m.C+j]
}

// Set sets element (i, j) to v.
func (m *Matrix) Set(i, j int, v float64) {
	if i < 0 || i >= m.R || j < 0 || j >= m.C {
		panic(ErrOutOfRange)
	}
	m.Data[i*m.C+j] = v
}

// T returns the implicit transpose.
func (m *Matrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	v := make([]float64, m.C)
	copy(v, m.Data[i*m.C:(i+1)*m.C])
	return v
}

// Col returns a copy of column j.
func (m *Matrix) Col(j int) []float64 {
	v := make([]float64, m.R)
	for i := 0; i < m.R; i++ {
		v[i] = m.Data[i*m.C+j]
	}
	return v
}
