package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFromSlice(t *testing.T) {
	m, err := FromSlice([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6.0, m.At(1, 2))
	assert.Equal(t, []float64{4, 5, 6}, m.Row(1))
	assert.Equal(t, []float64{2, 5}, m.Col(1))
}

func TestFromSliceRagged(t *testing.T) {
	_, err := FromSlice([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, ErrRagged)
}

func TestFromColumns(t *testing.T) {
	m, err := FromColumns([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 2, 4}, m.Data)

	_, err = FromColumns([]float64{1, 2}, []float64{3})
	require.ErrorIs(t, err, ErrRagged)
}

func TestSet(t *testing.T) {
	m := NewMatrix(2, 2)
	m.Set(0, 1, 7)

	assert.Equal(t, 7.0, m.At(0, 1))
	assert.Equal(t, []float64{0, 7, 0, 0}, m.Data)
	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.Set(0, -1, 1) })
}

func TestGonumInterop(t *testing.T) {
	m, err := FromSlice([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	var p mat.Dense
	p.Mul(m.T(), m)
	assert.Equal(t, 35.0, p.At(0, 0))
	assert.Equal(t, 44.0, p.At(0, 1))
	assert.Equal(t, 56.0, p.At(1, 1))

	d := mat.DenseCopyOf(m)
	assert.True(t, mat.Equal(d, m))
	assert.True(t, mat.Equal(d.T(), m.T()))
}
