package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poligras/linalg"
)

func TestDenseSetAtRoundTrip(t *testing.T) {
	m, err := linalg.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, linalg.ErrIndexOutOfBounds)
}

func TestDenseRowAndSetRow(t *testing.T) {
	m, err := linalg.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.SetRow(0, []float64{1, 2}))
	row, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, row)

	require.ErrorIs(t, m.SetRow(0, []float64{1}), linalg.ErrDimensionMismatch)
}

func TestDenseAddRowInPlace(t *testing.T) {
	m, err := linalg.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.SetRow(0, []float64{1, 1}))
	require.NoError(t, m.AddRowInPlace(0, []float64{2, 3}))
	row, _ := m.Row(0)
	require.Equal(t, []float64{3, 4}, row)
}

func TestDenseGatherPreservesOrder(t *testing.T) {
	m, err := linalg.NewDense(3, 1)
	require.NoError(t, err)
	require.NoError(t, m.SetRow(0, []float64{10}))
	require.NoError(t, m.SetRow(1, []float64{20}))
	require.NoError(t, m.SetRow(2, []float64{30}))

	gathered, err := m.Gather([]int{2, 0})
	require.NoError(t, err)
	r0, _ := gathered.Row(0)
	r1, _ := gathered.Row(1)
	require.Equal(t, []float64{30}, r0)
	require.Equal(t, []float64{10}, r1)
}

func TestDenseCloneIsIndependent(t *testing.T) {
	m, err := linalg.NewDense(1, 1)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 2))
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
}
