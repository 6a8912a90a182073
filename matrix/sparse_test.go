package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/multinet/matrix"
)

func TestNewSparse_Shape(t *testing.T) {
	_, err := matrix.NewSparse(0, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewSparse(3, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewSparse(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 0, m.NNZ())
}

func TestSparse_SetAt(t *testing.T) {
	m, err := matrix.NewSparse(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 2.5))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2.5, v)

	// Absent cells read as zero.
	v, err = m.At(1, 1)
	require.NoError(t, err)
	require.Zero(t, v)

	// Zero write deletes; NNZ stays exact.
	require.Equal(t, 1, m.NNZ())
	require.NoError(t, m.Set(0, 1, 0))
	require.Equal(t, 0, m.NNZ())

	// Bounds.
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	// Numeric policy.
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

func TestSparse_NonZeroOrderAndClone(t *testing.T) {
	m, _ := matrix.NewSparse(3, 3)
	// Insert out of row-major order on purpose.
	require.NoError(t, m.Set(2, 0, 3))
	require.NoError(t, m.Set(0, 2, 1))
	require.NoError(t, m.Set(1, 1, 2))

	var got [][3]float64
	m.NonZero(func(i, j int, v float64) {
		got = append(got, [3]float64{float64(i), float64(j), v})
	})
	require.Equal(t, [][3]float64{{0, 2, 1}, {1, 1, 2}, {2, 0, 3}}, got)

	c := m.Clone()
	require.True(t, m.Equal(c))
	require.NoError(t, c.Set(0, 0, 9))
	require.False(t, m.Equal(c)) // clone is independent
	require.Equal(t, 3, m.NNZ())
}

func TestSetBlock_PlacementAndOverhang(t *testing.T) {
	b, _ := matrix.NewSparse(2, 2)
	require.NoError(t, b.Set(0, 0, 1))
	require.NoError(t, b.Set(1, 1, 2))

	m, _ := matrix.NewSparse(4, 4)
	require.NoError(t, m.SetBlock(2, 2, b))
	v, _ := m.At(2, 2)
	require.Equal(t, 1.0, v)
	v, _ = m.At(3, 3)
	require.Equal(t, 2.0, v)
	require.Equal(t, 2, m.NNZ())

	// Overhang rejected, target untouched.
	require.ErrorIs(t, m.SetBlock(3, 0, b), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetBlock(-1, 0, b), matrix.ErrOutOfRange)
	require.Equal(t, 2, m.NNZ())

	require.ErrorIs(t, m.SetBlock(0, 0, nil), matrix.ErrNilMatrix)
}

func TestReplicateBlocks_SupraExpansion(t *testing.T) {
	// B is 2×3 with two non-zeros; 2×1 block grid gives a 4×3 supra matrix
	// whose row halves both equal B, and nnz doubles.
	b, _ := matrix.NewSparse(2, 3)
	require.NoError(t, b.Set(0, 1, 0.5))
	require.NoError(t, b.Set(1, 2, 1))

	out, err := matrix.ReplicateBlocks(b, 2, 1)
	require.NoError(t, err)
	require.Equal(t, 4, out.Rows())
	require.Equal(t, 3, out.Cols())
	require.Equal(t, 2*b.NNZ(), out.NNZ())

	for blk := 0; blk < 2; blk++ {
		for i := 0; i < 2; i++ {
			for j := 0; j < 3; j++ {
				want, _ := b.At(i, j)
				got, errAt := out.At(blk*2+i, j)
				require.NoError(t, errAt)
				require.Equal(t, want, got)
			}
		}
	}

	_, err = matrix.ReplicateBlocks(b, 0, 1)
	require.ErrorIs(t, err, matrix.ErrBadBlockCount)
	_, err = matrix.ReplicateBlocks(nil, 1, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDense_Export(t *testing.T) {
	m, _ := matrix.NewSparse(2, 2)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(1, 0, 0.25))

	want := mat.NewDense(2, 2, []float64{1, 0, 0.25, 0})
	require.True(t, mat.Equal(want, m.Dense()))
}
