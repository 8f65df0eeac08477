package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDim(t *testing.T) {
	d, err := NormalizeDim(-1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	_, err = NormalizeDim(3, 3)
	require.ErrorIs(t, err, ErrDimensionIndex)
	_, err = NormalizeDim(-4, 3)
	require.ErrorIs(t, err, ErrDimensionIndex)

	d, err = NormalizeInsertDim(-1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, d)
	d, err = NormalizeInsertDim(-4, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, d)
	_, err = NormalizeInsertDim(4, 3)
	require.ErrorIs(t, err, ErrDimensionIndex)
}

func TestNormalizeDims(t *testing.T) {
	dims, err := NormalizeDims([]int{-1, 0}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, dims)

	_, err = NormalizeDims([]int{1, -2}, 3)
	require.ErrorIs(t, err, ErrDuplicateDims)

	_, err = NormalizeDims([]int{5}, 3)
	require.ErrorIs(t, err, ErrDimensionIndex)
}

func TestComplement(t *testing.T) {
	assert.Equal(t, []int{1, 3}, Complement([]int{0, 2}, 4))
	assert.Empty(t, Complement(AllDims(3), 3))
}

func TestReducedShape(t *testing.T) {
	s := Shape{2, 3, 4, 5}
	dims := []int{1, 3}

	assert.Equal(t, Shape{2, 4}, ReducedShape(s, dims, false))
	assert.Equal(t, Shape{2, 1, 4, 1}, ReducedShape(s, dims, true))
	assert.Equal(t, Shape{}, ReducedShape(s, AllDims(4), false))
}
