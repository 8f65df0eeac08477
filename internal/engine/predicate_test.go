package engine

import (
	"testing"

	"github.com/born-ml/ndarray/internal/dtype"
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positive(v float64) bool { return v > 0 }

func TestAnyPositiveOnStridedView(t *testing.T) {
	data := make([]float64, 12)
	for i := range data {
		data[i] = float64(i + 1)
	}
	x, err := ndarray.Make(dtype.Float64, ndarray.NewSlice(data), shape.Shape{3, 1, 2}, []int{4, 4, 1}, 1,
		shape.RowMajor, ndarray.Flags{})
	require.NoError(t, err)

	assert.True(t, Any(x, positive))
	assert.True(t, Every(x, positive))
	assert.Equal(t, 6, CountIf(x, positive))
}

func TestSomeShortCircuits(t *testing.T) {
	x := fromSlice(t, []float64{1, -1, 2, -2, 3, -3, 4, -4}, 8)

	visited := 0
	ok := Some(x, 2, func(v float64) bool {
		visited++
		return v > 0
	})
	assert.True(t, ok)
	assert.Equal(t, 3, visited, "scanning stops at the second match")

	assert.False(t, Some(x, 5, positive))
	assert.True(t, Some(x, 0, func(float64) bool {
		t.Fatal("n <= 0 needs no scan")
		return false
	}))
}

func TestEveryShortCircuits(t *testing.T) {
	x := fromSlice(t, []float64{1, -1, 2, 3}, 4)

	visited := 0
	ok := Every(x, func(v float64) bool {
		visited++
		return v > 0
	})
	assert.False(t, ok)
	assert.Equal(t, 2, visited)
}

func TestNoneAndEmpty(t *testing.T) {
	x := fromSlice(t, []int32{-1, -2, -3}, 3)
	isPositive := func(v int32) bool { return v > 0 }
	assert.True(t, None(x, isPositive))
	assert.False(t, Any(x, isPositive))

	empty := zeros(t, dtype.Int32, 0)
	assert.True(t, Every(empty, isPositive))
	assert.False(t, Any(empty, isPositive))
	assert.True(t, None(empty, isPositive))
	assert.Equal(t, 0, CountIf(empty, isPositive))
}

func TestFind(t *testing.T) {
	x := fromSlice(t, []float64{0, 0, 5, 0, 7, 0}, 2, 3)
	xt, err := ndarray.Transpose(x)
	require.NoError(t, err)

	v, idx, ok := Find(xt, positive)
	require.True(t, ok)
	assert.Equal(t, 7.0, v, "the first match in logical order of the transposed view")
	assert.Equal(t, []int{1, 1}, idx)

	_, idx, ok = Find(x, func(v float64) bool { return v > 100 })
	assert.False(t, ok)
	assert.Nil(t, idx)
}

func TestPredicateDims(t *testing.T) {
	x := fromSlice(t, []float64{1, -1, 2, 3, 4, 5}, 2, 3)

	anyRow := zeros(t, dtype.Bool, 2)
	require.NoError(t, AnyDims(x, anyRow, []int{1}, false, func(v float64) bool { return v < 0 }, parallel.Config{}))
	assert.Equal(t, []bool{true, false}, values[bool](anyRow))

	everyCol := zeros(t, dtype.Bool, 1, 3)
	require.NoError(t, EveryDims(x, everyCol, []int{0}, true, positive, parallel.Config{}))
	assert.Equal(t, []bool{true, false, true}, values[bool](everyCol))

	noneRow := zeros(t, dtype.Bool, 2)
	require.NoError(t, NoneDims(x, noneRow, []int{-1}, false, func(v float64) bool { return v < 0 }, parallel.Config{}))
	assert.Equal(t, []bool{false, true}, values[bool](noneRow))

	counts := zeros(t, dtype.Int64, 2)
	require.NoError(t, CountIfDims(x, counts, []int{1}, false, positive, parallel.Config{}))
	assert.Equal(t, []int64{2, 3}, values[int64](counts))

	twoRow := zeros(t, dtype.Uint8, 2)
	require.NoError(t, SomeDims(x, twoRow, []int{1}, false, 3, positive, parallel.Config{}))
	assert.Equal(t, []uint8{0, 1}, values[uint8](twoRow))

	err := CountIfDims(x, counts, []int{0}, false, positive, parallel.Config{})
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch)
}

func TestPredicateDimsAllAndParallel(t *testing.T) {
	x := fromSlice(t, []float64{1, -1, 2, 3, 4, 5}, 2, 3)

	all := zeros(t, dtype.Bool)
	require.NoError(t, EveryDims(x, all, nil, false, positive, parallel.Config{}))
	assert.Equal(t, []bool{false}, values[bool](all))

	kept := zeros(t, dtype.Int64, 1, 1)
	require.NoError(t, CountIfDims(x, kept, nil, true, positive, parallel.Config{}))
	assert.Equal(t, []int64{5}, values[int64](kept))

	err := CountIfDims(x, zeros(t, dtype.Int64, 1), nil, false, positive, parallel.Config{})
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch)

	data := make([]float64, 200*3)
	for i := range data {
		data[i] = float64(i%3) - 1
	}
	big := fromSlice(t, data, 200, 3)
	rows := zeros(t, dtype.Bool, 200)
	cfg := parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}
	require.NoError(t, AnyDims(big, rows, []int{1}, false, func(v float64) bool { return v < 0 }, cfg))
	for _, b := range values[bool](rows) {
		assert.True(t, b)
	}
}
