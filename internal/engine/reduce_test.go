package engine

import (
	"sync/atomic"
	"testing"

	"github.com/born-ml/ndarray/internal/dtype"
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(w *ndarray.View) float64 {
	return Accumulate(w, 0.0, func(acc, v float64) float64 { return acc + v })
}

func cube(t *testing.T) *ndarray.View {
	t.Helper()
	data := make([]float64, 24)
	for i := range data {
		data[i] = float64(i)
	}
	return fromSlice(t, data, 2, 3, 4)
}

func TestAccumulate(t *testing.T) {
	x := cube(t)
	assert.Equal(t, 276.0, sum(x))

	n := Accumulate(x, 0, func(acc int, _ float64) int { return acc + 1 })
	assert.Equal(t, 24, n)

	empty := zeros(t, dtype.Float64, 0, 3)
	assert.Equal(t, 1.5, Accumulate(empty, 1.5, func(acc, v float64) float64 { return acc + v }))
}

func TestReduceAll(t *testing.T) {
	x := cube(t)
	y := zeros(t, dtype.Float64)
	require.NoError(t, ReduceAll(x, y, sum))
	got, err := y.At()
	require.NoError(t, err)
	assert.Equal(t, 276.0, got)

	kept := zeros(t, dtype.Int64, 1, 1, 1)
	require.NoError(t, ReduceAll(x, kept, func(w *ndarray.View) int { return w.NumElements() }))
	got, err = kept.At(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(24), got)

	err = ReduceAll(x, zeros(t, dtype.Float64, 2), sum)
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch)

	err = ReduceAll(x, ndarray.ReadOnly(y), func(w *ndarray.View) float64 {
		t.Fatal("kernel ran for a read-only output")
		return 0
	})
	assert.ErrorIs(t, err, ndarray.ErrReadOnly)

	require.NoError(t, ReduceAll(x, y, func(w *ndarray.View) float64 {
		assert.True(t, w.ReadOnly())
		return 0
	}))
}

func TestReduceDims(t *testing.T) {
	x := cube(t)

	y := zeros(t, dtype.Float64, 2, 4)
	require.NoError(t, ReduceDims(x, y, []int{1}, false, sum, parallel.Config{}))
	// y[i][k] = Σ_j x[i][j][k] = 3*(12i + k) + 12
	for i := 0; i < 2; i++ {
		for k := 0; k < 4; k++ {
			got, err := y.At(i, k)
			require.NoError(t, err)
			assert.Equal(t, float64(36*i+3*k+12), got, "(%d,%d)", i, k)
		}
	}

	yk := zeros(t, dtype.Float64, 1, 3, 1)
	require.NoError(t, ReduceDims(x, yk, []int{0, -1}, true, sum, parallel.Config{}))
	assert.Equal(t, []float64{60, 92, 124}, values[float64](yk))

	all := zeros(t, dtype.Float64)
	require.NoError(t, ReduceDims(x, all, nil, false, sum, parallel.Config{}))
	got, err := all.At()
	require.NoError(t, err)
	assert.Equal(t, 276.0, got)

	// No reduced dimensions: one rank-0 window per element.
	same := zeros(t, dtype.Float64, 2, 3, 4)
	require.NoError(t, ReduceDims(x, same, []int{}, false, func(w *ndarray.View) float64 {
		assert.Equal(t, 0, w.Rank())
		return 2 * sum(w)
	}, parallel.Config{}))
	assert.Equal(t, 46.0, values[float64](same)[23])
}

func TestReduceDimsShapeLaw(t *testing.T) {
	x := zeros(t, dtype.Float64, 2, 3, 4, 5)
	for _, dims := range [][]int{{0}, {1, 3}, {0, 1, 2, 3}, {-1, 0}} {
		norm, err := shape.NormalizeDims(dims, 4)
		require.NoError(t, err)
		for _, keep := range []bool{false, true} {
			want := shape.ReducedShape(x.Shape(), norm, keep)
			y, err := ndarray.Zeros(want, ndarray.Options{DType: dtype.Int64})
			require.NoError(t, err)

			var windows int64
			require.NoError(t, ReduceDims(x, y, dims, keep, func(w *ndarray.View) int {
				windows++
				return w.NumElements()
			}, parallel.Config{}))
			assert.Equal(t, int64(want.NumElements()), windows, "%v keepdims=%v", dims, keep)

			expected := 1
			for _, d := range norm {
				expected *= x.Shape()[d]
			}
			for _, n := range values[int64](y) {
				assert.Equal(t, int64(expected), n)
			}
		}
	}
}

func TestReduceDimsErrors(t *testing.T) {
	x := cube(t)

	err := ReduceDims(x, zeros(t, dtype.Float64, 2, 3), []int{1}, false, sum, parallel.Config{})
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch)

	err = ReduceDims(x, zeros(t, dtype.Float64, 2, 4), []int{3}, false, sum, parallel.Config{})
	assert.ErrorIs(t, err, shape.ErrDimensionIndex)

	err = ReduceDims(x, zeros(t, dtype.Float64, 2, 4), []int{1, -2}, false, sum, parallel.Config{})
	assert.ErrorIs(t, err, shape.ErrDuplicateDims)

	y := zeros(t, dtype.Float64, 2, 4)
	err = ReduceDims(x, ndarray.ReadOnly(y), []int{1}, false, sum, parallel.Config{})
	assert.ErrorIs(t, err, ndarray.ErrReadOnly)
}

func TestReduceDimsEmptyWindows(t *testing.T) {
	x := zeros(t, dtype.Float64, 3, 0)
	y := zeros(t, dtype.Bool, 3)
	require.NoError(t, ReduceDims(x, y, []int{1}, false, func(w *ndarray.View) bool {
		return Every(w, func(float64) bool { return false })
	}, parallel.Config{}))
	assert.Equal(t, []bool{true, true, true}, values[bool](y))
}

func TestReduceDimsParallel(t *testing.T) {
	data := make([]float64, 64*10)
	for i := range data {
		data[i] = float64(i % 10)
	}
	x := fromSlice(t, data, 64, 10)
	y := zeros(t, dtype.Float64, 64)

	var calls atomic.Int64
	cfg := parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 4}
	require.NoError(t, ReduceDims(x, y, []int{1}, false, func(w *ndarray.View) float64 {
		calls.Add(1)
		return sum(w)
	}, cfg))

	assert.Equal(t, int64(64), calls.Load())
	for _, v := range values[float64](y) {
		assert.Equal(t, 45.0, v)
	}
}
