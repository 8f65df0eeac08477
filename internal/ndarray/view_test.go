package ndarray

import (
	"math"
	"testing"

	"github.com/born-ml/ndarray/internal/dtype"
	"github.com/born-ml/ndarray/internal/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}

func TestMakeAddressing(t *testing.T) {
	buf := NewSlice(seq(12))
	v, err := Make(dtype.Float64, buf, shape.Shape{3, 1, 2}, []int{4, 4, 1}, 1, shape.RowMajor, Flags{})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for k := 0; k < 2; k++ {
			got, err := v.At(i, 0, k)
			require.NoError(t, err)
			assert.Equal(t, buf.Data[1+4*i+k], got, "(%d,0,%d)", i, k)

			again, _ := v.At(i, 0, k)
			assert.Equal(t, got, again)
		}
	}
	assert.Equal(t, 6, v.NumElements())
	assert.Equal(t, 3, v.Rank())
	assert.False(t, v.IsContiguous())
}

func TestMakeValidation(t *testing.T) {
	buf := NewSlice(seq(6))

	tests := []struct {
		name    string
		dt      dtype.DataType
		buf     Buffer
		sh      shape.Shape
		strides []int
		offset  int
		want    error
	}{
		{"dtype mismatch", dtype.Float32, buf, shape.Shape{6}, []int{1}, 0, ErrDTypeMismatch},
		{"nil buffer", dtype.Float64, nil, shape.Shape{6}, []int{1}, 0, ErrBufferTooSmall},
		{"too small", dtype.Float64, buf, shape.Shape{7}, []int{1}, 0, ErrBufferTooSmall},
		{"offset past end", dtype.Float64, buf, shape.Shape{2, 3}, []int{3, 1}, 1, ErrBufferTooSmall},
		{"negative offset", dtype.Float64, buf, shape.Shape{6}, []int{1}, -1, ErrInvalidOffset},
		{"reaches before start", dtype.Float64, buf, shape.Shape{3}, []int{-1}, 1, ErrInvalidOffset},
		{"stride count", dtype.Float64, buf, shape.Shape{2, 3}, []int{1}, 0, shape.ErrRankMismatch},
		{"rank 0 without [0]", dtype.Float64, buf, shape.Shape{}, nil, 0, shape.ErrRankMismatch},
		{"negative dimension", dtype.Float64, buf, shape.Shape{-1}, []int{1}, 0, shape.ErrInvalidShape},
		{"element count overflow", dtype.Float64, buf, shape.Shape{1 << 32, 1 << 32}, []int{1 << 32, 1}, 0, shape.ErrInvalidShape},
		{"position overflow", dtype.Float64, buf, shape.Shape{3}, []int{math.MaxInt / 2}, 2, ErrBufferTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Make(tt.dt, tt.buf, tt.sh, tt.strides, tt.offset, shape.RowMajor, Flags{})
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Make(dtype.Float64, buf, shape.Shape{6}, []int{1}, 0, shape.RowMajor, Flags{Mode: shape.IndexMode(9)})
	assert.ErrorIs(t, err, shape.ErrInvalidMode)

	// Negative strides are fine when the offset keeps every element inside the buffer.
	v, err := Make(dtype.Float64, buf, shape.Shape{3}, []int{-2}, 5, shape.RowMajor, Flags{})
	require.NoError(t, err)
	got, err := v.At(2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	// Empty views address nothing.
	_, err = Make(dtype.Float64, NewSlice([]float64{}), shape.Shape{0, 4}, []int{4, 1}, 0, shape.RowMajor, Flags{})
	assert.NoError(t, err)
}

func TestSizeOverflow(t *testing.T) {
	_, err := Make(dtype.Float64, NewSlice(make([]float64, 1)), shape.Shape{3}, []int{math.MaxInt / 2}, 2,
		shape.RowMajor, Flags{})
	assert.ErrorIs(t, err, ErrBufferTooSmall)
	assert.ErrorIs(t, err, shape.ErrOverflow)

	_, err = Empty(shape.Shape{1 << 32, 1 << 32}, Options{})
	assert.ErrorIs(t, err, shape.ErrInvalidShape)

	_, err = BroadcastTo(Scalar(1.0), shape.Shape{1 << 32, 1 << 32})
	assert.ErrorIs(t, err, shape.ErrInvalidShape)
}

func TestSetAtGenericTypedSlice(t *testing.T) {
	v, err := FromSlice([]string{"a", "b"}, shape.Shape{2}, shape.RowMajor)
	require.NoError(t, err)
	assert.Equal(t, dtype.Generic, v.DType())

	err = v.SetAt(1.0, 0)
	assert.ErrorIs(t, err, dtype.ErrUnsupportedValue)
	err = v.Iset(1.0, 1)
	assert.ErrorIs(t, err, dtype.ErrUnsupportedValue)

	require.NoError(t, v.SetAt("c", 0))
	assert.Equal(t, []string{"c", "b"}, v.Buffer().(*Slice[string]).Data)
}

func TestRankZero(t *testing.T) {
	v, err := Make(dtype.Float64, NewSlice([]float64{0, 7}), shape.Shape{}, []int{0}, 1, shape.RowMajor, Flags{})
	require.NoError(t, err)

	assert.Equal(t, []int{0}, v.Strides())
	assert.Empty(t, v.DimStrides())
	assert.Equal(t, 1, v.NumElements())

	got, err := v.At()
	require.NoError(t, err)
	assert.Equal(t, 7.0, got)

	require.NoError(t, v.Iset(int32(3), 0))
	got, err = v.Iget(0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestAccessorsReturnCopies(t *testing.T) {
	v, err := FromSlice(seq(6), shape.Shape{2, 3}, shape.RowMajor)
	require.NoError(t, err)

	sh := v.Shape()
	sh[0] = 99
	st := v.Strides()
	st[0] = 99
	assert.Equal(t, shape.Shape{2, 3}, v.Shape())
	assert.Equal(t, []int{3, 1}, v.Strides())
}

func TestSetAt(t *testing.T) {
	v, err := Zeros(shape.Shape{2, 2}, Options{DType: dtype.Int16})
	require.NoError(t, err)

	require.NoError(t, v.SetAt(3.9, 1, 0))
	got, err := v.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, int16(3), got)

	_, err = v.At(2, 0)
	assert.ErrorIs(t, err, shape.ErrIndexOutOfBounds)

	err = ReadOnly(v).SetAt(1, 0, 0)
	assert.ErrorIs(t, err, ErrReadOnly)
	err = ReadOnly(v).Iset(1, 0)
	assert.ErrorIs(t, err, ErrReadOnly)

	err = v.SetAt("text", 0, 0)
	assert.ErrorIs(t, err, dtype.ErrUnsupportedValue)
}

func TestIndexModes(t *testing.T) {
	v, err := FromSlice(seq(6), shape.Shape{2, 3}, shape.RowMajor)
	require.NoError(t, err)

	wrapped, err := Make(dtype.Float64, v.Buffer(), v.Shape(), v.Strides(), 0, shape.RowMajor,
		Flags{Mode: shape.Wrap, Submode: []shape.IndexMode{shape.Clamp, shape.Wrap}})
	require.NoError(t, err)

	got, err := wrapped.At(5, -1)
	require.NoError(t, err)
	assert.Equal(t, 6.0, got, "row clamps to 1, column wraps to 2")

	got, err = wrapped.Iget(7)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got, "linear index wraps to 1")

	assert.Equal(t, shape.Wrap, wrapped.Flags().Mode)
	assert.Equal(t, []shape.IndexMode{shape.Throw}, v.Flags().Submode)
}

func TestIgetOrder(t *testing.T) {
	row, err := FromSlice(seq(6), shape.Shape{2, 3}, shape.RowMajor)
	require.NoError(t, err)
	col, err := FromSlice(seq(6), shape.Shape{2, 3}, shape.ColumnMajor)
	require.NoError(t, err)

	got, err := row.Iget(1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	got, err = col.Iget(1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	got, err = col.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}
