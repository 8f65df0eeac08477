package ndarray

import (
	"testing"

	"github.com/born-ml/ndarray/internal/dtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestSliceSetConverts(t *testing.T) {
	s := NewSlice(make([]int32, 3))
	s.Set(0, int32(5))
	s.Set(1, 2.7)
	s.Set(2, true)
	assert.Equal(t, []int32{5, 2, 1}, s.Data)
	assert.Equal(t, dtype.Int32, s.DataType())
	assert.Panics(t, func() { s.Set(0, "x") })
}

func TestCanStore(t *testing.T) {
	words := NewSlice([]string{"a", "b"})
	assert.Equal(t, dtype.Generic, words.DataType())
	assert.NoError(t, CanStore(words, "c"))
	assert.ErrorIs(t, CanStore(words, 1.0), dtype.ErrUnsupportedValue)

	anything := NewSlice(make([]any, 1))
	assert.NoError(t, CanStore(anything, 1.0))
	assert.NoError(t, CanStore(anything, "c"))

	floats := NewSlice(make([]float64, 1))
	assert.NoError(t, CanStore(floats, int8(3)))
	assert.ErrorIs(t, CanStore(floats, "c"), dtype.ErrUnsupportedValue)

	clamped, err := NewSliceOf(dtype.Uint8c, make([]uint8, 1))
	require.NoError(t, err)
	assert.NoError(t, CanStore(clamped, 300))

	packed, err := NewComplexPacked(make([]float32, 2))
	require.NoError(t, err)
	assert.NoError(t, CanStore(packed, 1.5))
	assert.ErrorIs(t, CanStore(packed, "c"), dtype.ErrUnsupportedValue)
}

func TestSliceOf(t *testing.T) {
	c, err := NewSliceOf(dtype.Uint8c, make([]uint8, 2))
	require.NoError(t, err)
	c.Set(0, 300)
	c.Set(1, -4.0)
	assert.Equal(t, []uint8{255, 0}, c.Data)

	b, err := NewSliceOf(dtype.Binary, []byte("ab"))
	require.NoError(t, err)
	assert.Equal(t, dtype.Binary, b.DataType())

	_, err = NewSliceOf(dtype.Float32, []float64{1})
	assert.ErrorIs(t, err, ErrDTypeMismatch)

	_, err = NewSliceOf(dtype.DataType(99), []float64{1})
	assert.ErrorIs(t, err, dtype.ErrUnknownDType)
}

func TestComplexPacked(t *testing.T) {
	c, err := NewComplexPacked([]float32{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, dtype.Complex64, c.DataType())
	assert.Equal(t, complex64(complex(3, 4)), c.Get(1))

	c.Set(0, 5.0)
	assert.Equal(t, []float32{5, 0, 3, 4}, c.Data)

	d, err := NewComplexPacked([]float64{1, -1})
	require.NoError(t, err)
	assert.Equal(t, dtype.Complex128, d.DataType())
	assert.Equal(t, complex(1, -1), d.Get(0))

	_, err = NewComplexPacked([]float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestAlloc(t *testing.T) {
	for _, dt := range dtype.All() {
		buf, err := Alloc(dt, 3)
		require.NoError(t, err, dt.String())
		assert.Equal(t, 3, buf.Len())
		assert.Equal(t, dt, buf.DataType())
		if dt == dtype.Generic {
			assert.Nil(t, buf.Get(2))
			continue
		}
		assert.Equal(t, dtype.MustConvert(0, dt), buf.Get(2), dt.String())
	}
	_, err := Alloc(dtype.Invalid, 1)
	assert.ErrorIs(t, err, dtype.ErrUnknownDType)
}

func TestReaderWriter(t *testing.T) {
	direct := NewSlice([]float64{1, 2})
	read := Reader[float64](direct)
	write := Writer[float64](direct)
	write(1, 7)
	assert.Equal(t, 7.0, read(1))

	// A reader of another element type converts.
	asInt := Reader[int](direct)
	assert.Equal(t, 7, asInt(1))

	half := NewSlice(make([]float16.Float16, 1))
	Writer[float64](half)(0, 1.5)
	assert.Equal(t, float32(1.5), half.Data[0].Float32())

	clamped, err := NewSliceOf(dtype.Uint8c, make([]uint8, 1))
	require.NoError(t, err)
	Writer[int](clamped)(0, 1000)
	assert.Equal(t, uint8(255), clamped.Data[0])

	packed, err := NewComplexPacked(make([]float64, 2))
	require.NoError(t, err)
	Writer[complex128](packed)(0, complex(2, 3))
	assert.Equal(t, complex(2, 3), Reader[complex128](packed)(0))
}
