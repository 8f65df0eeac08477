package dtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float64, 8},
		{Float32, 4},
		{Float16, 2},
		{Complex128, 16},
		{Complex64, 8},
		{Int64, 8},
		{Int32, 4},
		{Int16, 2},
		{Int8, 1},
		{Uint64, 8},
		{Uint32, 4},
		{Uint16, 2},
		{Uint8, 1},
		{Uint8c, 1},
		{Bool, 1},
		{Generic, 0},
		{Binary, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.size, tt.dtype.Size(), "%s.Size()", tt.dtype)
	}
}

func TestZeroValueIsFloat64(t *testing.T) {
	var dt DataType
	assert.Equal(t, Float64, dt)
	assert.Equal(t, "float64", dt.String())
}

func TestParse(t *testing.T) {
	for _, dt := range All() {
		got, err := Parse(dt.String())
		require.NoError(t, err)
		assert.Equal(t, dt, got)

		got, err = Parse(string(dt.Char()))
		require.NoError(t, err)
		assert.Equal(t, dt, got, "char code %q", dt.Char())
	}

	got, err := Parse("Float32")
	require.NoError(t, err)
	assert.Equal(t, Float32, got)

	_, err = Parse("float128")
	require.ErrorIs(t, err, ErrUnknownDType)
	assert.Contains(t, err.Error(), "float128")
}

func TestCharCodesUnique(t *testing.T) {
	seen := map[byte]DataType{}
	for _, dt := range All() {
		prev, dup := seen[dt.Char()]
		assert.False(t, dup, "%s and %s share char code", prev, dt)
		seen[dt.Char()] = dt
	}
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, Float16.IsRealFloatingPoint())
	assert.True(t, Complex64.IsFloatingPoint())
	assert.False(t, Complex64.IsReal())
	assert.True(t, Uint8c.IsUnsignedInteger())
	assert.True(t, Int8.IsSignedInteger())
	assert.True(t, Int8.IsNumeric())
	assert.False(t, Bool.IsNumeric())
	assert.False(t, Generic.IsNumeric())
	assert.False(t, Binary.IsInteger())
	assert.False(t, Invalid.IsInteger())
}

func TestFromGoValue(t *testing.T) {
	assert.Equal(t, Float32, FromGoValue(float32(1)))
	assert.Equal(t, Float16, FromGoValue(float16.Fromfloat32(1)))
	assert.Equal(t, Complex128, FromGoValue(complex(1, 2)))
	assert.Equal(t, Int64, FromGoValue(int64(1)))
	assert.Equal(t, Uint8, FromGoValue(byte(1)))
	assert.Equal(t, Bool, FromGoValue(true))
	assert.Equal(t, Generic, FromGoValue("x"))
	assert.Equal(t, Generic, FromGoValue(nil))

	assert.Equal(t, Int16, Of[int16]())
	assert.Equal(t, Generic, Of[any]())
}

func TestInvalidDataTypePanics(t *testing.T) {
	assert.Panics(t, func() { _ = Invalid.Size() })
	assert.Equal(t, "invalid", Invalid.String())
}
