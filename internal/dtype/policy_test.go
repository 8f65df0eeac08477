package dtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePromotedAndOutput(t *testing.T) {
	cfg := DefaultConfig()
	inputs := []DataType{Float32, Float64}

	got, err := Resolve(inputs, Float32, PolicyPromoted, cfg)
	require.NoError(t, err)
	assert.Equal(t, Float64, got)

	got, err = Resolve(inputs, Float32, PolicyOutput, cfg)
	require.NoError(t, err)
	assert.Equal(t, Float32, got)
}

func TestResolvePromotedFails(t *testing.T) {
	_, err := Resolve([]DataType{Binary}, Float64, PolicyPromoted, DefaultConfig())
	require.ErrorIs(t, err, ErrNoPromotion)
}

func TestResolveAccumulation(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		in, want DataType
	}{
		{Float32, Float32},
		{Float16, Float16},
		{Complex64, Complex64},
		{Generic, Generic},
		{Int8, Int32},
		{Int64, Int64},
		{Uint8, Uint32},
		{Uint64, Uint64},
		{Bool, Float64},
		{Binary, Float64},
	}

	for _, tt := range tests {
		got, err := Resolve([]DataType{tt.in}, Float64, PolicyAccumulation, cfg)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "accumulation of %s", tt.in)
	}
}

func TestResolveKindPolicies(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		policy Policy
		in     DataType
		want   DataType
	}{
		{PolicyNone, Int8, Int8},
		{PolicySame, Uint16, Uint16},
		{PolicyReal, Int8, Int8},
		{PolicyReal, Complex64, Float64},
		{PolicyFloatingPoint, Complex64, Complex64},
		{PolicyFloatingPoint, Int8, Float64},
		{PolicyRealFloatingPoint, Float32, Float32},
		{PolicyRealFloatingPoint, Complex128, Float64},
		{PolicyComplexFloatingPoint, Float32, Complex128},
		{PolicyComplexFloatingPoint, Complex64, Complex64},
		{PolicyInteger, Uint8, Uint8},
		{PolicyInteger, Float32, Int32},
		{PolicySignedInteger, Uint8, Int32},
		{PolicyUnsignedInteger, Int8, Uint32},
		{PolicyNumeric, Bool, Float64},
		{PolicyNumeric, Int16, Int16},
		{PolicyOf(Int16), Float64, Int16},
		{Policy("complex64"), Float64, Complex64},
	}

	for _, tt := range tests {
		got, err := Resolve([]DataType{tt.in}, Float64, tt.policy, cfg)
		require.NoError(t, err, "%s", tt.policy)
		assert.Equal(t, tt.want, got, "%s on %s", tt.policy, tt.in)
	}
}

func TestResolveTotality(t *testing.T) {
	cfg := DefaultConfig()
	for _, policy := range Policies() {
		if policy == PolicyPromoted {
			continue
		}
		for _, a := range All() {
			for _, out := range All() {
				got, err := Resolve([]DataType{a}, out, policy, cfg)
				require.NoError(t, err, "%s(%s, %s)", policy, a, out)
				assert.True(t, got.Valid(), "%s(%s, %s)", policy, a, out)
			}
		}
	}
}

func TestResolvePromotedTotality(t *testing.T) {
	cfg := DefaultConfig()
	for _, a := range All() {
		for _, out := range All() {
			_, err := Resolve([]DataType{a}, out, PolicyPromoted, cfg)
			_, perr := Promote(a, out)
			assert.Equal(t, perr == nil, err == nil, "%s, %s", a, out)
		}
	}
}

func TestResolveInvalidPolicy(t *testing.T) {
	_, err := Resolve([]DataType{Float64}, Float64, Policy("widest"), DefaultConfig())
	require.ErrorIs(t, err, ErrInvalidPolicy)

	var pe *PolicyError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, Policy("widest"), pe.Policy)
	assert.Contains(t, err.Error(), "widest")
}

func TestResolveWithoutInputs(t *testing.T) {
	got, err := Resolve(nil, Int16, PolicySame, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, Int16, got)
}

func TestParsePolicy(t *testing.T) {
	for _, p := range Policies() {
		got, err := ParsePolicy(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	got, err := ParsePolicy("f")
	require.NoError(t, err)
	assert.Equal(t, PolicyOf(Float32), got)

	_, err = ParsePolicy("widest")
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}
