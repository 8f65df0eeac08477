package dtype

// Policy names the rule used to pick the data type of an operation's output or
// intermediate values. Besides the named policies, any data type name is a valid
// policy selecting that data type explicitly.
type Policy string

// Output data type policies.
const (
	PolicyNone                 Policy = "none"
	PolicySame                 Policy = "same"
	PolicyPromoted             Policy = "promoted"
	PolicyOutput               Policy = "output"
	PolicyAccumulation         Policy = "accumulation"
	PolicyReal                 Policy = "real"
	PolicyFloatingPoint        Policy = "floating_point"
	PolicyRealFloatingPoint    Policy = "real_floating_point"
	PolicyComplexFloatingPoint Policy = "complex_floating_point"
	PolicyInteger              Policy = "integer"
	PolicySignedInteger        Policy = "signed_integer"
	PolicyUnsignedInteger      Policy = "unsigned_integer"
	PolicyNumeric              Policy = "numeric"
)

var policies = []Policy{
	PolicyNone, PolicySame, PolicyPromoted, PolicyOutput, PolicyAccumulation,
	PolicyReal, PolicyFloatingPoint, PolicyRealFloatingPoint, PolicyComplexFloatingPoint,
	PolicyInteger, PolicySignedInteger, PolicyUnsignedInteger, PolicyNumeric,
}

// Policies returns the named (non data type) policies.
func Policies() []Policy {
	return append([]Policy(nil), policies...)
}

// PolicyOf returns the policy selecting dt explicitly.
func PolicyOf(dt DataType) Policy {
	return Policy(dt.checked().String())
}

// ParsePolicy validates a policy name. Named policies and data type names (or
// character codes) are accepted.
func ParsePolicy(s string) (Policy, error) {
	p := Policy(s)
	for _, named := range policies {
		if p == named {
			return p, nil
		}
	}
	dt, err := Parse(s)
	if err != nil {
		return "", &PolicyError{Policy: p}
	}
	return PolicyOf(dt), nil
}

// Defaults holds the configured default data type per kind.
type Defaults struct {
	Default              DataType // numeric and real default
	RealFloatingPoint    DataType
	ComplexFloatingPoint DataType
	Integer              DataType
	SignedInteger        DataType
	UnsignedInteger      DataType
	Boolean              DataType
	Index                DataType // data type of index and count outputs
}

// DefaultConfig returns the library-wide defaults.
func DefaultConfig() Defaults {
	return Defaults{
		Default:              Float64,
		RealFloatingPoint:    Float64,
		ComplexFloatingPoint: Complex128,
		Integer:              Int32,
		SignedInteger:        Int32,
		UnsignedInteger:      Uint32,
		Boolean:              Bool,
		Index:                Int64,
	}
}

// Resolve returns the data type selected by policy for an operation with the given
// input data types and output data type.
//
// Only PolicyPromoted can fail on valid data types (ErrNoPromotion). Unknown policy
// values fail with a *PolicyError.
func Resolve(inputs []DataType, output DataType, policy Policy, cfg Defaults) (DataType, error) {
	switch policy {
	case PolicyNone, PolicySame:
		if len(inputs) == 0 {
			return output, nil
		}
		return inputs[0], nil
	case PolicyOutput:
		return output, nil
	case PolicyPromoted:
		return PromoteAll(append(append([]DataType(nil), inputs...), output)...)
	case PolicyAccumulation:
		return accumulationDType(dominant(inputs, output), cfg), nil
	case PolicyReal:
		return kindOr(dominant(inputs, output), DataType.IsReal, cfg.Default), nil
	case PolicyFloatingPoint:
		return kindOr(dominant(inputs, output), DataType.IsFloatingPoint, cfg.RealFloatingPoint), nil
	case PolicyRealFloatingPoint:
		return kindOr(dominant(inputs, output), DataType.IsRealFloatingPoint, cfg.RealFloatingPoint), nil
	case PolicyComplexFloatingPoint:
		return kindOr(dominant(inputs, output), DataType.IsComplexFloatingPoint, cfg.ComplexFloatingPoint), nil
	case PolicyInteger:
		return kindOr(dominant(inputs, output), DataType.IsInteger, cfg.Integer), nil
	case PolicySignedInteger:
		return kindOr(dominant(inputs, output), DataType.IsSignedInteger, cfg.SignedInteger), nil
	case PolicyUnsignedInteger:
		return kindOr(dominant(inputs, output), DataType.IsUnsignedInteger, cfg.UnsignedInteger), nil
	case PolicyNumeric:
		return kindOr(dominant(inputs, output), DataType.IsNumeric, cfg.Default), nil
	}
	if dt, err := Parse(string(policy)); err == nil {
		return dt, nil
	}
	return Invalid, &PolicyError{Policy: policy}
}

// dominant returns the promoted input data type, the first input when the inputs do
// not promote, or output when there are no inputs.
func dominant(inputs []DataType, output DataType) DataType {
	if len(inputs) == 0 {
		return output
	}
	if dt, err := PromoteAll(inputs...); err == nil {
		return dt
	}
	return inputs[0]
}

func kindOr(dt DataType, is func(DataType) bool, fallback DataType) DataType {
	if is(dt) {
		return dt
	}
	return fallback
}

// accumulationDType picks the data type used to accumulate values of dt. Floating-point
// and generic values accumulate in their own data type; integers accumulate in the
// wider of dt and the configured default integer of the same signedness; anything else
// accumulates in the default real floating-point data type.
func accumulationDType(dt DataType, cfg Defaults) DataType {
	switch {
	case dt.IsFloatingPoint(), dt == Generic:
		return dt
	case dt.IsSignedInteger():
		return wider(dt, cfg.SignedInteger)
	case dt.IsUnsignedInteger():
		return wider(dt, cfg.UnsignedInteger)
	default:
		return cfg.RealFloatingPoint
	}
}

func wider(dt, def DataType) DataType {
	if def.Size() > dt.Size() {
		return def
	}
	return dt
}
