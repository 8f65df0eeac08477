// Package dtype provides the data type registry for ndarray views: element kinds and
// sizes, casting classes, promotion rules and output data type resolution.
package dtype

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// DataType identifies the element type of an ndarray buffer.
//
// The zero value is Float64, the library-wide default data type.
type DataType int

// Supported data types.
const (
	Float64 DataType = iota
	Float32
	Float16
	Complex128
	Complex64
	Int64
	Int32
	Int16
	Int8
	Uint64
	Uint32
	Uint16
	Uint8
	Uint8c // uint8 with clamped (saturating) assignment
	Bool
	Generic // arbitrary Go values
	Binary  // raw bytes

	numDataTypes
)

// Invalid is returned by lookups that fail.
const Invalid DataType = -1

// Kind groups data types into families used by the casting rules.
type Kind int

// Data type kinds.
const (
	KindBool Kind = iota
	KindUnsigned
	KindSigned
	KindFloat
	KindComplex
	KindGeneric
	KindBinary
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindUnsigned:
		return "unsigned_integer"
	case KindSigned:
		return "signed_integer"
	case KindFloat:
		return "real_floating_point"
	case KindComplex:
		return "complex_floating_point"
	case KindGeneric:
		return "generic"
	case KindBinary:
		return "binary"
	default:
		return "unknown"
	}
}

type info struct {
	name string
	char byte
	size int // bytes per element, 0 for generic
	kind Kind
	desc string
}

var registry = [numDataTypes]info{
	Float64:    {"float64", 'd', 8, KindFloat, "double-precision floating-point number"},
	Float32:    {"float32", 'f', 4, KindFloat, "single-precision floating-point number"},
	Float16:    {"float16", 'h', 2, KindFloat, "half-precision floating-point number"},
	Complex128: {"complex128", 'z', 16, KindComplex, "double-precision floating-point complex number"},
	Complex64:  {"complex64", 'c', 8, KindComplex, "single-precision floating-point complex number"},
	Int64:      {"int64", 'l', 8, KindSigned, "signed 64-bit integer"},
	Int32:      {"int32", 'i', 4, KindSigned, "signed 32-bit integer"},
	Int16:      {"int16", 'k', 2, KindSigned, "signed 16-bit integer"},
	Int8:       {"int8", 's', 1, KindSigned, "signed 8-bit integer"},
	Uint64:     {"uint64", 'v', 8, KindUnsigned, "unsigned 64-bit integer"},
	Uint32:     {"uint32", 'u', 4, KindUnsigned, "unsigned 32-bit integer"},
	Uint16:     {"uint16", 'm', 2, KindUnsigned, "unsigned 16-bit integer"},
	Uint8:      {"uint8", 'b', 1, KindUnsigned, "unsigned 8-bit integer"},
	Uint8c:     {"uint8c", 'a', 1, KindUnsigned, "unsigned clamped 8-bit integer"},
	Bool:       {"bool", 'x', 1, KindBool, "boolean value"},
	Generic:    {"generic", 'o', 0, KindGeneric, "generic value"},
	Binary:     {"binary", 'r', 1, KindBinary, "byte"},
}

// All returns every supported data type in enum order.
func All() []DataType {
	out := make([]DataType, numDataTypes)
	for i := range out {
		out[i] = DataType(i)
	}
	return out
}

// Valid reports whether dt is a registered data type.
func (dt DataType) Valid() bool {
	return dt >= 0 && dt < numDataTypes
}

func (dt DataType) info() info {
	if !dt.Valid() {
		panicf("invalid data type %d", int(dt))
	}
	return registry[dt]
}

// String returns the canonical data type name.
func (dt DataType) String() string {
	if !dt.Valid() {
		return "invalid"
	}
	return registry[dt].name
}

// Char returns the single character code of the data type.
func (dt DataType) Char() byte {
	return dt.info().char
}

// Size returns the byte size of one element. Generic has no fixed size and returns 0.
func (dt DataType) Size() int {
	return dt.info().size
}

// Alignment returns the required byte alignment of one element.
func (dt DataType) Alignment() int {
	switch dt {
	case Complex128:
		return 8
	case Complex64:
		return 4
	case Generic:
		return 0
	default:
		return dt.Size()
	}
}

// ByteOrder returns the byte order used for multi-byte elements (the host order).
func (dt DataType) ByteOrder() binary.ByteOrder {
	return binary.NativeEndian
}

// Description returns a human readable description.
func (dt DataType) Description() string {
	return dt.info().desc
}

// Kind returns the data type kind.
func (dt DataType) Kind() Kind {
	return dt.info().kind
}

// IsSignedInteger reports whether dt is a signed integer type.
func (dt DataType) IsSignedInteger() bool { return dt.Valid() && registry[dt].kind == KindSigned }

// IsUnsignedInteger reports whether dt is an unsigned integer type.
func (dt DataType) IsUnsignedInteger() bool { return dt.Valid() && registry[dt].kind == KindUnsigned }

// IsInteger reports whether dt is a signed or unsigned integer type.
func (dt DataType) IsInteger() bool { return dt.IsSignedInteger() || dt.IsUnsignedInteger() }

// IsRealFloatingPoint reports whether dt is float16, float32 or float64.
func (dt DataType) IsRealFloatingPoint() bool { return dt.Valid() && registry[dt].kind == KindFloat }

// IsComplexFloatingPoint reports whether dt is complex64 or complex128.
func (dt DataType) IsComplexFloatingPoint() bool {
	return dt.Valid() && registry[dt].kind == KindComplex
}

// IsFloatingPoint reports whether dt is a real or complex floating-point type.
func (dt DataType) IsFloatingPoint() bool {
	return dt.IsRealFloatingPoint() || dt.IsComplexFloatingPoint()
}

// IsReal reports whether dt is a real-valued numeric type (integer or real float).
func (dt DataType) IsReal() bool { return dt.IsInteger() || dt.IsRealFloatingPoint() }

// IsNumeric reports whether dt is an integer, real or complex floating-point type.
func (dt DataType) IsNumeric() bool { return dt.IsReal() || dt.IsComplexFloatingPoint() }

// Parse returns the data type for a name or single character code.
// Names are matched case-insensitively.
func Parse(name string) (DataType, error) {
	lower := strings.ToLower(name)
	for i, in := range registry {
		if in.name == lower || (len(name) == 1 && in.char == name[0]) {
			return DataType(i), nil
		}
	}
	return Invalid, errors.Wrapf(ErrUnknownDType, "%q", name)
}

// Of returns the data type matching the Go type parameter T.
// Types with no fixed mapping (including any) resolve to Generic.
func Of[T any]() DataType {
	var zero T
	return FromGoValue(zero)
}

// FromGoValue returns the data type matching the dynamic type of v.
// uint8 maps to Uint8; Uint8c and Binary have to be requested explicitly.
func FromGoValue(v any) DataType {
	switch v.(type) {
	case float64:
		return Float64
	case float32:
		return Float32
	case float16.Float16:
		return Float16
	case complex128:
		return Complex128
	case complex64:
		return Complex64
	case int64:
		return Int64
	case int:
		if strconv.IntSize == 32 {
			return Int32
		}
		return Int64
	case uint:
		if strconv.IntSize == 32 {
			return Uint32
		}
		return Uint64
	case int32:
		return Int32
	case int16:
		return Int16
	case int8:
		return Int8
	case uint64:
		return Uint64
	case uint32:
		return Uint32
	case uint16:
		return Uint16
	case uint8:
		return Uint8
	case bool:
		return Bool
	default:
		return Generic
	}
}

// panicf panics with the formatted description.
//
// Only used for bugs in the calling code, e.g. an out-of-range enum value.
func panicf(format string, args ...any) {
	panic(errors.Errorf(format, args...))
}
