package dtype

import (
	"math"

	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// scalar is the decomposed form of a Go numeric value. Integers keep their exact value
// so 64-bit conversions do not go through float64.
type scalar struct {
	re, im float64
	i      int64
	u      uint64
	class  int
}

const (
	classFloat = iota
	classSigned
	classUnsigned
)

func decompose(v any) (scalar, bool) {
	switch x := v.(type) {
	case float64:
		return scalar{re: x}, true
	case float32:
		return scalar{re: float64(x)}, true
	case float16.Float16:
		return scalar{re: float64(x.Float32())}, true
	case complex128:
		return scalar{re: real(x), im: imag(x)}, true
	case complex64:
		return scalar{re: float64(real(x)), im: float64(imag(x))}, true
	case int:
		return signed(int64(x)), true
	case int64:
		return signed(x), true
	case int32:
		return signed(int64(x)), true
	case int16:
		return signed(int64(x)), true
	case int8:
		return signed(int64(x)), true
	case uint:
		return unsigned(uint64(x)), true
	case uint64:
		return unsigned(x), true
	case uint32:
		return unsigned(uint64(x)), true
	case uint16:
		return unsigned(uint64(x)), true
	case uint8:
		return unsigned(uint64(x)), true
	case bool:
		if x {
			return unsigned(1), true
		}
		return unsigned(0), true
	}
	return scalar{}, false
}

func signed(i int64) scalar {
	return scalar{re: float64(i), i: i, class: classSigned}
}

func unsigned(u uint64) scalar {
	return scalar{re: float64(u), u: u, class: classUnsigned}
}

func (s scalar) int64() int64 {
	switch s.class {
	case classSigned:
		return s.i
	case classUnsigned:
		return int64(s.u) //nolint:gosec // G115: wrap-around matches unsafe casting semantics.
	default:
		if math.IsNaN(s.re) {
			return 0
		}
		return int64(s.re)
	}
}

func (s scalar) uint64() uint64 {
	switch s.class {
	case classSigned:
		return uint64(s.i) //nolint:gosec // G115: wrap-around matches unsafe casting semantics.
	case classUnsigned:
		return s.u
	default:
		if math.IsNaN(s.re) || s.re < 0 {
			return uint64(s.int64()) //nolint:gosec // G115: wrap-around matches unsafe casting semantics.
		}
		return uint64(s.re)
	}
}

func (s scalar) nonzero() bool {
	return s.re != 0 || s.im != 0 || s.i != 0 || s.u != 0
}

// Convert returns v converted to the Go element type of to.
//
// Conversions follow unsafe casting: integers wrap, floats truncate toward zero,
// complex values keep only their real part when cast to a real type, and Uint8c rounds
// to nearest even and saturates to [0, 255]. Generic accepts any value unchanged.
// Non-numeric values fail with ErrUnsupportedValue for every other data type.
func Convert(v any, to DataType) (any, error) {
	if to.checked() == Generic {
		return v, nil
	}
	s, ok := decompose(v)
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedValue, "%T to %s", v, to)
	}
	switch to {
	case Float64:
		return s.re, nil
	case Float32:
		return float32(s.re), nil
	case Float16:
		return float16.Fromfloat32(float32(s.re)), nil
	case Complex128:
		return complex(s.re, s.im), nil
	case Complex64:
		return complex64(complex(s.re, s.im)), nil
	case Int64:
		return s.int64(), nil
	case Int32:
		return int32(s.int64()), nil //nolint:gosec // G115: wrap-around is the defined behaviour.
	case Int16:
		return int16(s.int64()), nil //nolint:gosec // G115: wrap-around is the defined behaviour.
	case Int8:
		return int8(s.int64()), nil //nolint:gosec // G115: wrap-around is the defined behaviour.
	case Uint64:
		return s.uint64(), nil
	case Uint32:
		return uint32(s.uint64()), nil //nolint:gosec // G115: wrap-around is the defined behaviour.
	case Uint16:
		return uint16(s.uint64()), nil //nolint:gosec // G115: wrap-around is the defined behaviour.
	case Uint8, Binary:
		return uint8(s.uint64()), nil //nolint:gosec // G115: wrap-around is the defined behaviour.
	case Uint8c:
		return clamp8(s), nil
	case Bool:
		return s.nonzero(), nil
	}
	panicf("convert: unhandled data type %s", to)
	return nil, nil
}

// MustConvert is like Convert but panics on failure.
func MustConvert(v any, to DataType) any {
	out, err := Convert(v, to)
	if err != nil {
		panic(err)
	}
	return out
}

func clamp8(s scalar) uint8 {
	switch s.class {
	case classSigned:
		return uint8(min(max(s.i, 0), 255)) //nolint:gosec // G115: clamped to range.
	case classUnsigned:
		return uint8(min(s.u, 255)) //nolint:gosec // G115: clamped to range.
	}
	if math.IsNaN(s.re) {
		return 0
	}
	return uint8(math.RoundToEven(min(max(s.re, 0), 255)))
}

// One returns the value one in the Go element type of dt (1.0 for Generic).
func One(dt DataType) any {
	if dt.checked() == Generic {
		return 1.0
	}
	return MustConvert(true, dt)
}

// ConvertTo converts v to the Go type T, following the same rules as Convert with the
// data type Of[T]. Platform int and uint are handled through their fixed-size data
// types.
func ConvertTo[T any](v any) (T, error) {
	var zero T
	if t, ok := v.(T); ok {
		return t, nil
	}
	out, err := Convert(v, Of[T]())
	if err != nil {
		return zero, err
	}
	if t, ok := out.(T); ok {
		return t, nil
	}
	s, _ := decompose(out)
	switch p := any(&zero).(type) {
	case *int:
		*p = int(s.int64())
	case *uint:
		*p = uint(s.uint64())
	default:
		return zero, errors.Wrapf(ErrUnsupportedValue, "%T to %T", v, zero)
	}
	return zero, nil
}
