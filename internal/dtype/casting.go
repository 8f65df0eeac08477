package dtype

import "github.com/pkg/errors"

// Casting names how permissive a data type conversion may be.
type Casting string

// Casting modes, from strictest to most permissive.
const (
	CastNone       Casting = "none"
	CastEquiv      Casting = "equiv"
	CastSafe       Casting = "safe"
	CastMostlySafe Casting = "mostly-safe"
	CastSameKind   Casting = "same-kind"
	CastUnsafe     Casting = "unsafe"
)

// ParseCasting validates a casting mode name.
func ParseCasting(s string) (Casting, error) {
	switch c := Casting(s); c {
	case CastNone, CastEquiv, CastSafe, CastMostlySafe, CastSameKind, CastUnsafe:
		return c, nil
	}
	return "", errors.Wrapf(ErrInvalidCasting, "%q", s)
}

// safeCasts lists, per data type, the data types it converts to without loss of
// information. Every list is transitively closed.
var safeCasts = [numDataTypes][]DataType{
	Float64:    {Float64, Complex128, Generic},
	Float32:    {Float32, Float64, Complex64, Complex128, Generic},
	Float16:    {Float16, Float32, Float64, Complex64, Complex128, Generic},
	Complex128: {Complex128, Generic},
	Complex64:  {Complex64, Complex128, Generic},
	Int64:      {Int64, Float64, Complex128, Generic},
	Int32:      {Int32, Int64, Float64, Complex128, Generic},
	Int16:      {Int16, Int32, Int64, Float32, Float64, Complex64, Complex128, Generic},
	Int8:       {Int8, Int16, Int32, Int64, Float32, Float64, Complex64, Complex128, Generic},
	Uint64:     {Uint64, Float64, Complex128, Generic},
	Uint32:     {Uint32, Int64, Uint64, Float64, Complex128, Generic},
	Uint16:     {Uint16, Int32, Int64, Uint32, Uint64, Float32, Float64, Complex64, Complex128, Generic},
	Uint8: {
		Uint8, Uint8c, Int16, Int32, Int64, Uint16, Uint32, Uint64,
		Float32, Float64, Complex64, Complex128, Generic,
	},
	Uint8c: {
		Uint8c, Uint8, Int16, Int32, Int64, Uint16, Uint32, Uint64,
		Float32, Float64, Complex64, Complex128, Generic,
	},
	Bool: {
		Bool, Int8, Int16, Int32, Int64, Uint8, Uint8c, Uint16, Uint32, Uint64,
		Float16, Float32, Float64, Complex64, Complex128, Generic,
	},
	Generic: {Generic},
	Binary:  {Binary},
}

// mostlySafeCasts lists the narrowing floating-point casts allowed in addition to the
// safe ones under CastMostlySafe.
var mostlySafeCasts = [numDataTypes][]DataType{
	Float64:    {Float32, Complex64},
	Complex128: {Complex64},
}

var safeTable, mostlySafeTable [numDataTypes][numDataTypes]bool

func init() {
	for from, tos := range safeCasts {
		for _, to := range tos {
			safeTable[from][to] = true
			mostlySafeTable[from][to] = true
		}
	}
	for from, tos := range mostlySafeCasts {
		for _, to := range tos {
			mostlySafeTable[from][to] = true
		}
	}
}

// SafeCasts returns the data types from can be cast to without loss.
func SafeCasts(from DataType) []DataType {
	return append([]DataType(nil), safeCasts[from.checked()]...)
}

// IsSafeCast reports whether from can be cast to to without loss of information.
func IsSafeCast(from, to DataType) bool {
	return safeTable[from.checked()][to.checked()]
}

// IsMostlySafeCast reports whether from can be cast to to under CastMostlySafe.
func IsMostlySafeCast(from, to DataType) bool {
	return mostlySafeTable[from.checked()][to.checked()]
}

// IsSameKindCast reports whether from can be cast to to under CastSameKind: a safe
// cast, or a cast within the same kind or toward a higher numeric kind
// (bool < unsigned < signed < float < complex).
func IsSameKindCast(from, to DataType) bool {
	if IsSafeCast(from, to) {
		return true
	}
	fk, tk := from.Kind(), to.Kind()
	if fk >= KindGeneric || tk >= KindGeneric {
		return false
	}
	return tk >= fk
}

// IsUnsafeCast reports whether from can be cast to to at all. Only binary data refuses
// conversion from or to other data types.
func IsUnsafeCast(from, to DataType) bool {
	from, to = from.checked(), to.checked()
	return (from == Binary) == (to == Binary)
}

// IsAllowedCast reports whether a cast from from to to is permitted by casting.
func IsAllowedCast(from, to DataType, casting Casting) (bool, error) {
	switch casting {
	case CastNone, CastEquiv:
		return from.checked() == to.checked(), nil
	case CastSafe:
		return IsSafeCast(from, to), nil
	case CastMostlySafe:
		return IsMostlySafeCast(from, to), nil
	case CastSameKind:
		return IsSameKindCast(from, to), nil
	case CastUnsafe:
		return IsUnsafeCast(from, to), nil
	}
	return false, errors.Wrapf(ErrInvalidCasting, "%q", string(casting))
}

// CheckCast returns a *CastError when casting forbids converting from into to.
func CheckCast(from, to DataType, casting Casting) error {
	ok, err := IsAllowedCast(from, to, casting)
	if err != nil {
		return err
	}
	if !ok {
		return &CastError{From: from, To: to, Casting: casting}
	}
	return nil
}

func (dt DataType) checked() DataType {
	if !dt.Valid() {
		panicf("invalid data type %d", int(dt))
	}
	return dt
}
