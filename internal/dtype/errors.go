package dtype

import (
	"fmt"

	"github.com/pkg/errors"
)

// Common errors.
var (
	ErrUnknownDType     = errors.New("dtype: unknown data type")
	ErrNoPromotion      = errors.New("dtype: no common promotion data type")
	ErrInvalidPolicy    = errors.New("dtype: invalid casting policy")
	ErrInvalidCasting   = errors.New("dtype: invalid casting mode")
	ErrUnsafeCast       = errors.New("dtype: cast not allowed")
	ErrUnsupportedValue = errors.New("dtype: value cannot be converted")
)

// PolicyError reports a casting policy value outside the known vocabulary.
type PolicyError struct {
	Policy Policy
}

// Error implements the error interface.
func (e *PolicyError) Error() string {
	return fmt.Sprintf("%v: %q (expected one of %v or a data type name)", ErrInvalidPolicy, string(e.Policy), policies)
}

// Unwrap returns ErrInvalidPolicy.
func (e *PolicyError) Unwrap() error {
	return ErrInvalidPolicy
}

// CastError reports a cast refused by a casting mode.
type CastError struct {
	From, To DataType
	Casting  Casting
}

// Error implements the error interface.
func (e *CastError) Error() string {
	return fmt.Sprintf("%v: cannot cast %s to %s under %q casting", ErrUnsafeCast, e.From, e.To, string(e.Casting))
}

// Unwrap returns ErrUnsafeCast.
func (e *CastError) Unwrap() error {
	return ErrUnsafeCast
}
