package shape

import "errors"

// Common errors.
var (
	ErrInvalidShape       = errors.New("shape: invalid shape")
	ErrRankMismatch       = errors.New("shape: rank mismatch")
	ErrIncompatibleShapes = errors.New("shape: shapes not compatible for broadcasting")
	ErrDimensionIndex     = errors.New("shape: dimension index out of range")
	ErrDuplicateDims      = errors.New("shape: duplicate dimension indices")
	ErrIndexOutOfBounds   = errors.New("shape: index out of bounds")
	ErrInvalidMode        = errors.New("shape: invalid index mode")
	ErrInvalidOrder       = errors.New("shape: invalid order")
	ErrOverflow           = errors.New("shape: buffer position overflows int")
)
