package ndarray

import "errors"

// Construction and access errors.
var (
	ErrBufferTooSmall = errors.New("ndarray: buffer too small for view")
	ErrInvalidOffset  = errors.New("ndarray: view addresses a negative buffer position")
	ErrDTypeMismatch  = errors.New("ndarray: data type mismatch")
	ErrShapeMismatch  = errors.New("ndarray: shape mismatch")
	ErrReadOnly       = errors.New("ndarray: view is read-only")
)
