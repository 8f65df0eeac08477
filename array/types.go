// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"github.com/born-ml/ndarray/internal/dtype"
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/shape"
)

// View is a strided view over a flat Buffer.
//
// View provides:
//   - Geometry via Shape(), Strides(), Offset(), Order(), Rank()
//   - Element access via At(), SetAt(), Iget(), Iset()
//   - Serialization via MarshalJSON()
type View = ndarray.View

// Buffer is the element store behind a View.
type Buffer = ndarray.Buffer

// Slice is a Buffer backed by a Go slice.
type Slice[T any] = ndarray.Slice[T]

// ComplexPacked is a Buffer of interleaved real and imaginary parts.
type ComplexPacked[F float32 | float64] = ndarray.ComplexPacked[F]

// Options configure the factories. The zero value creates writable float64
// row-major views that reject out-of-bounds indices.
type Options = ndarray.Options

// Flags are the access settings of a view.
type Flags = ndarray.Flags

// Range selects positions along one dimension for SliceView.
type Range = ndarray.Range

// Shape lists dimension sizes.
type Shape = shape.Shape

// Order is a memory order.
type Order = shape.Order

// IndexMode selects how out-of-bounds indices are handled.
type IndexMode = shape.IndexMode

// Loop is a dimension ordering produced by LoopOrder.
type Loop = shape.Loop

// DataType identifies an element type.
type DataType = dtype.DataType

// Casting is a casting mode.
type Casting = dtype.Casting

// Policy names the rule selecting an output data type.
type Policy = dtype.Policy

// ParallelConfig controls concurrent reductions.
type ParallelConfig = parallel.Config

// Memory orders.
const (
	RowMajor    = shape.RowMajor
	ColumnMajor = shape.ColumnMajor
)

// Index modes.
const (
	Throw     = shape.Throw
	Clamp     = shape.Clamp
	Wrap      = shape.Wrap
	Normalize = shape.Normalize
)

// Data types.
const (
	Float64    = dtype.Float64
	Float32    = dtype.Float32
	Float16    = dtype.Float16
	Complex128 = dtype.Complex128
	Complex64  = dtype.Complex64
	Int64      = dtype.Int64
	Int32      = dtype.Int32
	Int16      = dtype.Int16
	Int8       = dtype.Int8
	Uint64     = dtype.Uint64
	Uint32     = dtype.Uint32
	Uint16     = dtype.Uint16
	Uint8      = dtype.Uint8
	Uint8c     = dtype.Uint8c
	Bool       = dtype.Bool
	Generic    = dtype.Generic
	Binary     = dtype.Binary
)

// Casting modes.
const (
	CastNone       = dtype.CastNone
	CastEquiv      = dtype.CastEquiv
	CastSafe       = dtype.CastSafe
	CastMostlySafe = dtype.CastMostlySafe
	CastSameKind   = dtype.CastSameKind
	CastUnsafe     = dtype.CastUnsafe
)

// Output data type policies.
const (
	PolicyNone                 = dtype.PolicyNone
	PolicySame                 = dtype.PolicySame
	PolicyPromoted             = dtype.PolicyPromoted
	PolicyOutput               = dtype.PolicyOutput
	PolicyAccumulation         = dtype.PolicyAccumulation
	PolicyReal                 = dtype.PolicyReal
	PolicyFloatingPoint        = dtype.PolicyFloatingPoint
	PolicyRealFloatingPoint    = dtype.PolicyRealFloatingPoint
	PolicyComplexFloatingPoint = dtype.PolicyComplexFloatingPoint
	PolicyInteger              = dtype.PolicyInteger
	PolicySignedInteger        = dtype.PolicySignedInteger
	PolicyUnsignedInteger      = dtype.PolicyUnsignedInteger
	PolicyNumeric              = dtype.PolicyNumeric
)

// Errors returned by the package. Test with errors.Is.
var (
	ErrInvalidShape       = shape.ErrInvalidShape
	ErrRankMismatch       = shape.ErrRankMismatch
	ErrIncompatibleShapes = shape.ErrIncompatibleShapes
	ErrDimensionIndex     = shape.ErrDimensionIndex
	ErrDuplicateDims      = shape.ErrDuplicateDims
	ErrIndexOutOfBounds   = shape.ErrIndexOutOfBounds
	ErrShapeMismatch      = ndarray.ErrShapeMismatch
	ErrBufferTooSmall     = ndarray.ErrBufferTooSmall
	ErrInvalidOffset      = ndarray.ErrInvalidOffset
	ErrDTypeMismatch      = ndarray.ErrDTypeMismatch
	ErrReadOnly           = ndarray.ErrReadOnly
	ErrUnknownDType       = dtype.ErrUnknownDType
	ErrNoPromotion        = dtype.ErrNoPromotion
	ErrInvalidPolicy      = dtype.ErrInvalidPolicy
	ErrInvalidCasting     = dtype.ErrInvalidCasting
	ErrUnsafeCast         = dtype.ErrUnsafeCast
)

// BroadcastError describes two shapes that do not broadcast.
type BroadcastError = shape.BroadcastError

// PolicyError reports an unrecognized policy.
type PolicyError = dtype.PolicyError

// CastError reports a conversion refused by a casting mode.
type CastError = dtype.CastError
