// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"github.com/born-ml/ndarray/internal/dtype"
	"github.com/born-ml/ndarray/internal/engine"
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/shape"
)

// Make wraps an existing buffer in a view after validating the geometry: the buffer
// must match dt and every reachable position must lie inside it.
//
// Example:
//
//	buf := array.NewSlice(make([]float64, 12))
//	v, err := array.Make(array.Float64, buf, array.Shape{3, 1, 2}, []int{4, 4, 1}, 1,
//		array.RowMajor, array.Flags{})
func Make(dt DataType, buf Buffer, sh Shape, strides []int, offset int, order Order, flags Flags) (*View, error) {
	return ndarray.Make(dt, buf, sh, strides, offset, order, flags)
}

// NewSlice wraps data in a Buffer of the matching data type.
func NewSlice[T any](data []T) *Slice[T] {
	return ndarray.NewSlice(data)
}

// NewSliceOf wraps data in a Buffer of data type dt, which must match T. []uint8
// also serves Uint8c and Binary, and any slice serves Generic.
func NewSliceOf[T any](dt DataType, data []T) (*Slice[T], error) {
	return ndarray.NewSliceOf(dt, data)
}

// NewComplexPacked wraps interleaved real and imaginary parts in a Complex64
// (float32) or Complex128 (float64) Buffer.
func NewComplexPacked[F float32 | float64](data []F) (*ComplexPacked[F], error) {
	return ndarray.NewComplexPacked(data)
}

// Empty allocates a contiguous view. Elements read as zero.
func Empty(sh Shape, opts Options) (*View, error) {
	return ndarray.Empty(sh, opts)
}

// Zeros allocates a contiguous view filled with zeros.
func Zeros(sh Shape, opts Options) (*View, error) {
	return ndarray.Zeros(sh, opts)
}

// Ones allocates a contiguous view filled with ones.
func Ones(sh Shape, opts Options) (*View, error) {
	return ndarray.Ones(sh, opts)
}

// Full allocates a contiguous view filled with value converted to opts.DType.
func Full(sh Shape, value any, opts Options) (*View, error) {
	return ndarray.Full(sh, value, opts)
}

// FromSlice wraps data, without copying, in a contiguous view of the given shape.
//
// Example:
//
//	x, err := array.FromSlice([]int32{1, 2, 3, 4, 5, 6}, array.Shape{2, 3}, array.RowMajor)
func FromSlice[T any](data []T, sh Shape, order Order) (*View, error) {
	return ndarray.FromSlice(data, sh, order)
}

// FromScalar allocates a rank-0 view holding value converted to opts.DType.
func FromScalar(value any, opts Options) (*View, error) {
	return ndarray.FromScalar(value, opts)
}

// Scalar returns a rank-0 view holding v in its own data type.
func Scalar[T any](v T) *View {
	return ndarray.Scalar(v)
}

// EmptyLike allocates a writable contiguous view with the shape and data type of x.
func EmptyLike(x *View) (*View, error) {
	return ndarray.EmptyLike(x)
}

// ZerosLike is EmptyLike with zeroed elements.
func ZerosLike(x *View) (*View, error) {
	return ndarray.ZerosLike(x)
}

// Copy returns a writable contiguous copy of x.
func Copy(x *View) (*View, error) {
	return engine.Copy(x)
}

// Cast returns a contiguous copy of x converted to dt if casting allows the
// conversion.
func Cast(x *View, dt DataType, casting Casting) (*View, error) {
	return engine.Cast(x, dt, casting)
}

// FullLike allocates a view shaped like x, filled with value in data type dt.
func FullLike(x *View, value any, dt DataType) (*View, error) {
	return ndarray.Full(x.Shape(), value, ndarray.Options{
		DType: dt,
		Order: shape.PreferredOrder(x.DimStrides()),
	})
}

// ParseDType parses a data type name such as "float32" or "uint8c".
func ParseDType(name string) (DataType, error) {
	return dtype.Parse(name)
}
