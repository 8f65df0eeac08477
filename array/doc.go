// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides strided n-dimensional arrays over flat buffers.
//
// # Overview
//
// A View is a data type, a flat Buffer, a shape, one stride per dimension and an
// offset. This package provides:
//   - Factories (Zeros, Ones, Full, FromSlice, FromScalar, Copy)
//   - Zero-copy views (BroadcastTo, Transpose, SliceView, Reverse, ExpandDims, ReadOnly)
//   - Element-wise application (Map, Map2, Fill, Assign, ForEach)
//   - Reductions and predicates over all or some dimensions (Reduce, Every, Some,
//     CountIf, Find)
//   - Data type promotion and output data type policies (Promote, ResolveDType)
//
// # Basic Usage
//
//	x, _ := array.FromSlice([]float64{1, -2, 3, 4, 5, -6}, array.Shape{2, 3}, array.RowMajor)
//
//	// One bool per row: does the row hold a negative value?
//	neg, _ := array.Any(x, func(v float64) bool { return v < 0 }, array.ReduceOptions{Dims: []int{1}})
//
//	// Element-wise with broadcasting: (2, 3) + (3,) -> (2, 3)
//	b, _ := array.FromSlice([]float64{10, 20, 30}, array.Shape{3}, array.RowMajor)
//	sum, _ := array.Map2(x, b, func(p, q float64) float64 { return p + q })
//
// # Broadcasting
//
// Shapes are aligned on their trailing dimensions. Sizes must match or be 1; a size-1
// dimension is stretched by giving it stride 0. Broadcast views are read-only.
//
// # Data Types
//
// Every View carries a DataType: float64 (the default), float32, float16,
// complex128, complex64, int64 to int8, uint64 to uint8, uint8c (clamped), bool,
// generic (any Go value) and binary. Conversions between data types follow the
// casting modes none, equiv, safe, mostly-safe, same-kind and unsafe.
//
// # Aliasing
//
// Views created by BroadcastTo, Transpose, SliceView, Reverse, ExpandDims and ReadOnly
// share the buffer of their source. Nothing is locked; copy before mutating when
// several goroutines hold aliasing views.
package array
