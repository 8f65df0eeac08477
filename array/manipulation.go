// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/shape"
)

// BroadcastShapes returns the shape every given shape broadcasts to. Incompatible
// shapes fail with a *BroadcastError wrapping ErrIncompatibleShapes.
//
// Example:
//
//	sh, _ := array.BroadcastShapes(array.Shape{8, 1, 6, 1}, array.Shape{7, 1, 5})
//	// sh == [8 7 6 5]
func BroadcastShapes(shapes ...Shape) (Shape, error) {
	return shape.BroadcastShapes(shapes...)
}

// BroadcastTo returns a read-only view of x with the target shape.
func BroadcastTo(x *View, target Shape) (*View, error) {
	return ndarray.BroadcastTo(x, target)
}

// BroadcastArrays broadcasts every view to their common shape.
func BroadcastArrays(xs ...*View) ([]*View, error) {
	return ndarray.BroadcastArrays(xs...)
}

// Transpose permutes the dimensions of x; without perm they are reversed.
func Transpose(x *View, perm ...int) (*View, error) {
	return ndarray.Transpose(x, perm...)
}

// SliceView restricts x to the given ranges, one per leading dimension.
func SliceView(x *View, ranges ...Range) (*View, error) {
	return ndarray.SliceView(x, ranges...)
}

// All selects a whole dimension.
func All() Range { return ndarray.All() }

// Span selects [start, stop) with step 1.
func Span(start, stop int) Range { return ndarray.Span(start, stop) }

// Backward selects a whole dimension in reverse.
func Backward() Range { return ndarray.Backward() }

// Reverse flips the listed dimensions of x, or all of them.
func Reverse(x *View, dims ...int) (*View, error) {
	return ndarray.Reverse(x, dims...)
}

// ExpandDims inserts a size-1 dimension at dim.
func ExpandDims(x *View, dim int) (*View, error) {
	return ndarray.ExpandDims(x, dim)
}

// ReadOnly returns a read-only view sharing x's buffer.
func ReadOnly(x *View) *View {
	return ndarray.ReadOnly(x)
}

// LoopOrder orders the dimensions of sh for traversal, innermost first, by the strides
// of the first stride list.
func LoopOrder(sh Shape, strides ...[]int) Loop {
	return shape.LoopOrder(sh, strides...)
}
