package engine

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/shape"
)

// Accumulate folds every element of x into an accumulator starting at init.
// Elements are visited in loop order, not logical order.
//
// Example:
//
//	sum := engine.Accumulate(x, 0.0, func(acc, v float64) float64 { return acc + v })
func Accumulate[T, A any](x *ndarray.View, init A, fn func(acc A, v T) A) A {
	read := ndarray.Reader[T](x.Buffer())
	acc := init
	planViews(x).walk(func(pos []int) bool {
		acc = fn(acc, read(pos[0]))
		return true
	})
	return acc
}

// ReduceAll stores kernel(x) into y, which must hold exactly one element. The kernel
// receives a read-only view of x.
func ReduceAll[U any](x, y *ndarray.View, kernel func(*ndarray.View) U) error {
	if err := checkOutput("reduce", y); err != nil {
		return err
	}
	if err := checkElem[U]("reduce", y); err != nil {
		return err
	}
	if y.NumElements() != 1 {
		return fmt.Errorf("reduce: %w: output shape %v does not hold a single element",
			ndarray.ErrShapeMismatch, []int(y.Shape()))
	}
	ndarray.Writer[U](y.Buffer())(y.Offset(), kernel(ndarray.ReadOnly(x)))
	return nil
}

// Reduce is ReduceAll when dims is nil and ReduceDims otherwise. y must have the shape
// ReduceDims expects in both cases.
func Reduce[U any](x, y *ndarray.View, dims []int, keepdims bool, kernel func(*ndarray.View) U, cfg parallel.Config) error {
	if dims != nil {
		return ReduceDims(x, y, dims, keepdims, kernel, cfg)
	}
	want := shape.ReducedShape(x.Shape(), shape.AllDims(x.Rank()), keepdims)
	if !want.Equal(y.Shape()) {
		return fmt.Errorf("reduce: %w: output shape %v, expected %v",
			ndarray.ErrShapeMismatch, []int(y.Shape()), []int(want))
	}
	return ReduceAll(x, y, kernel)
}

// ReduceDims reduces x over dims and stores one kernel result per remaining position
// into y.
//
// For every index of the dimensions not in dims, kernel receives a read-only window
// view of x over dims. A nil dims reduces every dimension; an empty non-nil dims
// reduces none, handing rank-0 windows to kernel. y must have the shape of x with dims
// removed, or set to 1 when keepdims is true.
//
// With cfg.Enabled, output positions are computed concurrently: kernel must then be
// safe for concurrent use and y must not overlap x.
func ReduceDims[U any](x, y *ndarray.View, dims []int, keepdims bool, kernel func(*ndarray.View) U, cfg parallel.Config) error {
	if err := checkOutput("reduce", y); err != nil {
		return err
	}
	if err := checkElem[U]("reduce", y); err != nil {
		return err
	}
	rank := x.Rank()
	reduced := shape.AllDims(rank)
	if dims != nil {
		var err error
		if reduced, err = shape.NormalizeDims(dims, rank); err != nil {
			return fmt.Errorf("reduce: %w", err)
		}
	}
	want := shape.ReducedShape(x.Shape(), reduced, keepdims)
	if !want.Equal(y.Shape()) {
		return fmt.Errorf("reduce: %w: output shape %v, expected %v",
			ndarray.ErrShapeMismatch, []int(y.Shape()), []int(want))
	}

	kept := shape.Complement(reduced, rank)
	xShape, xStrides := x.Shape(), x.DimStrides()
	outer := make(shape.Shape, len(kept))
	outerStrides := make([]int, len(kept))
	for i, d := range kept {
		outer[i] = xShape[d]
		outerStrides[i] = xStrides[d]
	}
	yStrides := y.DimStrides()
	if keepdims {
		yStrides = make([]int, len(kept))
		for i, d := range kept {
			yStrides[i] = y.DimStrides()[d]
		}
	}

	p := newPlan(outer, [][]int{yStrides, outerStrides}, []int{y.Offset(), x.Offset()})
	write := ndarray.Writer[U](y.Buffer())
	if !cfg.Enabled {
		p.walk(func(pos []int) bool {
			write(pos[0], kernel(ndarray.Window(x, reduced, pos[1])))
			return true
		})
		return nil
	}

	targets := make([][2]int, 0, outer.NumElements())
	p.walk(func(pos []int) bool {
		targets = append(targets, [2]int{pos[0], pos[1]})
		return true
	})
	parallel.For(len(targets), func(i int) {
		t := targets[i]
		write(t[0], kernel(ndarray.Window(x, reduced, t[1])))
	}, cfg)
	return nil
}
