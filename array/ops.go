// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/dtype"
	"github.com/born-ml/ndarray/internal/engine"
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/shape"
)

// ReduceOptions configure reductions and predicates.
//
// Dims lists the reduced dimensions; nil reduces all of them and an empty non-nil
// slice reduces none. KeepDims keeps reduced dimensions with size 1. Policy selects
// the output data type from the input data type and the operation's default output
// data type; the empty policy keeps the default. Parallel enables concurrent
// evaluation of output positions; callbacks must then be safe for concurrent use.
type ReduceOptions struct {
	Dims     []int
	KeepDims bool
	Policy   Policy
	Parallel ParallelConfig
}

// Assign copies x into y, broadcasting x to y's shape and converting elements to y's
// data type. casting must allow the conversion.
func Assign(x, y *View, casting Casting) error {
	bx, err := ndarray.BroadcastTo(x, y.Shape())
	if err != nil {
		return fmt.Errorf("assign: %w", err)
	}
	return engine.Assign(bx, y, casting)
}

// Fill converts value to y's data type and stores it into every element of y.
func Fill(y *View, value any) error {
	v, err := dtype.Convert(value, y.DType())
	if err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	return engine.Fill(y, v)
}

// Map returns a new view holding fn applied to every element of x. The result's data
// type is the one matching U and its memory order follows x.
//
// Example:
//
//	sq, err := array.Map(x, func(v float64) float64 { return v * v })
func Map[T, U any](x *View, fn func(T) U) (*View, error) {
	y, err := ndarray.Empty(x.Shape(), ndarray.Options{
		DType: dtype.Of[U](),
		Order: shape.PreferredOrder(x.DimStrides()),
	})
	if err != nil {
		return nil, fmt.Errorf("map: %w", err)
	}
	if err := engine.Unary(x, y, fn); err != nil {
		return nil, err
	}
	return y, nil
}

// mapOutput broadcasts xs to their common shape and allocates an output of data type
// dt whose memory order follows the inputs.
func mapOutput(op string, dt DataType, xs ...*View) ([]*View, *View, error) {
	bs, err := ndarray.BroadcastArrays(xs...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	strides := make([][]int, len(xs))
	for i, x := range xs {
		strides[i] = x.DimStrides()
	}
	y, err := ndarray.Empty(bs[0].Shape(), ndarray.Options{DType: dt, Order: shape.PreferredOrder(strides...)})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	return bs, y, nil
}

// Map2 returns a new view holding fn applied to the elements of x1 and x2 after
// broadcasting them to their common shape.
func Map2[T1, T2, U any](x1, x2 *View, fn func(T1, T2) U) (*View, error) {
	xs, y, err := mapOutput("map2", dtype.Of[U](), x1, x2)
	if err != nil {
		return nil, err
	}
	if err := engine.Binary(xs[0], xs[1], y, fn); err != nil {
		return nil, err
	}
	return y, nil
}

// Map3 is Map2 for three operands.
//
// Example:
//
//	// Element-wise select.
//	out, err := array.Map3(cond, a, b, func(c bool, p, q float64) float64 {
//		if c {
//			return p
//		}
//		return q
//	})
func Map3[T1, T2, T3, U any](x1, x2, x3 *View, fn func(T1, T2, T3) U) (*View, error) {
	xs, y, err := mapOutput("map3", dtype.Of[U](), x1, x2, x3)
	if err != nil {
		return nil, err
	}
	if err := engine.Ternary(xs[0], xs[1], xs[2], y, fn); err != nil {
		return nil, err
	}
	return y, nil
}

// Map4 is Map2 for four operands.
func Map4[T1, T2, T3, T4, U any](x1, x2, x3, x4 *View, fn func(T1, T2, T3, T4) U) (*View, error) {
	xs, y, err := mapOutput("map4", dtype.Of[U](), x1, x2, x3, x4)
	if err != nil {
		return nil, err
	}
	if err := engine.Quaternary(xs[0], xs[1], xs[2], xs[3], y, fn); err != nil {
		return nil, err
	}
	return y, nil
}

// Map5 is Map2 for five operands.
func Map5[T1, T2, T3, T4, T5, U any](x1, x2, x3, x4, x5 *View, fn func(T1, T2, T3, T4, T5) U) (*View, error) {
	xs, y, err := mapOutput("map5", dtype.Of[U](), x1, x2, x3, x4, x5)
	if err != nil {
		return nil, err
	}
	if err := engine.Quinary(xs[0], xs[1], xs[2], xs[3], xs[4], y, fn); err != nil {
		return nil, err
	}
	return y, nil
}

// MapN applies fn to any number of broadcast operands. args holds one element of each
// operand and is reused between calls. The output has data type dt unless policy is
// set, in which case ResolveDType selects it from the operands and dt. A result that
// does not convert to the output data type panics.
func MapN(xs []*View, dt DataType, policy Policy, fn func(args []any) any) (*View, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("mapn: %w: no operands", ErrShapeMismatch)
	}
	if policy != "" {
		in := make([]DataType, len(xs))
		for i, x := range xs {
			in[i] = x.DType()
		}
		var err error
		if dt, err = ResolveDType(in, dt, policy); err != nil {
			return nil, fmt.Errorf("mapn: %w", err)
		}
	}
	bs, y, err := mapOutput("mapn", dt, xs...)
	if err != nil {
		return nil, err
	}
	if err := engine.NAry(bs, y, fn); err != nil {
		return nil, err
	}
	return y, nil
}

// Generate allocates a view of shape sh and fills it with successive results of fn.
// The order of the calls is unspecified.
func Generate[U any](sh Shape, opts Options, fn func() U) (*View, error) {
	y, err := ndarray.Empty(sh, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	if err := engine.Nullary(y, fn); err != nil {
		return nil, err
	}
	return y, nil
}

// MapInto stores fn applied to the elements of x into y, broadcasting x to y's shape.
func MapInto[T, U any](x, y *View, fn func(T) U) error {
	bx, err := ndarray.BroadcastTo(x, y.Shape())
	if err != nil {
		return fmt.Errorf("map: %w", err)
	}
	return engine.Unary(bx, y, fn)
}

// ForEach calls fn with every element of x and its index, in row-major logical order.
// idx is reused between calls.
func ForEach[T any](x *View, fn func(v T, idx []int)) {
	engine.ForEach(x, fn)
}

// Reduce applies kernel to every window of x over opts.Dims and returns the results.
// out is the default output data type; opts.Policy may select another one.
//
// Example:
//
//	// Row sums of a (2, 3) float64 view, shape (2,).
//	sums, err := array.Reduce(x, func(w *array.View) float64 {
//		return array.Accumulate(w, 0.0, func(acc, v float64) float64 { return acc + v })
//	}, array.Float64, array.ReduceOptions{Dims: []int{1}})
func Reduce[U any](x *View, kernel func(*View) U, out DataType, opts ReduceOptions) (*View, error) {
	return reduceWith(x, out, opts, func(y *View) error {
		return engine.Reduce(x, y, opts.Dims, opts.KeepDims, kernel, opts.Parallel)
	})
}

// Accumulate folds every element of x into an accumulator starting at init.
func Accumulate[T, A any](x *View, init A, fn func(acc A, v T) A) A {
	return engine.Accumulate(x, init, fn)
}

// reduceWith allocates the output of a reduction of x and fills it with run.
func reduceWith(x *View, out DataType, opts ReduceOptions, run func(y *View) error) (*View, error) {
	dt := out
	if opts.Policy != "" {
		var err error
		dt, err = dtype.Resolve([]DataType{x.DType()}, out, opts.Policy, dtype.DefaultConfig())
		if err != nil {
			return nil, fmt.Errorf("reduce: %w", err)
		}
	}
	dims := shape.AllDims(x.Rank())
	if opts.Dims != nil {
		var err error
		if dims, err = shape.NormalizeDims(opts.Dims, x.Rank()); err != nil {
			return nil, fmt.Errorf("reduce: %w", err)
		}
	}
	y, err := ndarray.Empty(shape.ReducedShape(x.Shape(), dims, opts.KeepDims), ndarray.Options{DType: dt})
	if err != nil {
		return nil, fmt.Errorf("reduce: %w", err)
	}
	if err := run(y); err != nil {
		return nil, err
	}
	return y, nil
}

// Every reports, per window of x over opts.Dims, whether all elements satisfy pred.
// Empty windows satisfy every predicate.
func Every[T any](x *View, pred func(T) bool, opts ReduceOptions) (*View, error) {
	return reduceWith(x, dtype.Bool, opts, func(y *View) error {
		return engine.EveryDims(x, y, opts.Dims, opts.KeepDims, pred, opts.Parallel)
	})
}

// Some reports, per window of x over opts.Dims, whether at least n elements satisfy
// pred.
func Some[T any](x *View, n int, pred func(T) bool, opts ReduceOptions) (*View, error) {
	return reduceWith(x, dtype.Bool, opts, func(y *View) error {
		return engine.SomeDims(x, y, opts.Dims, opts.KeepDims, n, pred, opts.Parallel)
	})
}

// Any reports, per window of x over opts.Dims, whether some element satisfies pred.
//
// Example:
//
//	// One bool per row.
//	neg, err := array.Any(x, func(v float64) bool { return v < 0 }, array.ReduceOptions{Dims: []int{1}})
func Any[T any](x *View, pred func(T) bool, opts ReduceOptions) (*View, error) {
	return reduceWith(x, dtype.Bool, opts, func(y *View) error {
		return engine.AnyDims(x, y, opts.Dims, opts.KeepDims, pred, opts.Parallel)
	})
}

// None reports, per window of x over opts.Dims, whether no element satisfies pred.
func None[T any](x *View, pred func(T) bool, opts ReduceOptions) (*View, error) {
	return reduceWith(x, dtype.Bool, opts, func(y *View) error {
		return engine.NoneDims(x, y, opts.Dims, opts.KeepDims, pred, opts.Parallel)
	})
}

// CountIf counts, per window of x over opts.Dims, the elements satisfying pred. The
// default output data type is int64.
func CountIf[T any](x *View, pred func(T) bool, opts ReduceOptions) (*View, error) {
	return reduceWith(x, dtype.DefaultConfig().Index, opts, func(y *View) error {
		return engine.CountIfDims(x, y, opts.Dims, opts.KeepDims, pred, opts.Parallel)
	})
}

// Find returns the first element of x in row-major logical order that satisfies
// pred, with its index. ok is false when nothing matches.
func Find[T any](x *View, pred func(T) bool) (v T, idx []int, ok bool) {
	return engine.Find(x, pred)
}
