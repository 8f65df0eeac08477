// Package engine applies callbacks element-wise over strided views and reduces views
// along dimensions.
//
// All views passed to one call must already share a shape; the engine never
// broadcasts. Exported functions validate their arguments before the first write, so
// a failed call leaves the output untouched. Traversal follows shape.LoopOrder with the
// output as the primary array; the order of callback invocations is therefore not the
// logical element order, except for ForEach and Find.
//
// Callbacks run on the calling goroutine unless a reduction is given an enabled
// parallel.Config. A panicking callback propagates to the caller.
package engine

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// each visits every element of an element-wise plan, tiling the two innermost loops
// when a secondary array runs against its memory order.
func each(p *plan, elemSize int, fn func(pos []int)) {
	if edge := blockEdge(elemSize); p.needsBlocking(edge) {
		p.walkBlocked(edge, fn)
		return
	}
	p.walk(func(pos []int) bool {
		fn(pos)
		return true
	})
}

// Nullary stores fn() into every element of y.
func Nullary[T any](y *ndarray.View, fn func() T) error {
	if err := checkOutput("nullary", y); err != nil {
		return err
	}
	if err := checkElem[T]("nullary", y); err != nil {
		return err
	}
	write := ndarray.Writer[T](y.Buffer())
	each(planViews(y), y.DType().Size(), func(pos []int) {
		write(pos[0], fn())
	})
	return nil
}

// Fill stores v into every element of y.
func Fill[T any](y *ndarray.View, v T) error {
	if err := checkOutput("fill", y); err != nil {
		return err
	}
	if err := ndarray.CanStore(y.Buffer(), v); err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	write := ndarray.Writer[T](y.Buffer())
	each(planViews(y), y.DType().Size(), func(pos []int) {
		write(pos[0], v)
	})
	return nil
}

// Unary stores fn(x) into y element-wise.
//
// Example:
//
//	err := engine.Unary(x, y, func(v float64) float64 { return v * v })
func Unary[T, U any](x, y *ndarray.View, fn func(T) U) error {
	if err := checkOutput("unary", y); err != nil {
		return err
	}
	if err := checkShapes("unary", y, x); err != nil {
		return err
	}
	if err := checkElem[U]("unary", y); err != nil {
		return err
	}
	read := ndarray.Reader[T](x.Buffer())
	write := ndarray.Writer[U](y.Buffer())
	each(planViews(y, x), y.DType().Size(), func(pos []int) {
		write(pos[0], fn(read(pos[1])))
	})
	return nil
}

// Binary stores fn(x1, x2) into y element-wise.
func Binary[T1, T2, U any](x1, x2, y *ndarray.View, fn func(T1, T2) U) error {
	if err := checkOutput("binary", y); err != nil {
		return err
	}
	if err := checkShapes("binary", y, x1, x2); err != nil {
		return err
	}
	if err := checkElem[U]("binary", y); err != nil {
		return err
	}
	r1 := ndarray.Reader[T1](x1.Buffer())
	r2 := ndarray.Reader[T2](x2.Buffer())
	write := ndarray.Writer[U](y.Buffer())
	each(planViews(y, x1, x2), y.DType().Size(), func(pos []int) {
		write(pos[0], fn(r1(pos[1]), r2(pos[2])))
	})
	return nil
}

// Ternary stores fn(x1, x2, x3) into y element-wise.
func Ternary[T1, T2, T3, U any](x1, x2, x3, y *ndarray.View, fn func(T1, T2, T3) U) error {
	if err := checkOutput("ternary", y); err != nil {
		return err
	}
	if err := checkShapes("ternary", y, x1, x2, x3); err != nil {
		return err
	}
	if err := checkElem[U]("ternary", y); err != nil {
		return err
	}
	r1 := ndarray.Reader[T1](x1.Buffer())
	r2 := ndarray.Reader[T2](x2.Buffer())
	r3 := ndarray.Reader[T3](x3.Buffer())
	write := ndarray.Writer[U](y.Buffer())
	each(planViews(y, x1, x2, x3), y.DType().Size(), func(pos []int) {
		write(pos[0], fn(r1(pos[1]), r2(pos[2]), r3(pos[3])))
	})
	return nil
}

// Quaternary stores fn(x1, x2, x3, x4) into y element-wise.
func Quaternary[T1, T2, T3, T4, U any](x1, x2, x3, x4, y *ndarray.View, fn func(T1, T2, T3, T4) U) error {
	if err := checkOutput("quaternary", y); err != nil {
		return err
	}
	if err := checkShapes("quaternary", y, x1, x2, x3, x4); err != nil {
		return err
	}
	if err := checkElem[U]("quaternary", y); err != nil {
		return err
	}
	r1 := ndarray.Reader[T1](x1.Buffer())
	r2 := ndarray.Reader[T2](x2.Buffer())
	r3 := ndarray.Reader[T3](x3.Buffer())
	r4 := ndarray.Reader[T4](x4.Buffer())
	write := ndarray.Writer[U](y.Buffer())
	each(planViews(y, x1, x2, x3, x4), y.DType().Size(), func(pos []int) {
		write(pos[0], fn(r1(pos[1]), r2(pos[2]), r3(pos[3]), r4(pos[4])))
	})
	return nil
}

// Quinary stores fn(x1, x2, x3, x4, x5) into y element-wise.
func Quinary[T1, T2, T3, T4, T5, U any](x1, x2, x3, x4, x5, y *ndarray.View, fn func(T1, T2, T3, T4, T5) U) error {
	if err := checkOutput("quinary", y); err != nil {
		return err
	}
	if err := checkShapes("quinary", y, x1, x2, x3, x4, x5); err != nil {
		return err
	}
	if err := checkElem[U]("quinary", y); err != nil {
		return err
	}
	r1 := ndarray.Reader[T1](x1.Buffer())
	r2 := ndarray.Reader[T2](x2.Buffer())
	r3 := ndarray.Reader[T3](x3.Buffer())
	r4 := ndarray.Reader[T4](x4.Buffer())
	r5 := ndarray.Reader[T5](x5.Buffer())
	write := ndarray.Writer[U](y.Buffer())
	each(planViews(y, x1, x2, x3, x4, x5), y.DType().Size(), func(pos []int) {
		write(pos[0], fn(r1(pos[1]), r2(pos[2]), r3(pos[3]), r4(pos[4]), r5(pos[5])))
	})
	return nil
}

// NAry stores fn(args) into y element-wise, where args holds one element of each input
// in its buffer's Go type. args is reused between calls. The result is converted to
// y's data type; a result that does not convert panics like a panicking callback.
func NAry(inputs []*ndarray.View, y *ndarray.View, fn func(args []any) any) error {
	if err := checkOutput("n-ary", y); err != nil {
		return err
	}
	if err := checkShapes("n-ary", y, inputs...); err != nil {
		return err
	}
	views := append([]*ndarray.View{y}, inputs...)
	bufs := make([]ndarray.Buffer, len(inputs))
	for i, x := range inputs {
		bufs[i] = x.Buffer()
	}
	out := y.Buffer()
	args := make([]any, len(inputs))
	each(planViews(views...), y.DType().Size(), func(pos []int) {
		for i, b := range bufs {
			args[i] = b.Get(pos[i+1])
		}
		out.Set(pos[0], fn(args))
	})
	return nil
}

// ForEach calls fn with every element of x and its index, in the row-major logical
// order of x. idx is reused between calls.
func ForEach[T any](x *ndarray.View, fn func(v T, idx []int)) {
	read := ndarray.Reader[T](x.Buffer())
	indexedPlan(x).walkIndexed(func(pos, idx []int) bool {
		fn(read(pos[0]), idx)
		return true
	})
}

// indexedPlan returns a plan over x that visits elements in row-major logical order.
func indexedPlan(x *ndarray.View) *plan {
	rank := x.Rank()
	keys := make([]int, rank)
	for d := range keys {
		keys[d] = rank - d
	}
	p := newPlan(x.Shape(), [][]int{keys, x.DimStrides()}, []int{0, x.Offset()})
	p.strides = p.strides[1:]
	p.offsets = p.offsets[1:]
	return p
}
