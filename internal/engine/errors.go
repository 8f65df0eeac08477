package engine

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/dtype"
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/pkg/errors"
)

// checkOutput rejects read-only outputs.
func checkOutput(op string, y *ndarray.View) error {
	if y.ReadOnly() {
		return fmt.Errorf("%s: output: %w", op, ndarray.ErrReadOnly)
	}
	return nil
}

// checkShapes requires every input to have the shape of y. The engine does not
// broadcast; callers broadcast first.
func checkShapes(op string, y *ndarray.View, xs ...*ndarray.View) error {
	for i, x := range xs {
		if !x.Shape().Equal(y.Shape()) {
			return fmt.Errorf("%s: %w: input %d has shape %v, output has shape %v",
				op, ndarray.ErrShapeMismatch, i, []int(x.Shape()), []int(y.Shape()))
		}
	}
	return nil
}

// checkElem rejects outputs whose buffer cannot hold values of type U, such as a
// Generic buffer over []string written with float64 results. Values of interface
// type U are only known per element and are not checked.
func checkElem[U any](op string, y *ndarray.View) error {
	var zero U
	if any(zero) == nil {
		return nil
	}
	if err := ndarray.CanStore(y.Buffer(), zero); err != nil {
		return fmt.Errorf("%s: output: %w", op, err)
	}
	return nil
}

// checkValues reports the first element of x that y's buffer cannot hold. Conversions
// between non-generic data types always succeed, so only Generic operands are walked.
func checkValues(x, y *ndarray.View) error {
	if x.DType() != dtype.Generic && y.DType() != dtype.Generic {
		return nil
	}
	src, dst := x.Buffer(), y.Buffer()
	var err error
	planViews(x).walk(func(pos []int) bool {
		err = ndarray.CanStore(dst, src.Get(pos[0]))
		return err == nil
	})
	return err
}

// panicf panics with the formatted description. Only used for bugs in the engine
// itself, never for invalid arguments.
func panicf(format string, args ...any) {
	panic(errors.Errorf(format, args...))
}
