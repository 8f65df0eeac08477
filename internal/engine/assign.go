package engine

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/dtype"
	"github.com/born-ml/ndarray/internal/ndarray"
)

// Assign copies x into y, converting elements to y's data type. The conversion must be
// allowed by casting. x and y may be the same view but must not otherwise overlap.
func Assign(x, y *ndarray.View, casting dtype.Casting) error {
	if err := checkOutput("assign", y); err != nil {
		return err
	}
	if err := checkShapes("assign", y, x); err != nil {
		return err
	}
	if err := dtype.CheckCast(x.DType(), y.DType(), casting); err != nil {
		return fmt.Errorf("assign: %w", err)
	}
	if err := checkValues(x, y); err != nil {
		return fmt.Errorf("assign: %w", err)
	}
	src, dst := x.Buffer(), y.Buffer()
	each(planViews(y, x), y.DType().Size(), func(pos []int) {
		dst.Set(pos[0], src.Get(pos[1]))
	})
	return nil
}

// Copy returns a writable contiguous copy of x with the same data type. The memory
// order follows x's strides.
func Copy(x *ndarray.View) (*ndarray.View, error) {
	out, err := ndarray.EmptyLike(x)
	if err != nil {
		return nil, fmt.Errorf("copy: %w", err)
	}
	if err := Assign(x, out, dtype.CastNone); err != nil {
		return nil, err
	}
	return out, nil
}

// Cast returns a contiguous copy of x converted to dt, if casting allows it.
func Cast(x *ndarray.View, dt dtype.DataType, casting dtype.Casting) (*ndarray.View, error) {
	if err := dtype.CheckCast(x.DType(), dt, casting); err != nil {
		return nil, fmt.Errorf("cast: %w", err)
	}
	flags := x.Flags()
	out, err := ndarray.Empty(x.Shape(), ndarray.Options{
		DType:   dt,
		Order:   x.Order(),
		Mode:    flags.Mode,
		Submode: flags.Submode,
	})
	if err != nil {
		return nil, fmt.Errorf("cast: %w", err)
	}
	if err := Assign(x, out, dtype.CastUnsafe); err != nil {
		return nil, err
	}
	return out, nil
}
