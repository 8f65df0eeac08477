package ndarray

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/dtype"
	"github.com/born-ml/ndarray/internal/shape"
)

// Options configure the factories. The zero value creates writable float64
// row-major views that reject out-of-bounds indices.
type Options struct {
	DType    dtype.DataType
	Order    shape.Order
	Mode     shape.IndexMode
	Submode  []shape.IndexMode
	ReadOnly bool
}

// Flags returns the access settings carried by o.
func (o Options) Flags() Flags {
	return Flags{ReadOnly: o.ReadOnly, Mode: o.Mode, Submode: o.Submode}
}

// Empty allocates a contiguous view of the given shape. Go zeroes new memory, so the
// elements read as zero (nil for Generic).
//
// Example:
//
//	v, err := ndarray.Empty(shape.Shape{3, 4}, ndarray.Options{DType: dtype.Int32})
func Empty(sh shape.Shape, opts Options) (*View, error) {
	if err := sh.Validate(); err != nil {
		return nil, fmt.Errorf("empty: %w", err)
	}
	buf, err := Alloc(opts.DType, sh.NumElements())
	if err != nil {
		return nil, fmt.Errorf("empty: %w", err)
	}
	return Make(opts.DType, buf, sh, DefaultStrides(sh, opts.Order), 0, opts.Order, opts.Flags())
}

// Zeros creates a view filled with zeros.
func Zeros(sh shape.Shape, opts Options) (*View, error) {
	return Empty(sh, opts)
}

// Ones creates a view filled with ones.
func Ones(sh shape.Shape, opts Options) (*View, error) {
	return Full(sh, dtype.One(opts.DType), opts)
}

// Full creates a view filled with value, converted to opts.DType.
//
// Example:
//
//	v, err := ndarray.Full(shape.Shape{2, 2}, 3.5, ndarray.Options{})
func Full(sh shape.Shape, value any, opts Options) (*View, error) {
	fill, err := dtype.Convert(value, opts.DType)
	if err != nil {
		return nil, fmt.Errorf("full: %w", err)
	}
	v, err := Empty(sh, opts)
	if err != nil {
		return nil, err
	}
	for i := 0; i < v.buf.Len(); i++ {
		v.buf.Set(i, fill)
	}
	return v, nil
}

// FromSlice wraps data as a contiguous view of the given shape without copying.
// The data type is inferred from T and len(data) must equal the number of elements.
func FromSlice[T any](data []T, sh shape.Shape, order shape.Order) (*View, error) {
	if err := sh.Validate(); err != nil {
		return nil, fmt.Errorf("from slice: %w", err)
	}
	if len(data) != sh.NumElements() {
		return nil, fmt.Errorf("from slice: %w: %d elements for shape %v", ErrShapeMismatch, len(data), []int(sh))
	}
	buf := NewSlice(data)
	return Make(buf.DataType(), buf, sh, DefaultStrides(sh, order), 0, order, Flags{})
}

// FromScalar creates a rank-0 view holding value converted to opts.DType.
func FromScalar(value any, opts Options) (*View, error) {
	return Full(shape.Shape{}, value, opts)
}

// Scalar creates a rank-0 view holding value, with the data type inferred from T.
func Scalar[T any](value T) *View {
	buf := NewSlice([]T{value})
	v, err := Make(buf.DataType(), buf, shape.Shape{}, []int{0}, 0, shape.RowMajor, Flags{})
	if err != nil {
		panic(err) // one element always fits
	}
	return v
}

// EmptyLike allocates a contiguous view with the shape and data type of x. The memory
// order follows x's strides, ties resolving to row-major. The result is writable.
func EmptyLike(x *View) (*View, error) {
	return Empty(x.shape.Clone(), Options{
		DType:   x.dtype,
		Order:   shape.PreferredOrder(x.DimStrides()),
		Mode:    x.mode,
		Submode: x.submode,
	})
}

// ZerosLike is EmptyLike with zeroed memory.
func ZerosLike(x *View) (*View, error) {
	return EmptyLike(x)
}
