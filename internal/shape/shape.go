// Package shape provides shape and stride arithmetic for strided ndarray views:
// element counts, default strides, memory order detection, broadcasting of shapes,
// loop interchange and index normalisation.
package shape

import (
	"fmt"
	"math"
	"math/bits"
	"slices"
)

// Shape represents the dimensions of an ndarray. A nil or empty Shape is a scalar.
type Shape []int

// Numel returns the number of elements: 1 for a scalar, 0 if any dimension is 0.
func Numel(s Shape) int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// NumElements returns Numel(s).
func (s Shape) NumElements() int {
	return Numel(s)
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks that every dimension is non-negative and that the element count
// fits in an int.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be >= 0)", ErrInvalidShape, i, dim)
		}
	}
	if slices.Contains(s, 0) {
		return nil
	}
	n := uint(1)
	for _, dim := range s {
		hi, lo := bits.Mul(n, uint(dim))
		if hi != 0 || lo > math.MaxInt {
			return fmt.Errorf("%w: %v holds more than %d elements", ErrInvalidShape, []int(s), math.MaxInt)
		}
		n = lo
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Order is the memory layout used to compute default strides.
// The zero value is RowMajor.
type Order int

// Memory orders.
const (
	RowMajor    Order = iota // last dimension varies fastest
	ColumnMajor              // first dimension varies fastest
)

// String returns "row-major" or "column-major".
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	default:
		return "unknown"
	}
}

// ParseOrder parses "row-major" or "column-major".
func ParseOrder(s string) (Order, error) {
	switch s {
	case "row-major":
		return RowMajor, nil
	case "column-major":
		return ColumnMajor, nil
	}
	return RowMajor, fmt.Errorf("%w: %q", ErrInvalidOrder, s)
}

// Layout reports which memory orders a stride pattern is compatible with.
type Layout int

// Stride layouts. LayoutBoth is LayoutRowMajor|LayoutColumnMajor.
const (
	LayoutNone        Layout = 0
	LayoutRowMajor    Layout = 1
	LayoutColumnMajor Layout = 2
	LayoutBoth        Layout = LayoutRowMajor | LayoutColumnMajor
)

// Has reports whether the layout is compatible with order o.
func (l Layout) Has(o Order) bool {
	if o == ColumnMajor {
		return l&LayoutColumnMajor != 0
	}
	return l&LayoutRowMajor != 0
}

// String returns a human readable layout name.
func (l Layout) String() string {
	switch l {
	case LayoutRowMajor:
		return "row-major"
	case LayoutColumnMajor:
		return "column-major"
	case LayoutBoth:
		return "both"
	default:
		return "none"
	}
}

// ShapeToStrides returns the contiguous strides of s for the given order.
// Zero-size dimensions count as size 1 when computing the strides of other dimensions.
func ShapeToStrides(s Shape, order Order) []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	stride := 1
	if order == ColumnMajor {
		for i := 0; i < len(s); i++ {
			strides[i] = stride
			stride *= max(s[i], 1)
		}
		return strides
	}
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= max(s[i], 1)
	}
	return strides
}

// StridesToOrder inspects stride magnitudes: non-increasing magnitudes are compatible
// with row-major order, non-decreasing with column-major. Rank <= 1 and equal
// magnitudes are compatible with both.
func StridesToOrder(strides []int) Layout {
	if len(strides) <= 1 {
		return LayoutBoth
	}
	row, col := true, true
	for i := 0; i < len(strides)-1; i++ {
		a, b := abs(strides[i]), abs(strides[i+1])
		if a < b {
			row = false
		}
		if a > b {
			col = false
		}
	}
	var l Layout
	if row {
		l |= LayoutRowMajor
	}
	if col {
		l |= LayoutColumnMajor
	}
	return l
}

// IsRowMajorContiguous reports whether strides equal the default row-major strides
// of s. Size-1 dimensions are never stepped and are ignored; numel <= 1 is always
// contiguous.
func IsRowMajorContiguous(s Shape, strides []int) bool {
	return matchesDefault(s, strides, RowMajor)
}

// IsColumnMajorContiguous is the column-major counterpart of IsRowMajorContiguous.
func IsColumnMajorContiguous(s Shape, strides []int) bool {
	return matchesDefault(s, strides, ColumnMajor)
}

// IsContiguous reports whether the strides are contiguous in either order.
func IsContiguous(s Shape, strides []int) bool {
	return IsRowMajorContiguous(s, strides) || IsColumnMajorContiguous(s, strides)
}

func matchesDefault(s Shape, strides []int, order Order) bool {
	if Numel(s) <= 1 {
		return true
	}
	if len(strides) != len(s) {
		return false
	}
	def := ShapeToStrides(s, order)
	for i, dim := range s {
		if dim != 1 && strides[i] != def[i] {
			return false
		}
	}
	return true
}

// IterationOrder returns 1 when every stride is non-negative, -1 when every stride is
// non-positive and 0 for mixed signs.
func IterationOrder(strides []int) int {
	pos, neg := 0, 0
	for _, st := range strides {
		switch {
		case st > 0:
			pos++
		case st < 0:
			neg++
		}
	}
	switch {
	case neg == 0:
		return 1
	case pos == 0:
		return -1
	default:
		return 0
	}
}

// MinMaxViewBufferIndex returns the lowest and highest buffer positions addressed by
// a view. An empty view addresses nothing and returns (offset, offset). Positions that
// do not fit in an int fail with ErrOverflow.
func MinMaxViewBufferIndex(s Shape, strides []int, offset int) (lo, hi int, err error) {
	lo, hi = offset, offset
	if Numel(s) == 0 {
		return lo, hi, nil
	}
	for i, dim := range s {
		step, ok := mulInt(strides[i], dim-1)
		if ok {
			if step > 0 {
				hi, ok = addInt(hi, step)
			} else {
				lo, ok = addInt(lo, step)
			}
		}
		if !ok {
			return 0, 0, fmt.Errorf("%w: shape %v with strides %v", ErrOverflow, []int(s), strides)
		}
	}
	return lo, hi, nil
}

// mulInt returns a*b and whether it did not overflow.
func mulInt(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}
	c := a * b
	return c, c/b == a
}

// addInt returns a+b and whether it did not overflow.
func addInt(a, b int) (int, bool) {
	c := a + b
	return c, (b >= 0) == (c >= a)
}

// StridesToOffset returns the offset of the element at all-zero indices for a view
// whose lowest addressed position is 0.
func StridesToOffset(s Shape, strides []int) int {
	offset := 0
	for i, dim := range s {
		if strides[i] < 0 && dim > 0 {
			offset -= strides[i] * (dim - 1)
		}
	}
	return offset
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
