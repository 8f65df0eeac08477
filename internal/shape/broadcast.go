package shape

import (
	"fmt"
	"strings"
)

// BroadcastError describes a dimension on which shapes cannot be unified.
type BroadcastError struct {
	Shapes []Shape // all shapes being broadcast
	Dim    int     // dimension of the broadcast result (right-aligned)
	Sizes  [2]int  // the two conflicting sizes
}

// Error implements the error interface.
func (e *BroadcastError) Error() string {
	parts := make([]string, len(e.Shapes))
	for i, s := range e.Shapes {
		parts[i] = fmt.Sprint([]int(s))
	}
	return fmt.Sprintf("%v: %s (dimension %d: %d vs %d)",
		ErrIncompatibleShapes, strings.Join(parts, " vs "), e.Dim, e.Sizes[0], e.Sizes[1])
}

// Unwrap returns ErrIncompatibleShapes.
func (e *BroadcastError) Unwrap() error {
	return ErrIncompatibleShapes
}

// BroadcastShapes implements NumPy-style broadcasting rules over any number of shapes.
//
// Rules:
// 1. Shapes are right-aligned; missing leading dimensions are treated as 1
// 2. Along each dimension every size must be 1 or equal to the common size
// 3. The result rank is the maximum input rank
//
// A size-0 dimension broadcasts against 1 (result 0) but not against any other size.
//
// Examples:
//
//	[2, 2] + [3, 2, 2] → [3, 2, 2]
//	[3, 1] + [1, 5]    → [3, 5]
//	[2, 2] + [3, 4]    → error
func BroadcastShapes(shapes ...Shape) (Shape, error) {
	rank := 0
	for _, s := range shapes {
		rank = max(rank, len(s))
	}
	result := make(Shape, rank)

	for i := 0; i < rank; i++ {
		out := rank - 1 - i
		dim := 1
		for _, s := range shapes {
			idx := len(s) - 1 - i
			if idx < 0 {
				continue
			}
			d := s[idx]
			switch {
			case d == 1 || d == dim:
			case dim == 1:
				dim = d
			default:
				return nil, &BroadcastError{Shapes: clones(shapes), Dim: out, Sizes: [2]int{dim, d}}
			}
		}
		result[out] = dim
	}

	return result, nil
}

// BroadcastStrides returns the strides of a view with shape in and strides inStrides
// broadcast to shape out. Prepended and stretched dimensions get stride 0.
func BroadcastStrides(in Shape, inStrides []int, out Shape) ([]int, error) {
	if len(in) > len(out) {
		return nil, fmt.Errorf("%w: cannot broadcast shape %v to %v with fewer dimensions",
			ErrIncompatibleShapes, []int(in), []int(out))
	}
	strides := make([]int, len(out))
	offset := len(out) - len(in)
	for i := range out {
		inIdx := i - offset
		switch {
		case inIdx < 0:
			strides[i] = 0
		case in[inIdx] == out[i]:
			strides[i] = inStrides[inIdx]
		case in[inIdx] == 1:
			strides[i] = 0
		default:
			return nil, &BroadcastError{Shapes: []Shape{in.Clone(), out.Clone()}, Dim: i, Sizes: [2]int{in[inIdx], out[i]}}
		}
	}
	return strides, nil
}

func clones(shapes []Shape) []Shape {
	out := make([]Shape, len(shapes))
	for i, s := range shapes {
		out[i] = s.Clone()
	}
	return out
}
