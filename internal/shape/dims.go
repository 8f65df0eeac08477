package shape

import (
	"fmt"
	"slices"
)

// NormalizeDim resolves a dimension index in [-rank, rank-1] to [0, rank).
func NormalizeDim(dim, rank int) (int, error) {
	d := dim
	if d < 0 {
		d += rank
	}
	if d < 0 || d >= rank {
		return 0, fmt.Errorf("%w: %d for rank %d (must be in [%d, %d])", ErrDimensionIndex, dim, rank, -rank, rank-1)
	}
	return d, nil
}

// NormalizeInsertDim resolves an insertion position in [-rank-1, rank] to [0, rank].
func NormalizeInsertDim(dim, rank int) (int, error) {
	d := dim
	if d < 0 {
		d += rank + 1
	}
	if d < 0 || d > rank {
		return 0, fmt.Errorf("%w: %d for insertion into rank %d (must be in [%d, %d])",
			ErrDimensionIndex, dim, rank, -rank-1, rank)
	}
	return d, nil
}

// NormalizeDims normalizes dimension indices, rejects duplicates and returns them
// sorted in ascending order.
func NormalizeDims(dims []int, rank int) ([]int, error) {
	out := make([]int, len(dims))
	for i, dim := range dims {
		d, err := NormalizeDim(dim, rank)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	slices.Sort(out)
	for i := 1; i < len(out); i++ {
		if out[i] == out[i-1] {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateDims, dims)
		}
	}
	return out, nil
}

// AllDims returns [0, 1, ..., rank-1].
func AllDims(rank int) []int {
	dims := make([]int, rank)
	for i := range dims {
		dims[i] = i
	}
	return dims
}

// Complement returns the dimensions in [0, rank) not listed in the normalized dims.
func Complement(dims []int, rank int) []int {
	out := make([]int, 0, rank-len(dims))
	for d := 0; d < rank; d++ {
		if !slices.Contains(dims, d) {
			out = append(out, d)
		}
	}
	return out
}

// ReducedShape returns the shape left after reducing the normalized dims of s.
// With keepdims the reduced dimensions are kept with size 1.
func ReducedShape(s Shape, dims []int, keepdims bool) Shape {
	out := make(Shape, 0, len(s))
	for d, size := range s {
		switch {
		case !slices.Contains(dims, d):
			out = append(out, size)
		case keepdims:
			out = append(out, 1)
		}
	}
	return out
}
