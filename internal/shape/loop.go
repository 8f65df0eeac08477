package shape

import "slices"

// Loop is a dimension ordering for a nested traversal. Index 0 is the innermost loop.
type Loop struct {
	Shape   Shape   // permuted shape
	Strides [][]int // permuted strides, one list per array
	Perm    []int   // Perm[k] is the original dimension iterated at loop level k
}

// LoopOrder reorders dimensions so the innermost loop (index 0 of the result) walks the
// smallest absolute stride of the primary array, which is strides[0]. Dimensions are
// stably sorted by ascending absolute primary stride, so ties keep their original
// relative order. The same permutation is applied to the shape and every stride list.
//
// Rank-0 and empty shapes are returned unchanged with the identity permutation.
//
// Example:
//
//	LoopOrder([4, 2, 2], [4, -2, 1], [-4, 2, 1])
//	→ shape [2, 2, 4], strides [1, -2, 4], [1, 2, -4]
func LoopOrder(s Shape, strides ...[]int) Loop {
	perm := make([]int, len(s))
	for i := range perm {
		perm[i] = i
	}
	if len(s) > 0 && Numel(s) > 0 && len(strides) > 0 {
		key := strides[0]
		slices.SortStableFunc(perm, func(a, b int) int {
			return abs(key[a]) - abs(key[b])
		})
	}

	loop := Loop{
		Shape:   make(Shape, len(s)),
		Strides: make([][]int, len(strides)),
		Perm:    perm,
	}
	for k, d := range perm {
		loop.Shape[k] = s[d]
	}
	for j, st := range strides {
		out := make([]int, len(s))
		for k, d := range perm {
			out[k] = st[d]
		}
		loop.Strides[j] = out
	}
	return loop
}

// PreferredOrder returns the memory order most stride lists are compatible with.
// Ties resolve to row-major.
func PreferredOrder(strides ...[]int) Order {
	row, col := 0, 0
	for _, st := range strides {
		l := StridesToOrder(st)
		if l.Has(RowMajor) {
			row++
		}
		if l.Has(ColumnMajor) {
			col++
		}
	}
	if col > row {
		return ColumnMajor
	}
	return RowMajor
}
