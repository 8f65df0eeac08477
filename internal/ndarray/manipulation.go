package ndarray

import (
	"fmt"
	"math"

	"github.com/born-ml/ndarray/internal/shape"
)

// BroadcastTo returns a read-only view of v with the target shape. Stretched and
// prepended dimensions get stride 0. When v already has the target shape, v itself is
// returned, not a new view.
func BroadcastTo(v *View, target shape.Shape) (*View, error) {
	if v.shape.Equal(target) {
		return v, nil
	}
	if err := target.Validate(); err != nil {
		return nil, fmt.Errorf("broadcast: %w", err)
	}
	strides, err := shape.BroadcastStrides(v.shape, v.DimStrides(), target)
	if err != nil {
		return nil, fmt.Errorf("broadcast: %w", err)
	}
	out := v.derive(target.Clone(), strides, v.offset)
	out.order = v.order
	out.readOnly = true
	return out, nil
}

// BroadcastArrays broadcasts every view to the common shape of all of them.
// Views that already have that shape are returned unchanged.
func BroadcastArrays(vs ...*View) ([]*View, error) {
	shapes := make([]shape.Shape, len(vs))
	for i, v := range vs {
		shapes[i] = v.shape
	}
	common, err := shape.BroadcastShapes(shapes...)
	if err != nil {
		return nil, fmt.Errorf("broadcast arrays: %w", err)
	}
	out := make([]*View, len(vs))
	for i, v := range vs {
		if out[i], err = BroadcastTo(v, common); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ExpandDims returns a view of v with a size-1 dimension inserted at dim, which may be
// in [-rank-1, rank].
func ExpandDims(v *View, dim int) (*View, error) {
	d, err := shape.NormalizeInsertDim(dim, len(v.shape))
	if err != nil {
		return nil, fmt.Errorf("expand dims: %w", err)
	}
	stride := 1
	if d < len(v.shape) {
		stride = v.strides[d] * max(v.shape[d], 1)
	}
	sh := append(append(v.shape[:d:d], 1), v.shape[d:]...)
	strides := append(append(v.strides[:d:d], stride), v.strides[d:len(v.shape)]...)
	return v.derive(sh, strides, v.offset), nil
}

// Transpose returns a view of v with its dimensions permuted: dimension k of the result
// is dimension perm[k] of v. Without perm the dimensions are reversed.
func Transpose(v *View, perm ...int) (*View, error) {
	rank := len(v.shape)
	if len(perm) == 0 {
		perm = make([]int, rank)
		for i := range perm {
			perm[i] = rank - 1 - i
		}
	}
	if len(perm) != rank {
		return nil, fmt.Errorf("transpose: %w: permutation %v for rank %d", shape.ErrRankMismatch, perm, rank)
	}
	if _, err := shape.NormalizeDims(perm, rank); err != nil {
		return nil, fmt.Errorf("transpose: %w", err)
	}

	sh := make(shape.Shape, rank)
	strides := make([]int, rank)
	for k, p := range perm {
		if p < 0 {
			p += rank
		}
		sh[k] = v.shape[p]
		strides[k] = v.strides[p]
	}
	return v.derive(sh, strides, v.offset), nil
}

// Range selects the positions Start, Start+Step, ... before Stop along one dimension.
// Negative Start and Stop count from the end of the dimension and out-of-range bounds
// are clamped, as in Python slicing. A zero Step means 1.
type Range struct {
	Start, Stop, Step int
}

// All selects a whole dimension.
func All() Range { return Range{Start: 0, Stop: math.MaxInt, Step: 1} }

// Span selects [start, stop) with step 1.
func Span(start, stop int) Range { return Range{Start: start, Stop: stop, Step: 1} }

// Backward selects a whole dimension in reverse.
func Backward() Range { return Range{Start: -1, Stop: math.MinInt, Step: -1} }

// resolve returns the first position and the number of selected positions in a
// dimension of size n.
func (r Range) resolve(n int) (start, count int) {
	step := r.Step
	if step == 0 {
		step = 1
	}
	start, stop := r.Start, r.Stop
	if start < 0 {
		start += n
	}
	if stop < 0 && stop != math.MinInt {
		stop += n
	}
	if step > 0 {
		start = min(max(start, 0), n)
		stop = min(max(stop, 0), n)
		if stop <= start {
			return start, 0
		}
		return start, (stop - start + step - 1) / step
	}
	start = min(max(start, -1), n-1)
	stop = min(max(stop, -1), n-1)
	if stop >= start {
		return max(start, 0), 0
	}
	return start, (start - stop - step - 1) / -step
}

// SliceView returns a view of v restricted to the given ranges, one per leading dimension;
// missing trailing ranges select whole dimensions.
func SliceView(v *View, ranges ...Range) (*View, error) {
	rank := len(v.shape)
	if len(ranges) > rank {
		return nil, fmt.Errorf("slice: %w: %d ranges for rank %d", shape.ErrRankMismatch, len(ranges), rank)
	}
	sh := make(shape.Shape, rank)
	strides := make([]int, rank)
	offset := v.offset
	for d := 0; d < rank; d++ {
		r := All()
		if d < len(ranges) {
			r = ranges[d]
		}
		step := r.Step
		if step == 0 {
			step = 1
		}
		start, count := r.resolve(v.shape[d])
		sh[d] = count
		strides[d] = v.strides[d] * step
		if count > 0 {
			offset += start * v.strides[d]
		}
	}
	if sh.NumElements() == 0 {
		offset = v.offset
	}
	return v.derive(sh, strides, offset), nil
}

// Reverse returns a view of v with the listed dimensions (all when none are given)
// traversed backwards.
func Reverse(v *View, dims ...int) (*View, error) {
	rank := len(v.shape)
	if len(dims) == 0 {
		dims = shape.AllDims(rank)
	}
	norm, err := shape.NormalizeDims(dims, rank)
	if err != nil {
		return nil, fmt.Errorf("reverse: %w", err)
	}
	strides := append([]int(nil), v.DimStrides()...)
	offset := v.offset
	for _, d := range norm {
		if v.shape[d] > 0 {
			offset += (v.shape[d] - 1) * strides[d]
		}
		strides[d] = -strides[d]
	}
	return v.derive(v.shape.Clone(), strides, offset), nil
}

// Window returns a read-only view over the dims of v whose all-zero element sits at
// buffer position offset. Subarray reductions build one window per output position;
// dims must be normalized and offset must address an element of v.
func Window(v *View, dims []int, offset int) *View {
	sh := make(shape.Shape, len(dims))
	strides := make([]int, len(dims))
	for i, d := range dims {
		sh[i] = v.shape[d]
		strides[i] = v.strides[d]
	}
	out := v.derive(sh, strides, offset)
	out.readOnly = true
	return out
}

// ReadOnly returns a read-only view sharing v's buffer and geometry.
func ReadOnly(v *View) *View {
	out := v.derive(v.shape.Clone(), append([]int(nil), v.strides...), v.offset)
	out.order = v.order
	out.readOnly = true
	return out
}
