package engine

import (
	"unsafe"

	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/shape"
	"golang.org/x/sys/cpu"
)

// cacheLine is the cache line size of the target architecture in bytes.
var cacheLine = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// plan is a traversal of a common shape over several arrays. Dimensions are in loop
// order: index 0 is the innermost loop. Array 0 is the primary array whose strides
// decided the order.
type plan struct {
	shape   shape.Shape
	strides [][]int
	offsets []int
	perm    []int
}

// newPlan orders the dimensions of sh for the given stride lists and start offsets.
func newPlan(sh shape.Shape, strides [][]int, offsets []int) *plan {
	if len(strides) != len(offsets) {
		panicf("engine: %d stride lists for %d offsets", len(strides), len(offsets))
	}
	loop := shape.LoopOrder(sh, strides...)
	return &plan{
		shape:   loop.Shape,
		strides: loop.Strides,
		offsets: offsets,
		perm:    loop.Perm,
	}
}

// planViews plans a traversal over views of identical shape, views[0] being primary.
func planViews(views ...*ndarray.View) *plan {
	strides := make([][]int, len(views))
	offsets := make([]int, len(views))
	for i, v := range views {
		strides[i] = v.DimStrides()
		offsets[i] = v.Offset()
	}
	return newPlan(views[0].Shape(), strides, offsets)
}

// walk calls fn with the buffer position of every array, once per element, innermost
// dimension fastest. fn returns false to stop; walk reports whether it ran to the end.
// The pos slice is reused between calls.
func (p *plan) walk(fn func(pos []int) bool) bool {
	if p.shape.NumElements() == 0 {
		return true
	}
	pos := append([]int(nil), p.offsets...)

	switch len(p.shape) {
	case 0:
		return fn(pos)
	case 1:
		return p.inner(pos, fn)
	case 2:
		n1 := p.shape[1]
		for j := 0; j < n1; j++ {
			if !p.inner(pos, fn) {
				return false
			}
			for k := range pos {
				pos[k] += p.strides[k][1]
			}
		}
		return true
	}
	return p.outer(pos, 1, func(base []int) bool {
		return p.inner(base, fn)
	})
}

// inner runs the innermost loop from pos and leaves pos unchanged.
func (p *plan) inner(pos []int, fn func(pos []int) bool) bool {
	n := p.shape[0]
	for i := 0; i < n; i++ {
		if !fn(pos) {
			return false
		}
		for k := range pos {
			pos[k] += p.strides[k][0]
		}
	}
	for k := range pos {
		pos[k] -= n * p.strides[k][0]
	}
	return true
}

// outer steps through every combination of the dimensions at index from and above
// with an index counter and calls fn with the base positions of each one.
func (p *plan) outer(pos []int, from int, fn func(base []int) bool) bool {
	rank := len(p.shape)
	idx := make([]int, rank)
	for {
		if !fn(pos) {
			return false
		}
		d := from
		for ; d < rank; d++ {
			idx[d]++
			for k := range pos {
				pos[k] += p.strides[k][d]
			}
			if idx[d] < p.shape[d] {
				break
			}
			for k := range pos {
				pos[k] -= p.shape[d] * p.strides[k][d]
			}
			idx[d] = 0
		}
		if d == rank {
			return true
		}
	}
}

// walkIndexed is walk with the logical index of every element, in the original
// dimension order. The index slice is reused between calls.
func (p *plan) walkIndexed(fn func(pos, idx []int) bool) bool {
	if p.shape.NumElements() == 0 {
		return true
	}
	rank := len(p.shape)
	pos := append([]int(nil), p.offsets...)
	loopIdx := make([]int, rank)
	orig := make([]int, rank)
	for {
		for k, d := range p.perm {
			orig[d] = loopIdx[k]
		}
		if !fn(pos, orig) {
			return false
		}
		d := 0
		for ; d < rank; d++ {
			loopIdx[d]++
			for k := range pos {
				pos[k] += p.strides[k][d]
			}
			if loopIdx[d] < p.shape[d] {
				break
			}
			for k := range pos {
				pos[k] -= p.shape[d] * p.strides[k][d]
			}
			loopIdx[d] = 0
		}
		if d == rank {
			return true
		}
	}
}

// blockEdge returns the tile edge, in elements, of the blocked traversal for elements
// of the given byte size: a tile row spans a few cache lines.
func blockEdge(elemSize int) int {
	return max(4*cacheLine/max(elemSize, 1), 8)
}

// needsBlocking reports whether some secondary array walks its two innermost loop
// dimensions against its own memory order, in which case the plain walk strides
// through that array's memory on every step.
func (p *plan) needsBlocking(edge int) bool {
	if len(p.shape) < 2 || len(p.strides) < 2 {
		return false
	}
	if p.shape[0] < edge || p.shape[1] < edge {
		return false
	}
	for _, st := range p.strides[1:] {
		if abs(st[0]) > abs(st[1]) {
			return true
		}
	}
	return false
}

// walkBlocked visits the same positions as walk, covering the two innermost loop
// dimensions tile by tile. The visiting order differs from walk, so it only serves
// element-wise operations.
func (p *plan) walkBlocked(edge int, fn func(pos []int)) {
	if p.shape.NumElements() == 0 {
		return
	}
	pos := append([]int(nil), p.offsets...)
	cur := make([]int, len(pos))
	n0, n1 := p.shape[0], p.shape[1]
	tile := func(base []int) bool {
		for j0 := 0; j0 < n1; j0 += edge {
			for i0 := 0; i0 < n0; i0 += edge {
				for j := j0; j < min(j0+edge, n1); j++ {
					for k := range cur {
						cur[k] = base[k] + j*p.strides[k][1] + i0*p.strides[k][0]
					}
					for i := i0; i < min(i0+edge, n0); i++ {
						fn(cur)
						for k := range cur {
							cur[k] += p.strides[k][0]
						}
					}
				}
			}
		}
		return true
	}
	if len(p.shape) == 2 {
		tile(pos)
		return
	}
	p.outer(pos, 2, tile)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
