// Package ndarray implements strided views over flat buffers.
//
// A View describes an n-dimensional array through a data type, a Buffer, a shape, a
// stride per dimension and the offset of the element at all-zero indices. The
// element at index i is stored at offset + Σ i[d]*strides[d].
//
// Views produced by slicing, transposing and broadcasting alias the buffer of their
// source. Nothing is locked: when several goroutines hold aliasing views, copy before
// mutating.
package ndarray

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/dtype"
	"github.com/born-ml/ndarray/internal/shape"
)

// Flags are the access settings of a view.
type Flags struct {
	ReadOnly bool
	Mode     shape.IndexMode   // linear index handling
	Submode  []shape.IndexMode // per-dimension subscript handling, recycled; defaults to [Mode]
}

// View is a strided view over a Buffer. Its shape, strides and offset are fixed at
// construction; only buffer contents change through a writable view.
type View struct {
	dtype    dtype.DataType
	buf      Buffer
	shape    shape.Shape
	strides  []int // [0] for rank 0
	offset   int
	order    shape.Order
	readOnly bool
	mode     shape.IndexMode
	submode  []shape.IndexMode
}

// Make validates and returns a view of buf.
//
// Rank-0 views take strides [0]. Make fails with ErrDTypeMismatch when buf holds a
// different data type, with shape.ErrRankMismatch when strides and shape disagree in
// length, with ErrInvalidOffset or ErrBufferTooSmall when an addressed element falls
// outside buf.
func Make(dt dtype.DataType, buf Buffer, sh shape.Shape, strides []int, offset int, order shape.Order, flags Flags) (*View, error) {
	if !dt.Valid() {
		return nil, fmt.Errorf("make view: %w: %d", dtype.ErrUnknownDType, int(dt))
	}
	if buf == nil {
		return nil, fmt.Errorf("make view: %w: nil buffer", ErrBufferTooSmall)
	}
	if buf.DataType() != dt {
		return nil, fmt.Errorf("make view: %w: buffer holds %s, view wants %s", ErrDTypeMismatch, buf.DataType(), dt)
	}
	if err := sh.Validate(); err != nil {
		return nil, fmt.Errorf("make view: %w", err)
	}
	if len(sh) == 0 {
		if len(strides) != 1 || strides[0] != 0 {
			return nil, fmt.Errorf("make view: %w: rank-0 view needs strides [0], got %v", shape.ErrRankMismatch, strides)
		}
	} else if len(strides) != len(sh) {
		return nil, fmt.Errorf("make view: %w: %d strides for shape %v", shape.ErrRankMismatch, len(strides), []int(sh))
	}
	if order != shape.RowMajor && order != shape.ColumnMajor {
		return nil, fmt.Errorf("make view: %w: %d", shape.ErrInvalidOrder, int(order))
	}
	if err := checkModes(flags); err != nil {
		return nil, fmt.Errorf("make view: %w", err)
	}
	if offset < 0 {
		return nil, fmt.Errorf("make view: %w: offset %d", ErrInvalidOffset, offset)
	}
	if sh.NumElements() > 0 {
		lo, hi, err := shape.MinMaxViewBufferIndex(sh, strides[:len(sh)], offset)
		if err != nil {
			return nil, fmt.Errorf("make view: %w: %w", ErrBufferTooSmall, err)
		}
		if lo < 0 {
			return nil, fmt.Errorf("make view: %w: lowest position %d", ErrInvalidOffset, lo)
		}
		if hi >= buf.Len() {
			return nil, fmt.Errorf("make view: %w: highest position %d, buffer length %d", ErrBufferTooSmall, hi, buf.Len())
		}
	}

	submode := append([]shape.IndexMode(nil), flags.Submode...)
	if len(submode) == 0 {
		submode = []shape.IndexMode{flags.Mode}
	}
	return &View{
		dtype:    dt,
		buf:      buf,
		shape:    sh.Clone(),
		strides:  append([]int(nil), strides...),
		offset:   offset,
		order:    order,
		readOnly: flags.ReadOnly,
		mode:     flags.Mode,
		submode:  submode,
	}, nil
}

func checkModes(flags Flags) error {
	for _, m := range append([]shape.IndexMode{flags.Mode}, flags.Submode...) {
		if m < shape.Throw || m > shape.Normalize {
			return fmt.Errorf("%w: %d", shape.ErrInvalidMode, int(m))
		}
	}
	return nil
}

// DefaultStrides returns the contiguous strides of sh, [0] for rank 0.
func DefaultStrides(sh shape.Shape, order shape.Order) []int {
	if len(sh) == 0 {
		return []int{0}
	}
	return shape.ShapeToStrides(sh, order)
}

// DType returns the element data type.
func (v *View) DType() dtype.DataType { return v.dtype }

// Buffer returns the underlying buffer.
func (v *View) Buffer() Buffer { return v.buf }

// Shape returns a copy of the view's shape.
func (v *View) Shape() shape.Shape { return v.shape.Clone() }

// Strides returns a copy of the view's strides.
func (v *View) Strides() []int { return append([]int(nil), v.strides...) }

// Offset returns the buffer position of the element at all-zero indices.
func (v *View) Offset() int { return v.offset }

// Order returns the memory order hint.
func (v *View) Order() shape.Order { return v.order }

// Rank returns the number of dimensions.
func (v *View) Rank() int { return len(v.shape) }

// NumElements returns the number of elements.
func (v *View) NumElements() int { return v.shape.NumElements() }

// ReadOnly reports whether writes through v are rejected.
func (v *View) ReadOnly() bool { return v.readOnly }

// Flags returns the access settings of v.
func (v *View) Flags() Flags {
	return Flags{
		ReadOnly: v.readOnly,
		Mode:     v.mode,
		Submode:  append([]shape.IndexMode(nil), v.submode...),
	}
}

// IsContiguous reports whether v's strides are the default strides of its shape in
// either order.
func (v *View) IsContiguous() bool {
	return shape.IsContiguous(v.shape, v.DimStrides())
}

// DimStrides returns one stride per dimension (empty for rank 0). The slice aliases
// the view and must not be modified.
func (v *View) DimStrides() []int {
	return v.strides[:len(v.shape)]
}

// Index returns the buffer position addressed by subs, resolved with the view's
// submodes.
func (v *View) Index(subs ...int) (int, error) {
	return shape.Sub2Ind(v.shape, v.DimStrides(), v.offset, v.submode, subs...)
}

// At returns the element at subs.
func (v *View) At(subs ...int) (any, error) {
	i, err := v.Index(subs...)
	if err != nil {
		return nil, err
	}
	return v.buf.Get(i), nil
}

// SetAt stores x at subs, converting it to the view's data type.
func (v *View) SetAt(x any, subs ...int) error {
	if v.readOnly {
		return ErrReadOnly
	}
	i, err := v.Index(subs...)
	if err != nil {
		return err
	}
	return v.store(i, x)
}

// Iget returns the element at linear index idx, counted in the view's order and
// resolved with the view's mode.
func (v *View) Iget(idx int) (any, error) {
	subs, err := shape.Ind2Sub(v.shape, v.order, idx, v.mode)
	if err != nil {
		return nil, err
	}
	return v.buf.Get(v.position(subs)), nil
}

// Iset stores x at linear index idx.
func (v *View) Iset(x any, idx int) error {
	if v.readOnly {
		return ErrReadOnly
	}
	subs, err := shape.Ind2Sub(v.shape, v.order, idx, v.mode)
	if err != nil {
		return err
	}
	return v.store(v.position(subs), x)
}

func (v *View) position(subs []int) int {
	i := v.offset
	for d, s := range subs {
		i += s * v.strides[d]
	}
	return i
}

func (v *View) store(i int, x any) error {
	val, err := dtype.Convert(x, v.dtype)
	if err != nil {
		return err
	}
	if err := CanStore(v.buf, val); err != nil {
		return err
	}
	v.buf.Set(i, val)
	return nil
}

// derive returns a view of the same buffer and flags with new geometry.
func (v *View) derive(sh shape.Shape, strides []int, offset int) *View {
	if len(sh) == 0 {
		strides = []int{0}
	}
	return &View{
		dtype:    v.dtype,
		buf:      v.buf,
		shape:    sh,
		strides:  strides,
		offset:   offset,
		order:    orderOf(strides[:len(sh)], v.order),
		readOnly: v.readOnly,
		mode:     v.mode,
		submode:  v.submode,
	}
}

// orderOf keeps fallback when the strides are compatible with it, otherwise returns
// the order the strides follow.
func orderOf(strides []int, fallback shape.Order) shape.Order {
	l := shape.StridesToOrder(strides)
	if l.Has(fallback) || l == shape.LayoutNone {
		return fallback
	}
	if l.Has(shape.RowMajor) {
		return shape.RowMajor
	}
	return shape.ColumnMajor
}
