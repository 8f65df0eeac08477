package ndarray

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/dtype"
	"github.com/x448/float16"
)

// Buffer is a flat, random-access element store.
//
// Get returns the element at i in the Go type of DataType. Set converts v to that type
// with unsafe casting semantics and panics when v cannot be converted. Neither method
// checks bounds beyond what the backing slice does.
type Buffer interface {
	Len() int
	DataType() dtype.DataType
	Get(i int) any
	Set(i int, v any)
}

// CanStore returns the error b.Set(i, v) would panic with, or nil when v can be stored.
// A Generic buffer over a typed slice only holds values convertible to its element type.
func CanStore(b Buffer, v any) error {
	if c, ok := b.(interface{ check(v any) error }); ok {
		return c.check(v)
	}
	_, err := dtype.Convert(v, b.DataType())
	return err
}

// Slice is a Buffer backed by a Go slice.
type Slice[T any] struct {
	Data []T
	dt   dtype.DataType
}

// NewSlice wraps data without copying. The data type is inferred from T.
func NewSlice[T any](data []T) *Slice[T] {
	return &Slice[T]{Data: data, dt: dtype.Of[T]()}
}

// NewSliceOf wraps data as the given data type. T must be the Go element type of dt;
// []uint8 additionally serves Uint8c and Binary, and any Go type serves Generic.
func NewSliceOf[T any](dt dtype.DataType, data []T) (*Slice[T], error) {
	if !dt.Valid() {
		return nil, fmt.Errorf("%w: %d", dtype.ErrUnknownDType, int(dt))
	}
	if !elementOf[T](dt) {
		var zero T
		return nil, fmt.Errorf("%w: []%T cannot hold %s", ErrDTypeMismatch, zero, dt)
	}
	return &Slice[T]{Data: data, dt: dt}, nil
}

func elementOf[T any](dt dtype.DataType) bool {
	got := dtype.Of[T]()
	switch dt {
	case got, dtype.Generic:
		return true
	case dtype.Uint8c, dtype.Binary:
		return got == dtype.Uint8
	}
	return false
}

// Len returns the number of elements.
func (s *Slice[T]) Len() int { return len(s.Data) }

// DataType returns the element data type.
func (s *Slice[T]) DataType() dtype.DataType { return s.dt }

// Get returns element i.
func (s *Slice[T]) Get(i int) any { return s.Data[i] }

// Set stores v at i.
func (s *Slice[T]) Set(i int, v any) {
	t, err := s.convert(v)
	if err != nil {
		panic(err)
	}
	s.Data[i] = t
}

func (s *Slice[T]) convert(v any) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	if s.dt == dtype.Uint8c {
		c, err := dtype.Convert(v, dtype.Uint8c)
		if err != nil {
			var zero T
			return zero, err
		}
		v = c
	}
	return dtype.ConvertTo[T](v)
}

func (s *Slice[T]) check(v any) error {
	_, err := s.convert(v)
	return err
}

// ComplexPacked stores complex numbers as interleaved real and imaginary parts.
// ComplexPacked[float32] holds Complex64 elements, ComplexPacked[float64] Complex128.
type ComplexPacked[F float32 | float64] struct {
	Data []F
}

// NewComplexPacked wraps interleaved data without copying. len(data) must be even.
func NewComplexPacked[F float32 | float64](data []F) (*ComplexPacked[F], error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("%w: interleaved complex data has odd length %d", ErrShapeMismatch, len(data))
	}
	return &ComplexPacked[F]{Data: data}, nil
}

// Len returns the number of complex elements.
func (c *ComplexPacked[F]) Len() int { return len(c.Data) / 2 }

// DataType returns Complex64 or Complex128.
func (c *ComplexPacked[F]) DataType() dtype.DataType {
	var zero F
	if _, ok := any(zero).(float32); ok {
		return dtype.Complex64
	}
	return dtype.Complex128
}

// Get returns element i as complex64 or complex128.
func (c *ComplexPacked[F]) Get(i int) any {
	re, im := c.Data[2*i], c.Data[2*i+1]
	if c.DataType() == dtype.Complex64 {
		return complex(float32(re), float32(im))
	}
	return complex(float64(re), float64(im))
}

func (c *ComplexPacked[F]) check(v any) error {
	_, err := dtype.ConvertTo[complex128](v)
	return err
}

// Set stores v at i.
func (c *ComplexPacked[F]) Set(i int, v any) {
	z, err := dtype.ConvertTo[complex128](v)
	if err != nil {
		panic(err)
	}
	c.Data[2*i] = F(real(z))
	c.Data[2*i+1] = F(imag(z))
}

// Alloc returns a zeroed buffer of n elements of dt.
func Alloc(dt dtype.DataType, n int) (Buffer, error) {
	switch dt {
	case dtype.Float64:
		return NewSlice(make([]float64, n)), nil
	case dtype.Float32:
		return NewSlice(make([]float32, n)), nil
	case dtype.Float16:
		return NewSlice(make([]float16.Float16, n)), nil
	case dtype.Complex128:
		return NewSlice(make([]complex128, n)), nil
	case dtype.Complex64:
		return NewSlice(make([]complex64, n)), nil
	case dtype.Int64:
		return NewSlice(make([]int64, n)), nil
	case dtype.Int32:
		return NewSlice(make([]int32, n)), nil
	case dtype.Int16:
		return NewSlice(make([]int16, n)), nil
	case dtype.Int8:
		return NewSlice(make([]int8, n)), nil
	case dtype.Uint64:
		return NewSlice(make([]uint64, n)), nil
	case dtype.Uint32:
		return NewSlice(make([]uint32, n)), nil
	case dtype.Uint16:
		return NewSlice(make([]uint16, n)), nil
	case dtype.Uint8:
		return NewSlice(make([]uint8, n)), nil
	case dtype.Uint8c, dtype.Binary:
		return NewSliceOf(dt, make([]uint8, n))
	case dtype.Bool:
		return NewSlice(make([]bool, n)), nil
	case dtype.Generic:
		return NewSlice(make([]any, n)), nil
	}
	return nil, fmt.Errorf("%w: %d", dtype.ErrUnknownDType, int(dt))
}
