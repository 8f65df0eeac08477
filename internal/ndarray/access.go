package ndarray

import "github.com/born-ml/ndarray/internal/dtype"

// Reader returns a function reading buffer position i of b as a T. A *Slice[T] is read
// directly; any other buffer goes through Get and a conversion to T, which panics on
// values that do not convert.
func Reader[T any](b Buffer) func(i int) T {
	if s, ok := b.(*Slice[T]); ok {
		data := s.Data
		return func(i int) T { return data[i] }
	}
	return func(i int) T {
		t, err := dtype.ConvertTo[T](b.Get(i))
		if err != nil {
			panic(err)
		}
		return t
	}
}

// Writer returns a function storing a T at buffer position i of b. A *Slice[T] of a
// data type without clamping is written directly; any other buffer converts through
// Set.
func Writer[T any](b Buffer) func(i int, v T) {
	if s, ok := b.(*Slice[T]); ok && s.dt != dtype.Uint8c {
		data := s.Data
		return func(i int, v T) { data[i] = v }
	}
	return func(i int, v T) { b.Set(i, v) }
}
