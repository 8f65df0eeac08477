package engine

import (
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/parallel"
)

// Some reports whether at least n elements of x satisfy pred. Scanning stops at the
// n-th match. n <= 0 is always satisfied.
func Some[T any](x *ndarray.View, n int, pred func(T) bool) bool {
	if n <= 0 {
		return true
	}
	read := ndarray.Reader[T](x.Buffer())
	count := 0
	return !planViews(x).walk(func(pos []int) bool {
		if pred(read(pos[0])) {
			count++
		}
		return count < n
	})
}

// Any reports whether some element of x satisfies pred, stopping at the first match.
func Any[T any](x *ndarray.View, pred func(T) bool) bool {
	return Some(x, 1, pred)
}

// Every reports whether all elements of x satisfy pred, stopping at the first
// element that does not. An empty view satisfies every predicate.
func Every[T any](x *ndarray.View, pred func(T) bool) bool {
	read := ndarray.Reader[T](x.Buffer())
	return planViews(x).walk(func(pos []int) bool {
		return pred(read(pos[0]))
	})
}

// None reports whether no element of x satisfies pred.
func None[T any](x *ndarray.View, pred func(T) bool) bool {
	return !Any(x, pred)
}

// CountIf returns the number of elements of x satisfying pred.
func CountIf[T any](x *ndarray.View, pred func(T) bool) int {
	return Accumulate(x, 0, func(n int, v T) int {
		if pred(v) {
			n++
		}
		return n
	})
}

// Find returns the first element of x, in row-major logical order, that satisfies
// pred together with its index. ok is false when no element matches.
func Find[T any](x *ndarray.View, pred func(T) bool) (v T, idx []int, ok bool) {
	read := ndarray.Reader[T](x.Buffer())
	indexedPlan(x).walkIndexed(func(pos, i []int) bool {
		if e := read(pos[0]); pred(e) {
			v, idx, ok = e, append([]int(nil), i...), true
			return false
		}
		return true
	})
	return v, idx, ok
}

// SomeDims stores, for every window of x over dims, whether at least n of its elements
// satisfy pred. See Reduce for dims, keepdims, cfg and the shape of y.
func SomeDims[T any](x, y *ndarray.View, dims []int, keepdims bool, n int, pred func(T) bool, cfg parallel.Config) error {
	return Reduce(x, y, dims, keepdims, func(w *ndarray.View) bool {
		return Some(w, n, pred)
	}, cfg)
}

// AnyDims stores, for every window of x over dims, whether some element satisfies pred.
func AnyDims[T any](x, y *ndarray.View, dims []int, keepdims bool, pred func(T) bool, cfg parallel.Config) error {
	return SomeDims(x, y, dims, keepdims, 1, pred, cfg)
}

// EveryDims stores, for every window of x over dims, whether all elements satisfy pred.
func EveryDims[T any](x, y *ndarray.View, dims []int, keepdims bool, pred func(T) bool, cfg parallel.Config) error {
	return Reduce(x, y, dims, keepdims, func(w *ndarray.View) bool {
		return Every(w, pred)
	}, cfg)
}

// NoneDims stores, for every window of x over dims, whether no element satisfies pred.
func NoneDims[T any](x, y *ndarray.View, dims []int, keepdims bool, pred func(T) bool, cfg parallel.Config) error {
	return Reduce(x, y, dims, keepdims, func(w *ndarray.View) bool {
		return None(w, pred)
	}, cfg)
}

// CountIfDims stores, for every window of x over dims, the number of elements
// satisfying pred.
func CountIfDims[T any](x, y *ndarray.View, dims []int, keepdims bool, pred func(T) bool, cfg parallel.Config) error {
	return Reduce(x, y, dims, keepdims, func(w *ndarray.View) int {
		return CountIf(w, pred)
	}, cfg)
}
