package shape

import "fmt"

// IndexMode selects how out-of-bounds indices are handled.
// The zero value is Throw.
type IndexMode int

// Index modes.
const (
	Throw     IndexMode = iota // reject out-of-bounds indices
	Clamp                      // clamp into [0, n-1]
	Wrap                       // wrap around modulo n
	Normalize                  // resolve negative indices from the end, then reject
)

// String returns the mode name.
func (m IndexMode) String() string {
	switch m {
	case Throw:
		return "throw"
	case Clamp:
		return "clamp"
	case Wrap:
		return "wrap"
	case Normalize:
		return "normalize"
	default:
		return "unknown"
	}
}

// ParseIndexMode parses a mode name.
func ParseIndexMode(s string) (IndexMode, error) {
	for m := Throw; m <= Normalize; m++ {
		if m.String() == s {
			return m, nil
		}
	}
	return Throw, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// ResolveIndex maps idx into [0, n) according to mode.
func ResolveIndex(idx, n int, mode IndexMode) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: index %d into empty dimension", ErrIndexOutOfBounds, idx)
	}
	switch mode {
	case Clamp:
		return min(max(idx, 0), n-1), nil
	case Wrap:
		idx %= n
		if idx < 0 {
			idx += n
		}
		return idx, nil
	case Normalize:
		if idx < 0 {
			idx += n
		}
	case Throw:
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
	}
	if idx < 0 || idx >= n {
		return 0, fmt.Errorf("%w: index %d for dimension of size %d", ErrIndexOutOfBounds, idx, n)
	}
	return idx, nil
}

// modeFor returns the submode of dimension d. Submodes are recycled when fewer than
// the rank are given; no submodes means Throw.
func modeFor(submodes []IndexMode, d int) IndexMode {
	if len(submodes) == 0 {
		return Throw
	}
	return submodes[d%len(submodes)]
}

// Sub2Ind converts subscripts into a buffer position, resolving each subscript with
// its dimension's submode.
func Sub2Ind(s Shape, strides []int, offset int, submodes []IndexMode, subs ...int) (int, error) {
	if len(subs) != len(s) {
		return 0, fmt.Errorf("%w: expected %d subscripts, got %d", ErrRankMismatch, len(s), len(subs))
	}
	idx := offset
	for d, sub := range subs {
		i, err := ResolveIndex(sub, s[d], modeFor(submodes, d))
		if err != nil {
			return 0, fmt.Errorf("dimension %d: %w", d, err)
		}
		idx += i * strides[d]
	}
	return idx, nil
}

// Ind2Sub converts a linear index, counted in the given order, into subscripts.
func Ind2Sub(s Shape, order Order, idx int, mode IndexMode) ([]int, error) {
	i, err := ResolveIndex(idx, Numel(s), mode)
	if err != nil {
		return nil, err
	}
	subs := make([]int, len(s))
	if order == ColumnMajor {
		for d := 0; d < len(s); d++ {
			subs[d] = i % s[d]
			i /= s[d]
		}
		return subs, nil
	}
	for d := len(s) - 1; d >= 0; d-- {
		subs[d] = i % s[d]
		i /= s[d]
	}
	return subs, nil
}
