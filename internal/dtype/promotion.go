package dtype

import "github.com/pkg/errors"

// promotionRank orders candidates of equal byte size: bool < unsigned < signed < float
// < complex.
func promotionRank(dt DataType) int {
	return int(dt.Kind())
}

// Promote returns the smallest data type both a and b safely cast to.
//
// Candidates are ranked by byte size, then by kind, then by enum order, so the result
// does not depend on argument order. Generic is only chosen when nothing else fits.
// It fails with ErrNoPromotion when no common data type exists (binary mixed with any
// other data type).
func Promote(a, b DataType) (DataType, error) {
	a, b = a.checked(), b.checked()
	if a == b {
		return a, nil
	}
	best := Invalid
	for _, c := range safeCasts[a] {
		if !safeTable[b][c] {
			continue
		}
		if best == Invalid || better(c, best) {
			best = c
		}
	}
	if best == Invalid {
		return Invalid, errors.Wrapf(ErrNoPromotion, "%s and %s", a, b)
	}
	return best, nil
}

func better(c, best DataType) bool {
	if best == Generic {
		return true
	}
	if c == Generic {
		return false
	}
	if cs, bs := c.Size(), best.Size(); cs != bs {
		return cs < bs
	}
	if cr, br := promotionRank(c), promotionRank(best); cr != br {
		return cr < br
	}
	return c < best
}

// PromoteAll folds Promote over dts from left to right. An empty list fails.
func PromoteAll(dts ...DataType) (DataType, error) {
	if len(dts) == 0 {
		return Invalid, errors.Wrap(ErrNoPromotion, "no data types given")
	}
	out := dts[0].checked()
	for _, dt := range dts[1:] {
		p, err := Promote(out, dt)
		if err != nil {
			return Invalid, err
		}
		out = p
	}
	return out, nil
}
