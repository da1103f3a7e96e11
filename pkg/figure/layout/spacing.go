package layout

import (
	"math"

	"github.com/matzehuels/figgrid/pkg/errors"
)

// ToRelative converts an absolute gap into the relative spacing fraction used
// by ratio-based grids, where the fraction is taken of the average slot size.
//
// total is the dimension available to slots and gaps (figure size minus both
// margins) and n is the number of slots along it:
//
//	f = (s*n) / (total - s*n + s)
//
// The denominator is the room left for the slots themselves; it must be positive.
func ToRelative(s, total float64, n int) (float64, error) {
	if err := checkSpacingArgs(s, total, n); err != nil {
		return 0, err
	}
	slots := total - s*float64(n-1)
	if !(slots > 0) {
		return 0, errors.Configuration("spacing %g leaves no room for %d slots in %g", s, n, total)
	}
	return s * float64(n) / slots, nil
}

// ToAbsolute is the inverse of ToRelative: it turns a relative fraction back
// into an absolute gap.
//
//	s = (total / (n + f*(n-1))) * f
func ToAbsolute(f, total float64, n int) (float64, error) {
	if err := checkSpacingArgs(f, total, n); err != nil {
		return 0, err
	}
	return total / (float64(n) + f*float64(n-1)) * f, nil
}

func checkSpacingArgs(v, total float64, n int) error {
	switch {
	case n < 1:
		return errors.Configuration("slot count must be at least 1, got %d", n)
	case !(total > 0) || math.IsInf(total, 0):
		return errors.Configuration("total dimension must be positive, got %g", total)
	case !(v >= 0) || math.IsInf(v, 0):
		return errors.Configuration("spacing must be non-negative, got %g", v)
	}
	return nil
}
