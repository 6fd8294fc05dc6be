package interval

import (
	"math"

	"github.com/pkg/errors"
)

// Bound is one endpoint of an interval: a value, and whether that value is
// itself part of the interval.
//
// The zero Bound is the exclusive bound at 0. Bounds are comparable with ==.
type Bound struct {
	value     float64
	inclusive bool
}

// NewBound creates a validated bound.
func NewBound(value float64, inclusive bool) (Bound, error) {
	if math.IsNaN(value) {
		return Bound{}, errors.Wrapf(ErrInvalidValue, "got %v", value)
	}

	if math.IsInf(value, 0) && inclusive {
		return Bound{}, errors.Wrapf(ErrInfiniteInclusive, "got %v", value)
	}

	// Fold -0 into +0 so that equality and the canonical form agree.
	if value == 0 {
		value = 0
	}

	return Bound{value: value, inclusive: inclusive}, nil
}

// Unbounded returns the exclusive bound at -Inf (sign < 0) or +Inf.
func Unbounded(sign int) Bound {
	return Bound{value: math.Inf(sign)}
}

// Value returns the bound's value.
func (b Bound) Value() float64 { return b.value }

// Inclusive returns whether the bound's value belongs to the interval.
func (b Bound) Inclusive() bool { return b.inclusive }

// IsInfinite reports whether the bound is at -Inf or +Inf.
func (b Bound) IsInfinite() bool { return math.IsInf(b.value, 0) }

// Equal reports whether both the value and the inclusivity match.
func (b Bound) Equal(other Bound) bool {
	return b == other
}

// WithInclusive returns a copy of the bound with the given inclusivity.
func (b Bound) WithInclusive(inclusive bool) (Bound, error) {
	return NewBound(b.value, inclusive)
}
