package interval

import "github.com/pkg/errors"

var (
	// ErrInvalidValue is returned when a bound value is not a real number.
	ErrInvalidValue = errors.New("bound value must be a real number")

	// ErrInfiniteInclusive is returned when an infinite bound is requested to
	// be inclusive. Infinities are never included in an interval.
	ErrInfiniteInclusive = errors.New("infinite bound cannot be inclusive")

	// ErrBoundsNotOrdered is returned when the lower bound of an interval is
	// greater than its upper bound.
	ErrBoundsNotOrdered = errors.New("interval bounds must range from smaller to larger values")

	// ErrDegenerateInterval is returned when both bounds of an interval share
	// the same value.
	ErrDegenerateInterval = errors.New("interval bounds must be distinct")

	// ErrNotARealNumber is returned when a containment query is made for a
	// value that is not a finite real number.
	ErrNotARealNumber = errors.New("containment is only defined for finite reals")

	// ErrMalformedInterval is returned when a string is not in the canonical
	// interval form.
	ErrMalformedInterval = errors.New("malformed interval")
)
