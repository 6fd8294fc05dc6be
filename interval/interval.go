// Package interval models intervals over the extended real line, with
// inclusive or exclusive endpoints, and a canonical text form for them.
package interval

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Interval is the set of reals between a lower and an upper bound.
//
// The lower value is always strictly smaller than the upper value; point
// intervals are not representable.
type Interval struct {
	lower Bound
	upper Bound
}

// New creates a validated interval.
func New(lower, upper Bound) (Interval, error) {
	if lower.value > upper.value {
		return Interval{}, errors.Wrapf(ErrBoundsNotOrdered, "%v > %v", lower.value, upper.value)
	}

	if lower.value == upper.value {
		return Interval{}, errors.Wrapf(ErrDegenerateInterval, "both bounds are %v", lower.value)
	}

	return Interval{lower: lower, upper: upper}, nil
}

// MustNew is like [New] but panics on invalid bounds. It is intended for
// literals whose validity is known up front.
func MustNew(lower, upper Bound) Interval {
	iv, err := New(lower, upper)
	if err != nil {
		panic(err)
	}

	return iv
}

// Lower returns the lower bound.
func (i Interval) Lower() Bound { return i.lower }

// Upper returns the upper bound.
func (i Interval) Upper() Bound { return i.upper }

// WithLower returns a copy of the interval with a different lower bound.
func (i Interval) WithLower(lower Bound) (Interval, error) {
	return New(lower, i.upper)
}

// WithUpper returns a copy of the interval with a different upper bound.
func (i Interval) WithUpper(upper Bound) (Interval, error) {
	return New(i.lower, upper)
}

// Contains reports whether x lies within the interval.
func (i Interval) Contains(x float64) (bool, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false, errors.Wrapf(ErrNotARealNumber, "got %v", x)
	}

	aboveLower := x > i.lower.value || (i.lower.inclusive && x == i.lower.value)
	belowUpper := x < i.upper.value || (i.upper.inclusive && x == i.upper.value)

	return aboveLower && belowUpper, nil
}

// Equal reports whether both bounds of the intervals are equal.
func (i Interval) Equal(other Interval) bool {
	return i == other
}

// SameValues reports whether the intervals span the same values, ignoring
// whether their endpoints are inclusive.
func (i Interval) SameValues(other Interval) bool {
	return i.lower.value == other.lower.value && i.upper.value == other.upper.value
}

// String returns the canonical form of the interval, e.g. "[ 10 , 20 )".
//
// Square brackets mark inclusive endpoints, parentheses exclusive ones. The
// result is accepted by [Parse].
func (i Interval) String() string {
	var sb strings.Builder

	if i.lower.inclusive {
		sb.WriteString("[ ")
	} else {
		sb.WriteString("( ")
	}

	sb.WriteString(formatValue(i.lower.value))
	sb.WriteString(" , ")
	sb.WriteString(formatValue(i.upper.value))

	if i.upper.inclusive {
		sb.WriteString(" ]")
	} else {
		sb.WriteString(" )")
	}

	return sb.String()
}

const (
	// Magnitudes in [minPlainMagnitude, maxPlainMagnitude) are written
	// without an exponent.
	minPlainMagnitude = 1e-6
	maxPlainMagnitude = 1e21

	positiveInfinityToken = "Infinity"
	negativeInfinityToken = "-Infinity"
)

// formatValue renders a bound value using the shortest representation that
// parses back to the same float64.
func formatValue(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return positiveInfinityToken
	case math.IsInf(v, -1):
		return negativeInfinityToken
	}

	magnitude := math.Abs(v)

	if v == 0 || (magnitude >= minPlainMagnitude && magnitude < maxPlainMagnitude) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	return strconv.FormatFloat(v, 'e', -1, 64)
}
