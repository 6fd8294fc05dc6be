// Package numband maps the real line onto bands delimited by a user supplied
// set of numbers, and keeps per-band annotations across edits of that set.
package numband

import (
	"math"
	"slices"

	"github.com/pkg/errors"

	"github.com/crystalix007/numband/interval"
)

// Band is one element of a partition: an interval and the text attached to
// it.
type Band struct {
	Interval   interval.Interval
	Annotation string
}

// Partition is an ordered sequence of bands covering the whole real line.
//
// Neighbouring bands share their boundary value, and exactly one of them
// includes it. The first band starts at -Inf and the last ends at +Inf.
type Partition []Band

// Build partitions the real line at the given numbers.
//
// Every number becomes the inclusive upper bound of the band below it and
// the exclusive lower bound of the band above it. The input need not be
// sorted; duplicates are ignored.
func Build(numbers []float64) (Partition, error) {
	sorted := slices.Clone(numbers)

	for _, n := range sorted {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, errors.Wrapf(interval.ErrInvalidValue, "cannot partition at %v", n)
		}
	}

	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	partition := make(Partition, 0, len(sorted)+1)
	lower := interval.Unbounded(-1)

	for _, n := range sorted {
		upper, err := interval.NewBound(n, true)
		if err != nil {
			return nil, err
		}

		iv, err := interval.New(lower, upper)
		if err != nil {
			return nil, err
		}

		partition = append(partition, Band{Interval: iv})

		// The value just used becomes the next band's exclusive lower bound.
		lower, err = upper.WithInclusive(false)
		if err != nil {
			return nil, err
		}
	}

	iv, err := interval.New(lower, interval.Unbounded(1))
	if err != nil {
		return nil, err
	}

	return append(partition, Band{Interval: iv}), nil
}

// Clone returns a copy of the partition that can be modified independently.
func (p Partition) Clone() Partition {
	return slices.Clone(p)
}

// Numbers returns the boundary values between bands, in ascending order.
func (p Partition) Numbers() []float64 {
	if len(p) == 0 {
		return nil
	}

	numbers := make([]float64, 0, len(p)-1)

	for _, band := range p[:len(p)-1] {
		numbers = append(numbers, band.Interval.Upper().Value())
	}

	return numbers
}

// Intervals returns the intervals of all bands.
func (p Partition) Intervals() []interval.Interval {
	intervals := make([]interval.Interval, len(p))

	for i, band := range p {
		intervals[i] = band.Interval
	}

	return intervals
}

// Validate checks that the partition covers the real line with no gaps and
// no overlaps.
func (p Partition) Validate() error {
	if len(p) == 0 {
		return errors.Wrap(ErrAdjacencyViolation, "empty partition")
	}

	if first := p[0].Interval.Lower(); first != interval.Unbounded(-1) {
		return errors.Wrapf(ErrAdjacencyViolation, "band 0 starts at %v, not -Inf", first.Value())
	}

	last := len(p) - 1

	if end := p[last].Interval.Upper(); end != interval.Unbounded(1) {
		return errors.Wrapf(ErrAdjacencyViolation, "band %d ends at %v, not +Inf", last, end.Value())
	}

	for i := 0; i < last; i++ {
		upper := p[i].Interval.Upper()
		lower := p[i+1].Interval.Lower()

		if upper.Value() != lower.Value() {
			return errors.Wrapf(
				ErrAdjacencyViolation,
				"band %d ends at %v but band %d starts at %v", i, upper.Value(), i+1, lower.Value(),
			)
		}

		if upper.Inclusive() == lower.Inclusive() {
			return errors.Wrapf(
				ErrAdjacencyViolation,
				"%v must be included by exactly one of bands %d and %d", upper.Value(), i, i+1,
			)
		}
	}

	return nil
}
