package numband

import (
	"fmt"

	"github.com/pkg/errors"
)

// Side selects one endpoint of a band.
type Side int

const (
	// Lower is the endpoint shared with the previous band.
	Lower Side = iota
	// Upper is the endpoint shared with the next band.
	Upper
)

// String returns "lower" or "upper".
func (s Side) String() string {
	switch s {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Toggle sets the inclusivity of one endpoint of band i, flipping the
// matching endpoint of the neighbouring band so that the shared value stays
// in exactly one of them.
//
// Asking for the inclusivity the endpoint already has is a no-op. Either
// both endpoints change or neither does.
func (p Partition) Toggle(i int, side Side, inclusive bool) error {
	switch side {
	case Lower:
		return p.ToggleLower(i, inclusive)
	case Upper:
		return p.ToggleUpper(i, inclusive)
	default:
		return errors.Errorf("unknown side %v", side)
	}
}

// ToggleLower sets the inclusivity of band i's lower bound and the previous
// band's upper bound accordingly.
func (p Partition) ToggleLower(i int, inclusive bool) error {
	if i < 0 || i >= len(p) {
		return errors.Wrapf(ErrNoSuchBand, "band %d of %d", i, len(p))
	}

	target := p[i].Interval

	if target.Lower().Inclusive() == inclusive {
		return nil
	}

	if i == 0 {
		return errors.Wrap(ErrAdjacencyViolation, "the first band has no previous band")
	}

	previous := p[i-1].Interval

	if previous.Upper().Inclusive() == target.Lower().Inclusive() {
		return errors.Wrapf(
			ErrAdjacencyViolation,
			"bands %d and %d agree on the inclusivity of %v", i-1, i, target.Lower().Value(),
		)
	}

	lower, err := target.Lower().WithInclusive(inclusive)
	if err != nil {
		return errors.Wrapf(ErrAdjacencyViolation, "band %d: %v", i, err)
	}

	upper, err := previous.Upper().WithInclusive(!inclusive)
	if err != nil {
		return errors.Wrapf(ErrAdjacencyViolation, "band %d: %v", i-1, err)
	}

	newTarget, err := target.WithLower(lower)
	if err != nil {
		return err
	}

	newPrevious, err := previous.WithUpper(upper)
	if err != nil {
		return err
	}

	p[i].Interval = newTarget
	p[i-1].Interval = newPrevious

	return nil
}

// ToggleUpper sets the inclusivity of band i's upper bound and the next
// band's lower bound accordingly.
func (p Partition) ToggleUpper(i int, inclusive bool) error {
	if i < 0 || i >= len(p) {
		return errors.Wrapf(ErrNoSuchBand, "band %d of %d", i, len(p))
	}

	if p[i].Interval.Upper().Inclusive() == inclusive {
		return nil
	}

	if i == len(p)-1 {
		return errors.Wrap(ErrAdjacencyViolation, "the last band has no next band")
	}

	if p[i+1].Interval.Lower().Inclusive() == p[i].Interval.Upper().Inclusive() {
		return errors.Wrapf(
			ErrAdjacencyViolation,
			"bands %d and %d agree on the inclusivity of %v", i, i+1, p[i].Interval.Upper().Value(),
		)
	}

	// Band i's upper bound is band i+1's lower bound seen from the other side.
	return p.ToggleLower(i+1, !inclusive)
}
