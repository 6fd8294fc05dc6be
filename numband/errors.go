package numband

import "github.com/pkg/errors"

var (
	// ErrAdjacencyViolation is returned when a change would leave a gap or an
	// overlap between two neighbouring bands.
	ErrAdjacencyViolation = errors.New("adjacency violation")

	// ErrNoSuchBand is returned when a band index is out of range.
	ErrNoSuchBand = errors.New("no such band")
)
