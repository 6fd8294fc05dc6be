package numband

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/crystalix007/numband/interval"
)

// Editor owns the current partition for a piece of number-list text, along
// with annotations that fell out of it.
//
// An Editor is not safe for concurrent use.
type Editor struct {
	logger    *zap.Logger
	text      string
	partition Partition
	history   []RetainedRecord

	// index is built lazily for Locate and dropped on every mutation.
	index *interval.Index[int]
}

// EditorOption configures an [Editor].
type EditorOption func(*Editor)

// WithLogger sets the logger used by the editor.
func WithLogger(logger *zap.Logger) EditorOption {
	return func(e *Editor) {
		e.logger = logger
	}
}

// NewEditor creates an editor over empty text, i.e. a single band covering
// the whole real line.
func NewEditor(opts ...EditorOption) *Editor {
	e := &Editor{
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	// Building from no numbers cannot fail.
	e.partition, _ = Build(nil)

	return e
}

// SetText replaces the number-list text, rebuilds the partition from the
// numbers it contains and reconciles it with the previous partition and the
// retained history. It returns the new history.
func (e *Editor) SetText(text string) ([]RetainedRecord, error) {
	numbers := Extract(text)

	next, err := Build(numbers)
	if err != nil {
		return nil, errors.Wrap(err, "build partition")
	}

	reconciled, retained, err := ReconcileHistory(e.partition, e.history, next)
	if err != nil {
		e.logger.Warn("dropped malformed history records", zap.Error(err))
	}

	e.logger.Debug("reconciled partition",
		zap.Int("numbers", len(numbers)),
		zap.Int("bands", len(reconciled)),
		zap.Int("retained", len(retained)),
	)

	e.text = text
	e.partition = reconciled
	e.history = retained
	e.index = nil

	return e.History(), nil
}

// Text returns the text last passed to SetText.
func (e *Editor) Text() string {
	return e.text
}

// Partition returns a copy of the current partition.
func (e *Editor) Partition() Partition {
	return e.partition.Clone()
}

// Numbers returns the boundary values of the current partition.
func (e *Editor) Numbers() []float64 {
	return e.partition.Numbers()
}

// History returns a copy of the retained records.
func (e *Editor) History() []RetainedRecord {
	if e.history == nil {
		return nil
	}

	return append([]RetainedRecord(nil), e.history...)
}

// Toggle changes the inclusivity of one endpoint of band i. See
// [Partition.Toggle].
func (e *Editor) Toggle(i int, side Side, inclusive bool) error {
	if err := e.partition.Toggle(i, side, inclusive); err != nil {
		e.logger.Debug("toggle refused",
			zap.Int("band", i),
			zap.Stringer("side", side),
			zap.Bool("inclusive", inclusive),
			zap.Error(err),
		)

		return err
	}

	e.index = nil

	return nil
}

// Annotate sets the annotation of band i.
func (e *Editor) Annotate(i int, annotation string) error {
	if i < 0 || i >= len(e.partition) {
		return errors.Wrapf(ErrNoSuchBand, "band %d of %d", i, len(e.partition))
	}

	e.partition[i].Annotation = annotation

	return nil
}

// Locate returns the index of the band containing x.
func (e *Editor) Locate(x float64) (int, error) {
	if e.index == nil {
		e.index = interval.NewIndex[int]()

		for i, band := range e.partition {
			e.index.Add(band.Interval, i)
		}
	}

	bands, ok, err := e.index.Containing(x)
	if err != nil {
		return 0, err
	}

	if !ok || len(bands) != 1 {
		return 0, errors.Wrapf(ErrAdjacencyViolation, "%v lies in %d bands", x, len(bands))
	}

	return bands[0], nil
}

// LoadHistory replaces the retained records with those read from r.
// Malformed lines are dropped and reported in the returned error.
func (e *Editor) LoadHistory(r io.Reader) error {
	records, err := ParseHistory(r)

	e.history = records

	if err != nil {
		e.logger.Warn("dropped malformed history records", zap.Error(err))
	}

	return err
}

// WriteHistory writes the retained records to w.
func (e *Editor) WriteHistory(w io.Writer) error {
	return WriteHistory(w, e.history)
}
