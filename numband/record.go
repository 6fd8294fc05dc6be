package numband

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/crystalix007/numband/interval"
)

// recordSeparator separates the interval from the annotation in the text
// form of a record.
const recordSeparator = " => "

// RetainedRecord is an annotation whose band no longer exists, kept so that
// it can be shown, undone, or picked up again by a later edit.
type RetainedRecord struct {
	// Interval is the canonical form of the band's interval.
	Interval   string `yaml:"interval"`
	Annotation string `yaml:"annotation"`
}

// String returns the record as "<interval> => <annotation>".
func (r RetainedRecord) String() string {
	return r.Interval + recordSeparator + r.Annotation
}

// ParseRecord reads a record in the form produced by [RetainedRecord.String].
// Errors wrap [interval.ErrMalformedInterval].
func ParseRecord(line string) (RetainedRecord, error) {
	canonical, annotation, found := strings.Cut(line, recordSeparator)
	if !found {
		return RetainedRecord{}, errors.Wrapf(interval.ErrMalformedInterval, "%q: missing %q", line, recordSeparator)
	}

	iv, err := interval.Parse(canonical)
	if err != nil {
		return RetainedRecord{}, err
	}

	return RetainedRecord{Interval: iv.String(), Annotation: annotation}, nil
}

// ParseHistory reads one record per line. Blank lines are skipped and
// malformed lines are dropped; the returned error describes every dropped
// line and may be non-nil alongside a usable result.
func ParseHistory(r io.Reader) ([]RetainedRecord, error) {
	var (
		records []RetainedRecord
		errs    error
	)

	scanner := bufio.NewScanner(r)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++

		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			continue
		}

		record, err := ParseRecord(line)
		if err != nil {
			errs = multierr.Append(errs, errors.WithMessagef(err, "line %d", lineNumber))

			continue
		}

		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		errs = multierr.Append(errs, errors.Wrap(err, "read history"))
	}

	return records, errs
}

// WriteHistory writes one record per line in the form read by
// [ParseHistory].
func WriteHistory(w io.Writer, records []RetainedRecord) error {
	for _, record := range records {
		if _, err := fmt.Fprintln(w, record); err != nil {
			return errors.Wrap(err, "write history")
		}
	}

	return nil
}
