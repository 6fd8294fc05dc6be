package numband

import (
	"go.uber.org/multierr"

	"github.com/crystalix007/numband/interval"
)

// candidate is a previously annotated interval that a new band may take
// over.
type candidate struct {
	interval   interval.Interval
	annotation string
	consumed   bool
}

// Reconcile carries annotations and endpoint inclusivity from an old
// partition over to a newly built one.
//
// A new band takes over from the first unused old band spanning exactly the
// same values. Inclusivity is applied on a best-effort basis: a toggle that
// the new neighbours do not allow is skipped, and the annotation is carried
// regardless. Old bands left over with a non-empty annotation are returned
// as retained records; the rest are dropped. next is not modified.
func Reconcile(old, next Partition) (Partition, []RetainedRecord) {
	return reconcile(partitionCandidates(old), next)
}

// ReconcileHistory is like [Reconcile], but previously retained records are
// also considered, after the bands of old, so that an annotation returns
// once its interval reappears.
//
// Records that cannot be parsed are dropped; the returned error describes
// them and never prevents reconciliation.
func ReconcileHistory(old Partition, history []RetainedRecord, next Partition) (Partition, []RetainedRecord, error) {
	candidates := partitionCandidates(old)

	var errs error

	for _, record := range history {
		iv, err := interval.Parse(record.Interval)
		if err != nil {
			errs = multierr.Append(errs, err)

			continue
		}

		candidates = append(candidates, &candidate{interval: iv, annotation: record.Annotation})
	}

	result, retained := reconcile(candidates, next)

	return result, retained, errs
}

func partitionCandidates(p Partition) []*candidate {
	candidates := make([]*candidate, len(p))

	for i, band := range p {
		candidates[i] = &candidate{interval: band.Interval, annotation: band.Annotation}
	}

	return candidates
}

func reconcile(candidates []*candidate, next Partition) (Partition, []RetainedRecord) {
	result := next.Clone()

	for i := range result {
		for _, c := range candidates {
			if c.consumed || !c.interval.SameValues(result[i].Interval) {
				continue
			}

			// Neighbours built differently may refuse the toggle; the
			// annotation is still carried.
			_ = result.ToggleLower(i, c.interval.Lower().Inclusive())
			_ = result.ToggleUpper(i, c.interval.Upper().Inclusive())

			result[i].Annotation = c.annotation
			c.consumed = true

			break
		}
	}

	var retained []RetainedRecord

	for _, c := range candidates {
		if c.consumed || c.annotation == "" {
			continue
		}

		retained = append(retained, RetainedRecord{
			Interval:   c.interval.String(),
			Annotation: c.annotation,
		})
	}

	return result, retained
}
