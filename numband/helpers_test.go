package numband_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/crystalix007/numband/interval"
	"github.com/crystalix007/numband/numband"
)

// compareIntervals lets cmp look at intervals through their own equality.
var compareIntervals = cmp.Comparer(func(a, b interval.Interval) bool {
	return a.Equal(b)
})

func parseInterval(t *testing.T, s string) interval.Interval {
	t.Helper()

	iv, err := interval.Parse(s)
	require.NoError(t, err)

	return iv
}

// partitionOf builds a partition from canonical interval strings and
// annotations given in pairs.
func partitionOf(t *testing.T, pairs ...string) numband.Partition {
	t.Helper()

	require.Zero(t, len(pairs)%2, "intervals and annotations must come in pairs")

	p := make(numband.Partition, 0, len(pairs)/2)

	for i := 0; i < len(pairs); i += 2 {
		p = append(p, numband.Band{
			Interval:   parseInterval(t, pairs[i]),
			Annotation: pairs[i+1],
		})
	}

	return p
}

func requirePartition(t *testing.T, expected, actual numband.Partition) {
	t.Helper()

	if diff := cmp.Diff(expected, actual, compareIntervals); diff != "" {
		t.Fatalf("partition mismatch (-want +got):\n%s", diff)
	}
}
