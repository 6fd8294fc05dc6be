package numband_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crystalix007/numband/interval"
	"github.com/crystalix007/numband/numband"
)

func TestReconcile(t *testing.T) {
	t.Parallel()

	t.Run("AddedNumber", func(t *testing.T) {
		t.Parallel()

		old := partitionOf(t,
			"( -Infinity , 10 )", "a",
			"[ 10 , Infinity )", "b",
		)
		next := buildPartition(t, 10, 20)

		result, retained := numband.Reconcile(old, next)

		// Only the first band keeps both of its values; [10, +Inf) is gone.
		requirePartition(t, partitionOf(t,
			"( -Infinity , 10 )", "a",
			"[ 10 , 20 ]", "",
			"( 20 , Infinity )", "",
		), result)
		require.NoError(t, result.Validate())
		require.Equal(t, []numband.RetainedRecord{
			{Interval: "[ 10 , Infinity )", Annotation: "b"},
		}, retained)

		// The new partition is not modified.
		requirePartition(t, buildPartition(t, 10, 20), next)
	})

	t.Run("RemovedNumber", func(t *testing.T) {
		t.Parallel()

		old := partitionOf(t,
			"( -Infinity , 10 ]", "low",
			"( 10 , 20 ]", "",
			"( 20 , Infinity )", "high",
		)

		result, retained := numband.Reconcile(old, buildPartition(t, 20))

		requirePartition(t, partitionOf(t,
			"( -Infinity , 20 ]", "",
			"( 20 , Infinity )", "high",
		), result)
		require.Equal(t, []numband.RetainedRecord{
			{Interval: "( -Infinity , 10 ]", Annotation: "low"},
		}, retained)
	})

	t.Run("EmptyAnnotationsDropped", func(t *testing.T) {
		t.Parallel()

		old := partitionOf(t,
			"( -Infinity , 10 )", "",
			"[ 10 , Infinity )", "",
		)

		_, retained := numband.Reconcile(old, buildPartition(t, 5))

		require.Empty(t, retained)
	})

	t.Run("InclusivityCarried", func(t *testing.T) {
		t.Parallel()

		old := partitionOf(t,
			"( -Infinity , 10 ]", "",
			"( 10 , 20 )", "middle",
			"[ 20 , Infinity )", "",
		)

		result, retained := numband.Reconcile(old, buildPartition(t, 10, 20))

		requirePartition(t, old, result)
		require.Empty(t, retained)
	})

	t.Run("LaterBandWinsSharedBoundary", func(t *testing.T) {
		t.Parallel()

		// Both old bands included 10; only one new band can.
		old := partitionOf(t,
			"( -Infinity , 10 ]", "a",
			"[ 10 , 20 )", "b",
		)

		result, retained := numband.Reconcile(old, buildPartition(t, 10, 20))

		require.NoError(t, result.Validate())
		requirePartition(t, partitionOf(t,
			"( -Infinity , 10 )", "a",
			"[ 10 , 20 )", "b",
			"[ 20 , Infinity )", "",
		), result)
		require.Empty(t, retained)
	})
}

func TestReconcileHistory(t *testing.T) {
	t.Parallel()

	old := partitionOf(t,
		"( -Infinity , 10 ]", "below",
		"( 10 , Infinity )", "",
	)
	history := []numband.RetainedRecord{
		{Interval: "[ 10 , 20 )", Annotation: "restored"},
		{Interval: "not an interval", Annotation: "lost"},
		{Interval: "( 30 , 40 ]", Annotation: "kept"},
	}

	result, retained, err := numband.ReconcileHistory(old, history, buildPartition(t, 10, 20))

	require.ErrorIs(t, err, interval.ErrMalformedInterval)
	requirePartition(t, partitionOf(t,
		"( -Infinity , 10 )", "below",
		"[ 10 , 20 )", "restored",
		"[ 20 , Infinity )", "",
	), result)
	require.NoError(t, result.Validate())
	require.Equal(t, []numband.RetainedRecord{
		{Interval: "( 30 , 40 ]", Annotation: "kept"},
	}, retained)
}

func TestReconcileHistory_partitionFirst(t *testing.T) {
	t.Parallel()

	old := partitionOf(t,
		"( -Infinity , Infinity )", "current",
	)
	history := []numband.RetainedRecord{
		{Interval: "( -Infinity , Infinity )", Annotation: "older"},
	}

	result, retained, err := numband.ReconcileHistory(old, history, buildPartition(t))

	require.NoError(t, err)
	require.Equal(t, "current", result[0].Annotation)
	require.Equal(t, history, retained)
}
