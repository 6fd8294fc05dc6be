package numband_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crystalix007/numband/interval"
	"github.com/crystalix007/numband/numband"
)

func TestRetainedRecord_String(t *testing.T) {
	t.Parallel()

	record := numband.RetainedRecord{Interval: "[ 10 , Infinity )", Annotation: "b"}

	require.Equal(t, "[ 10 , Infinity ) => b", record.String())
}

func TestParseRecord(t *testing.T) {
	t.Parallel()

	t.Run("Valid", func(t *testing.T) {
		t.Parallel()

		record, err := numband.ParseRecord("( 1 , 2 ] => some => text")

		require.NoError(t, err)
		require.Equal(t, numband.RetainedRecord{Interval: "( 1 , 2 ]", Annotation: "some => text"}, record)
	})

	t.Run("Canonicalised", func(t *testing.T) {
		t.Parallel()

		record, err := numband.ParseRecord("(  1.50 ,  2 ] => x")

		require.NoError(t, err)
		require.Equal(t, "( 1.5 , 2 ]", record.Interval)
	})

	t.Run("MissingSeparator", func(t *testing.T) {
		t.Parallel()

		_, err := numband.ParseRecord("( 1 , 2 ]")

		require.ErrorIs(t, err, interval.ErrMalformedInterval)
	})

	t.Run("BadInterval", func(t *testing.T) {
		t.Parallel()

		_, err := numband.ParseRecord("(1,2] => x")

		require.ErrorIs(t, err, interval.ErrMalformedInterval)
	})
}

func TestHistory_roundTrip(t *testing.T) {
	t.Parallel()

	records := []numband.RetainedRecord{
		{Interval: "[ 10 , Infinity )", Annotation: "b"},
		{Interval: "( -Infinity , -2.5 ]", Annotation: ""},
	}

	var buf bytes.Buffer

	require.NoError(t, numband.WriteHistory(&buf, records))

	parsed, err := numband.ParseHistory(&buf)

	require.NoError(t, err)
	require.Equal(t, records, parsed)
}

func TestParseHistory_dropsMalformed(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"[ 1 , 2 ) => one",
		"",
		"garbage",
		"[ 3 , 3 ] => degenerate",
		"( 4 , 5 ) => two",
	}, "\n")

	records, err := numband.ParseHistory(strings.NewReader(input))

	require.ErrorIs(t, err, interval.ErrMalformedInterval)
	require.ErrorContains(t, err, "line 3")
	require.ErrorContains(t, err, "line 4")
	require.Equal(t, []numband.RetainedRecord{
		{Interval: "[ 1 , 2 )", Annotation: "one"},
		{Interval: "( 4 , 5 )", Annotation: "two"},
	}, records)
}
