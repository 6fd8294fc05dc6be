package numband_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crystalix007/numband/numband"
)

func FuzzBuild(f *testing.F) {
	f.Add("10, 20.5, abc 30 10")
	f.Add("10-20 -5 .5 1.2.3")
	f.Add("")

	f.Fuzz(func(t *testing.T, text string) {
		numbers := numband.Extract(text)

		p, err := numband.Build(numbers)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		require.Len(t, p, len(numbers)+1)
		require.True(t, math.IsInf(p[0].Interval.Lower().Value(), -1))
		require.True(t, math.IsInf(p[len(p)-1].Interval.Upper().Value(), 1))

		for _, n := range numbers {
			inclusiveEndpoints := 0

			for _, band := range p {
				if band.Interval.Lower().Value() == n && band.Interval.Lower().Inclusive() {
					inclusiveEndpoints++
				}

				if band.Interval.Upper().Value() == n && band.Interval.Upper().Inclusive() {
					inclusiveEndpoints++
				}
			}

			require.Equal(t, 1, inclusiveEndpoints, "%v", n)
		}

		// Every toggle either keeps the partition valid or changes nothing.
		for i := range p {
			for _, side := range []numband.Side{numband.Lower, numband.Upper} {
				toggled := p.Clone()

				if err := toggled.Toggle(i, side, true); err != nil {
					requirePartition(t, p, toggled)

					continue
				}

				require.NoError(t, toggled.Validate())
			}
		}
	})
}
