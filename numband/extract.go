package numband

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Extract returns the distinct numbers found in free-form text, in order of
// first occurrence.
//
// Runs of digits and decimal points form numbers; anything else separates
// them. A minus sign makes the following number negative only when it does
// not directly follow another number, so "10-20" reads as 10 and 20 while
// "10 -20" reads as 10 and -20.
func Extract(text string) []float64 {
	var (
		result        []float64
		buffer        strings.Builder
		maybeNegative bool
	)

	flush := func() {
		if buffer.Len() == 0 {
			return
		}

		v, ok := parseLeadingNumber(buffer.String())
		buffer.Reset()

		if !ok || slices.Contains(result, v) {
			return
		}

		result = append(result, v)
	}

	for _, r := range text {
		if r == '-' && buffer.Len() == 0 {
			maybeNegative = true

			continue
		}

		numeric := isNumericRune(r)

		if numeric {
			if maybeNegative {
				buffer.WriteByte('-')
			}

			buffer.WriteRune(r)
		}

		maybeNegative = false

		if !numeric {
			flush()
		}
	}

	flush()

	return result
}

// CleanUp rewrites free-form text as the sorted, space separated list of
// the numbers it contains.
func CleanUp(text string) string {
	numbers := Extract(text)
	slices.Sort(numbers)

	fields := make([]string, len(numbers))

	for i, n := range numbers {
		fields[i] = strconv.FormatFloat(n, 'f', -1, 64)
	}

	return strings.Join(fields, " ")
}

func isNumericRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.'
}

// parseLeadingNumber parses the longest prefix of s shaped like
// -?digits[.digits], so "1.2.3" yields 1.2 and "." yields nothing.
func parseLeadingNumber(s string) (float64, bool) {
	end := 0

	if strings.HasPrefix(s, "-") {
		end = 1
	}

	digits := 0
	seenPoint := false

	for ; end < len(s); end++ {
		c := s[end]

		if c == '.' {
			if seenPoint {
				break
			}

			seenPoint = true

			continue
		}

		if c < '0' || c > '9' {
			break
		}

		digits++
	}

	if digits == 0 {
		return 0, false
	}

	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false
	}

	if v == 0 {
		v = 0
	}

	return v, true
}
