package interval

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// canonicalTokenCount is the number of whitespace separated tokens in the
// canonical form: opening bracket, lower value, comma, upper value, closing
// bracket.
const canonicalTokenCount = 5

// numberPattern matches the values [Interval.String] writes.
var numberPattern = regexp.MustCompile(`^-?(\d+(\.\d+)?(e[+-]\d+)?|Infinity)$`)

// Parse reads an interval in the canonical form produced by
// [Interval.String]. Every failure wraps [ErrMalformedInterval].
//
// Only the canonical form is accepted; this is not a general interval
// notation parser.
func Parse(s string) (Interval, error) {
	tokens := strings.Fields(s)

	if len(tokens) != canonicalTokenCount {
		return Interval{}, errors.Wrapf(
			ErrMalformedInterval,
			"%q: expected %d tokens, got %d", s, canonicalTokenCount, len(tokens),
		)
	}

	open, lowerToken, comma, upperToken, closing := tokens[0], tokens[1], tokens[2], tokens[3], tokens[4]

	if open != "[" && open != "(" {
		return Interval{}, errors.Wrapf(ErrMalformedInterval, "%q: bad opening bracket %q", s, open)
	}

	if comma != "," {
		return Interval{}, errors.Wrapf(ErrMalformedInterval, "%q: expected separator, got %q", s, comma)
	}

	if closing != "]" && closing != ")" {
		return Interval{}, errors.Wrapf(ErrMalformedInterval, "%q: bad closing bracket %q", s, closing)
	}

	lowerValue, err := parseValue(lowerToken)
	if err != nil {
		return Interval{}, errors.Wrapf(ErrMalformedInterval, "%q: lower value: %v", s, err)
	}

	upperValue, err := parseValue(upperToken)
	if err != nil {
		return Interval{}, errors.Wrapf(ErrMalformedInterval, "%q: upper value: %v", s, err)
	}

	lower, err := NewBound(lowerValue, open == "[")
	if err != nil {
		return Interval{}, errors.Wrapf(ErrMalformedInterval, "%q: lower bound: %v", s, err)
	}

	upper, err := NewBound(upperValue, closing == "]")
	if err != nil {
		return Interval{}, errors.Wrapf(ErrMalformedInterval, "%q: upper bound: %v", s, err)
	}

	iv, err := New(lower, upper)
	if err != nil {
		return Interval{}, errors.Wrapf(ErrMalformedInterval, "%q: %v", s, err)
	}

	return iv, nil
}

func parseValue(token string) (float64, error) {
	switch token {
	case positiveInfinityToken:
		return math.Inf(1), nil
	case negativeInfinityToken:
		return math.Inf(-1), nil
	}

	if !numberPattern.MatchString(token) {
		return 0, errors.Errorf("not a number: %q", token)
	}

	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %q", token)
	}

	if math.IsInf(v, 0) {
		return 0, errors.Errorf("out of range: %q", token)
	}

	return v, nil
}
