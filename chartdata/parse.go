package chartdata

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// timestamp layouts, tried in order. Layouts without a zone are read as UTC.
var timeLayouts = [...]string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01",
	"2006",
	time.RFC1123,
	time.RFC1123Z,
	"Jan 2, 2006",
	"January 2, 2006",
	"Mon Jan 2 2006",
	"01/02/2006",
	"2006/01/02",
}

// ParseTimestamp parses a date or date-time and returns the number
// of milliseconds since the Unix epoch.
// The boolean is false when `s` is not a recognized timestamp.
func ParseTimestamp(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), false
	}
	for _, layout := range timeLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return float64(t.UnixMilli()), true
		}
	}
	return math.NaN(), false
}

var leadingFloat = regexp.MustCompile(`^[+-]?(Infinity|(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?)`)

// ParseMagnitude drops the first character of `s`, assumed to be
// a unit symbol such as a currency sign, and reads the longest
// decimal number at the start of the rest ("$12.5k" is 12.5).
// The boolean is false when no number can be read.
func ParseMagnitude(s string) (float64, bool) {
	if s == "" {
		return math.NaN(), false
	}
	_, size := utf8.DecodeRuneInString(s)
	return parseLeadingFloat(s[size:])
}

func parseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	m := leadingFloat.FindString(s)
	if m == "" {
		return math.NaN(), false
	}
	if strings.HasSuffix(m, "Infinity") {
		if strings.HasPrefix(m, "-") {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN(), false
	}
	return v, true
}
