package chartdata

import (
	"math"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	day := float64(time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC).UnixMilli())
	for _, test := range []struct {
		in  string
		exp float64
	}{
		{"2021-01-02", day},
		{" 2021-01-02 ", day},
		{"2021-01-02T00:00:00Z", day},
		{"2021-01-02T01:00:00+01:00", day},
		{"2021-01-02T06:00:00.5", day + 6*3600e3 + 500},
		{"2021-01-02 06:00", day + 6*3600e3},
		{"Jan 2, 2021", day},
		{"01/02/2021", day},
		{"2021/01/02", day},
		{"Sat, 02 Jan 2021 00:00:00 UTC", day},
	} {
		got, ok := ParseTimestamp(test.in)
		if !ok || got != test.exp {
			t.Errorf("%q: expected %v, got %v (%v)", test.in, test.exp, got, ok)
		}
	}
	for _, in := range []string{"", "yesterday", "2021-13-45"} {
		if v, ok := ParseTimestamp(in); ok || !math.IsNaN(v) {
			t.Errorf("%q: expected failure, got %v", in, v)
		}
	}
}

func TestParseMagnitude(t *testing.T) {
	for _, test := range []struct {
		in  string
		exp float64
	}{
		{"$10", 10},
		{"€12.5", 12.5},
		{"$12.5k", 12.5},
		{"$-3", -3},
		{"$ 7", 7},
		{"$.5", 0.5},
		{"$1e3", 1000},
		{"$1e", 1},
		{"$Infinity", math.Inf(1)},
		{"10", 0},
	} {
		got, ok := ParseMagnitude(test.in)
		if !ok || got != test.exp {
			t.Errorf("%q: expected %v, got %v (%v)", test.in, test.exp, got, ok)
		}
	}
	for _, in := range []string{"", "$", "$bad", "1"} {
		if v, ok := ParseMagnitude(in); ok || !math.IsNaN(v) {
			t.Errorf("%q: expected failure, got %v", in, v)
		}
	}
}
