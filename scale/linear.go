package scale

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// interpolate maps `x` from [d0, d1] to [r0, r1].
// A degenerate domain maps every value to the middle of the range.
func interpolate(d0, d1, r0, r1, x float64, clamp bool) float64 {
	var t float64
	if d1 == d0 {
		t = 0.5
	} else {
		t = (x - d0) / (d1 - d0)
	}
	if clamp {
		t = math.Max(0, math.Min(1, t))
	}
	return r0*(1-t) + r1*t
}

// Linear maps a numeric domain to a range with a linear function.
// Values outside the domain are extrapolated unless Clamp is set.
type Linear struct {
	Domain [2]float64
	Range  [2]float64
	Clamp  bool
}

// NewLinear returns an unclamped scale.
func NewLinear(domain, rng [2]float64) Linear {
	return Linear{Domain: domain, Range: rng}
}

// Map returns the range value for `x`.
func (s Linear) Map(x float64) float64 {
	return interpolate(s.Domain[0], s.Domain[1], s.Range[0], s.Range[1], x, s.Clamp)
}

// Invert returns the domain value for the range value `y`.
func (s Linear) Invert(y float64) float64 {
	return interpolate(s.Range[0], s.Range[1], s.Domain[0], s.Domain[1], y, s.Clamp)
}

// Ticks returns about `count` round values inside the domain.
func (s Linear) Ticks(count int) []float64 {
	return Ticks(s.Domain[0], s.Domain[1], count)
}

// TickFormat returns a function formatting the values returned
// by Ticks(count): thousands are grouped and the number of decimals
// is just enough to distinguish two adjacent ticks.
func (s Linear) TickFormat(count int) func(float64) string {
	step := TickStep(s.Domain[0], s.Domain[1], count)
	return FixedFormat(precisionFixed(step))
}

// precisionFixed returns the number of decimals needed
// to write multiples of `step`.
func precisionFixed(step float64) int {
	step = math.Abs(step)
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return 0
	}
	_, exp := decimalExponent(step)
	if exp >= 0 {
		return 0
	}
	return -exp
}

// decimalExponent returns the mantissa and the exponent of
// the scientific notation of x (x = m * 10^exp, 1 <= m < 10).
func decimalExponent(x float64) (float64, int) {
	exp := int(math.Floor(math.Log10(x)))
	m := x / math.Pow10(exp)
	// correct the rounding of Log10 for exact powers of ten
	if m >= 10-1e-9 {
		exp++
		m /= 10
	}
	return m, exp
}

var printer = message.NewPrinter(language.English)

// FixedFormat returns a function writing numbers with `decimals` digits
// after the point and grouped thousands, like 1,234.50.
// Negative numbers use the typographic minus sign.
func FixedFormat(decimals int) func(float64) string {
	return func(v float64) string {
		if math.IsNaN(v) {
			return "NaN"
		}
		neg := v < 0
		if neg {
			v = -v
		}
		s := printer.Sprint(number.Decimal(v,
			number.MinFractionDigits(decimals),
			number.MaxFractionDigits(decimals)))
		if neg && strings.Trim(s, "0.,") != "" {
			s = "−" + s
		}
		return s
	}
}
