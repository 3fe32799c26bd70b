// Package scale implements continuous mappings from a data domain
// to a pixel range, and the computation of "nice" tick values
// (multiples of 1, 2, 5 and their powers of ten) used to label axes.
package scale

import "math"

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// round rounds half-way cases toward +Inf
func round(x float64) float64 { return math.Floor(x + 0.5) }

// tickSpec returns the integer bounds [i1, i2] of the ticks in [start, stop]
// and the increment between them. A negative increment -k means
// the ticks are i/k, which avoids rounding errors for small steps.
func tickSpec(start, stop, count float64) (i1, i2, inc float64) {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)
	factor := 1.
	switch {
	case e >= e10:
		factor = 10
	case e >= e5:
		factor = 5
	case e >= e2:
		factor = 2
	}
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = round(start * inc)
		i2 = round(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = round(start / inc)
		i2 = round(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && 0.5 <= count && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}

// Ticks returns about `count` evenly spaced, round values
// between start and stop (inclusive), in the order of the bounds.
// It returns nil if count is not positive, and [start] when start == stop.
func Ticks(start, stop float64, count int) []float64 {
	if count <= 0 || math.IsNaN(start) || math.IsNaN(stop) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	var i1, i2, inc float64
	if reverse {
		i1, i2, inc = tickSpec(stop, start, float64(count))
	} else {
		i1, i2, inc = tickSpec(start, stop, float64(count))
	}
	if !(i2 >= i1) || math.IsInf(i2-i1, 0) {
		return nil
	}
	n := int(i2-i1) + 1
	out := make([]float64, n)
	for i := range out {
		k := i1 + float64(i)
		if reverse {
			k = i2 - float64(i)
		}
		if inc < 0 {
			out[i] = k / -inc
		} else {
			out[i] = k * inc
		}
	}
	return out
}

// TickIncrement is like TickStep, but when the step is lower than 1
// it returns the negated inverse of the step (-10 for 0.1),
// which is exact for integer arithmetic.
// It assumes start <= stop.
func TickIncrement(start, stop float64, count int) float64 {
	_, _, inc := tickSpec(start, stop, float64(count))
	return inc
}

// TickStep returns the distance between two adjacent values
// returned by Ticks(start, stop, count). It is negative when stop < start.
func TickStep(start, stop float64, count int) float64 {
	reverse := stop < start
	var inc float64
	if reverse {
		inc = TickIncrement(stop, start, count)
	} else {
		inc = TickIncrement(start, stop, count)
	}
	if inc < 0 {
		inc = 1 / -inc
	}
	if reverse {
		return -inc
	}
	return inc
}

// Extent returns the minimum and maximum of the values, ignoring NaN.
// It returns [0, 0] when there is no such value.
func Extent(values []float64) [2]float64 {
	out, found := [2]float64{}, false
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if !found {
			out, found = [2]float64{v, v}, true
			continue
		}
		out[0] = math.Min(out[0], v)
		out[1] = math.Max(out[1], v)
	}
	return out
}

// MaxExtent returns [0, max(values)], ignoring NaN.
// The lower bound is always 0, even if every value is negative.
// It returns [0, 0] when there is no such value.
func MaxExtent(values []float64) [2]float64 {
	return [2]float64{0, Extent(values)[1]}
}
