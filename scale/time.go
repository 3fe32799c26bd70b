package scale

import (
	"math"
	"time"
)

const (
	durationSecond = 1e3
	durationMinute = 60 * durationSecond
	durationHour   = 60 * durationMinute
	durationDay    = 24 * durationHour
	durationWeek   = 7 * durationDay
	durationMonth  = 30 * durationDay
	durationYear   = 365 * durationDay
)

// TickLayout is the default layout of time tick labels
// (abbreviated month, day and two-digit year).
const TickLayout = "Jan 02, 06"

// Time maps a domain of instants, in milliseconds since the Unix epoch,
// to a range. Ticks fall on UTC calendar boundaries.
type Time struct {
	Domain [2]float64
	Range  [2]float64
	Clamp  bool
}

// NewTime returns an unclamped time scale.
func NewTime(domain, rng [2]float64) Time {
	return Time{Domain: domain, Range: rng}
}

// Map returns the range value for the instant `ms`.
func (s Time) Map(ms float64) float64 {
	return interpolate(s.Domain[0], s.Domain[1], s.Range[0], s.Range[1], ms, s.Clamp)
}

// Invert returns the instant for the range value `y`.
func (s Time) Invert(y float64) float64 {
	return interpolate(s.Range[0], s.Range[1], s.Domain[0], s.Domain[1], y, s.Clamp)
}

// Ticks returns about `count` instants inside the domain, all aligned on
// the same calendar interval (every 15 minutes, every 3 months, ...).
func (s Time) Ticks(count int) []float64 {
	start, stop := s.Domain[0], s.Domain[1]
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	if count <= 0 || math.IsNaN(start) || math.IsNaN(stop) {
		return nil
	}
	iv, ok := tickInterval(start, stop, count)
	if !ok {
		return nil
	}
	ticks := iv.rangeOf(start, stop+1) // inclusive stop
	if reverse {
		for i, j := 0, len(ticks)-1; i < j; i, j = i+1, j-1 {
			ticks[i], ticks[j] = ticks[j], ticks[i]
		}
	}
	return ticks
}

// TickFormat returns a function writing instants with TickLayout, in UTC.
func (s Time) TickFormat(int) func(float64) string {
	return TimeFormat(TickLayout)
}

// TimeFormat returns a function writing instants (in milliseconds)
// with the given time layout, in UTC.
func TimeFormat(layout string) func(float64) string {
	return func(ms float64) string {
		return toTime(ms).Format(layout)
	}
}

func toTime(ms float64) time.Time {
	return time.UnixMilli(int64(ms)).UTC()
}

func fromTime(t time.Time) float64 { return float64(t.UnixMilli()) }

type unit uint8

const (
	millisecond unit = iota
	second
	minute
	hour
	day
	week
	month
	year
)

// interval is a calendar interval, repeated every `step` units.
type interval struct {
	unit unit
	step int
}

var tickIntervals = [...]struct {
	interval
	duration float64
}{
	{interval{second, 1}, durationSecond},
	{interval{second, 5}, 5 * durationSecond},
	{interval{second, 15}, 15 * durationSecond},
	{interval{second, 30}, 30 * durationSecond},
	{interval{minute, 1}, durationMinute},
	{interval{minute, 5}, 5 * durationMinute},
	{interval{minute, 15}, 15 * durationMinute},
	{interval{minute, 30}, 30 * durationMinute},
	{interval{hour, 1}, durationHour},
	{interval{hour, 3}, 3 * durationHour},
	{interval{hour, 6}, 6 * durationHour},
	{interval{hour, 12}, 12 * durationHour},
	{interval{day, 1}, durationDay},
	{interval{day, 2}, 2 * durationDay},
	{interval{week, 1}, durationWeek},
	{interval{month, 1}, durationMonth},
	{interval{month, 3}, 3 * durationMonth},
	{interval{year, 1}, durationYear},
}

// tickInterval selects the interval whose duration is the closest
// (in ratio) to the span divided by count.
func tickInterval(start, stop float64, count int) (interval, bool) {
	target := math.Abs(stop-start) / float64(count)
	// first interval strictly longer than the target
	i := 0
	for i < len(tickIntervals) && tickIntervals[i].duration <= target {
		i++
	}
	switch {
	case i == len(tickIntervals):
		return every(year, TickStep(start/durationYear, stop/durationYear, count))
	case i == 0:
		return every(millisecond, math.Max(TickStep(start, stop, count), 1))
	case target/tickIntervals[i-1].duration < tickIntervals[i].duration/target:
		return tickIntervals[i-1].interval, true
	default:
		return tickIntervals[i].interval, true
	}
}

func every(u unit, step float64) (interval, bool) {
	step = math.Floor(step)
	if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
		return interval{}, false
	}
	return interval{u, int(step)}, true
}

// floor returns the start of the unit containing t.
func (u unit) floor(t time.Time) time.Time {
	y, m, d := t.Date()
	switch u {
	case second:
		return t.Truncate(time.Second)
	case minute:
		return t.Truncate(time.Minute)
	case hour:
		return t.Truncate(time.Hour)
	case day:
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	case week: // weeks start on Sunday
		return time.Date(y, m, d-int(t.Weekday()), 0, 0, 0, 0, time.UTC)
	case month:
		return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	case year:
		return time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC)
	default:
		return t
	}
}

// ceil returns the first unit boundary at or after t.
func (u unit) ceil(t time.Time) time.Time {
	f := u.floor(t)
	if f.Before(t) {
		return u.offset(f, 1)
	}
	return f
}

func (u unit) offset(t time.Time, n int) time.Time {
	switch u {
	case second:
		return t.Add(time.Duration(n) * time.Second)
	case minute:
		return t.Add(time.Duration(n) * time.Minute)
	case hour:
		return t.Add(time.Duration(n) * time.Hour)
	case day:
		return t.AddDate(0, 0, n)
	case week:
		return t.AddDate(0, 0, 7*n)
	case month:
		return t.AddDate(0, n, 0)
	case year:
		return t.AddDate(n, 0, 0)
	default:
		return t.Add(time.Duration(n) * time.Millisecond)
	}
}

// field returns the number tested against the step
// to keep a boundary when step > 1.
func (u unit) field(t time.Time) int {
	switch u {
	case second:
		return t.Second()
	case minute:
		return t.Minute()
	case hour:
		return t.Hour()
	case day:
		return int(math.Floor(fromTime(t) / durationDay))
	case month:
		return int(t.Month()) - 1
	case year:
		return t.Year()
	default:
		return 0
	}
}

// rangeOf returns the boundaries of the interval in [start, stop).
func (iv interval) rangeOf(start, stop float64) []float64 {
	var out []float64
	if iv.unit == millisecond {
		k := float64(iv.step)
		for v := math.Ceil(start/k) * k; v < stop; v += k {
			out = append(out, v)
		}
		return out
	}

	u := iv.unit
	t, end := u.ceil(toTime(math.Ceil(start))), toTime(stop)
	if u == year && iv.step > 1 {
		// jump directly to the next multiple of step
		if r := mod(t.Year(), iv.step); r != 0 {
			t = u.offset(t, iv.step-r)
		}
		for ; t.Before(end); t = u.offset(t, iv.step) {
			out = append(out, fromTime(t))
		}
		return out
	}
	for ; t.Before(end); t = u.offset(t, 1) {
		if iv.step > 1 && mod(u.field(t), iv.step) != 0 {
			continue
		}
		out = append(out, fromTime(t))
	}
	return out
}

func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
