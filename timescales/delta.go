package timescales

import (
	"fmt"
	"math"
)

// Seconds-per-unit constants used throughout the library.
const (
	SecondsPerMinute        = 60.0
	SecondsPerHour          = 3600.0
	SecondsPerDay           = 86400.0
	SecondsPerJulianYear    = 31557600.0
	SecondsPerJulianCentury = 3155760000.0
)

// TimeDelta is a signed, scale-free duration with femtosecond resolution.
//
// The subsecond field is always the positive fractional part of the last
// whole second, so −1 fs is represented as (−1 s, 0.999999999999999 s).
type TimeDelta struct {
	seconds   int64
	subsecond Subsecond
}

// ErrTimeDelta reports an invalid duration input.
type ErrTimeDelta struct {
	Raw    float64
	Detail string
}

func (e ErrTimeDelta) Error() string {
	return fmt.Sprintf("invalid time delta %v: %s", e.Raw, e.Detail)
}

// DeltaFromSeconds returns a TimeDelta of a whole number of seconds.
func DeltaFromSeconds(seconds int64) TimeDelta {
	return TimeDelta{seconds: seconds}
}

// NewDelta constructs a TimeDelta from whole seconds and a subsecond.
func NewDelta(seconds int64, subsecond Subsecond) TimeDelta {
	return TimeDelta{seconds: seconds, subsecond: subsecond}
}

// DeltaFromDecimalSeconds splits a decimal second count into the whole and
// positive-fractional parts. NaN, infinities, and values beyond the int64
// range are rejected.
func DeltaFromDecimalSeconds(value float64) (TimeDelta, error) {
	if math.IsNaN(value) {
		return TimeDelta{}, ErrTimeDelta{Raw: value, Detail: "NaN is not a valid duration"}
	}
	if math.IsInf(value, 0) {
		return TimeDelta{}, ErrTimeDelta{Raw: value, Detail: "duration must be finite"}
	}
	if value >= math.MaxInt64 || value <= math.MinInt64 {
		return TimeDelta{}, ErrTimeDelta{Raw: value, Detail: "duration exceeds representable range"}
	}
	whole := math.Floor(value)
	sub := value - whole
	return TimeDelta{seconds: int64(whole), subsecond: Subsecond(sub)}, nil
}

// DeltaFromMinutes returns a TimeDelta of the given decimal minutes.
func DeltaFromMinutes(minutes float64) (TimeDelta, error) {
	return DeltaFromDecimalSeconds(minutes * SecondsPerMinute)
}

// DeltaFromHours returns a TimeDelta of the given decimal hours.
func DeltaFromHours(hours float64) (TimeDelta, error) {
	return DeltaFromDecimalSeconds(hours * SecondsPerHour)
}

// DeltaFromDays returns a TimeDelta of the given decimal days.
func DeltaFromDays(days float64) (TimeDelta, error) {
	return DeltaFromDecimalSeconds(days * SecondsPerDay)
}

// DeltaFromJulianYears returns a TimeDelta of the given Julian years.
func DeltaFromJulianYears(years float64) (TimeDelta, error) {
	return DeltaFromDecimalSeconds(years * SecondsPerJulianYear)
}

// DeltaFromJulianCenturies returns a TimeDelta of the given Julian centuries.
func DeltaFromJulianCenturies(centuries float64) (TimeDelta, error) {
	return DeltaFromDecimalSeconds(centuries * SecondsPerJulianCentury)
}

// Seconds returns the whole-second part of the delta.
func (d TimeDelta) Seconds() int64 { return d.seconds }

// Subsecond returns the positive fractional part of the delta.
func (d TimeDelta) Subsecond() Subsecond { return d.subsecond }

// DecimalSeconds returns the delta as decimal seconds. Lossy for deltas
// larger than about 2^53 femtoseconds.
func (d TimeDelta) DecimalSeconds() float64 {
	return float64(d.seconds) + float64(d.subsecond)
}

// Days returns the delta in decimal days.
func (d TimeDelta) Days() float64 { return d.DecimalSeconds() / SecondsPerDay }

// JulianYears returns the delta in Julian years.
func (d TimeDelta) JulianYears() float64 { return d.DecimalSeconds() / SecondsPerJulianYear }

// JulianCenturies returns the delta in Julian centuries.
func (d TimeDelta) JulianCenturies() float64 { return d.DecimalSeconds() / SecondsPerJulianCentury }

// IsZero reports whether the delta is exactly zero.
func (d TimeDelta) IsZero() bool { return d.seconds == 0 && d.subsecond == 0 }

// IsNegative reports whether the delta is less than zero.
func (d TimeDelta) IsNegative() bool { return d.seconds < 0 }

// IsPositive reports whether the delta is greater than zero.
func (d TimeDelta) IsPositive() bool {
	return d.seconds > 0 || (d.seconds == 0 && d.subsecond > 0)
}

// Neg returns the negated delta, preserving the positive-subsecond
// invariant: −(s, f) is (−s−1, 1−f) when f is non-zero.
func (d TimeDelta) Neg() TimeDelta {
	if d.subsecond == 0 {
		return TimeDelta{seconds: -d.seconds}
	}
	return TimeDelta{seconds: -d.seconds - 1, subsecond: 1 - d.subsecond}
}

// Add returns the sum of two deltas, carrying into the whole seconds when
// the subseconds wrap.
func (d TimeDelta) Add(o TimeDelta) TimeDelta {
	seconds := d.seconds + o.seconds
	sub := float64(d.subsecond) + float64(o.subsecond)
	if sub >= 1 {
		seconds++
		sub -= 1
	}
	return TimeDelta{seconds: seconds, subsecond: Subsecond(sub)}
}

// Sub returns the difference of two deltas, borrowing a whole second when
// the subtrahend's subsecond is larger.
func (d TimeDelta) Sub(o TimeDelta) TimeDelta {
	seconds := d.seconds - o.seconds
	sub := float64(d.subsecond) - float64(o.subsecond)
	if sub < 0 {
		seconds--
		sub += 1
	}
	return TimeDelta{seconds: seconds, subsecond: Subsecond(sub)}
}

// Scale multiplies the delta by a scalar. The operation goes through
// decimal seconds and is therefore lossy.
func (d TimeDelta) Scale(factor float64) (TimeDelta, error) {
	return DeltaFromDecimalSeconds(d.DecimalSeconds() * factor)
}

// Compare orders two deltas lexicographically on (seconds, subsecond),
// returning −1, 0, or +1.
func (d TimeDelta) Compare(o TimeDelta) int {
	switch {
	case d.seconds < o.seconds:
		return -1
	case d.seconds > o.seconds:
		return 1
	case d.subsecond < o.subsecond:
		return -1
	case d.subsecond > o.subsecond:
		return 1
	default:
		return 0
	}
}

// JulianDate treats the delta as seconds since J2000 and expresses it
// relative to the given epoch in the given unit.
func (d TimeDelta) JulianDate(epoch JulianEpoch, unit JulianUnit) float64 {
	seconds := d.DecimalSeconds() + epoch.secondsFromJ2000()
	switch unit {
	case UnitSeconds:
		return seconds
	case UnitDays:
		return seconds / SecondsPerDay
	case UnitCenturies:
		return seconds / SecondsPerJulianCentury
	default:
		return seconds
	}
}
