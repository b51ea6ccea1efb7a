package timescales

import (
	"fmt"
	"math"
)

// secondsPerHalfDay shifts between noon-based J2000 deltas and
// midnight-based calendar days.
const secondsPerHalfDay = 43200

// Time is an instant on a continuous time scale, stored as a TimeDelta
// relative to the J2000 epoch of that scale. The same physical instant has
// different deltas in different scales.
type Time struct {
	scale TimeScale
	delta TimeDelta
}

// NewTime constructs a Time from raw seconds and subsecond since J2000.
func NewTime(scale TimeScale, seconds int64, subsecond Subsecond) Time {
	return Time{scale: scale, delta: NewDelta(seconds, subsecond)}
}

// TimeFromDelta constructs a Time from a delta relative to J2000.
func TimeFromDelta(scale TimeScale, delta TimeDelta) Time {
	return Time{scale: scale, delta: delta}
}

// TimeFromJulianDate constructs a Time from a Julian date in days relative
// to the given epoch.
func TimeFromJulianDate(scale TimeScale, jd float64, epoch JulianEpoch) (Time, error) {
	delta, err := DeltaFromDecimalSeconds(jd*SecondsPerDay - epoch.secondsFromJ2000())
	if err != nil {
		return Time{}, err
	}
	return Time{scale: scale, delta: delta}, nil
}

// TimeFromTwoPartJulianDate constructs a Time from a two-part Julian date,
// preserving precision by differencing the large part against the J2000
// day number before combining.
func TimeFromTwoPartJulianDate(scale TimeScale, jd1, jd2 float64) (Time, error) {
	days1 := jd1 - JDJ2000
	delta1, err := DeltaFromDecimalSeconds(days1 * SecondsPerDay)
	if err != nil {
		return Time{}, err
	}
	delta2, err := DeltaFromDecimalSeconds(jd2 * SecondsPerDay)
	if err != nil {
		return Time{}, err
	}
	return Time{scale: scale, delta: delta1.Add(delta2)}, nil
}

// Scale returns the instant's time scale.
func (t Time) Scale() TimeScale { return t.scale }

// Delta returns the delta from the scale's J2000 epoch.
func (t Time) Delta() TimeDelta { return t.delta }

// Seconds returns the whole seconds since J2000.
func (t Time) Seconds() int64 { return t.delta.seconds }

// Subsecond returns the fractional second.
func (t Time) Subsecond() Subsecond { return t.delta.subsecond }

// Add returns the instant shifted forward by the delta, in the same scale.
func (t Time) Add(d TimeDelta) Time {
	return Time{scale: t.scale, delta: t.delta.Add(d)}
}

// Sub returns the instant shifted backward by the delta, in the same scale.
func (t Time) Sub(d TimeDelta) Time {
	return Time{scale: t.scale, delta: t.delta.Sub(d)}
}

// ErrScaleMismatch is returned when two instants on different scales are
// differenced or compared. Convert one of them first.
type ErrScaleMismatch struct {
	Left, Right TimeScale
}

func (e ErrScaleMismatch) Error() string {
	return fmt.Sprintf("time scales do not match: %s vs %s", e.Left, e.Right)
}

// Since returns the delta t − o. Both instants must share a scale.
func (t Time) Since(o Time) (TimeDelta, error) {
	if t.scale != o.scale {
		return TimeDelta{}, ErrScaleMismatch{Left: t.scale, Right: o.scale}
	}
	return t.delta.Sub(o.delta), nil
}

// Compare orders two instants on the same scale, returning −1, 0, or +1.
func (t Time) Compare(o Time) (int, error) {
	if t.scale != o.scale {
		return 0, ErrScaleMismatch{Left: t.scale, Right: o.scale}
	}
	return t.delta.Compare(o.delta), nil
}

// IsClose reports whether two instants on the same scale agree within the
// given relative and absolute tolerances in seconds.
func (t Time) IsClose(o Time, rtol, atol float64) bool {
	if t.scale != o.scale {
		return false
	}
	a := t.delta.DecimalSeconds()
	b := o.delta.DecimalSeconds()
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// date and timeOfDay decompose the noon-based delta into calendar fields.
func (t Time) dateAndTime() (Date, TimeOfDay) {
	total := t.delta.seconds + secondsPerHalfDay
	days := floorDiv(total, 86400)
	secOfDay := total - days*86400
	return DateFromDaysSinceJ2000(days), timeOfDayFromSecondOfDay(secOfDay, t.delta.subsecond)
}

// Date returns the calendar date of the instant.
func (t Time) Date() Date {
	d, _ := t.dateAndTime()
	return d
}

// TimeOfDay returns the wall-clock time of the instant.
func (t Time) TimeOfDay() TimeOfDay {
	_, tod := t.dateAndTime()
	return tod
}

// Year returns the calendar year.
func (t Time) Year() int64 { return t.Date().Year() }

// Month returns the calendar month.
func (t Time) Month() int { return t.Date().Month() }

// Day returns the day of the month.
func (t Time) Day() int { return t.Date().Day() }

// DayOfYear returns the 1-based ordinal day.
func (t Time) DayOfYear() int { return t.Date().DayOfYear() }

// Hour returns the hour of the day.
func (t Time) Hour() int { return t.TimeOfDay().Hour() }

// Minute returns the minute of the hour.
func (t Time) Minute() int { return t.TimeOfDay().Minute() }

// Second returns the second of the minute.
func (t Time) Second() int { return t.TimeOfDay().Second() }

// Millisecond returns the millisecond digits of the fractional second.
func (t Time) Millisecond() int64 { return t.delta.subsecond.Milliseconds() }

// Microsecond returns the microsecond digits of the fractional second.
func (t Time) Microsecond() int64 { return t.delta.subsecond.Microseconds() }

// Nanosecond returns the nanosecond digits of the fractional second.
func (t Time) Nanosecond() int64 { return t.delta.subsecond.Nanoseconds() }

// Picosecond returns the picosecond digits of the fractional second.
func (t Time) Picosecond() int64 { return t.delta.subsecond.Picoseconds() }

// Femtosecond returns the femtosecond digits of the fractional second.
func (t Time) Femtosecond() int64 { return t.delta.subsecond.Femtoseconds() }

// DecimalSeconds returns the second of the minute including the fraction.
func (t Time) DecimalSeconds() float64 {
	return float64(t.Second()) + float64(t.delta.subsecond)
}

// JulianDate expresses the instant relative to the given epoch in the
// given unit.
func (t Time) JulianDate(epoch JulianEpoch, unit JulianUnit) float64 {
	return t.delta.JulianDate(epoch, unit)
}

// TwoPartJulianDate returns the Julian date split into the J2000 day
// number and the fractional day, preserving precision.
func (t Time) TwoPartJulianDate() (jd1, jd2 float64) {
	return JDJ2000, t.delta.DecimalSeconds() / SecondsPerDay
}

// String formats the instant as YYYY-MM-DDTHH:MM:SS.sss ABBR with
// millisecond display precision. Full precision is recovered through the
// component accessors.
func (t Time) String() string {
	d, tod := t.dateAndTime()
	return fmt.Sprintf("%sT%s %s", d, tod, t.scale)
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Builder assembles a Time from calendar components.
type Builder struct {
	scale   TimeScale
	year    int64
	month   int
	day     int
	useDoy  bool
	doy     int
	hour    int
	minute  int
	seconds float64
}

// NewBuilder starts a builder for the given scale at the J2000 epoch date.
func NewBuilder(scale TimeScale) *Builder {
	return &Builder{scale: scale, year: 2000, month: 1, day: 1}
}

// YMD sets the calendar date.
func (b *Builder) YMD(year int64, month, day int) *Builder {
	b.year, b.month, b.day, b.useDoy = year, month, day, false
	return b
}

// DOY sets the date from a year and ordinal day number.
func (b *Builder) DOY(year int64, dayOfYear int) *Builder {
	b.year, b.doy, b.useDoy = year, dayOfYear, true
	return b
}

// HMS sets the time of day. Seconds may carry a fraction.
func (b *Builder) HMS(hour, minute int, seconds float64) *Builder {
	b.hour, b.minute, b.seconds = hour, minute, seconds
	return b
}

// Build validates the components and produces the Time.
func (b *Builder) Build() (Time, error) {
	var date Date
	var err error
	if b.useDoy {
		date, err = NewDateFromDayOfYear(b.year, b.doy)
	} else {
		date, err = NewDate(b.year, b.month, b.day)
	}
	if err != nil {
		return Time{}, err
	}
	tod, err := NewTimeOfDayDecimal(b.hour, b.minute, b.seconds)
	if err != nil {
		return Time{}, err
	}
	if tod.Second() == 60 {
		// Leap seconds exist only in UTC.
		return Time{}, ErrInvalidTime{Field: "second", Value: 60}
	}
	seconds := date.DaysSinceJ2000()*86400 - secondsPerHalfDay + tod.SecondOfDay()
	return Time{scale: b.scale, delta: NewDelta(seconds, tod.Subsecond())}, nil
}
