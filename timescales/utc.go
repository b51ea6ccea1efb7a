package timescales

import (
	"fmt"
	"strings"
)

// LeapSecond is one entry of the leap-second table: from Date onward the
// cumulative offset TAI − UTC equals TaiMinusUtc seconds.
type LeapSecond struct {
	Date        Date
	TaiMinusUtc int64
}

// LeapSecondSource supplies the leap-second table. Entries must be sorted
// by date in ascending order; the first entry defines the start of the
// integer-offset UTC era (1972-01-01 for the IERS table).
type LeapSecondSource interface {
	LeapSeconds() []LeapSecond
}

// ErrUtcUndefined is returned for instants before the leap-second table
// begins, where integer-offset UTC is not defined.
type ErrUtcUndefined struct {
	Date Date
}

func (e ErrUtcUndefined) Error() string {
	return fmt.Sprintf("UTC is undefined before the leap second era: %s", e.Date)
}

// Utc is a civil UTC instant: a calendar date and a time of day that may
// carry second 60 inside a declared leap second.
type Utc struct {
	date Date
	tod  TimeOfDay
}

// Date returns the calendar date.
func (u Utc) Date() Date { return u.date }

// TimeOfDay returns the wall-clock time.
func (u Utc) TimeOfDay() TimeOfDay { return u.tod }

func (u Utc) String() string {
	return fmt.Sprintf("%sT%s UTC", u.date, u.tod)
}

// ParseUTC parses "YYYY-MM-DDTHH:MM:SS[.fff][ UTC]" into a civil UTC
// instant. Leap seconds (second 60) are representable here, which is why
// UTC strings do not go through ParseISO.
func ParseUTC(s string) (Utc, error) {
	s = strings.TrimSpace(s)
	if idx := strings.LastIndexByte(s, ' '); idx >= 0 {
		if tag := s[idx+1:]; tag != "UTC" {
			return Utc{}, ErrInvalidISO{Input: s, Detail: fmt.Sprintf("scale %q is not UTC", tag)}
		}
		s = strings.TrimSpace(s[:idx])
	}
	datePart, timePart, found := strings.Cut(s, "T")
	if !found {
		return Utc{}, ErrInvalidISO{Input: s, Detail: "missing 'T' separator"}
	}
	year, month, day, err := parseISODate(datePart)
	if err != nil {
		return Utc{}, ErrInvalidISO{Input: s, Detail: err.Error()}
	}
	hour, minute, seconds, err := parseISOTime(timePart)
	if err != nil {
		return Utc{}, ErrInvalidISO{Input: s, Detail: err.Error()}
	}
	return NewUtcBuilder().YMD(year, month, day).HMS(hour, minute, seconds).Build()
}

// UtcBuilder assembles a Utc instant.
type UtcBuilder struct {
	year    int64
	month   int
	day     int
	hour    int
	minute  int
	seconds float64
}

// NewUtcBuilder starts a builder at 2000-01-01T00:00:00.
func NewUtcBuilder() *UtcBuilder {
	return &UtcBuilder{year: 2000, month: 1, day: 1}
}

// YMD sets the calendar date.
func (b *UtcBuilder) YMD(year int64, month, day int) *UtcBuilder {
	b.year, b.month, b.day = year, month, day
	return b
}

// HMS sets the time of day. Seconds may carry a fraction and may reach
// into the leap-second slot [60, 61).
func (b *UtcBuilder) HMS(hour, minute int, seconds float64) *UtcBuilder {
	b.hour, b.minute, b.seconds = hour, minute, seconds
	return b
}

// Build validates the fields. Whether a second-60 instant actually exists
// is checked against the leap-second table at conversion time.
func (b *UtcBuilder) Build() (Utc, error) {
	date, err := NewDate(b.year, b.month, b.day)
	if err != nil {
		return Utc{}, err
	}
	tod, err := NewTimeOfDayDecimal(b.hour, b.minute, b.seconds)
	if err != nil {
		return Utc{}, err
	}
	return Utc{date: date, tod: tod}, nil
}

// offsetOn returns the TAI − UTC offset in effect on the given date and
// whether the date ends in a leap second.
func offsetOn(entries []LeapSecond, date Date) (offset int64, leapDay bool, err error) {
	serial := date.DaysSinceJ2000()
	if len(entries) == 0 || serial < entries[0].Date.DaysSinceJ2000() {
		return 0, false, ErrUtcUndefined{Date: date}
	}
	idx := 0
	for i, e := range entries {
		if e.Date.DaysSinceJ2000() <= serial {
			idx = i
		} else {
			break
		}
	}
	offset = entries[idx].TaiMinusUtc
	// The day before an entry takes effect carries the inserted second.
	if idx+1 < len(entries) && entries[idx+1].Date.DaysSinceJ2000() == serial+1 {
		leapDay = entries[idx+1].TaiMinusUtc == offset+1
	}
	return offset, leapDay, nil
}

// ToTAI converts the UTC instant to TAI using the leap-second table.
// Second 60 on a day that does not end in a leap second fails with
// ErrInvalidSeconds.
func (u Utc) ToTAI(source LeapSecondSource) (Time, error) {
	entries := source.LeapSeconds()
	offset, leapDay, err := offsetOn(entries, u.date)
	if err != nil {
		return Time{}, err
	}
	if u.tod.Second() == 60 {
		if !leapDay || u.tod.Hour() != 23 || u.tod.Minute() != 59 {
			return Time{}, ErrInvalidSeconds{Value: float64(u.tod.Second())}
		}
	}
	seconds := u.date.DaysSinceJ2000()*86400 - secondsPerHalfDay + u.tod.SecondOfDay() + offset
	return NewTime(TAI, seconds, u.tod.Subsecond()), nil
}

// UtcFromTAI converts a TAI instant to UTC. A TAI instant falling inside
// an inserted leap second maps to 23:59:60 on the preceding day.
func UtcFromTAI(t Time, source LeapSecondSource) (Utc, error) {
	if t.Scale() != TAI {
		return Utc{}, ErrScaleMismatch{Left: t.Scale(), Right: TAI}
	}
	entries := source.LeapSeconds()
	if len(entries) == 0 {
		return Utc{}, ErrUtcUndefined{Date: t.Date()}
	}

	tai := t.Seconds()

	// TAI instant at which each table entry takes effect.
	effective := func(e LeapSecond) int64 {
		return e.Date.DaysSinceJ2000()*86400 - secondsPerHalfDay + e.TaiMinusUtc
	}

	if tai < effective(entries[0]) {
		return Utc{}, ErrUtcUndefined{Date: t.Date()}
	}

	idx := 0
	for i, e := range entries {
		if effective(e) <= tai {
			idx = i
		} else {
			break
		}
	}
	offset := entries[idx].TaiMinusUtc

	// An inserted leap second occupies the one-second TAI window right
	// before the next entry takes effect.
	if idx+1 < len(entries) && entries[idx+1].TaiMinusUtc == offset+1 {
		next := effective(entries[idx+1])
		if tai == next-1 {
			day := entries[idx+1].Date.DaysSinceJ2000() - 1
			tod, _ := NewTimeOfDay(23, 59, 60)
			tod.subsecond = t.Subsecond()
			return Utc{date: DateFromDaysSinceJ2000(day), tod: tod}, nil
		}
	}

	unadjusted := tai - offset + secondsPerHalfDay
	days := floorDiv(unadjusted, 86400)
	secOfDay := unadjusted - days*86400
	return Utc{
		date: DateFromDaysSinceJ2000(days),
		tod:  timeOfDayFromSecondOfDay(secOfDay, t.Subsecond()),
	}, nil
}
