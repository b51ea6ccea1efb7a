package timescales

import (
	"fmt"
	"math"
)

// Date is a day in the proleptic Gregorian calendar. Year 0 is permitted,
// following the astronomical convention.
type Date struct {
	year  int64
	month int
	day   int
}

// ErrInvalidDate reports a (year, month, day) triple that does not exist in
// the proleptic Gregorian calendar.
type ErrInvalidDate struct {
	Year  int64
	Month int
	Day   int
}

func (e ErrInvalidDate) Error() string {
	return fmt.Sprintf("invalid date: %04d-%02d-%02d", e.Year, e.Month, e.Day)
}

// IsLeapYear reports whether the year is a Gregorian leap year.
func IsLeapYear(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var daysInMonthTable = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in the given month of the given
// year, or 0 if the month is out of range.
func DaysInMonth(year int64, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysInMonthTable[month-1]
}

// NewDate validates and constructs a calendar date.
func NewDate(year int64, month, day int) (Date, error) {
	if month < 1 || month > 12 || day < 1 || day > DaysInMonth(year, month) {
		return Date{}, ErrInvalidDate{Year: year, Month: month, Day: day}
	}
	return Date{year: year, month: month, day: day}, nil
}

// NewDateFromDayOfYear constructs a date from a year and 1-based ordinal
// day number.
func NewDateFromDayOfYear(year int64, dayOfYear int) (Date, error) {
	max := 365
	if IsLeapYear(year) {
		max = 366
	}
	if dayOfYear < 1 || dayOfYear > max {
		return Date{}, ErrInvalidDate{Year: year, Month: 1, Day: dayOfYear}
	}
	month := 1
	remaining := dayOfYear
	for remaining > DaysInMonth(year, month) {
		remaining -= DaysInMonth(year, month)
		month++
	}
	return Date{year: year, month: month, day: remaining}, nil
}

// Year returns the calendar year.
func (d Date) Year() int64 { return d.year }

// Month returns the calendar month in 1..12.
func (d Date) Month() int { return d.month }

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// DayOfYear returns the 1-based ordinal day number.
func (d Date) DayOfYear() int {
	doy := d.day
	for m := 1; m < d.month; m++ {
		doy += DaysInMonth(d.year, m)
	}
	return doy
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// daysJ2000ToUnix is the day count from the Unix epoch to 2000-01-01.
const daysJ2000ToUnix = 10957

// DaysSinceJ2000 returns the signed number of calendar days from
// 2000-01-01 to the date.
func (d Date) DaysSinceJ2000() int64 {
	return daysFromCivil(d.year, d.month, d.day) - daysJ2000ToUnix
}

// DateFromDaysSinceJ2000 is the inverse of DaysSinceJ2000.
func DateFromDaysSinceJ2000(days int64) Date {
	y, m, dd := civilFromDays(days + daysJ2000ToUnix)
	return Date{year: y, month: m, day: dd}
}

// daysFromCivil converts a proleptic Gregorian date to a day count with
// 1970-01-01 as day zero. Algorithm from Howard Hinnant's chrono-compatible
// date algorithms.
func daysFromCivil(year int64, month, day int) int64 {
	y := year
	if month <= 2 {
		y--
	}
	var era int64
	if y >= 0 {
		era = y / 400
	} else {
		era = (y - 399) / 400
	}
	yoe := y - era*400 // [0, 399]
	var mp int64
	if month > 2 {
		mp = int64(month) - 3
	} else {
		mp = int64(month) + 9
	}
	doy := (153*mp+2)/5 + int64(day) - 1       // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy     // [0, 146096]
	return era*146097 + doe - 719468
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(days int64) (year int64, month, day int) {
	z := days + 719468
	var era int64
	if z >= 0 {
		era = z / 146097
	} else {
		era = (z - 146096) / 146097
	}
	doe := z - era*146097                                  // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // [0, 399]
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153                  // [0, 11]
	day = int(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		month = int(mp + 3)
	} else {
		month = int(mp - 9)
	}
	if month <= 2 {
		y++
	}
	return y, month, day
}

// TimeOfDay is a wall-clock time. Second 60 is representable to carry UTC
// leap seconds; the continuous time scales never produce it.
type TimeOfDay struct {
	hour      int
	minute    int
	second    int
	subsecond Subsecond
}

// ErrInvalidTime reports an out-of-range time-of-day field.
type ErrInvalidTime struct {
	Field string
	Value int
}

func (e ErrInvalidTime) Error() string {
	return fmt.Sprintf("invalid time: %s value %d is out of range", e.Field, e.Value)
}

// ErrInvalidSeconds is returned for decimal seconds outside [0, 61).
type ErrInvalidSeconds struct {
	Value float64
}

func (e ErrInvalidSeconds) Error() string {
	return fmt.Sprintf("invalid seconds: %v", e.Value)
}

// ErrNonFiniteSeconds is returned for NaN or infinite decimal seconds.
type ErrNonFiniteSeconds struct {
	Value float64
}

func (e ErrNonFiniteSeconds) Error() string {
	return fmt.Sprintf("seconds must be finite, got %v", e.Value)
}

// NewTimeOfDay validates hour, minute, and second. Second 60 is accepted
// here; whether it is legal for the instant is decided by the UTC layer.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, ErrInvalidTime{Field: "hour", Value: hour}
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTime{Field: "minute", Value: minute}
	}
	if second < 0 || second > 60 {
		return TimeOfDay{}, ErrInvalidTime{Field: "second", Value: second}
	}
	return TimeOfDay{hour: hour, minute: minute, second: second}, nil
}

// NewTimeOfDayDecimal splits decimal seconds into a whole second and a
// subsecond and validates all fields.
func NewTimeOfDayDecimal(hour, minute int, seconds float64) (TimeOfDay, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return TimeOfDay{}, ErrNonFiniteSeconds{Value: seconds}
	}
	whole := int(math.Floor(seconds))
	if whole < 0 || whole > 60 {
		return TimeOfDay{}, ErrInvalidSeconds{Value: seconds}
	}
	tod, err := NewTimeOfDay(hour, minute, whole)
	if err != nil {
		return TimeOfDay{}, err
	}
	tod.subsecond = Subsecond(seconds - float64(whole))
	return tod, nil
}

// timeOfDayFromSecondOfDay builds a TimeOfDay from a second count in
// [0, 86400).
func timeOfDayFromSecondOfDay(second int64, subsecond Subsecond) TimeOfDay {
	return TimeOfDay{
		hour:      int(second / 3600),
		minute:    int(second % 3600 / 60),
		second:    int(second % 60),
		subsecond: subsecond,
	}
}

// Hour returns the hour in 0..23.
func (t TimeOfDay) Hour() int { return t.hour }

// Minute returns the minute in 0..59.
func (t TimeOfDay) Minute() int { return t.minute }

// Second returns the second in 0..60.
func (t TimeOfDay) Second() int { return t.second }

// Subsecond returns the fractional second.
func (t TimeOfDay) Subsecond() Subsecond { return t.subsecond }

// SecondOfDay returns the second count since midnight, treating a leap
// second as second 86400.
func (t TimeOfDay) SecondOfDay() int64 {
	return int64(t.hour)*3600 + int64(t.minute)*60 + int64(t.second)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%03d", t.hour, t.minute, t.second, t.subsecond.Milliseconds())
}
