// Package timescales implements high-precision instants on the astronomical
// time scales TAI, TT, TCG, TCB, TDB and UT1, together with the offset
// algebra that converts between them.
//
// An instant is a count of whole SI seconds since the J2000 epoch
// (2000-01-01T12:00:00 in the instant's own scale) plus a positive
// fractional second with femtosecond resolution. UTC is deliberately not a
// Time scale: it is discontinuous across leap seconds and lives in its own
// Utc type with explicit conversions to and from TAI.
//
// Conversion formulas follow the IERS Conventions and IAU resolutions; see
// Vallado, "Fundamentals of Astrodynamics and Applications", Ch. 3 for the
// relationships between the scales.
package timescales

import (
	"fmt"
	"math"
)

// Subsecond is the fractional part of a second in the half-open interval
// [0, 1), held to femtosecond resolution.
type Subsecond float64

// ErrInvalidSubsecond is returned when a subsecond value is not finite or
// outside [0, 1).
type ErrInvalidSubsecond struct {
	Value float64
}

func (e ErrInvalidSubsecond) Error() string {
	return fmt.Sprintf("subsecond must be in [0, 1), got %v", e.Value)
}

// NewSubsecond validates and constructs a Subsecond.
func NewSubsecond(value float64) (Subsecond, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 || value >= 1 {
		return 0, ErrInvalidSubsecond{Value: value}
	}
	return Subsecond(value), nil
}

// femtoseconds returns the whole number of femtoseconds in the subsecond.
// Values just below 1 clamp to the last femtosecond so the digit
// extractors stay within 0..999.
func (s Subsecond) femtoseconds() int64 {
	fs := int64(math.Round(float64(s) * 1e15))
	if fs >= 1e15 {
		fs = 1e15 - 1
	}
	return fs
}

// Milliseconds returns the millisecond digits of the fractional expansion.
func (s Subsecond) Milliseconds() int64 {
	return s.femtoseconds() / 1e12
}

// Microseconds returns the microsecond digits of the fractional expansion.
func (s Subsecond) Microseconds() int64 {
	return s.femtoseconds() / 1e9 % 1e3
}

// Nanoseconds returns the nanosecond digits of the fractional expansion.
func (s Subsecond) Nanoseconds() int64 {
	return s.femtoseconds() / 1e6 % 1e3
}

// Picoseconds returns the picosecond digits of the fractional expansion.
func (s Subsecond) Picoseconds() int64 {
	return s.femtoseconds() / 1e3 % 1e3
}

// Femtoseconds returns the femtosecond digits of the fractional expansion.
func (s Subsecond) Femtoseconds() int64 {
	return s.femtoseconds() % 1e3
}

// Seconds returns the subsecond as a float64 in [0, 1).
func (s Subsecond) Seconds() float64 { return float64(s) }
