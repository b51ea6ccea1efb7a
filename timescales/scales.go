package timescales

import (
	"fmt"
	"strings"
)

// TimeScale identifies one of the continuous astronomical time scales.
//
// UTC is not a TimeScale: leap seconds make it discontinuous, so it is
// modelled separately by the Utc type.
type TimeScale int

const (
	// TAI is International Atomic Time.
	TAI TimeScale = iota
	// TT is Terrestrial Time.
	TT
	// TCG is Geocentric Coordinate Time.
	TCG
	// TCB is Barycentric Coordinate Time.
	TCB
	// TDB is Barycentric Dynamical Time.
	TDB
	// UT1 is Universal Time, tied to the Earth's rotation.
	UT1
)

// DefaultScale is the scale assumed when none is given.
const DefaultScale = TAI

// Scales lists all supported time scales.
var Scales = []TimeScale{TAI, TT, TCG, TCB, TDB, UT1}

var scaleAbbrevs = map[TimeScale]string{
	TAI: "TAI",
	TT:  "TT",
	TCG: "TCG",
	TCB: "TCB",
	TDB: "TDB",
	UT1: "UT1",
}

var scaleNames = map[TimeScale]string{
	TAI: "International Atomic Time",
	TT:  "Terrestrial Time",
	TCG: "Geocentric Coordinate Time",
	TCB: "Barycentric Coordinate Time",
	TDB: "Barycentric Dynamical Time",
	UT1: "Universal Time",
}

// String returns the canonical abbreviation of the scale.
func (s TimeScale) String() string {
	if abbrev, ok := scaleAbbrevs[s]; ok {
		return abbrev
	}
	return "unknown"
}

// Name returns the full name of the scale.
func (s TimeScale) Name() string {
	if name, ok := scaleNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsValid reports whether s is one of the defined scales.
func (s TimeScale) IsValid() bool {
	_, ok := scaleAbbrevs[s]
	return ok
}

// ErrUnknownTimeScale reports an unrecognized scale abbreviation. "UTC" is
// rejected deliberately: UTC instants must go through the Utc parser so
// that leap seconds are handled.
type ErrUnknownTimeScale struct {
	Input string
}

func (e ErrUnknownTimeScale) Error() string {
	return fmt.Sprintf("unknown time scale: %q", e.Input)
}

// ParseScale parses a case-insensitive scale abbreviation.
func ParseScale(s string) (TimeScale, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TAI":
		return TAI, nil
	case "TT":
		return TT, nil
	case "TCG":
		return TCG, nil
	case "TCB":
		return TCB, nil
	case "TDB":
		return TDB, nil
	case "UT1":
		return UT1, nil
	default:
		return DefaultScale, ErrUnknownTimeScale{Input: s}
	}
}
