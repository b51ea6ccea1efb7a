// Package ccsds maps the geometric subset of parsed CCSDS orbit data
// messages onto catalog origins, reference frames, timescale epochs, and
// orbital states. Wire-format parsing (KVN, XML, JSON) happens upstream;
// the records here carry the fields those parsers produce, in the units
// the messages use (km, km/s, degrees, km³/s²).
package ccsds

import (
	"fmt"
	"math"
	"strings"

	"github.com/star/astrokit/bodies"
	"github.com/star/astrokit/frames"
	"github.com/star/astrokit/orbits"
	"github.com/star/astrokit/timescales"
	"github.com/star/astrokit/units"
)

// KeplerianBlock is the osculating element block of an OPM, or the mean
// element block of an OMM. Angles are degrees, lengths km. Exactly one
// of TrueAnomaly and MeanAnomaly is set; OMMs may give MeanMotion in
// revolutions per day instead of the semi-major axis.
type KeplerianBlock struct {
	SemiMajorAxis   *float64
	MeanMotion      *float64
	Eccentricity    float64
	Inclination     float64
	RaOfAscNode     float64
	ArgOfPericenter float64
	TrueAnomaly     *float64
	MeanAnomaly     *float64
	GM              float64
}

// OPM is the geometric subset of an Orbit Parameter Message.
type OPM struct {
	Epoch      string
	RefFrame   string
	CenterName string
	Position   [3]float64
	Velocity   [3]float64
	Elements   *KeplerianBlock
}

// OMM is the geometric subset of an Orbit Mean-Elements Message.
type OMM struct {
	Epoch      string
	RefFrame   string
	CenterName string
	Elements   KeplerianBlock
}

// EphemerisLine is one tabulated state: an epoch string with km
// position and km/s velocity.
type EphemerisLine struct {
	Epoch    string
	Position [3]float64
	Velocity [3]float64
}

// OEM is the geometric subset of one Orbit Ephemeris Message segment.
// All lines share the segment's frame and center.
type OEM struct {
	RefFrame   string
	CenterName string
	Lines      []EphemerisLine
}

// OCM is the geometric subset of an Orbit Comprehensive Message
// trajectory block, restricted to Cartesian position-velocity lines.
type OCM struct {
	TrajRefFrame string
	CenterName   string
	States       []EphemerisLine
}

// State is an epoch-tagged Cartesian state with its frame and center
// resolved against the catalogs.
type State struct {
	Epoch  timescales.Time
	Frame  frames.Frame
	Center bodies.Origin
	Orbit  orbits.Cartesian
}

// frameAliases maps CCSDS REF_FRAME values onto the frame graph. EME2000
// and GCRF are carried as ICRF; the sub-milliarcsecond frame bias between
// them is below what the message geometry resolves.
var frameAliases = map[string]frames.Frame{
	"ICRF":    frames.ICRF,
	"GCRF":    frames.ICRF,
	"EME2000": frames.ICRF,
	"J2000":   frames.ICRF,
	"MOD":     frames.MOD,
	"TOD":     frames.TOD,
	"TEME":    frames.TEME,
	"ITRF":    frames.ITRF,
}

// ParseFrame resolves a CCSDS REF_FRAME value. ITRF realization suffixes
// ("ITRF2000", "ITRF-97") all collapse onto ITRF.
func ParseFrame(name string) (frames.Frame, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	if strings.HasPrefix(key, "ITRF") {
		key = "ITRF"
	}
	if frame, ok := frameAliases[key]; ok {
		return frame, nil
	}
	return frames.Frame{}, fmt.Errorf("ccsds: unsupported reference frame %q", name)
}

// ParseEpoch converts a message epoch, which CCSDS defines as UTC, into
// a TAI instant.
func ParseEpoch(epoch string, leaps timescales.LeapSecondSource) (timescales.Time, error) {
	utc, err := timescales.ParseUTC(epoch)
	if err != nil {
		return timescales.Time{}, fmt.Errorf("ccsds: epoch: %w", err)
	}
	tai, err := utc.ToTAI(leaps)
	if err != nil {
		return timescales.Time{}, fmt.Errorf("ccsds: epoch: %w", err)
	}
	return tai, nil
}

func resolveHeader(epoch, refFrame, centerName string, leaps timescales.LeapSecondSource) (timescales.Time, frames.Frame, bodies.Origin, error) {
	tai, err := ParseEpoch(epoch, leaps)
	if err != nil {
		return timescales.Time{}, frames.Frame{}, 0, err
	}
	frame, err := ParseFrame(refFrame)
	if err != nil {
		return timescales.Time{}, frames.Frame{}, 0, err
	}
	center, err := bodies.FromName(centerName)
	if err != nil {
		return timescales.Time{}, frames.Frame{}, 0, fmt.Errorf("ccsds: center: %w", err)
	}
	return tai, frame, center, nil
}

// StateFromOPM resolves an OPM state vector into SI units.
func StateFromOPM(rec OPM, leaps timescales.LeapSecondSource) (State, error) {
	epoch, frame, center, err := resolveHeader(rec.Epoch, rec.RefFrame, rec.CenterName, leaps)
	if err != nil {
		return State{}, err
	}
	var orbit orbits.Cartesian
	for i := 0; i < 3; i++ {
		orbit.Position[i] = rec.Position[i] * 1e3
		orbit.Velocity[i] = rec.Velocity[i] * 1e3
	}
	return State{Epoch: epoch, Frame: frame, Center: center, Orbit: orbit}, nil
}

// resolveLines maps tabulated ephemeris lines onto epoch-tagged SI
// states. Segment epochs must be strictly increasing.
func resolveLines(lines []EphemerisLine, refFrame, centerName string, leaps timescales.LeapSecondSource) ([]State, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("ccsds: segment carries no ephemeris lines")
	}
	frame, err := ParseFrame(refFrame)
	if err != nil {
		return nil, err
	}
	center, err := bodies.FromName(centerName)
	if err != nil {
		return nil, fmt.Errorf("ccsds: center: %w", err)
	}

	states := make([]State, len(lines))
	for i, line := range lines {
		epoch, err := ParseEpoch(line.Epoch, leaps)
		if err != nil {
			return nil, fmt.Errorf("ccsds: line %d: %w", i, err)
		}
		if i > 0 {
			order, err := epoch.Compare(states[i-1].Epoch)
			if err != nil {
				return nil, fmt.Errorf("ccsds: line %d: %w", i, err)
			}
			if order <= 0 {
				return nil, fmt.Errorf("ccsds: line %d: epoch %s does not advance past %s", i, line.Epoch, lines[i-1].Epoch)
			}
		}
		states[i] = State{Epoch: epoch, Frame: frame, Center: center}
		for j := 0; j < 3; j++ {
			states[i].Orbit.Position[j] = line.Position[j] * 1e3
			states[i].Orbit.Velocity[j] = line.Velocity[j] * 1e3
		}
	}
	return states, nil
}

// StatesFromOEM resolves an OEM segment's ephemeris lines into SI
// states.
func StatesFromOEM(rec OEM, leaps timescales.LeapSecondSource) ([]State, error) {
	return resolveLines(rec.Lines, rec.RefFrame, rec.CenterName, leaps)
}

// StatesFromOCM resolves an OCM trajectory block into SI states.
func StatesFromOCM(rec OCM, leaps timescales.LeapSecondSource) ([]State, error) {
	return resolveLines(rec.States, rec.TrajRefFrame, rec.CenterName, leaps)
}

// elements builds a Keplerian set from a message element block. The
// semi-major axis comes either directly or from the mean motion through
// Kepler's third law.
func (b KeplerianBlock) elements() (orbits.Keplerian, error) {
	var semiMajorKm float64
	switch {
	case b.SemiMajorAxis != nil:
		semiMajorKm = *b.SemiMajorAxis
	case b.MeanMotion != nil:
		n := *b.MeanMotion * 2 * math.Pi / timescales.SecondsPerDay
		semiMajorKm = math.Cbrt(b.GM/(n*n)) // GM km³/s², so a lands in km
	default:
		return orbits.Keplerian{}, fmt.Errorf("ccsds: element block has neither semi-major axis nor mean motion")
	}

	builder := orbits.NewBuilder().
		Shape(units.Kilometers(semiMajorKm), b.Eccentricity).
		Inclination(units.Degrees(b.Inclination)).
		AscendingNode(units.Degrees(b.RaOfAscNode)).
		ArgumentOfPeriapsis(units.Degrees(b.ArgOfPericenter))
	switch {
	case b.TrueAnomaly != nil:
		builder.TrueAnomaly(units.Degrees(*b.TrueAnomaly))
	case b.MeanAnomaly != nil:
		builder.MeanAnomaly(units.Degrees(*b.MeanAnomaly))
	default:
		return orbits.Keplerian{}, fmt.Errorf("ccsds: element block has neither true nor mean anomaly")
	}
	return builder.Build()
}

// GravitationalParameter returns the block's GM in m³/s².
func (b KeplerianBlock) GravitationalParameter() float64 {
	return b.GM * 1e9
}

// ElementsFromOPM resolves the optional osculating element block.
func ElementsFromOPM(rec OPM, leaps timescales.LeapSecondSource) (timescales.Time, orbits.Keplerian, error) {
	if rec.Elements == nil {
		return timescales.Time{}, orbits.Keplerian{}, fmt.Errorf("ccsds: OPM carries no element block")
	}
	epoch, err := ParseEpoch(rec.Epoch, leaps)
	if err != nil {
		return timescales.Time{}, orbits.Keplerian{}, err
	}
	elements, err := rec.Elements.elements()
	if err != nil {
		return timescales.Time{}, orbits.Keplerian{}, err
	}
	return epoch, elements, nil
}

// ElementsFromOMM resolves the mean element block of an OMM.
func ElementsFromOMM(rec OMM, leaps timescales.LeapSecondSource) (timescales.Time, orbits.Keplerian, error) {
	epoch, err := ParseEpoch(rec.Epoch, leaps)
	if err != nil {
		return timescales.Time{}, orbits.Keplerian{}, err
	}
	elements, err := rec.Elements.elements()
	if err != nil {
		return timescales.Time{}, orbits.Keplerian{}, err
	}
	return epoch, elements, nil
}
