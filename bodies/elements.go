// Package bodies is the catalog of NAIF-identified solar-system origins:
// the Sun, the planetary-system barycenters, the planets, a set of natural
// satellites, and selected minor bodies, together with their gravitational
// parameters, ellipsoid radii, and IAU rotational-element models.
//
// The constant tables are emitted by cmd/genbodies from the SPICE text
// kernels (gm_de440.tpc and pck00011.tpc); the package itself never parses
// kernel files at runtime.
package bodies

import (
	"math"

	"github.com/star/astrokit/timescales"
	"github.com/star/astrokit/units"
)

const degPerRadian = 180.0 / math.Pi

// trigTerm is one nutation-precession term of a rotational-element series:
// amp·sin(theta0 + theta1·T) for right ascension and prime meridian,
// amp·cos(theta0 + theta1·T) for declination. All values are degrees, with
// theta1 in degrees per Julian century of TDB.
type trigTerm struct {
	amp    float64
	theta0 float64
	theta1 float64
}

// rotModel holds the IAU rotational elements of a body. The polynomial
// coefficients of ra and dec are degrees, degrees per Julian century, and
// degrees per century squared; pm is degrees, degrees per day, and degrees
// per day squared, all on the TDB scale.
type rotModel struct {
	ra       [3]float64
	dec      [3]float64
	pm       [3]float64
	raTerms  []trigTerm
	decTerms []trigTerm
	pmTerms  []trigTerm
}

// evalSeries sums amp·sin(theta) or amp·cos(theta) terms at T centuries.
func evalSeries(terms []trigTerm, t float64, trig func(float64) float64) float64 {
	var sum float64
	for _, term := range terms {
		sum += term.amp * trig((term.theta0+term.theta1*t)/degPerRadian)
	}
	return sum
}

// evalSeriesRate sums the term-by-term derivative in degrees per century.
func evalSeriesRate(terms []trigTerm, t float64, trig func(float64) float64) float64 {
	var sum float64
	for _, term := range terms {
		sum += term.amp * term.theta1 * trig((term.theta0+term.theta1*t)/degPerRadian)
	}
	return sum
}

// angles returns the body-fixed rotation angles (α + π/2, π/2 − δ,
// W mod 2π) in radians at t TDB seconds since J2000. The adjusted triple
// feeds a 3-1-3 passive rotation from ICRF to the body-fixed frame.
func (m *rotModel) angles(t float64) (ra, dec, pm units.Angle) {
	centuries := t / timescales.SecondsPerJulianCentury
	days := t / timescales.SecondsPerDay

	raDeg := m.ra[0] + m.ra[1]*centuries + m.ra[2]*centuries*centuries +
		evalSeries(m.raTerms, centuries, math.Sin)
	decDeg := m.dec[0] + m.dec[1]*centuries + m.dec[2]*centuries*centuries +
		evalSeries(m.decTerms, centuries, math.Cos)
	pmDeg := m.pm[0] + m.pm[1]*days + m.pm[2]*days*days +
		evalSeries(m.pmTerms, centuries, math.Sin)

	ra = units.Degrees(raDeg + 90)
	dec = units.Degrees(90 - decDeg)
	pm = units.Degrees(pmDeg).ModTwoPi()
	return ra, dec, pm
}

// rates returns the time derivatives of the adjusted angles in radians per
// second. The declination element is π/2 − δ, so its rate is −δ̇.
func (m *rotModel) rates(t float64) (raRate, decRate, pmRate float64) {
	centuries := t / timescales.SecondsPerJulianCentury
	days := t / timescales.SecondsPerDay

	raDegPerCy := m.ra[1] + 2*m.ra[2]*centuries +
		evalSeriesRate(m.raTerms, centuries, math.Cos)
	decDegPerCy := m.dec[1] + 2*m.dec[2]*centuries -
		evalSeriesRate(m.decTerms, centuries, math.Sin)
	pmDegPerDay := m.pm[1] + 2*m.pm[2]*days
	pmSeriesDegPerCy := evalSeriesRate(m.pmTerms, centuries, math.Cos)

	raRate = raDegPerCy / degPerRadian / timescales.SecondsPerJulianCentury
	decRate = -decDegPerCy / degPerRadian / timescales.SecondsPerJulianCentury
	pmRate = pmDegPerDay/degPerRadian/timescales.SecondsPerDay +
		pmSeriesDegPerCy/degPerRadian/timescales.SecondsPerJulianCentury
	return raRate, decRate, pmRate
}
