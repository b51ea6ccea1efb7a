package frames

import (
	"math"

	"github.com/star/astrokit/timescales"
	"github.com/star/astrokit/units"
)

// GMST 1982 polynomial, seconds of sidereal time per power of UT1 Julian
// centuries.
var gmst82Coeffs = [4]float64{
	67310.54841,
	876600*3600 + 8640184.812866,
	0.093104,
	-6.2e-6,
}

const radiansPerTimeSecond = 2 * math.Pi / timescales.SecondsPerDay

// gmst1982 is the Greenwich Mean Sidereal Time of the IAU 1982 model at
// tu UT1 Julian centuries since J2000.
func gmst1982(tu float64) units.Angle {
	seconds := gmst82Coeffs[0] + tu*(gmst82Coeffs[1]+tu*(gmst82Coeffs[2]+tu*gmst82Coeffs[3]))
	return units.Radians(seconds * radiansPerTimeSecond).ModTwoPi()
}

// gmst1982Rate is the time derivative of GMST in rad/s.
func gmst1982Rate(tu float64) float64 {
	perCentury := gmst82Coeffs[1] + tu*(2*gmst82Coeffs[2]+tu*3*gmst82Coeffs[3])
	return perCentury * radiansPerTimeSecond / timescales.SecondsPerJulianCentury
}

// equationOfEquinoxes1994 is GAST minus GMST at t TDB Julian centuries
// since J2000, from the IAU 1994 resolution with the complementary terms.
func equationOfEquinoxes1994(t float64) units.Angle {
	dpsi, _ := nutation1980(t)
	om := delaunay1980(t).om
	complementary := units.Arcseconds(0.00264*om.Sin() + 0.000063*(om+om).Sin())
	return units.Radians(dpsi.Radians()*meanObliquity1980(t).Cos()) + complementary
}

// ERA coefficients of the IAU 2000 Earth rotation angle.
const (
	eraOffset = 0.7790572732640
	eraRate   = 1.00273781191135448
)

// EarthRotationRate is the nominal rotation rate of the Earth in rad/s,
// the ERA rate expressed per SI second.
const EarthRotationRate = eraRate * 2 * math.Pi / timescales.SecondsPerDay

// earthRotationAngle is ERA (IAU 2000) at du UT1 days since J2000. The
// day fraction is separated from the accumulated rate term to keep
// precision over long spans.
func earthRotationAngle(du float64) units.Angle {
	frac := du - math.Floor(du)
	return units.Radians(2 * math.Pi * (frac + eraOffset + (eraRate-1)*du)).ModTwoPi()
}
