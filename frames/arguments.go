package frames

import (
	"math"

	"github.com/star/astrokit/units"
)

const arcsecPerRevolution = 1296000.0

// delaunay holds the five fundamental luni-solar arguments: the mean
// anomalies of the Moon and Sun, the mean argument of latitude of the
// Moon, the mean elongation of the Moon from the Sun, and the mean
// longitude of the Moon's ascending node.
type delaunay struct {
	l, lp, f, d, om units.Angle
}

func polyArcsec(t float64, coeffs ...float64) units.Angle {
	var sum float64
	for i := len(coeffs) - 1; i >= 0; i-- {
		sum = sum*t + coeffs[i]
	}
	return units.Arcseconds(sum)
}

func polyArcsecWrapped(t float64, coeffs ...float64) units.Angle {
	return polyArcsec(t, coeffs...).ModTwoPi()
}

// delaunay1980 evaluates the arguments of the IAU 1980 nutation theory at
// t TDB Julian centuries since J2000. Whole revolutions are folded into
// the linear rate.
func delaunay1980(t float64) delaunay {
	return delaunay{
		l:  polyArcsecWrapped(t, 485866.733, 1325*arcsecPerRevolution+715922.633, 31.310, 0.064),
		lp: polyArcsecWrapped(t, 1287099.804, 99*arcsecPerRevolution+1292581.224, -0.577, -0.012),
		f:  polyArcsecWrapped(t, 335778.877, 1342*arcsecPerRevolution+295263.137, -13.257, 0.011),
		d:  polyArcsecWrapped(t, 1072261.307, 1236*arcsecPerRevolution+1105601.328, -6.891, 0.019),
		om: polyArcsecWrapped(t, 450160.280, -(5*arcsecPerRevolution + 482890.539), 7.455, 0.008),
	}
}

// delaunay2003 evaluates the arguments of the IERS 2003 conventions,
// shared by the IAU 2000 nutation and the IAU 2006 CIP series.
func delaunay2003(t float64) delaunay {
	return delaunay{
		l:  polyArcsecWrapped(t, 485868.249036, 1717915923.2178, 31.8792, 0.051635, -0.00024470),
		lp: polyArcsecWrapped(t, 1287104.793048, 129596581.0481, -0.5532, 0.000136, -0.00001149),
		f:  polyArcsecWrapped(t, 335779.526232, 1739527262.8478, -12.7512, -0.001037, 0.00000417),
		d:  polyArcsecWrapped(t, 1072260.703692, 1602961601.2090, -6.3706, 0.006593, -0.00003169),
		om: polyArcsecWrapped(t, 450160.398036, -6962890.5431, 7.4722, 0.007702, -0.00005939),
	}
}

// argument folds the integer multipliers of one series term.
func (a delaunay) argument(nl, nlp, nf, nd, nom int) float64 {
	return float64(nl)*a.l.Radians() +
		float64(nlp)*a.lp.Radians() +
		float64(nf)*a.f.Radians() +
		float64(nd)*a.d.Radians() +
		float64(nom)*a.om.Radians()
}

// meanObliquity1980 is the IAU 1980 mean obliquity of the ecliptic.
func meanObliquity1980(t float64) units.Angle {
	return polyArcsec(t, 84381.448, -46.8150, -0.00059, 0.001813)
}

// meanObliquity2006 is the IAU 2006 mean obliquity of the ecliptic.
func meanObliquity2006(t float64) units.Angle {
	return polyArcsec(t, 84381.406, -46.836769, -0.0001831, 0.00200340, -0.000000576, -0.0000000434)
}

func sincos(x float64) (float64, float64) {
	return math.Sin(x), math.Cos(x)
}
