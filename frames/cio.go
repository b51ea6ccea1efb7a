package frames

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/star/astrokit/units"
)

// cipTerm is one periodic term of the CIP coordinate series in
// microarcseconds. Sine and cosine amplitudes multiply t to the given
// power.
type cipTerm struct {
	power                float64
	nl, nlp, nf, nd, nom int
	sin, cos             float64
}

// Dominant terms of the s + XY/2 series, grouped by power of t.
var cioSSeries = []cipTerm{
	{0, 0, 0, 0, 0, 1, -2640.73, 0.39},
	{0, 0, 0, 0, 0, 2, -63.53, 0.02},
	{0, 0, 0, 2, -2, 3, -11.75, -0.01},
	{0, 0, 0, 2, -2, 1, -11.21, -0.01},
	{0, 0, 0, 2, -2, 2, 4.57, 0},
	{0, 0, 0, 2, 0, 3, -2.02, 0},
	{0, 0, 0, 2, 0, 1, -1.98, 0},
	{0, 0, 0, 0, 0, 3, 1.72, 0},
	{0, 0, 1, 0, 0, 1, 1.41, 0.01},
	{0, 0, 1, 0, 0, -1, 1.26, 0.01},
	{0, 1, 0, 0, 0, -1, 0.63, 0.01},
	{0, 1, 0, 0, 0, 1, 0.63, 0.01},
	{1, 0, 0, 0, 0, 1, -0.07, 3.57},
	{1, 0, 0, 0, 0, 2, 1.73, -0.03},
	{1, 0, 0, 2, -2, 3, 0, 0.48},
	{2, 0, 0, 0, 0, 1, 743.52, -0.17},
	{2, 0, 0, 2, -2, 2, 56.91, 0.06},
	{2, 0, 0, 2, 0, 2, 9.84, -0.01},
	{2, 0, 0, 0, 0, 2, -8.85, 0.01},
	{3, 0, 0, 0, 0, 1, 0.30, -23.42},
	{3, 0, 0, 2, -2, 2, -0.03, -1.46},
	{3, 0, 0, 2, 0, 2, -0.01, -0.25},
	{3, 0, 0, 0, 0, 2, 0, 0.23},
	{4, 0, 0, 0, 0, 1, -0.26, -0.01},
}

func evalCIPSeries(series []cipTerm, args delaunay, t float64) float64 {
	var sum float64
	for i := len(series) - 1; i >= 0; i-- {
		term := series[i]
		sin, cos := sincos(args.argument(term.nl, term.nlp, term.nf, term.nd, term.nom))
		sum += math.Pow(t, term.power) * (term.sin*sin + term.cos*cos)
	}
	return sum
}

// cipCoordinates returns the CIP X and Y at t TDB Julian centuries
// since J2000 as the bottom row of the bias-precession-nutation matrix,
// IAU 2006 precession with the IAU 2000 nutation.
func cipCoordinates(t float64) (x, y units.Angle) {
	gamb, phib, psib, epsa := fwAngles2006(t)
	dpsi, deps := nutation2000(t)
	npb := fwMatrix(gamb, phib, psib+dpsi, epsa+deps)
	return units.Radians(npb.At(2, 0)), units.Radians(npb.At(2, 1))
}

// cioLocator returns the CIO locator s given the CIP coordinates at t TDB
// Julian centuries since J2000.
func cioLocator(t float64, x, y units.Angle) units.Angle {
	args := delaunay2003(t)
	poly := polyArcsec(t, 94e-6, 3808.65e-6, -122.68e-6, -72574.11e-6, 27.98e-6, 15.62e-6)
	series := units.Arcseconds(evalCIPSeries(cioSSeries, args, t) * 1e-6)
	return poly + series - units.Radians(x.Radians()*y.Radians()/2)
}

// celestialToIntermediate builds the ICRF to CIRF matrix from the CIP
// coordinates and the CIO locator.
func celestialToIntermediate(x, y, s units.Angle) *mat.Dense {
	xr, yr := x.Radians(), y.Radians()
	r2 := xr*xr + yr*yr
	z := math.Sqrt(1 - r2)
	a := 1 / (1 + z)
	spherical := mat.NewDense(3, 3, []float64{
		1 - a*xr*xr, -a * xr * yr, -xr,
		-a * xr * yr, 1 - a*yr*yr, -yr,
		xr, yr, 1 - a*r2,
	})
	return mulMat(s.RotationZ(), spherical)
}
