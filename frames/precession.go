package frames

import (
	"gonum.org/v1/gonum/mat"

	"github.com/star/astrokit/units"
)

// precessionAngles1976 returns the IAU 1976 equatorial precession angles
// zeta, z, and theta at t TT Julian centuries since J2000.
func precessionAngles1976(t float64) (zeta, z, theta units.Angle) {
	zeta = polyArcsec(t, 0, 2306.2181, 0.30188, 0.017998)
	z = polyArcsec(t, 0, 2306.2181, 1.09468, 0.018203)
	theta = polyArcsec(t, 0, 2004.3109, -0.42665, -0.041833)
	return zeta, z, theta
}

// precessionMatrix1976 takes J2000 mean equator coordinates to the mean
// equator and equinox of date.
func precessionMatrix1976(t float64) *mat.Dense {
	zeta, z, theta := precessionAngles1976(t)
	m := mulMat((-z).RotationZ(), theta.RotationY())
	return mulMat(m, (-zeta).RotationZ())
}

// nutationMatrix takes mean-of-date coordinates to true-of-date given the
// mean obliquity and the nutation in longitude and obliquity.
func nutationMatrix(meanObliquity, dpsi, deps units.Angle) *mat.Dense {
	trueObliquity := meanObliquity + deps
	m := mulMat((-trueObliquity).RotationX(),
		(-dpsi).RotationZ())
	return mulMat(m, meanObliquity.RotationX())
}

// fwAngles2006 returns the Fukushima-Williams bias-precession angles of
// the IAU 2006 model at t TT Julian centuries since J2000.
func fwAngles2006(t float64) (gamb, phib, psib, epsa units.Angle) {
	gamb = polyArcsec(t, -0.052928, 10.556378, 0.4932044, -0.00031238, -0.000002788, 0.0000000260)
	phib = polyArcsec(t, 84381.412819, -46.811016, 0.0511268, 0.00053289, -0.000000440, -0.0000000176)
	psib = polyArcsec(t, -0.041775, 5038.481484, 1.5584175, -0.00018522, -0.000026452, -0.0000000148)
	epsa = meanObliquity2006(t)
	return gamb, phib, psib, epsa
}

// fwMatrix assembles R1(−eps)·R3(−psi)·R1(phi)·R3(gam) from a set of
// Fukushima-Williams angles.
func fwMatrix(gam, phi, psi, eps units.Angle) *mat.Dense {
	m := mulMat((-eps).RotationX(), (-psi).RotationZ())
	m = mulMat(m, phi.RotationX())
	return mulMat(m, gam.RotationZ())
}

// biasPrecessionMatrix2006 is the IAU 2006 frame bias times precession
// matrix assembled from the Fukushima-Williams angles.
func biasPrecessionMatrix2006(t float64) *mat.Dense {
	gamb, phib, psib, epsa := fwAngles2006(t)
	return fwMatrix(gamb, phib, psib, epsa)
}

func mulMat(a, b *mat.Dense) *mat.Dense {
	out := mat.NewDense(3, 3, nil)
	out.Mul(a, b)
	return out
}
