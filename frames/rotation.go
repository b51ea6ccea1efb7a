// Package frames transforms state vectors between celestial and terrestrial
// reference frames. It implements the equinox-based pipeline
// ICRF-MOD-TOD-PEF-ITRF of the IERS 1996 and 2003 conventions, the CIO-based
// pipeline ICRF-CIRF-TIRF-ITRF of the IERS 2010 conventions, the TEME frame
// of the SGP4 theory, and body-fixed IAU frames driven by the rotational
// elements in the bodies package.
//
// References: Vallado, Fundamentals of Astrodynamics and Applications,
// 4th ed., ch. 3; IERS Technical Notes 21, 32, and 36.
package frames

import (
	"gonum.org/v1/gonum/mat"

	"github.com/star/astrokit/units"
)

// Rotation is a time-dependent frame transformation: the rotation matrix
// and its time derivative. Applying it to a state transforms velocity as
// well as position, so the derivative must be carried through every
// composition.
type Rotation struct {
	m  *mat.Dense
	dm *mat.Dense
}

// NewRotation wraps a matrix and its derivative. A nil derivative means
// the rotation is constant in time.
func NewRotation(m, dm *mat.Dense) Rotation {
	if dm == nil {
		dm = mat.NewDense(3, 3, nil)
	}
	return Rotation{m: m, dm: dm}
}

// IdentityRotation returns the identity transformation.
func IdentityRotation() Rotation {
	m := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		m.Set(i, i, 1)
	}
	return Rotation{m: m, dm: mat.NewDense(3, 3, nil)}
}

// Matrix returns the rotation matrix.
func (r Rotation) Matrix() *mat.Dense { return r.m }

// Derivative returns the matrix time derivative in 1/s.
func (r Rotation) Derivative() *mat.Dense { return r.dm }

// Transpose returns the inverse transformation.
func (r Rotation) Transpose() Rotation {
	m := mat.NewDense(3, 3, nil)
	dm := mat.NewDense(3, 3, nil)
	m.CloneFrom(r.m.T())
	dm.CloneFrom(r.dm.T())
	return Rotation{m: m, dm: dm}
}

// Compose chains r after inner: the result first applies inner, then r.
// The derivative follows the product rule.
func (r Rotation) Compose(inner Rotation) Rotation {
	m := mat.NewDense(3, 3, nil)
	m.Mul(r.m, inner.m)

	dm := mat.NewDense(3, 3, nil)
	var tmp mat.Dense
	tmp.Mul(r.dm, inner.m)
	dm.Add(dm, &tmp)
	tmp.Mul(r.m, inner.dm)
	dm.Add(dm, &tmp)
	return Rotation{m: m, dm: dm}
}

// Apply transforms a position and velocity pair. The velocity picks up the
// frame rotation through the derivative term.
func (r Rotation) Apply(pos, vel [3]float64) (outPos, outVel [3]float64) {
	p := mat.NewVecDense(3, pos[:])
	v := mat.NewVecDense(3, vel[:])

	var rp, dp, rv mat.VecDense
	rp.MulVec(r.m, p)
	dp.MulVec(r.dm, p)
	rv.MulVec(r.m, v)

	for i := 0; i < 3; i++ {
		outPos[i] = rp.AtVec(i)
		outVel[i] = dp.AtVec(i) + rv.AtVec(i)
	}
	return outPos, outVel
}

// zRotation builds a rotation about the Z axis spinning at the given rate
// in rad/s.
func zRotation(angle units.Angle, rate float64) Rotation {
	return Rotation{m: angle.RotationZ(), dm: rotationRateZ(angle, rate)}
}

// rotationRateZ is d/dt of the passive Z rotation at the given spin rate.
func rotationRateZ(angle units.Angle, rate float64) *mat.Dense {
	sin, cos := angle.Sin(), angle.Cos()
	return mat.NewDense(3, 3, []float64{
		-sin * rate, cos * rate, 0,
		-cos * rate, -sin * rate, 0,
		0, 0, 0,
	})
}

// rotationRateX is d/dt of the passive X rotation at the given spin rate.
func rotationRateX(angle units.Angle, rate float64) *mat.Dense {
	sin, cos := angle.Sin(), angle.Cos()
	return mat.NewDense(3, 3, []float64{
		0, 0, 0,
		0, -sin * rate, cos * rate,
		0, -cos * rate, -sin * rate,
	})
}
