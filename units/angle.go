// Package units provides typed wrappers for the physical quantities the
// library passes across API boundaries: angles, distances, velocities and
// frequencies.
//
// Every quantity is a single-field newtype over float64 holding the SI base
// unit (radians, metres, metres per second, hertz). Public APIs in this
// repository never accept a bare float64 where one of these types fits;
// conversions from engineering units happen at construction and extraction
// only.
package units

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Angle is a plane angle in radians.
type Angle float64

// TwoPi is a full turn.
const TwoPi = Angle(2 * math.Pi)

// Common angle conversion factors.
const (
	radPerDeg    = math.Pi / 180.0
	degPerRad    = 180.0 / math.Pi
	radPerArcsec = radPerDeg / 3600.0
	radPerMas    = radPerArcsec / 1e3
)

// Radians constructs an Angle from radians.
func Radians(rad float64) Angle { return Angle(rad) }

// Degrees constructs an Angle from degrees.
func Degrees(deg float64) Angle { return Angle(deg * radPerDeg) }

// Arcseconds constructs an Angle from arcseconds.
func Arcseconds(as float64) Angle { return Angle(as * radPerArcsec) }

// Milliarcseconds constructs an Angle from milliarcseconds.
func Milliarcseconds(mas float64) Angle { return Angle(mas * radPerMas) }

// Radians returns the angle in radians.
func (a Angle) Radians() float64 { return float64(a) }

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 { return float64(a) * degPerRad }

// Arcseconds returns the angle in arcseconds.
func (a Angle) Arcseconds() float64 { return float64(a) / radPerArcsec }

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 { return math.Sin(float64(a)) }

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 { return math.Cos(float64(a)) }

// Tan returns the tangent of the angle.
func (a Angle) Tan() float64 { return math.Tan(float64(a)) }

// SinCos returns the sine and cosine of the angle in one call.
func (a Angle) SinCos() (sin, cos float64) { return math.Sincos(float64(a)) }

// Sinh returns the hyperbolic sine of the angle.
func (a Angle) Sinh() float64 { return math.Sinh(float64(a)) }

// Cosh returns the hyperbolic cosine of the angle.
func (a Angle) Cosh() float64 { return math.Cosh(float64(a)) }

// Tanh returns the hyperbolic tangent of the angle.
func (a Angle) Tanh() float64 { return math.Tanh(float64(a)) }

// Asin constructs an Angle from an inverse sine.
func Asin(x float64) Angle { return Angle(math.Asin(x)) }

// Acos constructs an Angle from an inverse cosine.
func Acos(x float64) Angle { return Angle(math.Acos(x)) }

// Atan constructs an Angle from an inverse tangent.
func Atan(x float64) Angle { return Angle(math.Atan(x)) }

// Atan2 constructs an Angle from the two-argument inverse tangent.
func Atan2(y, x float64) Angle { return Angle(math.Atan2(y, x)) }

// Abs returns the absolute value of the angle.
func (a Angle) Abs() Angle { return Angle(math.Abs(float64(a))) }

// Neg returns the negated angle.
func (a Angle) Neg() Angle { return -a }

// ModTwoPi normalizes the angle to the half-open interval [0, 2π).
func (a Angle) ModTwoPi() Angle {
	m := math.Mod(float64(a), 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
	}
	return Angle(m)
}

// NormalizeTwoPi normalizes the angle to [center−π, center+π) via
// x − 2π⌊(x + π − c)/2π⌋.
func (a Angle) NormalizeTwoPi(center Angle) Angle {
	x := float64(a)
	c := float64(center)
	return Angle(x - 2*math.Pi*math.Floor((x+math.Pi-c)/(2*math.Pi)))
}

// RotationX returns the passive rotation matrix about the X axis: the
// coordinates of a fixed vector expressed in a frame rotated by the angle.
func (a Angle) RotationX() *mat.Dense {
	s, c := math.Sincos(float64(a))
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	})
}

// RotationY returns the passive rotation matrix about the Y axis.
func (a Angle) RotationY() *mat.Dense {
	s, c := math.Sincos(float64(a))
	return mat.NewDense(3, 3, []float64{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	})
}

// RotationZ returns the passive rotation matrix about the Z axis.
func (a Angle) RotationZ() *mat.Dense {
	s, c := math.Sincos(float64(a))
	return mat.NewDense(3, 3, []float64{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	})
}
