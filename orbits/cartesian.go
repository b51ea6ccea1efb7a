package orbits

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/star/astrokit/units"
)

// Cartesian is a position and velocity pair, metres and metres per
// second, in whatever inertial frame the caller tracks alongside it.
type Cartesian struct {
	Position [3]float64
	Velocity [3]float64
}

func vec(a [3]float64) r3.Vec {
	return r3.Vec{X: a[0], Y: a[1], Z: a[2]}
}

// ToCartesian maps the element set to a state around a point mass with
// gravitational parameter mu in m³/s². The perifocal state is rotated
// through the node, inclination, and periapsis angles.
func (k Keplerian) ToCartesian(mu float64) Cartesian {
	e := k.ecc
	nu := k.trueAnomaly
	p := k.SemiParameter().Meters()

	sinNu, cosNu := nu.SinCos()
	rMag := p / (1 + e*cosNu)
	vCoeff := math.Sqrt(mu / p)

	rPQW := r3.Vec{X: rMag * cosNu, Y: rMag * sinNu}
	vPQW := r3.Vec{X: -vCoeff * sinNu, Y: vCoeff * (e + cosNu)}

	sinI, cosI := k.inclination.SinCos()
	sinO, cosO := k.node.SinCos()
	sinW, cosW := k.argPeri.SinCos()

	// Rows of the transpose of Rz(ω)·Rx(i)·Rz(Ω), perifocal to inertial.
	rows := []r3.Vec{
		{X: cosO*cosW - sinO*sinW*cosI, Y: -cosO*sinW - sinO*cosW*cosI, Z: sinO * sinI},
		{X: sinO*cosW + cosO*sinW*cosI, Y: -sinO*sinW + cosO*cosW*cosI, Z: -cosO * sinI},
		{X: sinW * sinI, Y: cosW * sinI, Z: cosI},
	}

	var state Cartesian
	for i, row := range rows {
		state.Position[i] = r3.Dot(row, rPQW)
		state.Velocity[i] = r3.Dot(row, vPQW)
	}
	return state
}

// ToKeplerian recovers the element set from a state around a point mass
// with gravitational parameter mu in m³/s². Singular geometries collapse
// the undefined angles to zero and fold the phase into the anomaly:
// circular orbits measure the anomaly from the node (or from the x axis
// when also equatorial), and elliptical equatorial orbits count the
// periapsis direction into the anomaly reference.
func (s Cartesian) ToKeplerian(mu float64) (Keplerian, error) {
	r := vec(s.Position)
	v := vec(s.Velocity)
	rMag := r3.Norm(r)
	vMag := r3.Norm(v)

	h := r3.Cross(r, v)
	hMag := r3.Norm(h)
	node := r3.Vec{X: -h.Y, Y: h.X}
	nMag := r3.Norm(node)

	rv := r3.Dot(r, v)
	eVec := r3.Scale(1/mu, r3.Sub(r3.Scale(vMag*vMag-mu/rMag, r), r3.Scale(rv, v)))
	e := r3.Norm(eVec)

	energy := vMag*vMag/2 - mu/rMag
	var a, p float64
	if math.Abs(e-1) < eccentricityTolerance {
		a = math.Inf(1)
		p = hMag * hMag / mu
	} else {
		a = -mu / (2 * energy)
		p = a * (1 - e*e)
	}

	inclination := units.Acos(h.Z / hMag)
	equatorial := nMag < eccentricityTolerance*hMag
	circular := e < eccentricityTolerance

	var raan, argPeri, nu units.Angle
	switch {
	case circular && equatorial:
		nu = units.Acos(r.X / rMag)
		if r.Y < 0 {
			nu = units.TwoPi - nu
		}
	case circular:
		raan = units.Acos(node.X / nMag)
		if node.Y < 0 {
			raan = units.TwoPi - raan
		}
		nu = units.Acos(r3.Dot(node, r) / (nMag * rMag))
		if r.Z < 0 {
			nu = units.TwoPi - nu
		}
	case equatorial:
		argPeri = units.Acos(eVec.X / e)
		if eVec.Y < 0 {
			argPeri = units.TwoPi - argPeri
		}
		nu = trueAnomalyFrom(eVec, e, r, rMag, rv)
	default:
		raan = units.Acos(node.X / nMag)
		if node.Y < 0 {
			raan = units.TwoPi - raan
		}
		argPeri = units.Acos(r3.Dot(node, eVec) / (nMag * e))
		if eVec.Z < 0 {
			argPeri = units.TwoPi - argPeri
		}
		nu = trueAnomalyFrom(eVec, e, r, rMag, rv)
	}

	return Keplerian{
		semiMajor:     units.Distance(a),
		semiParameter: units.Distance(p),
		ecc:           e,
		inclination:   inclination,
		node:          raan,
		argPeri:       argPeri,
		trueAnomaly:   nu,
	}, nil
}

func trueAnomalyFrom(eVec r3.Vec, e float64, r r3.Vec, rMag, rv float64) units.Angle {
	arg := r3.Dot(eVec, r) / (e * rMag)
	if arg > 1 {
		arg = 1
	} else if arg < -1 {
		arg = -1
	}
	nu := units.Acos(arg)
	if rv < 0 {
		nu = units.TwoPi - nu
	}
	return nu
}
