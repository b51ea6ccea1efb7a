// Package orbits provides the classical orbital element set and its map
// to and from Cartesian states around a point-mass origin. States are SI,
// metres and metres per second, with the gravitational parameter in
// m³/s². The algorithms follow Vallado, Fundamentals of Astrodynamics
// and Applications, 4th ed., algorithms 9 and 10.
package orbits

import (
	"fmt"
	"math"

	"github.com/star/astrokit/units"
)

// KeplerianErrorKind classifies invalid element-set input.
type KeplerianErrorKind int

const (
	NegativeEccentricity KeplerianErrorKind = iota
	InvalidShape
	MissingShape
	InvalidInclination
	InvalidLongitudeOfAscendingNode
	InvalidArgumentOfPeriapsis
	Anomaly
)

var keplerianErrorNames = map[KeplerianErrorKind]string{
	NegativeEccentricity:            "negative eccentricity",
	InvalidShape:                    "invalid shape",
	MissingShape:                    "missing shape",
	InvalidInclination:              "invalid inclination",
	InvalidLongitudeOfAscendingNode: "invalid longitude of ascending node",
	InvalidArgumentOfPeriapsis:      "invalid argument of periapsis",
	Anomaly:                         "invalid anomaly",
}

// KeplerianError reports a rejected element set.
type KeplerianError struct {
	Kind   KeplerianErrorKind
	Detail string
}

func (e *KeplerianError) Error() string {
	return fmt.Sprintf("orbits: %s: %s", keplerianErrorNames[e.Kind], e.Detail)
}

// OrbitType classifies the conic by eccentricity.
type OrbitType int

const (
	Circular OrbitType = iota
	Elliptic
	Parabolic
	Hyperbolic
)

func (t OrbitType) String() string {
	switch t {
	case Circular:
		return "circular"
	case Elliptic:
		return "elliptic"
	case Parabolic:
		return "parabolic"
	default:
		return "hyperbolic"
	}
}

// eccentricityTolerance separates the conic classes and triggers the
// singular-geometry tie-breaks.
const eccentricityTolerance = 1e-8

// Keplerian is a classical element set: semi-major axis, eccentricity,
// inclination, longitude of the ascending node, argument of periapsis,
// and true anomaly. Parabolic orbits have no semi-major axis and are
// parameterised by the semi-latus rectum instead; SemiMajorAxis reports
// +Inf for them.
type Keplerian struct {
	semiMajor     units.Distance
	semiParameter units.Distance
	ecc           float64
	inclination   units.Angle
	node          units.Angle
	argPeri       units.Angle
	trueAnomaly   units.Angle
}

func (k Keplerian) SemiMajorAxis() units.Distance { return k.semiMajor }
func (k Keplerian) Eccentricity() float64         { return k.ecc }
func (k Keplerian) Inclination() units.Angle      { return k.inclination }
func (k Keplerian) AscendingNode() units.Angle    { return k.node }
func (k Keplerian) ArgumentOfPeriapsis() units.Angle {
	return k.argPeri
}
func (k Keplerian) TrueAnomaly() units.Angle { return k.trueAnomaly }

// Type classifies the orbit.
func (k Keplerian) Type() OrbitType {
	switch {
	case k.ecc < eccentricityTolerance:
		return Circular
	case math.Abs(k.ecc-1) < eccentricityTolerance:
		return Parabolic
	case k.ecc < 1:
		return Elliptic
	default:
		return Hyperbolic
	}
}

// IsClose compares element sets by relative tolerance on each scalar,
// with angles compared on the circle.
func (k Keplerian) IsClose(o Keplerian, rtol float64) bool {
	closeScalar := func(a, b float64) bool {
		return math.Abs(a-b) <= rtol*math.Max(math.Abs(a), math.Abs(b))+rtol
	}
	closeAngle := func(a, b units.Angle) bool {
		diff := (a - b).NormalizeTwoPi(0)
		return math.Abs(diff.Radians()) <= rtol*(math.Abs(a.Radians())+1)
	}
	// The semi-latus rectum stands in for the semi-major axis so that
	// parabolic sets (a = +Inf) stay comparable.
	return closeScalar(k.semiParameter.Meters(), o.semiParameter.Meters()) &&
		closeScalar(k.ecc, o.ecc) &&
		closeAngle(k.inclination, o.inclination) &&
		closeAngle(k.node, o.node) &&
		closeAngle(k.argPeri, o.argPeri) &&
		closeAngle(k.trueAnomaly, o.trueAnomaly)
}

// SemiParameter is the semi-latus rectum p. For closed and hyperbolic
// orbits p = a(1 − e²); for parabolic orbits it is the defining shape
// parameter.
func (k Keplerian) SemiParameter() units.Distance {
	return k.semiParameter
}

// Period returns the orbital period in seconds. Open orbits have none.
func (k Keplerian) Period(mu float64) (float64, error) {
	if k.ecc >= 1 {
		return 0, &KeplerianError{Kind: InvalidShape, Detail: fmt.Sprintf("no period for %s orbit", k.Type())}
	}
	a := k.semiMajor.Meters()
	return 2 * math.Pi * math.Sqrt(a*a*a/mu), nil
}

// MeanAnomaly converts the true anomaly through the eccentric anomaly.
// Only closed orbits are supported.
func (k Keplerian) MeanAnomaly() (units.Angle, error) {
	if k.ecc >= 1 {
		return 0, &KeplerianError{Kind: Anomaly, Detail: "mean anomaly needs a closed orbit"}
	}
	nu := k.trueAnomaly.Radians()
	e := k.ecc
	eccAnomaly := 2 * math.Atan2(math.Sqrt(1-e)*math.Sin(nu/2), math.Sqrt(1+e)*math.Cos(nu/2))
	return units.Radians(eccAnomaly - e*math.Sin(eccAnomaly)).ModTwoPi(), nil
}

// trueFromMean solves Kepler's equation by Newton iteration.
func trueFromMean(mean units.Angle, e float64) (units.Angle, error) {
	if e >= 1 {
		return 0, &KeplerianError{Kind: Anomaly, Detail: "mean anomaly needs a closed orbit"}
	}
	m := mean.ModTwoPi().Radians()
	eccAnomaly := m
	if e > 0.8 {
		eccAnomaly = math.Pi
	}
	for i := 0; i < 50; i++ {
		f := eccAnomaly - e*math.Sin(eccAnomaly) - m
		delta := f / (1 - e*math.Cos(eccAnomaly))
		eccAnomaly -= delta
		if math.Abs(delta) < 1e-14 {
			break
		}
	}
	nu := 2 * math.Atan2(math.Sqrt(1+e)*math.Sin(eccAnomaly/2), math.Sqrt(1-e)*math.Cos(eccAnomaly/2))
	return units.Radians(nu).ModTwoPi(), nil
}

// Builder assembles a Keplerian element set. The shape is given once, as
// semi-major axis and eccentricity, as periapsis and apoapsis radii, or
// as altitudes over a mean radius.
type Builder struct {
	shapeSet      bool
	semiMajor     float64
	semiParameter float64
	ecc           float64

	inclination units.Angle
	node        units.Angle
	argPeri     units.Angle

	anomaly     units.Angle
	anomalyMean bool

	err error
}

// NewBuilder starts an element-set builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) fail(kind KeplerianErrorKind, format string, args ...any) *Builder {
	if b.err == nil {
		b.err = &KeplerianError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
	}
	return b
}

// Shape sets semi-major axis and eccentricity directly. Elliptic orbits
// need a positive semi-major axis, hyperbolic orbits a negative one.
// For near-parabolic eccentricities the distance is read as the
// semi-latus rectum, since a parabola has no semi-major axis.
func (b *Builder) Shape(semiMajor units.Distance, eccentricity float64) *Builder {
	if eccentricity < 0 {
		return b.fail(NegativeEccentricity, "eccentricity %v", eccentricity)
	}
	a := semiMajor.Meters()
	if math.IsNaN(eccentricity) || math.IsInf(eccentricity, 0) || math.IsNaN(a) {
		return b.fail(InvalidShape, "non-finite shape (a=%v, e=%v)", a, eccentricity)
	}
	if math.Abs(eccentricity-1) < eccentricityTolerance {
		if a <= 0 || math.IsInf(a, 0) {
			return b.fail(InvalidShape, "parabolic semi-latus rectum %v m must be positive and finite", a)
		}
		b.shapeSet = true
		b.semiMajor = math.Inf(1)
		b.semiParameter = a
		b.ecc = eccentricity
		return b
	}
	if a == 0 || (eccentricity > 1) == (a > 0) {
		return b.fail(InvalidShape, "semi-major axis %v m inconsistent with eccentricity %v", a, eccentricity)
	}
	b.shapeSet = true
	b.semiMajor = a
	b.semiParameter = a * (1 - eccentricity*eccentricity)
	b.ecc = eccentricity
	return b
}

// Radii sets the shape from periapsis and apoapsis radii.
func (b *Builder) Radii(periapsis, apoapsis units.Distance) *Builder {
	rp, ra := periapsis.Meters(), apoapsis.Meters()
	if rp <= 0 || ra <= 0 || rp > ra {
		return b.fail(InvalidShape, "periapsis %v m, apoapsis %v m", rp, ra)
	}
	b.shapeSet = true
	b.semiMajor = (rp + ra) / 2
	b.ecc = (ra - rp) / (ra + rp)
	b.semiParameter = b.semiMajor * (1 - b.ecc*b.ecc)
	return b
}

// Altitudes sets the shape from periapsis and apoapsis altitudes above
// the given mean radius.
func (b *Builder) Altitudes(periapsis, apoapsis, meanRadius units.Distance) *Builder {
	return b.Radii(periapsis+meanRadius, apoapsis+meanRadius)
}

// Inclination sets the orbital plane tilt in [0, π].
func (b *Builder) Inclination(inclination units.Angle) *Builder {
	if inclination.Radians() < 0 || inclination.Radians() > math.Pi {
		return b.fail(InvalidInclination, "inclination %v rad outside [0, π]", inclination.Radians())
	}
	b.inclination = inclination
	return b
}

// AscendingNode sets the right ascension of the ascending node.
func (b *Builder) AscendingNode(node units.Angle) *Builder {
	if math.IsNaN(node.Radians()) || math.IsInf(node.Radians(), 0) {
		return b.fail(InvalidLongitudeOfAscendingNode, "node %v", node.Radians())
	}
	b.node = node.ModTwoPi()
	return b
}

// ArgumentOfPeriapsis sets the in-plane periapsis direction.
func (b *Builder) ArgumentOfPeriapsis(argPeri units.Angle) *Builder {
	if math.IsNaN(argPeri.Radians()) || math.IsInf(argPeri.Radians(), 0) {
		return b.fail(InvalidArgumentOfPeriapsis, "argument of periapsis %v", argPeri.Radians())
	}
	b.argPeri = argPeri.ModTwoPi()
	return b
}

// TrueAnomaly sets the anomaly directly.
func (b *Builder) TrueAnomaly(anomaly units.Angle) *Builder {
	if math.IsNaN(anomaly.Radians()) || math.IsInf(anomaly.Radians(), 0) {
		return b.fail(Anomaly, "true anomaly %v", anomaly.Radians())
	}
	b.anomaly = anomaly
	b.anomalyMean = false
	return b
}

// MeanAnomaly sets the anomaly as mean; the conversion to true anomaly
// happens at Build using the shape eccentricity.
func (b *Builder) MeanAnomaly(anomaly units.Angle) *Builder {
	if math.IsNaN(anomaly.Radians()) || math.IsInf(anomaly.Radians(), 0) {
		return b.fail(Anomaly, "mean anomaly %v", anomaly.Radians())
	}
	b.anomaly = anomaly
	b.anomalyMean = true
	return b
}

// Build validates and returns the element set.
func (b *Builder) Build() (Keplerian, error) {
	if b.err != nil {
		return Keplerian{}, b.err
	}
	if !b.shapeSet {
		return Keplerian{}, &KeplerianError{Kind: MissingShape, Detail: "no semi-major axis, radii, or altitudes given"}
	}
	nu := b.anomaly.ModTwoPi()
	if b.anomalyMean {
		var err error
		nu, err = trueFromMean(b.anomaly, b.ecc)
		if err != nil {
			return Keplerian{}, err
		}
	}
	return Keplerian{
		semiMajor:     units.Distance(b.semiMajor),
		semiParameter: units.Distance(b.semiParameter),
		ecc:           b.ecc,
		inclination:   b.inclination,
		node:          b.node,
		argPeri:       b.argPeri,
		trueAnomaly:   nu,
	}, nil
}
