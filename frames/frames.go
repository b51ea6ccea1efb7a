package frames

import (
	"errors"
	"fmt"

	"github.com/star/astrokit/bodies"
	"github.com/star/astrokit/eop"
	"github.com/star/astrokit/timescales"
	"github.com/star/astrokit/units"
)

// ReferenceSystem selects the IERS conventions used for the Earth frame
// chain. The 1996 and 2003 conventions use the equinox-based pipeline
// through MOD, TOD, and PEF; the 2010 conventions use the CIO-based
// pipeline through CIRF and TIRF.
type ReferenceSystem int

const (
	IERS1996 ReferenceSystem = iota
	IERS2003A
	IERS2003B
	IERS2010
)

var referenceSystemNames = map[ReferenceSystem]string{
	IERS1996:  "IERS1996",
	IERS2003A: "IERS2003A",
	IERS2003B: "IERS2003B",
	IERS2010:  "IERS2010",
}

func (s ReferenceSystem) String() string {
	if name, ok := referenceSystemNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ReferenceSystem(%d)", int(s))
}

// ParseReferenceSystem resolves a conventions name.
func ParseReferenceSystem(name string) (ReferenceSystem, error) {
	for sys, n := range referenceSystemNames {
		if n == name {
			return sys, nil
		}
	}
	return 0, fmt.Errorf("unknown reference system %q", name)
}

type frameKind int

const (
	kindICRF frameKind = iota
	kindMOD
	kindTOD
	kindPEF
	kindTEME
	kindCIRF
	kindTIRF
	kindITRF
	kindIAU
)

// Frame identifies a reference frame. The zero value is ICRF.
type Frame struct {
	kind frameKind
	body bodies.Origin
}

var (
	ICRF = Frame{kind: kindICRF}
	MOD  = Frame{kind: kindMOD}
	TOD  = Frame{kind: kindTOD}
	PEF  = Frame{kind: kindPEF}
	TEME = Frame{kind: kindTEME}
	CIRF = Frame{kind: kindCIRF}
	TIRF = Frame{kind: kindTIRF}
	ITRF = Frame{kind: kindITRF}
)

// IAU is the body-fixed frame of a catalog origin.
func IAU(body bodies.Origin) Frame {
	return Frame{kind: kindIAU, body: body}
}

var frameKindNames = map[frameKind]string{
	kindICRF: "ICRF",
	kindMOD:  "MOD",
	kindTOD:  "TOD",
	kindPEF:  "PEF",
	kindTEME: "TEME",
	kindCIRF: "CIRF",
	kindTIRF: "TIRF",
	kindITRF: "ITRF",
}

func (f Frame) String() string {
	if f.kind == kindIAU {
		return "IAU " + f.body.Name()
	}
	return frameKindNames[f.kind]
}

// ParseFrame resolves a frame name. Body-fixed frames are written
// "IAU <body name>".
func ParseFrame(name string) (Frame, error) {
	for kind, n := range frameKindNames {
		if n == name {
			return Frame{kind: kind}, nil
		}
	}
	if len(name) > 4 && name[:4] == "IAU " {
		body, err := bodies.FromName(name[4:])
		if err != nil {
			return Frame{}, err
		}
		return IAU(body), nil
	}
	return Frame{}, fmt.Errorf("unknown frame %q", name)
}

// RotationErrorKind classifies what failed while building a rotation.
type RotationErrorKind int

const (
	// RotationErrorOffset means a time scale conversion failed.
	RotationErrorOffset RotationErrorKind = iota
	// RotationErrorEOP means an Earth orientation lookup failed.
	RotationErrorEOP
)

// RotationError wraps the first failure along a rotation chain.
type RotationError struct {
	Kind  RotationErrorKind
	Inner error
}

func (e *RotationError) Error() string {
	switch e.Kind {
	case RotationErrorOffset:
		return fmt.Sprintf("frames: time scale conversion failed: %v", e.Inner)
	default:
		return fmt.Sprintf("frames: EOP lookup failed: %v", e.Inner)
	}
}

func (e *RotationError) Unwrap() error { return e.Inner }

// ErrMissingEOP is returned when a frame requires Earth orientation data
// and the provider holds none.
var ErrMissingEOP = errors.New("frames: no EOP series configured")

// Provider builds rotations between frames at a given instant. The zero
// provider is not usable; construct with NewProvider. A nil EOP series
// leaves Earth-fixed frames unavailable but inertial and body-fixed
// frames working.
type Provider struct {
	system ReferenceSystem
	series *eop.Series
	scales timescales.TransformProvider
}

// NewProvider returns a rotation provider for the given conventions.
// series may be nil.
func NewProvider(system ReferenceSystem, series *eop.Series) *Provider {
	p := &Provider{system: system, series: series}
	if series != nil {
		p.scales = eop.NewProvider(series)
	} else {
		p.scales = timescales.DefaultProvider{}
	}
	return p
}

// System returns the configured reference system.
func (p *Provider) System() ReferenceSystem { return p.system }

// Scales returns the time scale transform provider backing the rotations.
func (p *Provider) Scales() timescales.TransformProvider { return p.scales }

// Rotation builds the transformation taking coordinates in from to
// coordinates in to at the given instant.
func (p *Provider) Rotation(from, to Frame, at timescales.Time) (Rotation, error) {
	if from == to {
		return IdentityRotation(), nil
	}
	fwd, err := p.fromICRF(from, at)
	if err != nil {
		return Rotation{}, err
	}
	back, err := p.fromICRF(to, at)
	if err != nil {
		return Rotation{}, err
	}
	return back.Compose(fwd.Transpose()), nil
}

// ComposedRotation chains rotations through a sequence of frames. The
// first failing edge aborts the chain.
func (p *Provider) ComposedRotation(at timescales.Time, chain ...Frame) (Rotation, error) {
	if len(chain) < 2 {
		return IdentityRotation(), nil
	}
	total := IdentityRotation()
	for i := 1; i < len(chain); i++ {
		step, err := p.Rotation(chain[i-1], chain[i], at)
		if err != nil {
			return Rotation{}, err
		}
		total = step.Compose(total)
	}
	return total, nil
}

// fromICRF builds the rotation taking ICRF coordinates to the frame.
func (p *Provider) fromICRF(f Frame, at timescales.Time) (Rotation, error) {
	switch f.kind {
	case kindICRF:
		return IdentityRotation(), nil
	case kindMOD:
		return p.modEdge(at)
	case kindTOD:
		return p.chain(at, p.modEdge, p.todEdge)
	case kindPEF:
		return p.chain(at, p.modEdge, p.todEdge, p.pefEdge)
	case kindTEME:
		return p.chain(at, p.modEdge, p.todEdge, p.temeEdge)
	case kindCIRF:
		return p.cirfEdge(at)
	case kindTIRF:
		return p.chain(at, p.cirfEdge, p.tirfEdge)
	case kindITRF:
		if p.system == IERS2010 {
			return p.chain(at, p.cirfEdge, p.tirfEdge, p.polarMotionEdge)
		}
		return p.chain(at, p.modEdge, p.todEdge, p.pefEdge, p.polarMotionEdge)
	case kindIAU:
		return p.bodyEdge(f.body, at)
	default:
		return Rotation{}, fmt.Errorf("frames: unknown frame %v", f)
	}
}

type edgeFunc func(timescales.Time) (Rotation, error)

func (p *Provider) chain(at timescales.Time, edges ...edgeFunc) (Rotation, error) {
	total := IdentityRotation()
	for _, edge := range edges {
		step, err := edge(at)
		if err != nil {
			return Rotation{}, err
		}
		total = step.Compose(total)
	}
	return total, nil
}

// centuries converts to the target scale and returns Julian centuries
// since J2000 on that scale. Extrapolated UT1 is accepted.
func (p *Provider) centuries(at timescales.Time, scale timescales.TimeScale) (float64, error) {
	converted, err := at.ToScale(scale, p.scales)
	if err != nil {
		var extrap timescales.ErrExtrapolatedDeltaUT1TAI
		if !errors.As(err, &extrap) {
			return 0, &RotationError{Kind: RotationErrorOffset, Inner: err}
		}
	}
	return converted.Delta().JulianDate(timescales.EpochJ2000, timescales.UnitCenturies), nil
}

func (p *Provider) taiTime(at timescales.Time) (timescales.Time, error) {
	tai, err := at.ToScale(timescales.TAI, p.scales)
	if err != nil {
		var extrap timescales.ErrExtrapolatedDeltaUT1TAI
		if !errors.As(err, &extrap) {
			return timescales.Time{}, &RotationError{Kind: RotationErrorOffset, Inner: err}
		}
	}
	return tai, nil
}

// modEdge is frame bias times precession at TT. The 2003 and 2010
// conventions use the IAU 2006 Fukushima-Williams bias-precession,
// which carries the ICRS frame bias in its angles; the 1996 conventions
// predate the bias and use the bare IAU 1976 precession.
func (p *Provider) modEdge(at timescales.Time) (Rotation, error) {
	tt, err := p.centuries(at, timescales.TT)
	if err != nil {
		return Rotation{}, err
	}
	if p.system == IERS1996 {
		return NewRotation(precessionMatrix1976(tt), nil), nil
	}
	return NewRotation(biasPrecessionMatrix2006(tt), nil), nil
}

// todEdge is the nutation rotation at TDB with additive EOP celestial
// pole corrections when a series is configured.
func (p *Provider) todEdge(at timescales.Time) (Rotation, error) {
	tdb, err := p.centuries(at, timescales.TDB)
	if err != nil {
		return Rotation{}, err
	}
	dpsi, deps, obliquity := p.nutation(tdb)
	if p.series != nil {
		tai, err := p.taiTime(at)
		if err != nil {
			return Rotation{}, err
		}
		dpsiCorr, depsCorr := p.series.NutationCorrections(tai)
		dpsi += dpsiCorr
		deps += depsCorr
	}
	return NewRotation(nutationMatrix(obliquity, dpsi, deps), nil), nil
}

func (p *Provider) nutation(tdb float64) (dpsi, deps, obliquity units.Angle) {
	switch p.system {
	case IERS2003A, IERS2003B, IERS2010:
		dpsi, deps = nutation2000(tdb)
		obliquity = meanObliquity2006(tdb)
	default:
		dpsi, deps = nutation1980(tdb)
		obliquity = meanObliquity1980(tdb)
	}
	return dpsi, deps, obliquity
}

// pefEdge spins about the true pole by Greenwich Apparent Sidereal Time.
func (p *Provider) pefEdge(at timescales.Time) (Rotation, error) {
	gast, rate, err := p.apparentSiderealTime(at)
	if err != nil {
		return Rotation{}, err
	}
	return zRotation(gast, rate), nil
}

// temeEdge rotates from the true equinox to the mean equinox of date.
func (p *Provider) temeEdge(at timescales.Time) (Rotation, error) {
	tdb, err := p.centuries(at, timescales.TDB)
	if err != nil {
		return Rotation{}, err
	}
	return NewRotation(equationOfEquinoxes1994(tdb).RotationZ(), nil), nil
}

func (p *Provider) apparentSiderealTime(at timescales.Time) (units.Angle, float64, error) {
	ut1, err := p.centuries(at, timescales.UT1)
	if err != nil {
		return 0, 0, err
	}
	tdb, err := p.centuries(at, timescales.TDB)
	if err != nil {
		return 0, 0, err
	}
	gast := gmst1982(ut1) + equationOfEquinoxes1994(tdb)
	if p.series != nil {
		tai, err := p.taiTime(at)
		if err != nil {
			return 0, 0, err
		}
		dpsi, _ := p.series.NutationCorrections(tai)
		gast += units.Radians(dpsi.Radians() * meanObliquity1980(tdb).Cos())
	}
	return gast.ModTwoPi(), gmst1982Rate(ut1), nil
}

// cirfEdge is the CIP/CIO celestial-to-intermediate matrix at TDB with
// EOP corrections applied to (X, Y).
func (p *Provider) cirfEdge(at timescales.Time) (Rotation, error) {
	tdb, err := p.centuries(at, timescales.TDB)
	if err != nil {
		return Rotation{}, err
	}
	x, y := cipCoordinates(tdb)
	if p.series != nil {
		tai, err := p.taiTime(at)
		if err != nil {
			return Rotation{}, err
		}
		dx, dy := p.series.CIPCorrections(tai)
		x += dx
		y += dy
	}
	s := cioLocator(tdb, x, y)
	return NewRotation(celestialToIntermediate(x, y, s), nil), nil
}

// tirfEdge spins about the CIP by the Earth rotation angle.
func (p *Provider) tirfEdge(at timescales.Time) (Rotation, error) {
	ut1Time, err := at.ToScale(timescales.UT1, p.scales)
	if err != nil {
		var extrap timescales.ErrExtrapolatedDeltaUT1TAI
		if !errors.As(err, &extrap) {
			return Rotation{}, &RotationError{Kind: RotationErrorOffset, Inner: err}
		}
	}
	du := ut1Time.Delta().JulianDate(timescales.EpochJ2000, timescales.UnitDays)
	return zRotation(earthRotationAngle(du), EarthRotationRate), nil
}

// polarMotionEdge moves from the intermediate pole to the ITRF pole.
func (p *Provider) polarMotionEdge(at timescales.Time) (Rotation, error) {
	if p.series == nil {
		return Rotation{}, &RotationError{Kind: RotationErrorEOP, Inner: ErrMissingEOP}
	}
	tai, err := p.taiTime(at)
	if err != nil {
		return Rotation{}, err
	}
	xp, yp, err := p.series.PolarMotion(tai)
	if err != nil {
		var extrap timescales.ErrExtrapolatedDeltaUT1TAI
		if !errors.As(err, &extrap) {
			return Rotation{}, &RotationError{Kind: RotationErrorEOP, Inner: err}
		}
	}
	tt, err := p.centuries(at, timescales.TT)
	if err != nil {
		return Rotation{}, err
	}
	// TIO locator s', IERS 2010 eq. 5.13.
	sPrime := units.Arcseconds(-0.000047 * tt)
	m := mulMat((-yp).RotationX(), (-xp).RotationY())
	return NewRotation(mulMat(m, sPrime.RotationZ()), nil), nil
}

// bodyEdge builds the ICRF to body-fixed rotation from the IAU rotational
// elements at TDB.
func (p *Provider) bodyEdge(body bodies.Origin, at timescales.Time) (Rotation, error) {
	tdbTime, err := at.ToScale(timescales.TDB, p.scales)
	if err != nil {
		var extrap timescales.ErrExtrapolatedDeltaUT1TAI
		if !errors.As(err, &extrap) {
			return Rotation{}, &RotationError{Kind: RotationErrorOffset, Inner: err}
		}
	}
	t := tdbTime.Delta().JulianDate(timescales.EpochJ2000, timescales.UnitSeconds)
	angles, err := body.RotationalElements(t)
	if err != nil {
		return Rotation{}, err
	}
	rates, err := body.RotationalElementRates(t)
	if err != nil {
		return Rotation{}, err
	}
	ra := Rotation{m: angles[0].RotationZ(), dm: rotationRateZ(angles[0], rates[0])}
	dec := Rotation{m: angles[1].RotationX(), dm: rotationRateX(angles[1], rates[1])}
	pm := Rotation{m: angles[2].RotationZ(), dm: rotationRateZ(angles[2], rates[2])}
	return pm.Compose(dec).Compose(ra), nil
}
