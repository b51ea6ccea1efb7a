package bodies

import (
	"fmt"
	"strings"

	"github.com/star/astrokit/units"
)

// Origin identifies a solar-system body or barycenter by its NAIF id.
// The catalog is closed: only the ids declared in tables.go resolve.
type Origin int32

// ErrUnknownOriginId reports a NAIF id outside the catalog.
type ErrUnknownOriginId struct {
	Id int32
}

func (e *ErrUnknownOriginId) Error() string {
	return fmt.Sprintf("bodies: no origin with NAIF id %d", e.Id)
}

// ErrUnknownOriginName reports a name that matches no catalog entry.
type ErrUnknownOriginName struct {
	Name string
}

func (e *ErrUnknownOriginName) Error() string {
	return fmt.Sprintf("bodies: no origin named %q", e.Name)
}

// ErrUndefinedProperty reports a property the catalog does not define for
// an origin, such as the gravitational parameter of the solar system
// barycenter or the rotational elements of a minor body.
type ErrUndefinedProperty struct {
	Origin   Origin
	Property string
}

func (e *ErrUndefinedProperty) Error() string {
	return fmt.Sprintf("bodies: %s is undefined for %s", e.Property, e.Origin.Name())
}

// FromId resolves a NAIF id to a catalog origin.
func FromId(id int32) (Origin, error) {
	if _, ok := catalog[Origin(id)]; !ok {
		return 0, &ErrUnknownOriginId{Id: id}
	}
	return Origin(id), nil
}

// FromName resolves a body name or alias, case-insensitively. Both the
// catalog name ("Earth-Moon Barycenter") and the registered aliases
// ("emb") are accepted.
func FromName(name string) (Origin, error) {
	origin, ok := nameIndex[normalizeName(name)]
	if !ok {
		return 0, &ErrUnknownOriginName{Name: name}
	}
	return origin, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (o Origin) record() *bodyRecord {
	return catalog[o]
}

// Id returns the NAIF id of the origin.
func (o Origin) Id() int32 {
	return int32(o)
}

// Name returns the catalog name, or a numeric placeholder for ids that
// were never resolved through FromId or FromName.
func (o Origin) Name() string {
	rec := o.record()
	if rec == nil {
		return fmt.Sprintf("NAIF %d", int32(o))
	}
	return rec.name
}

func (o Origin) String() string {
	return o.Name()
}

// IsBarycenter reports whether the origin is one of the system
// barycenters, NAIF ids 0 through 9.
func (o Origin) IsBarycenter() bool {
	return o >= 0 && o <= 9
}

// GravitationalParameter returns µ in km³/s².
func (o Origin) GravitationalParameter() (float64, error) {
	rec := o.record()
	if rec == nil || !rec.hasGM {
		return 0, &ErrUndefinedProperty{Origin: o, Property: "gravitational parameter"}
	}
	return rec.gm, nil
}

// MeanRadius returns the mean radius of the body.
func (o Origin) MeanRadius() (units.Distance, error) {
	rec := o.record()
	if rec == nil || !rec.hasRadii {
		return 0, &ErrUndefinedProperty{Origin: o, Property: "mean radius"}
	}
	return units.Kilometers(rec.meanRadius), nil
}

// Radii returns the triaxial ellipsoid radii (equatorial along the prime
// meridian, equatorial at 90 degrees longitude, polar).
func (o Origin) Radii() ([3]units.Distance, error) {
	rec := o.record()
	if rec == nil || !rec.hasRadii {
		return [3]units.Distance{}, &ErrUndefinedProperty{Origin: o, Property: "ellipsoid radii"}
	}
	return [3]units.Distance{
		units.Kilometers(rec.radii[0]),
		units.Kilometers(rec.radii[1]),
		units.Kilometers(rec.radii[2]),
	}, nil
}

// Spheroid returns the equatorial and polar radii of the body treated as
// an oblate spheroid.
func (o Origin) Spheroid() (equatorial, polar units.Distance, err error) {
	radii, err := o.Radii()
	if err != nil {
		return 0, 0, err
	}
	return radii[0], radii[2], nil
}

// Flattening returns (r_eq − r_polar)/r_eq of the spheroid.
func (o Origin) Flattening() (float64, error) {
	equatorial, polar, err := o.Spheroid()
	if err != nil {
		return 0, err
	}
	return float64(equatorial-polar) / float64(equatorial), nil
}

// RotationalElements returns the IAU body-fixed rotation angles
// (α + π/2, π/2 − δ, W mod 2π) at t TDB seconds since J2000, in radians.
// The triple is a 3-1-3 Euler sequence taking ICRF axes to body-fixed
// axes.
func (o Origin) RotationalElements(t float64) ([3]units.Angle, error) {
	rec := o.record()
	if rec == nil || rec.rot == nil {
		return [3]units.Angle{}, &ErrUndefinedProperty{Origin: o, Property: "rotational elements"}
	}
	ra, dec, pm := rec.rot.angles(t)
	return [3]units.Angle{ra, dec, pm}, nil
}

// RotationalElementRates returns the time derivatives of the adjusted
// rotation angles in radians per second.
func (o Origin) RotationalElementRates(t float64) ([3]float64, error) {
	rec := o.record()
	if rec == nil || rec.rot == nil {
		return [3]float64{}, &ErrUndefinedProperty{Origin: o, Property: "rotational element rates"}
	}
	raRate, decRate, pmRate := rec.rot.rates(t)
	return [3]float64{raRate, decRate, pmRate}, nil
}

// All returns every catalog origin in ascending NAIF id order.
func All() []Origin {
	return append([]Origin(nil), allOrigins...)
}
