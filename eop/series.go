package eop

import (
	"errors"
	"fmt"
	"sort"

	"github.com/star/astrokit/timescales"
	"github.com/star/astrokit/units"
)

// Sample is one row of an Earth-orientation series. Angles are arcseconds,
// DUT1 is UT1−TAI in seconds, and MJD is a Modified Julian Date on the TAI
// scale.
type Sample struct {
	MJD      float64
	DUT1     float64
	Xp       float64
	Yp       float64
	DPsi1980 float64
	DEps1980 float64
	DX2000   float64
	DY2000   float64
}

// Series is an immutable, sorted Earth-orientation table evaluated by
// piecewise-linear interpolation. Queries outside the sample support
// return the boundary value together with an extrapolation warning.
type Series struct {
	samples []Sample
}

// NewSeries validates and constructs a Series. Samples are sorted by MJD;
// at least two samples are required.
func NewSeries(samples []Sample) (*Series, error) {
	if len(samples) < 2 {
		return nil, fmt.Errorf("EOP series needs at least two samples, got %d", len(samples))
	}
	sorted := make([]Sample, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MJD < sorted[j].MJD })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].MJD == sorted[i-1].MJD {
			return nil, fmt.Errorf("duplicate EOP sample at MJD %v", sorted[i].MJD)
		}
	}
	return &Series{samples: sorted}, nil
}

// Support returns the first and last sample MJD.
func (s *Series) Support() (first, last float64) {
	return s.samples[0].MJD, s.samples[len(s.samples)-1].MJD
}

// Len returns the number of samples.
func (s *Series) Len() int { return len(s.samples) }

// interp linearly interpolates the column selected by pick at the given
// MJD. The boolean is false when the query was outside the support and the
// boundary value was used instead.
func (s *Series) interp(mjd float64, pick func(Sample) float64) (float64, bool) {
	n := len(s.samples)
	if mjd <= s.samples[0].MJD {
		return pick(s.samples[0]), mjd == s.samples[0].MJD
	}
	if mjd >= s.samples[n-1].MJD {
		return pick(s.samples[n-1]), mjd == s.samples[n-1].MJD
	}
	idx := sort.Search(n, func(i int) bool { return s.samples[i].MJD > mjd })
	lo, hi := s.samples[idx-1], s.samples[idx]
	frac := (mjd - lo.MJD) / (hi.MJD - lo.MJD)
	return pick(lo)*(1-frac) + pick(hi)*frac, true
}

// DeltaUT1TAI returns UT1 − TAI at the given TAI instant. Outside the
// table support the boundary value is returned wrapped in
// ErrExtrapolatedDeltaUT1TAI.
func (s *Series) DeltaUT1TAI(tai timescales.Time) (timescales.TimeDelta, error) {
	return s.deltaUT1TAIAtMJD(tai.Delta().JulianDate(timescales.EpochMJD, timescales.UnitDays))
}

func (s *Series) deltaUT1TAIAtMJD(mjd float64) (timescales.TimeDelta, error) {
	value, inside := s.interp(mjd, func(sm Sample) float64 { return sm.DUT1 })
	delta, err := timescales.DeltaFromDecimalSeconds(value)
	if err != nil {
		return timescales.TimeDelta{}, err
	}
	if !inside {
		return delta, timescales.ErrExtrapolatedDeltaUT1TAI{Delta: delta}
	}
	return delta, nil
}

// PolarMotion returns the pole coordinates (xp, yp) at the given TAI
// instant.
func (s *Series) PolarMotion(tai timescales.Time) (xp, yp units.Angle, err error) {
	mjd := tai.Delta().JulianDate(timescales.EpochMJD, timescales.UnitDays)
	x, insideX := s.interp(mjd, func(sm Sample) float64 { return sm.Xp })
	y, insideY := s.interp(mjd, func(sm Sample) float64 { return sm.Yp })
	xp, yp = units.Arcseconds(x), units.Arcseconds(y)
	if !insideX || !insideY {
		delta, _ := timescales.DeltaFromDecimalSeconds(0)
		return xp, yp, timescales.ErrExtrapolatedDeltaUT1TAI{Delta: delta}
	}
	return xp, yp, nil
}

// NutationCorrections returns the IAU 1980 celestial pole offsets
// (Δψ, Δε) at the given TAI instant.
func (s *Series) NutationCorrections(tai timescales.Time) (dpsi, deps units.Angle) {
	mjd := tai.Delta().JulianDate(timescales.EpochMJD, timescales.UnitDays)
	p, _ := s.interp(mjd, func(sm Sample) float64 { return sm.DPsi1980 })
	e, _ := s.interp(mjd, func(sm Sample) float64 { return sm.DEps1980 })
	return units.Arcseconds(p), units.Arcseconds(e)
}

// CIPCorrections returns the IAU 2000 CIP offsets (dX, dY) at the given
// TAI instant.
func (s *Series) CIPCorrections(tai timescales.Time) (dx, dy units.Angle) {
	mjd := tai.Delta().JulianDate(timescales.EpochMJD, timescales.UnitDays)
	x, _ := s.interp(mjd, func(sm Sample) float64 { return sm.DX2000 })
	y, _ := s.interp(mjd, func(sm Sample) float64 { return sm.DY2000 })
	return units.Arcseconds(x), units.Arcseconds(y)
}

// Provider is a timescales.TransformProvider with UT1 support backed by a
// Series.
type Provider struct {
	series *Series
}

// NewProvider wraps a series in a transform provider.
func NewProvider(series *Series) *Provider {
	return &Provider{series: series}
}

// Series returns the backing series.
func (p *Provider) Series() *Series { return p.series }

// Offset implements timescales.TransformProvider. UT1 edges interpolate
// the series; the TAI→UT1 direction evaluates at the query instant, the
// inverse iterates the series argument twice, which converges well below
// the table resolution.
func (p *Provider) Offset(origin, target timescales.TimeScale, delta timescales.TimeDelta) (timescales.TimeDelta, error) {
	return timescales.OffsetWithUT1(origin, target, delta, p.ut1Edge)
}

func (p *Provider) ut1Edge(from, to timescales.TimeScale, delta timescales.TimeDelta) (timescales.TimeDelta, error) {
	switch {
	case from == timescales.TAI && to == timescales.UT1:
		return p.series.deltaUT1TAIAtMJD(delta.JulianDate(timescales.EpochMJD, timescales.UnitDays))
	case from == timescales.UT1 && to == timescales.TAI:
		// delta is UT1 seconds since J2000; iterate the TAI argument.
		guess := delta
		var offset timescales.TimeDelta
		var warn error
		for i := 0; i < 2; i++ {
			dut1, err := p.series.deltaUT1TAIAtMJD(guess.JulianDate(timescales.EpochMJD, timescales.UnitDays))
			if err != nil {
				var extrap timescales.ErrExtrapolatedDeltaUT1TAI
				if !errors.As(err, &extrap) {
					return timescales.TimeDelta{}, err
				}
				warn = err
			}
			offset = dut1.Neg()
			guess = delta.Add(offset)
		}
		if warn != nil {
			return offset, timescales.ErrExtrapolatedDeltaUT1TAI{Delta: offset}
		}
		return offset, nil
	default:
		return timescales.TimeDelta{}, fmt.Errorf("not a UT1 edge: %s to %s", from, to)
	}
}
