package timescales

import (
	"errors"
	"fmt"
	"math"
)

// Constants of the relativistic scale transformations, per the IAU
// resolutions collected in the IERS Conventions.
const (
	// TTMinusTAI is the constant offset TT − TAI in seconds.
	TTMinusTAI = 32.184

	// LG is the rate constant of the TT ↔ TCG transformation.
	LG = 6.969290134e-10

	// LB is the rate constant of the TDB ↔ TCB transformation.
	LB = 1.550519768e-8

	// TDB0 is the defining offset of TDB at the 1977 epoch, in seconds.
	TDB0 = -6.55e-5

	// J77TT is 1977-01-01T00:00:00 TAI expressed as TT seconds since J2000.
	J77TT = -725803167.816
)

// Coefficients of the Fairhead & Bretagnon (1990) one-term approximation of
// TDB − TT.
const (
	fbK  = 1.657e-3
	fbEB = 1.671e-2
	fbM0 = 6.239996
	fbM1 = 1.99096871e-7
)

// ErrMissingEOPProvider is returned when a UT1 transformation is requested
// from a provider that has no Earth-orientation data.
var ErrMissingEOPProvider = errors.New("UT1 transformations need an EOP-aware provider")

// ErrExtrapolatedDeltaUT1TAI signals that a UT1−TAI query fell outside the
// tabulated support. It is warning-shaped: the carried delta is the
// linearly extrapolated best-effort value and remains usable.
type ErrExtrapolatedDeltaUT1TAI struct {
	Delta TimeDelta
}

func (e ErrExtrapolatedDeltaUT1TAI) Error() string {
	return fmt.Sprintf("UT1-TAI value %v s is extrapolated outside the table support", e.Delta.DecimalSeconds())
}

// TransformProvider answers offset queries between time scales. The
// returned delta is Target − Origin at the instant given by a delta in the
// origin scale; adding it converts the instant.
type TransformProvider interface {
	Offset(origin, target TimeScale, delta TimeDelta) (TimeDelta, error)
}

// DefaultProvider converts between the five continuous dynamical scales.
// UT1 queries fail with ErrMissingEOPProvider; use an EOP-backed provider
// for those. The zero value is ready to use.
type DefaultProvider struct{}

// scaleGraph is the tree of primitive conversion edges. Every pair of
// scales is connected by a unique path through it.
var scaleGraph = map[TimeScale][]TimeScale{
	TAI: {TT, UT1},
	TT:  {TAI, TCG, TDB},
	TCG: {TT},
	TDB: {TT, TCB},
	TCB: {TDB},
	UT1: {TAI},
}

// scalePath returns the sequence of scales from origin to target along the
// conversion tree, both endpoints included.
func scalePath(origin, target TimeScale) []TimeScale {
	if origin == target {
		return []TimeScale{origin}
	}
	// Tiny fixed graph: breadth-first search with predecessor tracking.
	prev := map[TimeScale]TimeScale{origin: origin}
	queue := []TimeScale{origin}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == target {
			break
		}
		for _, next := range scaleGraph[cur] {
			if _, seen := prev[next]; !seen {
				prev[next] = cur
				queue = append(queue, next)
			}
		}
	}
	var reversed []TimeScale
	for at := target; ; at = prev[at] {
		reversed = append(reversed, at)
		if at == origin {
			break
		}
	}
	path := make([]TimeScale, len(reversed))
	for i, s := range reversed {
		path[len(reversed)-1-i] = s
	}
	return path
}

// Offset implements TransformProvider for the non-UT1 scales by composing
// primitive edges along the conversion tree, updating the delta after each
// edge.
func (DefaultProvider) Offset(origin, target TimeScale, delta TimeDelta) (TimeDelta, error) {
	return composeOffsets(origin, target, delta, func(from, to TimeScale, d TimeDelta) (TimeDelta, error) {
		return TimeDelta{}, ErrMissingEOPProvider
	})
}

// UT1EdgeFunc evaluates a primitive conversion edge touching UT1. Either
// from or to is UT1 and the other is TAI. An
// ErrExtrapolatedDeltaUT1TAI return is treated as a usable value plus
// warning.
type UT1EdgeFunc func(from, to TimeScale, delta TimeDelta) (TimeDelta, error)

// OffsetWithUT1 composes offsets along the conversion tree like
// DefaultProvider, delegating UT1 edges to the given function. EOP-backed
// providers build their Offset method on top of this.
func OffsetWithUT1(origin, target TimeScale, delta TimeDelta, ut1Edge UT1EdgeFunc) (TimeDelta, error) {
	return composeOffsets(origin, target, delta, ut1Edge)
}

// composeOffsets walks the conversion tree from origin to target and sums
// the per-edge offsets. UT1 edges are delegated to ut1Edge.
func composeOffsets(origin, target TimeScale, delta TimeDelta, ut1Edge func(from, to TimeScale, d TimeDelta) (TimeDelta, error)) (TimeDelta, error) {
	path := scalePath(origin, target)
	var total TimeDelta
	var extrapolated *ErrExtrapolatedDeltaUT1TAI
	current := delta
	for i := 0; i+1 < len(path); i++ {
		from, to := path[i], path[i+1]
		var edge TimeDelta
		var err error
		if from == UT1 || to == UT1 {
			edge, err = ut1Edge(from, to, current)
			var warn ErrExtrapolatedDeltaUT1TAI
			if err != nil && errors.As(err, &warn) {
				extrapolated = &warn
				edge = warn.Delta
				err = nil
			}
		} else {
			edge, err = primitiveOffset(from, to, current)
		}
		if err != nil {
			return TimeDelta{}, err
		}
		total = total.Add(edge)
		current = current.Add(edge)
	}
	if extrapolated != nil {
		return total, ErrExtrapolatedDeltaUT1TAI{Delta: total}
	}
	return total, nil
}

// primitiveOffset evaluates one non-UT1 edge of the conversion tree.
func primitiveOffset(from, to TimeScale, delta TimeDelta) (TimeDelta, error) {
	switch {
	case from == TAI && to == TT:
		return DeltaFromDecimalSeconds(TTMinusTAI)
	case from == TT && to == TAI:
		return DeltaFromDecimalSeconds(-TTMinusTAI)
	case from == TT && to == TCG:
		return DeltaFromDecimalSeconds(LG / (1 - LG) * (delta.DecimalSeconds() - J77TT))
	case from == TCG && to == TT:
		return DeltaFromDecimalSeconds(-LG * (delta.DecimalSeconds() - J77TT))
	case from == TT && to == TDB:
		return DeltaFromDecimalSeconds(tdbMinusTT(delta.DecimalSeconds()))
	case from == TDB && to == TT:
		return DeltaFromDecimalSeconds(ttMinusTDB(delta.DecimalSeconds()))
	case from == TDB && to == TCB:
		return DeltaFromDecimalSeconds((LB*(delta.DecimalSeconds()-J77TT) - TDB0) / (1 - LB))
	case from == TCB && to == TDB:
		return DeltaFromDecimalSeconds(-LB*(delta.DecimalSeconds()-J77TT) + TDB0)
	default:
		return TimeDelta{}, fmt.Errorf("no primitive conversion from %s to %s", from, to)
	}
}

// tdbMinusTT evaluates the Fairhead-Bretagnon approximation at TT seconds
// since J2000.
func tdbMinusTT(tt float64) float64 {
	g := fbM0 + fbM1*tt
	return fbK * math.Sin(g+fbEB*math.Sin(g))
}

// ttMinusTDB inverts the approximation with two fixed-point iterations,
// which is sufficient at microsecond accuracy.
func ttMinusTDB(tdb float64) float64 {
	tt := tdb
	var offset float64
	for i := 0; i < 2; i++ {
		offset = -tdbMinusTT(tt)
		tt = tdb + offset
	}
	return offset
}

// ToScale converts the instant to the target scale using the provider.
// When the provider reports an extrapolated UT1−TAI value the converted
// Time is still returned alongside the warning error.
func (t Time) ToScale(target TimeScale, provider TransformProvider) (Time, error) {
	if t.scale == target {
		return t, nil
	}
	offset, err := provider.Offset(t.scale, target, t.delta)
	if err != nil {
		var warn ErrExtrapolatedDeltaUT1TAI
		if errors.As(err, &warn) {
			return Time{scale: target, delta: t.delta.Add(offset)}, err
		}
		return Time{}, err
	}
	return Time{scale: target, delta: t.delta.Add(offset)}, nil
}
