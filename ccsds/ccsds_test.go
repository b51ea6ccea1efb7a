package ccsds

import (
	"errors"
	"math"
	"testing"

	"github.com/star/astrokit/bodies"
	"github.com/star/astrokit/eop"
	"github.com/star/astrokit/frames"
	"github.com/star/astrokit/timescales"
)

func ptr(v float64) *float64 { return &v }

func TestStateFromOPM(t *testing.T) {
	rec := OPM{
		Epoch:      "2023-03-05T16:00:00.0",
		RefFrame:   "EME2000",
		CenterName: "Earth",
		Position:   [3]float64{6655.9942, -40218.5751, -82.9177},
		Velocity:   [3]float64{3.11548208, 0.47042605, -0.00101495},
	}

	state, err := StateFromOPM(rec, eop.BuiltinLeapSeconds())
	if err != nil {
		t.Fatalf("StateFromOPM: %v", err)
	}
	if state.Frame != frames.ICRF {
		t.Errorf("Frame = %v, want ICRF", state.Frame)
	}
	if name := state.Center.Name(); name != "Earth" {
		t.Errorf("Center = %q, want Earth", name)
	}
	if got := state.Orbit.Position[0]; got != 6655.9942e3 {
		t.Errorf("Position[0] = %v m, want %v", got, 6655.9942e3)
	}
	if got := state.Orbit.Velocity[2]; got != -0.00101495e3 {
		t.Errorf("Velocity[2] = %v m/s, want %v", got, -0.00101495e3)
	}
	if state.Epoch.Scale() != timescales.TAI {
		t.Errorf("Epoch scale = %v, want TAI", state.Epoch.Scale())
	}
	// 2023 sits 37 leap seconds past UTC.
	if got := state.Epoch.Second(); got != 37 {
		t.Errorf("Epoch second = %v, want 37", got)
	}
}

func TestElementsFromOPM(t *testing.T) {
	rec := OPM{
		Epoch:      "2006-06-03T00:00:00.0",
		RefFrame:   "TOD",
		CenterName: "Earth",
		Elements: &KeplerianBlock{
			SemiMajorAxis:   ptr(41399.5123),
			Eccentricity:    0.020842611,
			Inclination:     0.117746,
			RaOfAscNode:     17.604721,
			ArgOfPericenter: 218.242943,
			TrueAnomaly:     ptr(41.922339),
			GM:              398600.4415,
		},
	}

	_, elements, err := ElementsFromOPM(rec, eop.BuiltinLeapSeconds())
	if err != nil {
		t.Fatalf("ElementsFromOPM: %v", err)
	}
	if got := elements.SemiMajorAxis().Kilometers(); math.Abs(got-41399.5123) > 1e-9 {
		t.Errorf("semi-major axis = %v km, want 41399.5123", got)
	}
	if got := elements.Eccentricity(); got != 0.020842611 {
		t.Errorf("eccentricity = %v, want 0.020842611", got)
	}
	if got := elements.TrueAnomaly().Degrees(); math.Abs(got-41.922339) > 1e-9 {
		t.Errorf("true anomaly = %v deg, want 41.922339", got)
	}
}

func TestElementsFromOMMWithMeanMotion(t *testing.T) {
	// ISS-like mean elements; 15.5 rev/day puts the orbit near 6790 km.
	rec := OMM{
		Epoch:      "2020-06-03T05:33:01.0",
		RefFrame:   "TEME",
		CenterName: "Earth",
		Elements: KeplerianBlock{
			MeanMotion:      ptr(15.5),
			Eccentricity:    0.0001771,
			Inclination:     51.6416,
			RaOfAscNode:     247.4627,
			ArgOfPericenter: 130.536,
			MeanAnomaly:     ptr(10.0),
			GM:              398600.4415,
		},
	}

	_, elements, err := ElementsFromOMM(rec, eop.BuiltinLeapSeconds())
	if err != nil {
		t.Fatalf("ElementsFromOMM: %v", err)
	}
	n := 15.5 * 2 * math.Pi / timescales.SecondsPerDay
	wantA := math.Cbrt(398600.4415 / (n * n))
	if got := elements.SemiMajorAxis().Kilometers(); math.Abs(got-wantA) > 1e-6 {
		t.Errorf("semi-major axis = %v km, want %v", got, wantA)
	}
	mean, err := elements.MeanAnomaly()
	if err != nil {
		t.Fatalf("MeanAnomaly: %v", err)
	}
	if got := mean.Degrees(); math.Abs(got-10.0) > 1e-9 {
		t.Errorf("mean anomaly = %v deg, want 10", got)
	}
}

func TestStatesFromOEM(t *testing.T) {
	rec := OEM{
		RefFrame:   "EME2000",
		CenterName: "Earth",
		Lines: []EphemerisLine{
			{
				Epoch:    "1996-12-18T12:00:00.331",
				Position: [3]float64{2789.619, -280.045, -1746.755},
				Velocity: [3]float64{4.73372, -2.49586, -1.04195},
			},
			{
				Epoch:    "1996-12-18T12:01:00.331",
				Position: [3]float64{2783.419, -308.143, -1877.071},
				Velocity: [3]float64{5.18604, -2.42124, -1.99608},
			},
			{
				Epoch:    "1996-12-18T12:02:00.331",
				Position: [3]float64{2776.033, -336.859, -2008.682},
				Velocity: [3]float64{5.63678, -2.33951, -2.95091},
			},
		},
	}

	states, err := StatesFromOEM(rec, eop.BuiltinLeapSeconds())
	if err != nil {
		t.Fatalf("StatesFromOEM: %v", err)
	}
	if len(states) != 3 {
		t.Fatalf("len(states) = %d, want 3", len(states))
	}
	for i, state := range states {
		if state.Frame != frames.ICRF {
			t.Errorf("states[%d].Frame = %v, want ICRF", i, state.Frame)
		}
		if name := state.Center.Name(); name != "Earth" {
			t.Errorf("states[%d].Center = %q, want Earth", i, name)
		}
	}
	if got := states[1].Orbit.Position[2]; got != -1877.071e3 {
		t.Errorf("Position[2] = %v m, want %v", got, -1877.071e3)
	}
	if got := states[2].Orbit.Velocity[0]; got != 5.63678e3 {
		t.Errorf("Velocity[0] = %v m/s, want %v", got, 5.63678e3)
	}
	gap, err := states[1].Epoch.Since(states[0].Epoch)
	if err != nil {
		t.Fatalf("Since: %v", err)
	}
	if got := gap.DecimalSeconds(); got != 60 {
		t.Errorf("line spacing = %v s, want 60", got)
	}
}

func TestStatesFromOEMRejectsEpochOrder(t *testing.T) {
	rec := OEM{
		RefFrame:   "EME2000",
		CenterName: "Earth",
		Lines: []EphemerisLine{
			{Epoch: "1996-12-18T12:01:00.0", Position: [3]float64{7000, 0, 0}},
			{Epoch: "1996-12-18T12:00:00.0", Position: [3]float64{7000, 10, 0}},
		},
	}
	if _, err := StatesFromOEM(rec, eop.BuiltinLeapSeconds()); err == nil {
		t.Error("descending epochs: want error")
	}

	rec.Lines = nil
	if _, err := StatesFromOEM(rec, eop.BuiltinLeapSeconds()); err == nil {
		t.Error("empty segment: want error")
	}
}

func TestStatesFromOCM(t *testing.T) {
	rec := OCM{
		TrajRefFrame: "ICRF",
		CenterName:   "Earth",
		States: []EphemerisLine{
			{
				Epoch:    "2021-03-15T00:00:00.0",
				Position: [3]float64{-4575.0318, -2694.5927, -4345.0671},
				Velocity: [3]float64{5.01205, -5.54067, -1.84157},
			},
			{
				Epoch:    "2021-03-15T00:10:00.0",
				Position: [3]float64{-1243.0198, -5698.3102, -4221.9974},
				Velocity: [3]float64{6.01395, -3.57533, 2.21811},
			},
		},
	}

	states, err := StatesFromOCM(rec, eop.BuiltinLeapSeconds())
	if err != nil {
		t.Fatalf("StatesFromOCM: %v", err)
	}
	if len(states) != 2 {
		t.Fatalf("len(states) = %d, want 2", len(states))
	}
	if states[0].Frame != frames.ICRF {
		t.Errorf("Frame = %v, want ICRF", states[0].Frame)
	}
	if got := states[0].Orbit.Position[0]; got != -4575.0318e3 {
		t.Errorf("Position[0] = %v m, want %v", got, -4575.0318e3)
	}
}

func TestParseFrameAliases(t *testing.T) {
	cases := []struct {
		in   string
		want frames.Frame
	}{
		{"EME2000", frames.ICRF},
		{"GCRF", frames.ICRF},
		{"icrf", frames.ICRF},
		{"TEME", frames.TEME},
		{"ITRF2000", frames.ITRF},
		{"ITRF-97", frames.ITRF},
		{" TOD ", frames.TOD},
	}
	for _, c := range cases {
		got, err := ParseFrame(c.in)
		if err != nil {
			t.Errorf("ParseFrame(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseFrame(%q) = %v, want %v", c.in, got, c.want)
		}
	}
	if _, err := ParseFrame("RTN"); err == nil {
		t.Error("ParseFrame(RTN): want error for local orbital frame")
	}
}

func TestHeaderFailures(t *testing.T) {
	base := OPM{
		Epoch:      "2023-03-05T16:00:00.0",
		RefFrame:   "EME2000",
		CenterName: "Earth",
	}
	leaps := eop.BuiltinLeapSeconds()

	bad := base
	bad.Epoch = "not a timestamp"
	if _, err := StateFromOPM(bad, leaps); err == nil {
		t.Error("bad epoch: want error")
	}

	bad = base
	bad.CenterName = "Planet X"
	_, err := StateFromOPM(bad, leaps)
	var unknown *bodies.ErrUnknownOriginName
	if !errors.As(err, &unknown) {
		t.Errorf("bad center: err = %v, want ErrUnknownOriginName", err)
	}

	if _, _, err := ElementsFromOPM(base, leaps); err == nil {
		t.Error("missing element block: want error")
	}
}
