package timescales

import (
	"errors"
	"math"
	"testing"
)

// TestTAIToTT pins the constant offset: 2000-01-01T00:00:00 TAI is
// 2000-01-01T00:00:32.184 TT.
func TestTAIToTT(t *testing.T) {
	tai := buildTime(t, TAI, 2000, 1, 1, 0, 0, 0)

	tt, err := tai.ToScale(TT, DefaultProvider{})
	if err != nil {
		t.Fatalf("ToScale(TT): %v", err)
	}
	if tt.Scale() != TT {
		t.Errorf("scale = %s, want TT", tt.Scale())
	}
	if tt.Hour() != 0 || tt.Minute() != 0 || tt.Second() != 32 {
		t.Errorf("TT time = %02d:%02d:%02d, want 00:00:32", tt.Hour(), tt.Minute(), tt.Second())
	}
	if ms := tt.Millisecond(); ms != 184 {
		t.Errorf("TT milliseconds = %d, want 184", ms)
	}
}

// TestScaleRoundTrips converts through every pair of continuous scales and
// back, requiring agreement to rtol 1e-10 / atol 1e-14.
func TestScaleRoundTrips(t *testing.T) {
	provider := DefaultProvider{}
	continuous := []TimeScale{TAI, TT, TCG, TCB, TDB}
	epochs := []Time{
		buildTime(t, TAI, 2000, 1, 1, 12, 0, 0),
		buildTime(t, TAI, 1977, 1, 1, 0, 0, 0),
		buildTime(t, TAI, 2024, 6, 1, 3, 30, 15.5),
		buildTime(t, TAI, 1965, 10, 4, 18, 0, 0),
	}

	for _, base := range epochs {
		for _, s1 := range continuous {
			start, err := base.ToScale(s1, provider)
			if err != nil {
				t.Fatalf("to %s: %v", s1, err)
			}
			for _, s2 := range continuous {
				there, err := start.ToScale(s2, provider)
				if err != nil {
					t.Fatalf("%s → %s: %v", s1, s2, err)
				}
				back, err := there.ToScale(s1, provider)
				if err != nil {
					t.Fatalf("%s → %s: %v", s2, s1, err)
				}
				if !back.IsClose(start, 1e-10, 1e-14) {
					t.Errorf("%s → %s → %s at %s: drift %.3e s",
						s1, s2, s1, base,
						back.Delta().DecimalSeconds()-start.Delta().DecimalSeconds())
				}
			}
		}
	}
}

// TestTCGAtJ77 checks that TT and TCG agree at the 1977 origin of the
// relativistic scales.
func TestTCGAtJ77(t *testing.T) {
	tai := buildTime(t, TAI, 1977, 1, 1, 0, 0, 0)
	tt, err := tai.ToScale(TT, DefaultProvider{})
	if err != nil {
		t.Fatalf("to TT: %v", err)
	}
	tcg, err := tt.ToScale(TCG, DefaultProvider{})
	if err != nil {
		t.Fatalf("to TCG: %v", err)
	}
	diff := tcg.Delta().DecimalSeconds() - tt.Delta().DecimalSeconds()
	if math.Abs(diff) > 1e-12 {
		t.Errorf("TCG − TT at J77 = %.3e s, want 0", diff)
	}
}

// TestTDBOffsetMagnitude checks the Fairhead-Bretagnon term stays inside
// its ±1.7 ms envelope and is non-trivial away from the nodes.
func TestTDBOffsetMagnitude(t *testing.T) {
	provider := DefaultProvider{}
	for doy := 1; doy <= 365; doy += 30 {
		tt, err := NewBuilder(TT).DOY(2015, doy).HMS(0, 0, 0).Build()
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		offset, err := provider.Offset(TT, TDB, tt.Delta())
		if err != nil {
			t.Fatalf("Offset(TT, TDB): %v", err)
		}
		if abs := math.Abs(offset.DecimalSeconds()); abs > 1.7e-3 {
			t.Errorf("TDB−TT on doy %d = %.3e s, exceeds envelope", doy, abs)
		}
	}
}

func TestUT1NeedsProvider(t *testing.T) {
	tai := buildTime(t, TAI, 2020, 1, 1, 0, 0, 0)
	_, err := tai.ToScale(UT1, DefaultProvider{})
	if !errors.Is(err, ErrMissingEOPProvider) {
		t.Errorf("error = %v, want ErrMissingEOPProvider", err)
	}
	// Conversions between the other scales pass through unaffected.
	if _, err := tai.ToScale(TCB, DefaultProvider{}); err != nil {
		t.Errorf("TAI → TCB: %v", err)
	}
}

func TestScalePathRoutesThroughHubs(t *testing.T) {
	tests := []struct {
		name   string
		o, tgt TimeScale
		want   []TimeScale
	}{
		{"identity", TT, TT, []TimeScale{TT}},
		{"direct edge", TAI, TT, []TimeScale{TAI, TT}},
		{"TAI to TDB via TT", TAI, TDB, []TimeScale{TAI, TT, TDB}},
		{"TAI to TCB via TT and TDB", TAI, TCB, []TimeScale{TAI, TT, TDB, TCB}},
		{"TCG to TCB", TCG, TCB, []TimeScale{TCG, TT, TDB, TCB}},
		{"UT1 to TT via TAI", UT1, TT, []TimeScale{UT1, TAI, TT}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scalePath(tt.o, tt.tgt)
			if len(got) != len(tt.want) {
				t.Fatalf("path = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("path = %v, want %v", got, tt.want)
				}
			}
		})
	}
}
