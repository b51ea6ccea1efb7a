package eop

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/star/astrokit/timescales"
)

func TestBuiltinLeapSeconds(t *testing.T) {
	table := BuiltinLeapSeconds()
	entries := table.LeapSeconds()

	if len(entries) != 28 {
		t.Fatalf("builtin table has %d entries, want 28", len(entries))
	}
	if entries[0].TaiMinusUtc != 10 {
		t.Errorf("first offset = %d, want 10", entries[0].TaiMinusUtc)
	}
	if last := entries[len(entries)-1]; last.TaiMinusUtc != 37 || last.Date.Year() != 2017 {
		t.Errorf("last entry = %s/%d, want 2017-01-01/37", last.Date, last.TaiMinusUtc)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].TaiMinusUtc != entries[i-1].TaiMinusUtc+1 {
			t.Errorf("offsets not consecutive at %s", entries[i].Date)
		}
	}
}

// TestBuiltinUtcRoundTrip runs the UTC↔TAI identity over non-leap instants
// of the covered era with the real table.
func TestBuiltinUtcRoundTrip(t *testing.T) {
	table := BuiltinLeapSeconds()
	for year := int64(1972); year <= 2024; year += 4 {
		utc, err := timescales.NewUtcBuilder().YMD(year, 5, 17).HMS(10, 20, 30.25).Build()
		if err != nil {
			t.Fatalf("build %d: %v", year, err)
		}
		tai, err := utc.ToTAI(table)
		if err != nil {
			t.Fatalf("ToTAI %d: %v", year, err)
		}
		back, err := timescales.UtcFromTAI(tai, table)
		if err != nil {
			t.Fatalf("UtcFromTAI %d: %v", year, err)
		}
		if back.Date() != utc.Date() || back.TimeOfDay() != utc.TimeOfDay() {
			t.Errorf("round trip %d: got %s, want %s", year, back, utc)
		}
	}
}

func TestParseLeapSeconds(t *testing.T) {
	input := `# date, TAI-UTC
1972-01-01,10
1972-07-01,11

1973-01-01,12
`
	table, err := ParseLeapSeconds(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseLeapSeconds: %v", err)
	}
	if got := len(table.LeapSeconds()); got != 3 {
		t.Errorf("entries = %d, want 3", got)
	}

	bad := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing comma", "1972-01-01 10"},
		{"out of order", "1973-01-01,12\n1972-01-01,10"},
		{"bad date", "1972-13-01,10"},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLeapSeconds(strings.NewReader(tt.input)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func testSeries(t *testing.T) *Series {
	t.Helper()
	// UT1−TAI around 2020: about −37.2 s, drifting slowly.
	series, err := NewSeries([]Sample{
		{MJD: 58849, DUT1: -37.1772, Xp: 0.0765, Yp: 0.2825, DX2000: 0.11e-3, DY2000: -0.25e-3},
		{MJD: 58850, DUT1: -37.1780, Xp: 0.0770, Yp: 0.2830, DX2000: 0.12e-3, DY2000: -0.26e-3},
		{MJD: 58851, DUT1: -37.1790, Xp: 0.0775, Yp: 0.2840, DX2000: 0.13e-3, DY2000: -0.27e-3},
	})
	if err != nil {
		t.Fatalf("NewSeries: %v", err)
	}
	return series
}

func TestSeriesInterpolation(t *testing.T) {
	series := testSeries(t)

	got, inside := series.interp(58849.5, func(s Sample) float64 { return s.DUT1 })
	if !inside {
		t.Error("mid-table query reported as extrapolated")
	}
	want := (-37.1772 + -37.1780) / 2
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("interp = %.7f, want %.7f", got, want)
	}
}

func TestSeriesExtrapolationWarning(t *testing.T) {
	series := testSeries(t)

	// One day past the last sample.
	delta, err := timescales.DeltaFromDays(58852 - 51544.5)
	if err != nil {
		t.Fatalf("delta: %v", err)
	}
	tai := timescales.TimeFromDelta(timescales.TAI, delta)

	value, err := series.DeltaUT1TAI(tai)
	var warn timescales.ErrExtrapolatedDeltaUT1TAI
	if !errors.As(err, &warn) {
		t.Fatalf("error = %v, want ErrExtrapolatedDeltaUT1TAI", err)
	}
	// Boundary value carried in both the return and the warning.
	if math.Abs(value.DecimalSeconds()-(-37.1790)) > 1e-9 {
		t.Errorf("extrapolated value = %v, want -37.1790", value.DecimalSeconds())
	}
	if math.Abs(warn.Delta.DecimalSeconds()-value.DecimalSeconds()) > 1e-12 {
		t.Errorf("warning delta differs from returned value")
	}
}

func TestProviderUT1RoundTrip(t *testing.T) {
	provider := NewProvider(testSeries(t))

	// Mid-table instant.
	delta, err := timescales.DeltaFromDays(58850 - 51544.5)
	if err != nil {
		t.Fatalf("delta: %v", err)
	}
	tai := timescales.TimeFromDelta(timescales.TAI, delta)

	ut1, err := tai.ToScale(timescales.UT1, provider)
	if err != nil {
		t.Fatalf("TAI → UT1: %v", err)
	}
	diff := ut1.Delta().DecimalSeconds() - tai.Delta().DecimalSeconds()
	if math.Abs(diff-(-37.1780)) > 1e-9 {
		t.Errorf("UT1 − TAI = %.6f, want -37.1780", diff)
	}

	back, err := ut1.ToScale(timescales.TAI, provider)
	if err != nil {
		t.Fatalf("UT1 → TAI: %v", err)
	}
	if !back.IsClose(tai, 1e-8, 1e-9) {
		t.Errorf("round trip drift = %.3e s", back.Delta().DecimalSeconds()-tai.Delta().DecimalSeconds())
	}

	// TT → UT1 routes through TAI.
	tt, err := tai.ToScale(timescales.TT, timescales.DefaultProvider{})
	if err != nil {
		t.Fatalf("to TT: %v", err)
	}
	ut1FromTT, err := tt.ToScale(timescales.UT1, provider)
	if err != nil {
		t.Fatalf("TT → UT1: %v", err)
	}
	if !ut1FromTT.IsClose(ut1, 1e-10, 1e-9) {
		t.Errorf("TT → UT1 differs from TAI → UT1 by %.3e s",
			ut1FromTT.Delta().DecimalSeconds()-ut1.Delta().DecimalSeconds())
	}
}

func TestParseFinals(t *testing.T) {
	input := strings.Join([]string{
		"MJD;Year;Month;Day;x_pole;y_pole;UT1-UTC;dPsi;dEpsilon;dX;dY",
		"58849;2020;1;1;0.0765;0.2825;-0.1772;;;0.110;-0.250",
		"58850;2020;1;2;0.0770;0.2830;-0.1780;;;0.120;-0.260",
		"58851;2020;1;3;0.0775;0.2840;;;;;",
		"not-a-number;2020;1;4;0;0;0;;;;",
	}, "\n")

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	series, err := ParseFinals(strings.NewReader(input), BuiltinLeapSeconds(), logger)
	if err != nil {
		t.Fatalf("ParseFinals: %v", err)
	}
	if series.Len() != 2 {
		t.Fatalf("series length = %d, want 2 (tail and junk rows skipped)", series.Len())
	}

	// UT1−UTC of −0.1772 s with TAI−UTC = 37 gives UT1−TAI = −37.1772 s.
	first, last := series.Support()
	if first >= last {
		t.Errorf("support (%v, %v) not increasing", first, last)
	}
	value, inside := series.interp(first, func(s Sample) float64 { return s.DUT1 })
	if !inside {
		t.Error("first sample reported as outside support")
	}
	if math.Abs(value-(-37.1772)) > 1e-9 {
		t.Errorf("DUT1 at first sample = %.6f, want -37.1772", value)
	}
	// MJD rebased from UTC to TAI by 37 s.
	if math.Abs(first-(58849+37.0/86400)) > 1e-9 {
		t.Errorf("first MJD = %.9f, want 58849 + 37/86400", first)
	}
}

func TestClientFetch(t *testing.T) {
	const payload = "MJD;UT1-UTC\n58849;-0.1772\n"
	const stamp = "Wed, 21 Oct 2026 07:28:00 GMT"
	var conditional int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("If-Modified-Since") == stamp {
			conditional++
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("Last-Modified", stamp)
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	data, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(data) != payload {
		t.Errorf("payload mismatch: %q", data)
	}

	// The second fetch revalidates and the unchanged file short-circuits.
	if _, err := c.Fetch(context.Background()); !errors.Is(err, ErrNotModified) {
		t.Errorf("second Fetch error = %v, want ErrNotModified", err)
	}
	if conditional != 1 {
		t.Errorf("conditional requests = %d, want 1", conditional)
	}
}

func TestClientFetchStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	if _, err := NewClient(srv.URL, nil).Fetch(context.Background()); err == nil {
		t.Error("expected error for status 500")
	}
}

func TestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c := NewCache(dir)

	if _, _, err := c.Load(); err == nil {
		t.Error("Load on empty cache: want error")
	}

	if err := c.Store([]byte("first")); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if err := c.Store([]byte("second")); err != nil {
		t.Fatalf("Store: %v", err)
	}

	data, ts, err := c.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("data = %q, want the replacing generation", data)
	}
	if time.Since(ts) > time.Minute {
		t.Errorf("snapshot time %v too old", ts)
	}

	// Replacement leaves a single snapshot behind, no temp litter.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("cache dir holds %d entries, want 1", len(entries))
	}
}

func TestStore(t *testing.T) {
	s := NewStore()
	if s.Get() != nil {
		t.Error("empty store should return nil")
	}
	if s.AgeSeconds() != -1 {
		t.Error("empty store age should be -1")
	}

	ds := &Dataset{Source: "test", FetchedAt: time.Now()}
	s.Set(ds)
	if s.Get() != ds {
		t.Error("Get did not return the dataset just set")
	}
	if age := s.AgeSeconds(); age < 0 || age > 10 {
		t.Errorf("age = %v, want small positive", age)
	}
}
