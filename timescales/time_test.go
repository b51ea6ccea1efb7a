package timescales

import (
	"math"
	"strings"
	"testing"
)

func buildTime(t *testing.T, scale TimeScale, y int64, mo, d, h, mi int, s float64) Time {
	t.Helper()
	tm, err := NewBuilder(scale).YMD(y, mo, d).HMS(h, mi, s).Build()
	if err != nil {
		t.Fatalf("building %d-%02d-%02dT%02d:%02d:%v %s: %v", y, mo, d, h, mi, s, scale, err)
	}
	return tm
}

func TestTimeComponents(t *testing.T) {
	tm := buildTime(t, TAI, 2016, 7, 5, 9, 42, 12.123456789012345)

	if tm.Year() != 2016 || tm.Month() != 7 || tm.Day() != 5 {
		t.Errorf("date = %04d-%02d-%02d, want 2016-07-05", tm.Year(), tm.Month(), tm.Day())
	}
	if tm.Hour() != 9 || tm.Minute() != 42 || tm.Second() != 12 {
		t.Errorf("time = %02d:%02d:%02d, want 09:42:12", tm.Hour(), tm.Minute(), tm.Second())
	}
	if tm.Millisecond() != 123 || tm.Microsecond() != 456 || tm.Nanosecond() != 789 {
		t.Errorf("subsecond = %d ms %d µs %d ns, want 123/456/789", tm.Millisecond(), tm.Microsecond(), tm.Nanosecond())
	}
	if tm.Picosecond() != 12 || tm.Femtosecond() != 345 {
		t.Errorf("subsecond = %d ps %d fs, want 012/345", tm.Picosecond(), tm.Femtosecond())
	}
	if tm.DayOfYear() != 187 {
		t.Errorf("DayOfYear() = %d, want 187", tm.DayOfYear())
	}
}

// TestJ2000JulianDates pins the epoch: 2000-01-01T12:00:00 is JD 2451545.0,
// MJD 51544.5, and zero seconds since J2000.
func TestJ2000JulianDates(t *testing.T) {
	tm := buildTime(t, TAI, 2000, 1, 1, 12, 0, 0)

	if s := tm.Seconds(); s != 0 {
		t.Errorf("Seconds() = %d, want 0", s)
	}
	if jd := tm.JulianDate(EpochJ2000, UnitDays); jd != 0 {
		t.Errorf("J2000 days = %v, want 0", jd)
	}
	if jd := tm.JulianDate(EpochJD, UnitDays); jd != 2451545.0 {
		t.Errorf("JD = %v, want 2451545.0", jd)
	}
	if mjd := tm.JulianDate(EpochMJD, UnitDays); mjd != 51544.5 {
		t.Errorf("MJD = %v, want 51544.5", mjd)
	}
	if jd := tm.JulianDate(EpochJ1950, UnitDays); math.Abs(jd-18262.5) > 1e-9 {
		t.Errorf("days since J1950 = %v, want 18262.5", jd)
	}

	jd1, jd2 := tm.TwoPartJulianDate()
	if jd1 != 2451545.0 || jd2 != 0 {
		t.Errorf("TwoPartJulianDate() = (%v, %v), want (2451545.0, 0)", jd1, jd2)
	}
}

func TestTimeFromJulianDate(t *testing.T) {
	tests := []struct {
		name  string
		jd    float64
		epoch JulianEpoch
	}{
		{"J2000 via JD", 2451545.0, EpochJD},
		{"J2000 via MJD", 51544.5, EpochMJD},
		{"Vallado 3-15 epoch", 2453101.827411875, EpochJD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm, err := TimeFromJulianDate(TT, tt.jd, tt.epoch)
			if err != nil {
				t.Fatalf("TimeFromJulianDate: %v", err)
			}
			if got := tm.JulianDate(tt.epoch, UnitDays); math.Abs(got-tt.jd) > 1e-9 {
				t.Errorf("round trip: got %v, want %v", got, tt.jd)
			}
		})
	}
}

func TestTimeArithmetic(t *testing.T) {
	tm := buildTime(t, TDB, 2010, 3, 14, 15, 9, 26.5)
	d := NewDelta(3600, Subsecond(0.25))

	fwd := tm.Add(d)
	if fwd.Hour() != 16 {
		t.Errorf("Add one hour: hour = %d, want 16", fwd.Hour())
	}
	back := fwd.Sub(d)
	if cmp, _ := back.Compare(tm); cmp != 0 {
		t.Errorf("t + d − d != t")
	}
	// Adding the negation also round-trips.
	again := fwd.Add(d.Neg())
	if cmp, _ := again.Compare(tm); cmp != 0 {
		t.Errorf("t + d + (−d) != t")
	}
}

func TestTimeSinceRequiresMatchingScales(t *testing.T) {
	a := buildTime(t, TAI, 2020, 1, 1, 0, 0, 0)
	b := buildTime(t, TT, 2020, 1, 1, 0, 0, 0)

	if _, err := a.Since(b); err == nil {
		t.Error("expected scale mismatch error")
	}

	c := buildTime(t, TAI, 2020, 1, 2, 0, 0, 0)
	d, err := c.Since(a)
	if err != nil {
		t.Fatalf("Since: %v", err)
	}
	if d.Seconds() != 86400 {
		t.Errorf("one day difference = %d s, want 86400", d.Seconds())
	}
}

func TestTimeString(t *testing.T) {
	tm := buildTime(t, TDB, 2024, 12, 31, 23, 59, 59.875)
	want := "2024-12-31T23:59:59.875 TDB"
	if got := tm.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseISO(t *testing.T) {
	tests := []struct {
		name  string
		scale TimeScale
		input string
		ok    bool
	}{
		{"full with scale", TAI, "2024-03-01T12:34:56.789 TAI", true},
		{"without scale", TT, "2024-03-01T12:34:56", true},
		{"compact", TDB, "20240301T123456.5", true},
		{"scale mismatch", TT, "2024-03-01T12:34:56 TAI", false},
		{"UTC rejected", TAI, "2024-03-01T12:34:56 UTC", false},
		{"garbage", TAI, "not-a-time", false},
		{"bad month", TAI, "2024-13-01T00:00:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm, err := ParseISO(tt.scale, tt.input)
			if (err == nil) != tt.ok {
				t.Fatalf("ParseISO(%q) error = %v, want ok=%v", tt.input, err, tt.ok)
			}
			if !tt.ok {
				return
			}
			if tm.Scale() != tt.scale {
				t.Errorf("Scale() = %s, want %s", tm.Scale(), tt.scale)
			}
		})
	}

	tm, err := ParseISO(TAI, "2024-03-01T12:34:56.789 TAI")
	if err != nil {
		t.Fatalf("ParseISO: %v", err)
	}
	if tm.Year() != 2024 || tm.Month() != 3 || tm.Day() != 1 || tm.Millisecond() != 789 {
		t.Errorf("parsed components wrong: %s", tm)
	}
	if !strings.HasPrefix(tm.String(), "2024-03-01T12:34:56.789") {
		t.Errorf("String() = %q", tm.String())
	}
}

func TestParseScale(t *testing.T) {
	for _, s := range Scales {
		got, err := ParseScale(s.String())
		if err != nil || got != s {
			t.Errorf("ParseScale(%q) = %v, %v", s.String(), got, err)
		}
		// Case-insensitive.
		got, err = ParseScale(strings.ToLower(s.String()))
		if err != nil || got != s {
			t.Errorf("ParseScale(lowercase %q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseScale("UTC"); err == nil {
		t.Error("ParseScale(UTC) should fail: UTC goes through the Utc parser")
	}
}
