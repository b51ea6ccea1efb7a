package timescales

import (
	"testing"
)

func TestNewDateValidation(t *testing.T) {
	tests := []struct {
		name  string
		year  int64
		month int
		day   int
		ok    bool
	}{
		{"J2000", 2000, 1, 1, true},
		{"leap day 2000", 2000, 2, 29, true},
		{"leap day 1900", 1900, 2, 29, false},
		{"leap day 2024", 2024, 2, 29, true},
		{"month 13", 2020, 13, 1, false},
		{"day 32", 2020, 1, 32, false},
		{"day 0", 2020, 1, 0, false},
		{"year zero is proleptic", 0, 3, 1, true},
		{"negative year", -44, 3, 15, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDate(tt.year, tt.month, tt.day)
			if (err == nil) != tt.ok {
				t.Errorf("NewDate(%d, %d, %d) error = %v, want ok=%v", tt.year, tt.month, tt.day, err, tt.ok)
			}
		})
	}
}

func TestDaysSinceJ2000(t *testing.T) {
	tests := []struct {
		name string
		year int64
		m, d int
		want int64
	}{
		{"J2000 day", 2000, 1, 1, 0},
		{"next day", 2000, 1, 2, 1},
		{"previous day", 1999, 12, 31, -1},
		{"unix epoch", 1970, 1, 1, -10957},
		{"MJD epoch", 1858, 11, 17, -51544},
		{"GPS epoch", 1980, 1, 6, -7300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := NewDate(tt.year, tt.m, tt.d)
			if err != nil {
				t.Fatalf("NewDate: %v", err)
			}
			if got := date.DaysSinceJ2000(); got != tt.want {
				t.Errorf("DaysSinceJ2000(%s) = %d, want %d", date, got, tt.want)
			}
		})
	}
}

// TestDateRoundTrip sweeps the calendar and checks that the serial day
// conversion inverts exactly.
func TestDateRoundTrip(t *testing.T) {
	// 0000-01-01 to 9999-12-31, stepping by a prime to keep runtime short
	// while hitting all month/leap combinations.
	start, err := NewDate(0, 1, 1)
	if err != nil {
		t.Fatalf("NewDate: %v", err)
	}
	end, err := NewDate(9999, 12, 31)
	if err != nil {
		t.Fatalf("NewDate: %v", err)
	}
	for serial := start.DaysSinceJ2000(); serial <= end.DaysSinceJ2000(); serial += 17 {
		date := DateFromDaysSinceJ2000(serial)
		if got := date.DaysSinceJ2000(); got != serial {
			t.Fatalf("round trip failed at serial %d: %s → %d", serial, date, got)
		}
		if _, err := NewDate(date.Year(), date.Month(), date.Day()); err != nil {
			t.Fatalf("serial %d produced invalid date %s", serial, date)
		}
	}
}

func TestDateFromDayOfYear(t *testing.T) {
	tests := []struct {
		name string
		year int64
		doy  int
		m, d int
		ok   bool
	}{
		{"first day", 2024, 1, 1, 1, true},
		{"end of Feb leap", 2024, 60, 2, 29, true},
		{"end of Feb non-leap", 2023, 60, 3, 1, true},
		{"last day leap", 2024, 366, 12, 31, true},
		{"366 in non-leap", 2023, 366, 0, 0, false},
		{"zero", 2024, 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := NewDateFromDayOfYear(tt.year, tt.doy)
			if (err == nil) != tt.ok {
				t.Fatalf("error = %v, want ok=%v", err, tt.ok)
			}
			if !tt.ok {
				return
			}
			if date.Month() != tt.m || date.Day() != tt.d {
				t.Errorf("got %s, want %d-%02d-%02d", date, tt.year, tt.m, tt.d)
			}
			if date.DayOfYear() != tt.doy {
				t.Errorf("DayOfYear() = %d, want %d", date.DayOfYear(), tt.doy)
			}
		})
	}
}

func TestTimeOfDayValidation(t *testing.T) {
	tests := []struct {
		name    string
		h, m, s int
		ok      bool
	}{
		{"midnight", 0, 0, 0, true},
		{"end of day", 23, 59, 59, true},
		{"leap slot representable", 23, 59, 60, true},
		{"hour 24", 24, 0, 0, false},
		{"minute 60", 0, 60, 0, false},
		{"second 61", 0, 0, 61, false},
		{"negative hour", -1, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTimeOfDay(tt.h, tt.m, tt.s)
			if (err == nil) != tt.ok {
				t.Errorf("NewTimeOfDay(%d, %d, %d) error = %v, want ok=%v", tt.h, tt.m, tt.s, err, tt.ok)
			}
		})
	}
}
