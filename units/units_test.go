package units

import (
	"math"
	"testing"
)

// TestAngleConversions verifies the degree/arcsecond constructors and
// accessors round-trip through radians.
func TestAngleConversions(t *testing.T) {
	tests := []struct {
		name string
		a    Angle
		rad  float64
	}{
		{"90 degrees", Degrees(90), math.Pi / 2},
		{"-180 degrees", Degrees(-180), -math.Pi},
		{"one arcsecond", Arcseconds(1), 4.84813681109536e-6},
		{"one mas", Milliarcseconds(1), 4.84813681109536e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := math.Abs(tt.a.Radians() - tt.rad); diff > 1e-18 {
				t.Errorf("Radians() = %.15e, want %.15e (diff=%.2e)", tt.a.Radians(), tt.rad, diff)
			}
		})
	}

	if d := Degrees(123.456).Degrees(); math.Abs(d-123.456) > 1e-12 {
		t.Errorf("degree round-trip: got %.12f, want 123.456", d)
	}
}

// TestAnglePythagorean checks sin²+cos² = 1 over a sweep of angles.
func TestAnglePythagorean(t *testing.T) {
	for i := -720; i <= 720; i += 7 {
		a := Degrees(float64(i))
		s, c := a.SinCos()
		if diff := math.Abs(s*s + c*c - 1); diff > 1e-15 {
			t.Errorf("sin²+cos² at %d° = 1%+.2e", i, diff)
		}
	}
}

func TestAngleModTwoPi(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"small negative", -0.1, 2*math.Pi - 0.1},
		{"above 2pi", 2*math.Pi + 0.5, 0.5},
		{"large negative", -5 * math.Pi, math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Radians(tt.in).ModTwoPi().Radians()
			if math.Abs(got-tt.want) > 1e-14 {
				t.Errorf("ModTwoPi(%.4f) = %.15f, want %.15f", tt.in, got, tt.want)
			}
			if got < 0 || got >= 2*math.Pi {
				t.Errorf("ModTwoPi(%.4f) = %.15f outside [0, 2π)", tt.in, got)
			}
		})
	}
}

func TestAngleNormalizeTwoPi(t *testing.T) {
	tests := []struct {
		name   string
		in     float64
		center float64
		want   float64
	}{
		{"centered on zero", 3 * math.Pi / 2, 0, -math.Pi / 2},
		{"centered on pi", -math.Pi / 2, math.Pi, 3 * math.Pi / 2},
		{"already in range", 0.25, 0, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Radians(tt.in).NormalizeTwoPi(Radians(tt.center)).Radians()
			if math.Abs(got-tt.want) > 1e-14 {
				t.Errorf("NormalizeTwoPi(%.4f, %.4f) = %.15f, want %.15f", tt.in, tt.center, got, tt.want)
			}
			if got < tt.center-math.Pi || got >= tt.center+math.Pi {
				t.Errorf("result %.15f outside [c−π, c+π)", got)
			}
		})
	}
}

// TestRotationZ pins down the passive sign convention: rotating the frame by
// +90° about Z maps the fixed vector (1,0,0) to frame coordinates (0,-1,0).
func TestRotationZ(t *testing.T) {
	r := Degrees(90).RotationZ()

	x, y := r.At(0, 1), r.At(1, 0)
	if math.Abs(x-1) > 1e-15 || math.Abs(y+1) > 1e-15 {
		t.Errorf("RotationZ(90°) off-diagonal = (%.2f, %.2f), want (1, -1)", x, y)
	}

	// v' = R v for v = (1, 0, 0).
	vx := r.At(0, 0)*1 + r.At(0, 1)*0 + r.At(0, 2)*0
	vy := r.At(1, 0)*1 + r.At(1, 1)*0 + r.At(1, 2)*0
	if math.Abs(vx) > 1e-15 || math.Abs(vy+1) > 1e-15 {
		t.Errorf("RotationZ(90°)·ex = (%.2f, %.2f, _), want (0, -1, _)", vx, vy)
	}
}

func TestDistance(t *testing.T) {
	if km := Kilometers(42164).Meters(); math.Abs(km-4.2164e7) > 1e-6 {
		t.Errorf("Kilometers(42164).Meters() = %.3f, want 4.2164e7", km)
	}
	if au := AstronomicalUnits(1).Kilometers(); math.Abs(au-1.495978707e8) > 1e-3 {
		t.Errorf("1 AU = %.3f km, want 1.495978707e8", au)
	}
}

func TestFrequencyBands(t *testing.T) {
	tests := []struct {
		name string
		f    Frequency
		want Band
	}{
		{"below HF", Hertz(1e6), BandUnknown},
		{"shortwave", Megahertz(10), BandHF},
		{"VHF airband", Megahertz(120), BandVHF},
		{"UHF", Megahertz(450), BandUHF},
		{"GPS L1", Megahertz(1575.42), BandL},
		{"S-band TT&C", Gigahertz(2.2), BandS},
		{"C-band downlink", Gigahertz(4.5), BandC},
		{"X-band deep space", Gigahertz(8.4), BandX},
		{"Ku downlink", Gigahertz(12.5), BandKu},
		{"K", Gigahertz(20), BandK},
		{"Ka uplink", Gigahertz(30), BandKa},
		{"V", Gigahertz(50), BandV},
		{"W", Gigahertz(94), BandW},
		{"G", Gigahertz(150), BandG},
		{"beyond G", Gigahertz(400), BandUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Band(); got != tt.want {
				t.Errorf("Band(%v Hz) = %v, want %v", tt.f.Hertz(), got, tt.want)
			}
		})
	}
}
