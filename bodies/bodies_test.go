package bodies

import (
	"errors"
	"math"
	"testing"

	"github.com/star/astrokit/units"
)

func TestFromId(t *testing.T) {
	origin, err := FromId(599)
	if err != nil {
		t.Fatalf("FromId(599): %v", err)
	}
	if origin != Jupiter {
		t.Fatalf("FromId(599) = %v, want Jupiter", origin)
	}

	_, err = FromId(42424242)
	var unknown *ErrUnknownOriginId
	if !errors.As(err, &unknown) {
		t.Fatalf("FromId(42424242) error = %v, want ErrUnknownOriginId", err)
	}
	if unknown.Id != 42424242 {
		t.Fatalf("unknown.Id = %d", unknown.Id)
	}
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		want Origin
	}{
		{"Earth", Earth},
		{"earth", Earth},
		{"EARTH-MOON BARYCENTER", EarthMoonBarycenter},
		{"emb", EarthMoonBarycenter},
		{"ssb", SolarSystemBarycenter},
		{"luna", Moon},
		{"sol", Sun},
		{"wilson", WilsonHarrington},
		{" io ", Io},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromName(tc.name)
			if err != nil {
				t.Fatalf("FromName(%q): %v", tc.name, err)
			}
			if got != tc.want {
				t.Fatalf("FromName(%q) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}

	_, err := FromName("Krypton")
	var unknown *ErrUnknownOriginName
	if !errors.As(err, &unknown) {
		t.Fatalf("FromName(Krypton) error = %v, want ErrUnknownOriginName", err)
	}
}

func TestGravitationalParameter(t *testing.T) {
	mu, err := Earth.GravitationalParameter()
	if err != nil {
		t.Fatalf("Earth GM: %v", err)
	}
	if mu != 398600.43550702266 {
		t.Fatalf("Earth GM = %v", mu)
	}

	_, err = SolarSystemBarycenter.GravitationalParameter()
	var undef *ErrUndefinedProperty
	if !errors.As(err, &undef) {
		t.Fatalf("SSB GM error = %v, want ErrUndefinedProperty", err)
	}
	if undef.Origin != SolarSystemBarycenter {
		t.Fatalf("undef.Origin = %v", undef.Origin)
	}
}

func TestRadiiAndShape(t *testing.T) {
	radii, err := Earth.Radii()
	if err != nil {
		t.Fatalf("Earth radii: %v", err)
	}
	if radii[0].Kilometers() != 6378.1366 || radii[2].Kilometers() != 6356.7519 {
		t.Fatalf("Earth radii = %v", radii)
	}

	equatorial, polar, err := Earth.Spheroid()
	if err != nil {
		t.Fatalf("Earth spheroid: %v", err)
	}
	if equatorial != radii[0] || polar != radii[2] {
		t.Fatalf("spheroid = (%v, %v)", equatorial, polar)
	}

	f, err := Earth.Flattening()
	if err != nil {
		t.Fatalf("Earth flattening: %v", err)
	}
	if math.Abs(f-1.0/298.25642) > 1e-5 {
		t.Fatalf("Earth flattening = %v", f)
	}

	mean, err := Moon.MeanRadius()
	if err != nil {
		t.Fatalf("Moon mean radius: %v", err)
	}
	if mean.Kilometers() != 1737.4 {
		t.Fatalf("Moon mean radius = %v km", mean.Kilometers())
	}

	var undef *ErrUndefinedProperty
	if _, err := WilsonHarrington.MeanRadius(); !errors.As(err, &undef) {
		t.Fatalf("Wilson-Harrington mean radius error = %v", err)
	}
	if _, _, err := PlutoBarycenter.Spheroid(); !errors.As(err, &undef) {
		t.Fatalf("Pluto barycenter spheroid error = %v", err)
	}
}

func TestSatelliteCatalogCoverage(t *testing.T) {
	tests := []struct {
		name string
		id   int32
		want Origin
	}{
		{"Amalthea", 505, Amalthea},
		{"Metis", 516, Metis},
		{"Mimas", 601, Mimas},
		{"Enceladus", 602, Enceladus},
		{"Rhea", 605, Rhea},
		{"Iapetus", 608, Iapetus},
		{"Pan", 618, Pan},
		{"Ariel", 701, Ariel},
		{"Miranda", 705, Miranda},
		{"Puck", 715, Puck},
		{"Nereid", 802, Nereid},
		{"Proteus", 808, Proteus},
		{"Nix", 902, Nix},
		{"Styx", 905, Styx},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			byName, err := FromName(tc.name)
			if err != nil {
				t.Fatalf("FromName(%q): %v", tc.name, err)
			}
			if byName != tc.want {
				t.Fatalf("FromName(%q) = %v, want %v", tc.name, byName, tc.want)
			}
			byId, err := FromId(tc.id)
			if err != nil {
				t.Fatalf("FromId(%d): %v", tc.id, err)
			}
			if byId != tc.want {
				t.Fatalf("FromId(%d) = %v, want %v", tc.id, byId, tc.want)
			}
		})
	}

	// Entries without kernel constants report undefined properties
	// rather than zeros.
	var undef *ErrUndefinedProperty
	if _, err := Mimas.GravitationalParameter(); !errors.As(err, &undef) {
		t.Fatalf("Mimas GM error = %v, want ErrUndefinedProperty", err)
	}
	if _, err := Puck.MeanRadius(); !errors.As(err, &undef) {
		t.Fatalf("Puck mean radius error = %v, want ErrUndefinedProperty", err)
	}
	if _, err := Nix.RotationalElements(0); !errors.As(err, &undef) {
		t.Fatalf("Nix elements error = %v, want ErrUndefinedProperty", err)
	}
}

func TestIsBarycenter(t *testing.T) {
	if !SolarSystemBarycenter.IsBarycenter() || !PlutoBarycenter.IsBarycenter() {
		t.Fatal("barycenters not flagged")
	}
	if Sun.IsBarycenter() || Earth.IsBarycenter() {
		t.Fatal("bodies flagged as barycenters")
	}
}

func TestAllSorted(t *testing.T) {
	origins := All()
	if len(origins) != len(catalog) {
		t.Fatalf("All() returned %d origins, want %d", len(origins), len(catalog))
	}
	for i := 1; i < len(origins); i++ {
		if origins[i] <= origins[i-1] {
			t.Fatalf("All() not ascending at %d: %v, %v", i, origins[i-1], origins[i])
		}
	}
}

func TestJupiterRotationalElementsAtJ2000(t *testing.T) {
	angles, err := Jupiter.RotationalElements(0)
	if err != nil {
		t.Fatalf("Jupiter elements: %v", err)
	}
	want := [3]float64{6.249277121030398, 0.44513208936761073, 4.973315703557842}
	for i := range want {
		if diff := math.Abs(angles[i].Radians() - want[i]); diff > 1e-9 {
			t.Errorf("angle[%d] = %.15f, want %.15f (diff %e)", i, angles[i].Radians(), want[i], diff)
		}
	}

	rates, err := Jupiter.RotationalElementRates(0)
	if err != nil {
		t.Fatalf("Jupiter rates: %v", err)
	}
	wantRates := [3]float64{-1.3266e-13, -3.004e-15, 1.75853e-4}
	tols := [3]float64{1e-16, 1e-17, 1e-8}
	for i := range wantRates {
		if diff := math.Abs(rates[i] - wantRates[i]); diff > tols[i] {
			t.Errorf("rate[%d] = %e, want %e (diff %e)", i, rates[i], wantRates[i], diff)
		}
	}
}

func TestSunRotationRate(t *testing.T) {
	rates, err := Sun.RotationalElementRates(0)
	if err != nil {
		t.Fatalf("Sun rates: %v", err)
	}
	want := 14.1844 / degPerRadian / 86400
	if math.Abs(rates[2]-want) > 1e-15 {
		t.Fatalf("Sun spin rate = %e, want %e", rates[2], want)
	}
	if rates[0] != 0 || rates[1] != 0 {
		t.Fatalf("Sun pole rates = %e, %e, want 0", rates[0], rates[1])
	}
}

// Rates must agree with a central difference of the angles. The sampled
// epochs avoid prime meridian wrap by normalizing the difference.
func TestRatesMatchFiniteDifference(t *testing.T) {
	const h = 16.0
	epochs := []float64{0, 86400 * 365.25, -86400 * 1000.5}
	origins := []Origin{Earth, Moon, Jupiter, Io, Neptune, Triton, Mercury}
	for _, origin := range origins {
		for _, epoch := range epochs {
			plus, err := origin.RotationalElements(epoch + h)
			if err != nil {
				t.Fatalf("%v elements: %v", origin, err)
			}
			minus, err := origin.RotationalElements(epoch - h)
			if err != nil {
				t.Fatalf("%v elements: %v", origin, err)
			}
			rates, err := origin.RotationalElementRates(epoch)
			if err != nil {
				t.Fatalf("%v rates: %v", origin, err)
			}
			for i := range rates {
				diff := units.Radians(plus[i].Radians() - minus[i].Radians()).
					NormalizeTwoPi(units.Radians(0)).Radians()
				numeric := diff / (2 * h)
				scale := math.Max(math.Abs(rates[i]), 1e-12)
				if math.Abs(numeric-rates[i]) > 1e-6*scale+1e-15 {
					t.Errorf("%v rate[%d] at %v = %e, finite difference %e",
						origin, i, epoch, rates[i], numeric)
				}
			}
		}
	}
}

func TestRotationUndefined(t *testing.T) {
	var undef *ErrUndefinedProperty
	if _, err := Bennu.RotationalElements(0); !errors.As(err, &undef) {
		t.Fatalf("Bennu elements error = %v", err)
	}
	if _, err := EarthMoonBarycenter.RotationalElementRates(0); !errors.As(err, &undef) {
		t.Fatalf("EMB rates error = %v", err)
	}
}
