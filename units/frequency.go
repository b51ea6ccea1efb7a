package units

// Frequency is a frequency in hertz.
type Frequency float64

// Hertz constructs a Frequency from Hz.
func Hertz(hz float64) Frequency { return Frequency(hz) }

// Megahertz constructs a Frequency from MHz.
func Megahertz(mhz float64) Frequency { return Frequency(mhz * 1e6) }

// Gigahertz constructs a Frequency from GHz.
func Gigahertz(ghz float64) Frequency { return Frequency(ghz * 1e9) }

// Hertz returns the frequency in Hz.
func (f Frequency) Hertz() float64 { return float64(f) }

// Megahertz returns the frequency in MHz.
func (f Frequency) Megahertz() float64 { return float64(f) / 1e6 }

// Gigahertz returns the frequency in GHz.
func (f Frequency) Gigahertz() float64 { return float64(f) / 1e9 }

// Band is an IEEE Std 521 radar/communications frequency band.
type Band int

// IEEE frequency bands, in ascending order.
const (
	BandUnknown Band = iota
	BandHF
	BandVHF
	BandUHF
	BandL
	BandS
	BandC
	BandX
	BandKu
	BandK
	BandKa
	BandV
	BandW
	BandG
)

var bandNames = map[Band]string{
	BandUnknown: "unknown",
	BandHF:      "HF",
	BandVHF:     "VHF",
	BandUHF:     "UHF",
	BandL:       "L",
	BandS:       "S",
	BandC:       "C",
	BandX:       "X",
	BandKu:      "Ku",
	BandK:       "K",
	BandKa:      "Ka",
	BandV:       "V",
	BandW:       "W",
	BandG:       "G",
}

func (b Band) String() string {
	if name, ok := bandNames[b]; ok {
		return name
	}
	return "unknown"
}

// bandEdges holds the lower edge of each band in Hz, per IEEE Std 521.
var bandEdges = []struct {
	lower float64
	band  Band
}{
	{3e6, BandHF},
	{30e6, BandVHF},
	{300e6, BandUHF},
	{1e9, BandL},
	{2e9, BandS},
	{4e9, BandC},
	{8e9, BandX},
	{12e9, BandKu},
	{18e9, BandK},
	{27e9, BandKa},
	{40e9, BandV},
	{75e9, BandW},
	{110e9, BandG},
}

// gBandUpper is the top of the G band in Hz; beyond it the classification
// is out of the table.
const gBandUpper = 300e9

// Band classifies the frequency into its IEEE band. Frequencies below HF or
// above the G band return BandUnknown.
func (f Frequency) Band() Band {
	hz := float64(f)
	if hz < bandEdges[0].lower || hz >= gBandUpper {
		return BandUnknown
	}
	band := BandUnknown
	for _, e := range bandEdges {
		if hz < e.lower {
			break
		}
		band = e.band
	}
	return band
}
