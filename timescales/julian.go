package timescales

// JulianEpoch selects the zero point of a Julian date.
type JulianEpoch int

const (
	// EpochJD is the Julian Date origin, -4712-01-01T12:00:00.
	EpochJD JulianEpoch = iota
	// EpochMJD is the Modified Julian Date origin, 1858-11-17T00:00:00.
	EpochMJD
	// EpochJ1950 is the Besselian 1950 reference, 1950-01-01T00:00:00.
	EpochJ1950
	// EpochJ2000 is 2000-01-01T12:00:00.
	EpochJ2000
)

// JulianUnit selects the unit a Julian date is expressed in.
type JulianUnit int

const (
	UnitSeconds JulianUnit = iota
	UnitDays
	UnitCenturies
)

// Julian day numbers of the supported epochs.
const (
	// JDJ2000 is the Julian Date of the J2000 epoch.
	JDJ2000 = 2451545.0
	// MJDJ2000 is the Modified Julian Date of the J2000 epoch.
	MJDJ2000 = 51544.5
	// J1950DaysFromJ2000 is the day count from J1950 to J2000.
	J1950DaysFromJ2000 = 18262.5
)

// secondsFromJ2000 returns the offset added to seconds-since-J2000 to
// express a time relative to this epoch.
func (e JulianEpoch) secondsFromJ2000() float64 {
	switch e {
	case EpochJD:
		return JDJ2000 * SecondsPerDay
	case EpochMJD:
		return MJDJ2000 * SecondsPerDay
	case EpochJ1950:
		return J1950DaysFromJ2000 * SecondsPerDay
	case EpochJ2000:
		return 0
	default:
		return 0
	}
}
