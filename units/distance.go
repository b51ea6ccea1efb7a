package units

// AstronomicalUnit is one astronomical unit in metres (IAU 2012 definition).
const AstronomicalUnit = 1.495978707e11

// Distance is a length in metres.
type Distance float64

// Meters constructs a Distance from metres.
func Meters(m float64) Distance { return Distance(m) }

// Kilometers constructs a Distance from kilometres.
func Kilometers(km float64) Distance { return Distance(km * 1e3) }

// AstronomicalUnits constructs a Distance from astronomical units.
func AstronomicalUnits(au float64) Distance { return Distance(au * AstronomicalUnit) }

// Meters returns the distance in metres.
func (d Distance) Meters() float64 { return float64(d) }

// Kilometers returns the distance in kilometres.
func (d Distance) Kilometers() float64 { return float64(d) / 1e3 }

// AstronomicalUnits returns the distance in astronomical units.
func (d Distance) AstronomicalUnits() float64 { return float64(d) / AstronomicalUnit }

// Velocity is a speed in metres per second.
type Velocity float64

// MetersPerSecond constructs a Velocity from m/s.
func MetersPerSecond(ms float64) Velocity { return Velocity(ms) }

// KilometersPerSecond constructs a Velocity from km/s.
func KilometersPerSecond(kms float64) Velocity { return Velocity(kms * 1e3) }

// MetersPerSecond returns the velocity in m/s.
func (v Velocity) MetersPerSecond() float64 { return float64(v) }

// KilometersPerSecond returns the velocity in km/s.
func (v Velocity) KilometersPerSecond() float64 { return float64(v) / 1e3 }
