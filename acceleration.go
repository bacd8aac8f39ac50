package units

// Acceleration is a rate of change of velocity in distance per time per time.
// The two time slots are independent; the factory functions set them equal.
type Acceleration struct {
	value    float64
	distance DistanceUnit
	time     [2]TimeUnit
}

// NewAcceleration returns value measured in distance per t1 per t2.
func NewAcceleration(value float64, distance DistanceUnit, t1, t2 TimeUnit) Acceleration {
	return Acceleration{value: value, distance: distance, time: [2]TimeUnit{t1, t2}}
}

// MilesPerHourSquared returns v miles per hour squared.
func MilesPerHourSquared(v float64) Acceleration {
	return NewAcceleration(v, Mile, Hour, Hour)
}

// KilometersPerHourSquared returns v kilometers per hour squared.
func KilometersPerHourSquared(v float64) Acceleration {
	return NewAcceleration(v, Kilometer, Hour, Hour)
}

// MetersPerSecondSquared returns v meters per second squared.
func MetersPerSecondSquared(v float64) Acceleration {
	return NewAcceleration(v, Meter, Second, Second)
}

// FeetPerSecondSquared returns v feet per second squared.
func FeetPerSecondSquared(v float64) Acceleration {
	return NewAcceleration(v, Foot, Second, Second)
}

// InchesPerSecondSquared returns v inches per second squared.
func InchesPerSecondSquared(v float64) Acceleration {
	return NewAcceleration(v, Inch, Second, Second)
}

// CentimetersPerSecondSquared returns v centimeters per second squared.
func CentimetersPerSecondSquared(v float64) Acceleration {
	return NewAcceleration(v, Centimeter, Second, Second)
}

func (a Acceleration) Kind() Kind                 { return KindAcceleration }
func (a Acceleration) Value() float64             { return a.value }
func (a Acceleration) DistanceUnit() DistanceUnit { return a.distance }
func (a Acceleration) TimeUnits() [2]TimeUnit     { return a.time }

// InMetersPerSecondSquared returns a in m/s².
func (a Acceleration) InMetersPerSecondSquared() float64 {
	return a.ToUnit(Meter, Second, Second).value
}

// ToUnit expresses a in distance per t1 per t2.
func (a Acceleration) ToUnit(distance DistanceUnit, t1, t2 TimeUnit) Acceleration {
	to := [2]TimeUnit{t1, t2}
	return Acceleration{
		value:    convertRate(a.value, a.distance, distance, a.time[:], to[:]),
		distance: distance,
		time:     to,
	}
}

// ToUnitOf expresses a in the units of other.
func (a Acceleration) ToUnitOf(other Acceleration) Acceleration {
	return a.ToUnit(other.distance, other.time[0], other.time[1])
}

func (a Acceleration) withValue(value float64) Acceleration {
	a.value = value
	return a
}

// Add returns a + other in a's units.
func (a Acceleration) Add(other Acceleration) Acceleration {
	return a.withValue(a.value + other.ToUnitOf(a).value)
}

// Sub returns a - other in a's units.
func (a Acceleration) Sub(other Acceleration) Acceleration {
	return a.withValue(a.value - other.ToUnitOf(a).value)
}

// Ratio returns the dimensionless quotient a / other.
func (a Acceleration) Ratio(other Acceleration) float64 {
	return a.value / other.ToUnitOf(a).value
}

// Mul scales a, keeping its units.
func (a Acceleration) Mul(scalar float64) Acceleration { return a.withValue(a.value * scalar) }

// Div divides a by a plain number, keeping its units.
func (a Acceleration) Div(denominator float64) Acceleration { return a.withValue(a.value / denominator) }

// MulTime returns a·t as a Jerk in m/s³ (see Velocity.MulTime).
func (a Acceleration) MulTime(t Time) Jerk {
	return MetersPerSecondCubed(a.InMetersPerSecondSquared() * t.InSeconds())
}

// DivJerk returns a / j in seconds.
func (a Acceleration) DivJerk(j Jerk) Time {
	return Seconds(a.InMetersPerSecondSquared() / j.InMetersPerSecondCubed())
}

// Equal reports whether a and other have the same value and the same units.
func (a Acceleration) Equal(other Acceleration) bool { return a == other }

func (a Acceleration) AddQuantity(other Quantity) (Quantity, error) {
	o, ok := other.(Acceleration)
	if !ok {
		return nil, mismatch("add", KindAcceleration, kindOf(other))
	}
	return a.Add(o), nil
}

func (a Acceleration) SubQuantity(other Quantity) (Quantity, error) {
	o, ok := other.(Acceleration)
	if !ok {
		return nil, mismatch("subtract", KindAcceleration, kindOf(other))
	}
	return a.Sub(o), nil
}

func (a Acceleration) String() string { return format(a.value, a.distance, a.time[:]...) }

func (Acceleration) quantity() {}
