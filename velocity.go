package units

// Velocity is a speed in distance per time.
type Velocity struct {
	value    float64
	distance DistanceUnit
	time     TimeUnit
}

// NewVelocity returns value measured in distance per time.
func NewVelocity(value float64, distance DistanceUnit, time TimeUnit) Velocity {
	return Velocity{value: value, distance: distance, time: time}
}

// MilesPerHour returns v miles per hour.
func MilesPerHour(v float64) Velocity { return NewVelocity(v, Mile, Hour) }

// KilometersPerHour returns v kilometers per hour.
func KilometersPerHour(v float64) Velocity { return NewVelocity(v, Kilometer, Hour) }

// MetersPerSecond returns v meters per second.
func MetersPerSecond(v float64) Velocity { return NewVelocity(v, Meter, Second) }

// FeetPerSecond returns v feet per second.
func FeetPerSecond(v float64) Velocity { return NewVelocity(v, Foot, Second) }

// InchesPerSecond returns v inches per second.
func InchesPerSecond(v float64) Velocity { return NewVelocity(v, Inch, Second) }

// CentimetersPerSecond returns v centimeters per second.
func CentimetersPerSecond(v float64) Velocity { return NewVelocity(v, Centimeter, Second) }

func (v Velocity) Kind() Kind                 { return KindVelocity }
func (v Velocity) Value() float64             { return v.value }
func (v Velocity) DistanceUnit() DistanceUnit { return v.distance }
func (v Velocity) TimeUnit() TimeUnit         { return v.time }

// InMetersPerSecond returns v in meters per second.
func (v Velocity) InMetersPerSecond() float64 {
	return v.ToUnit(Meter, Second).value
}

// ToUnit expresses v in distance per time.
func (v Velocity) ToUnit(distance DistanceUnit, time TimeUnit) Velocity {
	value := convertRate(v.value, v.distance, distance, []TimeUnit{v.time}, []TimeUnit{time})
	return Velocity{value: value, distance: distance, time: time}
}

// ToUnitOf expresses v in the units of other.
func (v Velocity) ToUnitOf(other Velocity) Velocity {
	return v.ToUnit(other.distance, other.time)
}

// Add returns v + other in v's units.
func (v Velocity) Add(other Velocity) Velocity {
	return Velocity{value: v.value + other.ToUnitOf(v).value, distance: v.distance, time: v.time}
}

// Sub returns v - other in v's units.
func (v Velocity) Sub(other Velocity) Velocity {
	return Velocity{value: v.value - other.ToUnitOf(v).value, distance: v.distance, time: v.time}
}

// Ratio returns the dimensionless quotient v / other.
func (v Velocity) Ratio(other Velocity) float64 {
	return v.value / other.ToUnitOf(v).value
}

// Mul scales v, keeping its units.
func (v Velocity) Mul(scalar float64) Velocity {
	return Velocity{value: v.value * scalar, distance: v.distance, time: v.time}
}

// Div divides v by a plain number, keeping its units.
func (v Velocity) Div(denominator float64) Velocity {
	return Velocity{value: v.value / denominator, distance: v.distance, time: v.time}
}

// DivAcceleration returns v / a, the time a needs to produce v, in seconds.
func (v Velocity) DivAcceleration(a Acceleration) Time {
	return Seconds(v.InMetersPerSecond() / a.InMetersPerSecondSquared())
}

// MulTime returns v·t as an Acceleration in m/s².
//
// Multiplying by time climbs one step up the velocity → acceleration → jerk
// ladder. This is not the kinematic product (which would be a Distance); it is
// the inverse of how Acceleration.MulTime and the Div* methods are defined here
// and must stay that way.
func (v Velocity) MulTime(t Time) Acceleration {
	return MetersPerSecondSquared(v.InMetersPerSecond() * t.InSeconds())
}

// MulTimes returns v·t1·t2 as a Jerk in m/s³, following the MulTime ladder.
func (v Velocity) MulTimes(t1, t2 Time) Jerk {
	return MetersPerSecondCubed(v.InMetersPerSecond() * t1.InSeconds() * t2.InSeconds())
}

// MulSquared returns v·t² as a Jerk in m/s³.
func (v Velocity) MulSquared(t Time) Jerk {
	return v.MulTimes(t, t)
}

// Equal reports whether v and other have the same value and the same units.
func (v Velocity) Equal(other Velocity) bool { return v == other }

func (v Velocity) AddQuantity(other Quantity) (Quantity, error) {
	o, ok := other.(Velocity)
	if !ok {
		return nil, mismatch("add", KindVelocity, kindOf(other))
	}
	return v.Add(o), nil
}

func (v Velocity) SubQuantity(other Quantity) (Quantity, error) {
	o, ok := other.(Velocity)
	if !ok {
		return nil, mismatch("subtract", KindVelocity, kindOf(other))
	}
	return v.Sub(o), nil
}

func (v Velocity) String() string { return format(v.value, v.distance, v.time) }

func (Velocity) quantity() {}
