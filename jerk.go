package units

// Jerk is a rate of change of acceleration in distance per time cubed.
type Jerk struct {
	value    float64
	distance DistanceUnit
	time     [3]TimeUnit
}

// NewJerk returns value measured in distance per t1 per t2 per t3.
func NewJerk(value float64, distance DistanceUnit, t1, t2, t3 TimeUnit) Jerk {
	return Jerk{value: value, distance: distance, time: [3]TimeUnit{t1, t2, t3}}
}

// MilesPerHourCubed returns v miles per hour cubed.
func MilesPerHourCubed(v float64) Jerk { return NewJerk(v, Mile, Hour, Hour, Hour) }

// KilometersPerHourCubed returns v kilometers per hour cubed.
func KilometersPerHourCubed(v float64) Jerk { return NewJerk(v, Kilometer, Hour, Hour, Hour) }

// MetersPerSecondCubed returns v meters per second cubed.
func MetersPerSecondCubed(v float64) Jerk { return NewJerk(v, Meter, Second, Second, Second) }

// FeetPerSecondCubed returns v feet per second cubed.
func FeetPerSecondCubed(v float64) Jerk { return NewJerk(v, Foot, Second, Second, Second) }

// InchesPerSecondCubed returns v inches per second cubed.
func InchesPerSecondCubed(v float64) Jerk { return NewJerk(v, Inch, Second, Second, Second) }

// CentimetersPerSecondCubed returns v centimeters per second cubed.
func CentimetersPerSecondCubed(v float64) Jerk {
	return NewJerk(v, Centimeter, Second, Second, Second)
}

func (j Jerk) Kind() Kind                 { return KindJerk }
func (j Jerk) Value() float64             { return j.value }
func (j Jerk) DistanceUnit() DistanceUnit { return j.distance }
func (j Jerk) TimeUnits() [3]TimeUnit     { return j.time }

// InMetersPerSecondCubed returns j in m/s³.
func (j Jerk) InMetersPerSecondCubed() float64 {
	return j.ToUnit(Meter, Second, Second, Second).value
}

// ToUnit expresses j in distance per t1 per t2 per t3.
func (j Jerk) ToUnit(distance DistanceUnit, t1, t2, t3 TimeUnit) Jerk {
	to := [3]TimeUnit{t1, t2, t3}
	return Jerk{
		value:    convertRate(j.value, j.distance, distance, j.time[:], to[:]),
		distance: distance,
		time:     to,
	}
}

// ToUnitOf expresses j in the units of other.
func (j Jerk) ToUnitOf(other Jerk) Jerk {
	return j.ToUnit(other.distance, other.time[0], other.time[1], other.time[2])
}

func (j Jerk) withValue(value float64) Jerk {
	j.value = value
	return j
}

// Add returns j + other in j's units.
func (j Jerk) Add(other Jerk) Jerk { return j.withValue(j.value + other.ToUnitOf(j).value) }

// Sub returns j - other in j's units.
func (j Jerk) Sub(other Jerk) Jerk { return j.withValue(j.value - other.ToUnitOf(j).value) }

// Ratio returns the dimensionless quotient j / other.
func (j Jerk) Ratio(other Jerk) float64 { return j.value / other.ToUnitOf(j).value }

// Mul scales j, keeping its units.
func (j Jerk) Mul(scalar float64) Jerk { return j.withValue(j.value * scalar) }

// Div divides j by a plain number, keeping its units.
func (j Jerk) Div(denominator float64) Jerk { return j.withValue(j.value / denominator) }

// Equal reports whether j and other have the same value and the same units.
func (j Jerk) Equal(other Jerk) bool { return j == other }

func (j Jerk) AddQuantity(other Quantity) (Quantity, error) {
	o, ok := other.(Jerk)
	if !ok {
		return nil, mismatch("add", KindJerk, kindOf(other))
	}
	return j.Add(o), nil
}

func (j Jerk) SubQuantity(other Quantity) (Quantity, error) {
	o, ok := other.(Jerk)
	if !ok {
		return nil, mismatch("subtract", KindJerk, kindOf(other))
	}
	return j.Sub(o), nil
}

func (j Jerk) String() string { return format(j.value, j.distance, j.time[:]...) }

func (Jerk) quantity() {}
