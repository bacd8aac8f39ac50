package units

// Distance is a length tagged with the unit it was measured in.
type Distance struct {
	value float64
	unit  DistanceUnit
}

// NewDistance returns value measured in unit.
func NewDistance(value float64, unit DistanceUnit) Distance {
	return Distance{value: value, unit: unit}
}

// Miles returns v miles.
func Miles(v float64) Distance { return NewDistance(v, Mile) }

// Kilometers returns v kilometers.
func Kilometers(v float64) Distance { return NewDistance(v, Kilometer) }

// Meters returns v meters.
func Meters(v float64) Distance { return NewDistance(v, Meter) }

// Yards returns v yards.
func Yards(v float64) Distance { return NewDistance(v, Yard) }

// Feet returns v feet.
func Feet(v float64) Distance { return NewDistance(v, Foot) }

// Inches returns v inches.
func Inches(v float64) Distance { return NewDistance(v, Inch) }

// Centimeters returns v centimeters.
func Centimeters(v float64) Distance { return NewDistance(v, Centimeter) }

// Millimeters returns v millimeters.
func Millimeters(v float64) Distance { return NewDistance(v, Millimeter) }

func (d Distance) Kind() Kind         { return KindDistance }
func (d Distance) Value() float64     { return d.value }
func (d Distance) Unit() DistanceUnit { return d.unit }

// InMeters returns the length in meters.
func (d Distance) InMeters() float64 {
	return d.unit.Convert(Meter, d.value)
}

// ToUnit expresses d in unit.
func (d Distance) ToUnit(unit DistanceUnit) Distance {
	return Distance{value: d.unit.Convert(unit, d.value), unit: unit}
}

// Add returns d + other in d's unit.
func (d Distance) Add(other Distance) Distance {
	return Distance{value: d.value + other.ToUnit(d.unit).value, unit: d.unit}
}

// Sub returns d - other in d's unit.
func (d Distance) Sub(other Distance) Distance {
	return Distance{value: d.value - other.ToUnit(d.unit).value, unit: d.unit}
}

// Ratio returns the dimensionless quotient d / other.
func (d Distance) Ratio(other Distance) float64 {
	return d.value / other.ToUnit(d.unit).value
}

// Mul scales d, keeping its unit.
func (d Distance) Mul(scalar float64) Distance {
	return Distance{value: d.value * scalar, unit: d.unit}
}

// Div divides d by a plain number, keeping its unit.
func (d Distance) Div(denominator float64) Distance {
	return Distance{value: d.value / denominator, unit: d.unit}
}

// TimeToReach returns how long it takes to cover d at velocity v, in seconds.
func (d Distance) TimeToReach(v Velocity) Time {
	return Seconds(d.InMeters() / v.InMetersPerSecond())
}

// DivVelocity is TimeToReach written as a quotient.
func (d Distance) DivVelocity(v Velocity) Time {
	return d.TimeToReach(v)
}

// Equal reports whether d and other have the same value and the same unit.
// Meters(1) and Centimeters(100) are not Equal.
func (d Distance) Equal(other Distance) bool { return d == other }

func (d Distance) AddQuantity(other Quantity) (Quantity, error) {
	o, ok := other.(Distance)
	if !ok {
		return nil, mismatch("add", KindDistance, kindOf(other))
	}
	return d.Add(o), nil
}

func (d Distance) SubQuantity(other Quantity) (Quantity, error) {
	o, ok := other.(Distance)
	if !ok {
		return nil, mismatch("subtract", KindDistance, kindOf(other))
	}
	return d.Sub(o), nil
}

func (d Distance) String() string { return format(d.value, d.unit) }

func (Distance) quantity() {}
