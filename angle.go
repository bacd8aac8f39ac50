package units

// Angle is a plane angle in degrees.
type Angle struct {
	value float64
}

type angleUnit struct{}

func (angleUnit) String() string { return "DEGREES" }

// Degrees returns an Angle of v degrees.
func Degrees(v float64) Angle { return Angle{value: v} }

func (a Angle) Kind() Kind     { return KindAngle }
func (a Angle) Value() float64 { return a.value }

// Add returns a + other.
func (a Angle) Add(other Angle) Angle { return Angle{value: a.value + other.value} }

// Sub returns a - other.
func (a Angle) Sub(other Angle) Angle { return Angle{value: a.value - other.value} }

// Mul scales a.
func (a Angle) Mul(scalar float64) Angle { return Angle{value: a.value * scalar} }

// Div divides a by a plain number.
func (a Angle) Div(d float64) Angle { return Angle{value: a.value / d} }

// Equal reports whether a and other have the same value.
func (a Angle) Equal(other Angle) bool { return a == other }

func (a Angle) AddQuantity(other Quantity) (Quantity, error) {
	o, ok := other.(Angle)
	if !ok {
		return nil, mismatch("add", KindAngle, kindOf(other))
	}
	return a.Add(o), nil
}

func (a Angle) SubQuantity(other Quantity) (Quantity, error) {
	o, ok := other.(Angle)
	if !ok {
		return nil, mismatch("subtract", KindAngle, kindOf(other))
	}
	return a.Sub(o), nil
}

func (a Angle) String() string { return format(a.value, angleUnit{}) }

func (Angle) quantity() {}
