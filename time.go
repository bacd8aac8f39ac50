package units

import "time"

// Time is a duration or timestamp tagged with the unit it was measured in.
type Time struct {
	value float64
	unit  TimeUnit
}

// NewTime returns value measured in unit.
func NewTime(value float64, unit TimeUnit) Time {
	return Time{value: value, unit: unit}
}

// Milliseconds returns v milliseconds.
func Milliseconds(v float64) Time { return NewTime(v, Millisecond) }

// Seconds returns v seconds.
func Seconds(v float64) Time { return NewTime(v, Second) }

// Minutes returns v minutes.
func Minutes(v float64) Time { return NewTime(v, Minute) }

// Hours returns v hours.
func Hours(v float64) Time { return NewTime(v, Hour) }

// Days returns v days.
func Days(v float64) Time { return NewTime(v, Day) }

// FromDuration converts a time.Duration into seconds.
func FromDuration(d time.Duration) Time {
	return Seconds(d.Seconds())
}

func (t Time) Kind() Kind     { return KindTime }
func (t Time) Value() float64 { return t.value }
func (t Time) Unit() TimeUnit { return t.unit }

// InSeconds returns t in seconds.
func (t Time) InSeconds() float64 {
	return t.unit.Convert(Second, t.value)
}

// Duration converts t into a time.Duration, truncating below one nanosecond.
func (t Time) Duration() time.Duration {
	return time.Duration(t.InSeconds() * float64(time.Second))
}

// ToUnit expresses t in unit.
func (t Time) ToUnit(unit TimeUnit) Time {
	return Time{value: t.unit.Convert(unit, t.value), unit: unit}
}

// Add returns t + other in t's unit.
func (t Time) Add(other Time) Time {
	return Time{value: t.value + other.ToUnit(t.unit).value, unit: t.unit}
}

// Sub returns t - other in t's unit.
func (t Time) Sub(other Time) Time {
	return Time{value: t.value - other.ToUnit(t.unit).value, unit: t.unit}
}

// Ratio returns the dimensionless quotient t / other.
func (t Time) Ratio(other Time) float64 {
	return t.value / other.ToUnit(t.unit).value
}

// Mul scales t, keeping its unit.
func (t Time) Mul(scalar float64) Time {
	return Time{value: t.value * scalar, unit: t.unit}
}

// Div divides t by a plain number, keeping its unit.
func (t Time) Div(denominator float64) Time {
	return Time{value: t.value / denominator, unit: t.unit}
}

// Equal reports whether t and other have the same value and the same unit.
func (t Time) Equal(other Time) bool { return t == other }

func (t Time) AddQuantity(other Quantity) (Quantity, error) {
	o, ok := other.(Time)
	if !ok {
		return nil, mismatch("add", KindTime, kindOf(other))
	}
	return t.Add(o), nil
}

func (t Time) SubQuantity(other Quantity) (Quantity, error) {
	o, ok := other.(Time)
	if !ok {
		return nil, mismatch("subtract", KindTime, kindOf(other))
	}
	return t.Sub(o), nil
}

func (t Time) String() string { return format(t.value, t.unit) }

func (Time) quantity() {}
