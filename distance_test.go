package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceFactories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		got    Distance
		unit   DistanceUnit
		meters float64
	}{
		{"miles", Miles(2), Mile, 3218.688},
		{"kilometers", Kilometers(1.5), Kilometer, 1500},
		{"meters", Meters(7), Meter, 7},
		{"yards", Yards(10), Yard, 9.144},
		{"feet", Feet(3), Foot, 0.9144},
		{"inches", Inches(12), Inch, 0.3048},
		{"centimeters", Centimeters(250), Centimeter, 2.5},
		{"millimeters", Millimeters(5), Millimeter, 0.005},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.unit, tt.got.Unit())
			assert.Equal(t, KindDistance, tt.got.Kind())
			assert.InDelta(t, tt.meters, tt.got.InMeters(), 1e-9)
		})
	}
}

func TestDistanceAddKeepsReceiverUnit(t *testing.T) {
	t.Parallel()

	sum := Meters(100).Add(Centimeters(50))
	assert.Equal(t, Meter, sum.Unit())
	assert.InDelta(t, 100.5, sum.Value(), 1e-12)

	sum = Centimeters(50).Add(Meters(1))
	assert.Equal(t, Centimeter, sum.Unit())
	assert.InDelta(t, 150, sum.Value(), 1e-12)
}

func TestDistanceAdditiveIdentity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Meters(100), Meters(100).Add(Centimeters(0)))
	assert.Equal(t, Feet(3), Feet(3).Sub(Miles(0)))
}

func TestDistanceSub(t *testing.T) {
	t.Parallel()

	diff := Kilometers(1).Sub(Meters(250))
	assert.Equal(t, Kilometer, diff.Unit())
	assert.InDelta(t, 0.75, diff.Value(), 1e-12)
}

func TestDistanceRatio(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 2.0, Meters(2).Ratio(Centimeters(100)), 1e-12)
	assert.InDelta(t, 1760.0, Miles(1).Ratio(Yards(1)), 1e-9)
}

func TestDistanceScaling(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Feet(10), Feet(5).Mul(2))
	assert.Equal(t, Feet(5), Feet(10).Div(2))
	assert.Equal(t, Feet(5), Feet(5).Mul(2).Div(2))
}

func TestDistanceToUnit(t *testing.T) {
	t.Parallel()

	d := Miles(1).ToUnit(Kilometer)
	assert.Equal(t, Kilometer, d.Unit())
	assert.InDelta(t, 1.609344, d.Value(), 1e-12)
	assert.Equal(t, Meters(3), Meters(3).ToUnit(Meter))
}

// Equality compares raw (value, unit) pairs. Two distances describing the same
// length in different units are different values.
func TestDistanceEqualityIsStructural(t *testing.T) {
	t.Parallel()

	assert.False(t, Meters(1).Equal(Centimeters(100)))
	assert.NotEqual(t, Meters(1), Centimeters(100))

	converted := Centimeters(100).ToUnit(Meter)
	assert.True(t, Meters(1).Equal(converted))
	assert.True(t, Meters(1) == converted)
}

func TestDistanceTimeToReach(t *testing.T) {
	t.Parallel()

	got := Meters(100).TimeToReach(MetersPerSecond(4))
	assert.Equal(t, Seconds(25), got)

	got = Kilometers(90).DivVelocity(KilometersPerHour(60))
	assert.Equal(t, Second, got.Unit())
	assert.InDelta(t, 5400, got.Value(), 1e-9)
}

func TestDistanceString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "12.3400 [METERS]", Meters(12.34).String())
	assert.Equal(t, "-0.5000 [MILES]", Miles(-0.5).String())
	assert.Equal(t, "3.0000 [FEET]", Feet(3).String())
}
