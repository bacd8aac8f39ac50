package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJerkFactories(t *testing.T) {
	t.Parallel()

	hour := [3]TimeUnit{Hour, Hour, Hour}
	sec := [3]TimeUnit{Second, Second, Second}

	assert.Equal(t, hour, MilesPerHourCubed(1).TimeUnits())
	assert.Equal(t, Mile, MilesPerHourCubed(1).DistanceUnit())
	assert.Equal(t, hour, KilometersPerHourCubed(1).TimeUnits())
	assert.Equal(t, sec, MetersPerSecondCubed(1).TimeUnits())
	assert.Equal(t, Foot, FeetPerSecondCubed(1).DistanceUnit())
	assert.Equal(t, Inch, InchesPerSecondCubed(1).DistanceUnit())
	assert.Equal(t, Centimeter, CentimetersPerSecondCubed(1).DistanceUnit())

	assert.InDelta(t, 1, KilometersPerHourCubed(3600*3600*3.6).InMetersPerSecondCubed(), 1e-9)
	assert.InDelta(t, 0.3048, FeetPerSecondCubed(1).InMetersPerSecondCubed(), 1e-12)
}

func TestJerkToUnitPerSlot(t *testing.T) {
	t.Parallel()

	j := MetersPerSecondCubed(1)
	assert.InDelta(t, 60, j.ToUnit(Meter, Second, Second, Minute).Value(), 1e-12)
	assert.InDelta(t, 3600, j.ToUnit(Meter, Minute, Second, Minute).Value(), 1e-9)
	assert.InDelta(t, 216000, j.ToUnit(Meter, Minute, Minute, Minute).Value(), 1e-6)

	back := j.ToUnit(Kilometer, Hour, Minute, Second).ToUnitOf(j)
	assert.InDelta(t, 1, back.Value(), 1e-9)
	assert.Equal(t, j.TimeUnits(), back.TimeUnits())
}

func TestJerkArithmetic(t *testing.T) {
	t.Parallel()

	sum := MetersPerSecondCubed(1).Add(CentimetersPerSecondCubed(25))
	assert.InDelta(t, 1.25, sum.Value(), 1e-12)
	assert.Equal(t, Meter, sum.DistanceUnit())

	diff := MetersPerSecondCubed(1).Sub(CentimetersPerSecondCubed(25))
	assert.InDelta(t, 0.75, diff.Value(), 1e-12)

	assert.InDelta(t, 4, MetersPerSecondCubed(1).Ratio(CentimetersPerSecondCubed(25)), 1e-12)
	assert.Equal(t, MetersPerSecondCubed(3), MetersPerSecondCubed(1.5).Mul(2))
	assert.Equal(t, MetersPerSecondCubed(0.75), MetersPerSecondCubed(1.5).Div(2))
}

func TestJerkString(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"2.5000 [FEET] per [SECONDS] per [SECONDS] per [SECONDS]",
		FeetPerSecondCubed(2.5).String())
}
