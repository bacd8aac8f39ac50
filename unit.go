package units

import (
	"fmt"
	"math"
)

// DistanceUnit is a unit of length. The zero value is Meter.
type DistanceUnit uint8

const (
	Meter DistanceUnit = iota
	Mile
	Kilometer
	Yard
	Foot
	Inch
	Centimeter
	Millimeter
)

type unitDef struct {
	name   string
	factor float64 // one unit expressed in the base unit
}

var distanceUnits = [...]unitDef{
	Meter:      {"METERS", 1},
	Mile:       {"MILES", 1609.344},
	Kilometer:  {"KILOMETERS", 1000},
	Yard:       {"YARDS", 0.9144},
	Foot:       {"FEET", 0.3048},
	Inch:       {"INCHES", 0.0254},
	Centimeter: {"CENTIMETERS", 0.01},
	Millimeter: {"MILLIMETERS", 0.001},
}

// DistanceUnits returns every defined distance unit, largest first.
func DistanceUnits() []DistanceUnit {
	return []DistanceUnit{Mile, Kilometer, Meter, Yard, Foot, Inch, Centimeter, Millimeter}
}

// Valid reports whether u is one of the defined distance units.
func (u DistanceUnit) Valid() bool { return int(u) < len(distanceUnits) }

// Factor returns the length of one u in meters, or NaN for an undefined unit.
func (u DistanceUnit) Factor() float64 {
	if !u.Valid() {
		return math.NaN()
	}
	return distanceUnits[u].factor
}

// Convert expresses v, measured in u, in the unit to.
func (u DistanceUnit) Convert(to DistanceUnit, v float64) float64 {
	if u == to {
		return v
	}
	return v * u.Factor() / to.Factor()
}

func (u DistanceUnit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("DistanceUnit(%d)", uint8(u))
	}
	return distanceUnits[u].name
}

// TimeUnit is a unit of duration. The zero value is Second.
type TimeUnit uint8

const (
	Second TimeUnit = iota
	Millisecond
	Minute
	Hour
	Day
)

var timeUnits = [...]unitDef{
	Second:      {"SECONDS", 1},
	Millisecond: {"MILLISECONDS", 0.001},
	Minute:      {"MINUTES", 60},
	Hour:        {"HOURS", 3600},
	Day:         {"DAYS", 86400},
}

// TimeUnits returns every defined time unit, largest first.
func TimeUnits() []TimeUnit {
	return []TimeUnit{Day, Hour, Minute, Second, Millisecond}
}

// Valid reports whether u is one of the defined time units.
func (u TimeUnit) Valid() bool { return int(u) < len(timeUnits) }

// Factor returns the length of one u in seconds, or NaN for an undefined unit.
func (u TimeUnit) Factor() float64 {
	if !u.Valid() {
		return math.NaN()
	}
	return timeUnits[u].factor
}

// Convert expresses the duration v, measured in u, in the unit to.
func (u TimeUnit) Convert(to TimeUnit, v float64) float64 {
	if u == to {
		return v
	}
	return v * u.Factor() / to.Factor()
}

// convertPer converts a rate "per u" into a rate "per to". Time slots of a
// compound unit sit in the denominator, so the factors swap relative to Convert.
func (u TimeUnit) convertPer(to TimeUnit, v float64) float64 {
	if u == to {
		return v
	}
	return v * to.Factor() / u.Factor()
}

func (u TimeUnit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("TimeUnit(%d)", uint8(u))
	}
	return timeUnits[u].name
}

// convertRate converts value, measured in from/fromTime[0]/fromTime[1]/..., into
// to/toTime[0]/toTime[1]/... One distance slot, then every time slot on its own.
func convertRate(value float64, from, to DistanceUnit, fromTime, toTime []TimeUnit) float64 {
	v := from.Convert(to, value)
	for i := range fromTime {
		v = fromTime[i].convertPer(toTime[i], v)
	}
	return v
}
