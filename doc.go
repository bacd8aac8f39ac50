// Package units provides immutable physical-quantity values that carry the
// unit they were measured in: Distance, Time, Angle, Velocity, Acceleration
// and Jerk, plus the Position snapshot built from them.
//
// Every binary operation converts its right-hand operand into the left-hand
// operand's unit before combining, so
//
//	units.Meters(100).Add(units.Centimeters(50)) // 100.5 [METERS]
//
// Conversion is table driven: each DistanceUnit and TimeUnit stores its size in
// the base unit (meters, seconds), and converting is a single multiply and
// divide. Compound units convert the distance slot and each time slot on its
// own, so a velocity in miles per hour and one in meters per second combine
// without loss beyond floating-point rounding.
//
// Operations across kinds go through the base-unit accessors (InMeters,
// InSeconds, InMetersPerSecond, ...) and return the result in base units:
//
//	units.MetersPerSecond(10).DivAcceleration(units.MetersPerSecondSquared(2)) // 5.0000 [SECONDS]
//
// Multiplying a rate by a Time moves one step up the ladder
// velocity → acceleration → jerk (see Velocity.MulTime). This is the
// package's own algebra, not a kinematic product.
//
// Values are compared structurally: Meters(1) and Centimeters(100) describe
// the same length but are not equal until one is converted with ToUnit.
//
// Values are meant to be finite. Constructors do not check this: NaN and ±Inf
// pass through arithmetic and conversion unchanged in kind, format as "NaN",
// "Infinity" and "-Infinity", and a NaN value is never Equal to anything.
//
// Code that handles quantities of unknown kind can use the Quantity interface;
// its AddQuantity and SubQuantity return ErrUnitMismatch when kinds differ.
// All values are safe for concurrent use.
package units
