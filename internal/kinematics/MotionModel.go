// Package kinematics defines the MotionModel interface for vehicle traction and braking
// physics, along with built-in implementations.
//
// Every method takes and returns typed quantities from the units package, so a model
// configured in km/h and m/s² can be stepped with a timestep in milliseconds without
// any caller-side conversion.
package kinematics

import "github.com/cxd309/units"

// MotionModel is the physics contract every kinematics implementation must satisfy.
type MotionModel interface {
	// VMax returns the vehicle's maximum permissible speed.
	VMax() units.Velocity

	// BrakingDistance returns the minimum distance needed to stop from velocity v.
	BrakingDistance(v units.Velocity) units.Distance

	// BrakingDistanceTo returns the distance needed to decelerate from v to targetV.
	// Returns zero if v ≤ targetV.
	BrakingDistanceTo(v, targetV units.Velocity) units.Distance

	// VelocityAfterBraking returns the velocity reached after braking from v0 over dist.
	VelocityAfterBraking(v0 units.Velocity, dist units.Distance) units.Velocity

	// AccelerateStep advances the vehicle toward targetV over dt.
	// If targetV is reached before dt expires, the vehicle cruises at targetV for
	// the remainder of the timestep.
	// Returns (distance travelled, new velocity).
	AccelerateStep(v, targetV units.Velocity, dt units.Time) (dist units.Distance, newV units.Velocity)

	// DecelerateStep brakes the vehicle toward targetV (≥ 0) over dt.
	// If targetV is reached before dt expires, the vehicle cruises at targetV for
	// the remainder.
	// Returns (distance travelled, new velocity).
	DecelerateStep(v, targetV units.Velocity, dt units.Time) (dist units.Distance, newV units.Velocity)
}
