package kinematics

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/cxd309/units"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ConstantModelName is the JSON discriminator string for the Constant model.
const ConstantModelName = "constant"

// ConstantAcceleration implements MotionModel using fixed acceleration and deceleration rates.
// This is the default and simplest kinematics model.
//
// JSON discriminator: "model": "constant". In JSON the rates are plain numbers in
// SI units: a_acc and a_dcc in m/s², v_max in m/s.
type ConstantAcceleration struct {
	Acc      units.Acceleration // traction acceleration
	Dcc      units.Acceleration // service braking deceleration (positive)
	MaxSpeed units.Velocity
}

type constantJSON struct {
	AAcc float64 `json:"a_acc" validate:"gte=0"`
	ADcc float64 `json:"a_dcc" validate:"gt=0"`
	VMax float64 `json:"v_max" validate:"gt=0"`
}

// UnmarshalJSON implements json.Unmarshaler for ConstantAcceleration.
func (c *ConstantAcceleration) UnmarshalJSON(data []byte) error {
	var aux constantJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if err := validate.Struct(aux); err != nil {
		return fmt.Errorf("constant kinematics: %w", err)
	}
	c.Acc = units.MetersPerSecondSquared(aux.AAcc)
	c.Dcc = units.MetersPerSecondSquared(aux.ADcc)
	c.MaxSpeed = units.MetersPerSecond(aux.VMax)
	return nil
}

// MarshalJSON implements json.Marshaler for ConstantAcceleration.
func (c ConstantAcceleration) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Model string `json:"model"`
		constantJSON
	}{
		Model: ConstantModelName,
		constantJSON: constantJSON{
			AAcc: c.Acc.InMetersPerSecondSquared(),
			ADcc: c.Dcc.InMetersPerSecondSquared(),
			VMax: c.MaxSpeed.InMetersPerSecond(),
		},
	})
}

func (c ConstantAcceleration) VMax() units.Velocity { return c.MaxSpeed }

func (c ConstantAcceleration) acc() float64 { return c.Acc.InMetersPerSecondSquared() }
func (c ConstantAcceleration) dcc() float64 { return c.Dcc.InMetersPerSecondSquared() }

// TimeToStop returns how long full service braking takes to stop from v.
func (c ConstantAcceleration) TimeToStop(v units.Velocity) units.Time {
	if c.dcc() <= 0 {
		return units.Seconds(math.Inf(1))
	}
	return v.DivAcceleration(c.Dcc)
}

func (c ConstantAcceleration) BrakingDistance(v units.Velocity) units.Distance {
	if c.dcc() <= 0 {
		return units.Meters(math.Inf(1))
	}
	// Average speed v/2 held for the stopping time.
	return units.Meters(v.InMetersPerSecond() * c.TimeToStop(v).InSeconds() / 2)
}

func (c ConstantAcceleration) BrakingDistanceTo(v, targetV units.Velocity) units.Distance {
	if c.dcc() <= 0 {
		return units.Meters(math.Inf(1))
	}
	vs, ts := v.InMetersPerSecond(), targetV.InMetersPerSecond()
	if vs <= ts {
		return units.Meters(0)
	}
	return units.Meters((vs*vs - ts*ts) / (2 * c.dcc()))
}

func (c ConstantAcceleration) VelocityAfterBraking(v0 units.Velocity, dist units.Distance) units.Velocity {
	if c.dcc() <= 0 {
		return v0
	}
	vs := v0.InMetersPerSecond()
	newV := math.Sqrt(math.Max(0, vs*vs-2*c.dcc()*dist.InMeters()))
	return units.MetersPerSecond(newV).ToUnitOf(v0)
}

func (c ConstantAcceleration) AccelerateStep(v, targetV units.Velocity, dt units.Time) (units.Distance, units.Velocity) {
	vs, ts, t := v.InMetersPerSecond(), targetV.InMetersPerSecond(), dt.InSeconds()
	a := c.acc()
	if a <= 0 || vs >= ts {
		return units.Meters(ts * t), targetV.ToUnitOf(v)
	}
	tToTarget := (ts - vs) / a
	if tToTarget <= t {
		// Reaches targetV mid-step: accelerate, then cruise for the remainder.
		s1 := vs*tToTarget + 0.5*a*tToTarget*tToTarget
		s2 := ts * (t - tToTarget)
		return units.Meters(s1 + s2), targetV.ToUnitOf(v)
	}
	newV := units.MetersPerSecond(vs + a*t).ToUnitOf(v)
	return units.Meters(vs*t + 0.5*a*t*t), newV
}

func (c ConstantAcceleration) DecelerateStep(v, targetV units.Velocity, dt units.Time) (units.Distance, units.Velocity) {
	vs, ts, t := v.InMetersPerSecond(), targetV.InMetersPerSecond(), dt.InSeconds()
	d := c.dcc()
	if d <= 0 || vs <= ts {
		return units.Meters(ts * t), targetV.ToUnitOf(v)
	}
	tToTarget := (vs - ts) / d
	if tToTarget <= t {
		// Reaches targetV mid-step: brake, then cruise for the remainder.
		s1 := vs*tToTarget - 0.5*d*tToTarget*tToTarget
		s2 := ts * (t - tToTarget)
		return units.Meters(math.Max(0, s1) + s2), targetV.ToUnitOf(v)
	}
	newV := units.MetersPerSecond(vs - d*t).ToUnitOf(v)
	return units.Meters(math.Max(0, vs*t-0.5*d*t*t)), newV
}
