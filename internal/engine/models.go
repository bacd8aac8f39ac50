package engine

import (
	"encoding/json"
	"fmt"

	"github.com/cxd309/units"
	"github.com/cxd309/units/internal/graph"
	"github.com/cxd309/units/internal/kinematics"
)

// SimulationMeta holds the identity and timing parameters for a simulation run.
type SimulationMeta struct {
	SimulationID string  `json:"simulation_id"`
	RunTime      float64 `json:"run_time" validate:"gt=0"`  // seconds
	TimeStep     float64 `json:"time_step" validate:"gt=0"` // seconds
}

// Move is the straight-line journey to simulate: from rest, over Distance, along Heading.
// When the input carries a Track, From and To name its nodes and Distance and
// Heading are derived from the shortest route between them.
type Move struct {
	Distance float64 `json:"distance" validate:"gt=0"` // metres
	Heading  float64 `json:"heading"`                  // degrees
	From     string  `json:"from,omitempty"`
	To       string  `json:"to,omitempty"`
}

// Vehicle holds the static parameters of a vehicle type.
// The physics of acceleration and braking are encapsulated by the Kinem field;
// adding a new model only requires implementing kinematics.MotionModel and
// registering it in UnmarshalJSON below.
type Vehicle struct {
	Name  string                 `json:"name"`
	Kinem kinematics.MotionModel `json:"-"` // set by UnmarshalJSON
}

// kinematicsDisc is the minimum JSON structure needed to read the model discriminator.
type kinematicsDisc struct {
	Model string `json:"model"`
}

// vehicleJSON is the raw JSON shape of a Vehicle, before the kinematics model is resolved.
type vehicleJSON struct {
	Name  string          `json:"name"`
	Kinem json.RawMessage `json:"kinematics"`
}

// UnmarshalJSON implements json.Unmarshaler for Vehicle.
// The "kinematics" field must contain a "model" discriminator key that selects
// the concrete implementation; the rest of the kinematics object is forwarded to
// that implementation's own unmarshaler.
//
// Supported models:
//   - "constant": fixed a_acc / a_dcc rates.
func (v *Vehicle) UnmarshalJSON(data []byte) error {
	var aux vehicleJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	v.Name = aux.Name

	if len(aux.Kinem) == 0 {
		return fmt.Errorf("vehicle %q: missing \"kinematics\" field", v.Name)
	}

	var disc kinematicsDisc
	if err := json.Unmarshal(aux.Kinem, &disc); err != nil {
		return fmt.Errorf("vehicle %q: reading kinematics model discriminator: %w", v.Name, err)
	}

	switch disc.Model {
	case kinematics.ConstantModelName:
		var k kinematics.ConstantAcceleration
		if err := json.Unmarshal(aux.Kinem, &k); err != nil {
			return fmt.Errorf("vehicle %q: parsing constant kinematics: %w", v.Name, err)
		}
		v.Kinem = k
	default:
		return fmt.Errorf("vehicle %q: unknown kinematics model %q", v.Name, disc.Model)
	}
	return nil
}

// SimulationInput is the JSON-serialisable input to the engine.
type SimulationInput struct {
	Meta    SimulationMeta   `json:"simulation_meta"`
	Move    Move             `json:"move"`
	Vehicle Vehicle          `json:"vehicle"`
	Track   *graph.GraphData `json:"track,omitempty" validate:"-"`
}

// MotionState describes the current motion state of the vehicle.
type MotionState string

const (
	StateStationary   MotionState = "stationary"
	StateAccelerating MotionState = "accelerating"
	StateCruising     MotionState = "cruising"
	StateDecelerating MotionState = "decelerating"
	StateArrived      MotionState = "arrived"
)

// Options selects the units the log is written in.
type Options struct {
	DistanceUnit units.DistanceUnit
	TimeUnit     units.TimeUnit
}

// DefaultOptions writes the log in metres and seconds.
func DefaultOptions() Options {
	return Options{DistanceUnit: units.Meter, TimeUnit: units.Second}
}

// SimulationLogRow is the vehicle state at a single simulation timestep, in the
// units named by the log's OutputUnits.
type SimulationLogRow struct {
	Timestamp float64     `json:"timestamp"`
	Distance  float64     `json:"distance"`
	Heading   float64     `json:"heading"` // degrees
	Velocity  float64     `json:"velocity"`
	State     MotionState `json:"state"`
}

// OutputUnits names the units used by every row of a SimulationLog.
type OutputUnits struct {
	Time     string `json:"time"`
	Distance string `json:"distance"`
	Velocity string `json:"velocity"`
}

// SimulationLog is the complete output of a simulation run.
type SimulationLog struct {
	Meta    SimulationMeta     `json:"simulation_meta"`
	Units   OutputUnits        `json:"units"`
	Summary string             `json:"summary"`
	Route   []graph.NodeID     `json:"route,omitempty"`
	Output  []SimulationLogRow `json:"output"`
	// ArrivalSpeed is the speed the vehicle would still carry at the end of the
	// move had it braked over the final step, in output units. Zero for a
	// clean stop; only set once the vehicle has arrived.
	ArrivalSpeed float64 `json:"arrival_speed"`
}

// speedZone is a stretch of the move, measured from its start, with a lower
// speed limit than the open track.
type speedZone struct {
	start units.Distance
	end   units.Distance
	limit units.Velocity
}

// Profile is the motion engine state for one vehicle.
type Profile struct {
	meta    SimulationMeta
	opts    Options
	model   kinematics.MotionModel
	target  units.Distance
	heading units.Angle
	route   []graph.NodeID
	zones   []speedZone

	curTime   units.Time
	travelled units.Distance
	velocity  units.Velocity
	state     MotionState

	arrivalSpeed units.Velocity
}
