// Package engine implements a fixed-timestep motion profile for a single vehicle.
//
// The vehicle starts at rest and travels a straight track of known length. Each
// step it either
//
//  1. brakes, when the distance left is within its braking distance,
//  2. accelerates toward its maximum speed, or
//  3. cruises at that speed,
//
// and the step is clamped so the vehicle never passes the end of the track.
// Every step is recorded as a units.Position snapshot and written to the log
// in the caller's chosen output units.
package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/cxd309/units"
	"github.com/cxd309/units/internal/graph"
)

var validate = validator.New()

// MaxSteps bounds the number of timesteps, and so log rows, a single run may take.
const MaxSteps = 1_000_000

var (
	// ErrNoKinematics is returned when the input vehicle has no motion model.
	ErrNoKinematics = errors.New("vehicle has no kinematics model")
	// ErrNoRoute is returned when a track is given without both move endpoints.
	ErrNoRoute = errors.New("move on a track needs both \"from\" and \"to\"")
	// ErrTooManySteps is returned when run_time / time_step exceeds MaxSteps.
	ErrTooManySteps = errors.New("run time covers too many time steps")
)

// NewProfile validates input and places the vehicle at rest at the start of the move.
// A missing simulation ID is replaced with a random UUID.
func NewProfile(input SimulationInput, opts Options) (*Profile, error) {
	var (
		route []graph.NodeID
		zones []speedZone
	)
	if input.Track != nil {
		move, path, limits, err := resolveMove(*input.Track, input.Move.From, input.Move.To)
		if err != nil {
			return nil, fmt.Errorf("resolving route: %w", err)
		}
		input.Move = move
		route, zones = path, limits
	}
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validating input: %w", err)
	}
	if input.Vehicle.Kinem == nil {
		return nil, fmt.Errorf("vehicle %q: %w", input.Vehicle.Name, ErrNoKinematics)
	}
	if !opts.DistanceUnit.Valid() || !opts.TimeUnit.Valid() {
		return nil, fmt.Errorf("invalid output units %s/%s", opts.DistanceUnit, opts.TimeUnit)
	}
	if _, err := stepCount(input.Meta); err != nil {
		return nil, err
	}

	meta := input.Meta
	if meta.SimulationID == "" {
		meta.SimulationID = uuid.NewString()
	}

	return &Profile{
		meta:      meta,
		opts:      opts,
		model:     input.Vehicle.Kinem,
		target:    units.Meters(input.Move.Distance),
		heading:   units.Degrees(input.Move.Heading),
		route:     route,
		zones:     zones,
		curTime:   units.Seconds(0),
		travelled: units.Meters(0),
		velocity:  units.MetersPerSecond(0),
		state:     StateStationary,
	}, nil
}

// stepCount returns how many whole time steps fit in the run time.
func stepCount(meta SimulationMeta) (int, error) {
	ratio := units.Seconds(meta.RunTime).Ratio(units.Seconds(meta.TimeStep))
	if !(ratio <= MaxSteps) {
		return 0, fmt.Errorf("%w: %g steps, limit %d", ErrTooManySteps, ratio, MaxSteps)
	}
	return int(math.Floor(ratio + 1e-9)), nil
}

// resolveMove finds the shortest route from one track node to another. The move
// covers the route's length and heads along the straight line between its ends;
// every speed-limited edge on the route becomes a zone of the move.
func resolveMove(track graph.GraphData, from, to graph.NodeID) (Move, []graph.NodeID, []speedZone, error) {
	if from == "" || to == "" {
		return Move{}, nil, nil, ErrNoRoute
	}
	g, err := graph.NewGraph(track)
	if err != nil {
		return Move{}, nil, nil, err
	}
	path, err := g.GetShortestPath(from, to)
	if err != nil {
		return Move{}, nil, nil, err
	}
	edges, err := g.RouteEdges(path.Route)
	if err != nil {
		return Move{}, nil, nil, err
	}
	start, err := g.GetNode(from)
	if err != nil {
		return Move{}, nil, nil, err
	}
	end, err := g.GetNode(to)
	if err != nil {
		return Move{}, nil, nil, err
	}

	var zones []speedZone
	offset := units.Meters(0)
	for _, e := range edges {
		next := offset.Add(e.Length)
		if e.SpeedLimit != nil {
			zones = append(zones, speedZone{start: offset, end: next, limit: *e.SpeedLimit})
		}
		offset = next
	}

	return Move{
		Distance: path.Length.InMeters(),
		Heading:  start.Loc.Bearing(end.Loc).Value(),
		From:     from,
		To:       to,
	}, path.Route, zones, nil
}

// speedLimit returns the highest speed allowed at the vehicle's current position.
func (p *Profile) speedLimit() units.Velocity {
	vMax := p.model.VMax()
	at := p.travelled.InMeters()
	for _, z := range p.zones {
		if at >= z.start.InMeters() && at < z.end.InMeters() &&
			z.limit.InMetersPerSecond() < vMax.InMetersPerSecond() {
			vMax = z.limit
		}
	}
	return vMax
}

// upcomingLimit returns the limit of the first zone ahead that the vehicle must
// start braking for now to enter at or below its limit.
func (p *Profile) upcomingLimit() (units.Velocity, bool) {
	v := p.velocity
	for _, z := range p.zones {
		ahead := z.start.Sub(p.travelled)
		if ahead.InMeters() <= 0 || z.limit.InMetersPerSecond() >= v.InMetersPerSecond() {
			continue
		}
		if ahead.InMeters() <= p.model.BrakingDistanceTo(v, z.limit).InMeters() {
			return z.limit, true
		}
	}
	return units.Velocity{}, false
}

// Route returns the track nodes the move passes through, or nil for a plain move.
func (p *Profile) Route() []graph.NodeID { return p.route }

// Position returns the current snapshot of the vehicle.
func (p *Profile) Position() units.Position {
	return units.NewPosition(p.curTime, p.travelled, p.heading)
}

// ArrivalSpeed returns the speed the vehicle still carried when it reached the
// end of the move, measured against braking over the final step.
func (p *Profile) ArrivalSpeed() units.Velocity { return p.arrivalSpeed }

// Velocity returns the current speed of the vehicle.
func (p *Profile) Velocity() units.Velocity { return p.velocity }

// State returns the current motion state.
func (p *Profile) State() MotionState { return p.state }

// Run steps the profile until the vehicle arrives or the run time is used up,
// and returns the log. The first row is the starting position.
func (p *Profile) Run() (SimulationLog, error) {
	dt := units.Seconds(p.meta.TimeStep)
	steps, err := stepCount(p.meta)
	if err != nil {
		return SimulationLog{}, err
	}

	slog.Debug("starting motion profile",
		"simulation_id", p.meta.SimulationID,
		"target", p.target.String(),
		"time_step", dt.String(),
		"steps", steps)

	log := SimulationLog{Meta: p.meta, Units: p.outputUnits(), Route: p.route}
	log.Output = append(log.Output, p.row())

	for i := 1; i <= steps && p.state != StateArrived; i++ {
		if err := p.step(dt); err != nil {
			return SimulationLog{}, fmt.Errorf("at t=%s: %w", p.curTime, err)
		}
		p.curTime = dt.Mul(float64(i))
		log.Output = append(log.Output, p.row())
	}

	log.Summary = p.summary()
	log.ArrivalSpeed = p.arrivalSpeed.ToUnit(p.opts.DistanceUnit, p.opts.TimeUnit).Value()
	slog.Info("motion profile complete",
		"simulation_id", p.meta.SimulationID,
		"state", p.state,
		"elapsed", p.curTime.String(),
		"travelled", p.travelled.String(),
		"rows", len(log.Output))
	return log, nil
}

// step advances the profile by dt.
func (p *Profile) step(dt units.Time) error {
	remaining := p.target.Sub(p.travelled)
	if remaining.InMeters() <= 0 {
		p.arrive()
		return nil
	}

	dist, newV, newState := p.proposeMovement(dt, remaining)
	if math.IsNaN(dist.InMeters()) || math.IsNaN(newV.InMetersPerSecond()) {
		return fmt.Errorf("motion model produced a non-finite step (%s, %s)", dist, newV)
	}

	if dist.InMeters() >= remaining.InMeters() {
		p.arrivalSpeed = p.model.VelocityAfterBraking(p.velocity, remaining)
		if p.arrivalSpeed.InMetersPerSecond() > 0 {
			slog.Warn("vehicle overran its braking curve",
				"simulation_id", p.meta.SimulationID,
				"arrival_speed", p.arrivalSpeed.String(),
				"time_step", dt.String())
		}
		p.arrive()
		return nil
	}
	p.travelled = p.travelled.Add(dist)
	p.velocity = newV
	p.state = newState
	return nil
}

func (p *Profile) arrive() {
	p.travelled = p.target
	p.velocity = units.MetersPerSecond(0)
	p.state = StateArrived
}

// proposeMovement returns the distance, resulting velocity, and resulting state
// over timestep dt when distToStop remains.
//
// VMax is the lower of the vehicle's own limit and the current zone's limit.
//
// Priority (highest first):
//  1. Braking to stop at the end of the move
//  2. Braking for a lower speed limit ahead
//  3. Decelerating to VMax if currently over it
//  4. Accelerating toward VMax
//  5. Cruising at VMax
func (p *Profile) proposeMovement(dt units.Time, distToStop units.Distance) (units.Distance, units.Velocity, MotionState) {
	m := p.model
	v := p.velocity
	vMax := p.speedLimit()
	stopped := units.MetersPerSecond(0)

	if v.InMetersPerSecond() > 0 && distToStop.InMeters() <= m.BrakingDistance(v).InMeters() {
		dist, newV := m.DecelerateStep(v, stopped, dt)
		if newV.InMetersPerSecond() <= 0 {
			return dist, stopped, StateStationary
		}
		return dist, newV, StateDecelerating
	}

	if limit, ok := p.upcomingLimit(); ok {
		dist, newV := m.DecelerateStep(v, limit, dt)
		return dist, newV, StateDecelerating
	}

	switch {
	case v.InMetersPerSecond() > vMax.InMetersPerSecond():
		dist, newV := m.DecelerateStep(v, vMax, dt)
		if newV.InMetersPerSecond() <= vMax.InMetersPerSecond() {
			return dist, newV, StateCruising
		}
		return dist, newV, StateDecelerating

	case v.InMetersPerSecond() < vMax.InMetersPerSecond():
		dist, newV := m.AccelerateStep(v, vMax, dt)
		if newV.InMetersPerSecond() >= vMax.InMetersPerSecond() {
			return dist, vMax, StateCruising
		}
		return dist, newV, StateAccelerating

	default:
		// v·dt as a plain product: Velocity.MulTime follows the derivative ladder.
		return units.Meters(vMax.InMetersPerSecond() * dt.InSeconds()), vMax, StateCruising
	}
}

func (p *Profile) row() SimulationLogRow {
	pos := p.Position()
	return SimulationLogRow{
		Timestamp: pos.Timestamp().ToUnit(p.opts.TimeUnit).Value(),
		Distance:  pos.Distance().ToUnit(p.opts.DistanceUnit).Value(),
		Heading:   pos.Angle().Value(),
		Velocity:  p.velocity.ToUnit(p.opts.DistanceUnit, p.opts.TimeUnit).Value(),
		State:     p.state,
	}
}

func (p *Profile) outputUnits() OutputUnits {
	return OutputUnits{
		Time:     p.opts.TimeUnit.String(),
		Distance: p.opts.DistanceUnit.String(),
		Velocity: fmt.Sprintf("%s per %s", p.opts.DistanceUnit, p.opts.TimeUnit),
	}
}

func (p *Profile) summary() string {
	elapsed := p.curTime.ToUnit(p.opts.TimeUnit)
	travelled := p.travelled.ToUnit(p.opts.DistanceUnit)
	if p.state == StateArrived {
		return fmt.Sprintf("arrived after %s covering %s", elapsed, travelled)
	}
	return fmt.Sprintf("%s after %s, %s covered", p.state, elapsed, travelled)
}

// RunJSON is the primary entry point for the CLI and WASM targets.
// It accepts a JSON-encoded SimulationInput, runs the profile, and returns a
// JSON-encoded SimulationLog.
func RunJSON(jsonInput string, opts Options) (string, error) {
	var input SimulationInput
	if err := json.Unmarshal([]byte(jsonInput), &input); err != nil {
		return "", fmt.Errorf("invalid input JSON: %w", err)
	}

	profile, err := NewProfile(input, opts)
	if err != nil {
		return "", err
	}

	simLog, err := profile.Run()
	if err != nil {
		return "", err
	}

	out, err := json.Marshal(simLog)
	if err != nil {
		return "", fmt.Errorf("marshaling output: %w", err)
	}
	return string(out), nil
}
