package dynamics

import (
	"math"

	"github.com/kestrel-sim/kestrel/internal/catalog"
	"github.com/kestrel-sim/kestrel/internal/props"
)

// InitialState positions the vehicle at episode start.
type InitialState struct {
	AltitudeFt       float64
	HeadingDeg       float64
	AirspeedFps      float64
	TargetAltitudeFt float64
	TargetHeadingDeg float64
}

// Simulator advances one vehicle and mirrors its state into a property
// table. Control commands are read back from the same table, so the step
// loop drives the vehicle purely through [props.Accessor].
type Simulator struct {
	model *Aircraft
	integ Integrator
	table *props.Table
	x     State
	t     float64
}

// NewSimulator builds a simulator around the given model and integrator.
func NewSimulator(model *Aircraft, integ Integrator) *Simulator {
	return &Simulator{
		model: model,
		integ: integ,
		table: props.NewTable(),
		x:     make(State, model.StateDim()),
	}
}

// Get implements props.Reader.
func (s *Simulator) Get(p catalog.Property) float64 { return s.table.Get(p) }

// Set implements props.Writer.
func (s *Simulator) Set(p catalog.Property, v float64) { s.table.Set(p, v) }

// Reset reinitializes the vehicle and republishes all state properties.
func (s *Simulator) Reset(init InitialState) {
	s.t = 0
	s.x = State{
		0,
		0,
		init.AltitudeFt,
		init.AirspeedFps,
		init.HeadingDeg * math.Pi / 180,
		0,
		0,
	}
	s.table.Set(catalog.TargetAltitudeFt, init.TargetAltitudeFt)
	s.table.Set(catalog.TargetHeadingDeg, init.TargetHeadingDeg)
	s.table.Set(catalog.FcsAileronCmdNorm, 0)
	s.table.Set(catalog.FcsElevatorCmdNorm, 0)
	s.table.Set(catalog.FcsRudderCmdNorm, 0)
	s.table.Set(catalog.FcsThrottleCmdNorm, s.model.TrimThrottle)
	s.publish()
}

// Advance steps the model by dt using the current control commands.
func (s *Simulator) Advance(dt float64) error {
	u := Control{
		s.table.Get(catalog.FcsAileronCmdNorm),
		s.table.Get(catalog.FcsElevatorCmdNorm),
		s.table.Get(catalog.FcsRudderCmdNorm),
		s.table.Get(catalog.FcsThrottleCmdNorm),
	}
	next := s.integ.Step(s.model, s.x, u, s.t, dt)
	if !next.IsValid() {
		return ErrUnstable
	}
	s.x = next
	s.t += dt
	s.publish()
	return nil
}

// Time returns the simulated time since the last Reset, in seconds.
func (s *Simulator) Time() float64 { return s.t }

func (s *Simulator) publish() {
	airspeed := s.x[StateAirspeedFps]
	heading := wrapRad(s.x[StateHeadingRad])
	pitch := s.x[StatePitchRad]

	u := Control{
		s.table.Get(catalog.FcsAileronCmdNorm),
		s.table.Get(catalog.FcsElevatorCmdNorm),
		s.table.Get(catalog.FcsRudderCmdNorm),
		s.table.Get(catalog.FcsThrottleCmdNorm),
	}
	nx, ny, nz := s.model.LoadFactors(s.x, u)

	s.table.Set(catalog.SimulationSimTimeSec, s.t)
	s.table.Set(catalog.PositionHSLFt, s.x[StateAltFt])
	s.table.Set(catalog.PositionLatGeodDeg, s.x[StateNorthFt]/364000)
	s.table.Set(catalog.PositionLongGcDeg, s.x[StateEastFt]/364000)
	s.table.Set(catalog.AttitudeRollRad, s.x[StateRollRad])
	s.table.Set(catalog.AttitudePitchRad, pitch)
	s.table.Set(catalog.AttitudeHeadingTrueRad, heading)
	s.table.Set(catalog.VelocitiesVNorthFps, airspeed*math.Cos(pitch)*math.Cos(heading))
	s.table.Set(catalog.VelocitiesVEastFps, airspeed*math.Cos(pitch)*math.Sin(heading))
	s.table.Set(catalog.VelocitiesVDownFps, -airspeed*math.Sin(pitch))
	s.table.Set(catalog.VelocitiesVcFps, airspeed)
	s.table.Set(catalog.AccelerationsNPilotXNorm, nx)
	s.table.Set(catalog.AccelerationsNPilotYNorm, ny)
	s.table.Set(catalog.AccelerationsNPilotZNorm, nz)

	deltaAlt := s.table.Get(catalog.TargetAltitudeFt) - s.x[StateAltFt]
	deltaHeading := wrapDeg(s.table.Get(catalog.TargetHeadingDeg) - heading*180/math.Pi)
	s.table.Set(catalog.DeltaAltitudeFt, deltaAlt)
	s.table.Set(catalog.DeltaHeadingDeg, deltaHeading)
}

// wrapRad normalizes an angle into [0, 2π).
func wrapRad(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// wrapDeg normalizes a heading difference into [-180, 180).
func wrapDeg(d float64) float64 {
	d = math.Mod(d+180, 360)
	if d < 0 {
		d += 360
	}
	return d - 180
}
