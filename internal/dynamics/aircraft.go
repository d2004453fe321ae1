package dynamics

import "math"

// Aircraft state vector layout.
const (
	StateNorthFt = iota
	StateEastFt
	StateAltFt
	StateAirspeedFps
	StateHeadingRad
	StateRollRad
	StatePitchRad
	aircraftStateDim
)

// Aircraft control vector layout. Matches the fcs command order.
const (
	CtrlAileron = iota
	CtrlElevator
	CtrlRudder
	CtrlThrottle
	aircraftControlDim
)

// Aircraft is a point-mass flight model with first-order attitude response.
// Turns are coordinated: heading rate follows bank angle, with a small
// rudder contribution on top.
type Aircraft struct {
	RollRate     float64 // max roll rate per unit aileron, rad/s
	PitchRate    float64 // max pitch rate per unit elevator, rad/s
	YawRate      float64 // yaw rate per unit rudder, rad/s
	RollDamping  float64
	PitchDamping float64
	ThrustAccel  float64 // acceleration per unit throttle above trim, ft/s^2
	TrimThrottle float64
	Gravity      float64 // ft/s^2
	MinAirspeed  float64 // ft/s, guards the turn-rate division
}

func NewAircraft() *Aircraft {
	return &Aircraft{
		RollRate:     1.5,
		PitchRate:    0.5,
		YawRate:      0.2,
		RollDamping:  0.8,
		PitchDamping: 0.8,
		ThrustAccel:  40.0,
		TrimThrottle: 0.65,
		Gravity:      32.17,
		MinAirspeed:  50.0,
	}
}

func (a *Aircraft) StateDim() int   { return aircraftStateDim }
func (a *Aircraft) ControlDim() int { return aircraftControlDim }

func (a *Aircraft) Derive(x State, u Control, t float64) State {
	airspeed := math.Max(x[StateAirspeedFps], a.MinAirspeed)
	heading := x[StateHeadingRad]
	roll := x[StateRollRad]
	pitch := x[StatePitchRad]

	aileron, elevator, rudder, throttle := controls(u)

	rollDot := a.RollRate*aileron - a.RollDamping*roll
	pitchDot := a.PitchRate*elevator - a.PitchDamping*pitch
	headingDot := a.Gravity/airspeed*math.Tan(roll) + a.YawRate*rudder
	speedDot := a.ThrustAccel*(throttle-a.TrimThrottle) - a.Gravity*math.Sin(pitch)

	return State{
		airspeed * math.Cos(pitch) * math.Cos(heading),
		airspeed * math.Cos(pitch) * math.Sin(heading),
		airspeed * math.Sin(pitch),
		speedDot,
		headingDot,
		rollDot,
		pitchDot,
	}
}

// LoadFactors returns the pilot-frame load factors (nx, ny, nz) in g.
// Straight and level flight reads nz = -1: the airframe carries one g of
// lift, which is why the overload guard offsets that axis before comparing.
func (a *Aircraft) LoadFactors(x State, u Control) (nx, ny, nz float64) {
	airspeed := math.Max(x[StateAirspeedFps], a.MinAirspeed)
	roll := x[StateRollRad]
	pitch := x[StatePitchRad]

	_, elevator, rudder, throttle := controls(u)

	pitchDot := a.PitchRate*elevator - a.PitchDamping*pitch
	speedDot := a.ThrustAccel*(throttle-a.TrimThrottle) - a.Gravity*math.Sin(pitch)

	nx = speedDot / a.Gravity
	ny = airspeed * a.YawRate * rudder / a.Gravity
	nz = -1.0/math.Cos(roll) - airspeed*pitchDot/a.Gravity
	return nx, ny, nz
}

func controls(u Control) (aileron, elevator, rudder, throttle float64) {
	if len(u) >= aircraftControlDim {
		return u[CtrlAileron], u[CtrlElevator], u[CtrlRudder], u[CtrlThrottle]
	}
	return 0, 0, 0, 0
}
