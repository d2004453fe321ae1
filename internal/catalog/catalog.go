// Package catalog defines the versioned vocabulary of simulator properties.
//
// Every scalar the tasks, reward units and termination conditions read or
// write is identified by a [Property] key. The catalog is a pure data table:
// it never holds values, only names, units and descriptions. Tasks and units
// share this vocabulary with the property table in [props].
package catalog

// Version of the property vocabulary. Bump when keys are added, removed or
// change meaning, since observation/action vector positions depend on them.
const Version = 1

// Property is a symbolic key naming one scalar of vehicle state or control
// input.
type Property string

// Position and attitude.
const (
	PositionHSLFt          Property = "position/h-sl-ft"
	PositionLatGeodDeg     Property = "position/lat-geod-deg"
	PositionLongGcDeg      Property = "position/long-gc-deg"
	AttitudeRollRad        Property = "attitude/roll-rad"
	AttitudePitchRad       Property = "attitude/pitch-rad"
	AttitudeHeadingTrueRad Property = "attitude/heading-true-rad"
)

// Velocities.
const (
	VelocitiesVNorthFps Property = "velocities/v-north-fps"
	VelocitiesVEastFps  Property = "velocities/v-east-fps"
	VelocitiesVDownFps  Property = "velocities/v-down-fps"
	VelocitiesVcFps     Property = "velocities/vc-fps"
)

// Pilot-frame load factors, in g.
const (
	AccelerationsNPilotXNorm Property = "accelerations/n-pilot-x-norm"
	AccelerationsNPilotYNorm Property = "accelerations/n-pilot-y-norm"
	AccelerationsNPilotZNorm Property = "accelerations/n-pilot-z-norm"
)

// Flight control system commands.
const (
	FcsAileronCmdNorm  Property = "fcs/aileron-cmd-norm"
	FcsElevatorCmdNorm Property = "fcs/elevator-cmd-norm"
	FcsRudderCmdNorm   Property = "fcs/rudder-cmd-norm"
	FcsThrottleCmdNorm Property = "fcs/throttle-cmd-norm"
)

// Mission targets and derived errors.
const (
	TargetHeadingDeg Property = "targets/heading-deg"
	TargetAltitudeFt Property = "targets/altitude-ft"
	DeltaAltitudeFt  Property = "position/delta-altitude-ft"
	DeltaHeadingDeg  Property = "attitude/delta-heading-deg"
)

// Simulation bookkeeping.
const (
	SimulationSimTimeSec Property = "simulation/sim-time-sec"
)

// Info describes one catalog entry.
type Info struct {
	Unit        string
	Description string
}

var table = map[Property]Info{
	PositionHSLFt:            {"ft", "altitude above sea level"},
	PositionLatGeodDeg:       {"deg", "geodetic latitude"},
	PositionLongGcDeg:        {"deg", "geocentric longitude"},
	AttitudeRollRad:          {"rad", "roll angle"},
	AttitudePitchRad:         {"rad", "pitch angle"},
	AttitudeHeadingTrueRad:   {"rad", "true heading"},
	VelocitiesVNorthFps:      {"fps", "north velocity component"},
	VelocitiesVEastFps:       {"fps", "east velocity component"},
	VelocitiesVDownFps:       {"fps", "down velocity component"},
	VelocitiesVcFps:          {"fps", "calibrated airspeed"},
	AccelerationsNPilotXNorm: {"g", "pilot-frame x load factor"},
	AccelerationsNPilotYNorm: {"g", "pilot-frame y load factor"},
	AccelerationsNPilotZNorm: {"g", "pilot-frame z load factor"},
	FcsAileronCmdNorm:        {"norm", "aileron command"},
	FcsElevatorCmdNorm:       {"norm", "elevator command"},
	FcsRudderCmdNorm:         {"norm", "rudder command"},
	FcsThrottleCmdNorm:       {"norm", "throttle command"},
	TargetHeadingDeg:         {"deg", "commanded heading"},
	TargetAltitudeFt:         {"ft", "commanded altitude"},
	DeltaAltitudeFt:          {"ft", "altitude error to target"},
	DeltaHeadingDeg:          {"deg", "heading error to target"},
	SimulationSimTimeSec:     {"s", "simulated time since episode start"},
}

// Lookup returns the catalog entry for p, and whether p is part of the
// vocabulary.
func Lookup(p Property) (Info, bool) {
	info, ok := table[p]
	return info, ok
}

// All returns every property in the vocabulary, in unspecified order.
func All() []Property {
	out := make([]Property, 0, len(table))
	for p := range table {
		out = append(out, p)
	}
	return out
}
