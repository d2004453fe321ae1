package termination

import (
	"math"

	"github.com/kestrel-sim/kestrel/internal/catalog"
	"github.com/kestrel-sim/kestrel/internal/props"
)

// ExtremeState ends the episode when roll or pitch leaves the recoverable
// envelope. The same grace period as Overload applies.
type ExtremeState struct {
	RollLimitRad  float64
	PitchLimitRad float64
}

func NewExtremeState(rollLimitRad, pitchLimitRad float64) *ExtremeState {
	return &ExtremeState{RollLimitRad: rollLimitRad, PitchLimitRad: pitchLimitRad}
}

func (e *ExtremeState) Name() string { return "extreme_state" }

func (e *ExtremeState) Check(p props.Reader, agentID int) Verdict {
	if p.Get(catalog.SimulationSimTimeSec) <= graceSec {
		return Verdict{}
	}
	if math.Abs(p.Get(catalog.AttitudeRollRad)) > e.RollLimitRad ||
		math.Abs(p.Get(catalog.AttitudePitchRad)) > e.PitchLimitRad {
		return Verdict{Done: true}
	}
	return Verdict{}
}

func (e *ExtremeState) Reset() {}
