package termination

import (
	"log"
	"math"

	"github.com/kestrel-sim/kestrel/internal/catalog"
	"github.com/kestrel-sim/kestrel/internal/props"
)

// graceSec skips checks during simulator initialization transients.
const graceSec = 10.0

// Overload ends the episode once any pilot-frame load factor exceeds its
// per-axis limit. The z axis reads -1 g in level flight, so that reading is
// offset by +1 before the magnitude check.
type Overload struct {
	LimitX float64 // g
	LimitY float64 // g
	LimitZ float64 // g
}

func NewOverload(limitX, limitY, limitZ float64) *Overload {
	return &Overload{LimitX: limitX, LimitY: limitY, LimitZ: limitZ}
}

func (o *Overload) Name() string { return "overload" }

func (o *Overload) Check(p props.Reader, agentID int) Verdict {
	if p.Get(catalog.SimulationSimTimeSec) <= graceSec {
		return Verdict{}
	}
	overloaded := math.Abs(p.Get(catalog.AccelerationsNPilotXNorm)) > o.LimitX ||
		math.Abs(p.Get(catalog.AccelerationsNPilotYNorm)) > o.LimitY ||
		math.Abs(p.Get(catalog.AccelerationsNPilotZNorm)+1) > o.LimitZ
	if !overloaded {
		return Verdict{}
	}
	// Diagnostic only; the verdict does not depend on it.
	log.Printf("agent %d exceeded the acceleration limit", agentID)
	return Verdict{Done: true}
}

func (o *Overload) Reset() {}
