package termination

import (
	"github.com/kestrel-sim/kestrel/internal/catalog"
	"github.com/kestrel-sim/kestrel/internal/props"
)

// Timeout ends the episode at the time horizon. Surviving the full horizon
// counts as success, which is why tasks declare Timeout after every failure
// condition: a failure on the final step must win the fold.
type Timeout struct {
	MaxSec float64
}

func NewTimeout(maxSec float64) *Timeout {
	return &Timeout{MaxSec: maxSec}
}

func (t *Timeout) Name() string { return "timeout" }

func (t *Timeout) Check(p props.Reader, agentID int) Verdict {
	if p.Get(catalog.SimulationSimTimeSec) >= t.MaxSec {
		return Verdict{Done: true, Success: true}
	}
	return Verdict{}
}

func (t *Timeout) Reset() {}
