package termination

import (
	"github.com/kestrel-sim/kestrel/internal/catalog"
	"github.com/kestrel-sim/kestrel/internal/props"
)

// LowAltitude ends the episode when the vehicle descends below the hard
// floor.
type LowAltitude struct {
	FloorFt float64
}

func NewLowAltitude(floorFt float64) *LowAltitude {
	return &LowAltitude{FloorFt: floorFt}
}

func (l *LowAltitude) Name() string { return "low_altitude" }

func (l *LowAltitude) Check(p props.Reader, agentID int) Verdict {
	if p.Get(catalog.PositionHSLFt) < l.FloorFt {
		return Verdict{Done: true}
	}
	return Verdict{}
}

func (l *LowAltitude) Reset() {}
