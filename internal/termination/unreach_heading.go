package termination

import (
	"math"

	"github.com/kestrel-sim/kestrel/internal/catalog"
	"github.com/kestrel-sim/kestrel/internal/props"
)

// UnreachHeading fails the episode if the heading error is still outside
// tolerance at each periodic check. The next check time is per-episode state
// and must be cleared on Reset, or a stale schedule leaks into the next
// episode.
type UnreachHeading struct {
	IntervalSec  float64
	ToleranceDeg float64

	nextCheck float64
}

func NewUnreachHeading(intervalSec, toleranceDeg float64) *UnreachHeading {
	return &UnreachHeading{
		IntervalSec:  intervalSec,
		ToleranceDeg: toleranceDeg,
		nextCheck:    intervalSec,
	}
}

func (u *UnreachHeading) Name() string { return "unreach_heading" }

func (u *UnreachHeading) Check(p props.Reader, agentID int) Verdict {
	if p.Get(catalog.SimulationSimTimeSec) < u.nextCheck {
		return Verdict{}
	}
	u.nextCheck += u.IntervalSec
	if math.Abs(p.Get(catalog.DeltaHeadingDeg)) > u.ToleranceDeg {
		return Verdict{Done: true}
	}
	return Verdict{}
}

func (u *UnreachHeading) Reset() {
	u.nextCheck = u.IntervalSec
}

// UnreachHeadingAltitude is UnreachHeading with an additional altitude
// tolerance at each check, for the heading-and-altitude task variant.
type UnreachHeadingAltitude struct {
	IntervalSec  float64
	ToleranceDeg float64
	ToleranceFt  float64

	nextCheck float64
}

func NewUnreachHeadingAltitude(intervalSec, toleranceDeg, toleranceFt float64) *UnreachHeadingAltitude {
	return &UnreachHeadingAltitude{
		IntervalSec:  intervalSec,
		ToleranceDeg: toleranceDeg,
		ToleranceFt:  toleranceFt,
		nextCheck:    intervalSec,
	}
}

func (u *UnreachHeadingAltitude) Name() string { return "unreach_heading_altitude" }

func (u *UnreachHeadingAltitude) Check(p props.Reader, agentID int) Verdict {
	if p.Get(catalog.SimulationSimTimeSec) < u.nextCheck {
		return Verdict{}
	}
	u.nextCheck += u.IntervalSec
	if math.Abs(p.Get(catalog.DeltaHeadingDeg)) > u.ToleranceDeg ||
		math.Abs(p.Get(catalog.DeltaAltitudeFt)) > u.ToleranceFt {
		return Verdict{Done: true}
	}
	return Verdict{}
}

func (u *UnreachHeadingAltitude) Reset() {
	u.nextCheck = u.IntervalSec
}
