package reward

import (
	"math"

	"github.com/kestrel-sim/kestrel/internal/catalog"
	"github.com/kestrel-sim/kestrel/internal/props"
)

const mach1Fps = 340.0 / 0.304

// Altitude penalizes flight below the safe band. Below the safe altitude
// the penalty scales with descent rate; below the danger altitude a second
// penalty grows as the ground approaches. Contribution is 0 in the safe
// band, bounded by -2 at worst.
type Altitude struct {
	SafeKm   float64
	DangerKm float64
	DescentK float64 // descent-rate scale, Mach
}

func NewAltitude(safeKm, dangerKm float64) *Altitude {
	return &Altitude{
		SafeKm:   safeKm,
		DangerKm: dangerKm,
		DescentK: 0.2,
	}
}

func (a *Altitude) Name() string { return "altitude" }

func (a *Altitude) Compute(p props.Reader, agentID int) float64 {
	altKm := p.Get(catalog.PositionHSLFt) * feetToMeters / 1000
	descentMach := p.Get(catalog.VelocitiesVDownFps) / mach1Fps

	penalty := 0.0
	if altKm <= a.SafeKm {
		pv := descentMach / a.DescentK * (a.SafeKm - altKm) / a.SafeKm
		penalty -= clamp01(pv)
	}
	if altKm <= a.DangerKm {
		penalty -= clamp01((a.DangerKm - altKm) / a.DangerKm)
	}
	return penalty
}

func (a *Altitude) Reset() {}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
