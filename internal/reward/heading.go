package reward

import (
	"math"

	"github.com/kestrel-sim/kestrel/internal/catalog"
	"github.com/kestrel-sim/kestrel/internal/props"
)

const feetToMeters = 0.304

// Heading rewards tracking the commanded heading while holding altitude,
// wings level and task speed. Each error feeds a Gaussian-shaped term; the
// step reward is their geometric mean, so it peaks at 1 on target and any
// one large error pulls the whole term down.
type Heading struct {
	HeadingScaleDeg float64
	AltScaleM       float64
	RollScaleRad    float64
	SpeedScaleMps   float64
	TargetSpeedFps  float64
}

// NewHeading returns a heading reward with the reference error scales.
func NewHeading(targetSpeedFps float64) *Heading {
	return &Heading{
		HeadingScaleDeg: 5.0,
		AltScaleM:       15.24,
		RollScaleRad:    0.35,
		SpeedScaleMps:   24.0,
		TargetSpeedFps:  targetSpeedFps,
	}
}

func (h *Heading) Name() string { return "heading" }

func (h *Heading) Compute(p props.Reader, agentID int) float64 {
	headingErr := p.Get(catalog.DeltaHeadingDeg) / h.HeadingScaleDeg
	altErr := p.Get(catalog.DeltaAltitudeFt) * feetToMeters / h.AltScaleM
	rollErr := p.Get(catalog.AttitudeRollRad) / h.RollScaleRad
	speedErr := (p.Get(catalog.VelocitiesVcFps) - h.TargetSpeedFps) * feetToMeters / h.SpeedScaleMps

	headingTerm := math.Exp(-headingErr * headingErr)
	altTerm := math.Exp(-altErr * altErr)
	rollTerm := math.Exp(-rollErr * rollErr)
	speedTerm := math.Exp(-speedErr * speedErr)

	return math.Pow(headingTerm*altTerm*rollTerm*speedTerm, 0.25)
}

func (h *Heading) Reset() {}
