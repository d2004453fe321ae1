package reward

import (
	"math"
	"testing"

	"github.com/kestrel-sim/kestrel/internal/catalog"
)

type fakeProps map[catalog.Property]float64

func (f fakeProps) Get(p catalog.Property) float64 { return f[p] }

func onTarget(speedFps float64) fakeProps {
	return fakeProps{
		catalog.DeltaHeadingDeg:    0,
		catalog.DeltaAltitudeFt:    0,
		catalog.AttitudeRollRad:    0,
		catalog.VelocitiesVcFps:    speedFps,
		catalog.PositionHSLFt:      20000,
		catalog.VelocitiesVDownFps: 0,
	}
}

func TestHeadingRewardPeaksOnTarget(t *testing.T) {
	h := NewHeading(800)
	if got := h.Compute(onTarget(800), 0); math.Abs(got-1) > 1e-12 {
		t.Errorf("on-target reward: got %v, want 1", got)
	}
}

func TestHeadingRewardDecreasesWithError(t *testing.T) {
	h := NewHeading(800)

	prev := h.Compute(onTarget(800), 0)
	for _, headingErr := range []float64{5, 15, 45, 120} {
		p := onTarget(800)
		p[catalog.DeltaHeadingDeg] = headingErr
		got := h.Compute(p, 0)
		if got >= prev {
			t.Errorf("reward did not decrease at heading error %v: %v >= %v", headingErr, got, prev)
		}
		prev = got
	}
}

func TestHeadingRewardBounded(t *testing.T) {
	h := NewHeading(800)
	p := fakeProps{
		catalog.DeltaHeadingDeg: 180,
		catalog.DeltaAltitudeFt: 30000,
		catalog.AttitudeRollRad: 3,
		catalog.VelocitiesVcFps: 0,
	}
	got := h.Compute(p, 0)
	if got < 0 || got > 1 {
		t.Errorf("reward out of [0, 1]: %v", got)
	}
}

func TestAltitudeRewardSafeBand(t *testing.T) {
	a := NewAltitude(4.0, 3.5)

	// 20000 ft is about 6 km, well above the safe altitude.
	p := onTarget(800)
	if got := a.Compute(p, 0); got != 0 {
		t.Errorf("penalty in safe band: got %v, want 0", got)
	}
}

func TestAltitudeRewardPenalizesDescent(t *testing.T) {
	a := NewAltitude(4.0, 3.5)

	// ~3 km descending fast: both penalties apply.
	p := fakeProps{
		catalog.PositionHSLFt:      10000,
		catalog.VelocitiesVDownFps: 600,
	}
	got := a.Compute(p, 0)
	if got >= 0 {
		t.Errorf("expected negative penalty, got %v", got)
	}
	if got < -2 {
		t.Errorf("penalty below bound -2: %v", got)
	}

	// Same altitude, no descent: only the danger-altitude term remains.
	p[catalog.VelocitiesVDownFps] = 0
	milder := a.Compute(p, 0)
	if milder < got {
		t.Errorf("zero descent should not penalize harder: %v < %v", milder, got)
	}
}
