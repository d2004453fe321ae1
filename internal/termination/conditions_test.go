package termination

import (
	"testing"

	"github.com/kestrel-sim/kestrel/internal/catalog"
)

func TestTimeout(t *testing.T) {
	c := NewTimeout(300)

	if v := c.Check(fakeProps{catalog.SimulationSimTimeSec: 299.9}, 0); v.Done {
		t.Error("triggered before horizon")
	}
	v := c.Check(fakeProps{catalog.SimulationSimTimeSec: 300}, 0)
	if !v.Done || !v.Success {
		t.Errorf("at horizon: got %+v, want done success", v)
	}
}

func TestLowAltitude(t *testing.T) {
	c := NewLowAltitude(2500)

	if v := c.Check(fakeProps{catalog.PositionHSLFt: 2500}, 0); v.Done {
		t.Error("triggered at the floor")
	}
	v := c.Check(fakeProps{catalog.PositionHSLFt: 2499}, 0)
	if !v.Done || v.Success {
		t.Errorf("below floor: got %+v, want done failure", v)
	}
}

func TestExtremeState(t *testing.T) {
	c := NewExtremeState(3.0, 1.5)

	tests := []struct {
		name        string
		t           float64
		roll, pitch float64
		done        bool
	}{
		{"nominal", 20, 0.2, 0.1, false},
		{"extreme roll in grace", 5, 3.5, 0, false},
		{"extreme roll", 20, 3.5, 0, true},
		{"extreme negative pitch", 20, 0, -1.6, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := fakeProps{
				catalog.SimulationSimTimeSec: tt.t,
				catalog.AttitudeRollRad:      tt.roll,
				catalog.AttitudePitchRad:     tt.pitch,
			}
			if v := c.Check(p, 0); v.Done != tt.done {
				t.Errorf("done: got %v, want %v", v.Done, tt.done)
			}
		})
	}
}

func TestUnreachHeadingSchedule(t *testing.T) {
	c := NewUnreachHeading(20, 10)

	offTarget := func(sec float64) fakeProps {
		return fakeProps{
			catalog.SimulationSimTimeSec: sec,
			catalog.DeltaHeadingDeg:      45,
		}
	}
	onTarget := func(sec float64) fakeProps {
		return fakeProps{
			catalog.SimulationSimTimeSec: sec,
			catalog.DeltaHeadingDeg:      3,
		}
	}

	// Before the first check time nothing happens, even far off target.
	if v := c.Check(offTarget(19.9), 0); v.Done {
		t.Fatal("checked before the first interval")
	}
	// On target at the check: schedule moves on.
	if v := c.Check(onTarget(20), 0); v.Done {
		t.Fatal("failed while within tolerance")
	}
	// Off target between checks is fine.
	if v := c.Check(offTarget(30), 0); v.Done {
		t.Fatal("checked between intervals")
	}
	// Off target at the second check fails the episode.
	v := c.Check(offTarget(40), 0)
	if !v.Done || v.Success {
		t.Fatalf("second check: got %+v, want done failure", v)
	}
}

func TestUnreachHeadingResetClearsSchedule(t *testing.T) {
	c := NewUnreachHeading(20, 10)

	p := fakeProps{catalog.SimulationSimTimeSec: 20, catalog.DeltaHeadingDeg: 0}
	c.Check(p, 0) // consumes the first check, schedule is now at 40

	c.Reset()

	// A fresh condition would check again at t=20; after Reset this one
	// must behave identically.
	v := c.Check(fakeProps{catalog.SimulationSimTimeSec: 20, catalog.DeltaHeadingDeg: 45}, 0)
	if !v.Done {
		t.Error("reset did not restore the first check time")
	}
}

func TestUnreachHeadingAltitude(t *testing.T) {
	c := NewUnreachHeadingAltitude(20, 10, 1000)

	// Heading fine, altitude not: still a failure at the check.
	p := fakeProps{
		catalog.SimulationSimTimeSec: 20,
		catalog.DeltaHeadingDeg:      2,
		catalog.DeltaAltitudeFt:      1500,
	}
	if v := c.Check(p, 0); !v.Done {
		t.Error("altitude tolerance not enforced")
	}

	c.Reset()
	p[catalog.DeltaAltitudeFt] = 500
	if v := c.Check(p, 0); v.Done {
		t.Error("failed while within both tolerances")
	}
}
