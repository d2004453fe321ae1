package termination

import (
	"testing"

	"github.com/kestrel-sim/kestrel/internal/catalog"
)

type fakeProps map[catalog.Property]float64

func (f fakeProps) Get(p catalog.Property) float64 { return f[p] }

func TestOverloadGracePeriod(t *testing.T) {
	o := NewOverload(10, 10, 10)

	// Any magnitude is tolerated while t <= 10s.
	p := fakeProps{
		catalog.SimulationSimTimeSec:     5,
		catalog.AccelerationsNPilotXNorm: 50,
		catalog.AccelerationsNPilotYNorm: 50,
		catalog.AccelerationsNPilotZNorm: 50,
	}
	if v := o.Check(p, 0); v.Done {
		t.Error("triggered inside grace period")
	}

	p[catalog.SimulationSimTimeSec] = 10
	if v := o.Check(p, 0); v.Done {
		t.Error("triggered at exactly 10s")
	}

	p[catalog.SimulationSimTimeSec] = 10.1
	v := o.Check(p, 0)
	if !v.Done {
		t.Error("did not trigger after grace period")
	}
	if v.Success {
		t.Error("overload must never report success")
	}
}

func TestOverloadAxes(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		z    float64
		done bool
	}{
		{"all nominal", 0, 0, -1, false},
		{"x over", 10.5, 0, -1, true},
		{"x negative over", -10.5, 0, -1, true},
		{"y over", 0, 11, -1, true},
		// The z reading sits near -1 g in level flight; the +1 offset
		// centers it before the magnitude check.
		{"z offset keeps -11 on the limit", 0, 0, -11, false},
		{"z beyond offset limit", 0, 0, -11.2, true},
		{"z positive beyond offset limit", 0, 0, 9.5, true},
		{"z positive within offset limit", 0, 0, 8.9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOverload(10, 10, 10)
			p := fakeProps{
				catalog.SimulationSimTimeSec:     20,
				catalog.AccelerationsNPilotXNorm: tt.x,
				catalog.AccelerationsNPilotYNorm: tt.y,
				catalog.AccelerationsNPilotZNorm: tt.z,
			}
			if v := o.Check(p, 0); v.Done != tt.done {
				t.Errorf("done: got %v, want %v", v.Done, tt.done)
			}
		})
	}
}

func TestOverloadPerAxisLimits(t *testing.T) {
	o := NewOverload(4, 10, 10)
	p := fakeProps{
		catalog.SimulationSimTimeSec:     20,
		catalog.AccelerationsNPilotXNorm: 5,
		catalog.AccelerationsNPilotZNorm: -1,
	}
	if v := o.Check(p, 0); !v.Done {
		t.Error("tightened x limit not applied")
	}
}
