package env

import (
	"math"
	"testing"

	"github.com/kestrel-sim/kestrel/internal/config"
	"github.com/kestrel-sim/kestrel/internal/task"
)

func newTestEnv(t *testing.T) (*Env, *config.Config) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.NumFighters = 1
	tk, err := task.NewHeading(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return New(cfg, tk), cfg
}

// neutral is the discrete action closest to centered controls.
func neutral() []float64 {
	return []float64{20, 20, 20, 15}
}

func TestResetReturnsObservations(t *testing.T) {
	e, _ := newTestEnv(t)
	obs := e.Reset()
	if len(obs) != 1 {
		t.Fatalf("expected 1 agent observation, got %d", len(obs))
	}
	if len(obs[0]) != 8 {
		t.Fatalf("expected observation dim 8, got %d", len(obs[0]))
	}
	// Delta heading starts at the commanded 90 degrees, scaled to rad.
	if want := math.Pi / 2; math.Abs(obs[0][1]-want) > 1e-9 {
		t.Errorf("initial heading error: got %v, want %v", obs[0][1], want)
	}
}

func TestStepSequence(t *testing.T) {
	e, _ := newTestEnv(t)
	e.Reset()

	results, err := e.Step([][]float64{neutral()})
	if err != nil {
		t.Fatal(err)
	}
	r := results[0]
	if len(r.Observation) != 8 {
		t.Errorf("observation dim: got %d, want 8", len(r.Observation))
	}
	if r.Done {
		t.Error("episode ended on the first step")
	}
	if _, ok := r.Info["reward/heading"]; !ok {
		t.Error("reward breakdown missing from info")
	}
}

func TestStepActionCountMismatch(t *testing.T) {
	e, _ := newTestEnv(t)
	e.Reset()
	if _, err := e.Step(nil); err == nil {
		t.Error("expected error for missing actions")
	}
}

func TestDoneLatches(t *testing.T) {
	e, cfg := newTestEnv(t)
	cfg.MaxEpisodeSec = 1.0 // fast timeout, dt 0.2
	e2, err := rebuild(cfg)
	if err != nil {
		t.Fatal(err)
	}
	e = e2
	e.Reset()

	var last StepResult
	steps := 0
	for !e.Done() {
		results, err := e.Step([][]float64{neutral()})
		if err != nil {
			t.Fatal(err)
		}
		last = results[0]
		steps++
		if steps > 100 {
			t.Fatal("episode never terminated")
		}
	}
	if !last.Done {
		t.Error("final result not marked done")
	}
	if !last.Success {
		t.Error("timeout should end the heading episode as success")
	}
	if last.Info["termination"] != "timeout" {
		t.Errorf("termination: got %v, want timeout", last.Info["termination"])
	}

	// Stepping a finished agent keeps the verdict and does not advance.
	tBefore := e.Agents()[0].Sim.Time()
	results, err := e.Step([][]float64{neutral()})
	if err != nil {
		t.Fatal(err)
	}
	if !results[0].Done || !results[0].Success {
		t.Error("verdict not latched after episode end")
	}
	if e.Agents()[0].Sim.Time() != tBefore {
		t.Error("finished agent was advanced")
	}
}

func TestResetClearsEpisodeState(t *testing.T) {
	e, _ := newTestEnv(t)
	first := e.Reset()

	for i := 0; i < 10; i++ {
		if _, err := e.Step([][]float64{neutral()}); err != nil {
			t.Fatal(err)
		}
	}

	second := e.Reset()
	for i := range first[0] {
		if first[0][i] != second[0][i] {
			t.Fatalf("observation %d differs after reset: %v vs %v", i, first[0][i], second[0][i])
		}
	}
	if e.Agents()[0].Sim.Time() != 0 {
		t.Error("sim time not cleared by reset")
	}
}

func TestRender(t *testing.T) {
	e, _ := newTestEnv(t)
	e.Reset()
	out := e.Render(0)
	if len(out) != 6 {
		t.Fatalf("expected 6 render variables, got %d", len(out))
	}
	// Third render variable is altitude.
	if out[2] != config.DefaultInitAltitudeFt {
		t.Errorf("render altitude: got %v", out[2])
	}
}

func rebuild(cfg *config.Config) (*Env, error) {
	tk, err := task.NewHeading(cfg)
	if err != nil {
		return nil, err
	}
	return New(cfg, tk), nil
}
