// Package env drives episodes: it owns the per-agent simulator handles and
// runs the normalize-action → advance → reward → termination sequence once
// per tick, sequentially over agents.
package env

import (
	"fmt"

	"github.com/kestrel-sim/kestrel/internal/config"
	"github.com/kestrel-sim/kestrel/internal/dynamics"
	"github.com/kestrel-sim/kestrel/internal/task"
)

// StepResult is one agent's outcome for one tick.
type StepResult struct {
	Observation []float64
	Reward      float64
	Done        bool
	Success     bool
	Info        task.Info
}

// Agent pairs a name with its live simulator handle.
type Agent struct {
	Name string
	Sim  *dynamics.Simulator

	done    bool
	success bool
}

// Env binds a task to its agents for the duration of a run. Not safe for
// concurrent use; one episode loop at a time.
type Env struct {
	task   *task.Task
	cfg    *config.Config
	agents []*Agent
}

// New builds an environment for the given task.
func New(cfg *config.Config, t *task.Task) *Env {
	agents := make([]*Agent, t.Agents())
	for i := range agents {
		agents[i] = &Agent{
			Name: fmt.Sprintf("fighter_%d", i),
			Sim:  dynamics.NewSimulator(dynamics.NewAircraft(), dynamics.NewRK4()),
		}
	}
	return &Env{task: t, cfg: cfg, agents: agents}
}

func (e *Env) Task() *task.Task { return e.task }
func (e *Env) Agents() []*Agent { return e.agents }

// Reset starts a new episode and returns the initial observation per agent.
func (e *Env) Reset() [][]float64 {
	e.task.Reset()
	obs := make([][]float64, len(e.agents))
	for i, a := range e.agents {
		a.done = false
		a.success = false
		a.Sim.Reset(dynamics.InitialState{
			AltitudeFt:       e.cfg.Init.AltitudeFt,
			HeadingDeg:       e.cfg.Init.HeadingDeg,
			AirspeedFps:      e.cfg.Init.SpeedFps,
			TargetAltitudeFt: e.cfg.Init.TargetAltitudeFt,
			TargetHeadingDeg: e.cfg.Init.TargetHeadingDeg,
		})
		obs[i] = e.task.NormalizeObservation(a.Sim)
	}
	return obs
}

// Step applies one raw action per agent and advances the episode one tick.
// Agents whose episode already ended keep their last verdict and are not
// advanced further.
func (e *Env) Step(actions [][]float64) ([]StepResult, error) {
	if len(actions) != len(e.agents) {
		return nil, fmt.Errorf("env: got %d actions for %d agents", len(actions), len(e.agents))
	}
	results := make([]StepResult, len(e.agents))
	for i, a := range e.agents {
		if a.done {
			results[i] = StepResult{
				Observation: e.task.NormalizeObservation(a.Sim),
				Done:        true,
				Success:     a.success,
				Info:        task.Info{},
			}
			continue
		}

		cmd := e.task.NormalizeAction(actions[i])
		for k, v := range e.task.Vars().Action {
			a.Sim.Set(v, cmd[k])
		}
		if err := a.Sim.Advance(e.cfg.Dt); err != nil {
			return nil, fmt.Errorf("env: agent %s: %w", a.Name, err)
		}

		info := task.Info{}
		done, success := e.task.GetTermination(a.Sim, i, info)
		a.done = done
		a.success = success
		results[i] = StepResult{
			Observation: e.task.NormalizeObservation(a.Sim),
			Reward:      e.task.GetReward(a.Sim, i, info),
			Done:        done,
			Success:     success,
			Info:        info,
		}
	}
	return results, nil
}

// Done reports whether every agent's episode has ended.
func (e *Env) Done() bool {
	for _, a := range e.agents {
		if !a.done {
			return false
		}
	}
	return true
}

// Render reads the declared telemetry variables for one agent, in declared
// order.
func (e *Env) Render(agentID int) []float64 {
	a := e.agents[agentID]
	vars := e.task.Vars().Render
	out := make([]float64, len(vars))
	for i, v := range vars {
		out[i] = a.Sim.Get(v)
	}
	return out
}
