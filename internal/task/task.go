package task

import (
	"errors"
	"fmt"

	"github.com/kestrel-sim/kestrel/internal/catalog"
	"github.com/kestrel-sim/kestrel/internal/props"
	"github.com/kestrel-sim/kestrel/internal/reward"
	"github.com/kestrel-sim/kestrel/internal/termination"
)

// ErrConfig indicates a task was constructed with invalid options. It is
// returned eagerly from the constructor, never deferred to first use.
var ErrConfig = errors.New("task: invalid configuration")

// Variables declares which properties a task reads and writes. Order is
// part of the public contract: observation and action vector positions are
// defined by it.
type Variables struct {
	// State variables, in observation order.
	State []catalog.Property
	// Action variables, in command order.
	Action []catalog.Property
	// Render variables, a superset read only for external telemetry.
	Render []catalog.Property
}

// Info is the per-step diagnostic side channel. The control loop never
// consumes it.
type Info map[string]any

// Spec assembles a Task from declarations. Variants supply a different
// decoder or condition list; the composition logic is fixed.
type Spec struct {
	Name             string
	Agents           int
	Vars             Variables
	ObservationSpace Box
	Scales           []Scale
	Decoder          ActionDecoder
	Rewards          []reward.Unit
	Terminations     []termination.Condition
}

// Task composes reward units and termination conditions into a single
// per-step evaluation, and owns the observation/action normalization
// contracts. One Task instance serves one episode loop at a time.
type Task struct {
	spec Spec
}

// New validates the declarations and builds the task.
func New(spec Spec) (*Task, error) {
	if spec.Agents < 1 {
		return nil, fmt.Errorf("%w: need at least one agent, got %d", ErrConfig, spec.Agents)
	}
	if len(spec.Vars.State) != spec.ObservationSpace.Dim() {
		return nil, fmt.Errorf("%w: %d state variables for observation dim %d",
			ErrConfig, len(spec.Vars.State), spec.ObservationSpace.Dim())
	}
	if len(spec.Scales) != len(spec.Vars.State) {
		return nil, fmt.Errorf("%w: %d scales for %d state variables",
			ErrConfig, len(spec.Scales), len(spec.Vars.State))
	}
	if spec.Decoder == nil {
		return nil, fmt.Errorf("%w: missing action decoder", ErrConfig)
	}
	if len(spec.Vars.Action) != spec.Decoder.Space().Dim() {
		return nil, fmt.Errorf("%w: %d action variables for action dim %d",
			ErrConfig, len(spec.Vars.Action), spec.Decoder.Space().Dim())
	}
	return &Task{spec: spec}, nil
}

func (t *Task) Name() string    { return t.spec.Name }
func (t *Task) Agents() int     { return t.spec.Agents }
func (t *Task) Vars() Variables { return t.spec.Vars }

// ObservationSpace returns the advisory bounds of the observation vector.
// Normalization is not guaranteed to stay inside them.
func (t *Task) ObservationSpace() Box { return t.spec.ObservationSpace }

func (t *Task) ActionSpace() Space { return t.spec.Decoder.Space() }

// NormalizeObservation reads each declared state variable from the given
// snapshot and scales it into the observation vector. Pure: the same
// snapshot always yields the same vector.
func (t *Task) NormalizeObservation(p props.Reader) []float64 {
	obs := make([]float64, len(t.spec.Vars.State))
	for i, v := range t.spec.Vars.State {
		obs[i] = t.spec.Scales[i](p.Get(v))
	}
	return obs
}

// NormalizeAction converts a raw agent action into physical control units,
// one value per declared action variable.
func (t *Task) NormalizeAction(raw []float64) []float64 {
	return t.spec.Decoder.Decode(raw)
}

// GetReward sums every reward unit's contribution for the current step.
// The per-unit breakdown is recorded in info for observability.
func (t *Task) GetReward(p props.Reader, agentID int, info Info) float64 {
	total := 0.0
	for _, u := range t.spec.Rewards {
		c := u.Compute(p, agentID)
		total += c
		if info != nil {
			info["reward/"+u.Name()] = c
		}
	}
	return total
}

// GetTermination evaluates the conditions in declared order and forwards
// the first Done verdict; later conditions are not evaluated. If none
// signals, the episode continues.
func (t *Task) GetTermination(p props.Reader, agentID int, info Info) (done, success bool) {
	for _, c := range t.spec.Terminations {
		v := c.Check(p, agentID)
		if v.Done {
			if info != nil {
				info["termination"] = c.Name()
			}
			return true, v.Success
		}
	}
	return false, false
}

// Reset clears per-episode state in every reward unit and termination
// condition. Call it before reusing the task for a new episode.
func (t *Task) Reset() {
	for _, u := range t.spec.Rewards {
		u.Reset()
	}
	for _, c := range t.spec.Terminations {
		c.Reset()
	}
}
