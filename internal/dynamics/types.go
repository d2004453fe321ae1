// Package dynamics provides the point-mass flight model standing in for a
// full flight-dynamics engine. Tasks and units never import it directly; they
// see the vehicle only through the property table it publishes into.
package dynamics

import (
	"errors"
	"math"
)

// State is the model state vector.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// IsValid reports whether the state is free of NaN and Inf components.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Control is the model control vector.
type Control []float64

// System is an ODE system dX/dt = f(X, u, t).
type System interface {
	Derive(x State, u Control, t float64) State
	StateDim() int
	ControlDim() int
}

// Integrator advances a system state by one timestep.
type Integrator interface {
	Step(dyn System, x State, u Control, t, dt float64) State
}

// ErrUnstable indicates the model state diverged (NaN or Inf).
var ErrUnstable = errors.New("dynamics: model state diverged")
