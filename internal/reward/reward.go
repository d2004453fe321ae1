// Package reward provides pluggable per-step reward units. Each unit
// contributes one scalar term; the task sums them and keeps the per-unit
// breakdown for diagnostics.
package reward

import "github.com/kestrel-sim/kestrel/internal/props"

// Unit scores the current step for one agent. Units may keep per-episode
// accumulators; Reset must clear them before the next episode.
type Unit interface {
	Name() string
	Compute(p props.Reader, agentID int) float64
	Reset()
}
