// Package termination provides pluggable episode-ending predicates. A task
// holds an ordered list of conditions and forwards the first Done verdict;
// order encodes priority, so success conditions go before generic timeouts.
package termination

import "github.com/kestrel-sim/kestrel/internal/props"

// Verdict is one condition's decision for the current step.
type Verdict struct {
	Done    bool
	Success bool
}

// Condition decides whether the episode ends this step. Conditions may keep
// per-episode caches; Reset must clear them before the next episode.
type Condition interface {
	Name() string
	Check(p props.Reader, agentID int) Verdict
	Reset()
}
