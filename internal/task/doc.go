// Package task implements the task composition framework: the glue between
// raw simulator properties and the agent-facing observation, action, reward
// and termination contracts.
//
// A [Task] is assembled from a [Spec]: declared state/action variables, an
// observation space with per-component [Scale] functions, an [ActionDecoder]
// strategy, and ordered lists of reward units and termination conditions.
// Variants (discrete vs. continuous actions, alternative goal checks) differ
// only in the declarations they supply; the evaluation algorithms are shared:
//
//   - rewards fold by summation, keeping a per-unit breakdown in [Info]
//   - terminations fold first-done-wins in declared order
//
// Tasks are reused across episodes; [Task.Reset] clears unit-local state
// between them.
package task
