// Package registry maps task names to their factories, the way simulation
// models are looked up by name elsewhere in the tree.
package registry

import (
	"fmt"
	"sort"

	"github.com/kestrel-sim/kestrel/internal/config"
	"github.com/kestrel-sim/kestrel/internal/task"
)

type Factory func(cfg *config.Config) (*task.Task, error)

type Registry struct {
	tasks map[string]Factory
}

func New() *Registry {
	r := &Registry{tasks: make(map[string]Factory)}
	r.tasks["heading"] = task.NewHeading
	r.tasks["heading_continuous"] = task.NewHeadingContinuous
	r.tasks["heading_altitude"] = task.NewHeadingAltitude
	return r
}

// Get builds the named task from cfg.
func (r *Registry) Get(name string, cfg *config.Config) (*task.Task, error) {
	fn, ok := r.tasks[name]
	if !ok {
		return nil, fmt.Errorf("unknown task: %s", name)
	}
	return fn(cfg)
}

// List returns the registered task names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.tasks))
	for name := range r.tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
