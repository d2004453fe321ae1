// Package props provides the named-property surface the tasks and units read
// vehicle state through. The contract is deliberately narrow: a scalar per
// [catalog.Property], nothing else of the simulator leaks past it.
package props

import "github.com/kestrel-sim/kestrel/internal/catalog"

// Reader reads simulator properties.
type Reader interface {
	Get(p catalog.Property) float64
}

// Writer writes simulator properties.
type Writer interface {
	Set(p catalog.Property, v float64)
}

// Accessor combines property reads and writes.
type Accessor interface {
	Reader
	Writer
}

// Table is an in-memory property store. Absent keys read as zero. It is not
// safe for concurrent use; the step loop is sequential by contract.
type Table struct {
	values map[catalog.Property]float64
}

// NewTable returns an empty property table.
func NewTable() *Table {
	return &Table{values: make(map[catalog.Property]float64)}
}

func (t *Table) Get(p catalog.Property) float64 {
	return t.values[p]
}

func (t *Table) Set(p catalog.Property, v float64) {
	t.values[p] = v
}

// Snapshot copies the current values, for telemetry and test assertions.
func (t *Table) Snapshot() map[catalog.Property]float64 {
	out := make(map[catalog.Property]float64, len(t.values))
	for k, v := range t.values {
		out[k] = v
	}
	return out
}
