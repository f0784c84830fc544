package executor

import (
	"maps"
	"slices"
)

// Env maps variable names to their last assigned value.
// It is not safe for concurrent use.
type Env struct {
	bindings map[string]float64
}

// NewEnv creates an empty environment.
func NewEnv() *Env {
	return &Env{bindings: make(map[string]float64)}
}

// Get looks up a variable by name.
func (e *Env) Get(name string) (float64, bool) {
	v, ok := e.bindings[name]
	return v, ok
}

// Set binds a variable, overwriting any previous value.
func (e *Env) Set(name string, val float64) {
	if e.bindings == nil {
		e.bindings = make(map[string]float64)
	}
	e.bindings[name] = val
}

// Has checks whether a variable is defined.
func (e *Env) Has(name string) bool {
	_, ok := e.bindings[name]
	return ok
}

func (e *Env) Len() int { return len(e.bindings) }

// Names returns the defined variable names in sorted order.
func (e *Env) Names() []string {
	return slices.Sorted(maps.Keys(e.bindings))
}

// Snapshot returns a copy of the bindings.
func (e *Env) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(e.bindings))
	maps.Copy(out, e.bindings)
	return out
}
