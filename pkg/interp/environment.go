package interp

import "github.com/kasd-lang/kasd/pkg/value"

// Environment holds one interpreter's name→value bindings in insertion
// order. Rebinding an existing name overwrites its value, replacing any
// owned string payload; it never errors. This deliberately differs from the
// analyzer's symbol table, which rejects redeclaration.
type Environment struct {
	values map[string]value.Value
	names  []string
}

// NewEnvironment returns an empty environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]value.Value)}
}

// Define binds name to a copy of v, overwriting any prior binding.
func (e *Environment) Define(name string, v value.Value) {
	if _, exists := e.values[name]; !exists {
		e.names = append(e.names, name)
	}
	e.values[name] = v.Clone()
}

// Get returns a copy of the value bound to name.
func (e *Environment) Get(name string) (value.Value, bool) {
	v, ok := e.values[name]
	if !ok {
		return value.NewNull(), false
	}
	return v.Clone(), true
}

// Len returns the number of bindings.
func (e *Environment) Len() int {
	return len(e.values)
}

// Names returns the bound names in insertion order.
func (e *Environment) Names() []string {
	out := make([]string, len(e.names))
	copy(out, e.names)
	return out
}
