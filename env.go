package main

import "sort"

// Env is the single flat frame of bindings for a session.
// It is not safe for concurrent use; each session owns its own.
type Env struct {
	vars map[string]Value
}

func newEnv() *Env {
	return &Env{vars: make(map[string]Value)}
}

func (e *Env) Get(name string) (Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Set binds name to v, replacing any earlier binding.
func (e *Env) Set(name string, v Value) {
	e.vars[name] = v
}

func (e *Env) Len() int { return len(e.vars) }

func (e *Env) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
