/*
File    : golox/environment/environment.go

Package environment implements the lexical scope chain. Closures
capture by reference, never by value: a counter closure must observe
later mutation of the variable it captured, so an Environment is
never copied — an enclosing Environment is always a shared pointer,
and a closure and the code around it observe each other's mutations.

Bindings are stored as interface{} rather than object.Value so this
package can sit below object/ in the dependency graph: object.Function
holds a *Environment as its closure, so environment cannot also
import object without a cycle. Callers on the object/interpreter side
type-assert back to object.Value, which is safe because every value
that ever enters an Environment was already an object.Value.
*/
package environment

import "fmt"

// Environment is a mapping of names to values plus an optional
// reference to an enclosing environment.
type Environment struct {
	values    map[string]interface{}
	Enclosing *Environment
}

// New creates a new environment enclosed by the given parent, or a
// root (global) environment when enclosing is nil.
func New(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]interface{}), Enclosing: enclosing}
}

// Define binds name in the current environment only, overwriting any
// prior binding of the same name in this scope. This is also how
// redeclaration of a global (permitted, unlike locals) is implemented.
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// Get looks up name in this environment, then the enclosing chain.
func (e *Environment) Get(name string) (interface{}, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, false
}

// Assign mutates name in the nearest enclosing scope that already
// has it. It reports whether a binding was found and updated.
func (e *Environment) Assign(name string, value interface{}) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return true
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, value)
	}
	return false
}

// ancestor walks `distance` enclosing links.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.Enclosing
	}
	return env
}

// GetAt reads name directly out of the environment `distance` scopes
// up, as resolved by the resolver. Takes the strict view: if that
// environment lacks the name, the resolver and evaluator have
// disagreed about scoping, which is an internal invariant violation,
// not a recoverable runtime error.
func (e *Environment) GetAt(distance int, name string) interface{} {
	env := e.ancestor(distance)
	v, ok := env.values[name]
	if !ok {
		panic(fmt.Sprintf("internal error: resolved variable %q missing at distance %d", name, distance))
	}
	return v
}

// AssignAt mutates name directly in the environment `distance` scopes
// up. Same strictness as GetAt.
func (e *Environment) AssignAt(distance int, name string, value interface{}) {
	env := e.ancestor(distance)
	if _, ok := env.values[name]; !ok {
		panic(fmt.Sprintf("internal error: resolved variable %q missing at distance %d", name, distance))
	}
	env.values[name] = value
}
