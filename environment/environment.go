/*
File    : lox-interpreter/environment/environment.go
*/

// Package environment implements the nested lexical scopes Lox programs
// run in, grounded on the teacher's scope/scope.go (a values map plus a
// parent pointer, with Define/Get/Assign walking up the chain). It adds
// GetAt/AssignAt, which the teacher's Scope never needed: the resolver
// (package resolver) computes exactly how many parents separate a
// variable reference from its defining scope, and the interpreter uses
// that distance to jump straight there instead of walking up through
// shadowing scopes at every lookup.
package environment

import (
	"github.com/EdvardsF/lox-interpreter/diagnostics"
	"github.com/EdvardsF/lox-interpreter/token"
)

// Environment is one lexical scope: the global scope has a nil parent;
// every other scope (block, function call, class body) points at the
// scope it was created inside of.
type Environment struct {
	values map[string]interface{}
	parent *Environment
}

// New creates a top-level (global) environment.
func New() *Environment {
	return &Environment{values: make(map[string]interface{})}
}

// NewEnclosed creates a scope nested inside parent, e.g. a block body or
// a function call frame.
func NewEnclosed(parent *Environment) *Environment {
	return &Environment{values: make(map[string]interface{}), parent: parent}
}

// Define binds name to value in this scope, shadowing any binding of the
// same name in an enclosing scope. Redefinition within the same scope is
// permitted at runtime (the resolver separately forbids redeclaring a
// local in its own block, spec.md §4.3).
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// Get resolves name by walking up the parent chain, returning a runtime
// UndefinedVariable error if no enclosing scope defines it.
func (e *Environment) Get(name token.Token) (interface{}, error) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values[name.Lexeme]; ok {
			return v, nil
		}
	}
	return nil, diagnostics.NewRuntimeError(name.Line, name.Lexeme, "Undefined variable '%s'.", name.Lexeme)
}

// Assign stores value into the nearest enclosing scope that already
// defines name, without creating a new binding. Assigning to an
// undefined variable is a runtime error, matching Get's behavior.
func (e *Environment) Assign(name token.Token, value interface{}) error {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.values[name.Lexeme]; ok {
			env.values[name.Lexeme] = value
			return nil
		}
	}
	return diagnostics.NewRuntimeError(name.Line, name.Lexeme, "Undefined variable '%s'.", name.Lexeme)
}

// ancestor walks exactly distance parents up from e. The resolver
// guarantees distance is always reachable for any expression it
// annotated, so a nil parent here would indicate a resolver bug rather
// than a user error.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.parent
	}
	return env
}

// GetAt reads name from the scope exactly distance parents above e, as
// computed by the resolver's static analysis.
func (e *Environment) GetAt(distance int, name string) interface{} {
	return e.ancestor(distance).values[name]
}

// AssignAt stores value into the scope exactly distance parents above e.
func (e *Environment) AssignAt(distance int, name token.Token, value interface{}) {
	e.ancestor(distance).values[name.Lexeme] = value
}
