/*
File    : lox-interpreter/resolver/resolver.go
*/

// Package resolver implements the static resolution pass described in
// spec.md §4.3, grounded on original_source's interpreter/resolver.py:
// a stack of per-block scopes (name -> defined-yet) used to compute,
// for every variable reference, how many scopes out its binding lives.
// The teacher has no equivalent pass (its language resolves names
// dynamically at eval time via Scope.LookUp), so this is built fresh in
// the teacher's error-reporting idiom (methods on a struct holding a
// shared *diagnostics.Reporter) rather than adapted from teacher code.
package resolver

import (
	"github.com/EdvardsF/lox-interpreter/ast"
	"github.com/EdvardsF/lox-interpreter/diagnostics"
	"github.com/EdvardsF/lox-interpreter/token"
)

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnInitializer
	fnMethod
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Resolver walks a parsed program once, building Locals: for every
// expression that reads or assigns a variable, how many enclosing
// scopes separate it from the scope that declares it. Absence from
// Locals means the variable is global.
type Resolver struct {
	scopes          []map[string]bool
	report          *diagnostics.Reporter
	Locals          map[ast.Expr]int
	currentFunction functionType
	currentClass    classType
}

func New(report *diagnostics.Reporter) *Resolver {
	return &Resolver{
		report: report,
		Locals: make(map[ast.Expr]int),
	}
}

// Resolve runs the pass over a whole program.
func (r *Resolver) Resolve(stmts []ast.Stmt) {
	r.resolveStmts(stmts)
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) peek() map[string]bool {
	return r.scopes[len(r.scopes)-1]
}

// declare marks name as present-but-not-yet-initialized in the
// innermost scope; reading it before define is a static error
// (spec.md §4.3's "reading a local in its own initializer").
func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.peek()
	if _, ok := scope[name.Lexeme]; ok {
		r.report.ReportAt(diagnostics.PhaseResolve, name.Line, name.Lexeme,
			"Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.peek()[name.Lexeme] = true
}

// resolveLocal walks scopes innermost-out, recording the distance at
// which name is found as a local, or leaving expr out of Locals
// entirely if it's never found (i.e. it is global).
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.Locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, typ functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = typ

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}
