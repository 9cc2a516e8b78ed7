/*
File    : lox-interpreter/interpreter/interpreter.go
*/

// Package interpreter implements the tree-walking evaluator described
// in spec.md §4.6, grounded on the teacher's eval package (evaluator.go
// plus its eval_*.go split by node category: this package keeps the
// same split — statements.go, expressions.go, calls.go — but dispatches
// with type switches over the tagged ast nodes instead of the teacher's
// NodeVisitor double dispatch, per spec.md §9's design note.
package interpreter

import (
	"io"
	"os"

	"github.com/EdvardsF/lox-interpreter/ast"
	"github.com/EdvardsF/lox-interpreter/diagnostics"
	"github.com/EdvardsF/lox-interpreter/environment"
	"github.com/EdvardsF/lox-interpreter/native"
	"github.com/EdvardsF/lox-interpreter/token"
)

// Interpreter walks a resolved program and executes it against a chain
// of Environments, rooted at globals. Locals holds the resolver's
// lexical-distance side table (package resolver), consulted by variable
// reads/writes/this/super instead of a dynamic scope search. Stdout is
// where `print` statements write; it defaults to os.Stdout but is
// swappable so tests can capture output without touching the real
// process streams.
type Interpreter struct {
	globals *environment.Environment
	env     *environment.Environment
	Locals  map[ast.Expr]int
	report  *diagnostics.Reporter
	Stdout  io.Writer
}

// New creates an Interpreter with clock() (and, if withExtras, the
// supplemented len/str/num builtins) installed in the global scope.
func New(report *diagnostics.Reporter, locals map[ast.Expr]int, withExtras bool) *Interpreter {
	globals := environment.New()
	native.InstallDefaults(globals)
	if withExtras {
		native.InstallExtras(globals)
	}
	return &Interpreter{
		globals: globals,
		env:     globals,
		Locals:  locals,
		report:  report,
		Stdout:  os.Stdout,
	}
}

func (i *Interpreter) Globals() *environment.Environment { return i.globals }

// Interpret runs a whole program, reporting (but not panicking on) the
// first uncaught runtime error, matching spec.md §4.6's "evaluation
// stops at the first uncaught runtime error" rule.
func (i *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := i.execute(s); err != nil {
			if rerr, ok := err.(*diagnostics.RuntimeError); ok {
				i.report.PrintRuntimeError(rerr)
			}
			return err
		}
	}
	return nil
}

// lookupVariable resolves name either at the distance the resolver
// recorded for expr, or (if expr was never resolved, meaning it's
// global) by a direct lookup in globals.
func (i *Interpreter) lookupVariable(name token.Token, expr ast.Expr) (interface{}, error) {
	if distance, ok := i.Locals[expr]; ok {
		return i.env.GetAt(distance, name.Lexeme), nil
	}
	return i.globals.Get(name)
}
