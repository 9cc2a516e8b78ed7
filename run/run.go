/*
File    : lox-interpreter/run/run.go
*/

// Package run wires the four pipeline stages (scanner, parser, resolver,
// interpreter) together the way the teacher's main package sequences
// lexer -> parser -> evaluator, adding the resolver pass the teacher's
// language doesn't have. Both the `lox run` CLI subcommand and the REPL
// (package replloop) drive the pipeline through this package so the two
// entrypoints can't drift out of sync on error handling or exit codes.
package run

import (
	"github.com/EdvardsF/lox-interpreter/ast"
	"github.com/EdvardsF/lox-interpreter/diagnostics"
	"github.com/EdvardsF/lox-interpreter/interpreter"
	"github.com/EdvardsF/lox-interpreter/parser"
	"github.com/EdvardsF/lox-interpreter/resolver"
	"github.com/EdvardsF/lox-interpreter/scanner"
	"github.com/EdvardsF/lox-interpreter/token"
)

// Status mirrors spec.md §6's exit-code taxonomy: which phase, if any,
// reported an error.
type Status int

const (
	StatusOK Status = iota
	StatusCompileError
	StatusRuntimeError
)

// Scan runs only the lexer, for the `lox tokens` subcommand.
func Scan(src string, report *diagnostics.Reporter) []token.Token {
	return scanner.New(src, report).ScanTokens()
}

// ParseOnly runs the scanner and parser, for the `lox ast` subcommand.
func ParseOnly(src string, report *diagnostics.Reporter) []ast.Stmt {
	tokens := Scan(src, report)
	return parser.New(tokens, report).Parse()
}

// Source compiles and runs one chunk of source against interp, sharing
// interp's environment across calls so a REPL session accumulates state
// line by line. An error recorded on report while scanning, parsing or
// resolving yields StatusCompileError (and nothing is executed); an error
// returned by the interpreter yields StatusRuntimeError.
func Source(src string, report *diagnostics.Reporter, interp *interpreter.Interpreter) Status {
	stmts := ParseOnly(src, report)
	if report.HadError() {
		return StatusCompileError
	}

	res := resolver.New(report)
	res.Resolve(stmts)
	if report.HadError() {
		return StatusCompileError
	}

	for expr, distance := range res.Locals {
		interp.Locals[expr] = distance
	}

	if err := interp.Interpret(stmts); err != nil {
		return StatusRuntimeError
	}
	return StatusOK
}
