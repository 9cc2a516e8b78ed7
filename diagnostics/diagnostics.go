/*
File    : lox-interpreter/diagnostics/diagnostics.go
*/

// Package diagnostics implements the error taxonomy and reporting sink
// described by the interpreter's error-handling design: two independent
// channels. Compile-time errors accumulate in a Reporter whose HadError
// flag a driver checks between phases; runtime errors are returned as
// *RuntimeError values and are not recorded in the Reporter. It replaces the teacher's pattern of
// a parser that owns its own error slice (see the teacher's
// Parser.HasErrors/GetErrors) with one sink instance threaded explicitly
// through the scanner, parser, resolver, and interpreter.
package diagnostics

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Phase names the compile-time pipeline stage a CompileError came from.
type Phase string

const (
	PhaseLex      Phase = "lex"
	PhaseParse    Phase = "parse"
	PhaseResolve  Phase = "resolve"
)

// CompileError is a diagnostic raised by the scanner, parser, or resolver.
// It always carries a line number; Where, when set, names the offending
// lexeme for a more precise message (mirroring spec.md's "line + source
// excerpt where possible").
type CompileError struct {
	Phase   Phase
	Line    int
	Where   string
	Message string
}

func (e *CompileError) Error() string {
	if e.Where != "" {
		return fmt.Sprintf("[line %d] Error at '%s': %s", e.Line, e.Where, e.Message)
	}
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// RuntimeError is raised by the interpreter once evaluation has begun. It
// carries the offending token's line (and lexeme, when useful) so the
// driver can report it the same way a CompileError is reported, even
// though the two channels are otherwise kept separate per spec.md §7.
type RuntimeError struct {
	Line    int
	Where   string
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Line)
}

// NewRuntimeError builds a RuntimeError from a line and lexeme pair, the
// shape every call site in the interpreter already has on hand.
func NewRuntimeError(line int, where, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Line: line, Where: where, Message: fmt.Sprintf(format, args...)}
}

// Reporter is the shared error sink passed to the scanner, parser, and
// resolver. It accumulates CompileErrors and exposes the aggregate
// "had-error" flag the driver consults between phases (spec.md §7,
// §9 "Process-wide error state").
type Reporter struct {
	errors []*CompileError
	Out    io.Writer
}

// NewReporter creates a Reporter that writes formatted diagnostics to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{Out: w}
}

// Report records a compile-time error at the given line, with no lexeme
// context (used by the scanner, which has no token yet).
func (r *Reporter) Report(phase Phase, line int, message string) {
	r.errors = append(r.errors, &CompileError{Phase: phase, Line: line, Message: message})
}

// ReportAt records a compile-time error anchored to a specific lexeme,
// the form the parser and resolver use once they have a token in hand.
func (r *Reporter) ReportAt(phase Phase, line int, where, message string) {
	r.errors = append(r.errors, &CompileError{Phase: phase, Line: line, Where: where, Message: message})
}

// HadError reports whether any compile-time error has been recorded.
func (r *Reporter) HadError() bool {
	return len(r.errors) > 0
}

// Errors returns every compile-time error recorded so far, in report
// order.
func (r *Reporter) Errors() []*CompileError {
	return r.errors
}

// Reset clears accumulated errors, used by the REPL to give each line its
// own error latch (spec.md §6: "clears the per-line error latch").
func (r *Reporter) Reset() {
	r.errors = nil
}

// PrintErrors writes every accumulated compile error to the reporter's
// writer in red, the way the teacher's main/repl color error text.
func (r *Reporter) PrintErrors() {
	red := color.New(color.FgRed)
	for _, e := range r.errors {
		red.Fprintln(r.Out, e.Error())
	}
}

// PrintRuntimeError writes a single runtime error in red.
func (r *Reporter) PrintRuntimeError(err *RuntimeError) {
	red := color.New(color.FgRed)
	red.Fprintln(r.Out, err.Error())
}
