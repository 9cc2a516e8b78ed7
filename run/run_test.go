/*
File    : lox-interpreter/run/run_test.go
*/
package run

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EdvardsF/lox-interpreter/ast"
	"github.com/EdvardsF/lox-interpreter/diagnostics"
	"github.com/EdvardsF/lox-interpreter/interpreter"
)

func TestSource_SuccessfulProgramReturnsStatusOK(t *testing.T) {
	out := &bytes.Buffer{}
	report := diagnostics.NewReporter(out)
	interp := interpreter.New(report, make(map[ast.Expr]int), false)
	interp.Stdout = out

	status := Source(`print 1 + 1;`, report, interp)
	assert.Equal(t, StatusOK, status)
	assert.Contains(t, out.String(), "2")
}

func TestSource_CompileErrorReturnsStatusCompileError(t *testing.T) {
	out := &bytes.Buffer{}
	report := diagnostics.NewReporter(out)
	interp := interpreter.New(report, make(map[ast.Expr]int), false)

	status := Source(`print 1 +;`, report, interp)
	assert.Equal(t, StatusCompileError, status)
}

func TestSource_RuntimeErrorReturnsStatusRuntimeError(t *testing.T) {
	out := &bytes.Buffer{}
	report := diagnostics.NewReporter(out)
	interp := interpreter.New(report, make(map[ast.Expr]int), false)

	status := Source(`print 1 + "a";`, report, interp)
	assert.Equal(t, StatusRuntimeError, status)
}

func TestSource_PersistsStateAcrossCallsLikeAReplSession(t *testing.T) {
	out := &bytes.Buffer{}
	report := diagnostics.NewReporter(out)
	interp := interpreter.New(report, make(map[ast.Expr]int), false)
	interp.Stdout = out

	report.Reset()
	assert.Equal(t, StatusOK, Source(`var x = 10;`, report, interp))

	report.Reset()
	assert.Equal(t, StatusOK, Source(`print x + 1;`, report, interp))
	assert.Contains(t, out.String(), "11")
}

func TestScan_ReturnsEOFTerminatedStream(t *testing.T) {
	report := diagnostics.NewReporter(&bytes.Buffer{})
	tokens := Scan("1 + 1", report)
	assert.NotEmpty(t, tokens)
	assert.Equal(t, "EOF", string(tokens[len(tokens)-1].Type))
}
