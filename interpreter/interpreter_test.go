/*
File    : lox-interpreter/interpreter/interpreter_test.go
*/
package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdvardsF/lox-interpreter/diagnostics"
	"github.com/EdvardsF/lox-interpreter/parser"
	"github.com/EdvardsF/lox-interpreter/resolver"
	"github.com/EdvardsF/lox-interpreter/scanner"
)

// runProgram compiles and evaluates src, capturing everything printed
// with the `print` statement, one element per call.
func runProgram(t *testing.T, src string) []string {
	t.Helper()

	errBuf := &bytes.Buffer{}
	report := diagnostics.NewReporter(errBuf)

	tokens := scanner.New(src, report).ScanTokens()
	stmts := parser.New(tokens, report).Parse()
	require.False(t, report.HadError(), "unexpected parse errors: %v", report.Errors())

	res := resolver.New(report)
	res.Resolve(stmts)
	require.False(t, report.HadError(), "unexpected resolve errors: %v", report.Errors())

	outBuf := &bytes.Buffer{}
	interp := New(report, res.Locals, false)
	interp.Stdout = outBuf

	err := interp.Interpret(stmts)
	require.NoError(t, err, "unexpected runtime error: %s", errBuf.String())

	out := strings.TrimRight(outBuf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestEndToEnd_ArithmeticAndPrint(t *testing.T) {
	lines := runProgram(t, `print (1 + 2) * 3; print "a" + "b";`)
	assert.Equal(t, []string{"9", "ab"}, lines)
}

func TestEndToEnd_ClosureCapturesByReference(t *testing.T) {
	lines := runProgram(t, `
		fun makeCounter() { var i = 0; fun count() { i = i + 1; print i; } return count; }
		var c = makeCounter(); c(); c(); c();
	`)
	assert.Equal(t, []string{"1", "2", "3"}, lines)
}

func TestEndToEnd_ResolverDistinguishesShadowing(t *testing.T) {
	lines := runProgram(t, `
		var a = "global"; { fun show() { print a; } show(); var a = "local"; show(); }
	`)
	assert.Equal(t, []string{"global", "global"}, lines)
}

func TestEndToEnd_ClassMethodThisAndInit(t *testing.T) {
	lines := runProgram(t, `
		class Box { init(v) { this.v = v; } get() { return this.v; } }
		var b = Box(42); print b.get();
	`)
	assert.Equal(t, []string{"42"}, lines)
}

func TestEndToEnd_InheritanceAndSuper(t *testing.T) {
	lines := runProgram(t, `
		class A { hi() { print "A"; } }
		class B < A { hi() { super.hi(); print "B"; } }
		B().hi();
	`)
	assert.Equal(t, []string{"A", "B"}, lines)
}

func TestEndToEnd_LogicalShortCircuitReturnsOperandValue(t *testing.T) {
	lines := runProgram(t, `print nil or "x"; print 1 and 2;`)
	assert.Equal(t, []string{"x", "2"}, lines)
}

func TestDivisionByZeroYieldsIEEEResult(t *testing.T) {
	lines := runProgram(t, `print 1 / 0;`)
	assert.Equal(t, []string{"+Inf"}, lines)
}

func TestComparingDifferentKindsWithEqualsIsFalseWithoutError(t *testing.T) {
	lines := runProgram(t, `print 1 == "1"; print nil == false;`)
	assert.Equal(t, []string{"false", "false"}, lines)
}

func TestSuperclassMustEvaluateToClass(t *testing.T) {
	errBuf := &bytes.Buffer{}
	report := diagnostics.NewReporter(errBuf)
	src := `
		var NotAClass = 1;
		class Oops < NotAClass {}
	`
	tokens := scanner.New(src, report).ScanTokens()
	stmts := parser.New(tokens, report).Parse()
	require.False(t, report.HadError())

	res := resolver.New(report)
	res.Resolve(stmts)
	require.False(t, report.HadError())

	interp := New(report, res.Locals, false)
	err := interp.Interpret(stmts)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Superclass must be a class")
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	errBuf := &bytes.Buffer{}
	report := diagnostics.NewReporter(errBuf)
	src := `print missing;`
	tokens := scanner.New(src, report).ScanTokens()
	stmts := parser.New(tokens, report).Parse()
	require.False(t, report.HadError())

	res := resolver.New(report)
	res.Resolve(stmts)
	require.False(t, report.HadError())

	interp := New(report, res.Locals, false)
	err := interp.Interpret(stmts)
	assert.Error(t, err)
}

