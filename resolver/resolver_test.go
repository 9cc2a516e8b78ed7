/*
File    : lox-interpreter/resolver/resolver_test.go
*/
package resolver

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdvardsF/lox-interpreter/ast"
	"github.com/EdvardsF/lox-interpreter/diagnostics"
	"github.com/EdvardsF/lox-interpreter/parser"
	"github.com/EdvardsF/lox-interpreter/scanner"
)

func resolveSrc(t *testing.T, src string) (*Resolver, *diagnostics.Reporter, []ast.Stmt) {
	t.Helper()
	report := diagnostics.NewReporter(&bytes.Buffer{})
	tokens := scanner.New(src, report).ScanTokens()
	stmts := parser.New(tokens, report).Parse()
	require.False(t, report.HadError())

	r := New(report)
	r.Resolve(stmts)
	return r, report, stmts
}

func TestResolve_LocalVariableDistance(t *testing.T) {
	r, report, stmts := resolveSrc(t, `
		var a = "global";
		{
			var a = "local";
			print a;
		}
	`)
	require.False(t, report.HadError())

	block := stmts[1].(*ast.BlockStmt)
	printStmt := block.Statements[1].(*ast.PrintStmt)
	varExpr := printStmt.Expression.(*ast.VariableExpr)

	distance, ok := r.Locals[varExpr]
	require.True(t, ok)
	assert.Equal(t, 0, distance)
}

func TestResolve_GlobalReferenceHasNoLocalsEntry(t *testing.T) {
	r, report, stmts := resolveSrc(t, `
		var a = "global";
		print a;
	`)
	require.False(t, report.HadError())

	printStmt := stmts[1].(*ast.PrintStmt)
	varExpr := printStmt.Expression.(*ast.VariableExpr)

	_, ok := r.Locals[varExpr]
	assert.False(t, ok)
}

func TestResolve_ReadingVariableInOwnInitializerIsAnError(t *testing.T) {
	_, report, _ := resolveSrc(t, `
		var a = "outer";
		{
			var a = a;
		}
	`)
	assert.True(t, report.HadError())
	assert.Contains(t, report.Errors()[0].Message, "own initializer")
}

func TestResolve_RedeclaringLocalInSameScopeIsAnError(t *testing.T) {
	_, report, _ := resolveSrc(t, `
		{
			var a = 1;
			var a = 2;
		}
	`)
	assert.True(t, report.HadError())
	assert.Contains(t, report.Errors()[0].Message, "Already a variable")
}

func TestResolve_ReturnOutsideFunctionIsAnError(t *testing.T) {
	_, report, _ := resolveSrc(t, `return 1;`)
	assert.True(t, report.HadError())
	assert.Contains(t, report.Errors()[0].Message, "top-level code")
}

func TestResolve_ReturnValueFromInitializerIsAnError(t *testing.T) {
	_, report, _ := resolveSrc(t, `
		class Foo {
			init() {
				return 1;
			}
		}
	`)
	assert.True(t, report.HadError())
	assert.Contains(t, report.Errors()[0].Message, "initializer")
}

func TestResolve_ThisOutsideClassIsAnError(t *testing.T) {
	_, report, _ := resolveSrc(t, `print this;`)
	assert.True(t, report.HadError())
	assert.Contains(t, report.Errors()[0].Message, "'this' outside")
}

func TestResolve_ClassInheritingFromItselfIsAnError(t *testing.T) {
	_, report, _ := resolveSrc(t, `class Oops < Oops {}`)
	assert.True(t, report.HadError())
	assert.Contains(t, report.Errors()[0].Message, "inherit from itself")
}

func TestResolve_SuperWithoutSuperclassIsAnError(t *testing.T) {
	_, report, _ := resolveSrc(t, `
		class Foo {
			bar() { super.bar(); }
		}
	`)
	assert.True(t, report.HadError())
	assert.Contains(t, report.Errors()[0].Message, "no superclass")
}
