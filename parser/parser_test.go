/*
File    : lox-interpreter/parser/parser_test.go
*/
package parser

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdvardsF/lox-interpreter/ast"
	"github.com/EdvardsF/lox-interpreter/diagnostics"
	"github.com/EdvardsF/lox-interpreter/scanner"
)

func parseSrc(t *testing.T, src string) ([]ast.Stmt, *diagnostics.Reporter) {
	t.Helper()
	report := diagnostics.NewReporter(&bytes.Buffer{})
	tokens := scanner.New(src, report).ScanTokens()
	stmts := New(tokens, report).Parse()
	return stmts, report
}

func TestParse_ExpressionStatement(t *testing.T) {
	stmts, report := parseSrc(t, "1 + 2 * 3;")
	require.False(t, report.HadError())
	require.Len(t, stmts, 1)

	exprStmt, ok := stmts[0].(*ast.ExpressionStmt)
	require.True(t, ok)
	bin, ok := exprStmt.Expression.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Operator.Lexeme)

	right, ok := bin.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "*", right.Operator.Lexeme)
}

func TestParse_VarDeclarationWithoutInitializer(t *testing.T) {
	stmts, report := parseSrc(t, "var a;")
	require.False(t, report.HadError())
	require.Len(t, stmts, 1)
	v, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Nil(t, v.Initializer)
}

func TestParse_ForLoopDesugarsToWhile(t *testing.T) {
	stmts, report := parseSrc(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.False(t, report.HadError())
	require.Len(t, stmts, 1)

	outer, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, outer.Statements, 2)

	_, isVar := outer.Statements[0].(*ast.VarStmt)
	assert.True(t, isVar)

	whileStmt, ok := outer.Statements[1].(*ast.WhileStmt)
	require.True(t, ok)

	body, ok := whileStmt.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, body.Statements, 2)
}

func TestParse_ForLoopWithoutConditionDefaultsToTrue(t *testing.T) {
	stmts, report := parseSrc(t, "for (;;) print 1;")
	require.False(t, report.HadError())
	whileStmt, ok := stmts[0].(*ast.WhileStmt)
	require.True(t, ok)
	lit, ok := whileStmt.Condition.(*ast.LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestParse_ClassWithSuperclassAndMethods(t *testing.T) {
	stmts, report := parseSrc(t, `
		class Base {
			greet() { print "hi"; }
		}
		class Derived < Base {
			init() {}
		}
	`)
	require.False(t, report.HadError())
	require.Len(t, stmts, 2)

	derived, ok := stmts[1].(*ast.ClassStmt)
	require.True(t, ok)
	require.NotNil(t, derived.Superclass)
	assert.Equal(t, "Base", derived.Superclass.Name.Lexeme)
	require.Len(t, derived.Methods, 1)
	assert.Equal(t, "init", derived.Methods[0].Name.Lexeme)
}

func TestParse_InvalidAssignmentTargetReportsError(t *testing.T) {
	_, report := parseSrc(t, "1 + 2 = 3;")
	assert.True(t, report.HadError())
	assert.Contains(t, report.Errors()[0].Message, "Invalid assignment target")
}

func TestParse_MissingSemicolonReportsErrorAndRecovers(t *testing.T) {
	stmts, report := parseSrc(t, "var a = 1\nvar b = 2;")
	assert.True(t, report.HadError())
	// Recovery should still find the second declaration.
	found := false
	for _, s := range stmts {
		if v, ok := s.(*ast.VarStmt); ok && v.Name.Lexeme == "b" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParse_CallWithTooManyArgumentsReportsNonFatalError(t *testing.T) {
	var args bytes.Buffer
	for i := 0; i < 256; i++ {
		if i > 0 {
			args.WriteString(", ")
		}
		args.WriteString("1")
	}
	_, report := parseSrc(t, "f("+args.String()+");")
	assert.True(t, report.HadError())
	assert.Contains(t, report.Errors()[0].Message, "255 arguments")
}
