/*
File    : lox-interpreter/resolver/expressions.go
*/

package resolver

import (
	"github.com/EdvardsF/lox-interpreter/ast"
	"github.com/EdvardsF/lox-interpreter/diagnostics"
)

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if defined, ok := r.peek()[e.Name.Lexeme]; ok && !defined {
				r.report.ReportAt(diagnostics.PhaseResolve, e.Name.Line, e.Name.Lexeme,
					"Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)

	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)

	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}

	case *ast.GetExpr:
		r.resolveExpr(e.Object)

	case *ast.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.GroupingExpr:
		r.resolveExpr(e.Expression)

	case *ast.LiteralExpr:
		// nothing to resolve

	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)

	case *ast.ThisExpr:
		if r.currentClass == classNone {
			r.report.ReportAt(diagnostics.PhaseResolve, e.Keyword.Line, e.Keyword.Lexeme,
				"Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, e.Keyword)

	case *ast.SuperExpr:
		switch r.currentClass {
		case classNone:
			r.report.ReportAt(diagnostics.PhaseResolve, e.Keyword.Line, e.Keyword.Lexeme,
				"Can't use 'super' outside of a class.")
		case classClass:
			r.report.ReportAt(diagnostics.PhaseResolve, e.Keyword.Line, e.Keyword.Lexeme,
				"Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, e.Keyword)
	}
}
