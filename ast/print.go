/*
File    : lox-interpreter/ast/print.go
*/

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders a statement list as a parenthesized s-expression dump,
// one top-level form per statement. It is the Go-idiomatic replacement
// for the teacher's PrintingVisitor: a function over the tagged node
// types dispatching with a type switch instead of a visitor interface
// implemented by every node (see the package doc in ast.go).
func Print(stmts []Stmt) string {
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString(printStmt(s))
		b.WriteByte('\n')
	}
	return b.String()
}

func printStmt(s Stmt) string {
	switch n := s.(type) {
	case *ExpressionStmt:
		return parenthesize("expr", n.Expression)
	case *PrintStmt:
		return parenthesize("print", n.Expression)
	case *VarStmt:
		if n.Initializer == nil {
			return fmt.Sprintf("(var %s)", n.Name.Lexeme)
		}
		return parenthesize("var "+n.Name.Lexeme, n.Initializer)
	case *BlockStmt:
		parts := make([]string, len(n.Statements))
		for i, st := range n.Statements {
			parts[i] = printStmt(st)
		}
		return "(block " + strings.Join(parts, " ") + ")"
	case *IfStmt:
		if n.Else == nil {
			return fmt.Sprintf("(if %s %s)", printExpr(n.Condition), printStmt(n.Then))
		}
		return fmt.Sprintf("(if %s %s %s)", printExpr(n.Condition), printStmt(n.Then), printStmt(n.Else))
	case *WhileStmt:
		return fmt.Sprintf("(while %s %s)", printExpr(n.Condition), printStmt(n.Body))
	case *FunctionStmt:
		names := make([]string, len(n.Params))
		for i, p := range n.Params {
			names[i] = p.Lexeme
		}
		return fmt.Sprintf("(fun %s(%s) ...)", n.Name.Lexeme, strings.Join(names, " "))
	case *ReturnStmt:
		if n.Value == nil {
			return "(return)"
		}
		return parenthesize("return", n.Value)
	case *ClassStmt:
		if n.Superclass != nil {
			return fmt.Sprintf("(class %s < %s ...)", n.Name.Lexeme, n.Superclass.Name.Lexeme)
		}
		return fmt.Sprintf("(class %s ...)", n.Name.Lexeme)
	default:
		return "(?)"
	}
}

func printExpr(e Expr) string {
	switch n := e.(type) {
	case *LiteralExpr:
		return literalString(n.Value)
	case *GroupingExpr:
		return parenthesize("group", n.Expression)
	case *UnaryExpr:
		return parenthesize(n.Operator.Lexeme, n.Right)
	case *BinaryExpr:
		return parenthesize(n.Operator.Lexeme, n.Left, n.Right)
	case *LogicalExpr:
		return parenthesize(n.Operator.Lexeme, n.Left, n.Right)
	case *VariableExpr:
		return n.Name.Lexeme
	case *AssignExpr:
		return parenthesize("= "+n.Name.Lexeme, n.Value)
	case *CallExpr:
		parts := make([]string, len(n.Args))
		for i, a := range n.Args {
			parts[i] = printExpr(a)
		}
		return fmt.Sprintf("(call %s %s)", printExpr(n.Callee), strings.Join(parts, " "))
	case *GetExpr:
		return fmt.Sprintf("(get %s %s)", printExpr(n.Object), n.Name.Lexeme)
	case *SetExpr:
		return fmt.Sprintf("(set %s %s %s)", printExpr(n.Object), n.Name.Lexeme, printExpr(n.Value))
	case *ThisExpr:
		return "this"
	case *SuperExpr:
		return "(super " + n.Method.Lexeme + ")"
	default:
		return "?"
	}
}

func literalString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case string:
		return strconv.Quote(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(printExpr(e))
	}
	b.WriteByte(')')
	return b.String()
}
