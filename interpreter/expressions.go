/*
File    : lox-interpreter/interpreter/expressions.go
*/

package interpreter

import (
	"github.com/EdvardsF/lox-interpreter/ast"
	"github.com/EdvardsF/lox-interpreter/diagnostics"
	"github.com/EdvardsF/lox-interpreter/object"
	"github.com/EdvardsF/lox-interpreter/token"
)

func (i *Interpreter) runtimeErrorAt(line int, where, format string, args ...interface{}) error {
	return diagnostics.NewRuntimeError(line, where, format, args...)
}

func (i *Interpreter) evaluate(expr ast.Expr) (interface{}, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return e.Value, nil

	case *ast.GroupingExpr:
		return i.evaluate(e.Expression)

	case *ast.VariableExpr:
		return i.lookupVariable(e.Name, e)

	case *ast.AssignExpr:
		value, err := i.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := i.Locals[e]; ok {
			i.env.AssignAt(distance, e.Name, value)
		} else if err := i.globals.Assign(e.Name, value); err != nil {
			return nil, err
		}
		return value, nil

	case *ast.UnaryExpr:
		return i.evalUnary(e)

	case *ast.BinaryExpr:
		return i.evalBinary(e)

	case *ast.LogicalExpr:
		return i.evalLogical(e)

	case *ast.CallExpr:
		return i.evalCall(e)

	case *ast.GetExpr:
		return i.evalGet(e)

	case *ast.SetExpr:
		return i.evalSet(e)

	case *ast.ThisExpr:
		return i.lookupVariable(e.Keyword, e)

	case *ast.SuperExpr:
		return i.evalSuper(e)
	}
	return nil, nil
}

func (i *Interpreter) evalUnary(e *ast.UnaryExpr) (interface{}, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, i.runtimeErrorAt(e.Operator.Line, e.Operator.Lexeme, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return !object.IsTruthy(right), nil
	}
	return nil, nil
}

func (i *Interpreter) evalLogical(e *ast.LogicalExpr) (interface{}, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == token.OR {
		if object.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !object.IsTruthy(left) {
			return left, nil
		}
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) evalBinary(e *ast.BinaryExpr) (interface{}, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.MINUS:
		l, r, err := i.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case token.SLASH:
		l, r, err := i.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l / r, nil
	case token.STAR:
		l, r, err := i.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case token.PLUS:
		if lf, ok := left.(float64); ok {
			if rf, ok := right.(float64); ok {
				return lf + rf, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, i.runtimeErrorAt(e.Operator.Line, e.Operator.Lexeme,
			"Operands must be two numbers or two strings.")
	case token.GREATER:
		l, r, err := i.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l > r, nil
	case token.GREATER_EQUAL:
		l, r, err := i.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l >= r, nil
	case token.LESS:
		l, r, err := i.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l < r, nil
	case token.LESS_EQUAL:
		l, r, err := i.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l <= r, nil
	case token.BANG_EQUAL:
		return !object.IsEqual(left, right), nil
	case token.EQUAL_EQUAL:
		return object.IsEqual(left, right), nil
	}
	return nil, nil
}

func (i *Interpreter) numberOperands(op token.Token, left, right interface{}) (float64, float64, error) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, i.runtimeErrorAt(op.Line, op.Lexeme, "Operands must be numbers.")
	}
	return l, r, nil
}

func (i *Interpreter) evalGet(e *ast.GetExpr) (interface{}, error) {
	obj, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*object.Instance)
	if !ok {
		return nil, i.runtimeErrorAt(e.Name.Line, e.Name.Lexeme, "Only instances have properties.")
	}
	return instance.Get(e.Name)
}

func (i *Interpreter) evalSet(e *ast.SetExpr) (interface{}, error) {
	obj, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*object.Instance)
	if !ok {
		return nil, i.runtimeErrorAt(e.Name.Line, e.Name.Lexeme, "Only instances have fields.")
	}
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name, value)
	return value, nil
}

func (i *Interpreter) evalSuper(e *ast.SuperExpr) (interface{}, error) {
	distance := i.Locals[e]
	superclass, _ := i.env.GetAt(distance, "super").(*object.Class)
	instance, _ := i.env.GetAt(distance-1, "this").(*object.Instance)

	method := superclass.FindMethod(e.Method.Lexeme)
	if method == nil {
		return nil, i.runtimeErrorAt(e.Method.Line, e.Method.Lexeme, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
