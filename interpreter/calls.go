/*
File    : lox-interpreter/interpreter/calls.go
*/

package interpreter

import (
	"github.com/EdvardsF/lox-interpreter/ast"
	"github.com/EdvardsF/lox-interpreter/object"
)

func (i *Interpreter) evalCall(e *ast.CallExpr) (interface{}, error) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]interface{}, len(e.Args))
	for idx, a := range e.Args {
		v, err := i.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	fn, ok := callee.(object.Callable)
	if !ok {
		return nil, i.runtimeErrorAt(e.Paren.Line, e.Paren.Lexeme, "Object is not callable.")
	}
	if len(args) != fn.Arity() {
		return nil, i.runtimeErrorAt(e.Paren.Line, e.Paren.Lexeme,
			"Expected %d arguments, but got %d.", fn.Arity(), len(args))
	}
	return fn.Call(i, args)
}
