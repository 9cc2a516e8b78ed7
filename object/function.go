/*
File    : lox-interpreter/object/function.go
*/

package object

import (
	"fmt"

	"github.com/EdvardsF/lox-interpreter/ast"
	"github.com/EdvardsF/lox-interpreter/environment"
)

// Function is a user-defined Lox function or method, grounded on the
// teacher's function/function.go: a declaration plus the closure
// environment captured at definition time. IsInitializer marks `init`
// methods, which always return `this` regardless of their return
// statement (spec.md §4.6).
type Function struct {
	Declaration   *ast.FunctionStmt
	Closure       *environment.Environment
	IsInitializer bool
}

func NewFunction(decl *ast.FunctionStmt, closure *environment.Environment, isInitializer bool) *Function {
	return &Function{Declaration: decl, Closure: closure, IsInitializer: isInitializer}
}

func (f *Function) Arity() int { return len(f.Declaration.Params) }

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

// Call runs the function body in a fresh environment enclosed by its
// closure, with parameters bound to the supplied arguments. A `return`
// statement unwinds via the Return sentinel; initializers ignore any
// returned value and always yield `this`.
func (f *Function) Call(interp Interpreter, args []interface{}) (interface{}, error) {
	env := environment.NewEnclosed(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := interp.ExecuteBlock(f.Declaration.Body, env)
	if err != nil {
		if ret, ok := err.(*Return); ok {
			if f.IsInitializer {
				return f.Closure.GetAt(0, "this"), nil
			}
			return ret.Value, nil
		}
		return nil, err
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

// Bind returns a copy of f whose closure additionally defines "this" as
// instance, used when a method is looked up off an instance
// (spec.md §4.6's method-binding rule, original_source's Function.bind).
func (f *Function) Bind(instance *Instance) *Function {
	env := environment.NewEnclosed(f.Closure)
	env.Define("this", instance)
	return NewFunction(f.Declaration, env, f.IsInitializer)
}
