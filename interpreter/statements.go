/*
File    : lox-interpreter/interpreter/statements.go
*/

package interpreter

import (
	"fmt"

	"github.com/EdvardsF/lox-interpreter/ast"
	"github.com/EdvardsF/lox-interpreter/environment"
	"github.com/EdvardsF/lox-interpreter/object"
)

func (i *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := i.evaluate(s.Expression)
		return err

	case *ast.PrintStmt:
		v, err := i.evaluate(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.Stdout, object.Stringify(v))
		return nil

	case *ast.VarStmt:
		var value interface{}
		if s.Initializer != nil {
			v, err := i.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		i.env.Define(s.Name.Lexeme, value)
		return nil

	case *ast.BlockStmt:
		return i.ExecuteBlock(s.Statements, environment.NewEnclosed(i.env))

	case *ast.IfStmt:
		cond, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if object.IsTruthy(cond) {
			return i.execute(s.Then)
		} else if s.Else != nil {
			return i.execute(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := i.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !object.IsTruthy(cond) {
				return nil
			}
			if err := i.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := object.NewFunction(s, i.env, false)
		i.env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var value interface{}
		if s.Value != nil {
			v, err := i.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &object.Return{Value: value}

	case *ast.ClassStmt:
		return i.executeClass(s)
	}
	return nil
}

// ExecuteBlock runs stmts against env, restoring the interpreter's
// previous environment afterward even if a statement returns an error
// (including the *object.Return sentinel unwinding a function call).
func (i *Interpreter) ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) error {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, s := range stmts {
		if err := i.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) executeClass(s *ast.ClassStmt) error {
	var superclass *object.Class
	if s.Superclass != nil {
		sc, err := i.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		class, ok := sc.(*object.Class)
		if !ok {
			return i.runtimeErrorAt(s.Superclass.Name.Line, s.Superclass.Name.Lexeme, "Superclass must be a class.")
		}
		superclass = class
	}

	i.env.Define(s.Name.Lexeme, nil)

	classEnv := i.env
	if s.Superclass != nil {
		classEnv = environment.NewEnclosed(i.env)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*object.Function)
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = object.NewFunction(m, classEnv, m.Name.Lexeme == "init")
	}

	class := object.NewClass(s.Name.Lexeme, superclass, methods)
	return i.env.Assign(s.Name, class)
}
