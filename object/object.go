/*
File    : lox-interpreter/object/object.go
*/

// Package object defines the runtime value representations tree-walking
// evaluation produces and consumes, grounded on the teacher's
// objects/objects.go. The teacher modeled each Lox-equivalent type
// (Nil, Boolean, Number, String) as its own Go struct implementing a
// shared Object interface; this port instead represents Lox values
// directly as Go's nil, bool, float64 and string (spec.md §4.5 says
// "represent Lox values using the host language's native types where
// convenient" and a type switch over four built-in Go kinds is more
// idiomatic than four one-field wrapper structs). Callable, Function,
// Class and Instance below keep the teacher's struct-per-kind shape
// because those genuinely need their own state and behavior.
package object

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/EdvardsF/lox-interpreter/ast"
	"github.com/EdvardsF/lox-interpreter/environment"
)

// Interpreter is the slice of the interpreter that Callable
// implementations need. Declaring it here (rather than importing
// package interpreter) avoids an import cycle: interpreter imports
// object, so object cannot import interpreter back.
type Interpreter interface {
	ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) error
	Globals() *environment.Environment
}

// Callable is anything that can appear on the left of a call expression:
// user-defined functions and methods, classes (calling a class
// instantiates it), and native functions.
type Callable interface {
	Arity() int
	Call(interp Interpreter, args []interface{}) (interface{}, error)
	String() string
}

// Return is the sentinel used to unwind a function call when a `return`
// statement executes. It implements error so it can travel up through
// the same (value, error) returns every statement execution uses,
// rather than introducing a second, panic-based control channel
// (spec.md §9 lists this as one of two acceptable designs for return;
// this file picks the error-typed one because it keeps control flow
// visible in every function signature instead of hidden in panic/recover).
type Return struct {
	Value interface{}
}

func (r *Return) Error() string { return "return" }

// IsTruthy implements Lox truthiness: nil and false are falsey,
// everything else (including 0 and "") is truthy.
func IsTruthy(v interface{}) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// IsEqual implements Lox's `==`: nil equals only nil, numbers and
// strings compare by value, everything else (including callables and
// instances) compares by identity via Go's native equality.
func IsEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// Stringify renders a Lox value the way `print` and string
// concatenation do. Number formatting follows original_source's
// behavior: format with Go's shortest round-trip representation, then
// strip a trailing ".0" so whole numbers print as "3" rather than "3.0".
func Stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(val)
	case float64:
		s := strconv.FormatFloat(val, 'f', -1, 64)
		if strings.HasSuffix(s, ".0") {
			s = strings.TrimSuffix(s, ".0")
		}
		return s
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
