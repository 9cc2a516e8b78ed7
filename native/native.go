/*
File    : lox-interpreter/native/native.go
*/

// Package native provides the builtin functions injected into the
// global environment before a program runs, grounded on the teacher's
// objects/builtins.go Builtin{Name, Callback} pattern. original_source
// ships only clock(); this port keeps that as the one default builtin
// and adds len/str/num behind InstallExtras so a host (cmd/lox,
// tests) can opt into the larger set without it being mandatory
// language surface (spec.md's Non-goals section never mentions a
// standard library, so anything beyond clock() is supplemental).
package native

import (
	"errors"
	"strconv"
	"time"

	"github.com/EdvardsF/lox-interpreter/environment"
	"github.com/EdvardsF/lox-interpreter/object"
)

// Function wraps a native Go function as a Lox Callable.
type Function struct {
	name  string
	arity int
	fn    func(args []interface{}) (interface{}, error)
}

func (f *Function) Arity() int { return f.arity }

func (f *Function) String() string { return "<native fn " + f.name + ">" }

func (f *Function) Call(_ object.Interpreter, args []interface{}) (interface{}, error) {
	return f.fn(args)
}

// New builds a native.Function; name and arity are used for Arity() and
// String() only, the real dispatch is fn.
func New(name string, arity int, fn func(args []interface{}) (interface{}, error)) *Function {
	return &Function{name: name, arity: arity, fn: fn}
}

// InstallDefaults defines clock() in env, matching original_source's
// builtin surface exactly.
func InstallDefaults(env *environment.Environment) {
	env.Define("clock", New("clock", 0, clock))
}

// InstallExtras additionally defines len, str and num, the
// SPEC_FULL.md-supplemented builtins beyond the base language.
func InstallExtras(env *environment.Environment) {
	env.Define("len", New("len", 1, lengthOf))
	env.Define("str", New("str", 1, toStr))
	env.Define("num", New("num", 1, toNum))
}

func clock(_ []interface{}) (interface{}, error) {
	return float64(time.Now().UnixNano()) / float64(time.Second), nil
}

func lengthOf(args []interface{}) (interface{}, error) {
	if s, ok := args[0].(string); ok {
		return float64(len(s)), nil
	}
	return nil, errors.New("len: argument must be a string")
}

func toStr(args []interface{}) (interface{}, error) {
	return object.Stringify(args[0]), nil
}

func toNum(args []interface{}) (interface{}, error) {
	s, ok := args[0].(string)
	if !ok {
		return nil, errors.New("num: argument must be a string")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.New("num: argument is not a valid number")
	}
	return v, nil
}
