/*
File    : lox-interpreter/object/instance.go
*/

package object

import (
	"fmt"

	"github.com/EdvardsF/lox-interpreter/diagnostics"
	"github.com/EdvardsF/lox-interpreter/token"
)

// Instance is a runtime object created by calling a Class: a bag of
// fields plus a pointer back to the class that defines its methods,
// grounded on original_source's LoxInstance.
type Instance struct {
	Class  *Class
	Fields map[string]interface{}
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]interface{})}
}

func (i *Instance) String() string { return fmt.Sprintf("<instance of %s>", i.Class.Name) }

// Get resolves a property access: fields shadow methods, and a method
// found on the class is bound to this instance before being returned
// (spec.md §4.6). An unknown property is a runtime error.
func (i *Instance) Get(name token.Token) (interface{}, error) {
	if v, ok := i.Fields[name.Lexeme]; ok {
		return v, nil
	}
	if method := i.Class.FindMethod(name.Lexeme); method != nil {
		return method.Bind(i), nil
	}
	return nil, diagnostics.NewRuntimeError(name.Line, name.Lexeme, "Undefined property '%s'.", name.Lexeme)
}

// Set always defines/overwrites a field; Lox has no fixed schema for
// instances, so this never errors.
func (i *Instance) Set(name token.Token, value interface{}) {
	i.Fields[name.Lexeme] = value
}
