/*
File    : lox-interpreter/object/class.go
*/

package object

// Class is a Lox class: a name, an optional superclass for single
// inheritance, and its own methods. Inherited methods are found by
// walking Superclass, grounded on the teacher's objects/struct.go
// struct-definition shape and original_source's LoxClass.find_method.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

func (c *Class) String() string { return c.Name }

// FindMethod looks up name on this class, falling back to the
// superclass chain.
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// Arity is the initializer's parameter count, or 0 if the class has no
// `init` method.
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call instantiates the class: allocate an Instance, then run `init`
// (bound to the new instance) against the constructor arguments, if one
// is defined.
func (c *Class) Call(interp Interpreter, args []interface{}) (interface{}, error) {
	instance := NewInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(instance).Call(interp, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
