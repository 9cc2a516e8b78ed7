/*
File    : lox-interpreter/object/object_test.go
*/
package object

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EdvardsF/lox-interpreter/ast"
	"github.com/EdvardsF/lox-interpreter/token"
)

func tokenNamed(name string) token.Token {
	return token.New(token.IDENTIFIER, name, nil, 1, 0, len(name))
}

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		value    interface{}
		expected bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{0.0, true},
		{"", true},
		{"false", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsTruthy(tt.value))
	}
}

func TestIsEqual(t *testing.T) {
	assert.True(t, IsEqual(nil, nil))
	assert.False(t, IsEqual(nil, 1.0))
	assert.True(t, IsEqual(1.0, 1.0))
	assert.False(t, IsEqual(1.0, 2.0))
	assert.True(t, IsEqual("a", "a"))
	assert.False(t, IsEqual("a", "b"))
}

func TestStringify(t *testing.T) {
	tests := []struct {
		value    interface{}
		expected string
	}{
		{nil, "nil"},
		{true, "true"},
		{false, "false"},
		{3.0, "3"},
		{3.25, "3.25"},
		{"hello", "hello"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Stringify(tt.value))
	}
}

func TestClassFindMethodFallsBackToSuperclass(t *testing.T) {
	base := NewClass("Base", nil, map[string]*Function{
		"greet": {},
	})
	derived := NewClass("Derived", base, map[string]*Function{})

	assert.NotNil(t, derived.FindMethod("greet"))
	assert.Nil(t, derived.FindMethod("missing"))
}

func TestClassArityMatchesInitializerParamCount(t *testing.T) {
	noInit := NewClass("NoInit", nil, map[string]*Function{})
	assert.Equal(t, 0, noInit.Arity())

	initDecl := &ast.FunctionStmt{Params: []token.Token{tokenNamed("a"), tokenNamed("b")}}
	withInit := NewClass("WithInit", nil, map[string]*Function{
		"init": NewFunction(initDecl, nil, true),
	})
	assert.Equal(t, 2, withInit.Arity())
}

func TestInstanceGetUnknownPropertyErrors(t *testing.T) {
	class := NewClass("Empty", nil, map[string]*Function{})
	instance := NewInstance(class)

	_, err := instance.Get(tokenNamed("missing"))
	assert.Error(t, err)
}

func TestInstanceSetThenGetField(t *testing.T) {
	class := NewClass("Empty", nil, map[string]*Function{})
	instance := NewInstance(class)

	instance.Set(tokenNamed("x"), 5.0)
	v, err := instance.Get(tokenNamed("x"))
	assert.NoError(t, err)
	assert.Equal(t, 5.0, v)
}
