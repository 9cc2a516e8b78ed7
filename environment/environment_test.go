/*
File    : lox-interpreter/environment/environment_test.go
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdvardsF/lox-interpreter/token"
)

func nameToken(lexeme string) token.Token {
	return token.New(token.IDENTIFIER, lexeme, nil, 1, 0, len(lexeme))
}

func TestDefineAndGet(t *testing.T) {
	env := New()
	env.Define("a", 1.0)

	v, err := env.Get(nameToken("a"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestGetUndefinedVariableErrors(t *testing.T) {
	env := New()
	_, err := env.Get(nameToken("missing"))
	assert.Error(t, err)
}

func TestAssignWalksToEnclosingScope(t *testing.T) {
	global := New()
	global.Define("a", 1.0)
	inner := NewEnclosed(global)

	err := inner.Assign(nameToken("a"), 2.0)
	require.NoError(t, err)

	v, err := global.Get(nameToken("a"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestAssignToUndefinedVariableErrors(t *testing.T) {
	env := New()
	err := env.Assign(nameToken("missing"), 1.0)
	assert.Error(t, err)
}

func TestDefineShadowsEnclosingScope(t *testing.T) {
	global := New()
	global.Define("a", 1.0)
	inner := NewEnclosed(global)
	inner.Define("a", 2.0)

	v, err := inner.Get(nameToken("a"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	outerV, err := global.Get(nameToken("a"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, outerV)
}

func TestGetAtAndAssignAtWalkExactDistance(t *testing.T) {
	global := New()
	scopeA := NewEnclosed(global)
	scopeB := NewEnclosed(scopeA)

	scopeA.Define("x", 10.0)

	assert.Equal(t, 10.0, scopeB.GetAt(1, "x"))

	scopeB.AssignAt(1, nameToken("x"), 20.0)
	assert.Equal(t, 20.0, scopeA.GetAt(0, "x"))
}
