package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironment_DefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("a", 1.0)

	v, ok := env.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)

	_, ok = env.Get("missing")
	assert.False(t, ok)
}

func TestEnvironment_GetWalksParentChain(t *testing.T) {
	global := New(nil)
	global.Define("a", "outer")
	child := New(global)

	v, ok := child.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "outer", v)
}

func TestEnvironment_AssignWritesWhereDefined(t *testing.T) {
	global := New(nil)
	global.Define("a", 1.0)
	child := New(global)

	assert.True(t, child.Assign("a", 2.0))
	v, _ := global.Get("a")
	assert.Equal(t, 2.0, v)

	assert.False(t, child.Assign("nope", 3.0))
}

func TestEnvironment_GetAtIndexesExactDepth(t *testing.T) {
	global := New(nil)
	global.Define("a", "global")
	middle := New(global)
	middle.Define("a", "middle")
	inner := New(middle)

	assert.Equal(t, "middle", inner.GetAt(1, "a"))
	assert.Equal(t, "global", inner.GetAt(2, "a"))
}

func TestEnvironment_AssignAtSkipsShadowingScopes(t *testing.T) {
	global := New(nil)
	global.Define("a", "global")
	inner := New(global)
	inner.Define("a", "inner")

	inner.AssignAt(1, "a", "changed")

	v, _ := global.Get("a")
	assert.Equal(t, "changed", v)
	assert.Equal(t, "inner", inner.GetAt(0, "a"))
}
