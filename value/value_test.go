package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTruthy(t *testing.T) {
	assert.False(t, IsTruthy(nil))
	assert.False(t, IsTruthy(false))
	assert.True(t, IsTruthy(true))
	assert.True(t, IsTruthy(0.0))
	assert.True(t, IsTruthy(""))
}

func TestIsEqual(t *testing.T) {
	assert.True(t, IsEqual(nil, nil))
	assert.False(t, IsEqual(nil, false))
	assert.True(t, IsEqual(1.0, 1.0))
	assert.False(t, IsEqual(1.0, "1"))
	assert.True(t, IsEqual("a", "a"))
	nan := math.NaN()
	assert.True(t, IsEqual(nan, nan))
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "nil", Stringify(nil))
	assert.Equal(t, "true", Stringify(true))
	assert.Equal(t, "3", Stringify(3.0))
	assert.Equal(t, "3.5", Stringify(3.5))
	assert.Equal(t, "hello", Stringify("hello"))
}

func TestClassFindMethod(t *testing.T) {
	base := NewClass("Base", nil, map[string]*Function{"greet": {}})
	child := NewClass("Child", base, map[string]*Function{})

	_, ok := child.FindMethod("greet")
	assert.True(t, ok)
	_, ok = child.FindMethod("missing")
	assert.False(t, ok)
}

func TestInstanceGetSet(t *testing.T) {
	class := NewClass("Point", nil, map[string]*Function{})
	inst := NewInstance(class)
	inst.Set("x", 1.0)

	v, ok := inst.Get("x")
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)

	_, ok = inst.Get("y")
	assert.False(t, ok)
}
