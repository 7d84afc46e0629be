package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSome(t *testing.T) {
	t.Parallel()

	opt := Some(42)
	assert.True(t, opt.NonEmpty())
	assert.False(t, opt.Empty())

	v, ok := opt.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestNone(t *testing.T) {
	t.Parallel()

	opt := None[int]()
	assert.True(t, opt.Empty())
	assert.False(t, opt.NonEmpty())

	v, ok := opt.Get()
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestZeroValueIsEmpty(t *testing.T) {
	t.Parallel()

	var opt Value[string]

	assert.True(t, opt.Empty())
}

func TestGetOrPanic(t *testing.T) {
	t.Parallel()

	t.Run("Some", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "hello", Some("hello").GetOrPanic())
	})

	t.Run("None panics", func(t *testing.T) {
		t.Parallel()

		require.Panics(t, func() {
			None[string]().GetOrPanic()
		})
	})
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Some(1).GetOrElse(9))
	assert.Equal(t, 9, None[int]().GetOrElse(9))
}

func TestGetOrElseFunc(t *testing.T) {
	t.Parallel()

	called := false
	fallback := func() int {
		called = true

		return 9
	}

	assert.Equal(t, 1, Some(1).GetOrElseFunc(fallback))
	assert.False(t, called, "fallback must not run when a value is present")

	assert.Equal(t, 9, None[int]().GetOrElseFunc(fallback))
	assert.True(t, called)
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(42)", Some(42).String())
	assert.Equal(t, "None", None[int]().String())
}

func TestMap(t *testing.T) {
	t.Parallel()

	doubled := Map(Some(21), func(n int) int { return n * 2 })
	v, ok := doubled.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	mapped := Map(None[int](), func(n int) string { return "x" })
	assert.True(t, mapped.Empty())
}
