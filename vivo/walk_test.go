package vivo

import (
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplace(t *testing.T) {
	t.Parallel()

	d := MustVivify(ref())
	b := d.At("b")

	d.Replace(0)

	assert.True(t, d.Equal(map[string]any{"a": 0, "b": map[string]any{"c": 0}, "d": map[string]any{"e": map[string]any{"f": 0}}}))
	assert.Same(t, b, d.At("b"))
	assert.Equal(t, []any{"a", "b", "d"}, d.Keys())
}

func TestReplace_Empty(t *testing.T) {
	t.Parallel()

	d := New()
	d.Replace(1)
	assert.True(t, d.Empty())

	d.At("a")
	d.Replace(1)
	assert.True(t, d.Equal(map[string]any{"a": map[string]any{}}))
}

func TestReplace_PlainMapIsLeaf(t *testing.T) {
	t.Parallel()

	plain := map[string]any{"x": 1}
	d := New()
	d.Set("a", plain)

	d.Replace("gone")

	assert.Equal(t, "gone", d.At("a"))
	assert.Equal(t, map[string]any{"x": 1}, plain)
}

func TestApply(t *testing.T) {
	t.Parallel()

	d := MustVivify(ref())

	require.NoError(t, d.Apply(double))

	assert.True(t, d.Equal(map[string]any{"a": 2, "b": map[string]any{"c": 4}, "d": map[string]any{"e": map[string]any{"f": 6}}}))
}

func TestApply_Order(t *testing.T) {
	t.Parallel()

	d := New()
	d.Set("z", 1)
	c, _ := d.Child("m", "n")
	c.Set("x", 2)
	c.Set("a", 3)
	d.Set("b", 4)

	var seen []any
	err := d.Apply(func(val any) (any, error) {
		seen = append(seen, val)
		return val, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3, 4}, seen)
}

func TestApply_Error(t *testing.T) {
	t.Parallel()

	var (
		errBoom = errors.New("boom")
		d       = MustVivify(map[string]any{"a": 1, "b": map[string]any{"c": 2, "d": 3}, "e": 4})
		calls   int
	)

	err := d.Apply(func(val any) (any, error) {
		calls++
		if val == 3 {
			return nil, errBoom
		}
		return val.(int) * 10, nil
	})

	assert.True(t, err == errBoom, "the error must not be wrapped")
	assert.Equal(t, 3, calls)
	assert.True(t, d.Equal(map[string]any{"a": 10, "b": map[string]any{"c": 20, "d": 3}, "e": 4}))
}

func TestApply_PlainMapIsLeaf(t *testing.T) {
	t.Parallel()

	plain := map[string]any{"x": 1}
	d := New()
	d.Set("a", plain)

	var got []any
	require.NoError(t, d.Apply(func(val any) (any, error) {
		got = append(got, val)
		return val, nil
	}))

	require.Len(t, got, 1)
	assert.Equal(t, plain, got[0])
}

func TestApply_CallCount(t *testing.T) {
	t.Parallel()

	faker := gofakeit.New(7)

	for i := 0; i < 50; i++ {
		tree, leaves := randomTree(faker, 5)
		d := MustVivify(tree)

		var calls int
		require.NoError(t, d.Apply(func(val any) (any, error) {
			calls++
			return double(val)
		}))

		assert.Equal(t, leaves, calls)
		assert.Len(t, d.Flatten(), leaves)
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	d := MustVivify(ref())

	d.Map(func(val any) any {
		return val.(int) + 1
	})

	assert.Equal(t, map[string]any{"a": 2, "b.c": 3, "d.e.f": 4}, d.Flatten())
}

func TestWalk_Empty(t *testing.T) {
	t.Parallel()

	d := New()

	require.NoError(t, d.Apply(func(any) (any, error) {
		return nil, errors.New("must not be called")
	}))
	assert.True(t, d.Empty())
}
