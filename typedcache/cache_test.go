package typedcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type widget struct{ Name string }

func TestGetOrInsert_ProducesOnce(t *testing.T) {
	c := New()
	calls := 0
	produce := func() (*widget, error) {
		calls++
		return &widget{Name: "a"}, nil
	}

	v1, err := GetOrInsert(c, "#/components/schemas/Widget", produce)
	assert.NoError(t, err)
	v2, err := GetOrInsert(c, "#/components/schemas/Widget", produce)
	assert.NoError(t, err)

	assert.Same(t, v1, v2)
	assert.Equal(t, 1, calls)
}

func TestGetOrInsert_DistinctTypesSameURI(t *testing.T) {
	c := New()

	_, err := GetOrInsert(c, "#/x", func() (*widget, error) { return &widget{Name: "w"}, nil })
	assert.NoError(t, err)

	type other struct{ X int }
	o, err := GetOrInsert(c, "#/x", func() (*other, error) { return &other{X: 1}, nil })
	assert.NoError(t, err)
	assert.Equal(t, 1, o.X)
}

func TestClear_RemovesEntries(t *testing.T) {
	c := New()
	calls := 0
	produce := func() (*widget, error) {
		calls++
		return &widget{Name: "a"}, nil
	}

	_, _ = GetOrInsert(c, "#/x", produce)
	c.Clear()
	_, _ = GetOrInsert(c, "#/x", produce)

	assert.Equal(t, 2, calls)
}
