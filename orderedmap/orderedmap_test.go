package orderedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap_PreservesInsertionOrder(t *testing.T) {
	m := New[int](0)
	m.Set("zebra", 1)
	m.Set("apple", 2)
	m.Set("mango", 3)

	assert.Equal(t, []string{"zebra", "apple", "mango"}, m.Keys())
	assert.Equal(t, 3, m.Len())
}

func TestMap_UpdateKeepsPosition(t *testing.T) {
	m := New[string](0)
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("a", "updated")

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "updated", v)
}

func TestMap_EachStopsEarly(t *testing.T) {
	m := New[int](0)
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	var seen []string
	m.Each(func(key string, value int) bool {
		seen = append(seen, key)
		return key != "b"
	})

	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestMap_NilSafe(t *testing.T) {
	var m *Map[int]
	assert.Equal(t, 0, m.Len())
	_, ok := m.Get("x")
	assert.False(t, ok)
	assert.Nil(t, m.Keys())
}
