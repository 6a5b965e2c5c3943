package jsonpointer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oastranslator/orderedmap"
)

func TestNavigate_MapAndArray(t *testing.T) {
	schemas := orderedmap.New[any](1)
	schemas.Set("Pet", "pet-schema")

	components := orderedmap.New[any](1)
	components.Set("schemas", schemas)

	root := orderedmap.New[any](1)
	root.Set("components", components)
	root.Set("tags", []any{"a", "b"})

	v, err := Navigate(root, "/components/schemas/Pet")
	assert.NoError(t, err)
	assert.Equal(t, "pet-schema", v)

	v, err = Navigate(root, "/tags/1")
	assert.NoError(t, err)
	assert.Equal(t, "b", v)
}

func TestNavigate_EscapedSegment(t *testing.T) {
	paths := orderedmap.New[any](1)
	paths.Set("/pets/{id}", "path-item")
	root := orderedmap.New[any](1)
	root.Set("paths", paths)

	v, err := Navigate(root, "/paths/~1pets~1{id}")
	assert.NoError(t, err)
	assert.Equal(t, "path-item", v)
}

func TestNavigate_EmptyPointerReturnsRoot(t *testing.T) {
	root := orderedmap.New[any](0)
	v, err := Navigate(root, "")
	assert.NoError(t, err)
	assert.Same(t, root, v)
}

func TestNavigate_MissingKey(t *testing.T) {
	root := orderedmap.New[any](0)
	_, err := Navigate(root, "/missing")
	assert.Error(t, err)
}
