package jsonhelpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oastranslator/orderedmap"
)

func TestExtractExtensions_CollectsXPrefixedKeys(t *testing.T) {
	m := orderedmap.New[any](3)
	m.Set("title", "Pet Store")
	m.Set("x-ot-name", "petstore")
	m.Set("x-ot-additional-properties-name", "extra")

	extra := ExtractExtensions(m)
	require.NotNil(t, extra)
	assert.Equal(t, "petstore", extra["x-ot-name"])
	assert.Equal(t, "extra", extra["x-ot-additional-properties-name"])
	_, hasTitle := extra["title"]
	assert.False(t, hasTitle)
}

func TestExtractExtensions_NoExtensionsReturnsNil(t *testing.T) {
	m := orderedmap.New[any](1)
	m.Set("title", "Pet Store")
	assert.Nil(t, ExtractExtensions(m))
}

func TestDecodeExtension_DecodesIntoDst(t *testing.T) {
	extras := map[string]any{"x-ot-target-parameters": map[string]any{"lang": "go"}}

	var dst struct {
		Lang string `json:"lang"`
	}
	found, err := DecodeExtension(extras, "x-ot-target-parameters", &dst)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "go", dst.Lang)
}

func TestDecodeExtension_MissingKeyNotFound(t *testing.T) {
	extras := map[string]any{}
	var dst any
	found, err := DecodeExtension(extras, "x-ot-target-parameters", &dst)
	require.NoError(t, err)
	assert.False(t, found)
}
