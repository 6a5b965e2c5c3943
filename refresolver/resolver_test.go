package refresolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oastranslator/model"
	"github.com/erraggy/oastranslator/specdoc"
	"github.com/erraggy/oastranslator/typedcache"
)

const spec = `
openapi: "3.0.3"
info:
  title: Widgets
  version: "1.0.0"
paths: {}
components:
  schemas:
    Widget:
      type: object
      properties:
        name:
          type: string
`

func TestResolve_LocalReference(t *testing.T) {
	base, err := specdoc.Parse("openapi.yml", []byte(spec))
	require.NoError(t, err)

	r := New(base, typedcache.New())

	widget, err := Resolve(r, "#/components/schemas/Widget", specdoc.DecodeSchemaNode)
	require.NoError(t, err)
	assert.Equal(t, model.KindObject, widget.Kind)
}

func TestResolve_MemoizesAcrossCalls(t *testing.T) {
	base, err := specdoc.Parse("openapi.yml", []byte(spec))
	require.NoError(t, err)

	r := New(base, typedcache.New())

	w1, err := Resolve(r, "#/components/schemas/Widget", specdoc.DecodeSchemaNode)
	require.NoError(t, err)
	w2, err := Resolve(r, "#/components/schemas/Widget", specdoc.DecodeSchemaNode)
	require.NoError(t, err)

	assert.Same(t, w1, w2)
}

func TestResolve_MissingReference(t *testing.T) {
	base, err := specdoc.Parse("openapi.yml", []byte(spec))
	require.NoError(t, err)

	r := New(base, typedcache.New())

	_, err = Resolve(r, "#/components/schemas/Missing", specdoc.DecodeSchemaNode)
	assert.Error(t, err)
}
