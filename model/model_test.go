package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oastranslator/orderedmap"
)

func TestReference_RefVsItem(t *testing.T) {
	ref := FromRef[Schema]("#/components/schemas/Pet")
	assert.True(t, ref.IsRef())
	assert.Nil(t, ref.Item)

	inline := FromItem(&Schema{Kind: KindString})
	assert.False(t, inline.IsRef())
	assert.Equal(t, KindString, inline.Item.Kind)
}

func TestSchemaKind_String(t *testing.T) {
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "any", KindAny.String())
	assert.Equal(t, "oneOf", KindOneOf.String())
}

func TestComponents_SchemasPreserveOrder(t *testing.T) {
	schemas := orderedmap.New[Reference[Schema]](2)
	schemas.Set("Pet", FromItem(&Schema{Kind: KindObject}))
	schemas.Set("Error", FromItem(&Schema{Kind: KindObject}))

	c := &Components{Schemas: schemas}
	assert.Equal(t, []string{"Pet", "Error"}, c.Schemas.Keys())
}

func TestResponses_DefaultSeparateFromCodes(t *testing.T) {
	codes := orderedmap.New[Reference[Response]](1)
	codes.Set("404", FromItem(&Response{Description: "not found"}))
	def := FromItem(&Response{Description: "unexpected error"})

	r := &Responses{Default: &def, Codes: codes}
	assert.Equal(t, "unexpected error", r.Default.Item.Description)
	v, ok := r.Codes.Get("404")
	assert.True(t, ok)
	assert.Equal(t, "not found", v.Item.Description)
}
