package specdoc

import (
	"github.com/erraggy/oastranslator/internal/jsonhelpers"
	"github.com/erraggy/oastranslator/model"
	"github.com/erraggy/oastranslator/orderedmap"
)

// decodeSchemaRef decodes a schema, or a $ref string in its place. It
// never returns an error itself today, but keeps the error return so
// future schema validation (unknown type names, mutually exclusive
// keywords) has somewhere to surface without an API break.
func decodeSchemaRef(m *orderedmap.Map[any]) (model.Reference[model.Schema], error) {
	if ref, ok := getRef(m); ok {
		return model.FromRef[model.Schema](ref), nil
	}
	return model.FromItem(decodeSchema(m)), nil
}

func decodeSchema(m *orderedmap.Map[any]) *model.Schema {
	s := &model.Schema{
		Title:       getString(m, "title"),
		Description: getString(m, "description"),
		Nullable:    getBool(m, "nullable"),
		ReadOnly:    getBool(m, "readOnly"),
		WriteOnly:   getBool(m, "writeOnly"),
		Deprecated:  getBool(m, "deprecated"),
		Format:      getString(m, "format"),
	}
	if enum, ok := getSlice(m, "enum"); ok {
		s.Enum = enum
	}
	if c, ok := m.Get("const"); ok {
		s.Const = c
	}
	if d, ok := getMap(m, "discriminator"); ok {
		disc := &model.Discriminator{PropertyName: getString(d, "propertyName")}
		if mapping, ok := getMap(d, "mapping"); ok {
			disc.Mapping = make(map[string]string, mapping.Len())
			mapping.Each(func(k string, v any) bool {
				str, _ := v.(string)
				disc.Mapping[k] = str
				return true
			})
		}
		s.Discriminator = disc
	}
	if ed, ok := getMap(m, "externalDocs"); ok {
		s.ExternalDocs = decodeExternalDocs(ed)
	}
	if ex, ok := m.Get("example"); ok {
		s.Example = ex
	}
	if def, ok := m.Get("default"); ok {
		s.Default = def
	}
	if xml, ok := getMap(m, "xml"); ok {
		s.XML = &model.XML{
			Name:      getString(xml, "name"),
			Namespace: getString(xml, "namespace"),
			Prefix:    getString(xml, "prefix"),
			Attribute: getBool(xml, "attribute"),
			Wrapped:   getBool(xml, "wrapped"),
		}
	}

	switch {
	case hasSchemaList(m, "oneOf"):
		s.Kind = model.KindOneOf
		s.OneOf = decodeSchemaRefList(m, "oneOf")
	case hasSchemaList(m, "allOf"):
		s.Kind = model.KindAllOf
		s.AllOf = decodeSchemaRefList(m, "allOf")
	case hasSchemaList(m, "anyOf"):
		s.Kind = model.KindAnyOf
		s.AnyOf = decodeSchemaRefList(m, "anyOf")
	case func() bool { _, ok := getMap(m, "not"); return ok }():
		s.Kind = model.KindNot
		notMap, _ := getMap(m, "not")
		ref, _ := decodeSchemaRef(notMap)
		s.Not = &ref
	default:
		decodeSchemaByType(m, s)
	}
	s.Extra = jsonhelpers.ExtractExtensions(m)

	return s
}

func hasSchemaList(m *orderedmap.Map[any], key string) bool {
	_, ok := getSlice(m, key)
	return ok
}

func decodeSchemaRefList(m *orderedmap.Map[any], key string) []model.Reference[model.Schema] {
	items, _ := getSlice(m, key)
	refs := make([]model.Reference[model.Schema], 0, len(items))
	for _, it := range items {
		im, ok := asMap(it)
		if !ok {
			continue
		}
		ref, _ := decodeSchemaRef(im)
		refs = append(refs, ref)
	}
	return refs
}

func decodeSchemaByType(m *orderedmap.Map[any], s *model.Schema) {
	switch getString(m, "type") {
	case "object":
		s.Kind = model.KindObject
		s.Object = decodeObjectSchema(m)
	case "array":
		s.Kind = model.KindArray
		s.Array = decodeArraySchema(m)
	case "string":
		s.Kind = model.KindString
		s.String = &model.StringSchema{
			MinLength: intPtr(m, "minLength"),
			MaxLength: intPtr(m, "maxLength"),
			Pattern:   getString(m, "pattern"),
		}
	case "number":
		s.Kind = model.KindNumber
		s.Number = &model.NumberSchema{
			Minimum:    floatPtr(m, "minimum"),
			Maximum:    floatPtr(m, "maximum"),
			MultipleOf: floatPtr(m, "multipleOf"),
		}
	case "integer":
		s.Kind = model.KindInteger
		s.Integer = &model.IntegerSchema{
			Minimum:    int64Ptr(m, "minimum"),
			Maximum:    int64Ptr(m, "maximum"),
			MultipleOf: int64Ptr(m, "multipleOf"),
		}
	case "boolean":
		s.Kind = model.KindBoolean
		s.Boolean = &model.BooleanSchema{}
	default:
		s.Kind = model.KindAny
	}
}

func decodeObjectSchema(m *orderedmap.Map[any]) *model.ObjectSchema {
	obj := &model.ObjectSchema{
		MinProperties: intPtr(m, "minProperties"),
		MaxProperties: intPtr(m, "maxProperties"),
	}
	if req, ok := getSlice(m, "required"); ok {
		obj.Required = stringSlice(req)
	}
	if props, ok := getMap(m, "properties"); ok {
		obj.Properties = orderedmap.New[model.Reference[model.Schema]](props.Len())
		props.Each(func(key string, v any) bool {
			vm, ok := asMap(v)
			if !ok {
				return true
			}
			ref, _ := decodeSchemaRef(vm)
			obj.Properties.Set(key, ref)
			return true
		})
	}
	if ap, ok := m.Get("additionalProperties"); ok {
		switch v := ap.(type) {
		case bool:
			b := v
			obj.AdditionalProperties = &model.AdditionalProperties{Any: &b}
		case *orderedmap.Map[any]:
			ref, _ := decodeSchemaRef(v)
			obj.AdditionalProperties = &model.AdditionalProperties{Schema: &ref}
		}
	}
	return obj
}

func decodeArraySchema(m *orderedmap.Map[any]) *model.ArraySchema {
	arr := &model.ArraySchema{
		MinItems:    intPtr(m, "minItems"),
		MaxItems:    intPtr(m, "maxItems"),
		UniqueItems: getBool(m, "uniqueItems"),
	}
	if items, ok := getMap(m, "items"); ok {
		ref, _ := decodeSchemaRef(items)
		arr.Items = &ref
	}
	return arr
}

func intPtr(m *orderedmap.Map[any], key string) *int {
	v, ok := m.Get(key)
	if !ok {
		return nil
	}
	switch n := v.(type) {
	case int:
		return &n
	case int64:
		i := int(n)
		return &i
	case float64:
		i := int(n)
		return &i
	}
	return nil
}

func int64Ptr(m *orderedmap.Map[any], key string) *int64 {
	v, ok := m.Get(key)
	if !ok {
		return nil
	}
	switch n := v.(type) {
	case int64:
		return &n
	case int:
		i := int64(n)
		return &i
	case float64:
		i := int64(n)
		return &i
	}
	return nil
}

func floatPtr(m *orderedmap.Map[any], key string) *float64 {
	v, ok := m.Get(key)
	if !ok {
		return nil
	}
	switch n := v.(type) {
	case float64:
		return &n
	case int:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	}
	return nil
}
