package visitor

import (
	"github.com/erraggy/oastranslator/callstack"
	"github.com/erraggy/oastranslator/model"
	"github.com/erraggy/oastranslator/orderedmap"
	"github.com/erraggy/oastranslator/scriptpos"
	"github.com/erraggy/oastranslator/scriptrt"
	"github.com/erraggy/oastranslator/specdoc"
)

// visitSchemaRef dereferences ref per reference discipline and visits the
// resolved schema; every $ref-able Schema field in the tree goes through
// this one helper.
func (e *Engine) visitSchemaRef(stack callstack.Stack, ref model.Reference[model.Schema]) error {
	return withRef(e, stack, ref, posVisitSchemaReferenceStart, posVisitSchemaReferenceEnd, specdoc.DecodeSchemaNode, e.visitSchema)
}

func schemaPayload(s *model.Schema) map[string]any {
	payload := map[string]any{
		"title":       s.Title,
		"description": s.Description,
		"nullable":    s.Nullable,
		"readOnly":    s.ReadOnly,
		"writeOnly":   s.WriteOnly,
		"deprecated":  s.Deprecated,
		"enum":        s.Enum,
		"const":       s.Const,
		"format":      s.Format,
		"kind":        s.Kind.String(),
	}
	// x-ot-name and x-ot-additional-properties-name pass through
	// verbatim; the engine never interprets them itself.
	payload["name"] = s.Extra["x-ot-name"]
	payload["additionalPropertiesName"] = s.Extra["x-ot-additional-properties-name"]
	return payload
}

// visitSchema walks a single resolved schema: discriminator, external
// docs, example, default, then the kind-specific body.
func (e *Engine) visitSchema(stack callstack.Stack, s *model.Schema) error {
	payload := schemaPayload(s)
	child, action, err := e.start(stack, posVisitSchemaStart, payload)
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		if s.Discriminator != nil {
			if err := e.leaf(child, posVisitDiscriminator, map[string]any{
				"propertyName": s.Discriminator.PropertyName,
				"mapping":      s.Discriminator.Mapping,
			}); err != nil {
				return err
			}
		}
		if s.ExternalDocs != nil {
			if err := e.leaf(child, posVisitExternalDocs, externalDocsPayload(s.ExternalDocs)); err != nil {
				return err
			}
		}
		if s.Example != nil {
			if err := e.leaf(child, posVisitGenericExample, map[string]any{"value": s.Example}); err != nil {
				return err
			}
		}
		if s.Default != nil {
			if err := e.leaf(child, posVisitDefault, map[string]any{"value": s.Default}); err != nil {
				return err
			}
		}
		if err := e.visitSchemaBody(child, s); err != nil {
			return err
		}
	}
	return e.end(child, posVisitSchemaEnd, payload)
}

func (e *Engine) visitSchemaBody(stack callstack.Stack, s *model.Schema) error {
	switch s.Kind {
	case model.KindObject:
		return e.visitObjectSchema(stack, s.Object)
	case model.KindArray:
		return e.visitArraySchema(stack, s.Array)
	case model.KindString:
		return e.leaf(stack, posVisitStringProperty, stringSchemaPayload(s.String))
	case model.KindNumber:
		return e.leaf(stack, posVisitNumberProperty, numberSchemaPayload(s.Number))
	case model.KindInteger:
		return e.leaf(stack, posVisitIntegerProperty, integerSchemaPayload(s.Integer))
	case model.KindBoolean:
		return e.leaf(stack, posVisitBooleanProperty, map[string]any{})
	case model.KindOneOf:
		return e.visitSchemaUnion(stack, posVisitOneOfStart, posVisitOneOfEnd, s.OneOf)
	case model.KindAllOf:
		return e.visitSchemaUnion(stack, posVisitAllOfStart, posVisitAllOfEnd, s.AllOf)
	case model.KindAnyOf:
		return e.visitSchemaUnion(stack, posVisitAnyOfStart, posVisitAnyOfEnd, s.AnyOf)
	case model.KindNot:
		return e.visitSchemaNot(stack, s.Not)
	default:
		return e.visitAnySchema(stack)
	}
}

func (e *Engine) visitAnySchema(stack callstack.Stack) error {
	child, _, err := e.start(stack, posVisitAnySchemaStart, map[string]any{})
	if err != nil {
		return err
	}
	return e.end(child, posVisitAnySchemaEnd, map[string]any{})
}

func stringSchemaPayload(s *model.StringSchema) map[string]any {
	if s == nil {
		return map[string]any{}
	}
	return map[string]any{"minLength": s.MinLength, "maxLength": s.MaxLength, "pattern": s.Pattern}
}

func numberSchemaPayload(n *model.NumberSchema) map[string]any {
	if n == nil {
		return map[string]any{}
	}
	return map[string]any{
		"minimum": n.Minimum, "maximum": n.Maximum,
		"exclusiveMinimum": n.ExclusiveMinimum, "exclusiveMaximum": n.ExclusiveMaximum,
		"multipleOf": n.MultipleOf,
	}
}

func integerSchemaPayload(i *model.IntegerSchema) map[string]any {
	if i == nil {
		return map[string]any{}
	}
	return map[string]any{
		"minimum": i.Minimum, "maximum": i.Maximum,
		"exclusiveMinimum": i.ExclusiveMinimum, "exclusiveMaximum": i.ExclusiveMaximum,
		"multipleOf": i.MultipleOf,
	}
}

func (e *Engine) visitObjectSchema(stack callstack.Stack, obj *model.ObjectSchema) error {
	payload := map[string]any{
		"required":      obj.Required,
		"minProperties": obj.MinProperties,
		"maxProperties": obj.MaxProperties,
	}
	child, action, err := e.start(stack, posVisitObjectStart, payload)
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		if err := e.visitObjectProperties(child, obj.Properties); err != nil {
			return err
		}
		if err := e.visitAdditionalProperties(child, obj.AdditionalProperties); err != nil {
			return err
		}
	}
	return e.end(child, posVisitObjectEnd, payload)
}

func (e *Engine) visitObjectProperties(stack callstack.Stack, props *orderedmap.Map[model.Reference[model.Schema]]) error {
	if props.Len() == 0 {
		return nil
	}
	child, action, err := e.start(stack, posVisitObjectPropertiesStart, map[string]any{"count": props.Len()})
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		var visitErr error
		props.Each(func(name string, ref model.Reference[model.Schema]) bool {
			visitErr = withRef(e, child, ref, posVisitObjectPropertyReferenceStart, posVisitObjectPropertyReferenceEnd, specdoc.DecodeSchemaNode, func(s callstack.Stack, schema *model.Schema) error {
				return e.visitObjectProperty(s, name, schema)
			})
			return visitErr == nil
		})
		if visitErr != nil {
			return visitErr
		}
	}
	return e.end(child, posVisitObjectPropertiesEnd, map[string]any{"count": props.Len()})
}

func (e *Engine) visitObjectProperty(stack callstack.Stack, name string, schema *model.Schema) error {
	payload := map[string]any{"name": name}
	child, action, err := e.start(stack, posVisitObjectPropertyStart, payload)
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		if err := e.visitSchema(child, schema); err != nil {
			return err
		}
	}
	return e.end(child, posVisitObjectPropertyEnd, payload)
}

func (e *Engine) visitAdditionalProperties(stack callstack.Stack, ap *model.AdditionalProperties) error {
	if ap == nil {
		return nil
	}
	if ap.Any != nil {
		return e.leaf(stack, posVisitAdditionalPropertiesAny, map[string]any{"value": *ap.Any})
	}
	if ap.Schema == nil {
		return nil
	}
	return withRef(e, stack, *ap.Schema, posVisitSchemaReferenceStart, posVisitSchemaReferenceEnd, specdoc.DecodeSchemaNode, func(s callstack.Stack, schema *model.Schema) error {
		child, action, err := e.start(s, posVisitAdditionalPropertiesStart, map[string]any{})
		if err != nil {
			return err
		}
		if action != scriptrt.ActionSkipChildren {
			if err := e.visitSchema(child, schema); err != nil {
				return err
			}
		}
		return e.end(child, posVisitAdditionalPropertiesEnd, map[string]any{})
	})
}

func (e *Engine) visitArraySchema(stack callstack.Stack, arr *model.ArraySchema) error {
	payload := map[string]any{"minItems": arr.MinItems, "maxItems": arr.MaxItems, "uniqueItems": arr.UniqueItems}
	child, action, err := e.start(stack, posVisitArrayPropertyStart, payload)
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren && arr.Items != nil {
		if err := e.visitSchemaRef(child, *arr.Items); err != nil {
			return err
		}
	}
	return e.end(child, posVisitArrayPropertyEnd, payload)
}

func (e *Engine) visitSchemaUnion(stack callstack.Stack, start, end scriptpos.Position, members []model.Reference[model.Schema]) error {
	child, action, err := e.start(stack, start, map[string]any{"count": len(members)})
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		for _, m := range members {
			if err := e.visitSchemaRef(child, m); err != nil {
				return err
			}
		}
	}
	return e.end(child, end, map[string]any{"count": len(members)})
}

func (e *Engine) visitSchemaNot(stack callstack.Stack, not *model.Reference[model.Schema]) error {
	if not == nil {
		return nil
	}
	child, action, err := e.start(stack, posVisitPropertyNotStart, map[string]any{})
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		if err := e.visitSchemaRef(child, *not); err != nil {
			return err
		}
	}
	return e.end(child, posVisitPropertyNotEnd, map[string]any{})
}
