package visitor

import (
	"github.com/erraggy/oastranslator/callstack"
	"github.com/erraggy/oastranslator/model"
	"github.com/erraggy/oastranslator/orderedmap"
	"github.com/erraggy/oastranslator/scriptrt"
	"github.com/erraggy/oastranslator/specdoc"
)

// visitComponents walks the components object's named maps in the order
// they're declared on model.Components: schemas, responses, parameters,
// examples, request bodies, headers, security schemes, links, callbacks.
func (e *Engine) visitComponents(stack callstack.Stack, c *model.Components) error {
	child, action, err := e.start(stack, posVisitComponentsStart, map[string]any{})
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		if err := e.visitSchemasMap(child, c.Schemas); err != nil {
			return err
		}
		if err := e.visitResponsesMap(child, c.Responses); err != nil {
			return err
		}
		if err := e.visitParametersMap(child, c.Parameters); err != nil {
			return err
		}
		if err := e.visitExamplesMap(child, c.Examples); err != nil {
			return err
		}
		if err := e.visitRequestBodiesMap(child, c.RequestBodies); err != nil {
			return err
		}
		if err := e.visitHeadersMap(child, c.Headers); err != nil {
			return err
		}
		if err := e.visitSecuritySchemesMap(child, c.SecuritySchemes); err != nil {
			return err
		}
		if err := e.visitLinksMap(child, c.Links); err != nil {
			return err
		}
		if err := e.visitCallbacksMap(child, c.Callbacks); err != nil {
			return err
		}
	}
	return e.end(child, posVisitComponentsEnd, map[string]any{})
}

func (e *Engine) visitSchemasMap(stack callstack.Stack, schemas *orderedmap.Map[model.Reference[model.Schema]]) error {
	if schemas.Len() == 0 {
		return nil
	}
	child, action, err := e.start(stack, posVisitSchemasStart, map[string]any{"count": schemas.Len()})
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		var visitErr error
		schemas.Each(func(name string, ref model.Reference[model.Schema]) bool {
			visitErr = withRef(e, child, ref, posVisitSchemaReferenceStart, posVisitSchemaReferenceEnd, specdoc.DecodeSchemaNode, func(s callstack.Stack, schema *model.Schema) error {
				return e.visitSchema(s, schema)
			})
			return visitErr == nil
		})
		if visitErr != nil {
			return visitErr
		}
	}
	return e.end(child, posVisitSchemasEnd, map[string]any{"count": schemas.Len()})
}
