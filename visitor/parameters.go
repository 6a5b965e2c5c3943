package visitor

import (
	"github.com/erraggy/oastranslator/callstack"
	"github.com/erraggy/oastranslator/model"
	"github.com/erraggy/oastranslator/orderedmap"
	"github.com/erraggy/oastranslator/scriptpos"
	"github.com/erraggy/oastranslator/scriptrt"
	"github.com/erraggy/oastranslator/specdoc"
)

func parameterPayload(name string, p *model.Parameter) map[string]any {
	return map[string]any{
		"name":            name,
		"in":              string(p.In),
		"description":     p.Description,
		"required":        p.Required,
		"deprecated":      p.Deprecated,
		"allowEmptyValue": p.AllowEmptyValue,
		"style":           p.Style,
		"explode":         p.Explode,
		"allowReserved":   p.AllowReserved,
	}
}

func parameterLocationPositions(in model.ParameterLocation) (start, end scriptpos.Position) {
	switch in {
	case model.ParameterLocationQuery:
		return posVisitQueryParameterStart, posVisitQueryParameterEnd
	case model.ParameterLocationHeader:
		return posVisitHeaderParameterStart, posVisitHeaderParameterEnd
	case model.ParameterLocationCookie:
		return posVisitCookieParameterStart, posVisitCookieParameterEnd
	default:
		return posVisitPathParameterStart, posVisitPathParameterEnd
	}
}

// visitParametersMap walks the named, reusable parameter definitions under
// components.parameters: each entry is fully decomposed through its
// location-specific bracket and the shared ParameterData bracket, since
// this is the canonical definition site scripts need the full shape of.
func (e *Engine) visitParametersMap(stack callstack.Stack, params *orderedmap.Map[model.Reference[model.Parameter]]) error {
	if params.Len() == 0 {
		return nil
	}
	child, action, err := e.start(stack, posVisitParametersStart, map[string]any{"count": params.Len()})
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		var visitErr error
		params.Each(func(name string, ref model.Reference[model.Parameter]) bool {
			visitErr = withRef(e, child, ref, posVisitParameterReferenceStart, posVisitParameterReferenceEnd, specdoc.DecodeParameterNode, func(s callstack.Stack, p *model.Parameter) error {
				return e.visitParameter(s, name, p)
			})
			return visitErr == nil
		})
		if visitErr != nil {
			return visitErr
		}
	}
	return e.end(child, posVisitParametersEnd, map[string]any{"count": params.Len()})
}

// visitGenericParameters walks an inline parameter list (operation.parameters
// or path-item.parameters): each entry fires the lightweight
// VisitGenericParameter leaf rather than the full location/data
// decomposition, since the full shape is already available wherever the
// parameter is actually defined (components.parameters, or the one-off
// inline object itself).
func (e *Engine) visitGenericParameters(stack callstack.Stack, params []model.Reference[model.Parameter]) error {
	if len(params) == 0 {
		return nil
	}
	child, action, err := e.start(stack, posVisitGenericParametersStart, map[string]any{"count": len(params)})
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		for _, ref := range params {
			if err := withRef(e, child, ref, posVisitParameterReferenceStart, posVisitParameterReferenceEnd, specdoc.DecodeParameterNode, func(s callstack.Stack, p *model.Parameter) error {
				return e.leaf(s, posVisitGenericParameter, parameterPayload(p.Name, p))
			}); err != nil {
				return err
			}
		}
	}
	return e.end(child, posVisitGenericParametersEnd, map[string]any{"count": len(params)})
}

func (e *Engine) visitParameter(stack callstack.Stack, name string, p *model.Parameter) error {
	payload := parameterPayload(name, p)
	start, end := parameterLocationPositions(p.In)
	child, action, err := e.start(stack, start, payload)
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		if err := e.visitParameterData(child, &p.ParameterData); err != nil {
			return err
		}
	}
	return e.end(child, end, payload)
}

func (e *Engine) visitParameterData(stack callstack.Stack, pd *model.ParameterData) error {
	payload := map[string]any{
		"description": pd.Description,
		"required":    pd.Required,
		"example":     pd.Example,
	}
	child, action, err := e.start(stack, posVisitParameterDataStart, payload)
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		if err := e.visitExamplesMap(child, pd.Examples); err != nil {
			return err
		}
		if err := e.visitParameterSchemaOrContent(child, pd.SchemaOrContent); err != nil {
			return err
		}
	}
	return e.end(child, posVisitParameterDataEnd, payload)
}

func (e *Engine) visitParameterSchemaOrContent(stack callstack.Stack, soc model.ParameterSchemaOrContent) error {
	child, action, err := e.start(stack, posVisitParameterSchemaOrContentStart, map[string]any{})
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		if soc.Schema != nil {
			if err := e.visitSchemaRef(child, *soc.Schema); err != nil {
				return err
			}
		} else if soc.Content != nil {
			if err := e.visitMediaTypesMap(child, soc.Content); err != nil {
				return err
			}
		}
	}
	return e.end(child, posVisitParameterSchemaOrContentEnd, map[string]any{})
}
