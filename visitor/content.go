package visitor

import (
	"github.com/erraggy/oastranslator/callstack"
	"github.com/erraggy/oastranslator/model"
	"github.com/erraggy/oastranslator/orderedmap"
	"github.com/erraggy/oastranslator/scriptrt"
	"github.com/erraggy/oastranslator/specdoc"
)

// visitHeadersMap walks a response's, encoding's, or components' headers
// map, shared by every context a Header can appear in.
func (e *Engine) visitHeadersMap(stack callstack.Stack, headers *orderedmap.Map[model.Reference[model.Header]]) error {
	if headers.Len() == 0 {
		return nil
	}
	child, action, err := e.start(stack, posVisitHeadersStart, map[string]any{"count": headers.Len()})
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		var visitErr error
		headers.Each(func(name string, ref model.Reference[model.Header]) bool {
			visitErr = withRef(e, child, ref, posVisitHeaderReferenceStart, posVisitHeaderReferenceEnd, specdoc.DecodeHeaderNode, func(s callstack.Stack, h *model.Header) error {
				return e.visitHeader(s, name, h)
			})
			return visitErr == nil
		})
		if visitErr != nil {
			return visitErr
		}
	}
	return e.end(child, posVisitHeadersEnd, map[string]any{"count": headers.Len()})
}

func (e *Engine) visitHeader(stack callstack.Stack, name string, h *model.Header) error {
	payload := map[string]any{"name": name, "description": h.Description, "required": h.Required, "deprecated": h.Deprecated}
	child, action, err := e.start(stack, posVisitHeaderStart, payload)
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		if err := e.visitParameterData(child, &h.ParameterData); err != nil {
			return err
		}
	}
	return e.end(child, posVisitHeaderEnd, payload)
}

// visitMediaTypesMap walks a content map (request body, response, or
// parameter content), one MediaType per registered media type string.
func (e *Engine) visitMediaTypesMap(stack callstack.Stack, mts *orderedmap.Map[*model.MediaType]) error {
	if mts.Len() == 0 {
		return nil
	}
	child, action, err := e.start(stack, posVisitMediaTypesStart, map[string]any{"count": mts.Len()})
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		var visitErr error
		mts.Each(func(name string, mt *model.MediaType) bool {
			visitErr = e.visitMediaType(child, name, mt)
			return visitErr == nil
		})
		if visitErr != nil {
			return visitErr
		}
	}
	return e.end(child, posVisitMediaTypesEnd, map[string]any{"count": mts.Len()})
}

func (e *Engine) visitMediaType(stack callstack.Stack, name string, mt *model.MediaType) error {
	payload := map[string]any{"name": name, "example": mt.Example}
	child, action, err := e.start(stack, posVisitMediaTypeStart, payload)
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		if mt.Schema != nil {
			if err := e.visitSchemaRef(child, *mt.Schema); err != nil {
				return err
			}
		}
		if err := e.visitExamplesMap(child, mt.Examples); err != nil {
			return err
		}
		if err := e.visitEncodingsMap(child, mt.Encoding); err != nil {
			return err
		}
	}
	return e.end(child, posVisitMediaTypeEnd, payload)
}

func (e *Engine) visitEncodingsMap(stack callstack.Stack, encs *orderedmap.Map[*model.Encoding]) error {
	if encs.Len() == 0 {
		return nil
	}
	child, action, err := e.start(stack, posVisitEncodingsStart, map[string]any{"count": encs.Len()})
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		var visitErr error
		encs.Each(func(name string, enc *model.Encoding) bool {
			visitErr = e.visitEncoding(child, name, enc)
			return visitErr == nil
		})
		if visitErr != nil {
			return visitErr
		}
	}
	return e.end(child, posVisitEncodingsEnd, map[string]any{"count": encs.Len()})
}

func (e *Engine) visitEncoding(stack callstack.Stack, name string, enc *model.Encoding) error {
	payload := map[string]any{
		"name":          name,
		"contentType":   enc.ContentType,
		"style":         enc.Style,
		"explode":       enc.Explode,
		"allowReserved": enc.AllowReserved,
	}
	child, action, err := e.start(stack, posVisitEncodingStart, payload)
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		if err := e.visitHeadersMap(child, enc.Headers); err != nil {
			return err
		}
	}
	return e.end(child, posVisitEncodingEnd, payload)
}

// visitExamplesMap walks an examples map; each example is a bracket with no
// children of its own, since an Example Object carries no further nested
// nodes the traversal needs to recurse into.
func (e *Engine) visitExamplesMap(stack callstack.Stack, exs *orderedmap.Map[model.Reference[model.Example]]) error {
	if exs.Len() == 0 {
		return nil
	}
	child, action, err := e.start(stack, posVisitExamplesStart, map[string]any{"count": exs.Len()})
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		var visitErr error
		exs.Each(func(name string, ref model.Reference[model.Example]) bool {
			visitErr = withRef(e, child, ref, posVisitExampleReferenceStart, posVisitExampleReferenceEnd, specdoc.DecodeExampleNode, func(s callstack.Stack, ex *model.Example) error {
				return e.visitExample(s, name, ex)
			})
			return visitErr == nil
		})
		if visitErr != nil {
			return visitErr
		}
	}
	return e.end(child, posVisitExamplesEnd, map[string]any{"count": exs.Len()})
}

func (e *Engine) visitExample(stack callstack.Stack, name string, ex *model.Example) error {
	payload := map[string]any{
		"name":          name,
		"summary":       ex.Summary,
		"description":   ex.Description,
		"value":         ex.Value,
		"externalValue": ex.ExternalValue,
	}
	child, _, err := e.start(stack, posVisitExampleStart, payload)
	if err != nil {
		return err
	}
	return e.end(child, posVisitExampleEnd, payload)
}

// visitLinksMap walks a response's (or components') links map.
func (e *Engine) visitLinksMap(stack callstack.Stack, links *orderedmap.Map[model.Reference[model.Link]]) error {
	if links.Len() == 0 {
		return nil
	}
	child, action, err := e.start(stack, posVisitLinksStart, map[string]any{"count": links.Len()})
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		var visitErr error
		links.Each(func(name string, ref model.Reference[model.Link]) bool {
			visitErr = withRef(e, child, ref, posVisitLinkReferenceStart, posVisitLinkReferenceEnd, specdoc.DecodeLinkNode, func(s callstack.Stack, l *model.Link) error {
				return e.visitLink(s, name, l)
			})
			return visitErr == nil
		})
		if visitErr != nil {
			return visitErr
		}
	}
	return e.end(child, posVisitLinksEnd, map[string]any{"count": links.Len()})
}

func (e *Engine) visitLink(stack callstack.Stack, name string, l *model.Link) error {
	payload := map[string]any{
		"name":         name,
		"operationRef": l.OperationRef,
		"operationId":  l.OperationID,
		"description":  l.Description,
	}
	child, _, err := e.start(stack, posVisitLinkStart, payload)
	if err != nil {
		return err
	}
	return e.end(child, posVisitLinkEnd, payload)
}

// visitCallbacksMap walks a callbacks map, used both for
// components.callbacks and an operation's own callbacks.
func (e *Engine) visitCallbacksMap(stack callstack.Stack, cbs *orderedmap.Map[model.Reference[model.Callback]]) error {
	if cbs.Len() == 0 {
		return nil
	}
	child, action, err := e.start(stack, posVisitAsyncCallbacksStart, map[string]any{"count": cbs.Len()})
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		var visitErr error
		cbs.Each(func(name string, ref model.Reference[model.Callback]) bool {
			visitErr = withRef(e, child, ref, posVisitAsyncCallbackReferenceStart, posVisitAsyncCallbackReferenceEnd, specdoc.DecodeCallbackNode, func(s callstack.Stack, cb *model.Callback) error {
				return e.visitCallback(s, name, cb)
			})
			return visitErr == nil
		})
		if visitErr != nil {
			return visitErr
		}
	}
	return e.end(child, posVisitAsyncCallbacksEnd, map[string]any{"count": cbs.Len()})
}

func (e *Engine) visitCallback(stack callstack.Stack, name string, cb *model.Callback) error {
	payload := map[string]any{"name": name}
	child, action, err := e.start(stack, posVisitAsyncCallbackStart, payload)
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren && cb.Expressions != nil {
		var visitErr error
		cb.Expressions.Each(func(expr string, ref model.Reference[model.PathItem]) bool {
			visitErr = withRef(e, child, ref, posVisitPathItemReferenceStart, posVisitPathItemReferenceEnd, specdoc.DecodePathItemNode, func(s callstack.Stack, pi *model.PathItem) error {
				return e.visitPathItem(s, expr, pi)
			})
			return visitErr == nil
		})
		if visitErr != nil {
			return visitErr
		}
	}
	return e.end(child, posVisitAsyncCallbackEnd, payload)
}
