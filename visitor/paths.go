package visitor

import (
	"github.com/erraggy/oastranslator/callstack"
	"github.com/erraggy/oastranslator/model"
	"github.com/erraggy/oastranslator/orderedmap"
	"github.com/erraggy/oastranslator/scriptpos"
	"github.com/erraggy/oastranslator/scriptrt"
	"github.com/erraggy/oastranslator/specdoc"
)

// visitPaths walks the paths map in source order; each entry is dereferenced
// per the reference discipline before visitPathItem sees it.
func (e *Engine) visitPaths(stack callstack.Stack, paths *orderedmap.Map[model.Reference[model.PathItem]]) error {
	if paths.Len() == 0 {
		return nil
	}
	child, action, err := e.start(stack, posVisitPathsStart, map[string]any{"count": paths.Len()})
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		var visitErr error
		paths.Each(func(path string, ref model.Reference[model.PathItem]) bool {
			visitErr = withRef(e, child, ref, posVisitPathItemReferenceStart, posVisitPathItemReferenceEnd, specdoc.DecodePathItemNode, func(s callstack.Stack, pi *model.PathItem) error {
				return e.visitPathItem(s, path, pi)
			})
			return visitErr == nil
		})
		if visitErr != nil {
			return visitErr
		}
	}
	return e.end(child, posVisitPathsEnd, map[string]any{"count": paths.Len()})
}

func (e *Engine) visitPathItem(stack callstack.Stack, path string, pi *model.PathItem) error {
	payload := map[string]any{"path": path, "summary": pi.Summary, "description": pi.Description}
	child, action, err := e.start(stack, posVisitPathItemStart, payload)
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		// Canonical operation order: trace, put, post, patch, options, head,
		// get, delete. Absent operations are skipped silently.
		ops := []struct {
			op         *model.Operation
			start, end scriptpos.Position
		}{
			{pi.Trace, posVisitTraceOperationStart, posVisitTraceOperationEnd},
			{pi.Put, posVisitPutOperationStart, posVisitPutOperationEnd},
			{pi.Post, posVisitPostOperationStart, posVisitPostOperationEnd},
			{pi.Patch, posVisitPatchOperationStart, posVisitPatchOperationEnd},
			{pi.Options, posVisitOptionsOperationStart, posVisitOptionsOperationEnd},
			{pi.Head, posVisitHeadOperationStart, posVisitHeadOperationEnd},
			{pi.Get, posVisitGetOperationStart, posVisitGetOperationEnd},
			{pi.Delete, posVisitDeleteOperationStart, posVisitDeleteOperationEnd},
		}
		for _, o := range ops {
			if o.op == nil {
				continue
			}
			if err := e.visitOperation(child, o.start, o.end, o.op); err != nil {
				return err
			}
		}
		if err := e.visitServers(child, pi.Servers); err != nil {
			return err
		}
		if err := e.visitGenericParameters(child, pi.Parameters); err != nil {
			return err
		}
	}
	return e.end(child, posVisitPathItemEnd, payload)
}

func operationPayload(op *model.Operation) map[string]any {
	return map[string]any{
		"tags":        op.Tags,
		"summary":     op.Summary,
		"description": op.Description,
		"operationId": op.OperationID,
		"deprecated":  op.Deprecated,
	}
}

// visitOperation walks a single HTTP-method operation in canonical child
// order: external_docs, parameters, request_body, responses, callbacks,
// security, servers.
func (e *Engine) visitOperation(stack callstack.Stack, start, end scriptpos.Position, op *model.Operation) error {
	payload := operationPayload(op)
	child, action, err := e.start(stack, start, payload)
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		if op.ExternalDocs != nil {
			if err := e.leaf(child, posVisitExternalDocs, externalDocsPayload(op.ExternalDocs)); err != nil {
				return err
			}
		}
		if err := e.visitGenericParameters(child, op.Parameters); err != nil {
			return err
		}
		if err := e.visitOperationRequestBody(child, op.RequestBody); err != nil {
			return err
		}
		if op.Responses != nil {
			if err := e.visitOperationResponses(child, op.Responses); err != nil {
				return err
			}
		}
		if err := e.visitCallbacksMap(child, op.Callbacks); err != nil {
			return err
		}
		if err := e.visitSecurityRequirements(child, op.Security); err != nil {
			return err
		}
		if err := e.visitServers(child, op.Servers); err != nil {
			return err
		}
	}
	return e.end(child, end, payload)
}

func requestBodyPayload(name string, rb *model.RequestBody) map[string]any {
	return map[string]any{"name": name, "description": rb.Description, "required": rb.Required}
}

// visitOperationRequestBody fires the lightweight VisitGenericRequestBody
// leaf for an operation's inline-or-referenced request body, mirroring
// visitGenericParameters: the full content/media-type decomposition lives
// at the components.requestBodies definition site, not at every call site.
func (e *Engine) visitOperationRequestBody(stack callstack.Stack, ref *model.Reference[model.RequestBody]) error {
	if ref == nil {
		return nil
	}
	return withRef(e, stack, *ref, posVisitRequestBodyReferenceStart, posVisitRequestBodyReferenceEnd, specdoc.DecodeRequestBodyNode, func(s callstack.Stack, rb *model.RequestBody) error {
		return e.leaf(s, posVisitGenericRequestBody, requestBodyPayload("", rb))
	})
}

// visitRequestBodiesMap walks components.requestBodies, fully decomposing
// each entry's media types.
func (e *Engine) visitRequestBodiesMap(stack callstack.Stack, bodies *orderedmap.Map[model.Reference[model.RequestBody]]) error {
	if bodies.Len() == 0 {
		return nil
	}
	child, action, err := e.start(stack, posVisitRequestBodiesStart, map[string]any{"count": bodies.Len()})
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		var visitErr error
		bodies.Each(func(name string, ref model.Reference[model.RequestBody]) bool {
			visitErr = withRef(e, child, ref, posVisitRequestBodyReferenceStart, posVisitRequestBodyReferenceEnd, specdoc.DecodeRequestBodyNode, func(s callstack.Stack, rb *model.RequestBody) error {
				return e.visitRequestBody(s, name, rb)
			})
			return visitErr == nil
		})
		if visitErr != nil {
			return visitErr
		}
	}
	return e.end(child, posVisitRequestBodiesEnd, map[string]any{"count": bodies.Len()})
}

func (e *Engine) visitRequestBody(stack callstack.Stack, name string, rb *model.RequestBody) error {
	payload := requestBodyPayload(name, rb)
	child, action, err := e.start(stack, posVisitRequestBodyStart, payload)
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		if err := e.visitMediaTypesMap(child, rb.Content); err != nil {
			return err
		}
	}
	return e.end(child, posVisitRequestBodyEnd, payload)
}

// visitOperationResponses walks an operation's Responses Object: default
// first, then explicit status codes in container order.
func (e *Engine) visitOperationResponses(stack callstack.Stack, resp *model.Responses) error {
	count := resp.Codes.Len()
	if resp.Default != nil {
		count++
	}
	child, action, err := e.start(stack, posVisitOperationResponsesStart, map[string]any{"count": count})
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		if resp.Default != nil {
			if err := withRef(e, child, *resp.Default, posVisitResponseReferenceStart, posVisitResponseReferenceEnd, specdoc.DecodeResponseNode, func(s callstack.Stack, r *model.Response) error {
				return e.visitResponse(s, "default", r)
			}); err != nil {
				return err
			}
		}
		var visitErr error
		resp.Codes.Each(func(code string, ref model.Reference[model.Response]) bool {
			visitErr = withRef(e, child, ref, posVisitResponseReferenceStart, posVisitResponseReferenceEnd, specdoc.DecodeResponseNode, func(s callstack.Stack, r *model.Response) error {
				return e.visitResponse(s, code, r)
			})
			return visitErr == nil
		})
		if visitErr != nil {
			return visitErr
		}
	}
	return e.end(child, posVisitOperationResponsesEnd, map[string]any{"count": count})
}

// visitResponsesMap walks components.responses, the named reusable
// response definitions.
func (e *Engine) visitResponsesMap(stack callstack.Stack, responses *orderedmap.Map[model.Reference[model.Response]]) error {
	if responses.Len() == 0 {
		return nil
	}
	child, action, err := e.start(stack, posVisitResponsesStart, map[string]any{"count": responses.Len()})
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		var visitErr error
		responses.Each(func(name string, ref model.Reference[model.Response]) bool {
			visitErr = withRef(e, child, ref, posVisitResponseReferenceStart, posVisitResponseReferenceEnd, specdoc.DecodeResponseNode, func(s callstack.Stack, r *model.Response) error {
				return e.visitResponse(s, name, r)
			})
			return visitErr == nil
		})
		if visitErr != nil {
			return visitErr
		}
	}
	return e.end(child, posVisitResponsesEnd, map[string]any{"count": responses.Len()})
}

func (e *Engine) visitResponse(stack callstack.Stack, name string, r *model.Response) error {
	payload := map[string]any{"name": name, "description": r.Description}
	child, action, err := e.start(stack, posVisitResponseStart, payload)
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		if err := e.visitHeadersMap(child, r.Headers); err != nil {
			return err
		}
		if err := e.visitMediaTypesMap(child, r.Content); err != nil {
			return err
		}
		if err := e.visitLinksMap(child, r.Links); err != nil {
			return err
		}
	}
	return e.end(child, posVisitResponseEnd, payload)
}
