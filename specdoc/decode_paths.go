package specdoc

import (
	"github.com/erraggy/oastranslator/model"
	"github.com/erraggy/oastranslator/orderedmap"
)

func decodePaths(m *orderedmap.Map[any]) *orderedmap.Map[model.Reference[model.PathItem]] {
	paths := orderedmap.New[model.Reference[model.PathItem]](m.Len())
	m.Each(func(key string, v any) bool {
		vm, ok := asMap(v)
		if !ok {
			return true
		}
		paths.Set(key, decodePathItemRef(vm))
		return true
	})
	return paths
}

func decodePathItemRef(m *orderedmap.Map[any]) model.Reference[model.PathItem] {
	if ref, ok := getRef(m); ok {
		return model.FromRef[model.PathItem](ref)
	}
	return model.FromItem(decodePathItem(m))
}

func decodePathItem(m *orderedmap.Map[any]) *model.PathItem {
	pi := &model.PathItem{
		Summary:     getString(m, "summary"),
		Description: getString(m, "description"),
	}
	assign := func(method string) *model.Operation {
		if om, ok := getMap(m, method); ok {
			return decodeOperation(om)
		}
		return nil
	}
	pi.Trace = assign("trace")
	pi.Put = assign("put")
	pi.Post = assign("post")
	pi.Patch = assign("patch")
	pi.Options = assign("options")
	pi.Head = assign("head")
	pi.Get = assign("get")
	pi.Delete = assign("delete")

	if servers, ok := getSlice(m, "servers"); ok {
		pi.Servers = decodeServers(servers)
	}
	if params, ok := getSlice(m, "parameters"); ok {
		pi.Parameters = decodeParameterRefs(params)
	}
	return pi
}

func decodeOperation(m *orderedmap.Map[any]) *model.Operation {
	op := &model.Operation{
		Summary:     getString(m, "summary"),
		Description: getString(m, "description"),
		OperationID: getString(m, "operationId"),
		Deprecated:  getBool(m, "deprecated"),
	}
	if tags, ok := getSlice(m, "tags"); ok {
		op.Tags = stringSlice(tags)
	}
	if ed, ok := getMap(m, "externalDocs"); ok {
		op.ExternalDocs = decodeExternalDocs(ed)
	}
	if params, ok := getSlice(m, "parameters"); ok {
		op.Parameters = decodeParameterRefs(params)
	}
	if rb, ok := getMap(m, "requestBody"); ok {
		ref := decodeRequestBodyRef(rb)
		op.RequestBody = &ref
	}
	if resp, ok := getMap(m, "responses"); ok {
		op.Responses = decodeResponses(resp)
	}
	if cb, ok := getMap(m, "callbacks"); ok {
		op.Callbacks = orderedmap.New[model.Reference[model.Callback]](cb.Len())
		cb.Each(func(key string, v any) bool {
			vm, ok := asMap(v)
			if !ok {
				return true
			}
			op.Callbacks.Set(key, decodeCallbackRef(vm))
			return true
		})
	}
	if sec, ok := getSlice(m, "security"); ok {
		op.Security = decodeSecurityRequirements(sec)
	}
	if servers, ok := getSlice(m, "servers"); ok {
		op.Servers = decodeServers(servers)
	}
	return op
}

func decodeResponses(m *orderedmap.Map[any]) *model.Responses {
	r := &model.Responses{Codes: orderedmap.New[model.Reference[model.Response]](m.Len())}
	m.Each(func(key string, v any) bool {
		vm, ok := asMap(v)
		if !ok {
			return true
		}
		ref := decodeResponseRef(vm)
		if key == "default" {
			r.Default = &ref
			return true
		}
		r.Codes.Set(key, ref)
		return true
	})
	return r
}

func decodeResponseRef(m *orderedmap.Map[any]) model.Reference[model.Response] {
	if ref, ok := getRef(m); ok {
		return model.FromRef[model.Response](ref)
	}
	resp := &model.Response{Description: getString(m, "description")}
	if headers, ok := getMap(m, "headers"); ok {
		resp.Headers = decodeHeaderRefMap(headers)
	}
	if content, ok := getMap(m, "content"); ok {
		resp.Content = decodeMediaTypeMap(content)
	}
	if links, ok := getMap(m, "links"); ok {
		resp.Links = orderedmap.New[model.Reference[model.Link]](links.Len())
		links.Each(func(key string, v any) bool {
			vm, ok := asMap(v)
			if !ok {
				return true
			}
			resp.Links.Set(key, decodeLinkRef(vm))
			return true
		})
	}
	return model.FromItem(resp)
}

func decodeRequestBodyRef(m *orderedmap.Map[any]) model.Reference[model.RequestBody] {
	if ref, ok := getRef(m); ok {
		return model.FromRef[model.RequestBody](ref)
	}
	rb := &model.RequestBody{Description: getString(m, "description"), Required: getBool(m, "required")}
	if content, ok := getMap(m, "content"); ok {
		rb.Content = decodeMediaTypeMap(content)
	}
	return model.FromItem(rb)
}

func decodeMediaTypeMap(m *orderedmap.Map[any]) *orderedmap.Map[*model.MediaType] {
	out := orderedmap.New[*model.MediaType](m.Len())
	m.Each(func(key string, v any) bool {
		vm, ok := asMap(v)
		if !ok {
			return true
		}
		out.Set(key, decodeMediaType(vm))
		return true
	})
	return out
}

func decodeMediaType(m *orderedmap.Map[any]) *model.MediaType {
	mt := &model.MediaType{}
	if schema, ok := getMap(m, "schema"); ok {
		ref, err := decodeSchemaRef(schema)
		if err == nil {
			mt.Schema = &ref
		}
	}
	if example, ok := m.Get("example"); ok {
		mt.Example = example
	}
	if examples, ok := getMap(m, "examples"); ok {
		mt.Examples = orderedmap.New[model.Reference[model.Example]](examples.Len())
		examples.Each(func(key string, v any) bool {
			vm, ok := asMap(v)
			if !ok {
				return true
			}
			mt.Examples.Set(key, decodeExampleRef(vm))
			return true
		})
	}
	if encoding, ok := getMap(m, "encoding"); ok {
		mt.Encoding = orderedmap.New[*model.Encoding](encoding.Len())
		encoding.Each(func(key string, v any) bool {
			vm, ok := asMap(v)
			if !ok {
				return true
			}
			enc := &model.Encoding{
				ContentType:   getString(vm, "contentType"),
				Style:         getString(vm, "style"),
				Explode:       getBool(vm, "explode"),
				AllowReserved: getBool(vm, "allowReserved"),
			}
			if headers, ok := getMap(vm, "headers"); ok {
				enc.Headers = decodeHeaderRefMap(headers)
			}
			mt.Encoding.Set(key, enc)
			return true
		})
	}
	return mt
}

func decodeExampleRef(m *orderedmap.Map[any]) model.Reference[model.Example] {
	if ref, ok := getRef(m); ok {
		return model.FromRef[model.Example](ref)
	}
	ex := &model.Example{
		Summary:       getString(m, "summary"),
		Description:   getString(m, "description"),
		ExternalValue: getString(m, "externalValue"),
	}
	if v, ok := m.Get("value"); ok {
		ex.Value = v
	}
	return model.FromItem(ex)
}

func decodeLinkRef(m *orderedmap.Map[any]) model.Reference[model.Link] {
	if ref, ok := getRef(m); ok {
		return model.FromRef[model.Link](ref)
	}
	link := &model.Link{
		OperationRef: getString(m, "operationRef"),
		OperationID:  getString(m, "operationId"),
		Description:  getString(m, "description"),
	}
	if params, ok := getMap(m, "parameters"); ok {
		link.Parameters = make(map[string]any, params.Len())
		params.Each(func(key string, v any) bool {
			link.Parameters[key] = v
			return true
		})
	}
	if rb, ok := m.Get("requestBody"); ok {
		link.RequestBody = rb
	}
	if srv, ok := getMap(m, "server"); ok {
		link.Server = decodeServers([]any{srv})[0]
	}
	return model.FromItem(link)
}

func decodeCallbackRef(m *orderedmap.Map[any]) model.Reference[model.Callback] {
	if ref, ok := getRef(m); ok {
		return model.FromRef[model.Callback](ref)
	}
	cb := &model.Callback{Expressions: orderedmap.New[model.Reference[model.PathItem]](m.Len())}
	m.Each(func(key string, v any) bool {
		vm, ok := asMap(v)
		if !ok {
			return true
		}
		cb.Expressions.Set(key, decodePathItemRef(vm))
		return true
	})
	return model.FromItem(cb)
}
