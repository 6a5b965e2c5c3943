package specdoc

import (
	"fmt"

	"github.com/erraggy/oastranslator/internal/jsonhelpers"
	"github.com/erraggy/oastranslator/model"
	"github.com/erraggy/oastranslator/oaserrors"
	"github.com/erraggy/oastranslator/orderedmap"
)

// Decode converts a ParsedSpec's generic tree into a typed *model.Document.
// It assumes the tree already matches the OpenAPI v3 object shape; it does
// not itself validate conformance, mirroring the teacher's decode-then-
// validate-elsewhere split.
func Decode(spec *ParsedSpec) (*model.Document, error) {
	root, ok := asMap(spec.Root)
	if !ok {
		return nil, &oaserrors.SpecLoadError{Path: spec.Path, Message: "document root is not a mapping"}
	}

	doc := &model.Document{
		OpenAPI: getString(root, "openapi"),
	}

	if infoMap, ok := getMap(root, "info"); ok {
		doc.Info = decodeInfo(infoMap)
	}
	if serversSlice, ok := getSlice(root, "servers"); ok {
		doc.Servers = decodeServers(serversSlice)
	}
	if pathsMap, ok := getMap(root, "paths"); ok {
		doc.Paths = decodePaths(pathsMap)
	}
	if secSlice, ok := getSlice(root, "security"); ok {
		doc.Security = decodeSecurityRequirements(secSlice)
	}
	if tagsSlice, ok := getSlice(root, "tags"); ok {
		doc.Tags = decodeTags(tagsSlice)
	}
	if edMap, ok := getMap(root, "externalDocs"); ok {
		doc.ExternalDocs = decodeExternalDocs(edMap)
	}
	if compMap, ok := getMap(root, "components"); ok {
		var err error
		doc.Components, err = decodeComponents(compMap)
		if err != nil {
			return nil, fmt.Errorf("decoding components: %w", err)
		}
	}
	doc.Extra = jsonhelpers.ExtractExtensions(root)

	return doc, nil
}

func decodeInfo(m *orderedmap.Map[any]) *model.Info {
	info := &model.Info{
		Title:          getString(m, "title"),
		Description:    getString(m, "description"),
		TermsOfService: getString(m, "termsOfService"),
		Version:        getString(m, "version"),
	}
	if c, ok := getMap(m, "contact"); ok {
		info.Contact = &model.Contact{
			Name:  getString(c, "name"),
			URL:   getString(c, "url"),
			Email: getString(c, "email"),
		}
	}
	if l, ok := getMap(m, "license"); ok {
		info.License = &model.License{Name: getString(l, "name"), URL: getString(l, "url")}
	}
	return info
}

func decodeServers(items []any) []*model.Server {
	servers := make([]*model.Server, 0, len(items))
	for _, it := range items {
		m, ok := asMap(it)
		if !ok {
			continue
		}
		s := &model.Server{URL: getString(m, "url"), Description: getString(m, "description")}
		if vars, ok := getMap(m, "variables"); ok {
			s.Variables = orderedmap.New[*model.ServerVariable](vars.Len())
			vars.Each(func(key string, v any) bool {
				vm, ok := asMap(v)
				if !ok {
					return true
				}
				sv := &model.ServerVariable{Default: getString(vm, "default"), Description: getString(vm, "description")}
				if enum, ok := getSlice(vm, "enum"); ok {
					sv.Enum = stringSlice(enum)
				}
				s.Variables.Set(key, sv)
				return true
			})
		}
		servers = append(servers, s)
	}
	return servers
}

func decodeTags(items []any) []*model.Tag {
	tags := make([]*model.Tag, 0, len(items))
	for _, it := range items {
		m, ok := asMap(it)
		if !ok {
			continue
		}
		tag := &model.Tag{Name: getString(m, "name"), Description: getString(m, "description")}
		if ed, ok := getMap(m, "externalDocs"); ok {
			tag.ExternalDocs = decodeExternalDocs(ed)
		}
		tags = append(tags, tag)
	}
	return tags
}

func decodeExternalDocs(m *orderedmap.Map[any]) *model.ExternalDocs {
	return &model.ExternalDocs{Description: getString(m, "description"), URL: getString(m, "url")}
}

func decodeSecurityRequirements(items []any) []model.SecurityRequirement {
	reqs := make([]model.SecurityRequirement, 0, len(items))
	for _, it := range items {
		m, ok := asMap(it)
		if !ok {
			continue
		}
		schemes := orderedmap.New[[]string](m.Len())
		m.Each(func(key string, v any) bool {
			scopes, _ := asSlice(v)
			schemes.Set(key, stringSlice(scopes))
			return true
		})
		reqs = append(reqs, model.SecurityRequirement{Schemes: schemes})
	}
	return reqs
}

func decodeComponents(m *orderedmap.Map[any]) (*model.Components, error) {
	c := &model.Components{}

	if schemas, ok := getMap(m, "schemas"); ok {
		c.Schemas = orderedmap.New[model.Reference[model.Schema]](schemas.Len())
		var err error
		schemas.Each(func(key string, v any) bool {
			vm, ok := asMap(v)
			if !ok {
				return true
			}
			var ref model.Reference[model.Schema]
			ref, err = decodeSchemaRef(vm)
			if err != nil {
				return false
			}
			c.Schemas.Set(key, ref)
			return true
		})
		if err != nil {
			return nil, err
		}
	}
	if responses, ok := getMap(m, "responses"); ok {
		c.Responses = orderedmap.New[model.Reference[model.Response]](responses.Len())
		responses.Each(func(key string, v any) bool {
			vm, ok := asMap(v)
			if !ok {
				return true
			}
			c.Responses.Set(key, decodeResponseRef(vm))
			return true
		})
	}
	if params, ok := getMap(m, "parameters"); ok {
		c.Parameters = orderedmap.New[model.Reference[model.Parameter]](params.Len())
		params.Each(func(key string, v any) bool {
			vm, ok := asMap(v)
			if !ok {
				return true
			}
			c.Parameters.Set(key, decodeParameterRef(vm))
			return true
		})
	}
	if examples, ok := getMap(m, "examples"); ok {
		c.Examples = orderedmap.New[model.Reference[model.Example]](examples.Len())
		examples.Each(func(key string, v any) bool {
			vm, ok := asMap(v)
			if !ok {
				return true
			}
			c.Examples.Set(key, decodeExampleRef(vm))
			return true
		})
	}
	if bodies, ok := getMap(m, "requestBodies"); ok {
		c.RequestBodies = orderedmap.New[model.Reference[model.RequestBody]](bodies.Len())
		bodies.Each(func(key string, v any) bool {
			vm, ok := asMap(v)
			if !ok {
				return true
			}
			c.RequestBodies.Set(key, decodeRequestBodyRef(vm))
			return true
		})
	}
	if headers, ok := getMap(m, "headers"); ok {
		c.Headers = orderedmap.New[model.Reference[model.Header]](headers.Len())
		headers.Each(func(key string, v any) bool {
			vm, ok := asMap(v)
			if !ok {
				return true
			}
			c.Headers.Set(key, decodeHeaderRef(vm))
			return true
		})
	}
	if schemes, ok := getMap(m, "securitySchemes"); ok {
		c.SecuritySchemes = orderedmap.New[model.Reference[model.SecurityScheme]](schemes.Len())
		schemes.Each(func(key string, v any) bool {
			vm, ok := asMap(v)
			if !ok {
				return true
			}
			c.SecuritySchemes.Set(key, decodeSecuritySchemeRef(vm))
			return true
		})
	}
	if links, ok := getMap(m, "links"); ok {
		c.Links = orderedmap.New[model.Reference[model.Link]](links.Len())
		links.Each(func(key string, v any) bool {
			vm, ok := asMap(v)
			if !ok {
				return true
			}
			c.Links.Set(key, decodeLinkRef(vm))
			return true
		})
	}
	if callbacks, ok := getMap(m, "callbacks"); ok {
		c.Callbacks = orderedmap.New[model.Reference[model.Callback]](callbacks.Len())
		callbacks.Each(func(key string, v any) bool {
			vm, ok := asMap(v)
			if !ok {
				return true
			}
			c.Callbacks.Set(key, decodeCallbackRef(vm))
			return true
		})
	}
	c.Extra = jsonhelpers.ExtractExtensions(m)

	return c, nil
}
