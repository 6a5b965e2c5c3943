package specdoc

import (
	"github.com/erraggy/oastranslator/model"
	"github.com/erraggy/oastranslator/orderedmap"
)

func decodeParameterRefs(items []any) []model.Reference[model.Parameter] {
	refs := make([]model.Reference[model.Parameter], 0, len(items))
	for _, it := range items {
		m, ok := asMap(it)
		if !ok {
			continue
		}
		refs = append(refs, decodeParameterRef(m))
	}
	return refs
}

func decodeParameterRef(m *orderedmap.Map[any]) model.Reference[model.Parameter] {
	if ref, ok := getRef(m); ok {
		return model.FromRef[model.Parameter](ref)
	}
	p := &model.Parameter{
		Name:          getString(m, "name"),
		In:            model.ParameterLocation(getString(m, "in")),
		ParameterData: decodeParameterData(m),
	}
	return model.FromItem(p)
}

func decodeParameterData(m *orderedmap.Map[any]) model.ParameterData {
	pd := model.ParameterData{
		Description:     getString(m, "description"),
		Required:        getBool(m, "required"),
		Deprecated:      getBool(m, "deprecated"),
		AllowEmptyValue: getBool(m, "allowEmptyValue"),
		Style:           getString(m, "style"),
		Explode:         getBool(m, "explode"),
		AllowReserved:   getBool(m, "allowReserved"),
	}
	if schema, ok := getMap(m, "schema"); ok {
		ref, err := decodeSchemaRef(schema)
		if err == nil {
			pd.SchemaOrContent.Schema = &ref
		}
	}
	if content, ok := getMap(m, "content"); ok {
		pd.SchemaOrContent.Content = decodeMediaTypeMap(content)
	}
	if example, ok := m.Get("example"); ok {
		pd.Example = example
	}
	if examples, ok := getMap(m, "examples"); ok {
		pd.Examples = orderedmap.New[model.Reference[model.Example]](examples.Len())
		examples.Each(func(key string, v any) bool {
			vm, ok := asMap(v)
			if !ok {
				return true
			}
			pd.Examples.Set(key, decodeExampleRef(vm))
			return true
		})
	}
	return pd
}

func decodeHeaderRefMap(m *orderedmap.Map[any]) *orderedmap.Map[model.Reference[model.Header]] {
	out := orderedmap.New[model.Reference[model.Header]](m.Len())
	m.Each(func(key string, v any) bool {
		vm, ok := asMap(v)
		if !ok {
			return true
		}
		out.Set(key, decodeHeaderRef(vm))
		return true
	})
	return out
}

func decodeHeaderRef(m *orderedmap.Map[any]) model.Reference[model.Header] {
	if ref, ok := getRef(m); ok {
		return model.FromRef[model.Header](ref)
	}
	return model.FromItem(&model.Header{ParameterData: decodeParameterData(m)})
}

func decodeSecuritySchemeRef(m *orderedmap.Map[any]) model.Reference[model.SecurityScheme] {
	if ref, ok := getRef(m); ok {
		return model.FromRef[model.SecurityScheme](ref)
	}
	s := &model.SecurityScheme{
		Type:             model.SecuritySchemeType(getString(m, "type")),
		Description:      getString(m, "description"),
		Name:             getString(m, "name"),
		In:               model.ParameterLocation(getString(m, "in")),
		Scheme:           getString(m, "scheme"),
		BearerFormat:     getString(m, "bearerFormat"),
		OpenIDConnectURL: getString(m, "openIdConnectUrl"),
	}
	if flows, ok := getMap(m, "flows"); ok {
		s.Flows = decodeOAuthFlows(flows)
	}
	return model.FromItem(s)
}

func decodeOAuthFlows(m *orderedmap.Map[any]) *model.OAuthFlows {
	flows := &model.OAuthFlows{}
	decode := func(key string) *model.OAuthFlow {
		fm, ok := getMap(m, key)
		if !ok {
			return nil
		}
		flow := &model.OAuthFlow{
			AuthorizationURL: getString(fm, "authorizationUrl"),
			TokenURL:         getString(fm, "tokenUrl"),
			RefreshURL:       getString(fm, "refreshUrl"),
		}
		if scopes, ok := getMap(fm, "scopes"); ok {
			flow.Scopes = make(map[string]string, scopes.Len())
			scopes.Each(func(k string, v any) bool {
				s, _ := v.(string)
				flow.Scopes[k] = s
				return true
			})
		}
		return flow
	}
	flows.Implicit = decode("implicit")
	flows.Password = decode("password")
	flows.ClientCredentials = decode("clientCredentials")
	flows.AuthorizationCode = decode("authorizationCode")
	return flows
}
