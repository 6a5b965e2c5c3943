package visitor

import (
	"github.com/erraggy/oastranslator/callstack"
	"github.com/erraggy/oastranslator/model"
	"github.com/erraggy/oastranslator/orderedmap"
	"github.com/erraggy/oastranslator/scriptrt"
	"github.com/erraggy/oastranslator/specdoc"
)

// visitSecuritySchemesMap walks components.securitySchemes; each entry
// dispatches on Type to one of the four scheme shapes per the canonical
// traversal's security-scheme polymorphism.
func (e *Engine) visitSecuritySchemesMap(stack callstack.Stack, schemes *orderedmap.Map[model.Reference[model.SecurityScheme]]) error {
	if schemes.Len() == 0 {
		return nil
	}
	child, action, err := e.start(stack, posVisitSecuritySchemesStart, map[string]any{"count": schemes.Len()})
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		var visitErr error
		schemes.Each(func(name string, ref model.Reference[model.SecurityScheme]) bool {
			visitErr = withRef(e, child, ref, posVisitSecuritySchemeReferenceStart, posVisitSecuritySchemeReferenceEnd, specdoc.DecodeSecuritySchemeNode, func(s callstack.Stack, sc *model.SecurityScheme) error {
				return e.visitSecurityScheme(s, name, sc)
			})
			return visitErr == nil
		})
		if visitErr != nil {
			return visitErr
		}
	}
	return e.end(child, posVisitSecuritySchemesEnd, map[string]any{"count": schemes.Len()})
}

func securitySchemePayload(name string, sc *model.SecurityScheme) map[string]any {
	return map[string]any{
		"name":             name,
		"type":             string(sc.Type),
		"description":      sc.Description,
		"schemeName":       sc.Name,
		"in":               string(sc.In),
		"scheme":           sc.Scheme,
		"bearerFormat":     sc.BearerFormat,
		"openIdConnectUrl": sc.OpenIDConnectURL,
	}
}

func (e *Engine) visitSecurityScheme(stack callstack.Stack, name string, sc *model.SecurityScheme) error {
	payload := securitySchemePayload(name, sc)
	switch sc.Type {
	case model.SecuritySchemeTypeAPIKey:
		return e.leaf(stack, posVisitSecuritySchemeApiKey, payload)
	case model.SecuritySchemeTypeHTTP:
		return e.leaf(stack, posVisitSecuritySchemeHttp, payload)
	case model.SecuritySchemeTypeOpenIDConnect:
		return e.leaf(stack, posVisitSecuritySchemeOpenIdConnect, payload)
	case model.SecuritySchemeTypeOAuth2:
		child, action, err := e.start(stack, posVisitSecuritySchemeOAuth2Start, payload)
		if err != nil {
			return err
		}
		if action != scriptrt.ActionSkipChildren {
			if err := e.visitOAuthFlows(child, sc.Flows); err != nil {
				return err
			}
		}
		return e.end(child, posVisitSecuritySchemeOAuth2End, payload)
	default:
		return e.leaf(stack, posVisitSecuritySchemeApiKey, payload)
	}
}

func flowPayload(flow *model.OAuthFlow) map[string]any {
	return map[string]any{
		"authorizationUrl": flow.AuthorizationURL,
		"tokenUrl":         flow.TokenURL,
		"refreshUrl":       flow.RefreshURL,
		"scopes":           flow.Scopes,
	}
}

func (e *Engine) visitOAuthFlows(stack callstack.Stack, flows *model.OAuthFlows) error {
	if flows == nil {
		return nil
	}
	child, action, err := e.start(stack, posVisitSecuritySchemeOAuth2FlowsStart, map[string]any{})
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		if flows.Implicit != nil {
			if err := e.leaf(child, posVisitSecuritySchemeOAuth2FlowImplicit, flowPayload(flows.Implicit)); err != nil {
				return err
			}
		}
		if flows.Password != nil {
			if err := e.leaf(child, posVisitSecuritySchemeOAuth2FlowPassword, flowPayload(flows.Password)); err != nil {
				return err
			}
		}
		if flows.ClientCredentials != nil {
			if err := e.leaf(child, posVisitSecuritySchemeOAuth2FlowClientCredentials, flowPayload(flows.ClientCredentials)); err != nil {
				return err
			}
		}
		if flows.AuthorizationCode != nil {
			if err := e.leaf(child, posVisitSecuritySchemeOAuth2FlowAuthorizationCode, flowPayload(flows.AuthorizationCode)); err != nil {
				return err
			}
		}
	}
	return e.end(child, posVisitSecuritySchemeOAuth2FlowsEnd, map[string]any{})
}
