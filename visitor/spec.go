package visitor

import (
	"github.com/erraggy/oastranslator/callstack"
	"github.com/erraggy/oastranslator/model"
	"github.com/erraggy/oastranslator/scriptrt"
)

// visitSpec walks the document root in canonical order: info, servers,
// paths, security, tags, external_docs, components.
func (e *Engine) visitSpec(stack callstack.Stack, doc *model.Document) (callstack.Stack, error) {
	child, action, err := e.start(stack, posVisitSpecStart, map[string]any{"openapi": doc.OpenAPI})
	if err != nil {
		return child, err
	}
	if action != scriptrt.ActionSkipChildren {
		if doc.Info != nil {
			if err := e.visitInfo(child, doc.Info); err != nil {
				return child, err
			}
		}
		if err := e.visitServers(child, doc.Servers); err != nil {
			return child, err
		}
		if doc.Paths != nil {
			if err := e.visitPaths(child, doc.Paths); err != nil {
				return child, err
			}
		}
		if err := e.visitSecurityRequirements(child, doc.Security); err != nil {
			return child, err
		}
		if err := e.visitSpecTags(child, doc.Tags); err != nil {
			return child, err
		}
		if doc.ExternalDocs != nil {
			if err := e.leaf(child, posVisitExternalDocs, externalDocsPayload(doc.ExternalDocs)); err != nil {
				return child, err
			}
		}
		if doc.Components != nil {
			if err := e.visitComponents(child, doc.Components); err != nil {
				return child, err
			}
		}
	}

	if err := e.end(child, posVisitSpecEnd, map[string]any{"openapi": doc.OpenAPI}); err != nil {
		return child, err
	}
	return child, nil
}

func (e *Engine) visitInfo(stack callstack.Stack, info *model.Info) error {
	payload := map[string]any{"title": info.Title, "version": info.Version, "description": info.Description}
	child, action, err := e.start(stack, posVisitSpecInfoStart, payload)
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		if info.Contact != nil {
			if err := e.leaf(child, posVisitSpecInfoContact, map[string]any{
				"name": info.Contact.Name, "url": info.Contact.URL, "email": info.Contact.Email,
			}); err != nil {
				return err
			}
		}
		if info.License != nil {
			if err := e.leaf(child, posVisitSpecInfoLicense, map[string]any{
				"name": info.License.Name, "url": info.License.URL,
			}); err != nil {
				return err
			}
		}
	}
	return e.end(child, posVisitSpecInfoEnd, payload)
}

func (e *Engine) visitServers(stack callstack.Stack, servers []*model.Server) error {
	if len(servers) == 0 {
		return nil
	}
	child, action, err := e.start(stack, posVisitServersStart, map[string]any{"count": len(servers)})
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		for _, s := range servers {
			if err := e.visitServer(child, s); err != nil {
				return err
			}
		}
	}
	return e.end(child, posVisitServersEnd, map[string]any{"count": len(servers)})
}

func (e *Engine) visitServer(stack callstack.Stack, server *model.Server) error {
	payload := map[string]any{"url": server.URL, "description": server.Description}
	child, action, err := e.start(stack, posVisitServerStart, payload)
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren && server.Variables != nil {
		var visitErr error
		server.Variables.Each(func(name string, v *model.ServerVariable) bool {
			visitErr = e.leaf(child, posVisitServerVariable, map[string]any{
				"name": name, "default": v.Default, "enum": v.Enum, "description": v.Description,
			})
			return visitErr == nil
		})
		if visitErr != nil {
			return visitErr
		}
	}
	return e.end(child, posVisitServerEnd, payload)
}

func (e *Engine) visitSecurityRequirements(stack callstack.Stack, reqs []model.SecurityRequirement) error {
	if len(reqs) == 0 {
		return nil
	}
	child, action, err := e.start(stack, posVisitSecurityRequirementsStart, map[string]any{"count": len(reqs)})
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		for _, req := range reqs {
			schemes := map[string]any{}
			req.Schemes.Each(func(name string, scopes []string) bool {
				schemes[name] = scopes
				return true
			})
			if err := e.leaf(child, posVisitSecurityRequirement, schemes); err != nil {
				return err
			}
		}
	}
	return e.end(child, posVisitSecurityRequirementsEnd, map[string]any{"count": len(reqs)})
}

func (e *Engine) visitSpecTags(stack callstack.Stack, tags []*model.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	child, action, err := e.start(stack, posVisitSpecTagsStart, map[string]any{"count": len(tags)})
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		for _, tag := range tags {
			payload := map[string]any{"name": tag.Name, "description": tag.Description}
			if tag.ExternalDocs != nil {
				payload["externalDocs"] = externalDocsPayload(tag.ExternalDocs)
			}
			if err := e.leaf(child, posVisitSpecTag, payload); err != nil {
				return err
			}
		}
	}
	return e.end(child, posVisitSpecTagsEnd, map[string]any{"count": len(tags)})
}

func externalDocsPayload(ed *model.ExternalDocs) map[string]any {
	return map[string]any{"description": ed.Description, "url": ed.URL}
}
