package scriptpos

import (
	"fmt"
	"path"
	"strings"
	"unicode"
)

// ScriptFile returns the relative path, under the configured scripts
// root, of the script that implements pos. Positions are grouped into
// subdirectories by the node kind they belong to, mirroring how the
// teacher groups walker test fixtures by node kind
// (walker_schema_test.go, walker_parameter_test.go, ...).
func ScriptFile(pos Position) string {
	return path.Join(category(pos), lowerFirst(string(pos))+".cel")
}

// Accessor returns the runtime-expression name scripts use to reference
// this position, distinct from its file path: the spec's component A
// keeps the two concerns (where the implementation lives on disk, and
// how a script addresses it at runtime) separate on purpose, unlike the
// original implementation's script registry which conflated the two.
func Accessor(pos Position) string {
	return "visitors." + string(pos)
}

func category(pos Position) string {
	name := string(pos)
	switch {
	case strings.HasPrefix(name, "VisitSpecInfo"):
		return "info"
	case strings.HasPrefix(name, "VisitServer"):
		return "servers"
	case strings.Contains(name, "SecurityScheme") || strings.Contains(name, "SecurityRequirement"):
		return "security"
	case strings.Contains(name, "Schema") || strings.Contains(name, "Object") ||
		strings.Contains(name, "Property") || strings.Contains(name, "AdditionalProperties") ||
		name == string(VisitStringProperty) || name == string(VisitNumberProperty) ||
		name == string(VisitIntegerProperty) || name == string(VisitBooleanProperty) ||
		strings.HasPrefix(name, "VisitOneOf") || strings.HasPrefix(name, "VisitAllOf") ||
		strings.HasPrefix(name, "VisitAnyOf") || strings.HasPrefix(name, "VisitArrayProperty") ||
		name == string(VisitDiscriminator) || name == string(VisitDefault):
		return "schema"
	case strings.Contains(name, "Parameter"):
		return "parameters"
	case strings.Contains(name, "RequestBody"):
		return "requestbody"
	case strings.Contains(name, "Response"):
		return "responses"
	case strings.Contains(name, "Header"):
		return "headers"
	case strings.Contains(name, "MediaType") || strings.Contains(name, "Encoding"):
		return "mediatype"
	case strings.Contains(name, "Example"):
		return "examples"
	case strings.Contains(name, "Link"):
		return "links"
	case strings.Contains(name, "Callback"):
		return "callbacks"
	case strings.Contains(name, "PathItem") || strings.Contains(name, "Operation") || strings.HasPrefix(name, "VisitPaths"):
		return "paths"
	case strings.Contains(name, "Components"):
		return "components"
	case strings.Contains(name, "Tag") || name == string(VisitExternalDocs):
		return "spec"
	default:
		return "root"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// Validate checks totality and uniqueness of the registry: every position
// in All must map to a non-empty file path, and no two positions may
// share the same file basename, even under different directories,
// mirroring the original implementation's startup
// check_scripts/check_script pass.
func Validate() error {
	seen := make(map[string]Position, len(All))
	for _, pos := range All {
		file := ScriptFile(pos)
		if file == "" {
			return fmt.Errorf("scriptpos: position %q has no script file", pos)
		}
		base := path.Base(file)
		if other, ok := seen[base]; ok {
			return fmt.Errorf("scriptpos: positions %q and %q both resolve to script file basename %q", other, pos, base)
		}
		seen[base] = pos
	}
	return nil
}
