package scriptpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_NoCollisions(t *testing.T) {
	assert.NoError(t, Validate())
}

func TestScriptFile_Deterministic(t *testing.T) {
	assert.Equal(t, ScriptFile(VisitSchemaStart), ScriptFile(VisitSchemaStart))
	assert.NotEqual(t, ScriptFile(VisitSchemaStart), ScriptFile(VisitSchemaEnd))
}

func TestAccessor_DistinctFromFile(t *testing.T) {
	assert.NotEqual(t, string(VisitSchemaStart), ScriptFile(VisitSchemaStart))
	assert.Equal(t, "visitors.VisitSchemaStart", Accessor(VisitSchemaStart))
}

func TestAll_HasNoDuplicatePositions(t *testing.T) {
	seen := make(map[Position]bool, len(All))
	for _, pos := range All {
		assert.Falsef(t, seen[pos], "duplicate position %q in All", pos)
		seen[pos] = true
	}
}
