package callstack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oastranslator/scriptpos"
)

func TestPush_DoesNotMutateParent(t *testing.T) {
	var root Stack
	child := root.Push(scriptpos.VisitSpecStart)

	assert.Equal(t, 0, root.Len())
	assert.Equal(t, 1, child.Len())
	assert.Equal(t, []scriptpos.Position{scriptpos.VisitSpecStart}, child.Positions())
}

func TestPush_SiblingsDoNotInterfere(t *testing.T) {
	parent := Stack{}.Push(scriptpos.VisitPathsStart)
	childA := parent.Push(scriptpos.VisitPathItemStart)
	childB := parent.Push(scriptpos.VisitPathItemEnd)

	assert.Equal(t, 2, childA.Len())
	assert.Equal(t, 2, childB.Len())
	assert.NotEqual(t, childA.Positions()[1], childB.Positions()[1])
}

func TestCallID_RendersJSONArray(t *testing.T) {
	s := Stack{}.Push(scriptpos.VisitSpecStart).Push(scriptpos.VisitPathsStart)
	id, err := s.CallID()
	require.NoError(t, err)
	assert.Equal(t, `["VisitSpecStart","VisitPathsStart"]`, id)
}
