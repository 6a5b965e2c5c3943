package scriptrt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oastranslator/oaserrors"
	"github.com/erraggy/oastranslator/scriptpos"
)

func TestPackArgs_ArrayWithinRangeUnpacks(t *testing.T) {
	args := PackArgs([]any{"a", "b", "c"})
	assert.Equal(t, []any{"a", "b", "c"}, args)
}

func TestPackArgs_NonArrayIsSingleArg(t *testing.T) {
	args := PackArgs(map[string]any{"name": "Pet"})
	assert.Equal(t, []any{map[string]any{"name": "Pet"}}, args)
}

func TestPackArgs_EmptyArrayIsSingleArg(t *testing.T) {
	args := PackArgs([]any{})
	assert.Equal(t, []any{[]any{}}, args)
}

func TestPackArgs_OversizedArrayPanics(t *testing.T) {
	big := make([]any, MaxPositionalArgs+1)
	assert.PanicsWithValue(t, &oaserrors.ProgrammerError{
		Message: "scriptrt: payload array has arity 11, exceeds maximum of 10 positional arguments",
	}, func() {
		PackArgs(big)
	})
}

func writeScript(t *testing.T, root string, pos scriptpos.Position, source string) {
	t.Helper()
	path := filepath.Join(root, scriptpos.ScriptFile(pos))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
}

func TestCELRuntime_LoadAndCall(t *testing.T) {
	root := t.TempDir()
	writeScript(t, root, scriptpos.VisitSchemaStart, `{"action": "continue", "output": [{"file": "out.go", "mode": "APPEND", "code": "package out\n"}]}`)

	rt, err := NewCELRuntime(root)
	require.NoError(t, err)

	fn, err := rt.LoadFunction(scriptpos.VisitSchemaStart)
	require.NoError(t, err)

	result, err := fn.Call(map[string]any{"name": "Pet"}, `["VisitSpecStart","VisitSchemaStart"]`, Globals{})
	require.NoError(t, err)

	assert.Equal(t, ActionContinue, result.Action)
	require.Len(t, result.Output, 1)
	assert.Equal(t, "out.go", result.Output[0].File)
}

func TestCELRuntime_Call_AcceptsBareSingleRecordOutput(t *testing.T) {
	root := t.TempDir()
	writeScript(t, root, scriptpos.VisitSchemaStart, `{"action": "continue", "output": {"file": "out.go", "mode": "APPEND", "code": "package out\n"}}`)

	rt, err := NewCELRuntime(root)
	require.NoError(t, err)

	fn, err := rt.LoadFunction(scriptpos.VisitSchemaStart)
	require.NoError(t, err)

	result, err := fn.Call(map[string]any{"name": "Pet"}, `["VisitSpecStart","VisitSchemaStart"]`, Globals{})
	require.NoError(t, err)

	require.Len(t, result.Output, 1)
	assert.Equal(t, "out.go", result.Output[0].File)
}

func TestCELRuntime_Reset_RecompilesOnNextLoad(t *testing.T) {
	root := t.TempDir()
	writeScript(t, root, scriptpos.VisitSchemaEnd, `{"output": []}`)

	rt, err := NewCELRuntime(root)
	require.NoError(t, err)

	_, err = rt.LoadFunction(scriptpos.VisitSchemaEnd)
	require.NoError(t, err)

	rt.Reset()

	_, err = rt.LoadFunction(scriptpos.VisitSchemaEnd)
	require.NoError(t, err)
}
