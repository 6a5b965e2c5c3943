package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oastranslator/scriptpos"
)

func writeScript(t *testing.T, root string, pos scriptpos.Position, source string) {
	t.Helper()
	path := filepath.Join(root, scriptpos.ScriptFile(pos))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
}

func writeEmptyDocFixture(t *testing.T, targetRoot, visitorsRoot string) {
	t.Helper()
	writeScript(t, targetRoot, scriptpos.Target, `{"output": []}`)
	for _, pos := range []scriptpos.Position{
		scriptpos.VisitSpecStart,
		scriptpos.VisitSpecInfoStart,
		scriptpos.VisitSpecInfoEnd,
		scriptpos.VisitSpecEnd,
	} {
		writeScript(t, visitorsRoot, pos, `{"output": []}`)
	}
}

func TestSetupTranslateFlags_Defaults(t *testing.T) {
	fs, flags := SetupTranslateFlags()
	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, "", flags.Spec)
	assert.Equal(t, "", flags.Out)
	assert.False(t, flags.Clean)
	assert.Equal(t, "", flags.Expected)
}

func TestSetupTranslateFlags_ParsesAllFlags(t *testing.T) {
	fs, flags := SetupTranslateFlags()
	args := []string{
		"--spec", "api.yaml",
		"--out", "./out",
		"--clean",
		"--expected", "./want",
		"--target-scripts", "./target",
		"--visitors-scripts", "./visitors",
		"--target-parameters", `{"lang":"go"}`,
	}
	require.NoError(t, fs.Parse(args))

	assert.Equal(t, "api.yaml", flags.Spec)
	assert.Equal(t, "./out", flags.Out)
	assert.True(t, flags.Clean)
	assert.Equal(t, "./want", flags.Expected)
	assert.Equal(t, "./target", flags.global.TargetScripts)
	assert.Equal(t, "./visitors", flags.global.VisitorsScripts)
	assert.Equal(t, `{"lang":"go"}`, flags.global.TargetParameters)
}

func TestHandleTranslate_Help(t *testing.T) {
	err := HandleTranslate([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleTranslate_MissingRequiredFlags(t *testing.T) {
	err := HandleTranslate([]string{})
	assert.Error(t, err)
}

func TestHandleTranslate_EndToEnd(t *testing.T) {
	specDir := t.TempDir()
	specPath := filepath.Join(specDir, "openapi.yml")
	require.NoError(t, os.WriteFile(specPath, []byte(`
openapi: "3.0.0"
info:
  title: t
  version: "1"
paths: {}
`), 0o644))

	targetRoot := t.TempDir()
	visitorsRoot := t.TempDir()
	writeEmptyDocFixture(t, targetRoot, visitorsRoot)

	outDir := t.TempDir()

	err := HandleTranslate([]string{
		"--spec", specPath,
		"--out", outDir,
		"--target-scripts", targetRoot,
		"--visitors-scripts", visitorsRoot,
	})
	require.NoError(t, err)
}
