package codesink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct {
	warnings []string
	infos    []string
}

func (l *testLogger) Warn(msg string, args ...any) { l.warnings = append(l.warnings, msg) }
func (l *testLogger) Info(msg string, args ...any) { l.infos = append(l.infos, msg) }

func strp(s string) *string { return &s }

func TestApply_AppendCreatesFile(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, &testLogger{})

	err := s.Apply([]CodeRecord{{Code: strp("package foo\n"), File: "foo.go", Mode: Append}})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "foo.go"))
	require.NoError(t, err)
	assert.Equal(t, "package foo\n", string(data))
}

func TestApply_AppendTwiceConcatenates(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, &testLogger{})

	require.NoError(t, s.Apply([]CodeRecord{{Code: strp("a"), File: "f.go", Mode: Append}}))
	require.NoError(t, s.Apply([]CodeRecord{{Code: strp("b"), File: "f.go", Mode: Append}}))

	data, err := os.ReadFile(filepath.Join(dir, "f.go"))
	require.NoError(t, err)
	assert.Equal(t, "ab", string(data))
}

func TestApply_PrependOnAbsentFileActsLikeWrite(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, &testLogger{})

	require.NoError(t, s.Apply([]CodeRecord{{Code: strp("head"), File: "f.go", Mode: Prepend}}))

	data, err := os.ReadFile(filepath.Join(dir, "f.go"))
	require.NoError(t, err)
	assert.Equal(t, "head", string(data))
}

func TestApply_PrependExisting(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, &testLogger{})

	require.NoError(t, s.Apply([]CodeRecord{{Code: strp("body"), File: "f.go", Mode: Append}}))
	require.NoError(t, s.Apply([]CodeRecord{{Code: strp("head-"), File: "f.go", Mode: Prepend}}))

	data, err := os.ReadFile(filepath.Join(dir, "f.go"))
	require.NoError(t, err)
	assert.Equal(t, "head-body", string(data))
}

func TestApply_EmptyCodeWarnsDoesNotError(t *testing.T) {
	dir := t.TempDir()
	logger := &testLogger{}
	s := New(dir, logger)

	empty := ""
	err := s.Apply([]CodeRecord{{Code: &empty, File: "f.go", Mode: Append}})
	require.NoError(t, err)
	assert.Len(t, logger.warnings, 1)
	_, statErr := os.Stat(filepath.Join(dir, "f.go"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestApply_RemoveAbsentFileLogsOnly(t *testing.T) {
	dir := t.TempDir()
	logger := &testLogger{}
	s := New(dir, logger)

	err := s.Apply([]CodeRecord{{File: "missing.go", Mode: Remove}})
	require.NoError(t, err)
	assert.Len(t, logger.infos, 1)
}

func TestApply_RemoveExistingFile(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, &testLogger{})

	path := filepath.Join(dir, "f.go")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	require.NoError(t, s.Apply([]CodeRecord{{File: "f.go", Mode: Remove}}))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestApply_RemoveFailureLogsDoesNotError(t *testing.T) {
	dir := t.TempDir()
	logger := &testLogger{}
	s := New(dir, logger)

	// A non-empty directory at the target path makes os.Remove fail;
	// the failure must be logged, not raised, per spec §5.
	dirPath := filepath.Join(dir, "stuck.go")
	require.NoError(t, os.Mkdir(dirPath, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dirPath, "child"), []byte("x"), 0o644))

	err := s.Apply([]CodeRecord{{File: "stuck.go", Mode: Remove}})
	require.NoError(t, err)
	assert.Len(t, logger.warnings, 1)
	_, statErr := os.Stat(dirPath)
	assert.NoError(t, statErr, "directory should still be present since remove failed")
}

func TestApply_StrictArrayOrder(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, &testLogger{})

	err := s.Apply([]CodeRecord{
		{Code: strp("a"), File: "f.go", Mode: Append},
		{Code: strp("b"), File: "f.go", Mode: Prepend},
		{Code: strp("c"), File: "f.go", Mode: Append},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "f.go"))
	require.NoError(t, err)
	assert.Equal(t, "bac", string(data))
}
