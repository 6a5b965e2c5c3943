package diffutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCompare_IdenticalTreesReportNoFailures(t *testing.T) {
	actual := t.TempDir()
	expected := t.TempDir()
	writeFile(t, actual, "pet.go", "package pet\n")
	writeFile(t, expected, "pet.go", "package pet\n")

	result, err := Compare(actual, expected)
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalFiles)
	assert.Empty(t, result.FailedFiles)
	assert.Empty(t, result.PatchFiles)
}

func TestCompare_MismatchWritesPatchFile(t *testing.T) {
	actual := t.TempDir()
	expected := t.TempDir()
	writeFile(t, actual, "pet.go", "package pet\n\nfunc A() {}\n")
	writeFile(t, expected, "pet.go", "package pet\n\nfunc B() {}\n")

	result, err := Compare(actual, expected)
	require.NoError(t, err)
	require.Equal(t, []string{"pet.go"}, result.FailedFiles)

	patchPath, ok := result.PatchFiles["pet.go"]
	require.True(t, ok)

	data, err := os.ReadFile(patchPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "-func B() {}")
	assert.Contains(t, string(data), "+func A() {}")
}

func TestCompare_FileOnlyInExpectedCountsAsMismatch(t *testing.T) {
	actual := t.TempDir()
	expected := t.TempDir()
	writeFile(t, expected, "missing.go", "package missing\n")

	result, err := Compare(actual, expected)
	require.NoError(t, err)
	assert.Equal(t, []string{"missing.go"}, result.FailedFiles)
}

func TestCompare_FileOnlyInActualCountsAsMismatch(t *testing.T) {
	actual := t.TempDir()
	expected := t.TempDir()
	writeFile(t, actual, "extra.go", "package extra\n")

	result, err := Compare(actual, expected)
	require.NoError(t, err)
	assert.Equal(t, []string{"extra.go"}, result.FailedFiles)
}

func TestCompare_NestedDirectoriesAreWalked(t *testing.T) {
	actual := t.TempDir()
	expected := t.TempDir()
	writeFile(t, actual, filepath.Join("sub", "dir", "a.go"), "package a\n")
	writeFile(t, expected, filepath.Join("sub", "dir", "a.go"), "package a\n")

	result, err := Compare(actual, expected)
	require.NoError(t, err)
	assert.Empty(t, result.FailedFiles)
	assert.Equal(t, 1, result.TotalFiles)
}

func TestCompare_NonExistentActualDirTreatedAsEmpty(t *testing.T) {
	expected := t.TempDir()
	writeFile(t, expected, "pet.go", "package pet\n")

	result, err := Compare(filepath.Join(expected, "does-not-exist"), expected)
	require.NoError(t, err)
	assert.Equal(t, []string{"pet.go"}, result.FailedFiles)
}
