// Package diffutil compares a translate command's actual output tree
// against an expected one, writing unified-diff .patch files for any
// mismatch.
//
// Grounded on the original implementation's services/comparators.rs
// (walk both trees, diff file-by-file, one .patch per mismatch); the
// original's diffy crate has no Go counterpart anywhere in the
// retrieval pack, so this uses github.com/pmezard/go-difflib, present
// as a transitive dependency (via testify) in every example repo's
// go.mod. Its direct-usage shape here is not grounded on an in-pack
// example — noted in DESIGN.md.
package diffutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/erraggy/oastranslator/oaserrors"
)

// Result is the outcome of comparing one actual tree against one
// expected tree.
type Result struct {
	// TotalFiles is the number of distinct relative paths seen across
	// both trees.
	TotalFiles int
	// FailedFiles lists, in sorted order, every relative path that
	// differed (including one present in only one of the two trees).
	FailedFiles []string
	// PatchFiles maps a failed relative path to the .patch file written
	// for it, rooted at actualDir.
	PatchFiles map[string]string
}

// Compare walks actualDir and expectedDir, diffs every file that
// appears in either, and writes a unified-diff ".patch" file alongside
// the actual file for every mismatch. A path present in one tree but
// not the other counts as a mismatch, diffed against empty content.
func Compare(actualDir, expectedDir string) (*Result, error) {
	actualFiles, err := listFiles(actualDir)
	if err != nil {
		return nil, err
	}
	expectedFiles, err := listFiles(expectedDir)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(actualFiles)+len(expectedFiles))
	for _, f := range actualFiles {
		seen[f] = true
	}
	for _, f := range expectedFiles {
		seen[f] = true
	}

	all := make([]string, 0, len(seen))
	for f := range seen {
		all = append(all, f)
	}
	sort.Strings(all)

	result := &Result{TotalFiles: len(all), PatchFiles: map[string]string{}}

	for _, rel := range all {
		actualPath := filepath.Join(actualDir, rel)
		expectedPath := filepath.Join(expectedDir, rel)

		actualContent, aErr := readFileOrEmpty(actualPath)
		expectedContent, eErr := readFileOrEmpty(expectedPath)
		if aErr != nil {
			return nil, &oaserrors.OutputError{File: rel, Message: "reading actual file for diff", Cause: aErr}
		}
		if eErr != nil {
			return nil, &oaserrors.OutputError{File: rel, Message: "reading expected file for diff", Cause: eErr}
		}

		if actualContent == expectedContent {
			continue
		}

		patch, err := unifiedDiff(rel, expectedContent, actualContent)
		if err != nil {
			return nil, err
		}

		patchPath := actualPath + ".patch"
		if err := os.MkdirAll(filepath.Dir(patchPath), 0o755); err != nil {
			return nil, &oaserrors.OutputError{File: rel, Message: "creating patch directory", Cause: err}
		}
		if err := os.WriteFile(patchPath, []byte(patch), 0o644); err != nil {
			return nil, &oaserrors.OutputError{File: rel, Message: "writing patch file", Cause: err}
		}

		result.FailedFiles = append(result.FailedFiles, rel)
		result.PatchFiles[rel] = patchPath
	}

	return result, nil
}

func unifiedDiff(rel, expected, actual string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: filepath.Join("expected", rel),
		ToFile:   filepath.Join("actual", rel),
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diffutil: computing unified diff for %s: %w", rel, err)
	}
	return text, nil
}

func readFileOrEmpty(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

// listFiles returns every regular file under root, relative to root,
// skipping any existing .patch files from a prior run so they never
// feed into the next comparison.
func listFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == root {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) == ".patch" {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return files, nil
}
