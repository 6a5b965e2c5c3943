package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/erraggy/oastranslator/internal/cliutil"
	"github.com/erraggy/oastranslator/translator"
)

// nameFilterFlag is a custom flag type for collecting repeated -n NAME
// values, grounded on the teacher's stringSliceFlag.
type nameFilterFlag []string

func (n *nameFilterFlag) String() string {
	if n == nil {
		return ""
	}
	return strings.Join(*n, ",")
}

func (n *nameFilterFlag) Set(value string) error {
	*n = append(*n, value)
	return nil
}

// TestFlags contains flags for the test command.
type TestFlags struct {
	global *globalFlags

	Tests string
	Names nameFilterFlag
}

// SetupTestFlags creates and configures a FlagSet for the test command.
func SetupTestFlags() (*flag.FlagSet, *TestFlags) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := &TestFlags{global: bindGlobalFlags(fs)}

	fs.StringVar(&flags.Tests, "tests", "resources", "directory of test fixtures, one subdirectory per case")
	fs.Var(&flags.Names, "n", "only run the named fixture (repeatable); default runs every fixture")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: oastranslate test [--tests PATH] [-n NAME ...] [flags]\n\n")
		cliutil.Writef(output, "Run translate against every fixture under --tests.\n\n")
		cliutil.Writef(output, "Each immediate subdirectory of --tests is one fixture: <dir>/openapi/openapi.yml\n")
		cliutil.Writef(output, "is translated with --clean into <dir>/actual and diffed against <dir>/expected.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExit Codes:\n")
		cliutil.Writef(output, "  0    every selected fixture translated and matched its expected output\n")
		cliutil.Writef(output, "  1    any fixture failed to translate or diffed against expected\n")
	}

	return fs, flags
}

// HandleTest executes the test command.
func HandleTest(args []string) error {
	fs, flags := SetupTestFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.Tests == "" {
		fs.Usage()
		return fmt.Errorf("test command requires --tests")
	}

	fixtures, err := listFixtures(flags.Tests, flags.Names)
	if err != nil {
		return err
	}
	if len(fixtures) == 0 {
		return fmt.Errorf("commands: no fixtures matched under %s", flags.Tests)
	}

	tr, err := newTranslator(flags.global)
	if err != nil {
		return err
	}

	targetParameters, err := flags.global.targetParametersValue()
	if err != nil {
		return err
	}

	var failed []string
	var rows []cliutil.Row
	for _, name := range fixtures {
		dir := filepath.Join(flags.Tests, name)
		cfg := translator.Config{
			SpecPath:         filepath.Join(dir, "openapi", "openapi.yml"),
			OutDir:           filepath.Join(dir, "actual"),
			Clean:            true,
			ExpectedDir:      filepath.Join(dir, "expected"),
			TargetParameters: targetParameters,
		}

		result, err := tr.Translate(cfg)
		if err != nil {
			rows = append(rows, cliutil.Row{Name: name, Status: "FAIL", Detail: err.Error()})
			failed = append(failed, name)
			continue
		}
		if result.Diff != nil && len(result.Diff.FailedFiles) > 0 {
			detail := fmt.Sprintf("%d/%d file(s) differ", len(result.Diff.FailedFiles), result.Diff.TotalFiles)
			rows = append(rows, cliutil.Row{Name: name, Status: "FAIL", Detail: detail})
			for _, f := range result.Diff.FailedFiles {
				cliutil.Writef(os.Stderr, "  %s: %s (patch: %s)\n", name, f, result.Diff.PatchFiles[f])
			}
			failed = append(failed, name)
			continue
		}
		rows = append(rows, cliutil.Row{Name: name, Status: "PASS"})
	}

	cliutil.WriteTable(os.Stdout, rows)

	if len(failed) > 0 {
		return fmt.Errorf("commands: %d/%d fixture(s) failed: %s", len(failed), len(fixtures), strings.Join(failed, ", "))
	}
	return nil
}

// listFixtures enumerates immediate subdirectories of testsDir, sorted,
// optionally restricted to names.
func listFixtures(testsDir string, names []string) ([]string, error) {
	entries, err := os.ReadDir(testsDir)
	if err != nil {
		return nil, fmt.Errorf("commands: reading test directory %s: %w", testsDir, err)
	}

	var all []string
	for _, e := range entries {
		if e.IsDir() {
			all = append(all, e.Name())
		}
	}
	slices.Sort(all)

	if len(names) == 0 {
		return all, nil
	}

	var filtered []string
	for _, name := range all {
		if slices.Contains(names, name) {
			filtered = append(filtered, name)
		}
	}
	return filtered, nil
}
