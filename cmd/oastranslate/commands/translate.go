package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/oastranslator/internal/cliutil"
	"github.com/erraggy/oastranslator/translator"
)

// TranslateFlags contains flags for the translate command.
type TranslateFlags struct {
	global *globalFlags

	Spec     string
	Out      string
	Clean    bool
	Expected string
}

// SetupTranslateFlags creates and configures a FlagSet for the translate
// command. Returns the FlagSet and a TranslateFlags struct with bound
// flag variables.
func SetupTranslateFlags() (*flag.FlagSet, *TranslateFlags) {
	fs := flag.NewFlagSet("translate", flag.ContinueOnError)
	flags := &TranslateFlags{global: bindGlobalFlags(fs)}

	fs.StringVar(&flags.Spec, "spec", "", "path to the OpenAPI spec to translate (required)")
	fs.StringVar(&flags.Out, "out", "", "output directory (required)")
	fs.BoolVar(&flags.Clean, "clean", false, "remove all regular files directly under --out before writing")
	fs.StringVar(&flags.Expected, "expected", "", "directory to diff produced output against; writes .patch files on mismatch")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: oastranslate translate --spec PATH --out PATH [flags]\n\n")
		cliutil.Writef(output, "Translate one OpenAPI spec through a target's scripts.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExit Codes:\n")
		cliutil.Writef(output, "  0    translation (and diff, if --expected is given) succeeded\n")
		cliutil.Writef(output, "  1    spec load, script, output, or diff failure\n")
	}

	return fs, flags
}

// HandleTranslate executes the translate command.
func HandleTranslate(args []string) error {
	fs, flags := SetupTranslateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.Spec == "" || flags.Out == "" {
		fs.Usage()
		return fmt.Errorf("translate command requires --spec and --out")
	}

	tr, err := newTranslator(flags.global)
	if err != nil {
		return err
	}

	targetParameters, err := flags.global.targetParametersValue()
	if err != nil {
		return err
	}

	result, err := tr.Translate(translator.Config{
		SpecPath:         flags.Spec,
		OutDir:           flags.Out,
		Clean:            flags.Clean,
		ExpectedDir:      flags.Expected,
		TargetParameters: targetParameters,
	})
	if result != nil && result.Diff != nil && len(result.Diff.FailedFiles) > 0 {
		cliutil.Writef(os.Stderr, "Diff mismatch in %d/%d file(s):\n", len(result.Diff.FailedFiles), result.Diff.TotalFiles)
		for _, f := range result.Diff.FailedFiles {
			cliutil.Writef(os.Stderr, "  %s (patch: %s)\n", f, result.Diff.PatchFiles[f])
		}
	}
	return err
}
