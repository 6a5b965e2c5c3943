// Package commands provides CLI command handlers for oastranslate.
package commands

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/erraggy/oastranslator/oalog"
	"github.com/erraggy/oastranslator/translator"
)

// globalFlags are the options shared by every subcommand, per spec §6.
type globalFlags struct {
	TargetParameters string
	TargetScripts    string
	VisitorsScripts  string
}

// bindGlobalFlags registers the shared options on fs.
func bindGlobalFlags(fs *flag.FlagSet) *globalFlags {
	flags := &globalFlags{}
	fs.StringVar(&flags.TargetParameters, "target-parameters", "", "JSON value overriding any x-ot-target-parameters in the spec")
	fs.StringVar(&flags.TargetScripts, "target-scripts", "", "directory containing the Target prelude script")
	fs.StringVar(&flags.VisitorsScripts, "visitors-scripts", "", "directory containing every other script file")
	return flags
}

// newTranslator builds a translator.Translator from the shared flags.
func newTranslator(flags *globalFlags) (*translator.Translator, error) {
	if flags.TargetScripts == "" {
		return nil, fmt.Errorf("commands: --target-scripts is required")
	}
	if flags.VisitorsScripts == "" {
		return nil, fmt.Errorf("commands: --visitors-scripts is required")
	}
	return translator.New(flags.TargetScripts, flags.VisitorsScripts, oalog.NewSlogAdapter(nil))
}

// targetParametersValue decodes --target-parameters as JSON, if given.
func (g *globalFlags) targetParametersValue() (any, error) {
	if g.TargetParameters == "" {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal([]byte(g.TargetParameters), &v); err != nil {
		return nil, fmt.Errorf("commands: decoding --target-parameters: %w", err)
	}
	return v, nil
}

