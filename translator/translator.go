package translator

import (
	"os"
	"path/filepath"

	"github.com/erraggy/oastranslator/callstack"
	"github.com/erraggy/oastranslator/codesink"
	"github.com/erraggy/oastranslator/internal/diffutil"
	"github.com/erraggy/oastranslator/model"
	"github.com/erraggy/oastranslator/oalog"
	"github.com/erraggy/oastranslator/oaserrors"
	"github.com/erraggy/oastranslator/refresolver"
	"github.com/erraggy/oastranslator/scriptpos"
	"github.com/erraggy/oastranslator/scriptrt"
	"github.com/erraggy/oastranslator/specdoc"
	"github.com/erraggy/oastranslator/typedcache"
	"github.com/erraggy/oastranslator/visitor"
)

// Config describes one translate command.
type Config struct {
	// SpecPath is the OpenAPI document to translate.
	SpecPath string
	// OutDir is the directory code records are written under.
	OutDir string
	// Clean removes every regular file directly under OutDir before
	// writing, when true.
	Clean bool
	// ExpectedDir, if non-empty, is diffed against OutDir after a
	// successful translate; any mismatch produces a non-nil DiffError.
	ExpectedDir string
	// TargetParameters overrides any x-ot-target-parameters found in
	// the spec document, per spec §6.
	TargetParameters any
}

// Result is what a successful (or diff-failing) Translate call returns.
type Result struct {
	OutDir string
	Diff   *diffutil.Result
}

// Translator holds the process-wide resources the spec calls out as
// shared across commands: the typed cache and the two scripting
// runtimes (target prelude, and everything else). One Translator is
// constructed per process; Translate resets all three at the start of
// every call for command isolation (Testable Property 9).
type Translator struct {
	Cache    *typedcache.Cache
	Target   *scriptrt.CELRuntime
	Visitors *scriptrt.CELRuntime
	Logger   oalog.Logger
}

// New builds a Translator whose Target and Visitors runtimes load
// scripts from targetScriptsDir and visitorsScriptsDir respectively,
// per the CLI's --target-scripts/--visitors-scripts global options.
func New(targetScriptsDir, visitorsScriptsDir string, logger oalog.Logger) (*Translator, error) {
	if logger == nil {
		logger = oalog.NopLogger{}
	}

	target, err := scriptrt.NewCELRuntime(targetScriptsDir)
	if err != nil {
		return nil, err
	}
	visitors, err := scriptrt.NewCELRuntime(visitorsScriptsDir)
	if err != nil {
		return nil, err
	}

	return &Translator{
		Cache:    typedcache.New(),
		Target:   target,
		Visitors: visitors,
		Logger:   logger,
	}, nil
}

// Translate runs one full translate command: reset shared state, load
// and decode the spec, run the Target prelude, walk the document, and
// (if cfg.ExpectedDir is set) diff the result.
func (t *Translator) Translate(cfg Config) (*Result, error) {
	t.Cache.Clear()
	t.Target.Reset()
	t.Visitors.Reset()

	sink := codesink.New(cfg.OutDir, t.Logger)
	var globals scriptrt.Globals

	if cfg.Clean {
		if err := cleanDir(cfg.OutDir); err != nil {
			outErr := &oaserrors.OutputError{Message: "cleaning output directory " + cfg.OutDir, Cause: err}
			t.handleError(sink, outErr, globals)
			return nil, outErr
		}
	}

	parsed, err := specdoc.Load(cfg.SpecPath)
	if err != nil {
		t.handleError(sink, err, globals)
		return nil, err
	}
	doc, err := specdoc.Decode(parsed)
	if err != nil {
		t.handleError(sink, err, globals)
		return nil, err
	}

	resolver := refresolver.New(parsed, t.Cache)

	root, globals, err := t.runTarget(sink, targetParameters(cfg, doc))
	if err != nil {
		t.handleError(sink, err, globals)
		return nil, err
	}

	engine := &visitor.Engine{Runtime: t.Visitors, Resolver: resolver, Sink: sink, Globals: globals}

	if err := engine.Run(root, doc); err != nil {
		t.handleError(sink, err, globals)
		return nil, err
	}

	result := &Result{OutDir: cfg.OutDir}
	if cfg.ExpectedDir != "" {
		diff, err := diffutil.Compare(cfg.OutDir, cfg.ExpectedDir)
		if err != nil {
			t.handleError(sink, err, globals)
			return nil, err
		}
		result.Diff = diff
		if len(diff.FailedFiles) > 0 {
			return result, &oaserrors.DiffError{FailedFiles: diff.FailedFiles, TotalFiles: diff.TotalFiles}
		}
	}
	return result, nil
}

// targetParameters resolves the precedence rule in spec §6:
// --target-parameters (cfg.TargetParameters) overrides any
// x-ot-target-parameters found at the document root.
func targetParameters(cfg Config, doc *model.Document) any {
	if cfg.TargetParameters != nil {
		return cfg.TargetParameters
	}
	if doc == nil || doc.Extra == nil {
		return nil
	}
	return doc.Extra["x-ot-target-parameters"]
}

// runTarget invokes the Target prelude script once, and returns the
// continuation that VisitSpecStart must be pushed onto (per the root
// sequencing rule in spec §4.F) along with the script-global bindings
// every later script call in this command must see: targetParameters,
// and whatever keys the prelude itself declared via its result's
// "globals" field.
func (t *Translator) runTarget(sink *codesink.Sink, targetParameters any) (callstack.Stack, scriptrt.Globals, error) {
	child := callstack.Stack{}.Push(scriptpos.Target)
	globals := scriptrt.Globals{TargetParameters: targetParameters}

	callID, err := child.CallID()
	if err != nil {
		return child, globals, &oaserrors.ScriptError{Position: string(scriptpos.Target), Message: "rendering call id", Cause: err}
	}

	fn, err := t.Target.LoadFunction(scriptpos.Target)
	if err != nil {
		return child, globals, err
	}

	payload := map[string]any{"targetParameters": targetParameters}
	result, err := fn.Call(payload, callID, globals)
	if err != nil {
		return child, globals, err
	}
	if len(result.Output) > 0 {
		if err := sink.Apply(result.Output); err != nil {
			return child, globals, err
		}
	}
	if result.Globals != nil {
		globals.Declared = result.Globals
	}
	return child, globals, nil
}

// handleError invokes ErrorHandler best-effort on any command abort;
// its own failure is logged and swallowed, per spec §5/§7. Any code
// records it returns are applied to sink the same as any other script.
func (t *Translator) handleError(sink *codesink.Sink, cause error, globals scriptrt.Globals) {
	fn, err := t.Visitors.LoadFunction(scriptpos.ErrorHandler)
	if err != nil {
		t.Logger.Error("translator: loading ErrorHandler script", "cause", err)
		return
	}

	stack := callstack.Stack{}.Push(scriptpos.ErrorHandler)
	callID, err := stack.CallID()
	if err != nil {
		t.Logger.Error("translator: rendering ErrorHandler call id", "cause", err)
		return
	}

	result, err := fn.Call(cause.Error(), callID, globals)
	if err != nil {
		t.Logger.Error("translator: ErrorHandler script failed", "cause", err)
		return
	}
	if len(result.Output) > 0 {
		if err := sink.Apply(result.Output); err != nil {
			t.Logger.Error("translator: applying ErrorHandler output", "cause", err)
		}
	}
}

// cleanDir removes every regular file directly under dir, leaving
// subdirectories untouched; a non-existent dir is not an error.
func cleanDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
