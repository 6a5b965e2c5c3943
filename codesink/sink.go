// Package codesink implements component E: writing the code fragments a
// script returns to their destination files, in Append, Prepend, or
// Remove mode.
//
// Grounded on the original implementation's services/code.rs (save_code,
// modify_file): Append/Prepend create the file's parent directories and
// the file itself if absent; Prepend on an absent file behaves like a
// plain write; an empty code string on Append/Prepend only warns, it
// does not error; Remove on an absent file only logs, it does not error.
package codesink

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/oastranslator/oaserrors"
)

// WriteMode is the closed set of ways a CodeRecord may affect its target
// file.
type WriteMode int

const (
	Append WriteMode = iota
	Prepend
	Remove
)

func (m WriteMode) String() string {
	switch m {
	case Append:
		return "APPEND"
	case Prepend:
		return "PREPEND"
	case Remove:
		return "REMOVE"
	default:
		return "UNKNOWN"
	}
}

// CodeRecord is one code fragment a script produced, mirroring the
// original implementation's structs::common::Code.
type CodeRecord struct {
	Code *string
	File string
	Mode WriteMode
}

// Logger is the minimal logging surface codesink needs; satisfied by
// *slog.Logger and by the ambient Logger interface the rest of the
// engine uses.
type Logger interface {
	Warn(msg string, args ...any)
	Info(msg string, args ...any)
}

// Sink applies CodeRecords to files rooted at OutDir.
type Sink struct {
	OutDir string
	Logger Logger
}

// New creates a Sink rooted at outDir.
func New(outDir string, logger Logger) *Sink {
	return &Sink{OutDir: outDir, Logger: logger}
}

// Apply writes every record in order, matching the strict array-order
// resolution of the batch-ordering Open Question: records are applied
// exactly as given, never reordered or grouped by file.
func (s *Sink) Apply(records []CodeRecord) error {
	for _, rec := range records {
		if err := s.apply(rec); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sink) apply(rec CodeRecord) error {
	path := filepath.Join(s.OutDir, rec.File)

	switch rec.Mode {
	case Remove:
		return s.remove(rec, path)
	case Append, Prepend:
		return s.write(rec, path)
	default:
		return &oaserrors.OutputError{File: rec.File, Mode: rec.Mode.String(), Message: "unknown write mode"}
	}
}

func (s *Sink) remove(rec CodeRecord, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		s.Logger.Info("codesink: remove on absent file, nothing to do", "file", rec.File)
		return nil
	}
	if err := os.Remove(path); err != nil {
		s.Logger.Warn("codesink: failed to remove file, continuing", "file", rec.File, "cause", err)
	}
	return nil
}

func (s *Sink) write(rec CodeRecord, path string) error {
	code := ""
	if rec.Code != nil {
		code = *rec.Code
	}
	if code == "" {
		s.Logger.Warn("codesink: empty code for write, skipping", "file", rec.File, "mode", rec.Mode.String())
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &oaserrors.OutputError{File: rec.File, Mode: rec.Mode.String(), Message: "creating parent directory", Cause: err}
	}

	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return &oaserrors.OutputError{File: rec.File, Mode: rec.Mode.String(), Message: "reading existing file", Cause: err}
	}

	var out string
	switch rec.Mode {
	case Append:
		out = string(existing) + code
	case Prepend:
		out = code + string(existing)
	default:
		return &oaserrors.OutputError{File: rec.File, Mode: rec.Mode.String(), Message: fmt.Sprintf("unexpected mode %d in write", rec.Mode)}
	}

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return &oaserrors.OutputError{File: rec.File, Mode: rec.Mode.String(), Message: "writing file", Cause: err}
	}
	return nil
}
