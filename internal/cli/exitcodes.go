package cli

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpad/internal/configloader"
	"github.com/yaklabco/mdpad/pkg/export"
	"github.com/yaklabco/mdpad/pkg/fsutil"
	"github.com/yaklabco/mdpad/pkg/importer"
	"github.com/yaklabco/mdpad/pkg/templates"
)

// Exit codes for mdpad.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates the command ran but did not succeed, e.g. some
	// files could not be measured.
	ExitFailure = 1

	// ExitNoMatches indicates search found nothing.
	ExitNoMatches = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Signal errors that carry an exit code but need no log line.
var (
	// ErrNoMatches is returned by search when the query occurs nowhere.
	ErrNoMatches = errors.New("no matches")

	// ErrFilesFailed is returned by stats when some files could not be read.
	ErrFilesFailed = errors.New("some files could not be measured")
)

// ExitError pins an exit code to an error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(err error) error {
	return &ExitError{Code: ExitInvalidUsage, Err: err}
}

// usageArgs marks positional argument errors as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrNoMatches):
		return ExitNoMatches
	case errors.Is(err, configloader.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, export.ErrUnknownFormat),
		errors.Is(err, templates.ErrUnknownTemplate):
		return ExitInvalidUsage
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrTooLarge),
		errors.Is(err, importer.ErrNotText),
		errors.Is(err, importer.ErrUnsupported):
		return ExitIOError
	default:
		return ExitFailure
	}
}

// IsSignal reports whether err only signals an exit code and should not be
// logged.
func IsSignal(err error) bool {
	return errors.Is(err, ErrNoMatches) || errors.Is(err, ErrFilesFailed)
}
