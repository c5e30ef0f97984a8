package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/fitfinder/internal/catalog"
	"github.com/julianstephens/fitfinder/internal/keyring"
	"github.com/julianstephens/fitfinder/internal/logger"
	"github.com/julianstephens/fitfinder/internal/storage"
	"github.com/julianstephens/fitfinder/internal/storage/postgres"
	"github.com/julianstephens/fitfinder/internal/validation"
	"github.com/julianstephens/fitfinder/internal/workoutlog"
)

// Exit statuses
const (
	ExitFailure      = 1
	ExitInvalidInput = 2
	ExitNotFound     = 3
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case stderrors.Is(err, validation.ErrInvalidInput),
		stderrors.Is(err, workoutlog.ErrEmptyExercise),
		stderrors.Is(err, storage.ErrAmbiguousID),
		stderrors.Is(err, postgres.ErrEmbeddedCredentials),
		stderrors.Is(err, postgres.ErrInvalidConnectionString),
		stderrors.Is(err, keyring.ErrInvalidProfile):
		return ExitInvalidInput
	case stderrors.Is(err, storage.ErrNotFound),
		stderrors.Is(err, catalog.ErrNotFound),
		stderrors.Is(err, workoutlog.ErrNotFound),
		stderrors.Is(err, keyring.ErrNotFound):
		return ExitNotFound
	default:
		return ExitFailure
	}
}

// Hint suggests a follow-up command for errors the user can fix, or
// returns "".
func Hint(err error) string {
	switch {
	case stderrors.Is(err, storage.ErrAmbiguousID):
		return "use more characters of the id; list ids with --show-ids"
	case stderrors.Is(err, catalog.ErrNotFound):
		return "find exercise ids with 'fitfinder exercise search --show-ids'"
	case stderrors.Is(err, workoutlog.ErrNotFound):
		return "list workout ids with 'fitfinder log list --show-ids'"
	case stderrors.Is(err, storage.ErrNotFound):
		return "list saved meal plans with 'fitfinder meal list'"
	case stderrors.Is(err, postgres.ErrEmbeddedCredentials):
		return "store the connection string with 'fitfinder keyring set' and use --config keyring"
	case stderrors.Is(err, keyring.ErrKeyringUnavailable):
		return "set FITFINDER_DB_CONNECTION instead"
	}
	return ""
}

// Report writes the formatted error and its hint to w.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(w, Format(err))
	if hint := Hint(err); hint != "" {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}

// Fatal logs and reports err, then exits with its exit code. A nil error
// is a no-op.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command execution failed", "error", err)
	Report(os.Stderr, err)
	os.Exit(ExitCode(err))
}
