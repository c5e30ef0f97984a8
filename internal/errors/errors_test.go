package errors

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/julianstephens/fitfinder/internal/catalog"
	"github.com/julianstephens/fitfinder/internal/keyring"
	"github.com/julianstephens/fitfinder/internal/storage"
	"github.com/julianstephens/fitfinder/internal/storage/postgres"
	"github.com/julianstephens/fitfinder/internal/validation"
	"github.com/julianstephens/fitfinder/internal/workoutlog"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error", err: nil, expected: ""},
		{name: "simple error", err: errors.New("exercise name is required"), expected: "Error: exercise name is required"},
		{name: "wrapped error", err: fmt.Errorf("failed to save workout log: %w", errors.New("disk full")), expected: "Error: failed to save workout log: disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, got, tt.expected)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain", errors.New("boom"), ExitFailure},
		{"invalid input", fmt.Errorf("%w: days must be 1-7", validation.ErrInvalidInput), ExitInvalidInput},
		{"empty exercise", workoutlog.ErrEmptyExercise, ExitInvalidInput},
		{"ambiguous id", fmt.Errorf("meal plan %q: %w", "a", storage.ErrAmbiguousID), ExitInvalidInput},
		{"embedded password", fmt.Errorf("wrapped: %w", postgres.ErrEmbeddedCredentials), ExitInvalidInput},
		{"bad profile", keyring.ErrInvalidProfile, ExitInvalidInput},
		{"missing plan", fmt.Errorf("meal plan %q: %w", "x", storage.ErrNotFound), ExitNotFound},
		{"ambiguous workout prefix", fmt.Errorf("workout id prefix %q: %w", "ab", storage.ErrAmbiguousID), ExitInvalidInput},
		{"missing exercise", fmt.Errorf("%w: %s", catalog.ErrNotFound, "nope"), ExitNotFound},
		{"missing workout", workoutlog.ErrNotFound, ExitNotFound},
		{"missing keyring entry", keyring.ErrNotFound, ExitNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestReport(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"no hint", errors.New("boom"), "Error: boom\n"},
		{"with hint", fmt.Errorf("workout %q: %w", "abc", workoutlog.ErrNotFound),
			"Error: workout \"abc\": workout not found\nHint: list workout ids with 'fitfinder log list --show-ids'\n"},
		{"missing exercise", fmt.Errorf("%w: %s", catalog.ErrNotFound, "nope"),
			"Error: exercise not found: nope\nHint: find exercise ids with 'fitfinder exercise search --show-ids'\n"},
		{"ambiguous workout prefix", fmt.Errorf("workout id prefix %q: %w", "ab", storage.ErrAmbiguousID),
			"Error: workout id prefix \"ab\": ambiguous id prefix\nHint: use more characters of the id; list ids with --show-ids\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Report(&buf, tt.err)
			if buf.String() != tt.want {
				t.Errorf("Report() wrote %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

// TestFatal runs Fatal in a subprocess and checks the exit code and stderr
func TestFatal(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL") == "1" {
		Fatal(fmt.Errorf("%w: weeks must be 1-52", validation.ErrInvalidInput))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal$")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if e, ok := err.(*exec.ExitError); ok && !e.Success() {
		if e.ExitCode() != ExitInvalidInput {
			t.Errorf("Fatal() exit code = %d, want %d", e.ExitCode(), ExitInvalidInput)
		}
		if !strings.Contains(stderr.String(), "Error: invalid input: weeks must be 1-52") {
			t.Errorf("Fatal() stderr = %q", stderr.String())
		}
	} else {
		t.Errorf("Fatal() did not exit with error: %v", err)
	}
}

func TestFatal_NilError(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL_NIL") == "1" {
		Fatal(nil)
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal_NilError")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL_NIL=1")

	if err := cmd.Run(); err != nil {
		t.Errorf("Fatal(nil) should not exit, but got error: %v", err)
	}
}
