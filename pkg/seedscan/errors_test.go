package seedscan_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/seedscan/pkg/seedscan"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, seedscan.ExitSuccess},
		{"general error", errors.New("something went wrong"), seedscan.ExitGeneralError},
		{"invalid config", seedscan.ErrInvalidConfig, seedscan.ExitConfigError},
		{"wrapped invalid config", fmt.Errorf("missing DB_HOST: %w", seedscan.ErrInvalidConfig), seedscan.ExitConfigError},
		{"connection failed", seedscan.ErrConnectionFailed, seedscan.ExitConnectionError},
		{"directory not found", fmt.Errorf("'/tmp/x': %w", seedscan.ErrDirectoryNotFound), seedscan.ExitDirectoryNotFound},
		{"execution failed", seedscan.ErrExecutionFailed, seedscan.ExitExecutionFailed},
		{"prepare failed", seedscan.ErrPrepareFailed, seedscan.ExitExecutionFailed},
		{"raw refused", errors.New("dial tcp: connection refused"), seedscan.ExitConnectionError},
		{"raw dns", errors.New("lookup db: no such host"), seedscan.ExitConnectionError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := seedscan.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeForError_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"unknown flag", errors.New("unknown flag: --foo")},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x' in -x")},
		{"unknown command", errors.New(`unknown command "frob" for "seedscan"`)},
		{"accepts args", errors.New("accepts at most 1 arg(s), received 2")},
		{"invalid argument", errors.New(`invalid argument "abc" for "--records" flag`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := seedscan.ExitCodeForError(tt.err); got != seedscan.ExitUsageError {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, seedscan.ExitUsageError)
			}
		})
	}
}
