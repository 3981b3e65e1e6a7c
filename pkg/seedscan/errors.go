package seedscan

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := svc.Run(ctx, cfg, os.Stdout)
//	if errors.Is(err, seedscan.ErrConnectionFailed) {
//	    // database unreachable, credentials rejected or database missing
//	}
var (
	// ErrInvalidConfig indicates the configuration source is missing, unreadable or incomplete.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConnectionFailed indicates the database connection could not be established.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrDirectoryNotFound indicates the scanned directory does not exist.
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrExecutionFailed indicates SQL execution failed.
	ErrExecutionFailed = errors.New("execution failed")

	// ErrPrepareFailed indicates a statement could not be prepared by the server.
	ErrPrepareFailed = errors.New("prepare failed")
)

// usageErrorPatterns are substrings cobra uses for argument and flag errors.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrConnectionFailed):
		return ExitConnectionError
	case errors.Is(err, ErrDirectoryNotFound):
		return ExitDirectoryNotFound
	case errors.Is(err, ErrExecutionFailed), errors.Is(err, ErrPrepareFailed):
		return ExitExecutionFailed
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	if strings.Contains(errStr, "failed to connect") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") {
		return ExitConnectionError
	}

	return ExitGeneralError
}
