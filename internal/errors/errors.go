package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/lumenwell/lumen/internal/logger"
)

// Sentinel errors for the check-in core. None of these crash the process;
// they are returned to callers and surfaced by the CLI layer.
var (
	// ErrAlreadyCheckedInToday means the daily gate rejected a second
	// check-in of the same kind for the current calendar day.
	ErrAlreadyCheckedInToday = errors.New("already checked in today")

	// ErrSessionFinished means an answer was submitted to a questionnaire
	// session that is already completed or blocked for the day.
	ErrSessionFinished = errors.New("questionnaire session already finished for today")
)

// ValidationError reports a user-correctable problem with a single draft
// field. No state is mutated when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidation builds a ValidationError for the named field.
func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError and returns it.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// StorageError wraps a failed durable write. The store guarantees the
// previous value remains readable, so the operation can simply be retried.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NewStorage wraps err as a StorageError for the named operation.
func NewStorage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
