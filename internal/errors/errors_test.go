package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "plain error",
			err:  stderrors.New("something broke"),
			want: "Error: something broke",
		},
		{
			name: "wrapped error",
			err:  fmt.Errorf("outer: %w", stderrors.New("inner")),
			want: "Error: outer: inner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidation("journalEntry", "must not be empty")

	if got := err.Error(); got != "invalid journalEntry: must not be empty" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := fmt.Errorf("submit: %w", err)
	ve, ok := IsValidation(wrapped)
	if !ok {
		t.Fatal("IsValidation() = false for wrapped ValidationError")
	}
	if ve.Field != "journalEntry" {
		t.Errorf("Field = %q, want journalEntry", ve.Field)
	}

	if _, ok := IsValidation(stderrors.New("other")); ok {
		t.Error("IsValidation() = true for unrelated error")
	}
}

func TestStorageError(t *testing.T) {
	cause := stderrors.New("disk full")
	err := NewStorage("set streakData", cause)

	if !stderrors.Is(err, cause) {
		t.Error("StorageError does not unwrap to its cause")
	}
	if got := err.Error(); got != "storage set streakData failed: disk full" {
		t.Errorf("Error() = %q", got)
	}
}

func TestSentinels(t *testing.T) {
	if !stderrors.Is(fmt.Errorf("gate: %w", ErrAlreadyCheckedInToday), ErrAlreadyCheckedInToday) {
		t.Error("ErrAlreadyCheckedInToday not matched through wrapping")
	}
}
