package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/roach88/todo/internal/store"
	"github.com/roach88/todo/internal/todo"
)

// Exit codes for CLI commands.
const (
	ExitSuccess    = 0 // Successful execution
	ExitFailure    = 1 // Runtime failure (duplicate title, database errors, etc.)
	ExitUsageError = 2 // Usage error (unknown command, missing arguments, bad flag values, etc.)
)

// Error codes reported in JSON error output.
const (
	CodeUsage          = "USAGE"
	CodeDuplicateTitle = "DUPLICATE_TITLE"
	CodeEmptyTitle     = "EMPTY_TITLE"
	CodeInvalidTitle   = "INVALID_TITLE"
	CodeFailure        = "FAILURE"
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitUsageError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// ErrorCode classifies an error for machine-readable output.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, store.ErrDuplicateTitle):
		return CodeDuplicateTitle
	case errors.Is(err, todo.ErrEmptyTitle):
		return CodeEmptyTitle
	case errors.Is(err, todo.ErrInvalidTitle):
		return CodeInvalidTitle
	case GetExitCode(err) == ExitUsageError:
		return CodeUsage
	default:
		return CodeFailure
	}
}

// OutputFormatter writes errors in the selected output format.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the JSON envelope for error output.
type CLIResponse struct {
	Status string    `json:"status"`          // "error"
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`    // "USAGE", "DUPLICATE_TITLE", etc.
	Message string `json:"message"` // human-readable message
}

// Error outputs err in the configured format. Usage errors carry a hint
// listing the valid subcommands.
func (f *OutputFormatter) Error(err *ExitError) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    ErrorCode(err),
				Message: err.Error(),
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error: %s\n", err.Error())
	if err.Code == ExitUsageError {
		fmt.Fprintf(f.Writer, "Valid commands: %s\n", strings.Join(Subcommands, ", "))
		fmt.Fprintln(f.Writer, "Run 'todo --help' for usage.")
	}
	return nil
}
