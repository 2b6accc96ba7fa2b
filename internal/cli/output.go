package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/potlib/potrec/internal/model"
	"github.com/potlib/potrec/internal/record"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Validation failure, no matching records, etc.
	ExitCommandError = 2 // Command error (invalid flags, unreadable files, etc.)
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
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
	if err != nil {
		return ExitFailure
	}
	return ExitSuccess
}

// writeDocument renders a document tree to w in the requested format.
// "text" is the indented printable form, "json" is compact, "yaml" keeps
// the document's key order.
func writeDocument(w io.Writer, doc *model.Map, format string) error {
	switch format {
	case "json":
		data, err := model.Marshal(doc)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := model.MarshalYAML(doc)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default: // text
		data, err := model.MarshalIndent(doc, "    ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
}

// writeRecord renders a record's document form to w.
func writeRecord(w io.Writer, rec *record.Record, format string) error {
	doc, err := rec.BuildModel()
	if err != nil {
		return err
	}
	return writeDocument(w, doc, format)
}
