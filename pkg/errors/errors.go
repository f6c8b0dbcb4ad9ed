package errors

import (
	"fmt"
	"os"

	"clipstash/pkg/logger"

	"github.com/fatih/color"
)

type ExitCode int

const (
	ExitCodeSuccess       ExitCode = 0
	ExitCodeGeneral       ExitCode = 1
	ExitCodeConfig        ExitCode = 2
	ExitCodeValidation    ExitCode = 3
	ExitCodeNotFound      ExitCode = 4
	ExitCodeClipboard     ExitCode = 5
	ExitCodeFileOperation ExitCode = 6
	ExitCodeCancellation  ExitCode = 7
)

type Error struct {
	Code       ExitCode
	Message    string
	Underlying error
	Suggestion string
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Underlying)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

func New(code ExitCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func NewWithError(code ExitCode, message string, err error) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Underlying: err,
	}
}

func NewWithSuggestion(code ExitCode, message string, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if wrapped, ok := err.(*Error); ok {
		return &Error{
			Code:       wrapped.Code,
			Message:    message + ": " + wrapped.Message,
			Underlying: wrapped.Underlying,
			Suggestion: wrapped.Suggestion,
		}
	}

	return &Error{
		Code:       ExitCodeGeneral,
		Message:    message,
		Underlying: err,
	}
}

func IsExitCode(err error, code ExitCode) bool {
	if err == nil {
		return false
	}

	if e, ok := err.(*Error); ok {
		return e.Code == code
	}

	return false
}

// HandleReturn processes an error and returns the appropriate exit code.
// It does not call os.Exit - the caller is responsible for exiting the
// program.
func HandleReturn(err error) ExitCode {
	if err == nil {
		return ExitCodeSuccess
	}

	var exitCode ExitCode = ExitCodeGeneral
	var message string
	var suggestion string

	if e, ok := err.(*Error); ok {
		exitCode = e.Code
		message = e.Message
		suggestion = e.Suggestion

		if e.Underlying != nil {
			logger.Error().Err(e.Underlying).Msg(e.Message)
		} else {
			logger.Error().Msg(e.Message)
		}
	} else {
		message = err.Error()
		logger.Error().Msg(message)
	}

	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)

	fmt.Fprintln(os.Stderr)
	red.Fprint(os.Stderr, "Error: ")
	fmt.Fprintln(os.Stderr, message)

	if suggestion != "" {
		yellow.Fprint(os.Stderr, "Suggestion: ")
		fmt.Fprintln(os.Stderr, suggestion)
	}

	fmt.Fprintln(os.Stderr)

	return exitCode
}

func ValidationError(message string) *Error {
	return &Error{
		Code:    ExitCodeValidation,
		Message: message,
	}
}

func ConfigError(message string) *Error {
	return &Error{
		Code:       ExitCodeConfig,
		Message:    message,
		Suggestion: "Check your configuration file or set the required environment variables.",
	}
}

func KeyNotFoundError(key string) *Error {
	return &Error{
		Code:       ExitCodeNotFound,
		Message:    fmt.Sprintf("key '%s' does not exist", key),
		Suggestion: "Use 'clipstash list' to see the stored keys.",
	}
}

func KeyNotFoundErrorWithSuggestions(key string, suggestions []string) *Error {
	suggestionText := "Use 'clipstash list' to see the stored keys."
	if len(suggestions) > 0 {
		suggestionText = "Did you mean: " + joinQuoted(suggestions) + "? Or use 'clipstash list' to see all keys."
	}
	return &Error{
		Code:       ExitCodeNotFound,
		Message:    fmt.Sprintf("key '%s' does not exist", key),
		Suggestion: suggestionText,
	}
}

func joinQuoted(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += "'" + item + "'"
	}
	return out
}

func ClipboardError(err error) *Error {
	return &Error{
		Code:       ExitCodeClipboard,
		Message:    "clipboard access failed",
		Underlying: err,
		Suggestion: "On Linux make sure xclip, xsel or wl-clipboard is installed.",
	}
}

func FileError(message string, err error) *Error {
	return &Error{
		Code:       ExitCodeFileOperation,
		Message:    message,
		Underlying: err,
	}
}

func CanceledError(operation string) *Error {
	return &Error{
		Code:       ExitCodeCancellation,
		Message:    fmt.Sprintf("operation canceled: %s", operation),
		Suggestion: "The operation was interrupted. No changes were made.",
	}
}
