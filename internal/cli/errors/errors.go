// Package errors provides rich error types and display for the lcms CLI.
//
// Errors are designed to be user-friendly with:
//   - Clear error codes for categorization
//   - Actionable suggestions
//   - Terminal-aware formatting
package errors

import (
	"errors"
	"fmt"
	"strings"

	"lcms/internal/catalog"
	"lcms/internal/tui/themes"

	"github.com/charmbracelet/lipgloss"
)

// Code represents an error code for categorization.
type Code string

// Common error codes
const (
	CodeUnknown       Code = "UNKNOWN"
	CodeNotFound      Code = "NOT_FOUND"
	CodeDuplicate     Code = "DUPLICATE"
	CodeInvalidPath   Code = "INVALID_PATH"
	CodeRootProtected Code = "ROOT_PROTECTED"
	CodeValidation    Code = "VALIDATION"
	CodeConfigInvalid Code = "CONFIG_INVALID"
	CodeIO            Code = "IO"
	CodeUserCancelled Code = "USER_CANCELLED"
)

// Rich is an enhanced error with additional context for display.
type Rich struct {
	// Code is a unique error code for categorization
	Code Code
	// Message is the user-friendly error message
	Message string
	// Details provides additional technical information
	Details string
	// Suggestions are actionable items the user can try
	Suggestions []string
	// Cause is the underlying error
	Cause error
}

// Error implements the error interface.
func (e *Rich) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Rich) Unwrap() error {
	return e.Cause
}

// New creates a new Rich error.
func New(code Code, message string) *Rich {
	return &Rich{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, code Code, message string) *Rich {
	return &Rich{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// WithDetails adds technical details to the error.
func (e *Rich) WithDetails(details string) *Rich {
	e.Details = details
	return e
}

// WithSuggestions adds actionable suggestions.
func (e *Rich) WithSuggestions(suggestions ...string) *Rich {
	e.Suggestions = suggestions
	return e
}

// WithCause sets the underlying cause.
func (e *Rich) WithCause(cause error) *Rich {
	e.Cause = cause
	return e
}

// IsRich checks if an error is a Rich error.
func IsRich(err error) bool {
	var rich *Rich
	return errors.As(err, &rich)
}

// AsRich converts an error to a Rich error if possible.
func AsRich(err error) *Rich {
	var rich *Rich
	if errors.As(err, &rich) {
		return rich
	}
	return nil
}

// Classify maps catalog sentinels onto user-facing rich errors. The
// resource names what was being addressed ("book", "category") and handle
// is the title or path the user gave.
func Classify(err error, resource, handle string) *Rich {
	if rich := AsRich(err); rich != nil {
		return rich
	}

	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return NotFound(resource, handle)
	case errors.Is(err, catalog.ErrDuplicate):
		return Duplicate(handle)
	case errors.Is(err, catalog.ErrCategoryExists):
		return New(CodeDuplicate, fmt.Sprintf("Category already exists: %s", handle))
	case errors.Is(err, catalog.ErrRootProtected):
		return RootProtected()
	case errors.Is(err, catalog.ErrInvalidPath):
		return InvalidPath(handle)
	}
	return Wrap(err, CodeUnknown, err.Error())
}

// Display formats and prints the error with terminal styling.
func Display(err error, theme *themes.Theme) string {
	if theme == nil {
		theme = themes.Detect()
	}

	rich := AsRich(err)
	if rich == nil {
		// Wrap plain error
		rich = Wrap(err, CodeUnknown, err.Error())
	}

	var b strings.Builder

	// Error box style
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Palette.Error).
		Padding(0, 1).
		Width(60)

	codeStyle := lipgloss.NewStyle().
		Foreground(theme.Palette.TextMuted).
		Italic(true)

	b.WriteString(theme.Error.Render("✗ Error"))
	b.WriteString(" ")
	b.WriteString(codeStyle.Render(fmt.Sprintf("[%s]", rich.Code)))
	b.WriteString("\n\n")

	// Message
	b.WriteString(rich.Message)
	b.WriteString("\n")

	// Details
	if rich.Details != "" {
		b.WriteString("\n")
		b.WriteString(theme.Muted.Render(rich.Details))
		b.WriteString("\n")
	}

	// Cause
	if rich.Cause != nil {
		b.WriteString("\n")
		b.WriteString(theme.Muted.Render("Caused by: " + rich.Cause.Error()))
		b.WriteString("\n")
	}

	// Suggestions
	if len(rich.Suggestions) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Info.Render("Try:"))
		b.WriteString("\n")

		for _, s := range rich.Suggestions {
			b.WriteString("  • ")
			b.WriteString(s)
			b.WriteString("\n")
		}
	}

	return boxStyle.Render(b.String())
}

// DisplaySimple formats an error for non-terminal output.
func DisplaySimple(err error) string {
	rich := AsRich(err)
	if rich == nil {
		return fmt.Sprintf("Error: %v", err)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Error [%s]: %s\n", rich.Code, rich.Message))

	if rich.Details != "" {
		b.WriteString(fmt.Sprintf("  Details: %s\n", rich.Details))
	}

	if rich.Cause != nil {
		b.WriteString(fmt.Sprintf("  Caused by: %v\n", rich.Cause))
	}

	if len(rich.Suggestions) > 0 {
		b.WriteString("  Try:\n")
		for _, s := range rich.Suggestions {
			b.WriteString(fmt.Sprintf("    - %s\n", s))
		}
	}

	return b.String()
}

// Common errors with helpful messages

// NotFound returns a resource not found error.
func NotFound(resource, handle string) *Rich {
	return New(CodeNotFound, fmt.Sprintf("%s not found: %s", resource, handle)).
		WithSuggestions(
			"Run 'lcms list' to see the category tree",
			"Run 'lcms book list' to see every book",
			"Run 'lcms find <keyword>' to search by keyword",
		)
}

// Duplicate returns an error for a book the library already holds.
func Duplicate(title string) *Rich {
	return New(CodeDuplicate, fmt.Sprintf("Book already in the library: %s", title)).
		WithDetails("Books match on ISBN when both have one, otherwise on title, author and year.").
		WithSuggestions(
			"Run 'lcms book edit' to update the existing entry",
			"Run 'lcms find' to locate the existing copy",
		)
}

// InvalidPath returns an error for an unusable category path.
func InvalidPath(path string) *Rich {
	return New(CodeInvalidPath, fmt.Sprintf("Category path is not usable: %q", path)).
		WithSuggestions(
			"Separate nested categories with '/', e.g. Fiction/Sci-Fi",
			"Category names cannot be empty",
		)
}

// RootProtected returns an error for operations aimed at the root category.
func RootProtected() *Rich {
	return New(CodeRootProtected, "The root category cannot be renamed or removed").
		WithSuggestions(
			"Address a category below the root, e.g. 'lcms category remove Fiction'",
			"Set library.root_name in the config to change the root's display name",
		)
}

// ConfigInvalid returns a config validation error.
func ConfigInvalid(path string, validationErr error) *Rich {
	return New(CodeConfigInvalid, "Configuration file is invalid").
		WithDetails(fmt.Sprintf("File: %s", path)).
		WithCause(validationErr).
		WithSuggestions(
			"Check the configuration file syntax",
			"Run 'lcms config init' to regenerate a default configuration",
		)
}

// IO returns an error for a failed file operation. The operation names
// its object, e.g. "load library" or "open import file".
func IO(operation, path string, cause error) *Rich {
	return New(CodeIO, fmt.Sprintf("Failed to %s", operation)).
		WithDetails(fmt.Sprintf("File: %s", path)).
		WithCause(cause).
		WithSuggestions(
			"Check the file exists and the directory is writable",
			"Run 'lcms config path' to see which library file is in use",
		)
}

// UserCancelled returns an error indicating the user cancelled the operation.
func UserCancelled() *Rich {
	return New(CodeUserCancelled, "Operation cancelled by user")
}
