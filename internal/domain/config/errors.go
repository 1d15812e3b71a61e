package config

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorization.
const (
	ErrCodeConfigNotFound       = "CONFIG_NOT_FOUND"
	ErrCodeStylesheetNotFound   = "STYLESHEET_NOT_FOUND"
	ErrCodePluginsArrayNotFound = "PLUGINS_ARRAY_NOT_FOUND"
	ErrCodeFileRead             = "FILE_READ"
	ErrCodeFileWrite            = "FILE_WRITE"
	ErrCodeSettingsParse        = "SETTINGS_PARSE"
	ErrCodeThemeParse           = "THEME_PARSE"
	ErrCodeInvalidShape         = "INVALID_SHAPE"
	ErrCodeInvalidPreset        = "INVALID_PRESET"
	ErrCodeValidationFailed     = "VALIDATION_FAILED"
)

// UserError represents a user-friendly error with actionable suggestions.
type UserError struct {
	Code       string // Error code for categorization (e.g., "CONFIG_NOT_FOUND")
	Message    string // User-friendly error message
	Context    string // File path or option name the error refers to
	Suggestion string // Actionable suggestion to fix the error
	Underlying error  // Wrapped error for error chain
}

// Error returns the message with its context, if any.
func (e *UserError) Error() string {
	if e.Context == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (at %s)", e.Message, e.Context)
}

// Unwrap returns the underlying error for error chain support.
func (e *UserError) Unwrap() error {
	return e.Underlying
}

// Is supports errors.Is() for comparing error codes.
func (e *UserError) Is(target error) bool {
	if t, ok := target.(*UserError); ok {
		return e.Code == t.Code
	}
	return false
}

// Format returns a fully formatted error with all details.
func (e *UserError) Format() string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)
	if e.Context != "" {
		fmt.Fprintf(&b, "\n  Location: %s", e.Context)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n  Suggestion: %s", e.Suggestion)
	}

	return b.String()
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code, message string) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
	}
}

// WithContext returns a copy of e with context set.
func (e *UserError) WithContext(ctx string) *UserError {
	c := *e
	c.Context = ctx
	return &c
}

// WithSuggestion returns a copy of e with suggestion set.
func (e *UserError) WithSuggestion(suggestion string) *UserError {
	c := *e
	c.Suggestion = suggestion
	return &c
}

// WithUnderlying returns a copy of e wrapping err.
func (e *UserError) WithUnderlying(err error) *UserError {
	c := *e
	c.Underlying = err
	return &c
}

// ErrorList accumulates multiple errors for comprehensive reporting.
type ErrorList struct {
	errors []*UserError
}

// NewErrorList creates an empty ErrorList.
func NewErrorList() *ErrorList {
	return &ErrorList{}
}

// Add adds an error to the list.
func (l *ErrorList) Add(err *UserError) {
	if err != nil {
		l.errors = append(l.errors, err)
	}
}

// AddValidation adds a validation error to the list.
func (l *ErrorList) AddValidation(field, message, suggestion string) {
	l.Add(&UserError{
		Code:       ErrCodeValidationFailed,
		Message:    fmt.Sprintf("%s: %s", field, message),
		Context:    field,
		Suggestion: suggestion,
	})
}

// HasErrors returns true if there are any errors.
func (l *ErrorList) HasErrors() bool {
	return len(l.errors) > 0
}

// Len returns the number of errors.
func (l *ErrorList) Len() int {
	return len(l.errors)
}

// Errors returns a copy of the accumulated errors.
func (l *ErrorList) Errors() []*UserError {
	result := make([]*UserError, len(l.errors))
	copy(result, l.errors)
	return result
}

// Error implements the error interface for ErrorList.
func (l *ErrorList) Error() string {
	switch len(l.errors) {
	case 0:
		return ""
	case 1:
		return l.errors[0].Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d errors occurred:\n", len(l.errors))
	for i, err := range l.errors {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, err.Error())
	}
	return b.String()
}

// AsError returns the ErrorList as an error, or nil if empty.
func (l *ErrorList) AsError() error {
	if !l.HasErrors() {
		return nil
	}
	return l
}

// NewConfigNotFoundError reports that no tailwind.config file exists in dir.
func NewConfigNotFoundError(dir string) *UserError {
	return &UserError{
		Code:       ErrCodeConfigNotFound,
		Message:    "no tailwind.config file found",
		Context:    dir,
		Suggestion: "Run the command from your project root, or add the plugin manually.",
	}
}

// NewStylesheetNotFoundError reports that no stylesheet imports tailwindcss.
func NewStylesheetNotFoundError(dir string) *UserError {
	return &UserError{
		Code:       ErrCodeStylesheetNotFound,
		Message:    `no stylesheet with @import "tailwindcss" found`,
		Context:    dir,
		Suggestion: `Add the @plugin line below your @import "tailwindcss" line manually, or list your stylesheet under "stylesheets" in .cornershape.yaml.`,
	}
}

// NewPluginsArrayNotFoundError reports a config without a plugins: [ ... ] array.
func NewPluginsArrayNotFoundError(path string) *UserError {
	return &UserError{
		Code:       ErrCodePluginsArrayNotFound,
		Message:    "could not find a plugins array to extend",
		Context:    path,
		Suggestion: "Add `plugins: []` to your Tailwind config and run the command again.",
	}
}

// NewFileReadError wraps a failed read of path.
func NewFileReadError(path string, err error) *UserError {
	return &UserError{
		Code:       ErrCodeFileRead,
		Message:    "failed to read file",
		Context:    path,
		Suggestion: "Check that the file is readable.",
		Underlying: err,
	}
}

// NewFileWriteError wraps a failed write of path.
func NewFileWriteError(path string, err error) *UserError {
	return &UserError{
		Code:       ErrCodeFileWrite,
		Message:    "failed to write file",
		Context:    path,
		Suggestion: "Check the file permissions, or apply the change manually.",
		Underlying: err,
	}
}

// NewInvalidShapeError reports a corner-shape value the CSS property rejects.
func NewInvalidShapeError(field, value string) *UserError {
	return &UserError{
		Code:       ErrCodeInvalidShape,
		Message:    fmt.Sprintf("invalid corner-shape value %q", value),
		Context:    field,
		Suggestion: "Use one of round, scoop, bevel, notch, square, squircle, or superellipse(<number>).",
	}
}

// NewInvalidPresetError reports an unknown preset key or name.
func NewInvalidPresetError(value string, available []string) *UserError {
	return &UserError{
		Code:       ErrCodeInvalidPreset,
		Message:    fmt.Sprintf("unknown preset %q", value),
		Suggestion: fmt.Sprintf("Available presets: %s", strings.Join(available, ", ")),
	}
}

// NewSettingsParseError wraps a decoding failure of a settings file.
func NewSettingsParseError(path string, err error) *UserError {
	return &UserError{
		Code:       ErrCodeSettingsParse,
		Message:    "failed to parse settings file",
		Context:    withLine(path, err),
		Suggestion: "Check the file syntax; keys are preset, mode, stylesheets, skip_setup and options.",
		Underlying: err,
	}
}

// NewThemeParseError wraps a decoding failure of a theme file.
func NewThemeParseError(path string, err error) *UserError {
	return &UserError{
		Code:       ErrCodeThemeParse,
		Message:    "failed to parse theme file",
		Context:    withLine(path, err),
		Suggestion: "The theme file must map border-radius keys to values, optionally under a borderRadius key.",
		Underlying: err,
	}
}

// withLine appends the line number reported by a YAML or TOML decoder.
func withLine(path string, err error) string {
	if err == nil {
		return path
	}
	errStr := err.Error()
	idx := strings.Index(errStr, "line ")
	if idx < 0 {
		return path
	}
	rest := errStr[idx+len("line "):]
	end := strings.IndexFunc(rest, func(r rune) bool { return r < '0' || r > '9' })
	if end == 0 {
		return path
	}
	if end > 0 {
		rest = rest[:end]
	}
	return fmt.Sprintf("%s (line %s)", path, rest)
}

// IsUserError checks if an error is a UserError with a specific code.
func IsUserError(err error, code string) bool {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Code == code
	}
	return false
}

// GetUserError extracts a UserError from an error chain, if present.
func GetUserError(err error) *UserError {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue
	}
	return nil
}
