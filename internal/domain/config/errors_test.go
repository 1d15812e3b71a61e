package config

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *UserError
		expected string
	}{
		{
			name:     "simple message",
			err:      &UserError{Code: ErrCodeConfigNotFound, Message: "no tailwind.config file found"},
			expected: "no tailwind.config file found",
		},
		{
			name: "message with context",
			err: &UserError{
				Code:    ErrCodeConfigNotFound,
				Message: "no tailwind.config file found",
				Context: "/app",
			},
			expected: "no tailwind.config file found (at /app)",
		},
		{
			name: "suggestion is not part of Error",
			err: &UserError{
				Code:       ErrCodeFileWrite,
				Message:    "failed to write file",
				Context:    "tailwind.config.js",
				Suggestion: "check permissions",
			},
			expected: "failed to write file (at tailwind.config.js)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestUserError_Format(t *testing.T) {
	t.Parallel()

	err := NewPluginsArrayNotFoundError("tailwind.config.js")
	formatted := err.Format()

	assert.Contains(t, formatted, "[PLUGINS_ARRAY_NOT_FOUND]")
	assert.Contains(t, formatted, "Location: tailwind.config.js")
	assert.Contains(t, formatted, "Suggestion: Add `plugins: []`")
}

func TestUserError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("permission denied")
	err := NewFileWriteError("tailwind.config.ts", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, err.Unwrap())
}

func TestUserError_Is(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("install: %w", NewConfigNotFoundError("/app"))

	assert.ErrorIs(t, err, &UserError{Code: ErrCodeConfigNotFound})
	assert.NotErrorIs(t, err, &UserError{Code: ErrCodeFileRead})
}

func TestUserError_WithersCopy(t *testing.T) {
	t.Parallel()

	base := NewUserError(ErrCodeValidationFailed, "bad value")
	cause := errors.New("boom")

	derived := base.WithContext("options.default").
		WithSuggestion("use squircle").
		WithUnderlying(cause)

	assert.Empty(t, base.Context)
	assert.Empty(t, base.Suggestion)
	require.NoError(t, base.Unwrap())
	assert.Equal(t, "options.default", derived.Context)
	assert.Equal(t, "use squircle", derived.Suggestion)
	assert.Equal(t, cause, derived.Unwrap())
}

func TestErrorList(t *testing.T) {
	t.Parallel()

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()
		list := NewErrorList()
		list.Add(nil)

		assert.False(t, list.HasErrors())
		assert.Equal(t, 0, list.Len())
		assert.Empty(t, list.Error())
		assert.NoError(t, list.AsError())
	})

	t.Run("single error", func(t *testing.T) {
		t.Parallel()
		list := NewErrorList()
		list.AddValidation("variants.card", "invalid shape", "use bevel")

		require.Equal(t, 1, list.Len())
		assert.Equal(t, "variants.card: invalid shape (at variants.card)", list.Error())
		assert.Equal(t, ErrCodeValidationFailed, list.Errors()[0].Code)
	})

	t.Run("multiple errors", func(t *testing.T) {
		t.Parallel()
		list := NewErrorList()
		list.Add(NewInvalidShapeError("default", "wobbly"))
		list.Add(NewInvalidShapeError("variants.card", "zigzag"))

		msg := list.Error()
		assert.Contains(t, msg, "2 errors occurred")
		assert.Contains(t, msg, `1. invalid corner-shape value "wobbly" (at default)`)
		assert.Contains(t, msg, `2. invalid corner-shape value "zigzag" (at variants.card)`)
		assert.Error(t, list.AsError())
	})

	t.Run("Errors returns a copy", func(t *testing.T) {
		t.Parallel()
		list := NewErrorList()
		list.Add(NewUserError(ErrCodeFileRead, "a"))

		errs := list.Errors()
		errs[0] = nil
		assert.NotNil(t, list.Errors()[0])
	})
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     *UserError
		code    string
		context string
	}{
		{"config not found", NewConfigNotFoundError("/app"), ErrCodeConfigNotFound, "/app"},
		{"stylesheet not found", NewStylesheetNotFoundError("/app"), ErrCodeStylesheetNotFound, "/app"},
		{"plugins array", NewPluginsArrayNotFoundError("tailwind.config.js"), ErrCodePluginsArrayNotFound, "tailwind.config.js"},
		{"file read", NewFileReadError("a.js", errors.New("x")), ErrCodeFileRead, "a.js"},
		{"file write", NewFileWriteError("a.js", errors.New("x")), ErrCodeFileWrite, "a.js"},
		{"invalid shape", NewInvalidShapeError("default", "blob"), ErrCodeInvalidShape, "default"},
		{"invalid preset", NewInvalidPresetError("99", []string{"1", "2"}), ErrCodeInvalidPreset, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.context, tt.err.Context)
			assert.NotEmpty(t, tt.err.Suggestion)
		})
	}
}

func TestNewInvalidPresetError_ListsAvailable(t *testing.T) {
	t.Parallel()

	err := NewInvalidPresetError("99", []string{"1", "2", "squircle"})
	assert.Equal(t, "Available presets: 1, 2, squircle", err.Suggestion)
}

func TestParseErrors_IncludeLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"yaml style", errors.New("yaml: line 3: did not find expected key"), ".cornershape.yaml (line 3)"},
		{"no line", errors.New("unexpected EOF"), ".cornershape.yaml"},
		{"line without number", errors.New("bad line here"), ".cornershape.yaml"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := NewSettingsParseError(".cornershape.yaml", tt.err)
			assert.Equal(t, ErrCodeSettingsParse, err.Code)
			assert.Equal(t, tt.expected, err.Context)

			themeErr := NewThemeParseError(".cornershape.yaml", tt.err)
			assert.Equal(t, ErrCodeThemeParse, themeErr.Code)
			assert.Equal(t, tt.expected, themeErr.Context)
		})
	}
}

func TestIsUserError(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("outer: %w", NewConfigNotFoundError("/app"))

	assert.True(t, IsUserError(wrapped, ErrCodeConfigNotFound))
	assert.False(t, IsUserError(wrapped, ErrCodeFileRead))
	assert.False(t, IsUserError(errors.New("plain"), ErrCodeConfigNotFound))
	assert.False(t, IsUserError(nil, ErrCodeConfigNotFound))
}

func TestGetUserError(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("outer: %w", NewStylesheetNotFoundError("/app"))

	ue := GetUserError(wrapped)
	require.NotNil(t, ue)
	assert.Equal(t, ErrCodeStylesheetNotFound, ue.Code)
	assert.Nil(t, GetUserError(errors.New("plain")))
}
