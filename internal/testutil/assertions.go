package testutil

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ReadFile returns the content of path, failing the test on error.
func ReadFile(t testing.TB, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read file: %s", path)
	return strings.ReplaceAll(string(content), "\r\n", "\n")
}

// AssertFileContains asserts that a file contains the expected substring.
func AssertFileContains(t testing.TB, path, expected string, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Contains(t, ReadFile(t, path), expected, msgAndArgs...)
}

// AssertFileNotContains asserts that a file does not contain the substring.
func AssertFileNotContains(t testing.TB, path, unexpected string, msgAndArgs ...interface{}) {
	t.Helper()
	assert.NotContains(t, ReadFile(t, path), unexpected, msgAndArgs...)
}

// AssertFileEquals asserts that a file contains exactly the expected content.
func AssertFileEquals(t testing.TB, path, expected string, msgAndArgs ...interface{}) {
	t.Helper()
	expected = strings.ReplaceAll(expected, "\r\n", "\n")
	assert.Equal(t, expected, ReadFile(t, path), msgAndArgs...)
}

// AssertContainsOnce asserts that substr occurs exactly once in text.
func AssertContainsOnce(t testing.TB, text, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, 1, strings.Count(text, substr), msgAndArgs...)
}

// AssertEquivalentCode asserts that two config texts are equal once all
// whitespace is dropped and trailing list commas are ignored.
func AssertEquivalentCode(t testing.TB, expected, actual string, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, squash(expected), squash(actual), msgAndArgs...)
}

func squash(text string) string {
	squashed := strings.Join(strings.Fields(text), "")
	squashed = strings.ReplaceAll(squashed, ",]", "]")
	return strings.ReplaceAll(squashed, ",}", "}")
}
