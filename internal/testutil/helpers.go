// Package testutil provides test helpers and fixtures for cornershape tests.
package testutil

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:embed fixtures/*
var fixturesFS embed.FS

// WriteTempFile writes content to a file in dir, creating parent
// directories as needed, and returns its path.
func WriteTempFile(t *testing.T, dir, filename, content string) string {
	t.Helper()

	p := filepath.Join(dir, filename)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755), "failed to create parent of %s", filename)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644), "failed to write temp file: %s", filename)

	return p
}

// LoadFixture loads a fixture file from the embedded fixtures directory.
func LoadFixture(t *testing.T, name string) []byte {
	t.Helper()

	content, err := fixturesFS.ReadFile(path.Join("fixtures", name))
	require.NoError(t, err, "failed to load fixture: %s", name)

	return content
}

// WriteFixtureToDir writes a fixture file to dir under destName.
func WriteFixtureToDir(t *testing.T, dir, fixtureName, destName string) string {
	t.Helper()

	content := LoadFixture(t, fixtureName)
	return WriteTempFile(t, dir, destName, string(content))
}

// NewProject creates a temporary project directory holding files, keyed
// by project-relative path.
func NewProject(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		WriteTempFile(t, dir, name, content)
	}
	return dir
}
