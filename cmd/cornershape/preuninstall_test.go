package main

import (
	"path/filepath"
	"testing"

	"github.com/felixgeelhaar/cornershape/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemove_RoundTrip(t *testing.T) {
	dir := tsProject(t)
	path := filepath.Join(dir, "tailwind.config.ts")
	original := testutil.ReadFile(t, path)

	_, _, err := executeCommand(t, "", "init", "--dir", dir, "--yes")
	require.NoError(t, err)
	require.NotEqual(t, original, testutil.ReadFile(t, path))

	out, _, err := executeCommand(t, "", "remove", "--dir", dir)
	require.NoError(t, err)

	testutil.AssertEquivalentCode(t, original, testutil.ReadFile(t, path))
	assert.Contains(t, out, "Plugin removed from tailwind.config.ts")
	assert.Contains(t, out, "Thanks for using tailwindcss-corner-shape!")
}

func TestRemove_BothTargets(t *testing.T) {
	dir := testutil.NewProject(t, map[string]string{
		"tailwind.config.js": string(testutil.LoadFixture(t, "tailwind.config.js")),
		"src/index.css":      string(testutil.LoadFixture(t, "globals.css")),
	})
	css := filepath.Join(dir, "src", "index.css")

	_, _, err := executeCommand(t, "", "init", "--dir", dir, "--yes")
	require.NoError(t, err)
	_, _, err = executeCommand(t, "", "init", "--dir", dir, "--yes", "--mode", "v4")
	require.NoError(t, err)
	testutil.AssertFileContains(t, css, "@plugin")

	out, _, err := executeCommand(t, "", "preuninstall", "--dir", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Plugin removed from tailwind.config.js")
	assert.Contains(t, out, "Plugin removed from index.css")
	testutil.AssertFileEquals(t, css, string(testutil.LoadFixture(t, "globals.css")))
	testutil.AssertFileNotContains(t, filepath.Join(dir, "tailwind.config.js"), "cornerShapePlugin")
	testutil.AssertFileNotContains(t, filepath.Join(dir, "tailwind.config.js"), "tailwindcss-corner-shape")
}

func TestRemove_DryRun(t *testing.T) {
	dir := tsProject(t)
	path := filepath.Join(dir, "tailwind.config.ts")

	_, _, err := executeCommand(t, "", "init", "--dir", dir, "--yes")
	require.NoError(t, err)
	configured := testutil.ReadFile(t, path)

	out, _, err := executeCommand(t, "", "remove", "--dir", dir, "--dry-run")
	require.NoError(t, err)

	assert.Equal(t, configured, testutil.ReadFile(t, path))
	assert.Contains(t, out, "- import cornerShapePlugin from 'tailwindcss-corner-shape'")
	assert.Contains(t, out, "-     cornerShapePlugin({ default: 'squircle' }),")
	assert.NotContains(t, out, "Thanks for using")
}

func TestRemove_NothingToDo(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  string
	}{
		{"no files", map[string]string{}, "Nothing to clean up"},
		{"not present", map[string]string{"tailwind.config.ts": "export default { plugins: [] }\n"}, "Plugin not found in tailwind.config.ts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := testutil.NewProject(t, tt.files)

			out, _, err := executeCommand(t, "", "remove", "--dir", dir)

			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestPreuninstall_HookMode(t *testing.T) {
	project, pkg := installedProject(t, map[string]string{
		"tailwind.config.ts": string(testutil.LoadFixture(t, "tailwind.config.ts")),
	})
	path := filepath.Join(project, "tailwind.config.ts")

	_, _, err := executeCommand(t, "", "init", "--dir", project, "--yes")
	require.NoError(t, err)

	out, _, err := executeCommand(t, "", "preuninstall", "--from", pkg)
	require.NoError(t, err)

	testutil.AssertEquivalentCode(t, string(testutil.LoadFixture(t, "tailwind.config.ts")), testutil.ReadFile(t, path))
	assert.Contains(t, out, "Cleanup")
}
