package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigBuilder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		builder  *ConfigBuilder
		expected string
	}{
		{
			name:    "commonjs empty multi-line",
			builder: NewConfigBuilder(),
			expected: "module.exports = {\n" +
				"  content: ['./src/**/*.html'],\n" +
				"  plugins: [\n  ],\n" +
				"}\n",
		},
		{
			name:    "esm inline with import",
			builder: NewConfigBuilder().ESM().Import("import forms from '@tailwindcss/forms'").Plugins("forms").Inline(),
			expected: "import forms from '@tailwindcss/forms'\n\n" +
				"export default {\n" +
				"  content: ['./src/**/*.html'],\n" +
				"  plugins: [forms],\n" +
				"}\n",
		},
		{
			name:    "tabs multi-line",
			builder: NewConfigBuilder().Tabs().Plugins("a()", "b()"),
			expected: "module.exports = {\n" +
				"\tcontent: ['./src/**/*.html'],\n" +
				"\tplugins: [\n\t\ta(),\n\t\tb(),\n\t],\n" +
				"}\n",
		},
		{
			name:    "no plugins",
			builder: NewConfigBuilder().WithoutPlugins(),
			expected: "module.exports = {\n" +
				"  content: ['./src/**/*.html'],\n" +
				"}\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.builder.Build())
		})
	}
}

func TestAssertEquivalentCode(t *testing.T) {
	t.Parallel()

	AssertEquivalentCode(t,
		"plugins: [a(), b()],",
		"plugins: [\n    a(),\n    b(),\n  ],")
}

func TestLoadFixture(t *testing.T) {
	t.Parallel()

	assert.Contains(t, string(LoadFixture(t, "globals.css")), `@import "tailwindcss";`)
	assert.Contains(t, string(LoadFixture(t, "tailwind.config.ts")), "plugins: [")
}
