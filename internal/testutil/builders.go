package testutil

import (
	"fmt"
	"strings"
)

// ConfigBuilder builds Tailwind config file text for tests.
type ConfigBuilder struct {
	esm       bool
	imports   []string
	plugins   []string
	inline    bool
	omitArray bool
	indent    string
}

// NewConfigBuilder creates a builder for a CommonJS config with an empty
// multi-line plugins array indented by two spaces.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{indent: "  "}
}

// ESM switches to import/export syntax.
func (b *ConfigBuilder) ESM() *ConfigBuilder {
	b.esm = true
	return b
}

// Import adds a top-of-file import or require line as written.
func (b *ConfigBuilder) Import(line string) *ConfigBuilder {
	b.imports = append(b.imports, line)
	return b
}

// Plugins sets the plugins array elements.
func (b *ConfigBuilder) Plugins(elems ...string) *ConfigBuilder {
	b.plugins = append(b.plugins, elems...)
	return b
}

// Inline renders the plugins array on a single line.
func (b *ConfigBuilder) Inline() *ConfigBuilder {
	b.inline = true
	return b
}

// WithoutPlugins leaves the plugins key out.
func (b *ConfigBuilder) WithoutPlugins() *ConfigBuilder {
	b.omitArray = true
	return b
}

// Tabs indents with tabs.
func (b *ConfigBuilder) Tabs() *ConfigBuilder {
	b.indent = "\t"
	return b
}

// Build renders the config text.
func (b *ConfigBuilder) Build() string {
	var sb strings.Builder

	for _, line := range b.imports {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	if len(b.imports) > 0 {
		sb.WriteString("\n")
	}

	if b.esm {
		sb.WriteString("export default {\n")
	} else {
		sb.WriteString("module.exports = {\n")
	}
	fmt.Fprintf(&sb, "%scontent: ['./src/**/*.html'],\n", b.indent)

	if !b.omitArray {
		switch {
		case b.inline:
			fmt.Fprintf(&sb, "%splugins: [%s],\n", b.indent, strings.Join(b.plugins, ", "))
		case len(b.plugins) == 0:
			fmt.Fprintf(&sb, "%splugins: [\n%s],\n", b.indent, b.indent)
		default:
			fmt.Fprintf(&sb, "%splugins: [\n", b.indent)
			for _, p := range b.plugins {
				fmt.Fprintf(&sb, "%s%s%s,\n", b.indent, b.indent, p)
			}
			fmt.Fprintf(&sb, "%s],\n", b.indent)
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}
