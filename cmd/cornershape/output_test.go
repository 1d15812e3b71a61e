package main

import (
	"bytes"
	"testing"

	"github.com/felixgeelhaar/cornershape/internal/domain/config"
	"github.com/felixgeelhaar/cornershape/internal/domain/preset"
	"github.com/felixgeelhaar/cornershape/internal/domain/setup"
	"github.com/stretchr/testify/assert"
)

func TestLineDiff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b []string
		want []diffLine
	}{
		{
			name: "insertion",
			a:    []string{"a", "c"},
			b:    []string{"a", "b", "c"},
			want: []diffLine{{' ', "a"}, {'+', "b"}, {' ', "c"}},
		},
		{
			name: "deletion",
			a:    []string{"a", "b", "c"},
			b:    []string{"a", "c"},
			want: []diffLine{{' ', "a"}, {'-', "b"}, {' ', "c"}},
		},
		{
			name: "replacement",
			a:    []string{"plugins: []"},
			b:    []string{"plugins: [x]"},
			want: []diffLine{{'-', "plugins: []"}, {'+', "plugins: [x]"}},
		},
		{
			name: "blank lines and a block",
			a:    []string{"import a", "", "export default {", "}"},
			b:    []string{"import a", "import b", "", "export default {", "  x,", "  y,", "}"},
			want: []diffLine{
				{' ', "import a"}, {'+', "import b"}, {' ', ""}, {' ', "export default {"},
				{'+', "  x,"}, {'+', "  y,"}, {' ', "}"},
			},
		},
		{
			name: "to empty",
			a:    []string{"a", "b"},
			want: []diffLine{{'-', "a"}, {'-', "b"}},
		},
		{
			name: "from empty",
			b:    []string{"a"},
			want: []diffLine{{'+', "a"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, lineDiff(tt.a, tt.b))
		})
	}
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	assert.Nil(t, splitLines(""))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb\n"))
	assert.Equal(t, []string{"a", "", "b"}, splitLines("a\n\nb"))
}

func TestPrinter_UsesPlainStylesForBuffers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := newPrinter(&buf)
	p.success("done")

	assert.Equal(t, "✓ done\n", buf.String())
}

func TestPrinter_ManualInstructions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		kind   setup.Kind
		preset preset.Preset
		want   []string
	}{
		{
			name: "config default",
			kind: setup.KindConfig,
			want: []string{setup.ESMImport, "export default { plugins: [cornerShapePlugin({ default: 'squircle' })] }"},
		},
		{
			name:   "config chosen",
			kind:   setup.KindConfig,
			preset: preset.Menu()[4],
			want:   []string{"plugins: [cornerShapePlugin({ default: 'bevel' })]"},
		},
		{
			name:   "stylesheet",
			kind:   setup.KindStylesheet,
			preset: preset.Menu()[1],
			want:   []string{`@import "tailwindcss";`, `@plugin "tailwindcss-corner-shape/presets/very-rounded";`},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			newPrinter(&buf).manualInstructions(tt.kind, tt.preset)
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestPrinter_NotFoundStylesheet(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newPrinter(&buf).reportInstall(setup.Result{
		Outcome: setup.OutcomeNotFound,
		Err:     config.NewStylesheetNotFoundError("/srv/site"),
	}, "")

	assert.Contains(t, buf.String(), "@plugin \"tailwindcss-corner-shape/presets/squircle\";")
	assert.NotContains(t, buf.String(), "export default")
}
