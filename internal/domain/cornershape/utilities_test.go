package cornershape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectors(rules []Rule) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.Selector
	}
	return out
}

func TestGenerate_DefaultTheme(t *testing.T) {
	t.Parallel()

	rules := Generate(DefaultTheme(), Options{})

	assert.Equal(t, []string{
		".rounded-none", ".rounded-sm", ".rounded-md", ".rounded-lg", ".rounded-xl",
		".rounded-2xl", ".rounded-3xl", ".rounded-full", ".rounded",
	}, selectors(rules))

	byName := make(map[string]Rule)
	for _, r := range rules {
		byName[r.Selector] = r
	}
	assert.Equal(t, Rule{".rounded-none", "0", "square"}, byName[".rounded-none"])
	assert.Equal(t, Rule{".rounded-lg", "0.5rem", "squircle"}, byName[".rounded-lg"])
	assert.Equal(t, Rule{".rounded-full", "9999px", "squircle"}, byName[".rounded-full"])
	assert.Equal(t, Rule{".rounded", "0.25rem", "squircle"}, byName[".rounded"])
}

func TestGenerate_Options(t *testing.T) {
	t.Parallel()

	t.Run("variants and default", func(t *testing.T) {
		t.Parallel()
		rules := Generate(DefaultTheme(), Options{
			Default:  "bevel",
			Variants: map[string]string{"sm": "round", "base": "scoop", "full": "notch"},
		})
		shapes := make(map[string]string)
		for _, r := range rules {
			shapes[r.Selector] = r.CornerShape
		}
		assert.Equal(t, "round", shapes[".rounded-sm"])
		assert.Equal(t, "bevel", shapes[".rounded-xl"])
		assert.Equal(t, "scoop", shapes[".rounded"])
		assert.Equal(t, "notch", shapes[".rounded-full"])
		assert.Equal(t, "square", shapes[".rounded-none"])
	})

	t.Run("exclusions by either name", func(t *testing.T) {
		t.Parallel()
		rules := Generate(DefaultTheme(), Options{Exclude: []string{"sm", "rounded-lg", "rounded", "none", "full"}})
		assert.Equal(t, []string{".rounded-md", ".rounded-xl", ".rounded-2xl", ".rounded-3xl"}, selectors(rules))
	})

	t.Run("important", func(t *testing.T) {
		t.Parallel()
		rules := Generate(Theme{{"lg", "0.5rem"}}, Options{Important: Bool(true)})
		for _, r := range rules {
			assert.Contains(t, r.CornerShape, " !important", r.Selector)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, Generate(DefaultTheme(), Options{Enabled: Bool(false)}))
	})

	t.Run("escaped keys", func(t *testing.T) {
		t.Parallel()
		rules := Generate(Theme{{"1.5", "6px"}}, Options{Exclude: []string{"full", "rounded", "none"}})
		require.Len(t, rules, 1)
		assert.Equal(t, `.rounded-1\.5`, rules[0].Selector)
	})
}

func TestArbitrary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value    string
		selector string
		radius   string
		wantErr  bool
	}{
		{"20px", `.rounded-\[20px\]`, "20px", false},
		{"1.5rem", `.rounded-\[1\.5rem\]`, "1.5rem", false},
		{"50%", `.rounded-\[50\%\]`, "50%", false},
		{"calc(1rem_+_2px)", `.rounded-\[calc\(1rem_\+_2px\)\]`, "calc(1rem + 2px)", false},
		{"0", `.rounded-\[0\]`, "0", false},
		{"red", "", "", true},
		{"20", "", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			rule, err := Arbitrary(tt.value, Options{Default: "bevel", Variants: map[string]string{"lg": "round"}})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.selector, rule.Selector)
			assert.Equal(t, tt.radius, rule.BorderRadius)
			assert.Equal(t, "bevel", rule.CornerShape)
		})
	}

	_, err := Arbitrary("4px", Options{Enabled: Bool(false)})
	assert.Error(t, err)

	rule, err := Arbitrary("4px", Options{Important: Bool(true)})
	require.NoError(t, err)
	assert.Equal(t, "squircle !important", rule.CornerShape)
}

func TestRender(t *testing.T) {
	t.Parallel()

	css := Render([]Rule{
		{".rounded-lg", "0.5rem", "squircle"},
		{".rounded-none", "0", "square"},
	})

	assert.Equal(t, ".rounded-lg {\n  border-radius: 0.5rem;\n  corner-shape: squircle;\n}\n\n"+
		".rounded-none {\n  border-radius: 0;\n  corner-shape: square;\n}\n", css)
	assert.Empty(t, Render(nil))
}
