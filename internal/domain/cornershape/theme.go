package cornershape

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/cornershape/internal/domain/config"
	"github.com/felixgeelhaar/cornershape/internal/ports"
	"gopkg.in/yaml.v3"
)

// Entry is one border-radius scale step.
type Entry struct {
	Key   string
	Value string
}

// Theme is an ordered border-radius scale.
type Theme []Entry

// DefaultTheme returns Tailwind's default borderRadius scale.
func DefaultTheme() Theme {
	return Theme{
		{"none", "0px"},
		{"sm", "0.125rem"},
		{"DEFAULT", "0.25rem"},
		{"md", "0.375rem"},
		{"lg", "0.5rem"},
		{"xl", "0.75rem"},
		{"2xl", "1rem"},
		{"3xl", "1.5rem"},
		{"full", "9999px"},
	}
}

// Lookup returns the value for key.
func (t Theme) Lookup(key string) (string, bool) {
	for _, e := range t {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// LoadTheme reads a YAML or JSON theme file. The scale is the mapping under
// a borderRadius key when present, otherwise the top-level mapping. Key
// order is kept.
func LoadTheme(fs ports.FileSystem, path string) (Theme, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, config.NewFileReadError(path, err)
	}
	theme, err := ParseTheme(data)
	if err != nil {
		return nil, config.NewThemeParseError(path, err)
	}
	return theme, nil
}

// ParseTheme decodes theme data.
func ParseTheme(data []byte) (Theme, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("theme is empty")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: theme must be a mapping", root.Line)
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "borderRadius" {
			root = root.Content[i+1]
			break
		}
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: borderRadius must be a mapping", root.Line)
	}

	theme := make(Theme, 0, len(root.Content)/2)
	seen := make(map[string]bool)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: value of %q must be a scalar", value.Line, key.Value)
		}
		if seen[key.Value] {
			return nil, fmt.Errorf("line %d: duplicate key %q", key.Line, key.Value)
		}
		seen[key.Value] = true
		theme = append(theme, Entry{Key: key.Value, Value: value.Value})
	}
	if len(theme) == 0 {
		return nil, errors.New("theme has no border-radius values")
	}
	return theme, nil
}
