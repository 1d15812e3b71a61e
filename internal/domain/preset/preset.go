// Package preset holds the named plugin configurations offered during setup
// and the prompt that chooses between them.
package preset

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/cornershape/internal/domain/config"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Preset is a named, pre-filled plugin configuration.
type Preset struct {
	// Key is the menu key; empty for presets outside the menu.
	Key         string
	Name        string
	Description string
	// Expression is the literal invocation written into a v3 config.
	Expression string
	// V4Name names the preset module loaded by a v4 @plugin directive;
	// empty when no v4 preset matches.
	V4Name string
	// Shape is the default corner-shape the preset applies.
	Shape string
}

// DefaultKey is the preset chosen on empty input.
const DefaultKey = "1"

var menu = []Preset{
	{
		Key:         "1",
		Name:        "iOS Squircle (Default)",
		Description: "Modern iOS-like corners - balanced and contemporary",
		Expression:  "cornerShapePlugin({ default: 'squircle' })",
		V4Name:      "squircle",
		Shape:       "squircle",
	},
	{
		Key:         "2",
		Name:        "Very Rounded",
		Description: "Soft, highly rounded corners for a friendly look",
		Expression:  "cornerShapePlugin({ default: 'superellipse(1.5)' })",
		V4Name:      "very-rounded",
		Shape:       "superellipse(1.5)",
	},
	{
		Key:         "3",
		Name:        "Moderately Rounded",
		Description: "Subtle modern corners - not too round",
		Expression:  "cornerShapePlugin({ default: 'superellipse(1.7)' })",
		V4Name:      "moderately-rounded",
		Shape:       "superellipse(1.7)",
	},
	{
		Key:         "4",
		Name:        "Slightly Rounded",
		Description: "Minimal rounding - close to standard border-radius",
		Expression:  "cornerShapePlugin({ default: 'round' })",
		V4Name:      "round",
		Shape:       "round",
	},
	{
		Key:         "5",
		Name:        "Bevel (Industrial)",
		Description: "Straight chamfered edges for technical UI",
		Expression:  "cornerShapePlugin({ default: 'bevel' })",
		V4Name:      "bevel",
		Shape:       "bevel",
	},
	{
		Key:         "6",
		Name:        "Zero Config",
		Description: "No options - just use defaults (squircle)",
		Expression:  "cornerShapePlugin()",
		V4Name:      "squircle",
		Shape:       "squircle",
	},
}

// v4Shapes maps each shipped v4 preset module to its default shape.
var v4Shapes = map[string]string{
	"squircle":           "squircle",
	"very-rounded":       "superellipse(1.5)",
	"moderately-rounded": "superellipse(1.8)",
	"slightly-rounded":   "superellipse(2.5)",
	"bevel":              "bevel",
	"round":              "round",
}

// V4Names lists the shipped v4 preset modules in display order.
var V4Names = []string{"squircle", "very-rounded", "moderately-rounded", "slightly-rounded", "bevel", "round"}

// Menu returns the menu presets in display order.
func Menu() []Preset {
	out := make([]Preset, len(menu))
	copy(out, menu)
	return out
}

// Default returns the first menu preset.
func Default() Preset {
	return menu[0]
}

// Keys returns the menu keys followed by the v4 preset names.
func Keys() []string {
	keys := make([]string, 0, len(menu)+len(V4Names))
	for _, p := range menu {
		keys = append(keys, p.Key)
	}
	return append(keys, V4Names...)
}

// Lookup resolves a menu key or a v4 preset name.
func Lookup(value string) (Preset, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, p := range menu {
		if p.Key == v {
			return p, true
		}
	}
	for _, p := range menu {
		if p.V4Name == v {
			return p, true
		}
	}
	if shape, ok := v4Shapes[v]; ok {
		return fromV4(v, shape), true
	}
	return Preset{}, false
}

// Find is Lookup returning an INVALID_PRESET error on a miss.
func Find(value string) (Preset, error) {
	p, ok := Lookup(value)
	if !ok {
		return Preset{}, config.NewInvalidPresetError(value, Keys())
	}
	return p, nil
}

// V4Shape returns the default shape of a shipped v4 preset module.
func V4Shape(name string) (string, bool) {
	shape, ok := v4Shapes[name]
	return shape, ok
}

// V4NameForShape returns the v4 preset module whose default shape is shape.
func V4NameForShape(shape string) (string, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(shape), " ", "")
	if s == "" {
		return "squircle", true
	}
	for _, name := range V4Names {
		if v4Shapes[name] == s {
			return name, true
		}
	}
	return "", false
}

// Custom builds a preset from a rendered plugin expression and its default
// shape. V4Name is empty when no shipped v4 preset has that shape.
func Custom(expression, shape string) Preset {
	v4, _ := V4NameForShape(shape)
	if shape == "" {
		shape = "squircle"
	}
	return Preset{
		Name:        "Custom",
		Description: "Options given on the command line or in settings",
		Expression:  expression,
		V4Name:      v4,
		Shape:       shape,
	}
}

// DisplayName turns a v4 preset name into a title, e.g. "very-rounded"
// becomes "Very Rounded".
func DisplayName(v4Name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(v4Name, "-", " "))
}

func fromV4(name, shape string) Preset {
	return Preset{
		Name:        DisplayName(name),
		Description: fmt.Sprintf("v4 preset with %s corners", shape),
		Expression:  fmt.Sprintf("cornerShapePlugin({ default: '%s' })", shape),
		V4Name:      name,
		Shape:       shape,
	}
}
