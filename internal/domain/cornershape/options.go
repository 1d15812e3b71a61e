// Package cornershape models the plugin's options and generates the
// rounded-* utilities it produces.
package cornershape

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/felixgeelhaar/cornershape/internal/domain/config"
)

// DefaultShape is used when neither a variant nor a default is set.
const DefaultShape = "squircle"

// Keywords are the corner-shape keywords accepted besides superellipse().
var Keywords = []string{"round", "scoop", "bevel", "notch", "square", "squircle"}

var superellipseRe = regexp.MustCompile(`^superellipse\(\s*(-?(\d+(\.\d+)?|\.\d+)|-?infinity)\s*\)$`)

// ValidShape reports whether value is a corner-shape value.
func ValidShape(value string) bool {
	v := strings.TrimSpace(value)
	for _, k := range Keywords {
		if v == k {
			return true
		}
	}
	return superellipseRe.MatchString(v)
}

// Options mirrors the plugin's options object. Nil pointers are unset.
type Options struct {
	Default   string
	Variants  map[string]string
	Exclude   []string
	Important *bool
	Enabled   *bool
}

// FromSettings converts the options block of a settings file.
func FromSettings(s *config.ShapeOptions) Options {
	if s == nil {
		return Options{}
	}
	opts := Options{
		Default:   s.Default,
		Exclude:   append([]string(nil), s.Exclude...),
		Important: s.Important,
		Enabled:   s.Enabled,
	}
	if len(s.Variants) > 0 {
		opts.Variants = make(map[string]string, len(s.Variants))
		for k, v := range s.Variants {
			opts.Variants[k] = v
		}
	}
	return opts
}

// IsZero reports whether no option is set.
func (o Options) IsZero() bool {
	return o.Default == "" && len(o.Variants) == 0 && len(o.Exclude) == 0 &&
		o.Important == nil && o.Enabled == nil
}

// Merge returns o with every field set in override replacing its own.
func (o Options) Merge(override Options) Options {
	out := o
	if override.Default != "" {
		out.Default = override.Default
	}
	if len(override.Variants) > 0 {
		merged := make(map[string]string, len(o.Variants)+len(override.Variants))
		for k, v := range o.Variants {
			merged[k] = v
		}
		for k, v := range override.Variants {
			merged[k] = v
		}
		out.Variants = merged
	}
	if len(override.Exclude) > 0 {
		out.Exclude = override.Exclude
	}
	if override.Important != nil {
		out.Important = override.Important
	}
	if override.Enabled != nil {
		out.Enabled = override.Enabled
	}
	return out
}

// Validate checks every shape value and exclusion.
func (o Options) Validate() error {
	errs := config.NewErrorList()

	if o.Default != "" && !ValidShape(o.Default) {
		errs.Add(config.NewInvalidShapeError("default", o.Default))
	}
	for _, key := range sortedKeys(o.Variants) {
		if strings.TrimSpace(key) == "" {
			errs.AddValidation("variants", "empty variant key", "Use a border-radius key such as sm, lg or full.")
			continue
		}
		if v := o.Variants[key]; !ValidShape(v) {
			errs.Add(config.NewInvalidShapeError("variants."+key, v))
		}
	}
	for i, ex := range o.Exclude {
		if strings.TrimSpace(ex) == "" {
			errs.AddValidation(fmt.Sprintf("exclude[%d]", i), "empty class name", "Remove the entry or name a class such as rounded-none.")
		}
	}

	return errs.AsError()
}

// ShapeFor resolves the corner-shape of a border-radius key: the variant,
// else the default, else DefaultShape.
func (o Options) ShapeFor(key string) string {
	if v, ok := o.Variants[key]; ok {
		return v
	}
	return o.DefaultOrBuiltin()
}

// DefaultOrBuiltin returns the configured default shape or DefaultShape.
func (o Options) DefaultOrBuiltin() string {
	if o.Default != "" {
		return o.Default
	}
	return DefaultShape
}

// IsEnabled reports whether utilities are generated at all.
func (o Options) IsEnabled() bool {
	return o.Enabled == nil || *o.Enabled
}

// IsImportant reports whether declarations carry !important.
func (o Options) IsImportant() bool {
	return o.Important != nil && *o.Important
}

// Excluded reports whether key is excluded by its bare or rounded- name.
func (o Options) Excluded(key string) bool {
	for _, ex := range o.Exclude {
		if ex == key || ex == "rounded-"+key {
			return true
		}
	}
	return false
}

var identRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Expression renders the plugin invocation for a v3 config, listing only
// the fields that are set.
func (o Options) Expression() string {
	var parts []string

	if o.Default != "" {
		parts = append(parts, "default: "+quote(o.Default))
	}
	if len(o.Variants) > 0 {
		entries := make([]string, 0, len(o.Variants))
		for _, key := range sortedKeys(o.Variants) {
			name := key
			if !identRe.MatchString(key) {
				name = quote(key)
			}
			entries = append(entries, name+": "+quote(o.Variants[key]))
		}
		parts = append(parts, "variants: { "+strings.Join(entries, ", ")+" }")
	}
	if len(o.Exclude) > 0 {
		quoted := make([]string, len(o.Exclude))
		for i, ex := range o.Exclude {
			quoted[i] = quote(ex)
		}
		parts = append(parts, "exclude: ["+strings.Join(quoted, ", ")+"]")
	}
	if o.Important != nil {
		parts = append(parts, fmt.Sprintf("important: %t", *o.Important))
	}
	if o.Enabled != nil {
		parts = append(parts, fmt.Sprintf("enabled: %t", *o.Enabled))
	}

	if len(parts) == 0 {
		return "cornerShapePlugin()"
	}
	return "cornerShapePlugin({ " + strings.Join(parts, ", ") + " })"
}

func quote(s string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s) + "'"
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}
