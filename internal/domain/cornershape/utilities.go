package cornershape

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule is one generated utility class.
type Rule struct {
	Selector     string
	BorderRadius string
	CornerShape  string
}

// Generate returns the rounded-* utilities for theme. Theme keys come
// first in order, then rounded-full, rounded and rounded-none, each of
// which replaces a theme rule with the same selector in place.
func Generate(theme Theme, opts Options) []Rule {
	if !opts.IsEnabled() {
		return nil
	}

	var rules []Rule
	index := make(map[string]int)
	set := func(r Rule) {
		if i, ok := index[r.Selector]; ok {
			rules[i] = r
			return
		}
		index[r.Selector] = len(rules)
		rules = append(rules, r)
	}
	shape := func(s string) string {
		if opts.IsImportant() {
			return s + " !important"
		}
		return s
	}

	for _, entry := range theme {
		if entry.Key == "DEFAULT" || opts.Excluded(entry.Key) {
			continue
		}
		set(Rule{
			Selector:     ".rounded-" + escapeClass(entry.Key),
			BorderRadius: entry.Value,
			CornerShape:  shape(opts.ShapeFor(entry.Key)),
		})
	}

	if !opts.Excluded("full") {
		set(Rule{Selector: ".rounded-full", BorderRadius: "9999px", CornerShape: shape(opts.ShapeFor("full"))})
	}
	if !opts.Excluded("rounded") {
		set(Rule{Selector: ".rounded", BorderRadius: "0.25rem", CornerShape: shape(opts.ShapeFor("base"))})
	}
	if !opts.Excluded("none") {
		set(Rule{Selector: ".rounded-none", BorderRadius: "0", CornerShape: shape("square")})
	}

	return rules
}

var (
	lengthRe   = regexp.MustCompile(`^-?(\d+(\.\d+)?|\.\d+)(px|rem|em|ex|ch|lh|rlh|vw|vh|vmin|vmax|svh|lvh|dvh|cqw|cqh|cm|mm|in|pt|pc|%)$`)
	mathFuncRe = regexp.MustCompile(`^(calc|min|max|clamp|var)\(.+\)$`)
)

// IsLengthOrPercentage reports whether value can stand as an arbitrary
// border-radius, as in rounded-[20px].
func IsLengthOrPercentage(value string) bool {
	v := strings.TrimSpace(value)
	return v == "0" || lengthRe.MatchString(v) || mathFuncRe.MatchString(v)
}

// Arbitrary returns the utility for the bracketed value in rounded-[value].
// Underscores stand for spaces. Arbitrary values always use the default
// shape, never a variant.
func Arbitrary(value string, opts Options) (Rule, error) {
	css := strings.ReplaceAll(value, "_", " ")
	if !IsLengthOrPercentage(css) {
		return Rule{}, fmt.Errorf("arbitrary value %q is not a length or percentage", value)
	}
	if !opts.IsEnabled() {
		return Rule{}, fmt.Errorf("plugin is disabled")
	}
	shape := opts.DefaultOrBuiltin()
	if opts.IsImportant() {
		shape += " !important"
	}
	return Rule{
		Selector:     ".rounded-" + escapeClass("["+value+"]"),
		BorderRadius: css,
		CornerShape:  shape,
	}, nil
}

// Render formats rules as CSS.
func Render(rules []Rule) string {
	var b strings.Builder
	for i, r := range rules {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s {\n  border-radius: %s;\n  corner-shape: %s;\n}\n", r.Selector, r.BorderRadius, r.CornerShape)
	}
	return b.String()
}

// escapeClass backslash-escapes characters that are not valid in a bare
// CSS class name.
func escapeClass(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r > 0x7f:
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}
