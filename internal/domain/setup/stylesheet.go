package setup

import (
	"fmt"
	"regexp"
	"strings"
)

var tailwindImportRe = regexp.MustCompile(`@import\s+["']tailwindcss["']`)

// HasTailwindImport reports whether a stylesheet imports tailwindcss.
func HasTailwindImport(text string) bool {
	return tailwindImportRe.MatchString(text)
}

// PluginDirective returns the v4 @plugin line loading the named preset.
func PluginDirective(presetName string) string {
	return fmt.Sprintf(`@plugin "%s/presets/%s";`, PackageName, presetName)
}

// InjectPluginDirective adds directive on the line after the tailwindcss
// import. It returns text unchanged and false when there is no import.
func InjectPluginDirective(text, directive string) (string, bool) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !tailwindImportRe.MatchString(line) {
			continue
		}
		out := make([]string, 0, len(lines)+1)
		out = append(out, lines[:i+1]...)
		out = append(out, directive)
		out = append(out, lines[i+1:]...)
		return strings.Join(out, "\n"), true
	}
	return text, false
}

// RemovePluginDirective drops every @plugin line referencing the package.
func RemovePluginDirective(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "@plugin") && strings.Contains(line, PackageName) {
			continue
		}
		out = append(out, line)
	}
	if len(out) == len(lines) {
		return text, false
	}
	return strings.Join(out, "\n"), true
}
