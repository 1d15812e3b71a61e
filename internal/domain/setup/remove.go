package setup

import (
	"regexp"
	"strings"
)

var danglingCommaRe = regexp.MustCompile(`,(\s*)\]`)

const pluginCall = PluginIdentifier + "("

// RemovePlugin strips the plugin import and invocation from a config
// file's text and reports whether anything was removed.
//
// An invocation spanning several lines is removed up to the first line
// containing ")". Nested parentheses are not tracked, so a multi-line call
// whose options contain a closing parenthesis before the call ends leaves
// its tail behind.
func RemovePlugin(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	removed := false
	skipping := false

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if skipping {
			if strings.Contains(line, ")") {
				skipping = false
			}
			continue
		}

		if isPluginImport(line) {
			removed = true
			if len(out) == 0 && i+1 < len(lines) && strings.TrimSpace(lines[i+1]) == "" {
				i++
			}
			continue
		}

		idx := strings.Index(line, pluginCall)
		if idx < 0 {
			out = append(out, line)
			continue
		}
		removed = true

		if kept, ok := cutInlineCall(line, idx); ok {
			out = append(out, kept)
			continue
		}
		if !strings.Contains(line[idx:], ")") {
			skipping = true
		}
	}

	if !removed {
		return text, false
	}

	result := strings.Join(out, "\n")
	result = danglingCommaRe.ReplaceAllString(result, "$1]")
	result = strings.ReplaceAll(result, ",,", ",")
	return result, true
}

func isPluginImport(line string) bool {
	if !strings.Contains(line, PackageName) {
		return false
	}
	return strings.HasPrefix(strings.TrimSpace(line), "import ") || strings.Contains(line, "require(")
}

// cutInlineCall removes a call that opens and closes on a line it shares
// with other code, together with the list comma next to it. It returns
// false when nothing but the call is on the line or it does not close.
func cutInlineCall(line string, idx int) (string, bool) {
	end := callEnd(line, idx+len(pluginCall)-1)
	if end < 0 {
		return "", false
	}

	before, after := line[:idx], line[end:]
	trimmedAfter := strings.TrimLeft(after, " \t")
	if strings.HasPrefix(trimmedAfter, ",") {
		after = strings.TrimLeft(trimmedAfter[1:], " \t")
	} else if trimmedBefore := strings.TrimRight(before, " \t"); strings.HasSuffix(trimmedBefore, ",") {
		before = strings.TrimSuffix(trimmedBefore, ",")
	}

	if strings.TrimSpace(before+after) == "" {
		return "", false
	}
	return before + after, true
}

// callEnd returns the index just past the parenthesis closing the one at
// open, or -1 when the call does not close on the line.
func callEnd(line string, open int) int {
	depth := 0
	for i := open; i < len(line); i++ {
		switch line[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}
