package setup

import (
	"regexp"
	"strings"
	"unicode"
)

var pluginsArrayRe = regexp.MustCompile(`plugins\s*:\s*\[`)

// AddToPluginsArray inserts expr as the first element of the first
// plugins array in text. It returns text unchanged and false when no
// plugins array exists.
func AddToPluginsArray(text, expr string) (string, bool) {
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		loc := pluginsArrayRe.FindStringIndex(line)
		if loc == nil {
			continue
		}

		indent := leadingWhitespace(line)
		head, rest := line[:loc[1]], line[loc[1]:]
		tail := strings.TrimLeftFunc(rest, unicode.IsSpace)

		switch {
		case strings.HasPrefix(tail, "]"):
			lines[i] = head + expr + tail
		case strings.Contains(rest, "]"):
			inner := indent + indentUnit(indent)
			lines[i] = head + "\n" + inner + expr + ",\n" + inner + tail
		default:
			inner := indent + indentUnit(indent)
			if i+1 < len(lines) {
				next := lines[i+1]
				trimmed := strings.TrimSpace(next)
				if trimmed != "" && !strings.HasPrefix(trimmed, "]") {
					if ws := leadingWhitespace(next); len(ws) > len(indent) {
						inner = ws
					}
				}
			}
			out := make([]string, 0, len(lines)+1)
			out = append(out, lines[:i+1]...)
			out = append(out, inner+expr+",")
			out = append(out, lines[i+1:]...)
			lines = out
		}

		return strings.Join(lines, "\n"), true
	}

	return text, false
}

// PatchConfig adds the plugin import and invocation to a config file's
// text. It returns text unchanged and false when there is no plugins array.
func PatchConfig(name, text, expr string) (string, bool) {
	updated, ok := AddToPluginsArray(text, expr)
	if !ok {
		return text, false
	}
	return InjectImport(updated, DetectFlavor(name, text)), true
}

func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeftFunc(line, unicode.IsSpace))]
}

// indentUnit follows the file: tabs stay tabs, anything else gets two spaces.
func indentUnit(indent string) string {
	if strings.Contains(indent, "\t") {
		return "\t"
	}
	return "  "
}
