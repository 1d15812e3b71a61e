package setup

import "strings"

// Import lines written into config files.
const (
	ESMImport      = "import " + PluginIdentifier + " from '" + PackageName + "'"
	CommonJSImport = "const " + PluginIdentifier + " = require('" + PackageName + "')"
)

// InjectImport adds exactly one import line for the plugin. The line goes
// after the last statement of the same flavor in the file's preamble, or at
// the top followed by a blank line when there is none. The preamble ends at
// the config export or at the first top-level line that opens a multi-line
// literal, such as "const config = {". Callers check IsPresent first.
func InjectImport(text string, flavor ModuleFlavor) string {
	line := CommonJSImport
	matches := func(l string) bool { return strings.Contains(l, "require(") }
	if flavor == ESM {
		line = ESMImport
		matches = func(l string) bool { return strings.HasPrefix(strings.TrimSpace(l), "import ") }
	}

	lines := strings.Split(text, "\n")
	last := -1
	for i, l := range lines {
		if isExportLine(l) || opensTopLevelBlock(l) {
			break
		}
		if matches(l) {
			last = i
		}
	}

	if last < 0 {
		return line + "\n\n" + text
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:last+1]...)
	out = append(out, line)
	out = append(out, lines[last+1:]...)
	return strings.Join(out, "\n")
}

// isExportLine reports the start of the exported config object. Requires
// inside it, such as plugin entries, are not import statements.
func isExportLine(line string) bool {
	return strings.Contains(line, "module.exports") || strings.Contains(line, "export default")
}

// opensTopLevelBlock reports an unindented line that leaves a brace,
// bracket or parenthesis open. Lines after it up to the closing one belong
// to that literal, and a require among them is a value, not a statement.
func opensTopLevelBlock(line string) bool {
	if line == "" || line[0] == ' ' || line[0] == '\t' {
		return false
	}
	depth := 0
	for _, r := range line {
		switch r {
		case '{', '[', '(':
			depth++
		case '}', ']', ')':
			depth--
		}
	}
	return depth > 0
}
