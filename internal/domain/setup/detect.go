package setup

import "strings"

const (
	// PackageName is the npm package the tool wires in.
	PackageName = "tailwindcss-corner-shape"
	// PluginIdentifier is the local binding the injected import introduces.
	PluginIdentifier = "cornerShapePlugin"
)

// presenceMarkers are matched as plain substrings. Over-matching is
// accepted: a false positive only skips an injection.
var presenceMarkers = []string{
	PackageName,
	PluginIdentifier,
	"corner-shape-plugin",
}

// IsPresent reports whether text already references the plugin.
func IsPresent(text string) bool {
	for _, marker := range presenceMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
