// Package setup patches a project's Tailwind configuration to load the
// corner-shape plugin, and removes it again.
//
// All edits are line-oriented text surgery on the user's files. The
// helpers in this package are pure functions over file text; Service
// sequences them against a ports.FileSystem.
package setup

import (
	"path/filepath"

	"github.com/felixgeelhaar/cornershape/internal/ports"
)

// Kind distinguishes the two kinds of file the tool patches.
type Kind int

// Kind constants.
const (
	// KindConfig is a tailwind.config.* file (Tailwind v3).
	KindConfig Kind = iota
	// KindStylesheet is a CSS file importing tailwindcss (Tailwind v4).
	KindStylesheet
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindStylesheet:
		return "stylesheet"
	default:
		return "unknown"
	}
}

// ConfigFile is a discovered target file.
type ConfigFile struct {
	Path string
	Name string
	Kind Kind
}

// ConfigCandidates lists the Tailwind config filenames in priority order.
var ConfigCandidates = []string{
	"tailwind.config.ts",
	"tailwind.config.js",
	"tailwind.config.mjs",
	"tailwind.config.cjs",
}

// StylesheetCandidates lists the project-relative stylesheets checked for a
// tailwindcss import, in priority order.
var StylesheetCandidates = []string{
	"src/app/globals.css",
	"app/globals.css",
	"src/index.css",
	"src/styles/globals.css",
	"styles/globals.css",
	"src/app.css",
	"src/styles.css",
	"src/main.css",
	"app/app.css",
	"resources/css/app.css",
	"assets/css/main.css",
}

// Locator finds the file to patch inside a project directory.
type Locator struct {
	fs ports.FileSystem
}

// NewLocator creates a Locator.
func NewLocator(fs ports.FileSystem) *Locator {
	return &Locator{fs: fs}
}

// Locate returns the first existing Tailwind config file in dir.
func (l *Locator) Locate(dir string) (ConfigFile, bool) {
	for _, name := range ConfigCandidates {
		path := absJoin(dir, name)
		if l.fs.Exists(path) {
			return ConfigFile{Path: path, Name: name, Kind: KindConfig}, true
		}
	}
	return ConfigFile{}, false
}

// LocateStylesheet returns the first stylesheet in dir that imports
// tailwindcss. The extra paths are checked before the built-in candidates.
func (l *Locator) LocateStylesheet(dir string, extra ...string) (ConfigFile, bool) {
	candidates := make([]string, 0, len(extra)+len(StylesheetCandidates))
	candidates = append(candidates, extra...)
	candidates = append(candidates, StylesheetCandidates...)

	seen := make(map[string]bool, len(candidates))
	for _, rel := range candidates {
		path := absJoin(dir, rel)
		if seen[path] || !l.fs.Exists(path) {
			continue
		}
		seen[path] = true

		data, err := l.fs.ReadFile(path)
		if err != nil || !HasTailwindImport(string(data)) {
			continue
		}
		return ConfigFile{Path: path, Name: filepath.Base(path), Kind: KindStylesheet}, true
	}
	return ConfigFile{}, false
}

func absJoin(dir, name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	path := filepath.Join(dir, name)
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
