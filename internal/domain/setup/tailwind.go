package setup

import (
	"encoding/json"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/felixgeelhaar/cornershape/internal/ports"
	"golang.org/x/mod/semver"
)

// packageManifest is the part of package.json the tool reads.
type packageManifest struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// DetectTailwindMajor returns the major version of the tailwindcss
// dependency declared in dir/package.json, or 0 when it cannot be told.
func DetectTailwindMajor(fs ports.FileSystem, dir string) int {
	path := filepath.Join(dir, "package.json")
	if !fs.Exists(path) {
		return 0
	}
	data, err := fs.ReadFile(path)
	if err != nil {
		return 0
	}

	var manifest packageManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return 0
	}

	rng, ok := manifest.Dependencies["tailwindcss"]
	if !ok {
		rng, ok = manifest.DevDependencies["tailwindcss"]
	}
	if !ok {
		return 0
	}
	return RangeMajor(rng)
}

// RangeMajor extracts the major version from an npm version range such as
// "^4.0.0", "~3.4", ">=3.3 <4" or "4". Tags, URLs and workspace
// references yield 0.
func RangeMajor(rng string) int {
	fields := strings.Fields(strings.TrimSpace(rng))
	if len(fields) == 0 {
		return 0
	}
	version := strings.TrimLeft(fields[0], "^~>=<v")
	version = strings.TrimSuffix(version, ".x")
	version = strings.TrimSuffix(version, ".*")

	canonical := "v" + version
	if !semver.IsValid(canonical) {
		return 0
	}
	major, err := strconv.Atoi(strings.TrimPrefix(semver.Major(canonical), "v"))
	if err != nil {
		return 0
	}
	return major
}
