// Package config holds cornershape's own project settings and the
// user-facing error type shared by every package.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/felixgeelhaar/cornershape/internal/ports"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Mode selects which Tailwind configuration style gets patched.
type Mode string

// Mode constants.
const (
	// ModeAuto picks v3 or v4 from the tailwindcss dependency in package.json.
	ModeAuto Mode = "auto"
	// ModeV3 patches tailwind.config.{ts,js,mjs,cjs}.
	ModeV3 Mode = "v3"
	// ModeV4 patches the stylesheet that imports tailwindcss.
	ModeV4 Mode = "v4"
)

// ParseMode validates a mode name. The empty string means ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeV3:
		return ModeV3, nil
	case ModeV4:
		return ModeV4, nil
	default:
		return ModeAuto, &UserError{
			Code:       ErrCodeValidationFailed,
			Message:    fmt.Sprintf("unknown mode %q", s),
			Context:    "mode",
			Suggestion: "Use auto, v3 or v4.",
		}
	}
}

// ShapeOptions mirrors the plugin's options object.
type ShapeOptions struct {
	Default   string            `yaml:"default" toml:"default"`
	Variants  map[string]string `yaml:"variants" toml:"variants"`
	Exclude   []string          `yaml:"exclude" toml:"exclude"`
	Important *bool             `yaml:"important" toml:"important"`
	Enabled   *bool             `yaml:"enabled" toml:"enabled"`
}

// IsZero reports whether no option is set.
func (o *ShapeOptions) IsZero() bool {
	return o == nil || (o.Default == "" && len(o.Variants) == 0 && len(o.Exclude) == 0 &&
		o.Important == nil && o.Enabled == nil)
}

// Settings is the optional per-project settings file.
type Settings struct {
	Preset      string        `yaml:"preset" toml:"preset"`
	Mode        Mode          `yaml:"mode" toml:"mode"`
	Stylesheets []string      `yaml:"stylesheets" toml:"stylesheets"`
	SkipSetup   bool          `yaml:"skip_setup" toml:"skip_setup"`
	Options     *ShapeOptions `yaml:"options" toml:"options"`

	// Source is the file the settings were read from; empty for defaults.
	Source string `yaml:"-" toml:"-"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{Mode: ModeAuto}
}

// SettingsFileNames lists the settings files checked, in priority order.
var SettingsFileNames = []string{
	".cornershape.yaml",
	".cornershape.yml",
	"cornershape.toml",
}

// SettingsLoader reads project settings through a FileSystem.
type SettingsLoader struct {
	fs ports.FileSystem
}

// NewSettingsLoader creates a SettingsLoader.
func NewSettingsLoader(fs ports.FileSystem) *SettingsLoader {
	return &SettingsLoader{fs: fs}
}

// Load returns the settings from the first settings file in dir. A missing
// file yields DefaultSettings without error.
func (l *SettingsLoader) Load(dir string) (Settings, error) {
	for _, name := range SettingsFileNames {
		path := filepath.Join(dir, name)
		if !l.fs.Exists(path) {
			continue
		}
		data, err := l.fs.ReadFile(path)
		if err != nil {
			return DefaultSettings(), NewFileReadError(path, err)
		}
		return ParseSettings(path, data)
	}
	return DefaultSettings(), nil
}

// ParseSettings decodes settings data; the format follows the file extension.
func ParseSettings(path string, data []byte) (Settings, error) {
	settings := DefaultSettings()

	var err error
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&settings)
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&settings)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	}
	if err != nil {
		return DefaultSettings(), NewSettingsParseError(path, err)
	}

	mode, err := ParseMode(string(settings.Mode))
	if err != nil {
		return DefaultSettings(), GetUserError(err).WithContext(path)
	}
	settings.Mode = mode
	settings.Source = path
	return settings, nil
}
