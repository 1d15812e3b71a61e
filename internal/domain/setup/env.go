package setup

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Environment variables that suppress automatic and interactive setup.
const (
	EnvCI        = "CI"
	EnvSkipSetup = "TAILWIND_CORNER_SHAPE_SKIP_SETUP"
)

// Environment describes where the tool runs.
type Environment struct {
	CI        bool
	SkipSetup bool
	TTY       bool
}

// DetectEnvironment reads the environment through getenv. Any non-empty
// value counts as set.
func DetectEnvironment(getenv func(string) string, stdinIsTTY bool) Environment {
	return Environment{
		CI:        getenv(EnvCI) != "",
		SkipSetup: getenv(EnvSkipSetup) != "",
		TTY:       stdinIsTTY,
	}
}

// SkipAutomatic reports whether install-time setup must not run.
func (e Environment) SkipAutomatic() bool {
	return e.CI || e.SkipSetup
}

// CanPrompt reports whether the user may be asked to choose a preset.
func (e Environment) CanPrompt() bool {
	return e.TTY && !e.SkipAutomatic()
}

// StdinIsTerminal reports whether standard input is a terminal.
func StdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
