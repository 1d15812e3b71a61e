package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/felixgeelhaar/cornershape/internal/adapters/logging"
	"github.com/felixgeelhaar/cornershape/internal/domain/config"
	"github.com/felixgeelhaar/cornershape/internal/ports"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose  bool
	logJSON  bool
	logLevel string
	logTime  bool

	// minLevel is logLevel parsed once per run.
	minLevel = ports.LevelWarn
)

var rootCmd = &cobra.Command{
	Use:   "cornershape",
	Short: "Wire tailwindcss-corner-shape into a Tailwind project",
	Long: `cornershape adds the tailwindcss-corner-shape plugin to a Tailwind project.

Tailwind v3 projects get an import and a plugins entry in tailwind.config.*;
Tailwind v4 projects get an @plugin line in the stylesheet that imports
tailwindcss. Existing setups are left untouched.`,
	Example: `  cornershape init
  cornershape init --preset 3 --yes
  cornershape remove --dry-run`,
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: parseLogLevel,
	RunE:              runRoot,
	SilenceErrors:     true, // We handle error formatting ourselves
	SilenceUsage:      true, // Don't show usage on error
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "write diagnostic logs as JSON")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "minimum diagnostic log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logTime, "log-time", false, "prefix diagnostic logs with a timestamp")

	rootCmd.AddCommand(versionCmd)
}

// runRoot shows usage without arguments. An unknown command is reported
// but is not a failure, so a typo in a package script never breaks an
// install.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	out := cmd.OutOrStdout()
	st := outputStyles(out)
	_, _ = fmt.Fprintln(out, st.Error.Render("✗ Unknown command: "+args[0]))
	_, _ = fmt.Fprintf(out, "  Run %q for usage information\n", "cornershape help")
	return nil
}

// parseLogLevel validates --log-level before any command runs.
func parseLogLevel(_ *cobra.Command, _ []string) error {
	level, err := ports.ParseLevel(logLevel)
	if err != nil {
		return config.NewUserError(config.ErrCodeValidationFailed, err.Error()).
			WithContext("--log-level").
			WithSuggestion("Use one of: debug, info, warn, error")
	}
	minLevel = level
	return nil
}

// newLogger builds the diagnostic logger for a command. Logs go to stderr
// so they never mix with generated output. --verbose wins over --log-level.
func newLogger(cmd *cobra.Command) ports.Logger {
	level := minLevel
	if verbose {
		level = ports.LevelDebug
	}
	return logging.NewConsoleLogger(
		logging.WithOutput(cmd.ErrOrStderr()),
		logging.WithLevel(level),
		logging.WithJSONFormat(logJSON),
		logging.WithTimestamp(logTime),
	)
}

// formatError returns a user-friendly error message.
// With verbose=false: shows only the user message and suggestion.
// With verbose=true: also shows the underlying technical error.
func formatError(err error) string {
	var userErr *config.UserError
	if errors.As(err, &userErr) {
		msg := userErr.Message
		if userErr.Context != "" {
			msg += fmt.Sprintf(" (at %s)", userErr.Context)
		}
		if userErr.Suggestion != "" {
			msg += fmt.Sprintf("\n\nSuggestion: %s", userErr.Suggestion)
		}
		if verbose && userErr.Underlying != nil {
			msg += fmt.Sprintf("\n\nTechnical details: %v", userErr.Underlying)
		}
		return msg
	}
	var list *config.ErrorList
	if errors.As(err, &list) {
		return list.Error()
	}
	return err.Error()
}

// printError prints an error message to stderr with proper formatting.
func printError(err error) {
	printErrorTo(os.Stderr, err)
}

// printErrorTo prints an error message to the given writer.
func printErrorTo(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", formatError(err))
}
