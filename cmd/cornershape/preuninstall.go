package main

import (
	"path/filepath"

	"github.com/felixgeelhaar/cornershape/internal/adapters/filesystem"
	"github.com/felixgeelhaar/cornershape/internal/domain/config"
	"github.com/felixgeelhaar/cornershape/internal/domain/setup"
	"github.com/felixgeelhaar/cornershape/internal/ports"
	"github.com/spf13/cobra"
)

var (
	removeDir    string
	removeFrom   string
	removeMode   string
	removeDryRun bool
)

var preuninstallCmd = &cobra.Command{
	Use:     "preuninstall",
	Aliases: []string{"remove"},
	Short:   "Remove the plugin from your project",
	Long: `Remove the tailwindcss-corner-shape import and plugins entry from the Tailwind
config, and the @plugin line from the stylesheet.

With --from the command runs as the package manager's preuninstall hook: the
project is two directories above --from and failures are reported without
failing the uninstall.`,
	Example: `  cornershape remove
  cornershape remove --dir ./web --dry-run`,
	Args: cobra.NoArgs,
	RunE: runPreuninstall,
}

func init() {
	preuninstallCmd.Flags().StringVar(&removeDir, "dir", ".", "project directory")
	preuninstallCmd.Flags().StringVar(&removeFrom, "from", "", "installed package directory (hook mode)")
	preuninstallCmd.Flags().StringVar(&removeMode, "mode", string(config.ModeAuto), "target: auto (both), v3 (config file) or v4 (stylesheet)")
	preuninstallCmd.Flags().BoolVar(&removeDryRun, "dry-run", false, "show the change without writing it")
	registerModeCompletion(preuninstallCmd)

	rootCmd.AddCommand(preuninstallCmd)
}

func runPreuninstall(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd)
	ctx := ports.ContextWithLogger(cmd.Context(), logger)
	fs := filesystem.NewRealFileSystem()
	hook := removeFrom != ""

	var (
		dir string
		err error
	)
	if hook {
		dir, err = projectRoot(removeFrom)
	} else {
		dir, err = filepath.Abs(removeDir)
	}
	if err != nil {
		return err
	}

	settings, err := config.NewSettingsLoader(fs).Load(dir)
	if err != nil {
		if hook {
			logger.Warn(ctx, "ignoring unreadable settings", ports.Err(err))
			settings = config.DefaultSettings()
		} else {
			return err
		}
	}
	mode, err := resolveMode(cmd, removeMode, settings)
	if err != nil {
		return err
	}

	p := newPrinter(cmd.OutOrStdout())
	p.banner("tailwindcss-corner-shape - Cleanup")

	results := setup.NewService(fs, logger).Uninstall(ctx, setup.UninstallRequest{
		Dir:         dir,
		Mode:        mode,
		Stylesheets: settings.Stylesheets,
		DryRun:      removeDryRun,
	})

	var firstErr error
	for _, res := range results {
		if res.Target.Path != "" {
			p.line("")
			p.line("%s", p.st.Info.Render("Found: "+res.Target.Name))
		}
		p.reportUninstall(res, originalContent(fs, res))
		if res.Outcome == setup.OutcomeFailed {
			if hook {
				p.line("  %s", formatError(res.Err))
			} else if firstErr == nil {
				firstErr = res.Err
			}
		}
	}
	if removedAny(results) && !removeDryRun {
		p.line("   Thanks for using tailwindcss-corner-shape!")
	}
	p.footer()
	return firstErr
}

func removedAny(results []setup.Result) bool {
	for _, r := range results {
		if r.Outcome == setup.OutcomeRemoved {
			return true
		}
	}
	return false
}
