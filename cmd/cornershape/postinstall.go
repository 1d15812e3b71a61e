package main

import (
	"context"
	"path/filepath"

	"github.com/felixgeelhaar/cornershape/internal/adapters/filesystem"
	"github.com/felixgeelhaar/cornershape/internal/domain/config"
	"github.com/felixgeelhaar/cornershape/internal/domain/cornershape"
	"github.com/felixgeelhaar/cornershape/internal/domain/preset"
	"github.com/felixgeelhaar/cornershape/internal/domain/setup"
	"github.com/felixgeelhaar/cornershape/internal/ports"
	"github.com/spf13/cobra"
)

var postinstallFrom string

var postinstallCmd = &cobra.Command{
	Use:   "postinstall",
	Short: "Configure the plugin after the package is installed",
	Long: `Run by the package manager after installing tailwindcss-corner-shape.

The project is taken to be two directories above --from (the installed
package directory). Setup never prompts and never fails the install; it is
skipped when CI or TAILWIND_CORNER_SHAPE_SKIP_SETUP is set, or when the
project settings say skip_setup: true.`,
	Args: cobra.NoArgs,
	RunE: runPostinstall,
}

func init() {
	postinstallCmd.Flags().StringVar(&postinstallFrom, "from", ".", "installed package directory")
	rootCmd.AddCommand(postinstallCmd)
}

func runPostinstall(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	p := newPrinter(out)

	if detectEnvironment().SkipAutomatic() {
		p.line("")
		p.line("%s", p.st.Warning.Render("⊘ Skipping auto-setup (CI or disabled)"))
		return nil
	}

	logger := newLogger(cmd)
	ctx := ports.ContextWithLogger(cmd.Context(), logger)
	fs := filesystem.NewRealFileSystem()

	dir, err := projectRoot(postinstallFrom)
	if err != nil {
		p.warn("Skipping auto-setup: %s", formatError(err))
		return nil
	}
	settings, err := config.NewSettingsLoader(fs).Load(dir)
	if err != nil {
		p.warn("Skipping auto-setup: %s", formatError(err))
		return nil
	}
	if settings.SkipSetup {
		p.line("")
		p.line("%s", p.st.Warning.Render("⊘ Skipping auto-setup (disabled in "+filepath.Base(settings.Source)+")"))
		return nil
	}
	chosen, explicit, err := resolvePreset("", false, cornershape.Options{}, settings)
	if err != nil {
		p.warn("Skipping auto-setup: %s", formatError(err))
		return nil
	}

	p.banner("tailwindcss-corner-shape - Auto Setup")

	var choose setup.Chooser
	if explicit {
		choose = func(context.Context) (preset.Preset, error) { return chosen, nil }
	}
	res := setup.NewService(fs, logger).Install(ctx, setup.InstallRequest{
		Dir:         dir,
		Mode:        settings.Mode,
		Stylesheets: settings.Stylesheets,
		Choose:      choose,
	})

	if res.Target.Path != "" {
		p.line("")
		p.line("%s", p.st.Info.Render("Found: "+res.Target.Name))
	}
	p.reportInstall(res, "")
	if res.Outcome == setup.OutcomeFailed {
		p.line("  %s", formatError(res.Err))
	}
	p.footer()
	return nil
}

// projectRoot returns the directory two levels above an installed package,
// i.e. the project owning node_modules/<package>.
func projectRoot(from string) (string, error) {
	abs, err := filepath.Abs(from)
	if err != nil {
		return "", err
	}
	return filepath.Join(abs, "..", ".."), nil
}
