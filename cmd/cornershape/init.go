package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/felixgeelhaar/cornershape/internal/adapters/filesystem"
	"github.com/felixgeelhaar/cornershape/internal/adapters/logging"
	"github.com/felixgeelhaar/cornershape/internal/domain/config"
	"github.com/felixgeelhaar/cornershape/internal/domain/preset"
	"github.com/felixgeelhaar/cornershape/internal/domain/setup"
	"github.com/felixgeelhaar/cornershape/internal/ports"
	"github.com/felixgeelhaar/cornershape/internal/tui"
	"github.com/spf13/cobra"
)

var (
	initDir    string
	initPreset string
	initYes    bool
	initPicker bool
	initDryRun bool
	initMode   string
	initShape  shapeFlags
)

var initCmd = &cobra.Command{
	Use:     "init",
	Aliases: []string{"setup"},
	Short:   "Configure the plugin in your project",
	Long: `Find the Tailwind config (v3) or stylesheet (v4) of the project, ask for a
corner-shape style and add the plugin to it.

The style is taken from --preset or the option flags when given, then from
.cornershape.yaml, .cornershape.yml or cornershape.toml in the project.
Otherwise the menu is shown on a terminal and the default is used elsewhere.`,
	Example: `  cornershape init
  cornershape init --preset very-rounded --yes
  cornershape init --default bevel --variant full=round --dry-run
  cornershape init --mode v4 --picker`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

// detectEnvironment is replaced in tests.
var detectEnvironment = func() setup.Environment {
	return setup.DetectEnvironment(os.Getenv, setup.StdinIsTerminal())
}

func init() {
	initCmd.Flags().StringVar(&initDir, "dir", ".", "project directory")
	initCmd.Flags().StringVar(&initPreset, "preset", "", "preset key (1-6) or v4 preset name")
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "never prompt; use the default preset")
	initCmd.Flags().BoolVar(&initPicker, "picker", false, "choose with an arrow-key picker instead of the numbered menu")
	initCmd.Flags().BoolVar(&initDryRun, "dry-run", false, "show the change without writing it")
	initCmd.Flags().StringVar(&initMode, "mode", string(config.ModeAuto), "target: auto, v3 (config file) or v4 (stylesheet)")
	initShape.register(initCmd)

	registerModeCompletion(initCmd)
	_ = initCmd.RegisterFlagCompletionFunc("preset", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return preset.Keys(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd)
	ctx := ports.ContextWithLogger(cmd.Context(), logger)
	fs := filesystem.NewRealFileSystem()

	dir, err := filepath.Abs(initDir)
	if err != nil {
		return err
	}
	settings, err := config.NewSettingsLoader(fs).Load(dir)
	if err != nil {
		return err
	}
	mode, err := resolveMode(cmd, initMode, settings)
	if err != nil {
		return err
	}
	flagOpts, err := initShape.options(cmd)
	if err != nil {
		return err
	}
	chosen, explicit, err := resolvePreset(initPreset, cmd.Flags().Changed("preset"), flagOpts, settings)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := newPrinter(out)
	p.banner("tailwindcss-corner-shape - Interactive Setup")

	var choose setup.Chooser
	if explicit {
		choose = func(context.Context) (preset.Preset, error) { return chosen, nil }
	} else if env := detectEnvironment(); env.CanPrompt() && !initYes {
		choose = promptChooser(cmd, p)
	}

	svc := setup.NewService(fs, logger)
	res := svc.Install(ctx, setup.InstallRequest{
		Dir:         dir,
		Mode:        mode,
		Stylesheets: settings.Stylesheets,
		Choose:      choose,
		DryRun:      initDryRun,
	})

	if res.Target.Path != "" {
		p.line("")
		p.line("%s", p.st.Info.Render("Found: "+res.Target.Name))
	}
	p.reportInstall(res, originalContent(fs, res))
	p.footer()

	if res.Outcome == setup.OutcomeFailed {
		return res.Err
	}
	return nil
}

// promptChooser asks on the terminal, with the numbered menu or the
// arrow-key picker.
func promptChooser(cmd *cobra.Command, p *printer) setup.Chooser {
	if initPicker {
		return func(ctx context.Context) (preset.Preset, error) {
			opts := tui.NewPickerOptions()
			opts.Input = cmd.InOrStdin()
			opts.Output = cmd.OutOrStdout()
			opts.Styles = p.st
			res, err := tui.RunPresetPicker(ctx, preset.Menu(), opts)
			if err != nil {
				return preset.Preset{}, err
			}
			if res.Cancelled {
				ports.LoggerFromContext(ctx, logging.NewNopLogger()).Warn(ctx, "picker cancelled, using default preset")
			}
			return res.Preset, nil
		}
	}
	sel := preset.NewSelector(cmd.InOrStdin(), cmd.OutOrStdout(), menuStyles(p.st))
	return func(ctx context.Context) (preset.Preset, error) {
		p.line("")
		return sel.Select(ctx)
	}
}

// resolveMode applies --mode over the settings file.
func resolveMode(cmd *cobra.Command, flag string, settings config.Settings) (config.Mode, error) {
	if cmd.Flags().Changed("mode") {
		return config.ParseMode(flag)
	}
	if settings.Mode == "" {
		return config.ModeAuto, nil
	}
	return settings.Mode, nil
}

func registerModeCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("mode", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{
			"auto\tDetect from the tailwindcss version in package.json",
			"v3\tPatch tailwind.config.*",
			"v4\tPatch the stylesheet importing tailwindcss",
		}, cobra.ShellCompDirectiveNoFileComp
	})
}

// originalContent returns the unpatched text of a dry-run target.
func originalContent(fs ports.FileSystem, res setup.Result) string {
	if !res.DryRun || res.Target.Path == "" {
		return ""
	}
	data, err := fs.ReadFile(res.Target.Path)
	if err != nil {
		return ""
	}
	return string(data)
}
