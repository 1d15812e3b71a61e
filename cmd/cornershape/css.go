package main

import (
	"fmt"
	"path/filepath"

	"github.com/felixgeelhaar/cornershape/internal/adapters/filesystem"
	"github.com/felixgeelhaar/cornershape/internal/domain/config"
	"github.com/felixgeelhaar/cornershape/internal/domain/cornershape"
	"github.com/felixgeelhaar/cornershape/internal/domain/preset"
	"github.com/spf13/cobra"
)

var (
	cssDir       string
	cssPreset    string
	cssTheme     string
	cssArbitrary []string
	cssShape     shapeFlags
)

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the utility CSS the plugin generates",
	Long: `Print the rounded-* utilities with their corner-shape for a preset or a set
of options, using Tailwind's default border radius scale or the borderRadius
map of a YAML or JSON theme file.`,
	Example: `  cornershape css --preset bevel
  cornershape css --default squircle --variant full=round --theme theme.yaml
  cornershape css --arbitrary 20px --arbitrary 2.5rem`,
	Args: cobra.NoArgs,
	RunE: runCSS,
}

func init() {
	cssCmd.Flags().StringVar(&cssDir, "dir", ".", "project directory holding the settings file")
	cssCmd.Flags().StringVar(&cssPreset, "preset", "", "preset key (1-6) or v4 preset name")
	cssCmd.Flags().StringVar(&cssTheme, "theme", "", "YAML or JSON file with a borderRadius map")
	cssCmd.Flags().StringArrayVar(&cssArbitrary, "arbitrary", nil, "arbitrary radius to generate as rounded-[value] (repeatable)")
	cssShape.register(cssCmd)

	_ = cssCmd.RegisterFlagCompletionFunc("theme", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "yml", "json"}, cobra.ShellCompDirectiveFilterFileExt
	})

	rootCmd.AddCommand(cssCmd)
}

func runCSS(cmd *cobra.Command, _ []string) error {
	fs := filesystem.NewRealFileSystem()

	dir, err := filepath.Abs(cssDir)
	if err != nil {
		return err
	}
	settings, err := config.NewSettingsLoader(fs).Load(dir)
	if err != nil {
		return err
	}
	opts, err := cssOptions(cmd, settings)
	if err != nil {
		return err
	}

	theme := cornershape.DefaultTheme()
	if cssTheme != "" {
		theme, err = cornershape.LoadTheme(fs, cssTheme)
		if err != nil {
			return err
		}
	}

	rules := cornershape.Generate(theme, opts)
	for _, value := range cssArbitrary {
		rule, err := cornershape.Arbitrary(value, opts)
		if err != nil {
			return config.NewUserError(config.ErrCodeValidationFailed, err.Error()).
				WithContext("--arbitrary").
				WithSuggestion("Use a length or percentage such as 20px, 1.5rem or 50%.")
		}
		rules = append(rules, rule)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), cornershape.Render(rules))
	return err
}

// cssOptions layers settings preset, settings options, --preset and the
// option flags, each over the previous.
func cssOptions(cmd *cobra.Command, settings config.Settings) (cornershape.Options, error) {
	var opts cornershape.Options
	if settings.Preset != "" {
		p, err := preset.Find(settings.Preset)
		if err != nil {
			return opts, config.GetUserError(err).WithContext(settings.Source)
		}
		opts = presetOptions(p)
	}
	opts = opts.Merge(cornershape.FromSettings(settings.Options))

	if cmd.Flags().Changed("preset") {
		p, err := preset.Find(cssPreset)
		if err != nil {
			return opts, err
		}
		opts = opts.Merge(presetOptions(p))
	}
	flagOpts, err := cssShape.options(cmd)
	if err != nil {
		return opts, err
	}
	opts = opts.Merge(flagOpts)

	return opts, opts.Validate()
}
