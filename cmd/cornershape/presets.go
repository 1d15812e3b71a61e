package main

import (
	"github.com/felixgeelhaar/cornershape/internal/domain/preset"
	"github.com/felixgeelhaar/cornershape/internal/domain/setup"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the corner-shape presets",
	Long: `List the menu presets with the plugin expression written to a Tailwind v3
config and the @plugin line written to a Tailwind v4 stylesheet, followed by
the other shipped v4 presets.`,
	Args: cobra.NoArgs,
	Run:  runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, _ []string) {
	p := newPrinter(cmd.OutOrStdout())

	p.line("%s", p.st.Title.Render("Menu presets"))
	for _, pr := range preset.Menu() {
		p.line("")
		p.line("  %s %s", p.st.HelpKey.Render(pr.Key+"."), p.st.Text.Render(pr.Name))
		p.line("     %s", p.st.Help.Render(pr.Description))
		p.line("     v3: %s", p.st.Code.Render(pr.Expression))
		p.line("     v4: %s", p.st.Code.Render(setup.PluginDirective(pr.V4Name)))
	}

	p.line("")
	p.line("%s", p.st.Title.Render("Tailwind v4 presets"))
	p.line("")
	for _, name := range preset.V4Names {
		shape, _ := preset.V4Shape(name)
		p.line("  %-20s %s", name, p.st.Help.Render(shape))
	}
}
