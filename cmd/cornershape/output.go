package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/felixgeelhaar/cornershape/internal/domain/config"
	"github.com/felixgeelhaar/cornershape/internal/domain/preset"
	"github.com/felixgeelhaar/cornershape/internal/domain/setup"
	"github.com/felixgeelhaar/cornershape/internal/tui/ui"
	"github.com/mattn/go-isatty"
	"github.com/sergi/go-diff/diffmatchpatch"
)

const ruleWidth = 60

// outputStyles returns the colored styles for a terminal and plain styles
// for anything else.
func outputStyles(w io.Writer) ui.Styles {
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return ui.DefaultStyles()
	}
	return ui.PlainStyles()
}

// menuStyles maps the shared palette onto the line-prompt menu.
func menuStyles(st ui.Styles) preset.MenuStyles {
	return preset.MenuStyles{
		Title:       st.Title,
		Rule:        st.Help,
		Key:         st.HelpKey,
		Name:        st.Text,
		Description: st.Help,
		Success:     st.Success,
		Warning:     st.Warning,
	}
}

// printer writes the user-facing report of a command.
type printer struct {
	out io.Writer
	st  ui.Styles
}

func newPrinter(out io.Writer) *printer {
	return &printer{out: out, st: outputStyles(out)}
}

func (p *printer) line(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *printer) banner(title string) {
	rule := p.st.Help.Render(strings.Repeat("=", ruleWidth))
	p.line("")
	p.line("%s", rule)
	p.line("  %s", p.st.Title.Render(title))
	p.line("%s", rule)
}

func (p *printer) footer() {
	p.line("%s", p.st.Help.Render(strings.Repeat("=", ruleWidth)))
	p.line("")
}

func (p *printer) success(format string, args ...interface{}) {
	p.line("%s", p.st.Success.Render("✓ "+fmt.Sprintf(format, args...)))
}

func (p *printer) warn(format string, args ...interface{}) {
	p.line("%s", p.st.Warning.Render("⚠ "+fmt.Sprintf(format, args...)))
}

func (p *printer) fail(format string, args ...interface{}) {
	p.line("%s", p.st.Error.Render("✗ "+fmt.Sprintf(format, args...)))
}

func (p *printer) code(text string) {
	for _, l := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		p.line("  %s", p.st.Code.Render(l))
	}
}

// manualInstructions prints the lines to add by hand when the target is
// missing or could not be patched.
func (p *printer) manualInstructions(kind setup.Kind, chosen preset.Preset) {
	p.line("")
	p.line("  Add the plugin manually:")
	p.line("")
	if kind == setup.KindStylesheet {
		name := chosen.V4Name
		if name == "" {
			name = preset.Default().V4Name
		}
		p.code("@import \"tailwindcss\";\n" + setup.PluginDirective(name))
		return
	}
	expr := chosen.Expression
	if expr == "" {
		expr = preset.Default().Expression
	}
	p.code(setup.ESMImport + "\nexport default { plugins: [" + expr + "] }")
}

// reportInstall prints the outcome of an install.
func (p *printer) reportInstall(res setup.Result, original string) {
	switch res.Outcome {
	case setup.OutcomeConfigured:
		if res.DryRun {
			p.line("")
			p.line("%s", p.st.Info.Render("Dry run, "+res.Target.Name+" was not written:"))
			p.diff(original, res.Content)
			return
		}
		p.line("")
		p.success("Plugin configured in %s", res.Target.Name)
		p.line("  Preset: %s", res.Preset.Name)
		p.line("")
		p.line("%s", p.st.Text.Render("All your rounded-* classes now have modern corner-shape!"))
		p.line("   No code changes needed.")
	case setup.OutcomeAlreadyConfigured:
		p.line("")
		p.success("Plugin already configured in %s", res.Target.Name)
	case setup.OutcomeNotFound:
		p.line("")
		p.warn("No Tailwind config or stylesheet found")
		p.line("  Please run this command from your project root.")
		kind := setup.KindConfig
		if config.IsUserError(res.Err, config.ErrCodeStylesheetNotFound) {
			kind = setup.KindStylesheet
		}
		p.manualInstructions(kind, res.Preset)
	case setup.OutcomeManualRequired:
		p.line("")
		p.warn("Could not auto-configure %s", res.Target.Name)
		p.manualInstructions(res.Target.Kind, res.Preset)
	case setup.OutcomeFailed:
		p.line("")
		p.fail("Could not configure %s", targetName(res))
	}
}

// reportUninstall prints the outcome of one removal.
func (p *printer) reportUninstall(res setup.Result, original string) {
	switch res.Outcome {
	case setup.OutcomeRemoved:
		if res.DryRun {
			p.line("")
			p.line("%s", p.st.Info.Render("Dry run, "+res.Target.Name+" was not written:"))
			p.diff(original, res.Content)
			return
		}
		p.line("")
		p.success("Plugin removed from %s", res.Target.Name)
	case setup.OutcomeNotPresent:
		p.line("")
		p.line("%s", p.st.Warning.Render("⊘ Plugin not found in "+res.Target.Name))
	case setup.OutcomeNotFound:
		p.line("")
		p.line("%s", p.st.Warning.Render("⊘ No Tailwind config or stylesheet found"))
		p.line("  Nothing to clean up")
	case setup.OutcomeManualRequired:
		p.line("")
		p.warn("Could not clean %s automatically", res.Target.Name)
		p.line("  Remove the tailwindcss-corner-shape lines by hand.")
	case setup.OutcomeFailed:
		p.line("")
		p.fail("Could not clean %s", targetName(res))
	}
}

func targetName(res setup.Result) string {
	if res.Target.Name != "" {
		return res.Target.Name
	}
	return "project"
}

// diff prints the lines that differ between before and after.
func (p *printer) diff(before, after string) {
	for _, d := range lineDiff(splitLines(before), splitLines(after)) {
		switch d.op {
		case '+':
			p.line("%s", p.st.DiffAdd.Render("+ "+d.text))
		case '-':
			p.line("%s", p.st.DiffRemove.Render("- "+d.text))
		}
	}
}

type diffLine struct {
	op   byte
	text string
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// lineDiff returns a line-level edit script from a to b. Unchanged lines
// carry op ' '.
func lineDiff(a, b []string) []diffLine {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0

	chars1, chars2, lineArray := dmp.DiffLinesToChars(joinLines(a), joinLines(b))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(chars1, chars2, false), lineArray)

	var out []diffLine
	for _, d := range diffs {
		op := byte(' ')
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = '+'
		case diffmatchpatch.DiffDelete:
			op = '-'
		}
		for _, l := range splitLines(d.Text) {
			out = append(out, diffLine{op, l})
		}
	}
	return out
}

// joinLines terminates every line so the last one diffs like the others.
func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
