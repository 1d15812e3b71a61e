package preset

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Prompt is the question shown below the menu.
const Prompt = "Choose a style (1-6) or press Enter for default [1]: "

// MenuStyles styles the rendered menu.
type MenuStyles struct {
	Title       lipgloss.Style
	Rule        lipgloss.Style
	Key         lipgloss.Style
	Name        lipgloss.Style
	Description lipgloss.Style
	Success     lipgloss.Style
	Warning     lipgloss.Style
}

// PlainMenuStyles renders the menu without decoration.
func PlainMenuStyles() MenuStyles {
	s := lipgloss.NewStyle()
	return MenuStyles{Title: s, Rule: s, Key: s, Name: s, Description: s, Success: s, Warning: s}
}

// Selector asks for one preset on a line-oriented terminal.
type Selector struct {
	in     io.Reader
	out    io.Writer
	styles MenuStyles
}

// NewSelector creates a Selector reading from in and writing to out.
func NewSelector(in io.Reader, out io.Writer, styles MenuStyles) *Selector {
	return &Selector{in: in, out: out, styles: styles}
}

// RenderMenu returns the numbered preset menu.
func RenderMenu(styles MenuStyles) string {
	var b strings.Builder
	rule := strings.Repeat("─", 58)

	b.WriteString(styles.Title.Render("Choose Your Corner Shape Style"))
	b.WriteString("\n")
	b.WriteString(styles.Rule.Render(rule))
	b.WriteString("\n")
	for _, p := range menu {
		fmt.Fprintf(&b, "\n  %s %s\n", styles.Key.Render(p.Key+"."), styles.Name.Render(p.Name))
		fmt.Fprintf(&b, "     %s\n", styles.Description.Render(p.Description))
	}
	b.WriteString("\n")
	b.WriteString(styles.Rule.Render(rule))
	b.WriteString("\n")
	return b.String()
}

// Select prints the menu, reads a single line and resolves it. Empty input
// selects the default; an unknown answer falls back to the default with a
// warning. The answer is not re-asked.
//
// Cancelling ctx returns ctx.Err() at once and closes the input when it is
// an io.Closer. A pending read on an input that cannot be closed, or whose
// Close does not interrupt reads, stays blocked until the input yields a
// line or EOF. That read consumes the next line, so the input must not be
// read again after a cancelled Select.
func (s *Selector) Select(ctx context.Context) (Preset, error) {
	fmt.Fprint(s.out, RenderMenu(s.styles))
	fmt.Fprint(s.out, "\n"+Prompt)

	answer, err := readLine(ctx, s.in)
	if err != nil {
		return Preset{}, err
	}

	p, warned := Resolve(answer)
	if warned {
		fmt.Fprintln(s.out, "\n"+s.styles.Warning.Render("⚠ Invalid choice, using default (iOS Squircle)"))
	} else {
		fmt.Fprintln(s.out, "\n"+s.styles.Success.Render("✓ Selected: "+p.Name))
	}
	return p, nil
}

// Resolve maps a menu answer to a preset. The bool reports a fallback to
// the default because the answer matched no key.
func Resolve(answer string) (Preset, bool) {
	choice := strings.TrimSpace(answer)
	if choice == "" {
		choice = DefaultKey
	}
	for _, p := range menu {
		if p.Key == choice {
			return p, false
		}
	}
	return Default(), true
}

// readLine reads one line from in. The reader lives only for this call.
// EOF without input counts as an empty answer. done is buffered so the
// reading goroutine can always exit, even after a cancelled call returned.
func readLine(ctx context.Context, in io.Reader) (string, error) {
	type result struct {
		line string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err == io.EOF {
			err = nil
		}
		done <- result{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		if c, ok := in.(io.Closer); ok {
			_ = c.Close()
		}
		return "", ctx.Err()
	case r := <-done:
		return r.line, r.err
	}
}
