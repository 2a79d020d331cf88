// Package console is the terminal front end of an interactive session.
//
// It reads one answer per line and renders statements as markdown, styled
// with glamour unless the raw style is selected.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/renderer"
	"github.com/etnz/moneytracker/session"
)

// RawStyle prints the markdown source instead of rendering it.
const RawStyle = "raw"

// Options configures a Console.
type Options struct {
	Currency string // display currency
	Style    string // glamour style name or path, "auto", or RawStyle
	Width    int    // word wrap, 0 for the default
}

// Console implements session.UI on a line oriented terminal.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	currency string
	md       *glamour.TermRenderer // nil in raw mode

	prompt lipgloss.Style
	levels map[session.Level]lipgloss.Style
}

var _ session.UI = (*Console)(nil)

// New returns a console reading answers from in and writing to out.
func New(in io.Reader, out io.Writer, opts Options) (*Console, error) {
	if opts.Currency == "" {
		opts.Currency = moneytracker.DefaultCurrency
	}
	if opts.Width <= 0 {
		opts.Width = 100
	}
	c := &Console{
		in:       bufio.NewReader(in),
		out:      out,
		currency: opts.Currency,
	}

	switch opts.Style {
	case RawStyle:
	case "", "auto":
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(opts.Width))
		if err != nil {
			return nil, fmt.Errorf("creating markdown renderer: %w", err)
		}
		c.md = r
	default:
		r, err := glamour.NewTermRenderer(glamour.WithStylePath(opts.Style), glamour.WithWordWrap(opts.Width))
		if err != nil {
			return nil, fmt.Errorf("creating markdown renderer with style %q: %w", opts.Style, err)
		}
		c.md = r
	}

	// colors are dropped when out is not a terminal.
	lg := lipgloss.NewRenderer(out)
	c.prompt = lg.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	c.levels = map[session.Level]lipgloss.Style{
		session.Info:    lg.NewStyle(),
		session.Success: lg.NewStyle().Foreground(lipgloss.Color("10")),
		session.Warning: lg.NewStyle().Foreground(lipgloss.Color("11")),
		session.Failure: lg.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
	return c, nil
}

// Show prints the statement.
func (c *Console) Show(st moneytracker.Statement) error {
	doc := renderer.Statement(st, c.currency)
	if c.md != nil {
		out, err := c.md.Render(doc)
		if err != nil {
			return fmt.Errorf("rendering statement: %w", err)
		}
		doc = out
	}
	_, err := fmt.Fprintln(c.out, doc)
	return err
}

// Choose prints numbered options and reads a selection, by number or by
// label, until a valid one is given.
func (c *Console) Choose(title string, options []string) (int, error) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.prompt.Render(title))
	for i, opt := range options {
		fmt.Fprintf(c.out, "  %d. %s\n", i+1, opt)
	}
	for {
		answer, err := c.Ask(">")
		if err != nil {
			return 0, err
		}
		if i, ok := selection(answer, options); ok {
			return i, nil
		}
		c.Notify(session.Warning, fmt.Sprintf("Invalid selection %q, enter a number between 1 and %d.", answer, len(options)))
	}
}

// selection resolves an answer to an option index.
func selection(answer string, options []string) (int, bool) {
	answer = strings.TrimSpace(answer)
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(options) {
			return n - 1, true
		}
		return 0, false
	}
	for i, opt := range options {
		if answer != "" && strings.EqualFold(answer, opt) {
			return i, true
		}
	}
	return 0, false
}

// Ask prints the question and reads one line.
func (c *Console) Ask(question string) (string, error) {
	fmt.Fprint(c.out, c.prompt.Render(question)+" ")
	return c.readLine()
}

// Notify prints a message styled by level.
func (c *Console) Notify(level session.Level, message string) {
	fmt.Fprintln(c.out, c.levels[level].Render(message))
}

// Pause waits for the Enter key.
func (c *Console) Pause() error {
	fmt.Fprint(c.out, "Press Enter to continue...")
	_, err := c.readLine()
	return err
}

// readLine reads a line without its end of line. A last line without end
// of line is returned, io.EOF comes with the next call.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
