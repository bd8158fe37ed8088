// Package console writes the user-facing side of the tracker: menus, prompts
// and one-line status messages prefixed with a glyph.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Status glyphs
const (
	GlyphSuccess = "✅"
	GlyphWarning = "⚠"
	GlyphError   = "❌"
)

var (
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorWarning lipgloss.Color = "#f9e2af"
	colorError   lipgloss.Color = "#f38ba8"
	colorAccent  lipgloss.Color = "#89b4fa"
)

// Printer writes console output. Colors are only emitted when the
// destination is a terminal.
type Printer struct {
	out          io.Writer
	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	headingStyle lipgloss.Style
}

// NewPrinter creates a Printer bound to out.
func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:          out,
		successStyle: r.NewStyle().Foreground(colorSuccess),
		warningStyle: r.NewStyle().Foreground(colorWarning),
		errorStyle:   r.NewStyle().Foreground(colorError),
		headingStyle: r.NewStyle().Foreground(colorAccent),
	}
}

// Success prints a message with the success glyph.
func (p *Printer) Success(format string, args ...interface{}) {
	p.status(p.successStyle, GlyphSuccess, format, args...)
}

// Warn prints a message with the warning glyph.
func (p *Printer) Warn(format string, args ...interface{}) {
	p.status(p.warningStyle, GlyphWarning, format, args...)
}

// Error prints a message with the error glyph.
func (p *Printer) Error(format string, args ...interface{}) {
	p.status(p.errorStyle, GlyphError, format, args...)
}

// Heading prints a blank line followed by a section title.
func (p *Printer) Heading(title string) {
	fmt.Fprintf(p.out, "\n%s\n", p.headingStyle.Render(title))
}

// Println prints a plain line.
func (p *Printer) Println(line string) {
	fmt.Fprintln(p.out, line)
}

// Printf prints formatted text without a trailing newline.
func (p *Printer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// Prompt prints text and leaves the cursor on the same line.
func (p *Printer) Prompt(text string) {
	fmt.Fprint(p.out, text)
}

func (p *Printer) status(style lipgloss.Style, glyph, format string, args ...interface{}) {
	fmt.Fprintf(p.out, "%s %s\n", style.Render(glyph), fmt.Sprintf(format, args...))
}
