package message

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
)

// Printer the output sink the application writes through.
type Printer interface {
	// Show prints text unstyled.
	Show(text string)
	// ShowColorized prints text styled by severity.
	ShowColorized(severity Severity, text string)
	// Table prints rows under the given headers.
	Table(headers []string, rows [][]string)
}

type severityStyle struct {
	glyph string
	style lipgloss.Style
}

// Console writes to a terminal (or any writer) using lipgloss styles.
// Colors are dropped automatically when the writer is not a TTY or
// NO_COLOR is set.
type Console struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	styles   map[Severity]severityStyle
	header   lipgloss.Style
	cell     lipgloss.Style
}

type ConsoleOption func(*Console)

// WithColor forces colors off when enabled is false.
func WithColor(enabled bool) ConsoleOption {
	return func(c *Console) {
		if !enabled {
			c.renderer.SetColorProfile(termenv.Ascii)
		}
	}
}

func NewConsole(w io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{
		w:        w,
		renderer: lipgloss.NewRenderer(w),
	}
	for _, opt := range opts {
		opt(c)
	}

	r := c.renderer
	c.styles = map[Severity]severityStyle{
		SeverityInfo:    {glyph: "ℹ", style: r.NewStyle().Foreground(lipgloss.Color("12"))},
		SeveritySuccess: {glyph: "✔", style: r.NewStyle().Foreground(lipgloss.Color("10"))},
		SeverityError:   {glyph: "✖", style: r.NewStyle().Foreground(lipgloss.Color("9"))},
	}
	c.header = r.NewStyle().Bold(true).Padding(0, 1)
	c.cell = r.NewStyle().Padding(0, 1)
	return c
}

func (c *Console) Show(text string) {
	New(text).Show(c.w)
}

func (c *Console) ShowColorized(severity Severity, text string) {
	var s severityStyle
	switch severity {
	case SeveritySuccess, SeverityError, SeverityInfo:
		s = c.styles[severity]
	default:
		s = c.styles[SeverityInfo]
	}
	fmt.Fprintf(c.w, "%s %s\n", s.style.Render(s.glyph), text)
}

func (c *Console) Table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(c.renderer.NewStyle()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return c.header
			}
			return c.cell
		})
	fmt.Fprintln(c.w, t.String())
}

var _ Printer = (*Console)(nil)
