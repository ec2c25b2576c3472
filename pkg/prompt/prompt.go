/*
Package prompt asks questions on a line-based terminal and collects the
answers by field name.
*/
package prompt

import (
	"bufio"
	"context"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// FieldType how an answer line is interpreted.
type FieldType int

const (
	// Input keeps the answer as text.
	Input FieldType = iota
	// Number parses the answer as a number; garbage becomes NaN.
	Number
)

// Field one question.
type Field struct {
	Name    string
	Type    FieldType
	Message string
}

// Answers values keyed by Field.Name: string for Input, float64 for Number.
type Answers map[string]any

// String returns the named answer if it is text.
func (a Answers) String(name string) string {
	s, _ := a[name].(string)
	return s
}

// Prompter asks every field in order and returns once all are answered.
// Only one Prompt call may be outstanding at a time.
type Prompter interface {
	Prompt(ctx context.Context, fields ...Field) (Answers, error)
}

// LinePrompter asks each field as an accessible huh input: the question is
// written to w and one line is read from r. Answers keep their text as
// typed, minus the line ending.
type LinePrompter struct {
	r     *lineReader
	w     io.Writer
	theme *huh.Theme
}

func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{
		r:     &lineReader{r: bufio.NewReader(r)},
		w:     w,
		theme: plainTheme(),
	}
}

func (p *LinePrompter) Prompt(ctx context.Context, fields ...Field) (Answers, error) {
	answers := make(Answers, len(fields))
	for _, f := range fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var text string
		input := huh.NewInput().
			Title("? " + f.Message).
			Value(&text)
		input.WithTheme(p.theme)

		p.r.reset()
		if err := input.RunAccessible(p.w, p.r); err != nil {
			return nil, err
		}
		if p.r.n == 0 && p.r.err != nil {
			return nil, p.r.err
		}

		switch f.Type {
		case Number:
			answers[f.Name] = parseNumber(text)
		default:
			answers[f.Name] = text
		}
	}
	return answers, nil
}

func parseNumber(s string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

// plainTheme renders the question as typed; colors belong to the console.
func plainTheme() *huh.Theme {
	t := huh.ThemeBase()
	t.Focused.Title = lipgloss.NewStyle()
	t.Blurred.Title = lipgloss.NewStyle()
	return t
}

// lineReader hands out one byte per Read so that huh, which scans every
// question with a fresh bufio.Scanner, never consumes the next answer. It
// remembers how much the current question read and why it stopped.
type lineReader struct {
	r   *bufio.Reader
	n   int
	err error
}

func (l *lineReader) reset() {
	l.n = 0
	l.err = nil
}

func (l *lineReader) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	c, err := l.r.ReadByte()
	if err != nil {
		l.err = err
		return 0, err
	}
	b[0] = c
	l.n++
	return 1, nil
}

var _ Prompter = (*LinePrompter)(nil)
