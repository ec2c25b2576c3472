/*
Package message prints the lines a person at the prompt sees: plain text,
severity-colored status lines and tables.
*/
package message

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Severity classification of an output line; it picks the line's style.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityError:
		return "error"
	case SeverityInfo:
		return "info"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// ParseSeverity maps "success", "error" and "info"; anything else is info.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(s) {
	case "success":
		return SeveritySuccess
	case "error":
		return SeverityError
	default:
		return SeverityInfo
	}
}

// Message holds a piece of text that can be transformed before printing.
type Message struct {
	content string
}

func New(content string) *Message {
	return &Message{content: content}
}

// Show prints the text as-is, followed by a newline.
func (m *Message) Show(w io.Writer) {
	fmt.Fprintln(w, m.content)
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func (m *Message) Capitalize() {
	if m.content == "" {
		return
	}
	first, size := utf8.DecodeRuneInString(m.content)
	m.content = string(unicode.ToUpper(first)) + strings.ToLower(m.content[size:])
}

func (m *Message) ToUpperCase() {
	m.content = strings.ToUpper(m.content)
}

func (m *Message) ToLowerCase() {
	m.content = strings.ToLower(m.content)
}

func (m *Message) String() string {
	return m.content
}
