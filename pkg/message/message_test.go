package message

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_Transforms(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		transform func(*Message)
		want      string
	}{
		{"capitalize", "hELLO wORLD", (*Message).Capitalize, "Hello world"},
		{"capitalize unicode", "élan", (*Message).Capitalize, "Élan"},
		{"capitalize empty", "", (*Message).Capitalize, ""},
		{"upper", "Bye bye!", (*Message).ToUpperCase, "BYE BYE!"},
		{"lower", "Bye BYE!", (*Message).ToLowerCase, "bye bye!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.in)
			tt.transform(m)
			assert.Equal(t, tt.want, m.String())
		})
	}
}

func TestMessage_Show(t *testing.T) {
	var out bytes.Buffer
	New("as-is  text").Show(&out)
	assert.Equal(t, "as-is  text\n", out.String())
}

func TestParseSeverity(t *testing.T) {
	assert.Equal(t, SeveritySuccess, ParseSeverity("success"))
	assert.Equal(t, SeverityError, ParseSeverity("ERROR"))
	assert.Equal(t, SeverityInfo, ParseSeverity("info"))
	assert.Equal(t, SeverityInfo, ParseSeverity("warning"), "unknown severities fall back to info")
}

func TestConsole_ShowColorized(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityInfo, "ℹ Users data\n"},
		{SeveritySuccess, "✔ Users data\n"},
		{SeverityError, "✖ Users data\n"},
		{Severity(42), "ℹ Users data\n"},
	}

	for _, tt := range tests {
		t.Run(tt.severity.String(), func(t *testing.T) {
			var out bytes.Buffer
			NewConsole(&out, WithColor(false)).ShowColorized(tt.severity, "Users data")
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestConsole_Table(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, WithColor(false))

	c.Table([]string{"name", "age"}, [][]string{{"Ann", "30"}, {"Bob", "41"}})

	got := out.String()
	require.Regexp(t, regexp.MustCompile(`name\s*│\s*age`), got)
	ann := regexp.MustCompile(`Ann\s*│\s*30`).FindStringIndex(got)
	bob := regexp.MustCompile(`Bob\s*│\s*41`).FindStringIndex(got)
	require.NotNil(t, ann)
	require.NotNil(t, bob)
	assert.Less(t, ann[0], bob[0], "rows keep their order")
}

func TestConsole_Show(t *testing.T) {
	var out bytes.Buffer
	NewConsole(&out, WithColor(false)).Show("plain")
	assert.Equal(t, "plain\n", out.String())
}
