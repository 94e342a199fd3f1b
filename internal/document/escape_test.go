package document

import (
	"html"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stringer string

func (s stringer) String() string { return "<" + string(s) + ">" }

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{`<a href="x">Tom & Jerry</a>`, `&lt;a href=&quot;x&quot;&gt;Tom &amp; Jerry&lt;/a&gt;`},
		{"&amp;", "&amp;amp;"},
		{"it's", "it's"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.in))
		})
	}
}

func TestEscapeLeavesNoMarkupAndUnescapesToInput(t *testing.T) {
	inputs := []string{
		`<script>alert("x")</script>`,
		"&&&<<<>>>\"\"\"",
		"&lt; already looks escaped &quot;",
		"unicode — ü ✓ & <tags>",
		strings.Repeat(`a&b<c>d"`, 50),
	}
	entities := strings.NewReplacer("&amp;", "", "&lt;", "", "&gt;", "", "&quot;", "")

	for _, in := range inputs {
		out := Escape(in)
		assert.NotContains(t, out, "<")
		assert.NotContains(t, out, ">")
		assert.NotContains(t, out, `"`)
		assert.NotContains(t, entities.Replace(out), "&", "bare ampersand in %q", out)
		assert.Equal(t, in, html.UnescapeString(out))
	}
}

func TestEscapeValue(t *testing.T) {
	assert.Equal(t, "", EscapeValue(nil))
	assert.Equal(t, "a &amp; b", EscapeValue("a & b"))
	assert.Equal(t, "42", EscapeValue(42))
	assert.Equal(t, "true", EscapeValue(true))
	assert.Equal(t, "&lt;x&gt;", EscapeValue(stringer("x")))
}

type ptrStringer struct{ s string }

func (p *ptrStringer) String() string { return "<" + p.s + ">" }

func TestEscapeValueTypedNil(t *testing.T) {
	var p *ptrStringer
	var m map[string]string
	var s []string

	assert.NotPanics(t, func() { EscapeValue(p) })
	assert.Equal(t, "", EscapeValue(p))
	assert.Equal(t, "", EscapeValue(m))
	assert.Equal(t, "", EscapeValue(s))
	assert.Equal(t, "&lt;y&gt;", EscapeValue(&ptrStringer{s: "y"}))
}
