package html

import (
	"strings"
	"testing"
)

func TestEscapeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ampersand", "a & b", "a &amp; b"},
		{"angle brackets", "<div>", "&lt;div&gt;"},
		{"double quote", `say "hi"`, "say &quot;hi&quot;"},
		{"single quote", "it's", "it&#39;s"},
		{"no special chars", "plain text", "plain text"},
		{"empty", "", ""},
		{"unicode untouched", "héllo ☺", "héllo ☺"},
		{"all at once", `<a href="x">&</a>`, "&lt;a href=&quot;x&quot;&gt;&amp;&lt;/a&gt;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeText(tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"quote injection", `x" onclick="alert(1)`, "x&quot; onclick=&quot;alert(1)"},
		{"newline", "a\nb", "a&#10;b"},
		{"carriage return", "a\rb", "a&#13;b"},
		{"tab", "a\tb", "a&#9;b"},
		{"entities", "&<>", "&amp;&lt;&gt;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeAttr(tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEscapingAppliedExactlyOnce(t *testing.T) {
	// A pre-escaped entity gets its ampersand escaped once more at the
	// storage boundary, never recursively.
	got := escapeText("&amp;")
	if got != "&amp;amp;" {
		t.Errorf("got %q, want %q", got, "&amp;amp;")
	}
	if strings.Contains(escapeText(got), "&amp;amp;amp;amp;") {
		t.Error("escaping must not compound on repeated input")
	}
}

func TestEscapedOutputHasNoBareMarkup(t *testing.T) {
	hostile := `<img src=x onerror="alert('xss')">`
	got := escapeText(hostile)
	for _, forbidden := range []string{"<", ">", `"`} {
		if strings.Contains(got, forbidden) {
			t.Errorf("escaped output contains bare %q: %q", forbidden, got)
		}
	}
}
