package xmlutil_test

import (
	"testing"

	"github.com/alnah/go-hwpxgen/internal/xmlutil"
)

func TestEscapeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "예산 현황", "예산 현황"},
		{"ampersand", "R&D", "R&amp;D"},
		{"angle brackets", "a < b > c", "a &lt; b &gt; c"},
		{"quotes pass through in text", `say "hi"`, `say "hi"`},
		{"empty", "", ""},
		{"already escaped stays literal", "&amp;", "&amp;amp;"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := xmlutil.EscapeText(tt.input); got != tt.want {
				t.Errorf("EscapeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeAttr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"double quote", `a"b`, "a&quot;b"},
		{"single quote", "a'b", "a&apos;b"},
		{"ampersand", "a&b", "a&amp;b"},
		{"angle brackets", "<x>", "&lt;x&gt;"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := xmlutil.EscapeAttr(tt.input); got != tt.want {
				t.Errorf("EscapeAttr(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
