package dispatch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackslashEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain", in: "abc123", want: "abc123"},
		{name: "dot", in: "a.b", want: `a\.b`},
		{name: "all specials", in: `\/.@`, want: `\\\/\.\@`},
		{name: "user at host", in: "user@host/x", want: `user\@host\/x`},
		{name: "other punctuation untouched", in: "a#b&c", want: "a#b&c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BackslashEscape(tt.in))
		})
	}
}

func TestBackslashUnescape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain", in: "abc", want: "abc"},
		{name: "escaped dot", in: `a\.b`, want: "a.b"},
		{name: "escaped backslash", in: `a\\b`, want: `a\b`},
		{name: "any byte after backslash", in: `\n\x`, want: "nx"},
		{name: "trailing backslash", in: `abc\`, want: "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BackslashUnescape(tt.in))
		})
	}
}

func TestBackslashRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"abc",
		`\`,
		`a\b/c.d@e`,
		"x.nc/group@version",
		strings.Repeat(`\/.@`, 8),
	}
	for _, in := range inputs {
		assert.Equal(t, in, BackslashUnescape(BackslashEscape(in)), "round trip of %q", in)
	}
}

func FuzzBackslashRoundTrip(f *testing.F) {
	f.Add("a.b")
	f.Add(`a\b`)
	f.Add("@/")
	f.Fuzz(func(t *testing.T, s string) {
		if got := BackslashUnescape(BackslashEscape(s)); got != s {
			t.Fatalf("round trip of %q gave %q", s, got)
		}
	})
}

func TestEntityEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain", in: "abc", want: "abc"},
		{name: "mixed", in: "a<b&c", want: "a&lt;b&amp;c"},
		{name: "all entities", in: `&<>"'`, want: "&amp;&lt;&gt;&quot;&apos;"},
		{name: "already escaped", in: "&amp;", want: "&amp;amp;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EntityEscape(tt.in))
		})
	}
}

func TestEntityEscapeWorstCase(t *testing.T) {
	in := strings.Repeat("'", 100)
	got := EntityEscape(in)
	assert.Len(t, got, entityExpansion*len(in))
}

func TestShellUnescape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "escaped hash", in: `foo\#bar`, want: "foo#bar"},
		{name: "other backslash", in: `foo\bar`, want: `foo\bar`},
		{name: "url fragment", in: `file.nc\#mode=dap4`, want: "file.nc#mode=dap4"},
		{name: "double backslash before hash", in: `a\\#b`, want: `a\#b`},
		{name: "trailing backslash", in: `a\`, want: `a\`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShellUnescape(tt.in))
		})
	}
}
