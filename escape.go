package dispatch

// Escape tables used by the codec. Each table states its worst-case
// expansion so output buffers can be sized once before the single pass.
const (
	backslashExpansion = 2 // \x
	entityExpansion    = 6 // &apos;
)

var entityTable = map[byte]string{
	'&':  "&amp;",
	'<':  "&lt;",
	'>':  "&gt;",
	'"':  "&quot;",
	'\'': "&apos;",
}

func isBackslashSpecial(c byte) bool {
	switch c {
	case '\\', '/', '.', '@':
		return true
	}
	return false
}

// BackslashEscape protects the characters that carry meaning inside a
// dataset path by prefixing each with a backslash.
//
// The escaped set is `\`, `/`, `.` and `@`. Every other byte is copied
// unchanged, so the result is valid wherever the input was.
//
// Examples:
//   - "a.b" → `a\.b`
//   - "user@host/x" → `user\@host\/x`
//   - `c:\tmp` → `c:\\tmp`
func BackslashEscape(s string) string {
	escaped := make([]byte, 0, backslashExpansion*len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isBackslashSpecial(c) {
			escaped = append(escaped, '\\')
		}
		escaped = append(escaped, c)
	}
	return string(escaped)
}

// BackslashUnescape reverses BackslashEscape. A backslash is dropped and the
// byte after it is copied verbatim, whatever its value. On input that did
// not come from BackslashEscape this strips every backslash that is not
// itself escaped; a lone trailing backslash is dropped.
func BackslashUnescape(esc string) string {
	s := make([]byte, 0, len(esc))
	for i := 0; i < len(esc); i++ {
		if esc[i] == '\\' {
			i++
			if i == len(esc) {
				break
			}
		}
		s = append(s, esc[i])
	}
	return string(s)
}

// EntityEscape replaces the five XML-significant characters with their
// predefined entities:
//
//	&  → &amp;
//	<  → &lt;
//	>  → &gt;
//	"  → &quot;
//	'  → &apos;
//
// There is no decoding counterpart.
func EntityEscape(s string) string {
	escaped := make([]byte, 0, entityExpansion*len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if entity, ok := entityTable[c]; ok {
			escaped = append(escaped, entity...)
		} else {
			escaped = append(escaped, c)
		}
	}
	return string(escaped)
}

// ShellUnescape removes the backslash some shells leave in front of a literal
// '#' (as in `file.nc\#mode=dap4`). Backslashes before any other character
// are kept, so other escaping in the string is left alone.
func ShellUnescape(esc string) string {
	s := make([]byte, 0, len(esc))
	for i := 0; i < len(esc); i++ {
		if esc[i] == '\\' && i+1 < len(esc) && esc[i+1] == '#' {
			continue
		}
		s = append(s, esc[i])
	}
	return string(s)
}
