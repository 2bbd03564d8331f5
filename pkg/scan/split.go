package scan

import "strings"

// SplitUnescaped splits s on every unescaped occurrence of sep. Escaped
// separators stay inside their field. N separators yield N+1 fields,
// empty fields included, so SplitUnescaped("", sep) is [""].
func SplitUnescaped(s string, sep byte) []string {
	fields := make([]string, 0, strings.Count(s, string(sep))+1)
	start := 0
	esc := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if esc {
			esc = false
			continue
		}
		switch c {
		case '\\':
			esc = true
		case sep:
			fields = append(fields, s[start:i])
			start = i + 1
		}
	}
	return append(fields, s[start:])
}

// SplitUnquoted splits s on every unescaped occurrence of sep outside
// double-quoted regions. Quote state carries across the whole string, so a
// separator inside "..." stays inside its field.
func SplitUnquoted(s string, sep byte) []string {
	fields := make([]string, 0, strings.Count(s, string(sep))+1)
	start := 0
	esc := false
	quoted := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if esc {
			esc = false
			continue
		}
		switch c {
		case '\\':
			esc = true
		case '"':
			quoted = !quoted
		case sep:
			if !quoted {
				fields = append(fields, s[start:i])
				start = i + 1
			}
		}
	}
	return append(fields, s[start:])
}

// Unescape removes one level of backslash escaping: each "\x" pair becomes
// "x". A lone trailing backslash is preserved as-is.
func Unescape(s string) string {
	i := strings.IndexByte(s, '\\')
	if i < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) - 1)
	b.WriteString(s[:i])
	for ; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Escape backslash-escapes every occurrence in s of a byte listed in
// chars, and of the backslash itself. Unescape inverts it for those bytes.
func Escape(s string, chars string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || strings.IndexByte(chars, c) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}
