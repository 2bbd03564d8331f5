// Package scan locates characters and substrings in text while honoring
// backslash escaping, double-quoted regions, and balanced delimiter
// enclosures. All functions are single-pass, allocation-free, and return
// -1 when no match exists; -1 is the expected not-found outcome, never an
// error condition.
//
// A position is escaped when it is immediately preceded by an odd-length
// run of consecutive backslashes. Escape parity is computed against the
// full string, so a scan starting mid-string still sees escapes that began
// before the start index. Quote and enclosure state, by contrast, reset at
// the start index of every call.
package scan

// escapedAt reports whether the byte at index i is preceded by an
// odd-length run of consecutive backslashes.
func escapedAt(s string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

// matchAt reports whether target occurs at index i of s.
func matchAt(s, target string, i int) bool {
	return i+len(target) <= len(s) && s[i:i+len(target)] == target
}

// IndexOfUnescaped returns the smallest index i >= from at which target
// occurs unescaped, or -1. An unescaped backslash is itself matchable when
// target is '\\'.
func IndexOfUnescaped(s string, target byte, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(s) {
		return -1
	}
	esc := escapedAt(s, from)
	for i := from; i < len(s); i++ {
		c := s[i]
		if esc {
			esc = false
			continue
		}
		if c == target {
			return i
		}
		if c == '\\' {
			esc = true
		}
	}
	return -1
}

// IndexOfUnescapedString is the substring form of IndexOfUnescaped. An
// empty target matches immediately at the clamped start position.
func IndexOfUnescapedString(s, target string, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(s) {
		return -1
	}
	if len(target) == 0 {
		return from
	}
	esc := escapedAt(s, from)
	for i := from; i+len(target) <= len(s); i++ {
		c := s[i]
		if esc {
			esc = false
			continue
		}
		if matchAt(s, target, i) {
			return i
		}
		if c == '\\' {
			esc = true
		}
	}
	return -1
}

// LastIndexOfUnescaped returns the largest index i <= from at which target
// occurs unescaped, or -1. Escape parity is determined per candidate by
// counting the trailing backslash run before it; a carried flag cannot be
// used when scanning backward.
func LastIndexOfUnescaped(s string, target byte, from int) int {
	if from >= len(s) {
		from = len(s) - 1
	}
	for i := from; i >= 0; i-- {
		if s[i] == target && !escapedAt(s, i) {
			return i
		}
	}
	return -1
}

// LastIndexOfUnescapedString is the substring form of LastIndexOfUnescaped.
func LastIndexOfUnescapedString(s, target string, from int) int {
	if from < 0 {
		return -1
	}
	if len(target) == 0 {
		if from > len(s) {
			return len(s)
		}
		return from
	}
	if from > len(s)-len(target) {
		from = len(s) - len(target)
	}
	for i := from; i >= 0; i-- {
		if matchAt(s, target, i) && !escapedAt(s, i) {
			return i
		}
	}
	return -1
}

// IndexOfUnquoted returns the smallest index i >= from at which target
// occurs unescaped and outside a double-quoted region, or -1. Quote state
// toggles on every unescaped '"'; an unterminated quote extends to the end
// of the string. The opening quote of a region is itself outside it, so a
// target of '"' finds opening quotes.
func IndexOfUnquoted(s string, target byte, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(s) {
		return -1
	}
	esc := escapedAt(s, from)
	quoted := false
	for i := from; i < len(s); i++ {
		c := s[i]
		if esc {
			esc = false
			continue
		}
		if !quoted && c == target {
			return i
		}
		switch c {
		case '\\':
			esc = true
		case '"':
			quoted = !quoted
		}
	}
	return -1
}

// IndexOfUnquotedString is the substring form of IndexOfUnquoted.
func IndexOfUnquotedString(s, target string, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(s) {
		return -1
	}
	if len(target) == 0 {
		return from
	}
	esc := escapedAt(s, from)
	quoted := false
	for i := from; i < len(s); i++ {
		c := s[i]
		if esc {
			esc = false
			continue
		}
		if !quoted && matchAt(s, target, i) {
			return i
		}
		switch c {
		case '\\':
			esc = true
		case '"':
			quoted = !quoted
		}
	}
	return -1
}

// LastIndexOfUnquoted returns the largest index i <= from at which target
// occurs unescaped and outside a double-quoted region, or -1. Quote state
// toggles on each unescaped '"' encountered while scanning backward, so on
// input whose quotes are balanced left of from the result agrees with the
// forward definition of quoted regions.
func LastIndexOfUnquoted(s string, target byte, from int) int {
	if from >= len(s) {
		from = len(s) - 1
	}
	quoted := false
	for i := from; i >= 0; i-- {
		c := s[i]
		if escapedAt(s, i) {
			continue
		}
		if !quoted && c == target {
			return i
		}
		if c == '"' {
			quoted = !quoted
		}
	}
	return -1
}

// LastIndexOfUnquotedString is the substring form of LastIndexOfUnquoted.
func LastIndexOfUnquotedString(s, target string, from int) int {
	if from < 0 {
		return -1
	}
	if len(target) == 0 {
		if from > len(s) {
			return len(s)
		}
		return from
	}
	if from >= len(s) {
		from = len(s) - 1
	}
	// Quote state is tracked from the scan start even at positions too
	// close to the end to fit target.
	quoted := false
	for i := from; i >= 0; i-- {
		c := s[i]
		if escapedAt(s, i) {
			continue
		}
		if !quoted && matchAt(s, target, i) {
			return i
		}
		if c == '"' {
			quoted = !quoted
		}
	}
	return -1
}

// IndexOfUnenclosed returns the smallest index i >= from at which target
// occurs unescaped and outside an open/close enclosure, or -1. Only one
// level of inside/outside is tracked: nested openers inside an enclosure
// do not deepen it. A target equal to open matches the opener itself; the
// opener then still begins an enclosure for subsequent positions.
func IndexOfUnenclosed(s string, target, open, close byte, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(s) {
		return -1
	}
	esc := escapedAt(s, from)
	inside := false
	for i := from; i < len(s); i++ {
		c := s[i]
		if esc {
			esc = false
			continue
		}
		if c == '\\' {
			esc = true
			continue
		}
		if inside {
			if c == close {
				inside = false
			}
			continue
		}
		if c == target {
			return i
		}
		if c == open {
			inside = true
		}
	}
	return -1
}

// IndexOfUnenclosedString is the substring form of IndexOfUnenclosed.
func IndexOfUnenclosedString(s, target string, open, close byte, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(s) {
		return -1
	}
	if len(target) == 0 {
		return from
	}
	esc := escapedAt(s, from)
	inside := false
	for i := from; i < len(s); i++ {
		c := s[i]
		if esc {
			esc = false
			continue
		}
		if c == '\\' {
			esc = true
			continue
		}
		if inside {
			if c == close {
				inside = false
			}
			continue
		}
		if matchAt(s, target, i) {
			return i
		}
		if c == open {
			inside = true
		}
	}
	return -1
}

// IndexOfScopeClose returns the index of the unescaped close delimiter
// matching an open delimiter already consumed before from, or -1 if the
// string ends first. Depth starts at 1: each unescaped open increments it,
// each unescaped close decrements it, and the close that brings it to 0 is
// the match.
func IndexOfScopeClose(s string, open, close byte, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(s) {
		return -1
	}
	esc := escapedAt(s, from)
	depth := 1
	for i := from; i < len(s); i++ {
		c := s[i]
		if esc {
			esc = false
			continue
		}
		switch {
		case c == '\\':
			esc = true
		case c == close:
			depth--
			if depth == 0 {
				return i
			}
		case c == open:
			depth++
		}
	}
	return -1
}
