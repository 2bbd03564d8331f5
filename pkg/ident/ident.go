// Package ident validates, sanitizes, and generates ASCII identifiers: a
// letter or underscore followed by letters, digits, or underscores.
package ident

import (
	"strings"

	"github.com/google/uuid"

	"github.com/strkit/strkit/pkg/baseenc"
)

func isStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isCont(c byte) bool {
	return isStart(c) || (c >= '0' && c <= '9')
}

// Valid reports whether s is a non-empty identifier.
func Valid(s string) bool {
	if len(s) == 0 || !isStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isCont(s[i]) {
			return false
		}
	}
	return true
}

// Sanitize rewrites s into a valid identifier: invalid bytes become '_',
// and a leading digit gets an '_' prefix. An empty input yields "_".
func Sanitize(s string) string {
	if len(s) == 0 {
		return "_"
	}
	var b strings.Builder
	b.Grow(len(s) + 1)
	if !isStart(s[0]) {
		if s[0] >= '0' && s[0] <= '9' {
			b.WriteByte('_')
			b.WriteByte(s[0])
		} else {
			b.WriteByte('_')
		}
	} else {
		b.WriteByte(s[0])
	}
	for i := 1; i < len(s); i++ {
		if isCont(s[i]) {
			b.WriteByte(s[i])
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// New returns a fresh random identifier: an "id" prefix followed by the
// unpadded Base32 form of a random 128-bit UUID. The result is always
// Valid and collision probability is that of the underlying UUID.
func New() string {
	u := uuid.New()
	return "id" + baseenc.EncodeBase32(u[:])
}
