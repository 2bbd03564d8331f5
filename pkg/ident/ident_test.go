package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	testCases := []struct {
		s      string
		expect bool
	}{
		{"abc", true},
		{"_abc", true},
		{"a1b2", true},
		{"A_Z9", true},
		{"", false},
		{"9abc", false},
		{"a-b", false},
		{"a b", false},
		{"naïve", false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expect, Valid(tc.s), "input %q", tc.s)
	}
}

func TestSanitize(t *testing.T) {
	testCases := []struct {
		s      string
		expect string
	}{
		{"abc", "abc"},
		{"9abc", "_9abc"},
		{"a-b.c", "a_b_c"},
		{"", "_"},
		{"-", "_"},
		{"_ok", "_ok"},
	}

	for _, tc := range testCases {
		got := Sanitize(tc.s)
		assert.Equal(t, tc.expect, got, "input %q", tc.s)
		assert.True(t, Valid(got), "sanitized %q must be valid", got)
	}
}

func TestNew(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := New()
		assert.True(t, Valid(id), "generated %q", id)
		assert.Len(t, id, 28, "2-byte prefix plus 26 base32 characters")
		assert.False(t, seen[id], "duplicate %q", id)
		seen[id] = true
	}
}
