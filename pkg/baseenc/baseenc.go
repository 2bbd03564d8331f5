// Package baseenc provides unpadded Base32 (RFC 4648 alphabet) and
// hexadecimal encodings. Base32 is layered on bitpack: each output
// character carries one 5-bit group read MSB-first from the input, which
// is exactly the compact-binary-encoding use the packer exists for.
//
// Decode failures are ordinary errors naming the offending position; they
// indicate malformed caller data, not a programming error.
package baseenc

import (
	"fmt"
	"strings"

	"github.com/strkit/strkit/pkg/bitpack"
)

const base32Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

var base32Rev = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = 0xFF
	}
	for i := 0; i < len(base32Alphabet); i++ {
		t[base32Alphabet[i]] = byte(i)
		t[base32Alphabet[i]|0x20] = byte(i) // accept lowercase
	}
	return t
}()

// EncodeBase32 encodes src without padding. A final group of fewer than 5
// bits is left-justified into its character, per RFC 4648.
func EncodeBase32(src []byte) string {
	if len(src) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow((8*len(src) + 4) / 5)
	total := 8 * len(src)
	for off := 0; off < total; off += 5 {
		n := total - off
		if n > 5 {
			n = 5
		}
		v := bitpack.ReadBits(src, off, n, bitpack.MSBFirst)
		b.WriteByte(base32Alphabet[v<<(5-n)])
	}
	return b.String()
}

// DecodeBase32 decodes an unpadded Base32 string, accepting both cases.
// The length must be one an encoder can produce (no 1, 3, or 6 mod 8)
// and the padding bits of the final character must be zero.
func DecodeBase32(s string) ([]byte, error) {
	if len(s) == 0 {
		return []byte{}, nil
	}
	switch len(s) % 8 {
	case 1, 3, 6:
		return nil, fmt.Errorf("baseenc: invalid base32 length %d", len(s))
	}
	w := bitpack.NewWriter(bitpack.MSBFirst)
	for i := 0; i < len(s); i++ {
		v := base32Rev[s[i]]
		if v == 0xFF {
			return nil, fmt.Errorf("baseenc: invalid base32 character %q at position %d", s[i], i)
		}
		w.WriteBits(v, 5)
	}
	out := w.Bytes()
	n := 5 * len(s) / 8
	for _, b := range out[n:] {
		if b != 0 {
			return nil, fmt.Errorf("baseenc: nonzero base32 padding bits")
		}
	}
	return out[:n], nil
}

const hexDigits = "0123456789abcdef"

// EncodeHex encodes src as lowercase hexadecimal.
func EncodeHex(src []byte) string {
	var b strings.Builder
	b.Grow(2 * len(src))
	for _, c := range src {
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0x0F])
	}
	return b.String()
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// DecodeHex decodes a hexadecimal string of either case.
func DecodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("baseenc: odd-length hex input (%d characters)", len(s))
	}
	out := make([]byte, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		hi, ok := hexNibble(s[i])
		if !ok {
			return nil, fmt.Errorf("baseenc: invalid hex character %q at position %d", s[i], i)
		}
		lo, ok := hexNibble(s[i+1])
		if !ok {
			return nil, fmt.Errorf("baseenc: invalid hex character %q at position %d", s[i+1], i+1)
		}
		out[i/2] = hi<<4 | lo
	}
	return out, nil
}
