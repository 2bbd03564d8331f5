package baseenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RFC 4648 test vectors, stripped of padding.
var base32Vectors = []struct {
	plain   string
	encoded string
}{
	{"", ""},
	{"f", "MY"},
	{"fo", "MZXQ"},
	{"foo", "MZXW6"},
	{"foob", "MZXW6YQ"},
	{"fooba", "MZXW6YTB"},
	{"foobar", "MZXW6YTBOI"},
}

func TestEncodeBase32(t *testing.T) {
	for _, v := range base32Vectors {
		assert.Equal(t, v.encoded, EncodeBase32([]byte(v.plain)), "plain %q", v.plain)
	}
}

func TestDecodeBase32(t *testing.T) {
	for _, v := range base32Vectors {
		got, err := DecodeBase32(v.encoded)
		require.NoError(t, err, "encoded %q", v.encoded)
		assert.Equal(t, []byte(v.plain), got)
	}
}

func TestDecodeBase32Lowercase(t *testing.T) {
	got, err := DecodeBase32("mzxw6ytboi")
	require.NoError(t, err)
	assert.Equal(t, []byte("foobar"), got)
}

func TestDecodeBase32Invalid(t *testing.T) {
	_, err := DecodeBase32("MZ1W6")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "position 2")

	_, err = DecodeBase32("M YQ")
	require.Error(t, err)
}

func TestDecodeBase32InvalidLength(t *testing.T) {
	// No byte count encodes to 1, 3, or 6 characters mod 8.
	for _, s := range []string{"M", "MZX", "MZXW6Y", "MZXW6YTBM"} {
		_, err := DecodeBase32(s)
		require.Error(t, err, "encoded %q", s)
		assert.Contains(t, err.Error(), "length")
	}
}

func TestDecodeBase32NonzeroPadding(t *testing.T) {
	// "MZ" carries 10 bits 01100 11001; the 2 padding bits are 01.
	_, err := DecodeBase32("MZ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "padding")
}

func TestDecodeBase32Empty(t *testing.T) {
	got, err := DecodeBase32("")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBase32RoundTrip(t *testing.T) {
	inputs := [][]byte{
		{0x00},
		{0xFF, 0xFF, 0xFF},
		{0xDE, 0xAD, 0xBE, 0xEF},
		[]byte("a longer input that is not a multiple of five bytes"),
	}
	for _, in := range inputs {
		got, err := DecodeBase32(EncodeBase32(in))
		require.NoError(t, err)
		assert.Equal(t, in, got)
	}
}

func TestEncodeHex(t *testing.T) {
	assert.Equal(t, "", EncodeHex(nil))
	assert.Equal(t, "00ff", EncodeHex([]byte{0x00, 0xFF}))
	assert.Equal(t, "deadbeef", EncodeHex([]byte{0xDE, 0xAD, 0xBE, 0xEF}))
}

func TestDecodeHex(t *testing.T) {
	got, err := DecodeHex("deadBEEF")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, got)

	_, err = DecodeHex("abc")
	require.Error(t, err, "odd length")

	_, err = DecodeHex("zz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "position 0")
}
