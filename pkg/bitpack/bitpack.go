// Package bitpack packs and unpacks runs of bits into byte buffers at
// arbitrary bit offsets. A bit offset addresses a sub-byte position:
// byteIndex = off/8, bitInByte = off%8. Two bit orders are supported:
// MSBFirst fills each destination byte from its most significant bit down,
// LSBFirst from its least significant bit up; which one applies is decided
// by the wire format being packed.
//
// Writes OR new bits into the destination and never clear existing ones.
// Reusing a buffer across logically independent fields without zeroing it
// first will union the fields' bits. Callers that interleave writes at
// overlapping offsets get the bitwise OR of everything written.
//
// Out-of-range bit counts and offsets are precondition violations and
// panic; not-enough-buffer surfaces as the usual slice bounds panic. There
// is no recoverable error in this package.
package bitpack

import "fmt"

// Order selects which end of a destination byte the first bit of a run
// occupies.
type Order int

const (
	// MSBFirst places the first bit of a run in the most significant
	// free position of the destination byte.
	MSBFirst Order = iota
	// LSBFirst places the first bit of a run in the least significant
	// free position of the destination byte.
	LSBFirst
)

func (o Order) String() string {
	switch o {
	case MSBFirst:
		return "B"
	case LSBFirst:
		return "L"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

func checkCount(n int) {
	if n < 0 || n > 8 {
		panic(fmt.Sprintf("bitpack: bit count %d out of range [0,8]", n))
	}
}

func checkOffset(off int) {
	if off < 0 {
		panic(fmt.Sprintf("bitpack: negative bit offset %d", off))
	}
}

// WriteBits ORs the low n bits of src (0 <= n <= 8) into dst starting at
// bit offset off, in the given order, and returns off+n. A run that does
// not fit in the remainder of the current byte spills its tail into the
// next byte.
//
// With MSBFirst, WriteBits([]byte{0}, 1, 0b111, 3, MSBFirst) leaves
// dst[0] == 0b0111_0000.
func WriteBits(dst []byte, off int, src byte, n int, ord Order) int {
	checkCount(n)
	checkOffset(off)
	if n == 0 {
		return off
	}

	idx := off >> 3
	bit := off & 7
	rem := 8 - bit
	src &= byte(1<<n - 1)

	if ord == MSBFirst {
		if n <= rem {
			dst[idx] |= src << (rem - n)
		} else {
			// High part fills the current byte, low part leads the next.
			low := n - rem
			dst[idx] |= src >> low
			dst[idx+1] |= src << (8 - low)
		}
	} else {
		if n <= rem {
			dst[idx] |= src << bit
		} else {
			dst[idx] |= src << bit // high bits of the shift fall off
			dst[idx+1] |= src >> rem
		}
	}
	return off + n
}

// WriteBytesBits ORs the first n bits of src into dst starting at bit
// offset off and returns off+n. When n is not a multiple of 8 the leading
// partial byte of src carries 1+(n-1)%8 bits, written first; the remaining
// bytes of src follow as full 8-bit runs.
func WriteBytesBits(dst []byte, off int, src []byte, n int, ord Order) int {
	checkOffset(off)
	if n < 0 || n > 8*len(src) {
		panic(fmt.Sprintf("bitpack: bit count %d out of range [0,%d]", n, 8*len(src)))
	}
	if n == 0 {
		return off
	}

	lead := 1 + (n-1)&7
	off = WriteBits(dst, off, src[0], lead, ord)
	for i := 1; i < (n+7)>>3; i++ {
		off = WriteBits(dst, off, src[i], 8, ord)
	}
	return off
}

// ReadBits extracts n bits (0 <= n <= 8) from src starting at bit offset
// off, right-justified in the returned byte. The run may span two adjacent
// source bytes. It is the inverse of WriteBits into a zeroed buffer.
func ReadBits(src []byte, off, n int, ord Order) byte {
	checkCount(n)
	checkOffset(off)
	if n == 0 {
		return 0
	}

	idx := off >> 3
	bit := off & 7
	rem := 8 - bit
	mask := byte(1<<n - 1)

	if ord == MSBFirst {
		if n <= rem {
			return src[idx] >> (rem - n) & mask
		}
		low := n - rem
		return src[idx]<<low&mask | src[idx+1]>>(8-low)
	}
	if n <= rem {
		return src[idx] >> bit & mask
	}
	return src[idx]>>bit | src[idx+1]<<rem&mask
}

// ReadBytesBits extracts n bits from src starting at bit offset off into a
// new slice of ceil(n/8) bytes, using the same leading-partial-byte
// convention as WriteBytesBits. It is the inverse of WriteBytesBits into a
// zeroed buffer.
func ReadBytesBits(src []byte, off, n int, ord Order) []byte {
	checkOffset(off)
	if n < 0 {
		panic(fmt.Sprintf("bitpack: negative bit count %d", n))
	}
	out := make([]byte, (n+7)>>3)
	if n == 0 {
		return out
	}

	lead := 1 + (n-1)&7
	out[0] = ReadBits(src, off, lead, ord)
	off += lead
	for i := 1; i < len(out); i++ {
		out[i] = ReadBits(src, off, 8, ord)
		off += 8
	}
	return out
}
