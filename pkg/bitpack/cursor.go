package bitpack

// Writer appends bit runs to a growable buffer, tracking the write cursor
// so callers do not thread bit offsets by hand. The zero value writes
// MSBFirst into an empty buffer.
type Writer struct {
	buf []byte
	off int
	ord Order
}

// NewWriter returns a Writer packing in the given order.
func NewWriter(ord Order) *Writer {
	return &Writer{ord: ord}
}

// grow extends the buffer with zero bytes until n more bits fit.
func (w *Writer) grow(n int) {
	need := (w.off + n + 7) >> 3
	for len(w.buf) < need {
		w.buf = append(w.buf, 0)
	}
}

// WriteBits appends the low n bits of src (0 <= n <= 8).
func (w *Writer) WriteBits(src byte, n int) {
	checkCount(n)
	w.grow(n)
	w.off = WriteBits(w.buf, w.off, src, n, w.ord)
}

// WriteBytes appends all bits of p.
func (w *Writer) WriteBytes(p []byte) {
	w.grow(8 * len(p))
	w.off = WriteBytesBits(w.buf, w.off, p, 8*len(p), w.ord)
}

// Align advances the cursor to the next byte boundary. The skipped bits
// stay zero.
func (w *Writer) Align() {
	if r := w.off & 7; r != 0 {
		w.off += 8 - r
	}
}

// Offset returns the current write cursor in bits.
func (w *Writer) Offset() int { return w.off }

// Bytes returns the buffer trimmed to ceil(Offset()/8) bytes. The slice
// aliases the Writer's storage.
func (w *Writer) Bytes() []byte {
	return w.buf[:(w.off+7)>>3]
}

// Reader consumes bit runs from a buffer, tracking the read cursor.
type Reader struct {
	buf []byte
	off int
	ord Order
}

// NewReader returns a Reader over buf in the given order.
func NewReader(buf []byte, ord Order) *Reader {
	return &Reader{buf: buf, ord: ord}
}

// ReadBits consumes the next n bits (0 <= n <= 8), right-justified.
func (r *Reader) ReadBits(n int) byte {
	b := ReadBits(r.buf, r.off, n, r.ord)
	r.off += n
	return b
}

// ReadBytes consumes the next 8*n bits as n bytes.
func (r *Reader) ReadBytes(n int) []byte {
	out := ReadBytesBits(r.buf, r.off, 8*n, r.ord)
	r.off += 8 * n
	return out
}

// Align advances the cursor to the next byte boundary.
func (r *Reader) Align() {
	if rem := r.off & 7; rem != 0 {
		r.off += 8 - rem
	}
}

// Offset returns the current read cursor in bits.
func (r *Reader) Offset() int { return r.off }

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return 8*len(r.buf) - r.off
}
