package heredoc

// maxDelimiterLen is the longest identifier the scanner will accept as a
// heredoc/nowdoc closing delimiter.
const maxDelimiterLen = 255

// minBufferCap is the floor capacity delimiterBuffer grows to on first use.
const minBufferCap = 16

// delimiterBuffer is the owned, growable byte buffer backing State's
// delimiter: allocated lazily, doubled on demand with a floor of
// minBufferCap, and reset to zero length (not freed) between heredocs so
// its capacity is retained across a parse session.
type delimiterBuffer struct {
	buf []byte
}

// Len reports the number of bytes currently held.
func (d *delimiterBuffer) Len() int {
	return len(d.buf)
}

// Bytes returns the buffer's contents. The slice is only valid until the
// next mutating call.
func (d *delimiterBuffer) Bytes() []byte {
	return d.buf
}

// Reset empties the buffer without releasing its backing array.
func (d *delimiterBuffer) Reset() {
	d.buf = d.buf[:0]
}

// AppendByte appends a single byte, growing the backing array if needed.
// It panics if the delimiter would exceed maxDelimiterLen, matching the
// corpus's convention of aborting rather than threading an error return
// through a tight per-byte scan loop.
func (d *delimiterBuffer) AppendByte(b byte) {
	if len(d.buf) >= maxDelimiterLen {
		panic("heredoc: closing delimiter exceeds maximum length")
	}
	if len(d.buf) == cap(d.buf) {
		d.grow()
	}
	d.buf = append(d.buf, b)
}

// grow doubles the backing array's capacity, with a floor of minBufferCap.
func (d *delimiterBuffer) grow() {
	newCap := cap(d.buf) * 2
	if newCap < minBufferCap {
		newCap = minBufferCap
	}
	next := make([]byte, len(d.buf), newCap)
	copy(next, d.buf)
	d.buf = next
}

// Equal reports whether the buffer's contents equal s, byte-for-byte.
func (d *delimiterBuffer) Equal(s []byte) bool {
	if len(d.buf) != len(s) {
		return false
	}
	for i := range d.buf {
		if d.buf[i] != s[i] {
			return false
		}
	}
	return true
}

// SetBytes replaces the buffer's contents with s, reusing the backing
// array when it already has enough capacity. Used by Deserialize.
func (d *delimiterBuffer) SetBytes(s []byte) {
	if cap(d.buf) < len(s) {
		d.buf = make([]byte, 0, len(s))
	}
	d.buf = d.buf[:0]
	d.buf = append(d.buf, s...)
}
