package bits

import "fmt"

// Writer appends MSB-first bit fields to a growing byte buffer. It is the
// inverse of Reader: the final partial byte is zero padded.
type Writer struct {
	buf []byte
	n   uint64
}

func NewWriter() *Writer {
	return &Writer{}
}

// WriteBits appends the low n bits of v, most significant first.
func (w *Writer) WriteBits(v uint64, n uint) {
	if n > 64 {
		panic(fmt.Sprintf("bits: WriteBits width %d exceeds 64", n))
	}
	for i := n; i > 0; i-- {
		w.writeBit(byte(v>>(i-1)) & 1)
	}
}

func (w *Writer) writeBit(bit byte) {
	idx := w.n / 8
	if idx == uint64(len(w.buf)) {
		w.buf = append(w.buf, 0)
	}
	if bit != 0 {
		w.buf[idx] |= 0x80 >> (w.n % 8)
	}
	w.n++
}

// Len returns the number of bits written.
func (w *Writer) Len() uint64 {
	return w.n
}

// Bytes returns a copy of the written bytes.
func (w *Writer) Bytes() []byte {
	out := make([]byte, len(w.buf))
	copy(out, w.buf)
	return out
}

// Hex returns the written bytes as uppercase hex.
func (w *Writer) Hex() string {
	return EncodeHex(w.buf)
}

// Append copies every bit written to o onto the end of w.
func (w *Writer) Append(o *Writer) {
	r := NewReader(o.buf)
	for left := o.n; left > 0; {
		width := uint(min(left, MaxBits))
		v, err := r.ReadBits(width)
		if err != nil {
			panic(fmt.Sprintf("bits: append short read: %v", err))
		}
		w.WriteBits(uint64(v), width)
		left -= uint64(width)
	}
}
