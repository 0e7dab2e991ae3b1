package bits

import "fmt"

// MaxBits is the widest single read served by ReadBits.
const MaxBits = 8

// Reader is a sequential, non-seekable cursor over a byte buffer. Bits are
// served most-significant first and a read may straddle a byte boundary.
//
// For the buffer [0xD2, 0xFE] (1101 0010, 1111 1110):
//
//	ReadBits(3) = 0b110
//	ReadBits(3) = 0b100
//	ReadBits(5) = 0b10111
//	ReadWide(5) = 0b11110
//
// A Reader is owned by a single decode call and is not safe for concurrent use.
type Reader struct {
	buf       []byte
	off       int  // index of the byte being consumed
	remaining uint // unconsumed bits left in buf[off]
	cur       byte // buf[off] with the consumed high bits shifted out
	consumed  uint64
}

// NewReader returns a Reader positioned at the first bit of buf.
func NewReader(buf []byte) *Reader {
	r := &Reader{buf: buf, remaining: 8}
	if len(buf) > 0 {
		r.cur = buf[0]
	}
	return r
}

// NewHexReader decodes s and returns a Reader over the result.
func NewHexReader(s string) (*Reader, error) {
	buf, err := DecodeHex(s)
	if err != nil {
		return nil, err
	}
	return NewReader(buf), nil
}

// Remaining returns the number of bits that can still be read.
func (r *Reader) Remaining() uint64 {
	if r.off >= len(r.buf) {
		return 0
	}
	return uint64(r.remaining) + 8*uint64(len(r.buf)-r.off-1)
}

// Consumed returns the number of bits read so far.
func (r *Reader) Consumed() uint64 {
	return r.consumed
}

// ReadBits returns the next n bits, 1 <= n <= MaxBits, right-aligned in a
// byte. It returns ErrExhausted without advancing when fewer than n bits
// remain. Asking for a width outside 1..MaxBits is a programming error.
func (r *Reader) ReadBits(n uint) (uint8, error) {
	if n == 0 || n > MaxBits {
		panic(fmt.Sprintf("bits: ReadBits width %d outside 1..%d", n, MaxBits))
	}
	if r.Remaining() < uint64(n) {
		return 0, ErrExhausted
	}

	var v uint8
	if n <= r.remaining {
		v = r.take(n)
	} else {
		low := n - r.remaining
		v = r.take(r.remaining) << low
		v |= r.take(low)
	}
	r.consumed += uint64(n)
	return v, nil
}

// ReadWide returns the next n bits, 0 <= n <= 64, assembled from ReadBits
// calls of at most MaxBits each with the earliest bits most significant.
func (r *Reader) ReadWide(n uint) (uint64, error) {
	if n > 64 {
		panic(fmt.Sprintf("bits: ReadWide width %d exceeds 64", n))
	}
	if r.Remaining() < uint64(n) {
		return 0, ErrExhausted
	}

	var v uint64
	for left := n; left > 0; {
		width := min(left, MaxBits)
		chunk, err := r.ReadBits(width)
		if err != nil {
			return 0, err
		}
		v = v<<width | uint64(chunk)
		left -= width
	}
	return v, nil
}

// take pulls n <= r.remaining bits off the current byte.
func (r *Reader) take(n uint) uint8 {
	v := r.cur >> (8 - n)
	r.cur <<= n
	r.remaining -= n
	if r.remaining == 0 {
		r.advance()
	}
	return v
}

func (r *Reader) advance() {
	r.off++
	r.remaining = 8
	if r.off < len(r.buf) {
		r.cur = r.buf[r.off]
	} else {
		r.cur = 0
	}
}
