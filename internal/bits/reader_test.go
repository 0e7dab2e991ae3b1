package bits

import (
	"bytes"
	"errors"
	"testing"
)

func TestReadBitsWithinAndAcrossBytes(t *testing.T) {
	r := NewReader([]byte{0xD2, 0xFE, 0x28})

	want := []struct {
		n uint
		v uint8
	}{
		{3, 0b110},
		{3, 0b100},
		{5, 0b10111},
		{5, 0b11110},
		{5, 0b00101},
	}
	for i, w := range want {
		got, err := r.ReadBits(w.n)
		if err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if got != w.v {
			t.Fatalf("read %d: got %05b want %05b", i, got, w.v)
		}
	}
	if r.Consumed() != 21 {
		t.Fatalf("expected 21 bits consumed, got %d", r.Consumed())
	}
	if r.Remaining() != 3 {
		t.Fatalf("expected 3 bits remaining, got %d", r.Remaining())
	}
}

func TestReadBitsFullBytes(t *testing.T) {
	r := NewReader([]byte{0xAB, 0xCD})
	for _, want := range []uint8{0xAB, 0xCD} {
		got, err := r.ReadBits(8)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if got != want {
			t.Fatalf("got %#x want %#x", got, want)
		}
	}
	if _, err := r.ReadBits(1); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}

func TestReadBitsExhaustedDoesNotAdvance(t *testing.T) {
	r := NewReader([]byte{0xF0})
	if _, err := r.ReadBits(6); err != nil {
		t.Fatalf("read: %v", err)
	}
	if _, err := r.ReadBits(3); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	got, err := r.ReadBits(2)
	if err != nil {
		t.Fatalf("read after failure: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected trailing zero bits, got %b", got)
	}
}

func TestReadBitsEmptyBuffer(t *testing.T) {
	r := NewReader(nil)
	if r.Remaining() != 0 {
		t.Fatalf("expected no bits, got %d", r.Remaining())
	}
	if _, err := r.ReadBits(1); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}

func TestReadBitsRejectsWideRequest(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for 9-bit read")
		}
	}()
	_, _ = NewReader([]byte{0, 0}).ReadBits(9)
}

func TestReadWideFields(t *testing.T) {
	// 001 110 0 000000000011011 ...
	r, err := NewHexReader("38006F45291200")
	if err != nil {
		t.Fatalf("hex reader: %v", err)
	}
	version, _ := r.ReadBits(3)
	typeID, _ := r.ReadBits(3)
	mode, _ := r.ReadBits(1)
	length, err := r.ReadWide(15)
	if err != nil {
		t.Fatalf("read wide: %v", err)
	}
	if version != 1 || typeID != 6 || mode != 0 || length != 27 {
		t.Fatalf("unexpected header: v=%d t=%d mode=%d len=%d", version, typeID, mode, length)
	}
}

func TestReadWide64(t *testing.T) {
	r := NewReader([]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF})
	got, err := r.ReadWide(64)
	if err != nil {
		t.Fatalf("read wide: %v", err)
	}
	if got != 0x0123456789ABCDEF {
		t.Fatalf("got %#x", got)
	}
	if _, err := r.ReadWide(1); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}

func TestReadWideZeroWidth(t *testing.T) {
	r := NewReader([]byte{0xFF})
	got, err := r.ReadWide(0)
	if err != nil || got != 0 {
		t.Fatalf("expected zero read, got %d err=%v", got, err)
	}
	if r.Consumed() != 0 {
		t.Fatalf("zero-width read advanced cursor")
	}
}

func TestReadsConcatenateToBuffer(t *testing.T) {
	src := []byte{0x8A, 0x00, 0x4A, 0x80, 0x1A, 0x80, 0x02, 0xF4, 0x78}
	widths := []uint{3, 8, 1, 7, 5, 2, 8, 4, 6, 3, 8, 7, 1, 5, 4}
	var total uint
	for _, w := range widths {
		total += w
	}
	if total != uint(len(src))*8 {
		t.Fatalf("widths cover %d bits, buffer has %d", total, len(src)*8)
	}

	r := NewReader(src)
	w := NewWriter()
	for _, n := range widths {
		v, err := r.ReadBits(n)
		if err != nil {
			t.Fatalf("read %d: %v", n, err)
		}
		w.WriteBits(uint64(v), n)
	}
	if !bytes.Equal(w.Bytes(), src) {
		t.Fatalf("concatenated reads %X != source %X", w.Bytes(), src)
	}
	if r.Remaining() != 0 {
		t.Fatalf("expected buffer exhausted, %d bits left", r.Remaining())
	}
}
