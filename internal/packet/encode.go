package packet

import (
	"fmt"

	"github.com/danmuck/bitsctl/internal/bits"
)

// Encode writes the wire form of p. The tree must satisfy the same
// constraints Decode enforces.
func Encode(p Packet) (*bits.Writer, error) {
	w := bits.NewWriter()
	if err := encodeInto(w, p); err != nil {
		return nil, err
	}
	return w, nil
}

// EncodeHex returns the wire form of p as uppercase hex.
func EncodeHex(p Packet) (string, error) {
	w, err := Encode(p)
	if err != nil {
		return "", err
	}
	return w.Hex(), nil
}

func encodeInto(w *bits.Writer, p Packet) error {
	switch p := p.(type) {
	case *Literal:
		if p.Version > maxVersion {
			return fmt.Errorf("%w: %d", ErrInvalidVersion, p.Version)
		}
		w.WriteBits(uint64(p.Version), versionWidth)
		w.WriteBits(uint64(TypeLiteral), typeWidth)
		nibbles := 1
		for v := p.Value >> 4; v != 0; v >>= 4 {
			nibbles++
		}
		for i := nibbles - 1; i >= 0; i-- {
			group := (p.Value >> (4 * uint(i))) & groupNibbleMask
			if i > 0 {
				group |= groupMore
			}
			w.WriteBits(group, groupWidth)
		}
		return nil

	case *Operator:
		if p.Version > maxVersion {
			return fmt.Errorf("%w: %d", ErrInvalidVersion, p.Version)
		}
		if _, err := OperationFromType(uint8(p.Op)); err != nil {
			return err
		}
		if len(p.Children) == 0 {
			return ErrEmptyOperator
		}
		w.WriteBits(uint64(p.Version), versionWidth)
		w.WriteBits(uint64(p.Op), typeWidth)
		w.WriteBits(uint64(p.Mode), modeWidth)

		switch p.Mode {
		case LengthBits:
			sub := bits.NewWriter()
			for _, child := range p.Children {
				if err := encodeInto(sub, child); err != nil {
					return err
				}
			}
			if sub.Len() > maxBitLength {
				return fmt.Errorf("%w: %d sub-packet bits exceed 15-bit length field", ErrOverflow, sub.Len())
			}
			w.WriteBits(sub.Len(), bitLengthWidth)
			w.Append(sub)
			return nil
		case LengthCount:
			if len(p.Children) > maxCount {
				return fmt.Errorf("%w: %d sub-packets exceed 11-bit count field", ErrOverflow, len(p.Children))
			}
			w.WriteBits(uint64(len(p.Children)), countWidth)
			for _, child := range p.Children {
				if err := encodeInto(w, child); err != nil {
					return err
				}
			}
			return nil
		default:
			return fmt.Errorf("%w: %d", ErrInvalidMode, p.Mode)
		}

	default:
		return fmt.Errorf("packet: cannot encode %T", p)
	}
}
