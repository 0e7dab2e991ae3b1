package packet

import (
	"fmt"

	"github.com/danmuck/bitsctl/internal/bits"
)

// DefaultMaxDepth bounds operator nesting accepted by NewDecoder.
const DefaultMaxDepth = 512

// Decoder turns a transmission into a packet tree. The zero value decodes
// without a nesting limit. A Decoder holds no per-call state and may be
// shared between goroutines.
type Decoder struct {
	// MaxDepth is the deepest operator nesting accepted; 0 disables the check.
	MaxDepth int
}

func NewDecoder() Decoder {
	return Decoder{MaxDepth: DefaultMaxDepth}
}

// Decode parses the outermost packet of a hex transmission with the default
// decoder.
func Decode(hex string) (Packet, error) {
	return NewDecoder().Decode(hex)
}

// DecodeBytes parses the outermost packet of buf with the default decoder.
func DecodeBytes(buf []byte) (Packet, error) {
	return NewDecoder().DecodeBytes(buf)
}

// Decode parses the outermost packet of a hex transmission. Bits after the
// packet's end are padding and are not inspected.
func (d Decoder) Decode(hex string) (Packet, error) {
	r, err := bits.NewHexReader(hex)
	if err != nil {
		return nil, err
	}
	p, _, err := d.Read(r)
	return p, err
}

// DecodeBytes parses the outermost packet of buf.
func (d Decoder) DecodeBytes(buf []byte) (Packet, error) {
	p, _, err := d.Read(bits.NewReader(buf))
	return p, err
}

// Read parses exactly one packet from r and returns it together with the
// number of bits it occupied.
func (d Decoder) Read(r *bits.Reader) (Packet, uint64, error) {
	p := parser{r: r, maxDepth: d.MaxDepth}
	return p.packet(0)
}

type parser struct {
	r        *bits.Reader
	maxDepth int
}

// fail tags err with the bit offset it was detected at.
func (p *parser) fail(err error) error {
	return fmt.Errorf("packet: at bit %d: %w", p.r.Consumed(), err)
}

func (p *parser) packet(depth int) (Packet, uint64, error) {
	if p.maxDepth > 0 && depth > p.maxDepth {
		return nil, 0, p.fail(fmt.Errorf("%w: limit %d", ErrTooDeep, p.maxDepth))
	}
	version, err := p.r.ReadBits(versionWidth)
	if err != nil {
		return nil, 0, p.fail(err)
	}
	typeID, err := p.r.ReadBits(typeWidth)
	if err != nil {
		return nil, 0, p.fail(err)
	}

	if typeID == TypeLiteral {
		lit, n, err := p.literal(version)
		if err != nil {
			return nil, 0, err
		}
		return lit, headerWidth + n, nil
	}

	op, err := OperationFromType(typeID)
	if err != nil {
		return nil, 0, p.fail(err)
	}
	opr, n, err := p.operator(version, op, depth)
	if err != nil {
		return nil, 0, err
	}
	return opr, headerWidth + n, nil
}

func (p *parser) literal(version uint8) (*Literal, uint64, error) {
	var (
		value  uint64
		groups uint64
	)
	for {
		group, err := p.r.ReadBits(groupWidth)
		if err != nil {
			return nil, 0, p.fail(err)
		}
		groups++
		if value>>60 != 0 {
			return nil, 0, p.fail(fmt.Errorf("%w: literal has more than 16 significant nibbles", ErrOverflow))
		}
		value = value<<4 | uint64(group&groupNibbleMask)
		if group&groupMore == 0 {
			break
		}
	}
	return &Literal{Version: version, Value: value}, groups * groupWidth, nil
}

func (p *parser) operator(version uint8, op Operation, depth int) (*Operator, uint64, error) {
	mode, err := p.r.ReadBits(modeWidth)
	if err != nil {
		return nil, 0, p.fail(err)
	}
	out := &Operator{Version: version, Op: op, Mode: LengthMode(mode)}

	switch out.Mode {
	case LengthBits:
		total, err := p.r.ReadWide(bitLengthWidth)
		if err != nil {
			return nil, 0, p.fail(err)
		}
		if total == 0 {
			return nil, 0, p.fail(ErrEmptyOperator)
		}
		var used uint64
		for used < total {
			child, n, err := p.packet(depth + 1)
			if err != nil {
				return nil, 0, err
			}
			used += n
			out.Children = append(out.Children, child)
		}
		if used != total {
			return nil, 0, p.fail(fmt.Errorf("%w: declared %d bits, read %d", ErrLengthMismatch, total, used))
		}
		return out, modeWidth + bitLengthWidth + total, nil

	default:
		count, err := p.r.ReadWide(countWidth)
		if err != nil {
			return nil, 0, p.fail(err)
		}
		if count == 0 {
			return nil, 0, p.fail(ErrEmptyOperator)
		}
		out.Children = make([]Packet, 0, count)
		var used uint64
		for i := uint64(0); i < count; i++ {
			child, n, err := p.packet(depth + 1)
			if err != nil {
				return nil, 0, err
			}
			used += n
			out.Children = append(out.Children, child)
		}
		return out, modeWidth + countWidth + used, nil
	}
}
