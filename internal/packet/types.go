package packet

import "fmt"

// Wire field widths.
const (
	versionWidth    = 3
	typeWidth       = 3
	headerWidth     = versionWidth + typeWidth
	modeWidth       = 1
	groupWidth      = 5
	bitLengthWidth  = 15
	countWidth      = 11
	maxVersion      = 1<<versionWidth - 1
	maxBitLength    = 1<<bitLengthWidth - 1
	maxCount        = 1<<countWidth - 1
	groupMore       = 0x10
	groupNibbleMask = 0x0F
)

// TypeLiteral is the type code reserved for literal packets.
const TypeLiteral uint8 = 4

// Operation is the operator kind selected by a packet's type code. The
// numeric value is the wire code.
type Operation uint8

const (
	OpSum         Operation = 0
	OpProduct     Operation = 1
	OpMinimum     Operation = 2
	OpMaximum     Operation = 3
	OpGreaterThan Operation = 5
	OpLessThan    Operation = 6
	OpEqualTo     Operation = 7
)

// OperationFromType maps a 3-bit type code to its operation. Code 4 belongs
// to literals and, like any code outside the table, is rejected.
func OperationFromType(code uint8) (Operation, error) {
	for _, op := range operations {
		if uint8(op) == code {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidType, code)
}

func (o Operation) String() string {
	switch o {
	case OpSum:
		return "sum"
	case OpProduct:
		return "product"
	case OpMinimum:
		return "minimum"
	case OpMaximum:
		return "maximum"
	case OpGreaterThan:
		return "greater_than"
	case OpLessThan:
		return "less_than"
	case OpEqualTo:
		return "equal_to"
	default:
		return fmt.Sprintf("operation(%d)", uint8(o))
	}
}

// Comparison reports whether o yields 1/0 from exactly two operands.
func (o Operation) Comparison() bool {
	return o == OpGreaterThan || o == OpLessThan || o == OpEqualTo
}

// LengthMode is the operator length-type indicator.
type LengthMode uint8

const (
	LengthBits  LengthMode = 0 // 15-bit total sub-packet bit length
	LengthCount LengthMode = 1 // 11-bit sub-packet count
)

func (m LengthMode) String() string {
	switch m {
	case LengthBits:
		return "bits"
	case LengthCount:
		return "count"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Packet is one node of a decoded tree: *Literal or *Operator.
type Packet interface {
	PacketVersion() uint8
	packet()
}

// Literal carries a single integer value.
type Literal struct {
	Version uint8
	Value   uint64
}

// Operator applies Op to its sub-packets. Mode records the length encoding
// seen on the wire so a decoded tree re-encodes to the same bits.
type Operator struct {
	Version  uint8
	Op       Operation
	Mode     LengthMode
	Children []Packet
}

func (l *Literal) PacketVersion() uint8  { return l.Version }
func (o *Operator) PacketVersion() uint8 { return o.Version }

func (*Literal) packet()  {}
func (*Operator) packet() {}

var operations = []Operation{OpSum, OpProduct, OpMinimum, OpMaximum, OpGreaterThan, OpLessThan, OpEqualTo}

// ParseOperation is the inverse of Operation.String.
func ParseOperation(name string) (Operation, error) {
	for _, op := range operations {
		if op.String() == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidType, name)
}

// ParseLengthMode is the inverse of LengthMode.String.
func ParseLengthMode(name string) (LengthMode, error) {
	switch name {
	case "bits":
		return LengthBits, nil
	case "count":
		return LengthCount, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, name)
	}
}
