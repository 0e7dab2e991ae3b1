package packet

import (
	"fmt"
	"math/bits"
	"slices"
)

// VersionSum returns the sum of every version field in the tree rooted at p.
func VersionSum(p Packet) uint64 {
	switch p := p.(type) {
	case *Literal:
		return uint64(p.Version)
	case *Operator:
		sum := uint64(p.Version)
		for _, child := range p.Children {
			sum += VersionSum(child)
		}
		return sum
	default:
		return 0
	}
}

// Evaluate computes the expression value of the tree rooted at p. Sums and
// products that leave the uint64 range fail with ErrOverflow rather than wrap.
func Evaluate(p Packet) (uint64, error) {
	switch p := p.(type) {
	case *Literal:
		return p.Value, nil
	case *Operator:
		return evalOperator(p)
	default:
		return 0, fmt.Errorf("packet: cannot evaluate %T", p)
	}
}

func evalOperator(p *Operator) (uint64, error) {
	if len(p.Children) == 0 {
		return 0, fmt.Errorf("%s: %w", p.Op, ErrEmptyOperator)
	}
	if p.Op.Comparison() && len(p.Children) != 2 {
		return 0, fmt.Errorf("%s with %d operands: %w", p.Op, len(p.Children), ErrArity)
	}

	values := make([]uint64, len(p.Children))
	for i, child := range p.Children {
		v, err := Evaluate(child)
		if err != nil {
			return 0, err
		}
		values[i] = v
	}

	switch p.Op {
	case OpSum:
		var acc uint64
		for _, v := range values {
			sum, carry := bits.Add64(acc, v, 0)
			if carry != 0 {
				return 0, fmt.Errorf("sum: %w", ErrOverflow)
			}
			acc = sum
		}
		return acc, nil
	case OpProduct:
		acc := uint64(1)
		for _, v := range values {
			hi, lo := bits.Mul64(acc, v)
			if hi != 0 {
				return 0, fmt.Errorf("product: %w", ErrOverflow)
			}
			acc = lo
		}
		return acc, nil
	case OpMinimum:
		return slices.Min(values), nil
	case OpMaximum:
		return slices.Max(values), nil
	case OpGreaterThan:
		return boolValue(values[0] > values[1]), nil
	case OpLessThan:
		return boolValue(values[0] < values[1]), nil
	case OpEqualTo:
		return boolValue(values[0] == values[1]), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidType, uint8(p.Op))
	}
}

func boolValue(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
