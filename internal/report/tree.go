package report

import (
	"errors"
	"fmt"

	"github.com/danmuck/bitsctl/internal/packet"
)

var ErrMalformedTree = errors.New("report: malformed tree")

const (
	kindLiteral  = "literal"
	kindOperator = "operator"
)

// Tree converts a packet tree into its serialisable mirror.
func Tree(p packet.Packet) *Node {
	switch p := p.(type) {
	case *packet.Literal:
		v := p.Value
		return &Node{Kind: kindLiteral, Version: p.Version, Value: &v}
	case *packet.Operator:
		n := &Node{
			Kind:     kindOperator,
			Version:  p.Version,
			Op:       p.Op.String(),
			Mode:     p.Mode.String(),
			Children: make([]Node, 0, len(p.Children)),
		}
		for _, child := range p.Children {
			if c := Tree(child); c != nil {
				n.Children = append(n.Children, *c)
			}
		}
		return n
	default:
		return nil
	}
}

// Packet rebuilds the packet tree described by n.
func Packet(n *Node) (packet.Packet, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: missing node", ErrMalformedTree)
	}
	switch n.Kind {
	case kindLiteral:
		if n.Value == nil {
			return nil, fmt.Errorf("%w: literal without value", ErrMalformedTree)
		}
		return &packet.Literal{Version: n.Version, Value: *n.Value}, nil
	case kindOperator:
		op, err := packet.ParseOperation(n.Op)
		if err != nil {
			return nil, err
		}
		mode, err := packet.ParseLengthMode(n.Mode)
		if err != nil {
			return nil, err
		}
		out := &packet.Operator{Version: n.Version, Op: op, Mode: mode, Children: make([]packet.Packet, 0, len(n.Children))}
		for i := range n.Children {
			child, err := Packet(&n.Children[i])
			if err != nil {
				return nil, err
			}
			out.Children = append(out.Children, child)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrMalformedTree, n.Kind)
	}
}
