package packet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLiteralMatchesWire(t *testing.T) {
	hex, err := EncodeHex(&Literal{Version: 6, Value: 2021})
	require.NoError(t, err)
	assert.Equal(t, "D2FE28", hex)
}

func TestEncodeOperatorsMatchWire(t *testing.T) {
	for _, hex := range []string{"38006F45291200", "EE00D40C823060"} {
		p, err := Decode(hex)
		require.NoError(t, err)
		out, err := EncodeHex(p)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(hex, out), "%s re-encoded as %s", hex, out)
	}
}

func TestEncodeDecodePreservesTree(t *testing.T) {
	for _, hex := range []string{
		"8A004A801A8002F478",
		"620080001611562C8802118E34",
		"C0015000016115A2E0802F182340",
		"A0016C880162017C3686B18A3D4780",
		"9C0141080250320F1802104A08",
	} {
		first, err := Decode(hex)
		require.NoError(t, err)
		out, err := EncodeHex(first)
		require.NoError(t, err)
		second, err := Decode(out)
		require.NoError(t, err)
		require.Equal(t, first, second, hex)
	}
}

func TestEncodeRejectsInvalidTrees(t *testing.T) {
	_, err := Encode(&Literal{Version: 8})
	require.ErrorIs(t, err, ErrInvalidVersion)

	_, err = Encode(&Operator{Op: OpSum})
	require.ErrorIs(t, err, ErrEmptyOperator)

	_, err = Encode(&Operator{Op: Operation(TypeLiteral), Children: lits(1)})
	require.ErrorIs(t, err, ErrInvalidType)

	_, err = Encode(&Operator{Op: OpSum, Mode: LengthMode(2), Children: lits(1)})
	require.ErrorIs(t, err, ErrInvalidMode)

	_, err = Encode(&Operator{Op: OpSum, Mode: LengthCount, Children: lits(make([]uint64, maxCount+1)...)})
	require.ErrorIs(t, err, ErrOverflow)

	_, err = Encode(&Operator{Op: OpSum, Mode: LengthBits, Children: lits(make([]uint64, 3000)...)})
	require.ErrorIs(t, err, ErrOverflow)
}
