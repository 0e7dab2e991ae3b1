package solver

import (
	"strings"
	"testing"

	"github.com/danmuck/bitsctl/internal/bits"
	"github.com/danmuck/bitsctl/internal/config"
	"github.com/danmuck/bitsctl/internal/packet"
	"github.com/danmuck/bitsctl/internal/testutil/testlog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSolver(t *testing.T, mutate func(*config.Config)) *Solver {
	t.Helper()
	testlog.Start(t)
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	return New(cfg, log.Logger)
}

func TestSolveTrimsAndEvaluates(t *testing.T) {
	s := newSolver(t, nil)
	res, err := s.Solve("  9C0141080250320F1802104A08\n")
	require.NoError(t, err)
	assert.Equal(t, "9C0141080250320F1802104A08", res.Input)
	assert.Equal(t, uint64(1), res.Value)
	assert.Equal(t, uint64(20), res.VersionSum)
	require.NotNil(t, res.Tree)
	assert.Equal(t, "equal_to", res.Tree.Op)
}

func TestSolveRejectsOversizedInput(t *testing.T) {
	s := newSolver(t, func(c *config.Config) { c.MaxInputLen = 8 })
	_, err := s.Solve("A0016C880162017C3686B18A3D4780")
	require.ErrorIs(t, err, ErrInputTooLarge)
}

func TestSolvePropagatesDecodeErrors(t *testing.T) {
	s := newSolver(t, nil)

	_, err := s.Solve("38006F45")
	require.ErrorIs(t, err, packet.ErrExhausted)

	_, err = s.Solve("zz")
	require.ErrorIs(t, err, bits.ErrInvalidHex)
}

func TestSolveHonoursMaxDepth(t *testing.T) {
	// sum(sum(sum(literal 3)))
	var p packet.Packet = &packet.Literal{Value: 3}
	for i := 0; i < 3; i++ {
		p = &packet.Operator{Op: packet.OpSum, Mode: packet.LengthCount, Children: []packet.Packet{p}}
	}
	hex, err := packet.EncodeHex(p)
	require.NoError(t, err)

	_, err = newSolver(t, func(c *config.Config) { c.MaxDepth = 2 }).Solve(hex)
	require.ErrorIs(t, err, packet.ErrTooDeep)

	res, err := newSolver(t, nil).Solve(strings.ToLower(hex))
	require.NoError(t, err)
	assert.Equal(t, uint64(3), res.Value)
}

func TestSolveReportsArity(t *testing.T) {
	p := &packet.Operator{Op: packet.OpGreaterThan, Mode: packet.LengthCount, Children: []packet.Packet{
		&packet.Literal{Value: 1}, &packet.Literal{Value: 2}, &packet.Literal{Value: 3},
	}}
	hex, err := packet.EncodeHex(p)
	require.NoError(t, err)

	_, err = newSolver(t, nil).Solve(hex)
	require.ErrorIs(t, err, packet.ErrArity)
}
