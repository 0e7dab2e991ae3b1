// Package solver runs one transmission through decode and both evaluations.
// It is shared by the CLI and the HTTP server.
package solver

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danmuck/bitsctl/internal/config"
	"github.com/danmuck/bitsctl/internal/observability"
	"github.com/danmuck/bitsctl/internal/packet"
	"github.com/danmuck/bitsctl/internal/report"
	"github.com/rs/zerolog"
)

var ErrInputTooLarge = errors.New("solver: input too large")

type Solver struct {
	decoder     packet.Decoder
	maxInputLen int
	logger      zerolog.Logger
}

func New(cfg config.Config, logger zerolog.Logger) *Solver {
	return &Solver{
		decoder:     cfg.Decoder(),
		maxInputLen: cfg.MaxInputLen,
		logger:      logger.With().Str("component", "solver").Logger(),
	}
}

// Solve decodes input and computes its version sum and value. Surrounding
// whitespace is ignored.
func (s *Solver) Solve(input string) (report.Result, error) {
	start := time.Now()
	hex := strings.TrimSpace(input)

	if s.maxInputLen > 0 && len(hex) > s.maxInputLen {
		observability.RecordDecode(observability.DecodeTooBig, 0, time.Since(start))
		s.logger.Warn().Int("len", len(hex)).Int("limit", s.maxInputLen).Msg("input rejected")
		return report.Result{}, fmt.Errorf("%w: %d hex characters, limit %d", ErrInputTooLarge, len(hex), s.maxInputLen)
	}

	res, err := s.solve(hex)
	if err != nil {
		observability.RecordDecode(observability.DecodeInvalid, 0, time.Since(start))
		s.logger.Debug().Err(err).Int("len", len(hex)).Msg("decode failed")
		return report.Result{}, err
	}

	elapsed := time.Since(start)
	observability.RecordDecode(observability.DecodeOK, len(hex)*4, elapsed)
	s.logger.Debug().
		Int("len", len(hex)).
		Uint64("version_sum", res.VersionSum).
		Uint64("value", res.Value).
		Dur("elapsed", elapsed).
		Msg("decoded")
	return res, nil
}

func (s *Solver) solve(hex string) (report.Result, error) {
	p, err := s.decoder.Decode(hex)
	if err != nil {
		return report.Result{}, fmt.Errorf("decode: %w", err)
	}
	value, err := packet.Evaluate(p)
	if err != nil {
		return report.Result{}, fmt.Errorf("evaluate: %w", err)
	}
	return report.Result{
		Input:      hex,
		VersionSum: packet.VersionSum(p),
		Value:      value,
		Tree:       report.Tree(p),
	}, nil
}
