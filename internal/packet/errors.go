package packet

import (
	"errors"

	"github.com/danmuck/bitsctl/internal/bits"
)

var (
	ErrExhausted      = bits.ErrExhausted
	ErrInvalidType    = errors.New("packet: invalid type code")
	ErrInvalidMode    = errors.New("packet: invalid length mode")
	ErrInvalidVersion = errors.New("packet: invalid version")
	ErrLengthMismatch = errors.New("packet: sub-packets overrun declared length")
	ErrEmptyOperator  = errors.New("packet: operator has no sub-packets")
	ErrArity          = errors.New("packet: comparison requires exactly two sub-packets")
	ErrOverflow       = errors.New("packet: value overflows 64 bits")
	ErrTooDeep        = errors.New("packet: nesting too deep")
)
