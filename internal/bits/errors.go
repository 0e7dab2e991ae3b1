package bits

import "errors"

var (
	ErrExhausted  = errors.New("bits: no data")
	ErrInvalidHex = errors.New("bits: invalid hex")
)
