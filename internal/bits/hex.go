package bits

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHex converts a hex transmission into its byte buffer. Surrounding
// whitespace is trimmed and an odd-length input is padded with a zero nibble.
func DecodeHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if len(s)%2 != 0 {
		s += "0"
	}
	buf, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return buf, nil
}

// EncodeHex renders buf as uppercase hex.
func EncodeHex(buf []byte) string {
	return strings.ToUpper(hex.EncodeToString(buf))
}
