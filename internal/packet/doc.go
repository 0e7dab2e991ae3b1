// Package packet owns the BITS packet model and its wire contract.
//
// Ownership boundary:
// - packet tree types (Literal, Operator)
// - recursive-descent decoding over a bits.Reader
// - encoding back to the wire form
// - version-sum and expression evaluation
//
// Wire layout of every packet:
//
//	VVV TTT payload
//
// TTT == 4 is a literal: 5-bit groups (continuation flag + nibble), most
// significant nibble first. Any other TTT is an operator: a 1-bit length
// mode followed by either a 15-bit sub-packet bit length (mode 0) or an
// 11-bit sub-packet count (mode 1), then the sub-packets.
//
// packet has no knowledge of byte mechanics beyond the bits.Reader contract.
package packet
