// Package bits owns bit-level access to hex-encoded transmissions.
//
// Ownership boundary:
// - hex text to byte buffer conversion
// - MSB-first fixed-width reads (Reader)
// - MSB-first fixed-width writes (Writer)
//
// bits has no knowledge of packet semantics.
package bits
