// Package idstamp encodes and decodes Forestrie idtimestamps.
//
// # Format
//
// An idtimestamp is 8 bytes big-endian: [5 bytes ms_time][3 bytes
// sequence/generator], rendered as 16 hex chars, optionally preceded by a
// 1-byte epoch selector (two decimal digits, 18 chars total) and an
// optional lowercase "0x" prefix. Epochs are aligned with the Unix epoch
// and spaced 2^40 - 1 milliseconds apart; the 16-char short form implies
// epoch 1.
//
// Decoding is a pure function: strip the prefix, validate the length,
// consume the selector if present, and add epoch * (2^40 - 1) to the
// big-endian value of the leading 5 payload bytes.
//
// # Monotonicity
//
// The Generator ensures per-process monotonicity:
//   - If the system clock regresses, it pins to the last seen millisecond
//     and increments the sequence to avoid going backwards.
//   - If the sequence would overflow within a millisecond, it waits for
//     the next millisecond before emitting the next ID.
//
// Usage
//
//	ms, err := idstamp.Decode("0198e5ad5a0100002a")
//	ts, err := idstamp.FormatUTC(ms)
//
//	g := idstamp.NewGenerator()
//	id, err := g.Next()
//	s := id.String() // 18-char hex form
package idstamp
