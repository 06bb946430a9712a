package idstamp

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// EpochSpanMs is the width of one idtimestamp epoch in milliseconds.
	// Epochs are aligned with the Unix epoch but half as long as the
	// 40-bit time component would otherwise allow.
	EpochSpanMs uint64 = 1<<40 - 1

	// DefaultEpoch is assumed for the 16-char short form, which carries
	// no epoch selector of its own.
	DefaultEpoch uint64 = 1

	payloadHexLen = 16
	trailerLen    = 3 // sequence/generator bytes at the tail of the payload
)

// Validation failures. Callers distinguish them with errors.Is; the
// wrapped message carries the offending value.
var (
	ErrInvalidLength        = errors.New("idtimestamp must be 16 or 18 hex chars")
	ErrInvalidPayloadLength = errors.New("idtimestamp payload must be 16 hex chars after epoch strip")
	ErrMalformedHex         = errors.New("idtimestamp payload is not valid hex")
	ErrEpochSelector        = errors.New("idtimestamp epoch selector is not two decimal digits")
	ErrPayloadTooShort      = errors.New("idtimestamp payload too short to strip sequence/generator bytes")
)

// Decode converts an idtimestamp hex string to Unix milliseconds,
// assuming DefaultEpoch for the 16-char short form.
func Decode(id string) (uint64, error) {
	return DecodeWithEpoch(id, DefaultEpoch)
}

// DecodeWithEpoch converts an idtimestamp hex string to Unix milliseconds.
// defaultEpoch applies only to the 16-char short form; the 18-char form
// carries its own selector.
//
// Only a lowercase "0x" prefix is stripped; "0X" is rejected downstream,
// matching the legacy helpers.
//
// The epoch selector is parsed as two decimal digits, not hex. Selectors
// containing a-f were never issued, and existing callers depend on the
// decimal reading, so it is preserved here. See TestDecodeEpochSelectorIsDecimal.
func DecodeWithEpoch(id string, defaultEpoch uint64) (uint64, error) {
	id = strings.TrimPrefix(id, "0x")

	if len(id) != payloadHexLen && len(id) != payloadHexLen+2 {
		return 0, fmt.Errorf("%w, got %d", ErrInvalidLength, len(id))
	}

	epoch := defaultEpoch
	if len(id) == payloadHexLen+2 {
		n, err := strconv.ParseUint(id[:2], 10, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrEpochSelector, id[:2])
		}
		epoch = n
		id = id[2:]
	}

	if len(id) != payloadHexLen {
		return 0, fmt.Errorf("%w, got %d", ErrInvalidPayloadLength, len(id))
	}

	raw, err := hex.DecodeString(id)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedHex, id)
	}

	// Unreachable while the payload is fixed at 8 bytes; guards any
	// future change to the payload length.
	if len(raw) < trailerLen {
		return 0, fmt.Errorf("%w: %d bytes", ErrPayloadTooShort, len(raw))
	}

	var ms uint64
	for _, b := range raw[:len(raw)-trailerLen] {
		ms = ms<<8 | uint64(b)
	}
	return ms + epoch*EpochSpanMs, nil
}
