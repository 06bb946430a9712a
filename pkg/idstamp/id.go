package idstamp

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"
)

const (
	maxEpoch = 99        // selector renders as two decimal digits
	maxSeq   = 1<<24 - 1 // trailer is 3 bytes
)

// ID is an idtimestamp: a 1-byte epoch selector plus an 8-byte payload
// laid out big-endian as [5 bytes ms_time][3 bytes sequence].
type ID struct {
	epoch   uint8
	payload [8]byte
}

// New builds an ID for the given Unix millisecond instant and sequence.
// The epoch selector is derived from ms; it fails if the instant needs a
// selector beyond 99 or the sequence exceeds 24 bits.
func New(ms uint64, seq uint32) (ID, error) {
	epoch := ms / EpochSpanMs
	if epoch > maxEpoch {
		return ID{}, fmt.Errorf("%w: %d ms needs epoch %d", ErrOutOfRange, ms, epoch)
	}
	if seq > maxSeq {
		return ID{}, fmt.Errorf("sequence %d exceeds 24 bits", seq)
	}
	var id ID
	id.epoch = uint8(epoch)
	tc := ms - epoch*EpochSpanMs
	id.payload[0] = byte(tc >> 32)
	binary.BigEndian.PutUint32(id.payload[1:5], uint32(tc))
	id.payload[5] = byte(seq >> 16)
	binary.BigEndian.PutUint16(id.payload[6:8], uint16(seq))
	return id, nil
}

// Epoch returns the epoch selector.
func (i ID) Epoch() uint64 { return uint64(i.epoch) }

// Millis returns the Unix millisecond instant the ID encodes.
func (i ID) Millis() uint64 {
	tc := uint64(i.payload[0])<<32 | uint64(binary.BigEndian.Uint32(i.payload[1:5]))
	return tc + uint64(i.epoch)*EpochSpanMs
}

// Time returns the encoded instant in UTC.
func (i ID) Time() time.Time { return time.UnixMilli(int64(i.Millis())).UTC() }

// String returns the 18-char form: the selector as two decimal digits
// followed by the payload in hex. Decode(i.String()) == i.Millis().
func (i ID) String() string {
	return fmt.Sprintf("%02d%s", i.epoch, fmtHex(i.payload[:]))
}

// Short returns the 16-char payload-only form. It decodes back to the
// same instant only under DefaultEpoch.
func (i ID) Short() string { return fmtHex(i.payload[:]) }

// Compare returns -1, 0, 1 ordering IDs by epoch, then payload bytes.
func (i ID) Compare(other ID) int {
	if i.epoch != other.epoch {
		if i.epoch < other.epoch {
			return -1
		}
		return 1
	}
	for idx := 0; idx < len(i.payload); idx++ {
		if i.payload[idx] < other.payload[idx] {
			return -1
		}
		if i.payload[idx] > other.payload[idx] {
			return 1
		}
	}
	return 0
}

// Generator produces monotonically increasing IDs per process.
type Generator struct {
	mu       sync.Mutex
	lastMs   uint64
	sequence uint32
}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator { return &Generator{} }

// NowMs returns current time in milliseconds since the Unix epoch.
var NowMs = func() uint64 { return uint64(time.Now().UnixMilli()) }

// Next returns a new ID. If the clock goes backwards it pins to the last
// seen millisecond and increments the sequence. If the sequence would
// overflow within the same millisecond it waits for the next one.
func (g *Generator) Next() (ID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := NowMs()
	if ms < g.lastMs {
		ms = g.lastMs
	}

	if ms == g.lastMs {
		if g.sequence == maxSeq {
			for {
				ms = NowMs()
				if ms > g.lastMs {
					break
				}
				time.Sleep(time.Millisecond / 8)
			}
			g.sequence = 0
		} else {
			g.sequence++
		}
	} else {
		g.sequence = 0
	}

	g.lastMs = ms
	return New(ms, g.sequence)
}

// fmtHex is a small, allocation-lean hex encoder for fixed-size payloads.
func fmtHex(b []byte) string {
	const hexdigits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = hexdigits[v>>4]
		out[i*2+1] = hexdigits[v&0x0f]
	}
	return string(out)
}
