package idstamp

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrOutOfRange reports a millisecond value whose UTC rendering falls
// outside years 1 through 9999.
var ErrOutOfRange = errors.New("timestamp outside the representable date range")

// utcLayout renders six fractional digits and a literal trailing Z.
const utcLayout = "2006-01-02T15:04:05.000000Z"

// Timestamp is a decoded idtimestamp in the three forms the CLIs print.
type Timestamp struct {
	Time    time.Time
	Millis  uint64
	Seconds float64
}

// String renders the UTC instant as YYYY-MM-DDTHH:MM:SS.ffffffZ.
func (ts Timestamp) String() string {
	return ts.Time.Format(utcLayout)
}

// FormatUTC expands Unix milliseconds into a Timestamp. Values beyond
// int64 milliseconds or outside years 1-9999 fail with ErrOutOfRange.
func FormatUTC(ms uint64) (Timestamp, error) {
	if ms > math.MaxInt64 {
		return Timestamp{}, fmt.Errorf("%w: %d ms", ErrOutOfRange, ms)
	}
	t := time.UnixMilli(int64(ms)).UTC()
	if y := t.Year(); y < 1 || y > 9999 {
		return Timestamp{}, fmt.Errorf("%w: year %d", ErrOutOfRange, y)
	}
	return Timestamp{
		Time:    t,
		Millis:  ms,
		Seconds: float64(ms) / 1000.0,
	}, nil
}
