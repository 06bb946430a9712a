package idstamp

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatUTCKnownValues(t *testing.T) {
	cases := []struct {
		ms      uint64
		seconds string
		utc     string
	}{
		{0, "0.000", "1970-01-01T00:00:00.000000Z"},
		{1099511627775, "1099511627.775", "2004-11-03T19:53:47.775000Z"},
		{1099511627780, "1099511627.780", "2004-11-03T19:53:47.780000Z"},
		{2199023255550, "2199023255.550", "2039-09-07T15:47:35.550000Z"},
	}
	for _, c := range cases {
		ts, err := FormatUTC(c.ms)
		if err != nil {
			t.Fatalf("format %d: %v", c.ms, err)
		}
		if ts.Millis != c.ms {
			t.Fatalf("format %d: millis %d", c.ms, ts.Millis)
		}
		if got := fmt.Sprintf("%.3f", ts.Seconds); got != c.seconds {
			t.Fatalf("format %d: seconds %s, want %s", c.ms, got, c.seconds)
		}
		if ts.String() != c.utc {
			t.Fatalf("format %d: utc %s, want %s", c.ms, ts.String(), c.utc)
		}
	}
}

func TestFormatUTCRoundTrip(t *testing.T) {
	for _, id := range []string{
		"0000000000000000",
		"0x98e5ad5a010000ff",
		"020102030405060708",
	} {
		ms, err := Decode(id)
		if err != nil {
			t.Fatalf("decode %q: %v", id, err)
		}
		ts, err := FormatUTC(ms)
		if err != nil {
			t.Fatalf("format %q: %v", id, err)
		}
		if ts.Millis != ms {
			t.Fatalf("round trip %q: %d != %d", id, ts.Millis, ms)
		}
	}
}

func TestFormatUTCEqualInputsEqualOutputs(t *testing.T) {
	a, err := FormatUTC(1099511627775)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	b, err := FormatUTC(1099511627775)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("timestamps differ (-a +b):\n%s", diff)
	}
}

func TestFormatUTCOutOfRange(t *testing.T) {
	// 10000-01-01T00:00:00Z in ms; one ms earlier is the last valid value.
	const year10000 = uint64(253402300800000)
	if _, err := FormatUTC(year10000); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange at year 10000, got %v", err)
	}
	if _, err := FormatUTC(year10000 - 1); err != nil {
		t.Fatalf("unexpected error just below the bound: %v", err)
	}
	if _, err := FormatUTC(math.MaxUint64); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange at MaxUint64, got %v", err)
	}
}
