// Command idtimestamp-unixms decodes a single idtimestamp hex string and
// prints its Unix millisecond value. It keeps the argument surface of the
// legacy helper: one positional idtimestamp, optionally followed by a
// decimal epoch override for the 16-char short form.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/forestrie/canopy/pkg/idstamp"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(stderr, "Usage: idtimestamp-unixms <idtimestamp_hex> [epoch]")
		return 1
	}

	epoch := idstamp.DefaultEpoch
	if len(args) == 2 {
		n, err := strconv.ParseUint(args[1], 10, 8)
		if err != nil {
			fmt.Fprintf(stderr, "idtimestamp-unixms: invalid epoch %q\n", args[1])
			return 1
		}
		epoch = n
	}

	ms, err := idstamp.DecodeWithEpoch(args[0], epoch)
	if err != nil {
		fmt.Fprintf(stderr, "idtimestamp-unixms: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, ms)
	return 0
}
