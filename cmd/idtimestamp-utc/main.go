// Command idtimestamp-utc decodes a single idtimestamp hex string and
// prints its Unix millisecond, Unix second, and UTC date-time renderings.
//
// Exit policy matches the legacy helper exactly: conversion failures
// report on stdout and still exit 0, so pipelines that tail logs through
// this tool keep running on the occasional bad id. Only a missing
// argument exits non-zero. The `canopy utc` subcommand implements the
// stricter behavior.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/forestrie/canopy/pkg/idstamp"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(stderr, "Usage: idtimestamp-utc <idtimestamp_hex>")
		return 1
	}

	id := args[0]
	ts, err := convert(id)
	if err != nil {
		fmt.Fprintf(stdout, "Failed to convert idtimestamp '%s': %v\n", id, err)
		return 0
	}

	fmt.Fprintf(stdout, "Last idtimestamp as Unix ms: %d\n", ts.Millis)
	fmt.Fprintf(stdout, "Last idtimestamp as Unix seconds: %.3f\n", ts.Seconds)
	fmt.Fprintf(stdout, "Last idtimestamp as UTC: %s\n", ts)
	return 0
}

func convert(id string) (idstamp.Timestamp, error) {
	ms, err := idstamp.Decode(id)
	if err != nil {
		return idstamp.Timestamp{}, err
	}
	return idstamp.FormatUTC(ms)
}
