// Command closest generates (or loads) a point set and prints the distance
// of its closest pair.
//
// Usage:
//
//	closest [-r] [-p] [-t threshold] [-type k] [-test] [-rounds r] npoints
//	closest [-p] [-t threshold] [-test] -in points.txt[.zst|.lz4]
//
// Flags:
//
//	-r         seed from the clock instead of the fixed default stream (not with -seed)
//	-seed s    explicit seed (0 = default stream)
//	-p         print the point set to stderr
//	-t n       subproblems of at most n points are brute-forced (default 0)
//	-type k    distribution, by number (0..10) or name (see pointgen.Kind)
//	-test      check each result against the brute-force scan
//	-rounds r  with -test: number of sets, cycling through distributions
//	-workers w with -test: rounds checked concurrently
//	-in f      read points from f instead of generating them
//	-out f     also write the generated points to f
//	-log-level debug|info|warn|error, -log-json
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "closest:", err)
		os.Exit(1)
	}
}
