package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/planar/closest"
	"github.com/katalvlaran/planar/pointgen"
	"github.com/katalvlaran/planar/pointio"
)

var (
	errUsage    = errors.New("usage: closest [-r] [-p] [-t threshold] [-type k] [-test] npoints | -in file")
	errNoPair   = errors.New("fewer than two points: no closest pair")
	errMismatch = errors.New("divide-and-conquer result differs from brute force")
)

// options is the parsed command line.
type options struct {
	n         int
	seed      int64
	threshold int
	kind      pointgen.Kind
	print     bool
	test      bool
	rounds    int
	workers   int
	in        string
	out       string
	logLevel  slog.Level
	logJSON   bool
}

// parseArgs parses args into options. Flag errors (including -h, reported
// as flag.ErrHelp) are returned after the flag package printed them.
func parseArgs(args []string, stderr io.Writer) (options, error) {
	var (
		o         options
		randomize bool
		kind      string
		level     string
	)
	fs := flag.NewFlagSet("closest", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&randomize, "r", false, "seed from the clock")
	fs.Int64Var(&o.seed, "seed", 0, "seed for point generation (0 = default stream)")
	fs.BoolVar(&o.print, "p", false, "print the point set to stderr")
	fs.IntVar(&o.threshold, "t", closest.DefaultThreshold, "brute-force subproblems of at most this many points")
	fs.StringVar(&kind, "type", "uniform", "distribution: number 0..10 or name")
	fs.BoolVar(&o.test, "test", false, "verify against the brute-force scan")
	fs.IntVar(&o.rounds, "rounds", pointgen.NumKinds, "with -test: number of generated sets")
	fs.IntVar(&o.workers, "workers", runtime.GOMAXPROCS(0), "with -test: concurrent rounds")
	fs.StringVar(&o.in, "in", "", "read points from file (.zst/.lz4 decompressed)")
	fs.StringVar(&o.out, "out", "", "write generated points to file (.zst/.lz4 compressed)")
	fs.StringVar(&level, "log-level", "warn", "debug, info, warn or error")
	fs.BoolVar(&o.logJSON, "log-json", false, "log as JSON")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	if o.threshold < 0 {
		return o, fmt.Errorf("-t %d: %w", o.threshold, closest.ErrBadThreshold)
	}
	k, err := pointgen.ParseKind(kind)
	if err != nil {
		return o, err
	}
	o.kind = k
	if err = o.logLevel.UnmarshalText([]byte(level)); err != nil {
		return o, fmt.Errorf("-log-level: %w", err)
	}
	if randomize {
		if flagSet(fs, "seed") {
			return o, fmt.Errorf("-r with -seed: %w", errUsage)
		}
		o.seed = time.Now().UnixNano()
	}
	if o.workers < 1 {
		o.workers = 1
	}

	if o.in != "" {
		if fs.NArg() != 0 {
			return o, errUsage
		}
		return o, nil
	}
	if fs.NArg() != 1 {
		return o, errUsage
	}
	if o.n, err = strconv.Atoi(fs.Arg(0)); err != nil || o.n < 0 {
		return o, fmt.Errorf("npoints %q: %w", fs.Arg(0), errUsage)
	}
	if o.test && o.rounds < 1 {
		return o, fmt.Errorf("-rounds %d: %w", o.rounds, errUsage)
	}
	if o.test && o.out != "" {
		return o, fmt.Errorf("-out with generated -test rounds: %w", errUsage)
	}

	return o, nil
}

// run is main without the process exit, so tests can drive it.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	log := NewLogger(stderr, o.logLevel, o.logJSON)

	if o.test && o.in == "" {
		return verifyRounds(ctx, o, log, stdout, stderr)
	}

	var pts []closest.Point
	if o.in != "" {
		if pts, err = pointio.ReadFile(o.in); err != nil {
			return err
		}
		log.InfoContext(ctx, "points loaded", "path", o.in, "points", len(pts))
	} else {
		if pts, err = generatePoints(ctx, log, o.kind, o.n, o.seed); err != nil {
			return err
		}
		if o.out != "" {
			if err = pointio.WriteFile(o.out, pts); err != nil {
				return err
			}
		}
	}
	if o.print {
		if err = pointio.Write(stderr, pts); err != nil {
			return err
		}
	}

	res, err := solve(ctx, log, pts, o.threshold)
	if err != nil {
		return err
	}
	if !res.Found {
		return errNoPair
	}
	if !o.test {
		_, err = fmt.Fprintln(stdout, formatDistance(res.Distance()))
		return err
	}

	brute, err := verify(ctx, log, pts, res)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, formatDistance(res.Distance()), formatDistance(brute))

	return err
}

// roundResult is what one verification round hands back for ordered printing.
type roundResult struct {
	fast, brute float64
	points      []closest.Point
}

// verifyRounds checks o.rounds generated sets, cycling through the
// distributions from o.kind. Rounds run concurrently, each with its own
// derived seed and PointSet, so the output does not depend on scheduling.
func verifyRounds(ctx context.Context, o options, log *Logger, stdout, stderr io.Writer) error {
	if o.n < 2 {
		return errNoPair
	}
	results := make([]roundResult, o.rounds)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := 0; i < o.rounds; i++ {
		i := i // per-iteration copy; go directive is 1.21 (pre-1.22 loopvar semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			kind := pointgen.Kind((int(o.kind) + i) % pointgen.NumKinds)
			rlog := log.WithRound(i, kind)

			pts, err := generatePoints(gctx, rlog, kind, o.n, pointgen.DeriveSeed(o.seed, uint64(i)))
			if err != nil {
				return fmt.Errorf("round %d: %w", i, err)
			}
			res, err := solve(gctx, rlog, pts, o.threshold)
			if err != nil {
				return fmt.Errorf("round %d: %w", i, err)
			}
			brute, err := verify(gctx, rlog, pts, res)
			if err != nil {
				return fmt.Errorf("round %d (%s): %w", i, kind, err)
			}

			results[i] = roundResult{fast: res.Distance(), brute: brute}
			if o.print {
				results[i].points = pts
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range results {
		if o.print {
			if err := pointio.Write(stderr, r.points); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(stdout, formatDistance(r.fast), formatDistance(r.brute)); err != nil {
			return err
		}
	}

	return nil
}

// generatePoints draws n distinct points, logging each discarded draw.
func generatePoints(ctx context.Context, log *Logger, kind pointgen.Kind, n int, seed int64) ([]closest.Point, error) {
	return pointgen.GenerateDistinct(kind, n,
		pointgen.WithSeed(seed),
		pointgen.WithRetryHook(func(attempt int) {
			log.LogRegenerate(ctx, kind, n, attempt)
		}),
	)
}

// solve runs the divide-and-conquer search and logs its counters.
func solve(ctx context.Context, log *Logger, pts []closest.Point, threshold int) (closest.Result, error) {
	var st closest.Stats
	start := time.Now()
	res, err := closest.Solve(pts, closest.WithThreshold(threshold), closest.WithStats(&st))
	if err != nil {
		return res, err
	}
	log.LogSolve(ctx, len(pts), threshold, st, time.Since(start))

	return res, nil
}

// verify recomputes the answer by brute force and compares squared
// distances exactly; both paths use the same arithmetic.
func verify(ctx context.Context, log *Logger, pts []closest.Point, res closest.Result) (float64, error) {
	ref, err := closest.BruteForce(pts)
	if err != nil {
		return 0, err
	}
	if ref.Dist2 != res.Dist2 {
		err = fmt.Errorf("%w: %v vs %v", errMismatch, res.Dist2, ref.Dist2)
	}
	log.LogVerify(ctx, res.Distance(), ref.Distance(), err)

	return ref.Distance(), err
}

// flagSet reports whether name was given on the command line.
func flagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})

	return found
}

func formatDistance(d float64) string {
	return strconv.FormatFloat(d, 'g', -1, 64)
}
