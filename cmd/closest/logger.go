package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/planar/closest"
	"github.com/katalvlaran/planar/pointgen"
)

// Regeneration warnings are limited to regenBurst at once, then one per
// regenEvery, across all rounds sharing a Logger.
const (
	regenBurst = 5
	regenEvery = time.Second
)

// Logger wraps slog.Logger with closest-specific field names.
type Logger struct {
	*slog.Logger
	regen *rate.Limiter
}

// NewLogger creates a Logger writing to w at the given level, as JSON or text.
func NewLogger(w io.Writer, level slog.Level, json bool) *Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
		regen:  rate.NewLimiter(rate.Every(regenEvery), regenBurst),
	}
}

// WithRound tags every record with the verification round.
func (l *Logger) WithRound(round int, kind pointgen.Kind) *Logger {
	return &Logger{
		Logger: l.Logger.With("round", round, "kind", kind.String()),
		regen:  l.regen,
	}
}

// LogSolve logs one divide-and-conquer run with its counters.
func (l *Logger) LogSolve(ctx context.Context, n, threshold int, st closest.Stats, elapsed time.Duration) {
	l.DebugContext(ctx, "solve completed",
		"points", n,
		"threshold", threshold,
		"calls", st.Calls,
		"brute_force_calls", st.BruteForceCalls,
		"max_depth", st.MaxDepth,
		"strip_points", st.StripPoints,
		"strip_comparisons", st.StripComparisons,
		"max_strip_scan", st.MaxStripScan,
		"elapsed", elapsed,
	)
}

// LogVerify logs the comparison of the fast result with the oracle.
func (l *Logger) LogVerify(ctx context.Context, fast, brute float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "verification failed",
			"fast", fast,
			"brute", brute,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "verification passed", "distance", fast)
}

// LogRegenerate logs a discarded draw that held coincident points. Excess
// warnings are dropped.
func (l *Logger) LogRegenerate(ctx context.Context, kind pointgen.Kind, n, attempt int) {
	if !l.regen.Allow() {
		return
	}
	l.WarnContext(ctx, "equal points, regenerating",
		"kind", kind.String(),
		"points", n,
		"attempt", attempt,
	)
}
