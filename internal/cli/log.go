package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scoopfind/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of a phase and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Searched 4 buckets (12ms)".
func (p *progress) done(msg string) {
	p.logger.Debugf("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Debug Hooks
// =============================================================================

// logHooks reports search and HTTP events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnBucketScanned(_ context.Context, bucket string, matches int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("bucket scan failed", "bucket", bucket, "err", err)
		return
	}
	h.logger.Debug("scanned bucket", "bucket", bucket, "matches", matches, "took", d.Round(time.Microsecond))
}

func (h logHooks) OnRateLimit(_ context.Context, reached bool, err error) {
	if err != nil {
		h.logger.Debug("rate limit check failed", "err", err)
		return
	}
	h.logger.Debug("checked rate limit", "reached", reached)
}

func (h logHooks) OnRemoteFetched(_ context.Context, bucket string, candidates int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("remote search failed", "bucket", bucket, "err", err)
		return
	}
	h.logger.Debug("searched remote bucket", "bucket", bucket, "candidates", candidates, "took", d.Round(time.Millisecond))
}

func (h logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "host", host, "path", path, "status", status, "took", d.Round(time.Millisecond))
}

func (h logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "path", path, "err", err)
}

// registerDebugHooks routes observability events to l when it logs at
// debug level.
func registerDebugHooks(l *log.Logger) {
	if l.GetLevel() > log.DebugLevel {
		return
	}
	h := logHooks{logger: l}
	observability.SetSearchHooks(h)
	observability.SetHTTPHooks(h)
}
