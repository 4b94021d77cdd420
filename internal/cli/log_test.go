package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scoopfind/pkg/observability"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if gotLog := buf.Len() > 0; gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.DebugLevel))
	time.Sleep(5 * time.Millisecond)
	prog.done("searched 3 buckets")

	if !strings.Contains(buf.String(), "searched 3 buckets (") {
		t.Errorf("progress output = %q, want message with duration", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)

	if got := loggerFromContext(withLogger(context.Background(), custom)); got != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext should fall back to the default logger")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := logHooks{logger: newLogger(&buf, log.DebugLevel)}
	ctx := context.Background()

	h.OnBucketScanned(ctx, "main", 2, time.Millisecond, nil)
	h.OnBucketScanned(ctx, "broken", 0, time.Millisecond, errors.New("bad manifest"))
	h.OnRateLimit(ctx, false, nil)
	h.OnRemoteFetched(ctx, "extras", 1, time.Second, nil)
	h.OnRequest(ctx, "GET", "api.github.com", "/rate_limit")
	h.OnResponse(ctx, "GET", "api.github.com", "/rate_limit", 200, time.Millisecond)
	h.OnError(ctx, "GET", "api.github.com", "/rate_limit", errors.New("timeout"))

	out := buf.String()
	for _, want := range []string{"scanned bucket", "bad manifest", "checked rate limit", "extras", "status=200", "timeout"} {
		if !strings.Contains(out, want) {
			t.Errorf("hook output missing %q:\n%s", want, out)
		}
	}
}

func TestRegisterDebugHooks(t *testing.T) {
	t.Cleanup(observability.Reset)

	registerDebugHooks(newLogger(&bytes.Buffer{}, log.InfoLevel))
	if _, ok := observability.Search().(logHooks); ok {
		t.Error("hooks should not be registered below debug level")
	}

	registerDebugHooks(newLogger(&bytes.Buffer{}, log.DebugLevel))
	if _, ok := observability.Search().(logHooks); !ok {
		t.Error("search hooks should be registered at debug level")
	}
	if _, ok := observability.HTTP().(logHooks); !ok {
		t.Error("http hooks should be registered at debug level")
	}
}
