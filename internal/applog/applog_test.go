package applog

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewWritesAtConfiguredLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, log.InfoLevel)

	logger.Info("hello")
	if buf.Len() == 0 {
		t.Error("logger should have written output")
	}

	buf.Reset()
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Error("debug message should be filtered at info level")
	}
}

func TestProgressDoneReportsElapsed(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, log.InfoLevel)

	p := NewProgress(logger)
	time.Sleep(5 * time.Millisecond)
	p.Done("export finished")

	if !bytes.Contains(buf.Bytes(), []byte("export finished")) {
		t.Errorf("Done() output = %q, want it to contain the message", buf.String())
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Error("FromContext() on an empty context should return a default logger, not nil")
	}
}

func TestWithLoggerRoundTrips(t *testing.T) {
	logger := log.Default()
	ctx := WithLogger(context.Background(), logger)

	if got := FromContext(ctx); got != logger {
		t.Errorf("FromContext() = %v, want the logger passed to WithLogger", got)
	}
}
