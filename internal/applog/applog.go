// Package applog provides the structured logger threaded through the CLI
// and export pipeline via context.Context. The packing core itself never
// logs (it is a pure function); everything around it does.
package applog

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w at the given level, with a short
// timestamp suitable for interactive CLI output.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger attaches l to ctx so it can be retrieved downstream with
// FromContext.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext retrieves the logger attached to ctx, falling back to
// log.Default() if none was attached.
func FromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// Progress tracks the start of a long-running operation (manifest export,
// multi-page PDF rendering) and logs its completion with elapsed time.
type Progress struct {
	logger *log.Logger
	start  time.Time
}

// NewProgress starts a progress tracker against l.
func NewProgress(l *log.Logger) *Progress {
	return &Progress{logger: l, start: time.Now()}
}

// Done logs msg together with the elapsed time since NewProgress, rounded
// to the nearest millisecond.
func (p *Progress) Done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
