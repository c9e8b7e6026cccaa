// Package cli implements the starfield command-line interface.
//
// This package provides commands for inspecting the star layout of a
// call-to-action control, rendering animation snapshots, and driving the
// control interactively in the terminal. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - layout: Print the marker table for a footprint
//   - render: Generate SVG, JSON, DOT, or PNG snapshots
//   - demo: Hover, click and resize a live control in the terminal
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking. The
// demo owns the terminal, so it logs to --log-file instead.
package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/starfield/pkg/errors"
	"github.com/matzehuels/starfield/pkg/footprint"
)

// newLogger returns a logger writing to w at level with "15:04:05.00"
// timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// openLogFile opens the demo log file for appending. An empty path discards
// logs. The returned close func is never nil.
func openLogFile(path string) (io.Writer, func() error, error) {
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	if err := errors.ValidatePath(path); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open log file %s", path)
	}
	return f, f.Close, nil
}

// progress times one command. Stages log at debug level, the final summary at
// info level with the elapsed time attached.
type progress struct {
	logger *log.Logger
	start  time.Time
	now    func() time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now(), now: time.Now}
}

// footprint logs the footprint a command works on.
func (p *progress) footprint(fp footprint.Footprint, markers int) {
	p.logger.Debug("footprint", "width", fp.Width, "height", fp.Height, "markers", markers)
}

// done logs msg with keyvals and the elapsed time, e.g.
// "Rendered snapshot artifacts=3 state=hovering elapsed=12ms".
func (p *progress) done(msg string, keyvals ...any) {
	elapsed := p.now().Sub(p.start).Round(time.Millisecond)
	p.logger.Info(msg, append(keyvals, "elapsed", elapsed)...)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the command logger, or log.Default() when none
// was attached (commands run directly from tests).
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
