package sfcm

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with the fields the engine reports.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler on stderr at info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable lines to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, nil))
}

func (l *Logger) WithClusters(c int) *Logger {
	return &Logger{Logger: l.Logger.With("clusters", c)}
}

func (l *Logger) logIteration(iteration int, shift float64) {
	l.Debug("fit iteration",
		"iteration", iteration,
		"shift", shift,
	)
}

func (l *Logger) logFit(iterations int, shift float64, err error) {
	if err != nil {
		l.Warn("fit stopped without converging",
			"iterations", iterations,
			"shift", shift,
			"error", err,
		)
		return
	}
	l.Info("fit converged",
		"iterations", iterations,
		"shift", shift,
	)
}
