package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger provides sanitized debug logging. Callers log type ids, spans and
// counts; secret values never reach it.
type Logger struct {
	zl      zerolog.Logger
	enabled bool
}

// New returns a logger writing to stderr when enabled, and a no-op otherwise.
func New(enabled bool) *Logger {
	return NewWriter(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}, enabled)
}

// NewWriter returns a logger writing to out when enabled.
func NewWriter(out io.Writer, enabled bool) *Logger {
	if !enabled {
		return &Logger{zl: zerolog.Nop()}
	}
	zl := zerolog.New(out).Level(zerolog.DebugLevel).With().Timestamp().Str("component", "secretsieve").Logger()
	return &Logger{zl: zl, enabled: true}
}

// Enabled reports whether log lines are written.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}

// Debug starts a debug event. The returned event is nil, and every method on
// it a no-op, when logging is disabled.
func (l *Logger) Debug() *zerolog.Event {
	if !l.Enabled() {
		return nil
	}
	return l.zl.Debug()
}

// Infof writes a formatted log line when enabled.
func (l *Logger) Infof(format string, args ...any) {
	if !l.Enabled() {
		return
	}
	l.zl.Info().Msg(fmt.Sprintf(format, args...))
}
