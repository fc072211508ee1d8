package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ZerologAdapter wraps a zerolog.Logger to implement the Logger interface.
// Args are forwarded as zerolog fields.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates a Logger from a zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) Logger {
	return &ZerologAdapter{logger: logger}
}

// NewConsoleLogger returns a zerolog backed Logger writing human readable
// lines to out (stdout if nil).
func NewConsoleLogger(level LogLevel, out io.Writer) Logger {
	if out == nil {
		out = os.Stdout
	}
	w := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	l := zerolog.New(w).Level(zerologLevel(level)).With().Timestamp().Logger()
	return NewZerologAdapter(l)
}

func zerologLevel(l LogLevel) zerolog.Level {
	switch l {
	case LogLevelDebug:
		return zerolog.DebugLevel
	case LogLevelWarn:
		return zerolog.WarnLevel
	case LogLevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug logs a debug message.
func (z *ZerologAdapter) Debug(msg string, args ...any) { emit(z.logger.Debug(), msg, args) }

// Info logs an informational message.
func (z *ZerologAdapter) Info(msg string, args ...any) { emit(z.logger.Info(), msg, args) }

// Warn logs a warning message.
func (z *ZerologAdapter) Warn(msg string, args ...any) { emit(z.logger.Warn(), msg, args) }

// Error logs an error message.
func (z *ZerologAdapter) Error(msg string, args ...any) { emit(z.logger.Error(), msg, args) }

func emit(ev *zerolog.Event, msg string, args []any) {
	if ev == nil {
		return
	}
	if len(args) > 0 {
		ev = ev.Fields(args)
	}
	ev.Msg(msg)
}
