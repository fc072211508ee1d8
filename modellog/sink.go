package modellog

import (
	"errors"
	"fmt"

	"github.com/hupe1980/xbam/core"
	"github.com/hupe1980/xbam/logging"
)

// LoggerSink writes model log entries to a logging.Logger at info level.
type LoggerSink struct {
	logger logging.Logger
}

// NewLoggerSink creates a sink; a nil logger discards entries.
func NewLoggerSink(l logging.Logger) *LoggerSink {
	if l == nil {
		l = logging.NoOpLogger{}
	}
	return &LoggerSink{logger: l}
}

// Log writes entry.
func (s *LoggerSink) Log(entry core.ModelLogEntry) error {
	auto, _ := entry.Metadata[core.MetadataAutoBuilderUsed].(bool)
	if xl, ok := s.logger.(*logging.XBamLogger); ok && entry.Action == core.ActionBuilt {
		xl.LogModelBuilt(entry.Archetype, entry.Model, auto, entry.Elapsed)
		return nil
	}
	args := []any{
		"action", string(entry.Action),
		"archetype", entry.Archetype,
		"model_type", fmt.Sprintf("%T", entry.Model),
		core.MetadataAutoBuilderUsed, auto,
	}
	if u, ok := entry.Model.(core.Unique); ok {
		args = append(args, "id", u.ID())
	}
	if entry.Builder != nil {
		args = append(args, "params", entry.Builder.Keys())
	}
	s.logger.Info("model "+string(entry.Action), args...)
	return nil
}

// Multi delivers entries to every log in order and joins their errors.
type Multi []core.ModelLog

// Log writes entry to every log.
func (m Multi) Log(entry core.ModelLogEntry) error {
	var errs []error
	for _, l := range m {
		if l == nil {
			continue
		}
		if err := l.Log(entry); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
