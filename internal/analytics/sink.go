// Package analytics provides the fire-and-forget event sink used to
// record user interactions. The default sink drops everything, so the
// rest of the tool works without a tracking backend.
package analytics

import (
	"github.com/perfwatch/quicktrace/internal/util"
)

// Sink receives named interaction events with a flat field mapping.
// Implementations must never block the caller; failures are invisible.
type Sink interface {
	Track(event string, fields map[string]interface{})
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Track(string, map[string]interface{}) {}

// Nop returns the shared no-op sink.
func Nop() Sink {
	return NopSink{}
}

// LoggerSink forwards events to the debug log. Useful for inspecting
// what would be tracked without wiring a real backend.
type LoggerSink struct {
	logger util.LoggerInterface
}

func NewLoggerSink(logger util.LoggerInterface) *LoggerSink {
	return &LoggerSink{logger: logger}
}

func (s *LoggerSink) Track(event string, fields map[string]interface{}) {
	if s.logger == nil {
		return
	}
	logFields := make([]util.Field, 0, len(fields))
	for k, v := range fields {
		logFields = append(logFields, util.Field{Key: k, Value: v})
	}
	s.logger.Debug("analytics: "+event, logFields...)
}
