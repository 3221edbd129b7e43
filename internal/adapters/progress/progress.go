package progress

import (
	"log/slog"

	"post-pilot/internal/core/domain"
	"post-pilot/internal/core/port"
)

// SlogSink logs every progress snapshot. The default sink for the CLI.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink returns SlogSink
func NewSlogSink(logger *slog.Logger) *SlogSink {
	return &SlogSink{logger: logger}
}

func (s *SlogSink) Publish(update domain.ProgressUpdate) {
	s.logger.Info("submission progress",
		"phase", update.Phase,
		"percent", int(update.OverallPercent),
		"message", update.Message,
	)
}

// Fanout forwards each snapshot to every sink.
type Fanout struct {
	sinks []port.ProgressSink
}

// NewFanout returns Fanout
func NewFanout(sinks ...port.ProgressSink) *Fanout {
	return &Fanout{sinks: sinks}
}

func (f *Fanout) Publish(update domain.ProgressUpdate) {
	for _, sink := range f.sinks {
		sink.Publish(update)
	}
}
