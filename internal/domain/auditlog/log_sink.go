package auditlog

import (
	"context"

	"brigadas-forestales/internal/platform/logger"
)

// LogSink escribe el historial solo en el log local (sin Mongo ni broker configurados).
type LogSink struct {
	log logger.Logger
}

func NewLogSink(log logger.Logger) *LogSink {
	if log == nil {
		log = logger.Nop()
	}
	return &LogSink{log: log}
}

func (s *LogSink) Write(_ context.Context, e Entry) error {
	s.log.Info("historial", map[string]any{
		"id":      e.ID,
		"user":    e.User,
		"action":  e.Action,
		"details": e.Details,
		"ts":      e.TS,
	})
	return nil
}

func (s *LogSink) Close(context.Context) error { return nil }
