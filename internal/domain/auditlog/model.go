package auditlog

import (
	"context"
	"time"
)

// Entry es un registro del historial de acciones de usuario.
type Entry struct {
	ID      string         `bson:"_id" json:"id"`
	User    string         `bson:"user" json:"user"`
	Action  string         `bson:"action" json:"action"`
	Details map[string]any `bson:"details" json:"details"`
	TS      time.Time      `bson:"ts" json:"ts"`
}

// Sink persiste entradas del historial (append-only).
type Sink interface {
	Write(ctx context.Context, e Entry) error
	Close(ctx context.Context) error
}
