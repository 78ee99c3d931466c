package auditlog

import (
	"context"
	"strings"
	"sync"
	"time"

	"brigadas-forestales/internal/platform/logger"
	"brigadas-forestales/internal/platform/metrics"

	"github.com/google/uuid"
)

const (
	defaultQueueSize    = 256
	defaultWriteTimeout = 2 * time.Second
)

type Options struct {
	QueueSize    int
	WriteTimeout time.Duration
	Logger       logger.Logger
	Now          func() time.Time
}

// Dispatcher es el canal best-effort hacia el historial: LogAction nunca bloquea ni
// devuelve error; las fallas del sink solo quedan en el log local.
type Dispatcher struct {
	sink    Sink
	log     logger.Logger
	now     func() time.Time
	timeout time.Duration

	queue chan Entry
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(sink Sink, opts Options) *Dispatcher {
	size := opts.QueueSize
	if size <= 0 {
		size = defaultQueueSize
	}
	timeout := opts.WriteTimeout
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	d := &Dispatcher{
		sink:    sink,
		log:     log.With(map[string]any{"component": "auditlog"}),
		now:     now,
		timeout: timeout,
		queue:   make(chan Entry, size),
		done:    make(chan struct{}),
	}
	go d.run()
	return d
}

// LogAction encola una acción. Usuario vacío se registra como "anon".
func (d *Dispatcher) LogAction(user, action string, details map[string]any) {
	user = strings.TrimSpace(user)
	if user == "" {
		user = "anon"
	}
	if details == nil {
		details = map[string]any{}
	}

	e := Entry{
		ID:      uuid.NewString(),
		User:    user,
		Action:  action,
		Details: details,
		TS:      d.now().UTC(),
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.log.Warn("audit entry dropped: dispatcher closed", map[string]any{"action": action, "user": user})
		metrics.AuditEntries.WithLabelValues("dropped").Inc()
		return
	}

	select {
	case d.queue <- e:
	default:
		d.log.Warn("audit entry dropped: queue full", map[string]any{"action": action, "user": user})
		metrics.AuditEntries.WithLabelValues("dropped").Inc()
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for e := range d.queue {
		d.write(e)
	}
}

func (d *Dispatcher) write(e Entry) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := d.sink.Write(ctx, e); err != nil {
		d.log.Error("error guardando historial", map[string]any{
			"error":  err,
			"action": e.Action,
			"user":   e.User,
		})
		metrics.AuditEntries.WithLabelValues("failed").Inc()
		return
	}
	d.log.Debug("historial guardado", map[string]any{"action": e.Action, "user": e.User})
	metrics.AuditEntries.WithLabelValues("written").Inc()
}

// Close deja de aceptar entradas, drena la cola y cierra el sink.
// Si ctx vence antes de drenar, las entradas pendientes se pierden.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	select {
	case <-d.done:
	case <-ctx.Done():
		d.log.Warn("audit queue not drained before shutdown", map[string]any{"pending": len(d.queue)})
	}
	return d.sink.Close(ctx)
}
