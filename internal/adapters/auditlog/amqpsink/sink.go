package amqpsink

import (
	"context"
	"encoding/json"
	"fmt"

	"brigadas-forestales/internal/domain/auditlog"

	amqp "github.com/rabbitmq/amqp091-go"
)

const DefaultExchange = "brigadas.audit"

// channel es la parte de *amqp.Channel que usa el sink.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Sink publica cada entrada en un exchange topic con routing key "audit.<accion>".
type Sink struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
}

func Dial(url, exchange string) (*Sink, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &Sink{conn: conn, ch: ch, exchange: exchange}, nil
}

func RoutingKey(action string) string {
	if action == "" {
		action = "unknown"
	}
	return "audit." + action
}

func (s *Sink) Write(ctx context.Context, e auditlog.Entry) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return s.ch.PublishWithContext(ctx, s.exchange, RoutingKey(e.Action), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    e.ID,
		Timestamp:    e.TS,
		Type:         e.Action,
		Body:         b,
	})
}

func (s *Sink) Close(context.Context) error {
	if s.ch != nil {
		_ = s.ch.Close()
	}
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}
