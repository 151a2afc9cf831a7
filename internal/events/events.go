package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Routing keys of the reservation events.
const (
	RKReservationCreated = "reserva.creada"
	RKReservationDeleted = "reserva.eliminada"
)

// ReservationCreated is published after a slot is booked.
type ReservationCreated struct {
	ReservationID uint   `json:"reserva_id"`
	UserID        uint   `json:"usuario_id"`
	Space         string `json:"espacio"`
	Date          string `json:"fecha"`
	Time          string `json:"hora"`
}

// ReservationDeleted is published after a reservation is removed.
type ReservationDeleted struct {
	ReservationID uint `json:"reserva_id"`
}

// Emitter publishes a JSON event under a routing key.
type Emitter interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Publisher emits events to a RabbitMQ topic exchange. A nil *Publisher is a no-op.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// NewPublisher dials the broker and declares a durable topic exchange.
func NewPublisher(url, exchange string) (*Publisher, error) {
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
	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// PublishJSON marshals v and publishes it as a persistent message.
func (p *Publisher) PublishJSON(ctx context.Context, key string, v any) error {
	if p == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         b,
	})
}

// Close releases the channel and the connection.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
