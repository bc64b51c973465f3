package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/travelbooking/internal/events"
	amqp "github.com/rabbitmq/amqp091-go"
)

const maxBackoff = 30 * time.Second

type Consumer struct {
	url   string
	queue string
}

func NewConsumer(url, queue string) *Consumer {
	return &Consumer{url: url, queue: queue}
}

// Consume dials the broker and reconnects with exponential backoff until ctx
// is cancelled. A message the handler rejects is nacked without requeue.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, events.BookingEvent) error) error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(c.url)
		if err != nil {
			log.Printf("rabbitmq consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			if !sleep(ctx, backoff) {
				return nil
			}
			if backoff < maxBackoff {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = c.consumeLoop(ctx, conn, handler)
		_ = conn.Close()
		if ctx.Err() != nil {
			return nil
		}
		log.Printf("rabbitmq consumer: consume loop ended: %v; reconnecting", err)
		if !sleep(ctx, 2*time.Second) {
			return nil
		}
	}
}

func (c *Consumer) consumeLoop(ctx context.Context, conn *amqp.Connection, handler func(context.Context, events.BookingEvent) error) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("rabbitmq consumer: set QoS failed: %v", err)
	}
	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := handleDelivery(ctx, d.Body, handler); err != nil {
				log.Printf("rabbitmq consumer: handle message failed: %v", err)
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func handleDelivery(ctx context.Context, body []byte, handler func(context.Context, events.BookingEvent) error) error {
	event, err := events.Decode(body)
	if err != nil {
		return err
	}
	return handler(ctx, event)
}

func sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
