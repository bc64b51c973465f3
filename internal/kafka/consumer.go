package kafka

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Domenick1991/travelbooking/internal/events"
	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume reads until ctx is cancelled. Messages that do not decode are
// logged and skipped. A handler error stops consumption.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, events.BookingEvent) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		event, err := events.Decode(msg.Value)
		if err != nil {
			log.Printf("kafka consumer: skipping message at offset %d: %v", msg.Offset, err)
			continue
		}
		if err := handler(ctx, event); err != nil {
			return err
		}
	}
}
