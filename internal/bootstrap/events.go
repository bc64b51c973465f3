package bootstrap

import (
	"context"
	"log"

	"github.com/Domenick1991/travelbooking/config"
	"github.com/Domenick1991/travelbooking/internal/events"
	"github.com/Domenick1991/travelbooking/internal/kafka"
	"github.com/Domenick1991/travelbooking/internal/rabbitmq"
)

// NewNotifier builds the publisher named by events.driver. With the kafka
// driver events go to the booking and notifications topics; with rabbitmq
// they go to the single queue the worker reads. The "none" driver returns a
// notifier that publishes nothing. The returned func closes the producer.
func NewNotifier(ctx context.Context, cfg *config.Config) (*events.Notifier, func()) {
	switch cfg.Events.Driver {
	case config.EventsDriverKafka:
		p := kafka.NewProducer(cfg.Kafka.Brokers)
		if err := p.CheckConnection(ctx); err != nil {
			log.Printf("WARNING: kafka unavailable, publishing will retry per event: %v", err)
		}
		return events.NewNotifier(p, cfg.Kafka.BookingTopic, cfg.Kafka.NotificationsTopic), func() { _ = p.Close() }
	case config.EventsDriverRabbitMQ:
		p := rabbitmq.NewPublisher(cfg.RabbitMQ.URL)
		return events.NewNotifier(p, cfg.RabbitMQ.Queue, ""), func() { _ = p.Close() }
	default:
		log.Printf("events disabled")
		return events.NewNotifier(nil, "", ""), func() {}
	}
}
