package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/travelbooking/config"
	"github.com/Domenick1991/travelbooking/internal/bootstrap"
	"github.com/Domenick1991/travelbooking/internal/email"
	"github.com/Domenick1991/travelbooking/internal/events"
	"github.com/Domenick1991/travelbooking/internal/kafka"
	"github.com/Domenick1991/travelbooking/internal/rabbitmq"
	"github.com/Domenick1991/travelbooking/internal/repository"
	"github.com/Domenick1991/travelbooking/internal/service/booking"
	"github.com/jackc/pgx/v5/pgxpool"
)

type eventHandler = func(context.Context, events.BookingEvent) error

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	notifier, closeNotifier := bootstrap.NewNotifier(ctx, cfg)
	defer closeNotifier()

	bookingService := booking.NewBookingService(
		repository.NewBookingRepository(pool),
		repository.NewPackageRepository(pool),
		repository.NewUserRepository(pool),
		notifier,
	)

	emailSender := email.NewSender()
	go consume(ctx, cfg, emailSender.Send)

	if cfg.Worker.CompletionSweepMinutes <= 0 {
		log.Printf("completion sweep disabled")
		<-ctx.Done()
		log.Printf("shutting down")
		return
	}

	sweepTicker := time.NewTicker(time.Duration(cfg.Worker.CompletionSweepMinutes) * time.Minute)
	defer sweepTicker.Stop()

	for {
		select {
		case <-sweepTicker.C:
			completed, err := bookingService.CompletePast(ctx, time.Now())
			if err != nil {
				log.Printf("complete bookings error: %v", err)
				continue
			}
			if len(completed) > 0 {
				log.Printf("completed %d bookings", len(completed))
			}
		case <-ctx.Done():
			log.Printf("shutting down")
			return
		}
	}
}

// consume reads notification events from the configured bus until ctx ends.
func consume(ctx context.Context, cfg *config.Config, handler eventHandler) {
	var err error
	switch cfg.Events.Driver {
	case config.EventsDriverKafka:
		topic := cfg.Kafka.NotificationsTopic
		if topic == "" {
			topic = cfg.Kafka.BookingTopic
		}
		consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, topic)
		defer consumer.Close()
		log.Printf("consuming kafka topic %s", topic)
		err = consumer.Consume(ctx, handler)
	case config.EventsDriverRabbitMQ:
		log.Printf("consuming rabbitmq queue %s", cfg.RabbitMQ.Queue)
		err = rabbitmq.NewConsumer(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue).Consume(ctx, handler)
	default:
		log.Printf("events disabled, notification consumer not started")
		return
	}
	if err != nil {
		log.Printf("consumer stopped: %v", err)
	}
}
