// Package events defines the booking notifications published to the event bus
// and the helper services use to publish them.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	TypeBookingCreated       = "booking_created"
	TypeBookingUpdated       = "booking_updated"
	TypeBookingCancelled     = "booking_cancelled"
	TypeBookingStatusChanged = "booking_status_changed"
	TypeBookingCompleted     = "booking_completed"
)

type BookingEvent struct {
	Type       string          `json:"type"`
	Reference  string          `json:"reference"`
	BookingID  int64           `json:"booking_id"`
	UserID     int64           `json:"user_id"`
	Email      string          `json:"email,omitempty"`
	Status     string          `json:"status"`
	TotalPrice decimal.Decimal `json:"total_price"`
	StartDate  time.Time       `json:"start_date"`
	EndDate    time.Time       `json:"end_date"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func NewBookingEvent(eventType string, b domain.Booking, email string, now time.Time) BookingEvent {
	return BookingEvent{
		Type:       eventType,
		Reference:  b.Reference,
		BookingID:  b.ID,
		UserID:     b.UserID,
		Email:      email,
		Status:     string(b.Status),
		TotalPrice: b.TotalPrice,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		OccurredAt: now,
	}
}

func Decode(data []byte) (BookingEvent, error) {
	var ev BookingEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return BookingEvent{}, fmt.Errorf("decode booking event: %w", err)
	}
	return ev, nil
}

// Producer is implemented by the kafka and rabbitmq publishers. For rabbitmq
// the topic is the queue name.
type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Notifier publishes booking events to the booking topic and, when set, to the
// notifications topic. A nil Notifier or one without a producer is a no-op.
type Notifier struct {
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	now                func() time.Time
}

func NewNotifier(producer Producer, bookingTopic, notificationsTopic string) *Notifier {
	return &Notifier{
		producer:           producer,
		bookingTopic:       bookingTopic,
		notificationsTopic: notificationsTopic,
		now:                time.Now,
	}
}

func (n *Notifier) Enabled() bool {
	return n != nil && n.producer != nil && n.bookingTopic != ""
}

func (n *Notifier) Publish(ctx context.Context, eventType string, b domain.Booking, email string) error {
	if !n.Enabled() {
		return nil
	}
	event := NewBookingEvent(eventType, b, email, n.now().UTC())
	if err := n.producer.Publish(ctx, n.bookingTopic, b.Reference, event); err != nil {
		return err
	}
	if n.notificationsTopic != "" {
		return n.producer.Publish(ctx, n.notificationsTopic, b.Reference, event)
	}
	return nil
}

// PublishLogged publishes and logs a failure instead of returning it. The
// booking write has already committed at this point.
func (n *Notifier) PublishLogged(ctx context.Context, eventType string, b domain.Booking, email string) {
	if err := n.Publish(ctx, eventType, b, email); err != nil {
		log.Printf("WARNING: failed to publish %s event for booking %s: %v", eventType, b.Reference, err)
	}
}
