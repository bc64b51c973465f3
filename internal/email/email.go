package email

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Domenick1991/travelbooking/internal/events"
)

// Sender renders booking notifications. It writes them to out instead of an
// SMTP relay.
type Sender struct {
	out io.Writer
}

func NewSender() *Sender {
	return &Sender{out: os.Stdout}
}

func NewSenderTo(out io.Writer) *Sender {
	return &Sender{out: out}
}

func (s *Sender) Send(ctx context.Context, event events.BookingEvent) error {
	if event.Email == "" {
		return nil
	}
	_, err := fmt.Fprintf(s.out, "send email to %s: %s\n", event.Email, Subject(event))
	return err
}

func Subject(event events.BookingEvent) string {
	switch event.Type {
	case events.TypeBookingCreated:
		return fmt.Sprintf("Booking %s received, total %s", event.Reference, event.TotalPrice.StringFixed(2))
	case events.TypeBookingUpdated:
		return fmt.Sprintf("Booking %s updated, new total %s", event.Reference, event.TotalPrice.StringFixed(2))
	case events.TypeBookingCancelled:
		return fmt.Sprintf("Booking %s cancelled", event.Reference)
	case events.TypeBookingStatusChanged:
		return fmt.Sprintf("Booking %s is now %s", event.Reference, event.Status)
	case events.TypeBookingCompleted:
		return fmt.Sprintf("Booking %s completed, thanks for travelling with us", event.Reference)
	}
	return fmt.Sprintf("Booking %s: %s", event.Reference, event.Type)
}
