package email

import (
	"context"
	"fmt"

	"github.com/Kibe27/flightsasa/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

// Send delivers a booking notification. Payment in this marketplace is verified
// manually, so the mail is informational only.
func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("send email to %s about %s for booking %s (%s %s, %s -> %s)\n",
		event.Email, event.Type, event.Reference, event.AirlineName, event.FlightNumber,
		event.Origin, event.Destination)
	return nil
}
