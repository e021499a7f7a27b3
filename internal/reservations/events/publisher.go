package events

import (
	"context"
	"time"

	"tessera/pkg/kafka"
	"tessera/pkg/logger"
	"tessera/pkg/model"
)

const (
	eventTypeBookingConfirmed = "booking.confirmed"
	sourceService             = "reservations"
	publishTimeout            = 5 * time.Second
)

// Publisher emits booking lifecycle events after commits. Publishing is
// best-effort: the booking is already durable when an event is attempted,
// so a broker failure is logged and never fails the reservation.
type Publisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

func NewPublisher(producer *kafka.Producer, log *logger.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		log:      log,
	}
}

// BookingConfirmed publishes the committed record, keyed by museum so events
// for one museum keep commit order.
func (p *Publisher) BookingConfirmed(record model.BookingRecord) {
	if p == nil || p.producer == nil {
		return
	}

	msg := kafka.NewMessage().
		WithKey(record.Museum).
		WithValue(record).
		WithEventType(eventTypeBookingConfirmed).
		WithSource(sourceService).
		Build()

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := p.producer.Publish(ctx, msg); err != nil {
		p.log.Warn("Failed to publish booking event",
			"event_type", eventTypeBookingConfirmed,
			"booking_number", record.BookingNumber,
			"error", err,
		)
	}
}

// Close shuts the underlying producer down.
func (p *Publisher) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
