// Package events wires the bookings service to Kafka. Booking
// lifecycle events go out on the booking events topic; payment
// outcomes come back in on the payment events topic.
package events

import (
	"context"
	"time"

	"flexspace/pkg/config"
	"flexspace/pkg/kafka"
	kafka_config "flexspace/pkg/kafka/config"
	kafka_middleware "flexspace/pkg/kafka/middleware"
	"flexspace/pkg/logger"
	"flexspace/pkg/model"
	"flexspace/pkg/sealer"
)

const (
	EventBookingCreated     = "booking.created"
	EventBookingCancelled   = "booking.cancelled"
	EventBookingCompleted   = "booking.completed"
	EventRecurringCreated   = "recurring_booking.created"
	EventRecurringCancelled = "recurring_booking.cancelled"

	EventPaymentSucceeded = "payment.succeeded"
	EventPaymentFailed    = "payment.failed"

	// Token kinds embedded in sealed payment tokens.
	TokenKindSingle    = "single"
	TokenKindRecurring = "recurring"

	schemaVersion = "1"
	sourceService = "bookings"
)

// Publisher emits booking lifecycle events. Publishing is best effort:
// implementations log failures instead of failing the request that
// triggered the event.
type Publisher interface {
	BookingCreated(ctx context.Context, booking *model.Booking)
	BookingCancelled(ctx context.Context, booking *model.Booking)
	BookingCompleted(ctx context.Context, booking *model.Booking)
	RecurringCreated(ctx context.Context, rb *model.RecurringBooking)
	RecurringCancelled(ctx context.Context, rb *model.RecurringBooking)
	Close() error
}

// BookingEvent is the payload of single-booking lifecycle events. The
// payment token is an opaque sealed reference the payment provider
// echoes back in payment events.
type BookingEvent struct {
	BookingID     string    `json:"booking_id"`
	RoomID        string    `json:"room_id"`
	CustomerEmail string    `json:"customer_email"`
	Date          time.Time `json:"date"`
	Slot          string    `json:"slot"`
	PriceCents    int64     `json:"price_cents"`
	Status        string    `json:"status"`
	PaymentToken  string    `json:"payment_token,omitempty"`
}

// RecurringEvent is the payload of recurring-booking lifecycle events.
type RecurringEvent struct {
	BookingID         string    `json:"booking_id"`
	RoomID            string    `json:"room_id"`
	CustomerEmail     string    `json:"customer_email"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	Slot              string    `json:"slot"`
	Pattern           string    `json:"pattern"`
	Occurrences       int       `json:"occurrences"`
	TotalRevenueCents int64     `json:"total_revenue_cents"`
	Status            string    `json:"status"`
	PaymentToken      string    `json:"payment_token,omitempty"`
}

type kafkaPublisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

func NewKafkaPublisher(cfg *config.Config, kafkaCfg *kafka_config.Config, log *logger.Logger) (Publisher, error) {
	producer, err := kafka.NewProducer(kafkaCfg, cfg.BookingEventsTopic, cfg.BookingEventsDLQTopic)
	if err != nil {
		return nil, err
	}
	producer.Use(kafka_middleware.LoggingProducerMiddleware(log))
	producer.Use(kafka_middleware.MetricsProducerMiddleware())

	return &kafkaPublisher{
		producer: producer,
		log:      log,
	}, nil
}

func (p *kafkaPublisher) publish(ctx context.Context, eventType string, roomID string, payload any) {
	msg := kafka.NewMessage().
		WithKey(roomID).
		WithValue(payload).
		WithEventType(eventType).
		WithSchemaVersion(schemaVersion).
		WithSource(sourceService).
		Build()

	if err := p.producer.Publish(ctx, msg); err != nil {
		p.log.Error("Failed to publish booking event",
			"event_type", eventType,
			"room_id", roomID,
			"error", err,
		)
		return
	}

	p.log.Debug("Published booking event", "event_type", eventType, "room_id", roomID)
}

func (p *kafkaPublisher) BookingCreated(ctx context.Context, booking *model.Booking) {
	token, err := sealer.CreatePaymentToken(booking.ID, TokenKindSingle)
	if err != nil {
		p.log.Error("Failed to seal payment token", "booking_id", booking.ID, "error", err)
	}
	p.publish(ctx, EventBookingCreated, booking.RoomID, bookingPayload(booking, token))
}

func (p *kafkaPublisher) BookingCancelled(ctx context.Context, booking *model.Booking) {
	p.publish(ctx, EventBookingCancelled, booking.RoomID, bookingPayload(booking, ""))
}

func (p *kafkaPublisher) BookingCompleted(ctx context.Context, booking *model.Booking) {
	p.publish(ctx, EventBookingCompleted, booking.RoomID, bookingPayload(booking, ""))
}

func (p *kafkaPublisher) RecurringCreated(ctx context.Context, rb *model.RecurringBooking) {
	token, err := sealer.CreatePaymentToken(rb.ID, TokenKindRecurring)
	if err != nil {
		p.log.Error("Failed to seal payment token", "booking_id", rb.ID, "error", err)
	}
	p.publish(ctx, EventRecurringCreated, rb.RoomID, recurringPayload(rb, token))
}

func (p *kafkaPublisher) RecurringCancelled(ctx context.Context, rb *model.RecurringBooking) {
	p.publish(ctx, EventRecurringCancelled, rb.RoomID, recurringPayload(rb, ""))
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

func bookingPayload(b *model.Booking, token string) BookingEvent {
	return BookingEvent{
		BookingID:     b.ID,
		RoomID:        b.RoomID,
		CustomerEmail: b.CustomerEmail,
		Date:          b.Date,
		Slot:          b.Slot,
		PriceCents:    b.PriceCents,
		Status:        b.Status,
		PaymentToken:  token,
	}
}

func recurringPayload(rb *model.RecurringBooking, token string) RecurringEvent {
	return RecurringEvent{
		BookingID:         rb.ID,
		RoomID:            rb.RoomID,
		CustomerEmail:     rb.CustomerEmail,
		StartDate:         rb.StartDate,
		EndDate:           rb.EndDate,
		Slot:              rb.Slot,
		Pattern:           rb.Pattern,
		Occurrences:       rb.Occurrences,
		TotalRevenueCents: rb.TotalRevenueCents,
		Status:            rb.Status,
		PaymentToken:      token,
	}
}

// NoopPublisher is used when the service runs without Kafka, for
// local development and in tests.
type NoopPublisher struct{}

func (NoopPublisher) BookingCreated(ctx context.Context, booking *model.Booking)    {}
func (NoopPublisher) BookingCancelled(ctx context.Context, booking *model.Booking)  {}
func (NoopPublisher) BookingCompleted(ctx context.Context, booking *model.Booking)  {}
func (NoopPublisher) RecurringCreated(ctx context.Context, rb *model.RecurringBooking)   {}
func (NoopPublisher) RecurringCancelled(ctx context.Context, rb *model.RecurringBooking) {}
func (NoopPublisher) Close() error                                                  { return nil }
