package events

import (
	"context"
	"fmt"

	"flexspace/pkg/config"
	"flexspace/pkg/kafka"
	kafka_config "flexspace/pkg/kafka/config"
	kafka_middleware "flexspace/pkg/kafka/middleware"
	"flexspace/pkg/logger"
	"flexspace/pkg/sealer"
)

// PaymentApplier applies a payment outcome to the booking it belongs
// to. Implemented by the bookings service.
type PaymentApplier interface {
	MarkBookingPayment(ctx context.Context, bookingID string, succeeded bool, paymentRef string) error
	MarkRecurringPayment(ctx context.Context, id string, succeeded bool, paymentRef string) error
}

// PaymentEvent is the payload the payment provider publishes. The
// token is the sealed reference we handed out in the created event.
type PaymentEvent struct {
	PaymentToken string `json:"payment_token"`
	PaymentRef   string `json:"payment_ref"`
	AmountCents  int64  `json:"amount_cents"`
}

// NewPaymentConsumer builds a consumer that applies payment outcomes.
// Redelivered events are harmless: applying the same outcome twice is
// a no-op in the service.
func NewPaymentConsumer(cfg *config.Config, kafkaCfg *kafka_config.Config, applier PaymentApplier, log *logger.Logger) (*kafka.Consumer, error) {
	handler := paymentHandler(applier, log)
	consumer, err := kafka.NewConsumer(kafkaCfg, cfg.PaymentEventsTopic, cfg.PaymentConsumerGroup, cfg.PaymentEventsDLQTopic, handler)
	if err != nil {
		return nil, err
	}
	consumer.Use(kafka_middleware.LoggingConsumerMiddleware(log))
	consumer.Use(kafka_middleware.MetricsConsumerMiddleware())
	return consumer, nil
}

func paymentHandler(applier PaymentApplier, log *logger.Logger) kafka.MessageHandler {
	return func(ctx context.Context, msg kafka.Message) error {
		eventType := msg.GetEventType()

		var succeeded bool
		switch eventType {
		case EventPaymentSucceeded:
			succeeded = true
		case EventPaymentFailed:
			succeeded = false
		default:
			log.Debug("Skipping unrelated payment event", "event_type", eventType)
			return nil
		}

		var event PaymentEvent
		if err := msg.DecodeValue(&event); err != nil {
			return fmt.Errorf("invalid payment event payload: %w", err)
		}

		bookingID, kind, err := sealer.ParsePaymentToken(event.PaymentToken)
		if err != nil {
			return fmt.Errorf("invalid payment token: %w", err)
		}

		log.Info("Applying payment outcome",
			"event_type", eventType,
			"booking_id", bookingID,
			"kind", kind,
			"payment_ref", event.PaymentRef,
		)

		switch kind {
		case TokenKindSingle:
			return applier.MarkBookingPayment(ctx, bookingID, succeeded, event.PaymentRef)
		case TokenKindRecurring:
			return applier.MarkRecurringPayment(ctx, bookingID, succeeded, event.PaymentRef)
		default:
			return fmt.Errorf("unknown payment token kind: %s", kind)
		}
	}
}
