package handler

import (
	"net/http"

	"flexspace/internal/bookings/events"
	apperrors "flexspace/pkg/errors"
	httputil "flexspace/pkg/http"
	"flexspace/pkg/logger"
	"flexspace/pkg/sealer"

	"github.com/julienschmidt/httprouter"
)

// PaymentWebhookHandler is the HTTP fallback for payment providers
// that deliver outcomes by webhook instead of Kafka. It is mounted
// behind HMAC signature verification.
type PaymentWebhookHandler struct {
	applier events.PaymentApplier
	log     *logger.Logger
}

func NewPaymentWebhookHandler(applier events.PaymentApplier, log *logger.Logger) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{
		applier: applier,
		log:     log,
	}
}

// PaymentWebhookPayload mirrors the Kafka payment event, with the
// event type inline because webhooks carry no headers of our own.
type PaymentWebhookPayload struct {
	EventType    string `json:"event_type"`
	PaymentToken string `json:"payment_token"`
	PaymentRef   string `json:"payment_ref"`
	AmountCents  int64  `json:"amount_cents"`
}

func (h *PaymentWebhookHandler) Receive(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload PaymentWebhookPayload
	if err := httputil.DecodeBody(r, &payload); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "PaymentWebhook", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	var succeeded bool
	switch payload.EventType {
	case events.EventPaymentSucceeded:
		succeeded = true
	case events.EventPaymentFailed:
		succeeded = false
	default:
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("unknown event_type: "+payload.EventType)); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "PaymentWebhook", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	bookingID, kind, err := sealer.ParsePaymentToken(payload.PaymentToken)
	if err != nil {
		h.log.Warn("Payment webhook carried an invalid token", "error", err)
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("invalid payment_token")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "PaymentWebhook", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	switch kind {
	case events.TokenKindSingle:
		err = h.applier.MarkBookingPayment(r.Context(), bookingID, succeeded, payload.PaymentRef)
	case events.TokenKindRecurring:
		err = h.applier.MarkRecurringPayment(r.Context(), bookingID, succeeded, payload.PaymentRef)
	default:
		err = apperrors.InvalidInput("unknown payment token kind: " + kind)
	}
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "PaymentWebhook", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *PaymentWebhookHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/webhooks/payments", h.Receive)
}
