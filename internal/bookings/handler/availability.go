package handler

import (
	"net/http"

	"flexspace/internal/bookings/service"
	apperrors "flexspace/pkg/errors"
	httputil "flexspace/pkg/http"
	"flexspace/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type AvailabilityHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewAvailabilityHandler(service service.BookingService, log *logger.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
		log:     log,
	}
}

// AvailabilityResponse is the payload of the availability check.
type AvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	Date      string `json:"date"`
	Slot      string `json:"slot"`
	Available bool   `json:"available"`
}

func (h *AvailabilityHandler) Check(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	roomID := query.Get("room_id")
	slot := query.Get("slot")

	if roomID == "" || slot == "" {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("'room_id' and 'slot' query parameters are required")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CheckAvailability", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	date, err := httputil.ExtractDateParam(r, "date")
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CheckAvailability", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	available, err := h.service.CheckAvailability(r.Context(), roomID, date, slot)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CheckAvailability", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	result := AvailabilityResponse{
		RoomID:    roomID,
		Date:      date.Format(httputil.DateLayout),
		Slot:      slot,
		Available: available,
	}

	if err := httputil.WriteSuccess(w, result); err != nil {
		h.log.Error("failed to write success response", "handler", "CheckAvailability", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AvailabilityHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/availability", h.Check)
}
