package handler

import (
	"net/http"

	"flexspace/internal/bookings/service"
	httputil "flexspace/pkg/http"
	"flexspace/pkg/logger"
	"flexspace/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type RecurringBookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewRecurringBookingHandler(service service.BookingService, log *logger.Logger) *RecurringBookingHandler {
	return &RecurringBookingHandler{
		service: service,
		log:     log,
	}
}

func (h *RecurringBookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var rb model.RecurringBooking
	if err := httputil.DecodeBody(r, &rb); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CreateRecurring", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := h.service.CreateRecurring(r.Context(), &rb); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CreateRecurring", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, rb); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateRecurring", "operation", "WriteCreated", "error", err)
	}
}

func (h *RecurringBookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	rb, err := h.service.GetRecurringByID(r.Context(), id)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetRecurringByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, rb); err != nil {
		h.log.Error("failed to write success response", "handler", "GetRecurringByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *RecurringBookingHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAllRecurring", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	rbs, total, err := h.service.GetAllRecurring(r.Context(), limit, offset)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAllRecurring", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePaginated(w, rbs, total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "GetAllRecurring", "operation", "WritePaginated", "error", err)
	}
}

func (h *RecurringBookingHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var updates model.RecurringBookingUpdate
	if err := httputil.DecodeBody(r, &updates); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UpdateRecurring", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := h.service.UpdateRecurring(r.Context(), id, &updates); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UpdateRecurring", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *RecurringBookingHandler) Cancel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := h.service.CancelRecurring(r.Context(), id); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CancelRecurring", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

// Quote prices a recurring booking without creating it, so the
// storefront can show the revenue breakdown before checkout.
func (h *RecurringBookingHandler) Quote(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req service.QuoteRequest
	if err := httputil.DecodeBody(r, &req); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Quote", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	quote, err := h.service.Quote(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Quote", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, quote); err != nil {
		h.log.Error("failed to write success response", "handler", "Quote", "operation", "WriteSuccess", "error", err)
	}
}

func (h *RecurringBookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/recurring-bookings", h.Create)
	router.GET("/api/v1/recurring-bookings", h.GetAll)
	router.GET("/api/v1/recurring-bookings/id/:id", h.GetByID)
	router.PATCH("/api/v1/recurring-bookings/id/:id", h.Update)
	router.POST("/api/v1/recurring-bookings/id/:id/cancel", h.Cancel)
	router.POST("/api/v1/recurring-bookings/quote", h.Quote)
}
