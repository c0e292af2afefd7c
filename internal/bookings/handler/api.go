package handler

import (
	"flexspace/internal/bookings/service"
	"flexspace/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

// API bundles the booking route groups into one registrable handler.
type API struct {
	bookings     *BookingHandler
	recurring    *RecurringBookingHandler
	availability *AvailabilityHandler
}

func NewAPI(svc service.BookingService, log *logger.Logger) *API {
	return &API{
		bookings:     NewBookingHandler(svc, log),
		recurring:    NewRecurringBookingHandler(svc, log),
		availability: NewAvailabilityHandler(svc, log),
	}
}

func (a *API) RegisterRoutes(router *httprouter.Router) {
	a.bookings.RegisterRoutes(router)
	a.recurring.RegisterRoutes(router)
	a.availability.RegisterRoutes(router)
}
