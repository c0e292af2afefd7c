package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"flexspace/internal/bookings/availability"
	bookingserrors "flexspace/internal/bookings/errors"
	"flexspace/internal/bookings/events"
	"flexspace/internal/bookings/pricing"
	"flexspace/internal/bookings/repository"
	"flexspace/internal/bookings/validator"
	"flexspace/pkg/client"
	"flexspace/pkg/config"
	apperrors "flexspace/pkg/errors"
	"flexspace/pkg/model"
	"flexspace/pkg/sanitizer"

	"go.mongodb.org/mongo-driver/mongo"
)

// maxConflictScan caps how many existing bookings one conflict check
// will load. A single room cannot realistically carry more active
// bookings than this inside one recurring range.
const maxConflictScan = 500

// RoomGateway resolves rooms from the rooms service. Pulled out as an
// interface so service tests can stub it.
type RoomGateway interface {
	GetRoom(ctx context.Context, id string) (*model.Room, error)
}

type httpRoomGateway struct {
	rooms *client.RoomClient
}

func NewHTTPRoomGateway(rooms *client.RoomClient) RoomGateway {
	return &httpRoomGateway{rooms: rooms}
}

func (g *httpRoomGateway) GetRoom(ctx context.Context, id string) (*model.Room, error) {
	resp, err := g.rooms.GetByID(id)
	if err != nil {
		return nil, apperrors.Unavailable("Rooms service is unreachable")
	}
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, apperrors.NotFoundWithID("Room", id)
	case http.StatusBadRequest:
		return nil, apperrors.InvalidInput("Invalid room ID format")
	default:
		return nil, apperrors.Internal("Rooms service returned an error", errors.New(client.GetErrorMessage(resp)))
	}

	room, err := g.rooms.DecodeRoom(resp)
	if err != nil {
		return nil, apperrors.Internal("Failed to decode room", err)
	}
	return room, nil
}

// QuoteRequest is the input of the quote operation. It mirrors the
// recurring booking fields that drive pricing, without any customer
// details.
type QuoteRequest struct {
	RoomID          string                   `json:"room_id" validate:"required,mongodb"`
	StartDate       time.Time                `json:"start_date" validate:"required"`
	EndDate         time.Time                `json:"end_date" validate:"required"`
	Weekdays        []model.Weekday         `json:"weekdays" validate:"required,min=1,max=7"`
	Slot            model.TimeSlot          `json:"slot" validate:"required"`
	Pattern         model.RecurrencePattern `json:"pattern" validate:"required"`
	DiscountPercent int                      `json:"discount_percent" validate:"min=0,max=100"`
}

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error)
	Update(ctx context.Context, id string, updates *model.BookingUpdate) error
	Cancel(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	SearchByRoom(ctx context.Context, roomID string, from, to *time.Time, limit int, offset int64) ([]*model.Booking, int64, error)
	CheckAvailability(ctx context.Context, roomID string, date time.Time, slot model.TimeSlot) (bool, error)

	CreateRecurring(ctx context.Context, rb *model.RecurringBooking) error
	GetRecurringByID(ctx context.Context, id string) (*model.RecurringBooking, error)
	GetAllRecurring(ctx context.Context, limit int, offset int64) ([]*model.RecurringBooking, int64, error)
	UpdateRecurring(ctx context.Context, id string, updates *model.RecurringBookingUpdate) error
	CancelRecurring(ctx context.Context, id string) error
	Quote(ctx context.Context, req *QuoteRequest) (*pricing.Quote, error)

	MarkBookingPayment(ctx context.Context, bookingID string, succeeded bool, paymentRef string) error
	MarkRecurringPayment(ctx context.Context, id string, succeeded bool, paymentRef string) error
}

type bookingService struct {
	repo          repository.BookingRepository
	recurringRepo repository.RecurringBookingRepository
	lockRepo      repository.BookingLockRepository
	rooms         RoomGateway
	validator     *validator.BookingValidator
	publisher     events.Publisher
	cfg           *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	recurringRepo repository.RecurringBookingRepository,
	lockRepo repository.BookingLockRepository,
	rooms RoomGateway,
	validator *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:          repo,
		recurringRepo: recurringRepo,
		lockRepo:      lockRepo,
		rooms:         rooms,
		validator:     validator,
		publisher:     publisher,
		cfg:           cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	s.applyDefaults(booking)
	s.sanitize(booking)

	if err := availability.ValidateSlot(booking.Slot); err != nil {
		return apperrors.InvalidInput(fmt.Sprintf("Unknown time slot: %s", booking.Slot))
	}

	room, err := s.rooms.GetRoom(ctx, booking.RoomID)
	if err != nil {
		return err
	}
	if !room.Active {
		return apperrors.Conflict("Room is not open for booking")
	}
	booking.PriceCents = room.SlotPriceCents(booking.Slot)

	if err := s.validate(booking); err != nil {
		return err
	}

	// Advisory lock so two concurrent requests cannot both pass the
	// conflict scan for the same slot.
	lockID, err := s.acquireSlotLock(ctx, booking.RoomID, booking.Date, booking.Slot)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := s.releaseSlotLock(ctx, lockID); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release booking lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.verifySlotFree(sessCtx, booking.RoomID, booking.Date, booking.Slot, ""); err != nil {
			return err
		}
		if err := s.repo.Create(sessCtx, booking); err != nil {
			return apperrors.Internal("Failed to create booking", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return err
	}

	s.publisher.BookingCreated(ctx, booking)

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"room_id", booking.RoomID,
		"date", booking.Date.Format("2006-01-02"),
		"slot", booking.Slot,
		"price_cents", booking.PriceCents,
	)
	return nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	return booking, nil
}

func (s *bookingService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count bookings", "error", errCount)
			errCount = apperrors.Internal("Failed to count bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list bookings", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

func (s *bookingService) Update(ctx context.Context, id string, updates *model.BookingUpdate) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.cfg.Log.Warn("Booking update validation failed", "id", id, "error", err)
		return apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	merged := s.mergeBookingUpdates(existing, updates)
	s.sanitize(merged)

	// A changed date or slot means a different physical slot: reprice
	// it and re-run the conflict scan.
	slotChanged := updates.Slot != "" && updates.Slot != existing.Slot
	dateChanged := updates.Date != nil && !pricing.NormalizeDate(*updates.Date).Equal(existing.Date)
	if slotChanged || dateChanged {
		room, err := s.rooms.GetRoom(ctx, merged.RoomID)
		if err != nil {
			return err
		}
		merged.PriceCents = room.SlotPriceCents(merged.Slot)
	}

	if err := s.validate(merged); err != nil {
		return err
	}

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if slotChanged || dateChanged {
			if err := s.verifySlotFree(sessCtx, merged.RoomID, merged.Date, merged.Slot, id); err != nil {
				return err
			}
		}
		if _, err := s.repo.Update(sessCtx, id, merged); err != nil {
			return apperrors.Internal("Failed to update booking", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to update booking", "id", id, "error", err)
		return err
	}

	s.cfg.Log.Info("Booking updated successfully", "id", id)
	return nil
}

// Cancel is idempotent: cancelling an already cancelled booking is a
// no-op.
func (s *bookingService) Cancel(ctx context.Context, id string) error {
	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if booking.Status == model.Cancelled {
		return nil
	}

	booking.Status = model.Cancelled
	if _, err := s.repo.Update(ctx, id, booking); err != nil {
		s.cfg.Log.Error("Failed to cancel booking", "id", id, "error", err)
		return apperrors.Internal("Failed to cancel booking", err)
	}

	s.publisher.BookingCancelled(ctx, booking)
	s.cfg.Log.Info("Booking cancelled", "id", id)
	return nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	err := s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.repo.Delete(sessCtx, id); err != nil {
			if errors.Is(err, bookingserrors.ErrNotFound) {
				return apperrors.NotFoundWithID("Booking", id)
			}
			if errors.Is(err, bookingserrors.ErrInvalidID) {
				return apperrors.InvalidInput("Invalid booking ID format")
			}
			return apperrors.Internal("Failed to delete booking", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cfg.Log.Info("Booking deleted successfully", "id", id)
	return nil
}

func (s *bookingService) SearchByRoom(ctx context.Context, roomID string, from, to *time.Time, limit int, offset int64) ([]*model.Booking, int64, error) {
	if roomID == "" {
		return nil, 0, apperrors.InvalidInput("Room ID is required")
	}

	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		var err error
		count, err = s.repo.CountByRoom(ctx, roomID, from, to)
		if err != nil {
			s.cfg.Log.Error("Failed to count bookings by room", "room_id", roomID, "error", err)
			errCount = apperrors.Internal("Failed to count bookings", err)
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		bookings, err = s.repo.FindByRoom(ctx, roomID, from, to, limit, offset)
		if err != nil {
			s.cfg.Log.Error("Failed to search bookings",
				"room_id", roomID,
				"limit", limit,
				"offset", offset,
				"error", err,
			)
			errFind = apperrors.Internal("Failed to search bookings", err)
		}
	}()

	wg.Wait()

	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

func (s *bookingService) CheckAvailability(ctx context.Context, roomID string, date time.Time, slot model.TimeSlot) (bool, error) {
	if roomID == "" {
		return false, apperrors.InvalidInput("Room ID is required")
	}
	if err := availability.ValidateSlot(slot); err != nil {
		return false, apperrors.InvalidInput(fmt.Sprintf("Unknown time slot: %s", slot))
	}

	date = pricing.NormalizeDate(date)

	bookings, err := s.repo.FindByRoomAndDate(ctx, roomID, date)
	if err != nil {
		return false, apperrors.Internal("Failed to load bookings", err)
	}
	recurring, err := s.recurringRepo.FindActiveByRoomCoveringDate(ctx, roomID, date)
	if err != nil {
		return false, apperrors.Internal("Failed to load recurring bookings", err)
	}

	return availability.RoomFree(bookings, recurring, date, slot), nil
}

func (s *bookingService) CreateRecurring(ctx context.Context, rb *model.RecurringBooking) error {
	s.applyRecurringDefaults(rb)
	s.sanitizeRecurring(rb)

	if err := availability.ValidateSlot(rb.Slot); err != nil {
		return apperrors.InvalidInput(fmt.Sprintf("Unknown time slot: %s", rb.Slot))
	}

	room, err := s.rooms.GetRoom(ctx, rb.RoomID)
	if err != nil {
		return err
	}
	if !room.Active {
		return apperrors.Conflict("Room is not open for booking")
	}

	quote, err := pricing.QuoteRecurring(rb.StartDate, rb.EndDate, rb.Weekdays, rb.Pattern, room.SlotPriceCents(rb.Slot), rb.DiscountPercent)
	if err != nil {
		return translatePricingError(err)
	}
	rb.Occurrences = quote.Occurrences
	rb.RevenueBeforeDiscountCents = quote.RevenueBeforeDiscountCents
	rb.DiscountAmountCents = quote.DiscountAmountCents
	rb.TotalRevenueCents = quote.TotalRevenueCents

	if err := s.validateRecurring(rb); err != nil {
		return err
	}

	lockID, err := s.acquireRecurringLock(ctx, rb.RoomID, rb.Slot)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := s.releaseSlotLock(ctx, lockID); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release recurring lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	err = s.recurringRepo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.verifyRecurringFree(sessCtx, rb); err != nil {
			return err
		}
		if err := s.recurringRepo.Create(sessCtx, rb); err != nil {
			return apperrors.Internal("Failed to create recurring booking", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create recurring booking", "error", err)
		return err
	}

	s.publisher.RecurringCreated(ctx, rb)

	s.cfg.Log.Info("Recurring booking created successfully",
		"id", rb.ID,
		"room_id", rb.RoomID,
		"pattern", rb.Pattern,
		"occurrences", rb.Occurrences,
		"total_revenue_cents", rb.TotalRevenueCents,
	)
	return nil
}

func (s *bookingService) GetRecurringByID(ctx context.Context, id string) (*model.RecurringBooking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Recurring booking ID cannot be empty")
	}

	rb, err := s.recurringRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Recurring booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid recurring booking ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve recurring booking", err)
	}

	return rb, nil
}

func (s *bookingService) GetAllRecurring(ctx context.Context, limit int, offset int64) ([]*model.RecurringBooking, int64, error) {
	var count int64
	var rbs []*model.RecurringBooking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.recurringRepo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count recurring bookings", "error", errCount)
			errCount = apperrors.Internal("Failed to count recurring bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		rbs, errFind = s.recurringRepo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list recurring bookings", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve recurring bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return rbs, count, nil
}

func (s *bookingService) UpdateRecurring(ctx context.Context, id string, updates *model.RecurringBookingUpdate) error {
	existing, err := s.GetRecurringByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.validator.ValidateRecurringUpdate(updates); err != nil {
		s.cfg.Log.Warn("Recurring booking update validation failed", "id", id, "error", err)
		return apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	wasCancelled := existing.Status == model.Cancelled

	merged := *existing
	if updates.CustomerName != "" {
		merged.CustomerName = updates.CustomerName
	}
	if updates.CustomerEmail != "" {
		merged.CustomerEmail = updates.CustomerEmail
	}
	if updates.CustomerPhone != "" {
		merged.CustomerPhone = updates.CustomerPhone
	}
	if updates.Status != "" {
		merged.Status = updates.Status
	}
	s.sanitizeRecurring(&merged)

	if err := s.validateRecurring(&merged); err != nil {
		return err
	}

	if _, err := s.recurringRepo.Update(ctx, id, &merged); err != nil {
		s.cfg.Log.Error("Failed to update recurring booking", "id", id, "error", err)
		return apperrors.Internal("Failed to update recurring booking", err)
	}

	if !wasCancelled && merged.Status == model.Cancelled {
		s.publisher.RecurringCancelled(ctx, &merged)
	}

	s.cfg.Log.Info("Recurring booking updated successfully", "id", id)
	return nil
}

func (s *bookingService) CancelRecurring(ctx context.Context, id string) error {
	rb, err := s.GetRecurringByID(ctx, id)
	if err != nil {
		return err
	}
	if rb.Status == model.Cancelled {
		return nil
	}

	rb.Status = model.Cancelled
	if _, err := s.recurringRepo.Update(ctx, id, rb); err != nil {
		s.cfg.Log.Error("Failed to cancel recurring booking", "id", id, "error", err)
		return apperrors.Internal("Failed to cancel recurring booking", err)
	}

	s.publisher.RecurringCancelled(ctx, rb)
	s.cfg.Log.Info("Recurring booking cancelled", "id", id)
	return nil
}

// Quote prices a recurring booking without persisting anything.
func (s *bookingService) Quote(ctx context.Context, req *QuoteRequest) (*pricing.Quote, error) {
	if req == nil {
		return nil, apperrors.InvalidInput("Quote request cannot be empty")
	}

	req.Weekdays = sanitizer.NormalizeWeekdays(req.Weekdays)

	if err := availability.ValidateSlot(req.Slot); err != nil {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Unknown time slot: %s", req.Slot))
	}

	room, err := s.rooms.GetRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}

	quote, err := pricing.QuoteRecurring(req.StartDate, req.EndDate, req.Weekdays, req.Pattern, room.SlotPriceCents(req.Slot), req.DiscountPercent)
	if err != nil {
		return nil, translatePricingError(err)
	}
	return quote, nil
}

// MarkBookingPayment applies a payment outcome. Only upcoming bookings
// accept an outcome: redelivered or late events against a booking that
// already completed or was cancelled are skipped, so a stale
// payment.succeeded can never pull a cancelled booking back to life.
func (s *bookingService) MarkBookingPayment(ctx context.Context, bookingID string, succeeded bool, paymentRef string) error {
	booking, err := s.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.Status != model.Upcoming {
		s.cfg.Log.Info("Skipping payment outcome for settled booking",
			"id", bookingID, "status", booking.Status, "payment_ref", paymentRef)
		return nil
	}

	target := model.Completed
	if !succeeded {
		target = model.Cancelled
	}

	booking.Status = target
	booking.PaymentRef = paymentRef
	if _, err := s.repo.Update(ctx, bookingID, booking); err != nil {
		s.cfg.Log.Error("Failed to apply payment outcome", "id", bookingID, "error", err)
		return apperrors.Internal("Failed to apply payment outcome", err)
	}

	if succeeded {
		s.publisher.BookingCompleted(ctx, booking)
	} else {
		s.publisher.BookingCancelled(ctx, booking)
	}

	s.cfg.Log.Info("Payment outcome applied", "id", bookingID, "status", target, "payment_ref", paymentRef)
	return nil
}

func (s *bookingService) MarkRecurringPayment(ctx context.Context, id string, succeeded bool, paymentRef string) error {
	rb, err := s.GetRecurringByID(ctx, id)
	if err != nil {
		return err
	}

	if rb.Status != model.Upcoming {
		s.cfg.Log.Info("Skipping payment outcome for settled recurring booking",
			"id", id, "status", rb.Status, "payment_ref", paymentRef)
		return nil
	}

	target := model.Completed
	if !succeeded {
		target = model.Cancelled
	}

	rb.Status = target
	if _, err := s.recurringRepo.Update(ctx, id, rb); err != nil {
		s.cfg.Log.Error("Failed to apply payment outcome", "id", id, "error", err)
		return apperrors.Internal("Failed to apply payment outcome", err)
	}

	if !succeeded {
		s.publisher.RecurringCancelled(ctx, rb)
	}

	s.cfg.Log.Info("Payment outcome applied", "id", id, "status", target, "payment_ref", paymentRef)
	return nil
}

// --- Helpers ---

func (s *bookingService) sanitize(b *model.Booking) {
	b.CustomerName = sanitizer.NormalizeName(b.CustomerName)
	b.CustomerEmail = sanitizer.NormalizeEmail(b.CustomerEmail)
	b.CustomerPhone = sanitizer.NormalizePhone(b.CustomerPhone)
}

func (s *bookingService) applyDefaults(b *model.Booking) {
	if b.Status == "" {
		b.Status = model.Upcoming
	}
	b.Date = pricing.NormalizeDate(b.Date)
}

func (s *bookingService) sanitizeRecurring(rb *model.RecurringBooking) {
	rb.CustomerName = sanitizer.NormalizeName(rb.CustomerName)
	rb.CustomerEmail = sanitizer.NormalizeEmail(rb.CustomerEmail)
	rb.CustomerPhone = sanitizer.NormalizePhone(rb.CustomerPhone)
	rb.Weekdays = sanitizer.NormalizeWeekdays(rb.Weekdays)
}

func (s *bookingService) applyRecurringDefaults(rb *model.RecurringBooking) {
	if rb.Status == "" {
		rb.Status = model.Upcoming
	}
	rb.StartDate = pricing.NormalizeDate(rb.StartDate)
	rb.EndDate = pricing.NormalizeDate(rb.EndDate)
}

func (s *bookingService) mergeBookingUpdates(existing *model.Booking, updates *model.BookingUpdate) *model.Booking {
	merged := *existing

	if updates.CustomerName != "" {
		merged.CustomerName = updates.CustomerName
	}
	if updates.CustomerEmail != "" {
		merged.CustomerEmail = updates.CustomerEmail
	}
	if updates.CustomerPhone != "" {
		merged.CustomerPhone = updates.CustomerPhone
	}
	if updates.Date != nil {
		merged.Date = pricing.NormalizeDate(*updates.Date)
	}
	if updates.Slot != "" {
		merged.Slot = updates.Slot
	}
	if updates.Status != "" {
		merged.Status = updates.Status
	}
	if updates.PaymentRef != "" {
		merged.PaymentRef = updates.PaymentRef
	}

	return &merged
}

func (s *bookingService) validate(booking *model.Booking) error {
	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}

func (s *bookingService) validateRecurring(rb *model.RecurringBooking) error {
	if err := s.validator.ValidateRecurring(rb); err != nil {
		s.cfg.Log.Warn("Recurring booking validation failed", "error", err)
		return apperrors.Validation("Recurring booking validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}

func translatePricingError(err error) error {
	switch {
	case errors.Is(err, bookingserrors.ErrInvalidDateRange),
		errors.Is(err, bookingserrors.ErrNoWeekdays),
		errors.Is(err, bookingserrors.ErrInvalidRecurrencePattern),
		errors.Is(err, bookingserrors.ErrInvalidDiscount),
		errors.Is(err, bookingserrors.ErrInvalidTimeSlot):
		return apperrors.InvalidInput(err.Error())
	}
	return apperrors.Internal("Failed to compute quote", err)
}

// verifySlotFree runs the conflict scan for a single date and slot.
// excludeID skips the booking being updated.
func (s *bookingService) verifySlotFree(ctx context.Context, roomID string, date time.Time, slot model.TimeSlot, excludeID string) error {
	bookings, err := s.repo.FindByRoomAndDate(ctx, roomID, date)
	if err != nil {
		return apperrors.Internal("Failed to check existing bookings", err)
	}
	recurring, err := s.recurringRepo.FindActiveByRoomCoveringDate(ctx, roomID, date)
	if err != nil {
		return apperrors.Internal("Failed to check recurring bookings", err)
	}

	for _, b := range bookings {
		if b.ID == excludeID {
			continue
		}
		if availability.BookingBlocks(b, date, slot) {
			return apperrors.Conflict(fmt.Sprintf(
				"Room is already booked on %s (%s)", date.Format("2006-01-02"), b.Slot,
			))
		}
	}
	for _, rb := range recurring {
		if availability.RecurringBlocks(rb, date, slot) {
			return apperrors.Conflict(fmt.Sprintf(
				"Room is held by a recurring booking on %s (%s)", date.Format("2006-01-02"), rb.Slot,
			))
		}
	}
	return nil
}

// verifyRecurringFree checks every date the new recurring booking
// would occupy against the room's existing bookings.
func (s *bookingService) verifyRecurringFree(ctx context.Context, rb *model.RecurringBooking) error {
	from, to := rb.StartDate, rb.EndDate

	existing, err := s.repo.FindByRoom(ctx, rb.RoomID, &from, &to, maxConflictScan, 0)
	if err != nil {
		return apperrors.Internal("Failed to check existing bookings", err)
	}
	existingRecurring, err := s.recurringRepo.FindByRoom(ctx, rb.RoomID, maxConflictScan, 0)
	if err != nil {
		return apperrors.Internal("Failed to check recurring bookings", err)
	}

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		if !weekdaySelected(rb.Weekdays, day) {
			continue
		}
		if !availability.RoomFree(existing, existingRecurring, day, rb.Slot) {
			return apperrors.Conflict(fmt.Sprintf(
				"Room is not free on %s (%s)", day.Format("2006-01-02"), rb.Slot,
			))
		}
	}
	return nil
}

func weekdaySelected(weekdays []model.Weekday, day time.Time) bool {
	name := day.Weekday().String()
	for _, wd := range weekdays {
		if sanitizer.NormalizeWeekday(wd) == name {
			return true
		}
	}
	return false
}

// acquireSlotLock creates an advisory lock for one room/date/slot.
func (s *bookingService) acquireSlotLock(ctx context.Context, roomID string, date time.Time, slot model.TimeSlot) (string, error) {
	lockID := fmt.Sprintf("booking_lock_%s_%s_%s", roomID, date.Format("2006-01-02"), slot)
	return s.acquireLock(ctx, lockID)
}

// acquireRecurringLock serializes recurring creation per room and slot.
func (s *bookingService) acquireRecurringLock(ctx context.Context, roomID string, slot model.TimeSlot) (string, error) {
	lockID := fmt.Sprintf("recurring_lock_%s_%s", roomID, slot)
	return s.acquireLock(ctx, lockID)
}

func (s *bookingService) acquireLock(ctx context.Context, lockID string) (string, error) {
	lock := &model.BookingLock{ID: lockID}

	_, err := s.lockRepo.Create(ctx, lock)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", apperrors.Conflict("This slot is currently being booked by another request. Please try again.")
		}
		return "", apperrors.Internal("Failed to acquire booking lock", err)
	}

	return lockID, nil
}

func (s *bookingService) releaseSlotLock(ctx context.Context, lockID string) error {
	return s.lockRepo.Delete(ctx, lockID)
}
