package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flexspace/internal/bookings/pricing"
	"flexspace/internal/bookings/service"
	apperrors "flexspace/pkg/errors"
	"flexspace/pkg/logger"
	"flexspace/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockBookingService struct {
	createFunc            func(ctx context.Context, booking *model.Booking) error
	getByIDFunc           func(ctx context.Context, id string) (*model.Booking, error)
	checkAvailabilityFunc func(ctx context.Context, roomID string, date time.Time, slot model.TimeSlot) (bool, error)
	quoteFunc             func(ctx context.Context, req *service.QuoteRequest) (*pricing.Quote, error)
}

func (m *mockBookingService) Create(ctx context.Context, booking *model.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	booking.ID = "507f1f77bcf86cd799439022"
	return nil
}

func (m *mockBookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &model.Booking{ID: id}, nil
}

func (m *mockBookingService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
	return []*model.Booking{}, 0, nil
}

func (m *mockBookingService) Update(ctx context.Context, id string, updates *model.BookingUpdate) error {
	return nil
}

func (m *mockBookingService) Cancel(ctx context.Context, id string) error { return nil }
func (m *mockBookingService) Delete(ctx context.Context, id string) error { return nil }

func (m *mockBookingService) SearchByRoom(ctx context.Context, roomID string, from, to *time.Time, limit int, offset int64) ([]*model.Booking, int64, error) {
	return []*model.Booking{}, 0, nil
}

func (m *mockBookingService) CheckAvailability(ctx context.Context, roomID string, date time.Time, slot model.TimeSlot) (bool, error) {
	if m.checkAvailabilityFunc != nil {
		return m.checkAvailabilityFunc(ctx, roomID, date, slot)
	}
	return true, nil
}

func (m *mockBookingService) CreateRecurring(ctx context.Context, rb *model.RecurringBooking) error {
	return nil
}

func (m *mockBookingService) GetRecurringByID(ctx context.Context, id string) (*model.RecurringBooking, error) {
	return &model.RecurringBooking{ID: id}, nil
}

func (m *mockBookingService) GetAllRecurring(ctx context.Context, limit int, offset int64) ([]*model.RecurringBooking, int64, error) {
	return []*model.RecurringBooking{}, 0, nil
}

func (m *mockBookingService) UpdateRecurring(ctx context.Context, id string, updates *model.RecurringBookingUpdate) error {
	return nil
}

func (m *mockBookingService) CancelRecurring(ctx context.Context, id string) error { return nil }

func (m *mockBookingService) Quote(ctx context.Context, req *service.QuoteRequest) (*pricing.Quote, error) {
	if m.quoteFunc != nil {
		return m.quoteFunc(ctx, req)
	}
	return &pricing.Quote{}, nil
}

func (m *mockBookingService) MarkBookingPayment(ctx context.Context, bookingID string, succeeded bool, paymentRef string) error {
	return nil
}

func (m *mockBookingService) MarkRecurringPayment(ctx context.Context, id string, succeeded bool, paymentRef string) error {
	return nil
}

func newTestRouter(svc service.BookingService) *httprouter.Router {
	log := logger.New(logger.Config{
		Level:   logger.ERROR,
		Format:  logger.TEXT,
		Service: "test",
	})
	router := httprouter.New()
	NewAPI(svc, log).RegisterRoutes(router)
	return router
}

func TestCreateBooking_Created(t *testing.T) {
	router := newTestRouter(&mockBookingService{})

	body := `{"room_id":"507f1f77bcf86cd799439011","customer_name":"Jansen BV","customer_email":"office@jansen.nl","date":"2024-01-08T00:00:00Z","slot":"Morning"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data model.Booking `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.ID == "" {
		t.Error("response should carry the assigned ID")
	}
}

func TestCreateBooking_InvalidJSON(t *testing.T) {
	router := newTestRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetBooking_NotFound(t *testing.T) {
	svc := &mockBookingService{
		getByIDFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/id/507f1f77bcf86cd799439022", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCheckAvailability(t *testing.T) {
	svc := &mockBookingService{
		checkAvailabilityFunc: func(ctx context.Context, roomID string, date time.Time, slot model.TimeSlot) (bool, error) {
			return slot == model.SlotMorning, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?room_id=507f1f77bcf86cd799439011&date=2024-01-08&slot=Morning", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data AvailabilityResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Data.Available {
		t.Error("morning should be available")
	}
	if resp.Data.Date != "2024-01-08" {
		t.Errorf("date = %q, want 2024-01-08", resp.Data.Date)
	}
}

func TestCheckAvailability_MissingParams(t *testing.T) {
	router := newTestRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?room_id=abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestQuoteEndpoint(t *testing.T) {
	svc := &mockBookingService{
		quoteFunc: func(ctx context.Context, req *service.QuoteRequest) (*pricing.Quote, error) {
			return &pricing.Quote{
				Occurrences:                8,
				RevenueBeforeDiscountCents: 80000,
				DiscountAmountCents:        8000,
				TotalRevenueCents:          72000,
			}, nil
		},
	}
	router := newTestRouter(svc)

	body := `{"room_id":"507f1f77bcf86cd799439011","start_date":"2024-01-01T00:00:00Z","end_date":"2024-01-28T00:00:00Z","weekdays":["Monday","Wednesday"],"slot":"Morning","pattern":"Weekly","discount_percent":10}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recurring-bookings/quote", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data pricing.Quote `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.TotalRevenueCents != 72000 {
		t.Errorf("total = %d, want 72000", resp.Data.TotalRevenueCents)
	}
}
