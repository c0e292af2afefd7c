package service

import (
	"context"
	"testing"
	"time"

	"flexspace/internal/bookings/events"
	"flexspace/internal/bookings/repository"
	"flexspace/internal/bookings/validator"
	"flexspace/pkg/config"
	mongotx "flexspace/pkg/db/mongo"
	apperrors "flexspace/pkg/errors"
	"flexspace/pkg/logger"
	"flexspace/pkg/model"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	testRoomID    = "507f1f77bcf86cd799439011"
	testBookingID = "507f1f77bcf86cd799439022"
)

type mockBookingRepository struct {
	createFunc            func(ctx context.Context, booking *model.Booking) error
	findByIDFunc          func(ctx context.Context, id string) (*model.Booking, error)
	findAllFunc           func(ctx context.Context, limit int, offset int64) ([]*model.Booking, error)
	updateFunc            func(ctx context.Context, id string, booking *model.Booking) (*mongo.UpdateResult, error)
	findByRoomAndDateFunc func(ctx context.Context, roomID string, date time.Time) ([]*model.Booking, error)
	findByRoomFunc        func(ctx context.Context, roomID string, from, to *time.Time, limit int, offset int64) ([]*model.Booking, error)
	countFunc             func(ctx context.Context) (int64, error)
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	booking.ID = testBookingID
	return nil
}

func (m *mockBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return &model.Booking{ID: id}, nil
}

func (m *mockBookingRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, limit, offset)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) Update(ctx context.Context, id string, booking *model.Booking) (*mongo.UpdateResult, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, booking)
	}
	return &mongo.UpdateResult{MatchedCount: 1}, nil
}

func (m *mockBookingRepository) Delete(ctx context.Context, id string) error { return nil }

func (m *mockBookingRepository) FindByRoomAndDate(ctx context.Context, roomID string, date time.Time) ([]*model.Booking, error) {
	if m.findByRoomAndDateFunc != nil {
		return m.findByRoomAndDateFunc(ctx, roomID, date)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) FindByRoom(ctx context.Context, roomID string, from, to *time.Time, limit int, offset int64) ([]*model.Booking, error) {
	if m.findByRoomFunc != nil {
		return m.findByRoomFunc(ctx, roomID, from, to, limit, offset)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) CountByRoom(ctx context.Context, roomID string, from, to *time.Time) (int64, error) {
	return 0, nil
}

func (m *mockBookingRepository) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func (m *mockBookingRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return fn(nil)
}

type mockRecurringRepository struct {
	createFunc                func(ctx context.Context, rb *model.RecurringBooking) error
	findByIDFunc              func(ctx context.Context, id string) (*model.RecurringBooking, error)
	updateFunc                func(ctx context.Context, id string, rb *model.RecurringBooking) (*mongo.UpdateResult, error)
	findActiveByRoomDateFunc  func(ctx context.Context, roomID string, date time.Time) ([]*model.RecurringBooking, error)
	findByRoomFunc            func(ctx context.Context, roomID string, limit int, offset int64) ([]*model.RecurringBooking, error)
}

func (m *mockRecurringRepository) Create(ctx context.Context, rb *model.RecurringBooking) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, rb)
	}
	rb.ID = testBookingID
	return nil
}

func (m *mockRecurringRepository) FindByID(ctx context.Context, id string) (*model.RecurringBooking, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return &model.RecurringBooking{ID: id}, nil
}

func (m *mockRecurringRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.RecurringBooking, error) {
	return []*model.RecurringBooking{}, nil
}

func (m *mockRecurringRepository) Update(ctx context.Context, id string, rb *model.RecurringBooking) (*mongo.UpdateResult, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, rb)
	}
	return &mongo.UpdateResult{MatchedCount: 1}, nil
}

func (m *mockRecurringRepository) FindActiveByRoomCoveringDate(ctx context.Context, roomID string, date time.Time) ([]*model.RecurringBooking, error) {
	if m.findActiveByRoomDateFunc != nil {
		return m.findActiveByRoomDateFunc(ctx, roomID, date)
	}
	return []*model.RecurringBooking{}, nil
}

func (m *mockRecurringRepository) FindByRoom(ctx context.Context, roomID string, limit int, offset int64) ([]*model.RecurringBooking, error) {
	if m.findByRoomFunc != nil {
		return m.findByRoomFunc(ctx, roomID, limit, offset)
	}
	return []*model.RecurringBooking{}, nil
}

func (m *mockRecurringRepository) CountByRoom(ctx context.Context, roomID string) (int64, error) {
	return 0, nil
}

func (m *mockRecurringRepository) Count(ctx context.Context) (int64, error) { return 0, nil }

func (m *mockRecurringRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return fn(nil)
}

type mockLockRepository struct {
	created []string
	deleted []string
}

func (m *mockLockRepository) Create(ctx context.Context, lock *model.BookingLock) (*model.BookingLock, error) {
	m.created = append(m.created, lock.ID)
	return lock, nil
}

func (m *mockLockRepository) Delete(ctx context.Context, lockID string) error {
	m.deleted = append(m.deleted, lockID)
	return nil
}

type mockRoomGateway struct {
	getRoomFunc func(ctx context.Context, id string) (*model.Room, error)
}

func (m *mockRoomGateway) GetRoom(ctx context.Context, id string) (*model.Room, error) {
	if m.getRoomFunc != nil {
		return m.getRoomFunc(ctx, id)
	}
	return &model.Room{
		ID:                  id,
		Name:                "Atelier",
		Capacity:            8,
		MorningPriceCents:   10000,
		AfternoonPriceCents: 12000,
		NightPriceCents:     8000,
		Active:              true,
	}, nil
}

func newTestService(repo repository.BookingRepository, recurringRepo repository.RecurringBookingRepository, locks repository.BookingLockRepository, rooms RoomGateway) BookingService {
	log := logger.New(logger.Config{
		Level:   logger.ERROR,
		Format:  logger.TEXT,
		Service: "test",
	})
	cfg := &config.Config{
		Log:            log,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   5 * time.Second,
		BookingLockTTL: 10 * time.Second,
	}
	return NewBookingService(repo, recurringRepo, locks, rooms, validator.NewBookingValidator(log), events.NoopPublisher{}, cfg)
}

func validBooking() *model.Booking {
	return &model.Booking{
		RoomID:        testRoomID,
		CustomerName:  "Jansen BV",
		CustomerEmail: "office@jansen.nl",
		Date:          time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC),
		Slot:          model.SlotMorning,
	}
}

func validRecurring() *model.RecurringBooking {
	return &model.RecurringBooking{
		RoomID:        testRoomID,
		CustomerName:  "Jansen BV",
		CustomerEmail: "office@jansen.nl",
		StartDate:     time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC),
		Weekdays:      []model.Weekday{"Monday", "Wednesday"},
		Slot:          model.SlotMorning,
		Pattern:       model.PatternWeekly,
		DiscountPercent: 10,
	}
}

func TestCreate_SetsPriceAndDefaults(t *testing.T) {
	var created *model.Booking
	repo := &mockBookingRepository{
		createFunc: func(ctx context.Context, booking *model.Booking) error {
			booking.ID = testBookingID
			created = booking
			return nil
		},
	}
	locks := &mockLockRepository{}
	svc := newTestService(repo, &mockRecurringRepository{}, locks, &mockRoomGateway{})

	booking := validBooking()
	if err := svc.Create(context.Background(), booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created == nil {
		t.Fatal("booking was not persisted")
	}
	if created.PriceCents != 10000 {
		t.Errorf("price = %d, want 10000 (morning rate)", created.PriceCents)
	}
	if created.Status != model.Upcoming {
		t.Errorf("status = %q, want upcoming", created.Status)
	}
	if len(locks.created) != 1 || len(locks.deleted) != 1 {
		t.Errorf("lock lifecycle: created=%v deleted=%v", locks.created, locks.deleted)
	}
}

func TestCreate_FullDayPrice(t *testing.T) {
	var created *model.Booking
	repo := &mockBookingRepository{
		createFunc: func(ctx context.Context, booking *model.Booking) error {
			created = booking
			return nil
		},
	}
	svc := newTestService(repo, &mockRecurringRepository{}, &mockLockRepository{}, &mockRoomGateway{})

	booking := validBooking()
	booking.Slot = model.SlotFullDay
	if err := svc.Create(context.Background(), booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.PriceCents != 30000 {
		t.Errorf("price = %d, want 30000 (sum of slot prices)", created.PriceCents)
	}
}

func TestCreate_SlotConflict(t *testing.T) {
	repo := &mockBookingRepository{
		findByRoomAndDateFunc: func(ctx context.Context, roomID string, date time.Time) ([]*model.Booking, error) {
			return []*model.Booking{
				{ID: "existing", RoomID: roomID, Date: date, Slot: model.SlotMorning, Status: model.Upcoming},
			}, nil
		},
	}
	locks := &mockLockRepository{}
	svc := newTestService(repo, &mockRecurringRepository{}, locks, &mockRoomGateway{})

	err := svc.Create(context.Background(), validBooking())
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeConflict {
		t.Errorf("code = %q, want %q", apperrors.AsAppError(err).Code, apperrors.CodeConflict)
	}
	if len(locks.deleted) != 1 {
		t.Error("lock should be released on conflict")
	}
}

func TestCreate_BlockedByRecurring(t *testing.T) {
	recurringRepo := &mockRecurringRepository{
		findActiveByRoomDateFunc: func(ctx context.Context, roomID string, date time.Time) ([]*model.RecurringBooking, error) {
			return []*model.RecurringBooking{{
				RoomID:    roomID,
				StartDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
				Weekdays:  []model.Weekday{"Monday"},
				Slot:      model.SlotFullDay,
				Status:    model.Upcoming,
			}}, nil
		},
	}
	svc := newTestService(&mockBookingRepository{}, recurringRepo, &mockLockRepository{}, &mockRoomGateway{})

	// 2024-01-08 is a Monday covered by the recurring FullDay hold.
	err := svc.Create(context.Background(), validBooking())
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeConflict {
		t.Errorf("code = %q, want conflict", apperrors.AsAppError(err).Code)
	}
}

func TestCreate_InactiveRoom(t *testing.T) {
	rooms := &mockRoomGateway{
		getRoomFunc: func(ctx context.Context, id string) (*model.Room, error) {
			return &model.Room{ID: id, Name: "Closed", Capacity: 4, MorningPriceCents: 100, AfternoonPriceCents: 100, NightPriceCents: 100, Active: false}, nil
		},
	}
	svc := newTestService(&mockBookingRepository{}, &mockRecurringRepository{}, &mockLockRepository{}, rooms)

	err := svc.Create(context.Background(), validBooking())
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeConflict {
		t.Errorf("code = %q, want conflict", apperrors.AsAppError(err).Code)
	}
}

func TestCreate_UnknownSlot(t *testing.T) {
	svc := newTestService(&mockBookingRepository{}, &mockRecurringRepository{}, &mockLockRepository{}, &mockRoomGateway{})

	booking := validBooking()
	booking.Slot = "Evening"
	err := svc.Create(context.Background(), booking)
	if err == nil {
		t.Fatal("expected invalid input error")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeInvalidInput {
		t.Errorf("code = %q, want invalid input", apperrors.AsAppError(err).Code)
	}
}

func TestCreateRecurring_DerivesRevenue(t *testing.T) {
	var created *model.RecurringBooking
	recurringRepo := &mockRecurringRepository{
		createFunc: func(ctx context.Context, rb *model.RecurringBooking) error {
			rb.ID = testBookingID
			created = rb
			return nil
		},
	}
	svc := newTestService(&mockBookingRepository{}, recurringRepo, &mockLockRepository{}, &mockRoomGateway{})

	rb := validRecurring()
	if err := svc.CreateRecurring(context.Background(), rb); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created == nil {
		t.Fatal("recurring booking was not persisted")
	}
	if created.Occurrences != 8 {
		t.Errorf("occurrences = %d, want 8", created.Occurrences)
	}
	if created.RevenueBeforeDiscountCents != 80000 {
		t.Errorf("before = %d, want 80000", created.RevenueBeforeDiscountCents)
	}
	if created.DiscountAmountCents != 8000 {
		t.Errorf("discount = %d, want 8000", created.DiscountAmountCents)
	}
	if created.TotalRevenueCents != 72000 {
		t.Errorf("total = %d, want 72000", created.TotalRevenueCents)
	}
}

func TestCreateRecurring_ConflictWithExistingBooking(t *testing.T) {
	repo := &mockBookingRepository{
		findByRoomFunc: func(ctx context.Context, roomID string, from, to *time.Time, limit int, offset int64) ([]*model.Booking, error) {
			// Occupies the first Monday morning of the range.
			return []*model.Booking{
				{ID: "existing", RoomID: roomID, Date: time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC), Slot: model.SlotMorning, Status: model.Upcoming},
			}, nil
		},
	}
	svc := newTestService(repo, &mockRecurringRepository{}, &mockLockRepository{}, &mockRoomGateway{})

	err := svc.CreateRecurring(context.Background(), validRecurring())
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeConflict {
		t.Errorf("code = %q, want conflict", apperrors.AsAppError(err).Code)
	}
}

func TestCreateRecurring_InvalidDateRange(t *testing.T) {
	svc := newTestService(&mockBookingRepository{}, &mockRecurringRepository{}, &mockLockRepository{}, &mockRoomGateway{})

	rb := validRecurring()
	rb.StartDate, rb.EndDate = rb.EndDate, rb.StartDate
	err := svc.CreateRecurring(context.Background(), rb)
	if err == nil {
		t.Fatal("expected invalid input error")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeInvalidInput {
		t.Errorf("code = %q, want invalid input", apperrors.AsAppError(err).Code)
	}
}

func TestQuote(t *testing.T) {
	svc := newTestService(&mockBookingRepository{}, &mockRecurringRepository{}, &mockLockRepository{}, &mockRoomGateway{})

	quote, err := svc.Quote(context.Background(), &QuoteRequest{
		RoomID:          testRoomID,
		StartDate:       time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC),
		Weekdays:        []model.Weekday{"Monday", "Wednesday"},
		Slot:            model.SlotMorning,
		Pattern:         model.PatternWeekly,
		DiscountPercent: 10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if quote.Occurrences != 8 || quote.TotalRevenueCents != 72000 {
		t.Errorf("quote = %+v, want 8 occurrences, 72000 total", quote)
	}
}

func TestQuote_InvalidDiscount(t *testing.T) {
	svc := newTestService(&mockBookingRepository{}, &mockRecurringRepository{}, &mockLockRepository{}, &mockRoomGateway{})

	_, err := svc.Quote(context.Background(), &QuoteRequest{
		RoomID:          testRoomID,
		StartDate:       time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC),
		Weekdays:        []model.Weekday{"Monday"},
		Slot:            model.SlotMorning,
		Pattern:         model.PatternWeekly,
		DiscountPercent: 150,
	})
	if err == nil {
		t.Fatal("expected invalid input error")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeInvalidInput {
		t.Errorf("code = %q, want invalid input", apperrors.AsAppError(err).Code)
	}
}

func TestCancel_Idempotent(t *testing.T) {
	updates := 0
	repo := &mockBookingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			return &model.Booking{ID: id, RoomID: testRoomID, Status: model.Cancelled}, nil
		},
		updateFunc: func(ctx context.Context, id string, booking *model.Booking) (*mongo.UpdateResult, error) {
			updates++
			return &mongo.UpdateResult{MatchedCount: 1}, nil
		},
	}
	svc := newTestService(repo, &mockRecurringRepository{}, &mockLockRepository{}, &mockRoomGateway{})

	if err := svc.Cancel(context.Background(), testBookingID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updates != 0 {
		t.Errorf("cancelled booking should not be written again, got %d updates", updates)
	}
}

func TestMarkBookingPayment(t *testing.T) {
	var updated *model.Booking
	repo := &mockBookingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			return &model.Booking{ID: id, RoomID: testRoomID, Status: model.Upcoming}, nil
		},
		updateFunc: func(ctx context.Context, id string, booking *model.Booking) (*mongo.UpdateResult, error) {
			updated = booking
			return &mongo.UpdateResult{MatchedCount: 1}, nil
		},
	}
	svc := newTestService(repo, &mockRecurringRepository{}, &mockLockRepository{}, &mockRoomGateway{})

	if err := svc.MarkBookingPayment(context.Background(), testBookingID, true, "pay_123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != model.Completed {
		t.Errorf("status = %q, want completed", updated.Status)
	}
	if updated.PaymentRef != "pay_123" {
		t.Errorf("payment_ref = %q, want pay_123", updated.PaymentRef)
	}

	updated = nil
	if err := svc.MarkBookingPayment(context.Background(), testBookingID, false, "pay_456"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != model.Cancelled {
		t.Errorf("status = %q, want cancelled", updated.Status)
	}
}

func TestMarkBookingPayment_SettledBookingIgnored(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		succeeded bool
	}{
		{"late success after cancellation", model.Cancelled, true},
		{"late failure after completion", model.Completed, false},
		{"redelivered success after completion", model.Completed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updates := 0
			repo := &mockBookingRepository{
				findByIDFunc: func(ctx context.Context, id string) (*model.Booking, error) {
					return &model.Booking{ID: id, RoomID: testRoomID, Status: tt.status}, nil
				},
				updateFunc: func(ctx context.Context, id string, booking *model.Booking) (*mongo.UpdateResult, error) {
					updates++
					return &mongo.UpdateResult{MatchedCount: 1}, nil
				},
			}
			svc := newTestService(repo, &mockRecurringRepository{}, &mockLockRepository{}, &mockRoomGateway{})

			if err := svc.MarkBookingPayment(context.Background(), testBookingID, tt.succeeded, "pay_late"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if updates != 0 {
				t.Errorf("%s booking should not be written by a payment event, got %d updates", tt.status, updates)
			}
		})
	}
}

func TestMarkRecurringPayment_SettledBookingIgnored(t *testing.T) {
	updates := 0
	recurring := &mockRecurringRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.RecurringBooking, error) {
			return &model.RecurringBooking{ID: id, RoomID: testRoomID, Status: model.Cancelled}, nil
		},
		updateFunc: func(ctx context.Context, id string, rb *model.RecurringBooking) (*mongo.UpdateResult, error) {
			updates++
			return &mongo.UpdateResult{MatchedCount: 1}, nil
		},
	}
	svc := newTestService(&mockBookingRepository{}, recurring, &mockLockRepository{}, &mockRoomGateway{})

	if err := svc.MarkRecurringPayment(context.Background(), testBookingID, true, "pay_late"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updates != 0 {
		t.Errorf("cancelled recurring booking should not be written by a payment event, got %d updates", updates)
	}
}

func TestCheckAvailability(t *testing.T) {
	repo := &mockBookingRepository{
		findByRoomAndDateFunc: func(ctx context.Context, roomID string, date time.Time) ([]*model.Booking, error) {
			return []*model.Booking{
				{ID: "existing", RoomID: roomID, Date: date, Slot: model.SlotNight, Status: model.Upcoming},
			}, nil
		},
	}
	svc := newTestService(repo, &mockRecurringRepository{}, &mockLockRepository{}, &mockRoomGateway{})

	monday := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)

	free, err := svc.CheckAvailability(context.Background(), testRoomID, monday, model.SlotMorning)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !free {
		t.Error("morning should be free")
	}

	free, err = svc.CheckAvailability(context.Background(), testRoomID, monday, model.SlotNight)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if free {
		t.Error("night should be blocked")
	}

	if _, err := svc.CheckAvailability(context.Background(), testRoomID, monday, "Evening"); err == nil {
		t.Error("unknown slot should be rejected")
	}
}

func TestGetAll_Parallel(t *testing.T) {
	repo := &mockBookingRepository{
		countFunc: func(ctx context.Context) (int64, error) {
			time.Sleep(5 * time.Millisecond)
			return 42, nil
		},
		findAllFunc: func(ctx context.Context, limit int, offset int64) ([]*model.Booking, error) {
			time.Sleep(5 * time.Millisecond)
			return []*model.Booking{{ID: testBookingID}}, nil
		},
	}
	svc := newTestService(repo, &mockRecurringRepository{}, &mockLockRepository{}, &mockRoomGateway{})

	for i := 0; i < 10; i++ {
		bookings, count, err := svc.GetAll(context.Background(), 10, 0)
		if err != nil {
			t.Fatalf("iteration %d: unexpected error: %v", i, err)
		}
		if count != 42 {
			t.Errorf("iteration %d: count = %d, want 42", i, count)
		}
		if len(bookings) != 1 {
			t.Errorf("iteration %d: got %d bookings, want 1", i, len(bookings))
		}
	}
}
