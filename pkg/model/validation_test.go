package model

import (
	"regexp"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
)

var timeOfDayRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	err := v.RegisterValidation("valid_time_of_day", func(fl validator.FieldLevel) bool {
		return timeOfDayRegex.MatchString(fl.Field().String())
	})
	if err != nil {
		t.Fatalf("failed to register valid_time_of_day: %v", err)
	}
	return v
}

func validRoom() *Room {
	return &Room{
		Name:                "Boardroom Delta",
		Floor:               2,
		Capacity:            12,
		Amenities:           []string{"whiteboard", "screen"},
		MorningPriceCents:   4500,
		AfternoonPriceCents: 5500,
		NightPriceCents:     3500,
		ContactPhone:        "+31612345678",
		Active:              true,
	}
}

func TestRoom_Validation(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name        string
		mutate      func(r *Room)
		expectValid bool
	}{
		{"valid room", func(r *Room) {}, true},
		{"missing name", func(r *Room) { r.Name = "" }, false},
		{"name too short", func(r *Room) { r.Name = "A" }, false},
		{"zero capacity", func(r *Room) { r.Capacity = 0 }, false},
		{"negative morning price", func(r *Room) { r.MorningPriceCents = -100 }, false},
		{"invalid phone", func(r *Room) { r.ContactPhone = "0612345678" }, false},
		{"no phone is fine", func(r *Room) { r.ContactPhone = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := validRoom()
			tt.mutate(room)
			err := v.Struct(room)
			if tt.expectValid && err != nil {
				t.Errorf("expected valid, got: %v", err)
			}
			if !tt.expectValid && err == nil {
				t.Error("expected validation error, got none")
			}
		})
	}
}

func TestRoom_SlotPriceCents(t *testing.T) {
	room := validRoom()

	tests := []struct {
		slot string
		want int64
	}{
		{"Morning", 4500},
		{"Afternoon", 5500},
		{"Night", 3500},
		{"FullDay", 13500},
		{"Brunch", 0},
	}

	for _, tt := range tests {
		if got := room.SlotPriceCents(tt.slot); got != tt.want {
			t.Errorf("SlotPriceCents(%s) = %d, want %d", tt.slot, got, tt.want)
		}
	}
}

func TestBooking_Validation(t *testing.T) {
	v := newTestValidator(t)

	valid := func() *Booking {
		return &Booking{
			RoomID:        "507f1f77bcf86cd799439011",
			CustomerName:  "Femke de Vries",
			CustomerEmail: "femke@example.com",
			Date:          time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			Slot:          "Morning",
			PriceCents:    4500,
			Status:        "upcoming",
		}
	}

	tests := []struct {
		name        string
		mutate      func(b *Booking)
		expectValid bool
	}{
		{"valid booking", func(b *Booking) {}, true},
		{"missing room id", func(b *Booking) { b.RoomID = "" }, false},
		{"room id not an object id", func(b *Booking) { b.RoomID = "room-1" }, false},
		{"bad email", func(b *Booking) { b.CustomerEmail = "not-an-email" }, false},
		{"unknown slot", func(b *Booking) { b.Slot = "Midnight" }, false},
		{"unknown status", func(b *Booking) { b.Status = "pending" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid()
			tt.mutate(b)
			err := v.Struct(b)
			if tt.expectValid && err != nil {
				t.Errorf("expected valid, got: %v", err)
			}
			if !tt.expectValid && err == nil {
				t.Error("expected validation error, got none")
			}
		})
	}
}

func TestRecurringBooking_Validation(t *testing.T) {
	v := newTestValidator(t)

	valid := func() *RecurringBooking {
		return &RecurringBooking{
			RoomID:        "507f1f77bcf86cd799439011",
			CustomerName:  "Jeroen Bakker",
			CustomerEmail: "jeroen@example.com",
			StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:       time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			Weekdays:      []string{"Monday", "Wednesday"},
			Slot:          "FullDay",
			Pattern:       "Weekly",
			Status:        "upcoming",
		}
	}

	tests := []struct {
		name        string
		mutate      func(rb *RecurringBooking)
		expectValid bool
	}{
		{"valid recurring booking", func(rb *RecurringBooking) {}, true},
		{"no weekdays", func(rb *RecurringBooking) { rb.Weekdays = nil }, false},
		{"bad weekday name", func(rb *RecurringBooking) { rb.Weekdays = []string{"Mondag"} }, false},
		{"unknown pattern", func(rb *RecurringBooking) { rb.Pattern = "Fortnightly" }, false},
		{"discount above cap", func(rb *RecurringBooking) { rb.DiscountPercent = 101 }, false},
		{"discount at cap", func(rb *RecurringBooking) { rb.DiscountPercent = 100 }, true},
		{"negative revenue", func(rb *RecurringBooking) { rb.TotalRevenueCents = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := valid()
			tt.mutate(rb)
			err := v.Struct(rb)
			if tt.expectValid && err != nil {
				t.Errorf("expected valid, got: %v", err)
			}
			if !tt.expectValid && err == nil {
				t.Error("expected validation error, got none")
			}
		})
	}
}

func TestSiteSettings_Validation(t *testing.T) {
	v := newTestValidator(t)

	valid := func() *SiteSettings {
		return &SiteSettings{
			SiteName:           "Amsterdam Zuid",
			OpenDays:           []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
			MorningStart:       "08:00",
			MorningEnd:         "12:00",
			AfternoonStart:     "12:00",
			AfternoonEnd:       "17:00",
			NightStart:         "17:00",
			NightEnd:           "22:00",
			TimeZone:           "Europe/Amsterdam",
			Currency:           "EUR",
			MaxDiscountPercent: 30,
		}
	}

	tests := []struct {
		name        string
		mutate      func(s *SiteSettings)
		expectValid bool
	}{
		{"valid settings", func(s *SiteSettings) {}, true},
		{"empty open days", func(s *SiteSettings) { s.OpenDays = []string{} }, false},
		{"bad time of day", func(s *SiteSettings) { s.MorningStart = "8am" }, false},
		{"hour out of range", func(s *SiteSettings) { s.NightEnd = "25:00" }, false},
		{"bad time zone", func(s *SiteSettings) { s.TimeZone = "Mars/Olympus" }, false},
		{"bad currency", func(s *SiteSettings) { s.Currency = "EURO" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)
			err := v.Struct(s)
			if tt.expectValid && err != nil {
				t.Errorf("expected valid, got: %v", err)
			}
			if !tt.expectValid && err == nil {
				t.Error("expected validation error, got none")
			}
		})
	}
}
