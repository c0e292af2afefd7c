package model

import "time"

// RecurringBooking is a repeating reservation over a date range. The
// derived revenue figures are computed once at creation time and
// persisted, so historical bookings keep the price they were sold at
// even if room rates change later.
type RecurringBooking struct {
	ID            string           `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	RoomID        string           `json:"room_id" bson:"room_id" validate:"required,mongodb"`
	CustomerName  string           `json:"customer_name" bson:"customer_name" validate:"required,min=2,max=100"`
	CustomerEmail string           `json:"customer_email" bson:"customer_email" validate:"required,email"`
	CustomerPhone string           `json:"customer_phone,omitempty" bson:"customer_phone" validate:"omitempty,e164"`
	StartDate     time.Time        `json:"start_date" bson:"start_date" validate:"required"`
	EndDate       time.Time        `json:"end_date" bson:"end_date" validate:"required"`
	Weekdays      []Weekday `json:"weekdays" bson:"weekdays" validate:"required,min=1,max=7,dive,oneof=Sunday Monday Tuesday Wednesday Thursday Friday Saturday"`
	Slot          string           `json:"slot" bson:"slot" validate:"required,oneof=Morning Afternoon Night FullDay"`
	Pattern       string           `json:"pattern" bson:"pattern" validate:"required,oneof=Weekly Bi-Weekly Monthly"`

	// DiscountPercent is the whole-percent discount applied to the
	// recurring total, 0 to 100 inclusive.
	DiscountPercent int `json:"discount_percent" bson:"discount_percent" validate:"min=0,max=100"`

	Occurrences                int   `json:"occurrences" bson:"occurrences" validate:"min=0"`
	RevenueBeforeDiscountCents int64 `json:"revenue_before_discount_cents" bson:"revenue_before_discount_cents" validate:"min=0"`
	DiscountAmountCents        int64 `json:"discount_amount_cents" bson:"discount_amount_cents" validate:"min=0"`
	TotalRevenueCents          int64 `json:"total_revenue_cents" bson:"total_revenue_cents" validate:"min=0"`

	Status    string    `json:"status" bson:"status" validate:"required,oneof=upcoming completed cancelled"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

type RecurringBookingUpdate struct {
	CustomerName  string `json:"customer_name,omitempty" validate:"omitempty,min=2,max=100"`
	CustomerEmail string `json:"customer_email,omitempty" validate:"omitempty,email"`
	CustomerPhone string `json:"customer_phone,omitempty" validate:"omitempty,e164"`
	Status        string `json:"status,omitempty" validate:"omitempty,oneof=upcoming completed cancelled"`
}
