package model

import (
	"time"
)

// Booking is a single-date reservation of one room for one slot.
// Date is stored normalized to midnight UTC.
type Booking struct {
	ID            string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	RoomID        string    `json:"room_id" bson:"room_id" validate:"required,mongodb"`
	CustomerName  string    `json:"customer_name" bson:"customer_name" validate:"required,min=2,max=100"`
	CustomerEmail string    `json:"customer_email" bson:"customer_email" validate:"required,email"`
	CustomerPhone string    `json:"customer_phone,omitempty" bson:"customer_phone" validate:"omitempty,e164"`
	Date          time.Time `json:"date" bson:"date" validate:"required"`
	Slot          string    `json:"slot" bson:"slot" validate:"required,oneof=Morning Afternoon Night FullDay"`
	PriceCents    int64     `json:"price_cents" bson:"price_cents" validate:"min=0"`
	Status        string    `json:"status" bson:"status" validate:"required,oneof=upcoming completed cancelled"`
	PaymentRef    string    `json:"payment_ref,omitempty" bson:"payment_ref" validate:"omitempty,max=200"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

type BookingUpdate struct {
	CustomerName  string     `json:"customer_name,omitempty" validate:"omitempty,min=2,max=100"`
	CustomerEmail string     `json:"customer_email,omitempty" validate:"omitempty,email"`
	CustomerPhone string     `json:"customer_phone,omitempty" validate:"omitempty,e164"`
	Date          *time.Time `json:"date,omitempty" validate:"omitempty"`
	Slot          string     `json:"slot,omitempty" validate:"omitempty,oneof=Morning Afternoon Night FullDay"`
	Status        string     `json:"status,omitempty" validate:"omitempty,oneof=upcoming completed cancelled"`
	PaymentRef    string     `json:"payment_ref,omitempty" validate:"omitempty,max=200"`
}
