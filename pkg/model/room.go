package model

import "time"

// Room is a bookable unit of the site. Prices are stored per slot in
// integer euro cents; a FullDay booking is priced as the sum of the
// three slot prices.
type Room struct {
	ID                  string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name                string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Floor               int       `json:"floor" bson:"floor" validate:"omitempty,min=-5,max=100"`
	Capacity            int       `json:"capacity" bson:"capacity" validate:"required,min=1,max=500"`
	Amenities           []string  `json:"amenities,omitempty" bson:"amenities" validate:"omitempty,max=30,dive,required"`
	MorningPriceCents   int64     `json:"morning_price_cents" bson:"morning_price_cents" validate:"required,min=0"`
	AfternoonPriceCents int64     `json:"afternoon_price_cents" bson:"afternoon_price_cents" validate:"required,min=0"`
	NightPriceCents     int64     `json:"night_price_cents" bson:"night_price_cents" validate:"required,min=0"`
	ContactPhone        string    `json:"contact_phone,omitempty" bson:"contact_phone" validate:"omitempty,e164"`
	Active              bool      `json:"active" bson:"active"`
	CreatedAt           time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// SlotPriceCents returns the price of a single slot of this room.
// FullDay is the sum of the three part-day slots.
func (r *Room) SlotPriceCents(slot TimeSlot) int64 {
	switch slot {
	case SlotMorning:
		return r.MorningPriceCents
	case SlotAfternoon:
		return r.AfternoonPriceCents
	case SlotNight:
		return r.NightPriceCents
	case SlotFullDay:
		return r.MorningPriceCents + r.AfternoonPriceCents + r.NightPriceCents
	}
	return 0
}

type RoomUpdate struct {
	Name                string    `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Floor               *int      `json:"floor,omitempty" validate:"omitempty,min=-5,max=100"`
	Capacity            *int      `json:"capacity,omitempty" validate:"omitempty,min=1,max=500"`
	Amenities           *[]string `json:"amenities,omitempty" validate:"omitempty,max=30,dive,required"`
	MorningPriceCents   *int64    `json:"morning_price_cents,omitempty" validate:"omitempty,min=0"`
	AfternoonPriceCents *int64    `json:"afternoon_price_cents,omitempty" validate:"omitempty,min=0"`
	NightPriceCents     *int64    `json:"night_price_cents,omitempty" validate:"omitempty,min=0"`
	ContactPhone        string    `json:"contact_phone,omitempty" validate:"omitempty,e164"`
	Active              *bool     `json:"active,omitempty"`
}
