package model

import "time"

// BookingLock is an advisory lock keyed by room, date and slot. It is
// taken for the duration of an availability check plus insert so two
// concurrent requests cannot both pass the conflict scan.
type BookingLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
