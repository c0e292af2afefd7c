// Package availability decides whether a room is free for a given
// calendar date and slot, taking both one-off and recurring bookings
// into account.
package availability

import (
	"time"

	bookingserrors "flexspace/internal/bookings/errors"
	"flexspace/pkg/model"
	"flexspace/pkg/sanitizer"
)

// ValidateSlot rejects slot names outside the bookable set.
func ValidateSlot(slot model.TimeSlot) error {
	for _, s := range model.BookableSlots {
		if s == slot {
			return nil
		}
	}
	return bookingserrors.ErrInvalidTimeSlot
}

func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// slotsOverlap reports whether two bookings on the same date contend
// for the room. FullDay occupies every slot, in both directions: an
// existing FullDay booking blocks any slot, and a FullDay candidate is
// blocked by any existing slot.
func slotsOverlap(a, b model.TimeSlot) bool {
	if a == b {
		return true
	}
	return a == model.SlotFullDay || b == model.SlotFullDay
}

// BookingBlocks reports whether an existing one-off booking occupies
// date and slot. Cancelled bookings never block.
func BookingBlocks(b *model.Booking, date time.Time, slot model.TimeSlot) bool {
	if b.Status == model.Cancelled {
		return false
	}
	if !normalizeDate(b.Date).Equal(normalizeDate(date)) {
		return false
	}
	return slotsOverlap(b.Slot, slot)
}

// RecurringBlocks reports whether a recurring booking occupies date and
// slot. A date is occupied when it falls inside the recurring range,
// its weekday is one of the selected weekdays, and the slots contend.
// The recurrence pattern is deliberately not consulted: Bi-Weekly and
// Monthly visit counts are approximations, so every matching weekday in
// the range is treated as occupied rather than guessing which specific
// dates the customer will show up on.
func RecurringBlocks(rb *model.RecurringBooking, date time.Time, slot model.TimeSlot) bool {
	if rb.Status == model.Cancelled {
		return false
	}

	day := normalizeDate(date)
	if day.Before(normalizeDate(rb.StartDate)) || day.After(normalizeDate(rb.EndDate)) {
		return false
	}

	weekday := day.Weekday().String()
	matched := false
	for _, wd := range rb.Weekdays {
		if sanitizer.NormalizeWeekday(wd) == weekday {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}

	return slotsOverlap(rb.Slot, slot)
}

// RoomFree reports whether none of the given bookings occupy date and
// slot. Callers pass the bookings already scoped to a single room.
func RoomFree(bookings []*model.Booking, recurring []*model.RecurringBooking, date time.Time, slot model.TimeSlot) bool {
	for _, b := range bookings {
		if BookingBlocks(b, date, slot) {
			return false
		}
	}
	for _, rb := range recurring {
		if RecurringBlocks(rb, date, slot) {
			return false
		}
	}
	return true
}

// FilterFreeRooms keeps the rooms that are free on date and slot. The
// maps are keyed by room ID; a room with no entry has no bookings.
func FilterFreeRooms(rooms []*model.Room, bookingsByRoom map[string][]*model.Booking, recurringByRoom map[string][]*model.RecurringBooking, date time.Time, slot model.TimeSlot) []*model.Room {
	free := make([]*model.Room, 0, len(rooms))
	for _, room := range rooms {
		if RoomFree(bookingsByRoom[room.ID], recurringByRoom[room.ID], date, slot) {
			free = append(free, room)
		}
	}
	return free
}
