package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidID = errors.New("invalid booking ID format")

	ErrInvalidDateRange = errors.New("end date must not be before start date")

	ErrInvalidRecurrencePattern = errors.New("unrecognized recurrence pattern")

	ErrInvalidDiscount = errors.New("discount percent must be between 0 and 100")

	ErrInvalidTimeSlot = errors.New("unrecognized time slot")

	ErrNoWeekdays = errors.New("at least one weekday must be selected")

	ErrSlotConflict = errors.New("room is already booked for this date and slot")
)
