package errors

import "errors"

var (
	ErrNotFound = errors.New("site settings not found")

	ErrInvalidSlotWindow = errors.New("slot end must be after slot start")
)
