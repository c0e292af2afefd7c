package flows

import (
	"fmt"

	maestro "flexspace/internal/maestro/core"
	"flexspace/pkg/model"
)

// requires: room_id, date, slot, customer_name, customer_email
// optional: customer_phone
//
// CreateBooking verifies the slot is free before handing the request
// to the bookings service, which re-verifies under its own lock.
func CreateBooking(ctx *maestro.MaestroContext) error {
	roomID := ctx.ExtractString(ROOM_ID)
	if maestro.IsMissing(roomID) {
		return maestro.MissingParamErr(ROOM_ID)
	}
	slot := ctx.ExtractString(SLOT)
	if maestro.IsMissing(slot) {
		return maestro.MissingParamErr(SLOT)
	}
	customerName := ctx.ExtractString("customer_name")
	if maestro.IsMissing(customerName) {
		return maestro.MissingParamErr("customer_name")
	}
	customerEmail := ctx.ExtractString("customer_email")
	if maestro.IsMissing(customerEmail) {
		return maestro.MissingParamErr("customer_email")
	}
	date, err := ctx.ExtractDate(DATE)
	if err != nil {
		return err
	}

	available, err := checkOne(ctx.Client, roomID, date, slot)
	if err != nil {
		return err
	}
	if !available {
		return fmt.Errorf("room [%v] is not free on %v (%v)", roomID, date.Format("2006-01-02"), slot)
	}

	resp, err := ctx.Client.BookingClient.Create(&model.Booking{
		RoomID:        roomID,
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		CustomerPhone: ctx.ExtractString("customer_phone"),
		Date:          date,
		Slot:          slot,
	})
	if err != nil {
		return err
	}
	booking, err := ctx.Client.BookingClient.DecodeBooking(resp)
	if err != nil {
		return err
	}

	ctx.Output["booking"] = booking
	return nil
}
