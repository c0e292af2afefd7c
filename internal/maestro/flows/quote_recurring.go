package flows

import (
	"encoding/json"
	"fmt"

	maestro "flexspace/internal/maestro/core"
)

// requires: room_id, start_date, end_date, weekdays, slot, pattern
// optional: discount_percent
//
// QuoteRecurring checks the requested discount against the site cap
// before asking the bookings service to price the schedule.
func QuoteRecurring(ctx *maestro.MaestroContext) error {
	roomID := ctx.ExtractString(ROOM_ID)
	if maestro.IsMissing(roomID) {
		return maestro.MissingParamErr(ROOM_ID)
	}

	discount := 0
	if raw, ok := ctx.Input["discount_percent"]; ok {
		if f, ok := raw.(float64); ok {
			discount = int(f)
		}
	}

	resp, err := ctx.Client.SettingsClient.Get()
	if err != nil {
		return err
	}
	settings, err := ctx.Client.SettingsClient.DecodeSettings(resp)
	if err != nil {
		return err
	}
	if discount > settings.MaxDiscountPercent {
		return fmt.Errorf("discount %v%% exceeds the site cap of %v%%", discount, settings.MaxDiscountPercent)
	}

	resp, err = ctx.Client.BookingClient.Quote(ctx.Input)
	if err != nil {
		return err
	}

	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return fmt.Errorf("could not decode quote wrapper: %w", err)
	}
	var quote map[string]any
	if err := json.Unmarshal(wrapper.Data, &quote); err != nil {
		return fmt.Errorf("could not decode quote json: %w", err)
	}

	ctx.Output["quote"] = quote
	ctx.Output["currency"] = settings.Currency
	return nil
}
