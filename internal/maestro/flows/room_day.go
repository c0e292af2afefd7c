package flows

import (
	"sync"

	maestro "flexspace/internal/maestro/core"
	"flexspace/pkg/model"
)

// requires: room_id, date
//
// RoomDay returns the room with, per bookable slot, its availability
// and price on the given date. One availability call per slot, fanned
// out under the request limiter.
func RoomDay(ctx *maestro.MaestroContext) error {
	roomID := ctx.ExtractString(ROOM_ID)
	if maestro.IsMissing(roomID) {
		return maestro.MissingParamErr(ROOM_ID)
	}
	date, err := ctx.ExtractDate(DATE)
	if err != nil {
		return err
	}

	resp, err := ctx.Client.RoomClient.GetByID(roomID)
	if err != nil {
		return err
	}
	room, err := ctx.Client.RoomClient.DecodeRoom(resp)
	if err != nil {
		return err
	}

	type slotState struct {
		Available  bool  `json:"available"`
		PriceCents int64 `json:"price_cents"`
	}

	slots := make(map[string]*slotState, len(model.BookableSlots))
	errs := make([]error, len(model.BookableSlots))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i, slot := range model.BookableSlots {
		wg.Add(1)
		go func(i int, slot model.TimeSlot) {
			defer wg.Done()
			maestro.RunWithRateLimitedConcurrency(func() {
				available, err := checkOne(ctx.Client, roomID, date, slot)
				if err != nil {
					errs[i] = err
					return
				}
				mu.Lock()
				slots[slot] = &slotState{
					Available:  available,
					PriceCents: room.SlotPriceCents(slot),
				}
				mu.Unlock()
			})
		}(i, slot)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	ctx.Output["room"] = room
	ctx.Output[DATE] = date.Format("2006-01-02")
	ctx.Output["slots"] = slots
	return nil
}
