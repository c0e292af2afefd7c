package flows

import (
	maestro "flexspace/internal/maestro/core"
	"flexspace/pkg/model"
	"flexspace/pkg/sanitizer"
)

// requires: date, slot
// optional: min_capacity, amenities
func SearchFreeRooms(ctx *maestro.MaestroContext) error {
	slot := ctx.ExtractString(SLOT)
	if maestro.IsMissing(slot) {
		return maestro.MissingParamErr(SLOT)
	}
	date, err := ctx.ExtractDate(DATE)
	if err != nil {
		return err
	}

	if err := ListAllRooms(ctx); err != nil {
		return err
	}
	rooms := ctx.Process[ROOMS].([]*model.Room)

	minCapacity := 0
	if raw, ok := ctx.Input[MIN_CAPACITY]; ok {
		// JSON numbers decode as float64.
		if f, ok := raw.(float64); ok {
			minCapacity = int(f)
		}
	}

	var amenities []string
	if raw, ok := ctx.Input["amenities"]; ok {
		if list, ok := raw.([]any); ok {
			for _, item := range list {
				if s, ok := item.(string); ok {
					amenities = append(amenities, s)
				}
			}
		}
	}
	amenities = sanitizer.NormalizeAmenities(amenities)

	candidates := []*model.Room{}
	for _, room := range rooms {
		if !room.Active {
			continue
		}
		if minCapacity > 0 && room.Capacity < minCapacity {
			continue
		}
		if !hasAllAmenities(room, amenities) {
			continue
		}
		candidates = append(candidates, room)
	}

	free, err := probeAvailability(ctx, candidates, date, slot)
	if err != nil {
		return err
	}

	ctx.Output[FREE_ROOMS] = free
	ctx.Output[DATE] = date.Format("2006-01-02")
	ctx.Output[SLOT] = slot
	return nil
}

func hasAllAmenities(room *model.Room, required []string) bool {
	if len(required) == 0 {
		return true
	}
	have := make(map[string]bool, len(room.Amenities))
	for _, a := range room.Amenities {
		have[a] = true
	}
	for _, r := range required {
		if !have[r] {
			return false
		}
	}
	return true
}
