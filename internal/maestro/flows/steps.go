package flows

import (
	"sync"
	"time"

	maestro "flexspace/internal/maestro/core"
	"flexspace/pkg/client"
	"flexspace/pkg/model"
)

const (
	ROOM_ID      = "room_id"
	DATE         = "date"
	SLOT         = "slot"
	MIN_CAPACITY = "min_capacity"

	ROOMS      = "rooms"
	FREE_ROOMS = "free_rooms"

	MaxRoomsPerScan = 200
)

// ListAllRooms loads the first page of rooms into the process state.
// A site has well under MaxRoomsPerScan rooms.
func ListAllRooms(ctx *maestro.MaestroContext) error {
	resp, err := ctx.Client.RoomClient.GetAll(MaxRoomsPerScan, 0)
	if err != nil {
		return err
	}
	rooms, _, err := ctx.Client.RoomClient.DecodeRooms(resp)
	if err != nil {
		return err
	}
	ctx.Process[ROOMS] = rooms
	return nil
}

type availabilityProbe struct {
	room      *model.Room
	available bool
	err       error
}

// probeAvailability fans out one availability call per room under the
// shared request limiter.
func probeAvailability(ctx *maestro.MaestroContext, rooms []*model.Room, date time.Time, slot string) ([]*model.Room, error) {
	probes := make([]availabilityProbe, len(rooms))
	var wg sync.WaitGroup

	for i, room := range rooms {
		wg.Add(1)
		go func(i int, room *model.Room) {
			defer wg.Done()
			maestro.RunWithRateLimitedConcurrency(func() {
				probes[i].room = room
				probes[i].available, probes[i].err = checkOne(ctx.Client, room.ID, date, slot)
			})
		}(i, room)
	}
	wg.Wait()

	free := []*model.Room{}
	for _, probe := range probes {
		if probe.err != nil {
			return nil, probe.err
		}
		if probe.available {
			free = append(free, probe.room)
		}
	}
	return free, nil
}

func checkOne(c *client.Client, roomID string, date time.Time, slot string) (bool, error) {
	resp, err := c.BookingClient.CheckAvailability(roomID, date, slot)
	if err != nil {
		return false, err
	}
	result, err := c.BookingClient.DecodeAvailability(resp)
	if err != nil {
		return false, err
	}
	return result.Available, nil
}
