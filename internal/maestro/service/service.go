package service

import (
	"fmt"

	maestro "flexspace/internal/maestro/core"
	"flexspace/internal/maestro/flows"
	"flexspace/pkg/client"
	"flexspace/pkg/logger"
)

type MaestroService struct {
	client *client.Client
	Logger *logger.Logger
}

func NewMaestroService(client *client.Client, logger *logger.Logger) *MaestroService {
	return &MaestroService{
		client: client,
		Logger: logger,
	}
}

type FlowHandler func(ctx *maestro.MaestroContext) error

var flowRegistry = map[string]FlowHandler{
	"search_free_rooms": flows.SearchFreeRooms,
	"room_day":          flows.RoomDay,
	"create_booking":    flows.CreateBooking,
	"quote_recurring":   flows.QuoteRecurring,
}

func (s *MaestroService) ExecuteFlow(flowName string, input map[string]any) (map[string]any, error) {
	handler, exists := flowRegistry[flowName]
	if !exists {
		return nil, fmt.Errorf("unknown flow: %s", flowName)
	}
	ctx := maestro.NewMaestroContext(input, s.client, s.Logger)
	err := handler(ctx)
	if err != nil {
		return nil, fmt.Errorf("flow execution failed: %v", err)
	}
	return ctx.Output, nil
}

func (s *MaestroService) GetAvailableFlows() []string {
	flows := make([]string, 0, len(flowRegistry))
	for flowName := range flowRegistry {
		flows = append(flows, flowName)
	}
	return flows
}
