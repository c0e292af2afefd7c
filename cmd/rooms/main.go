package main

import (
	"flexspace/internal/rooms/handler"
	"flexspace/internal/rooms/repository"
	"flexspace/internal/rooms/service"
	"flexspace/internal/rooms/validator"
	"flexspace/pkg/app"
	"flexspace/pkg/config"
)

const ServiceName = "rooms"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Rooms service")
	roomService := initServices(cfg)
	serverApp := app.NewApplication()
	serverApp.SetApp(cfg, handler.NewRoomHandler(roomService, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config) service.RoomService {
	roomValidator := validator.NewRoomValidator(cfg.Log)
	roomRepo := repository.NewMongoRoomRepository(cfg)
	roomService := service.NewRoomService(
		roomRepo,
		roomValidator,
		cfg,
	)

	cfg.Log.Info("Room service initialized", "database", cfg.MongoDatabaseName)
	return roomService
}
