package main

import (
	"context"
	"errors"

	"flexspace/internal/bookings/events"
	"flexspace/internal/bookings/handler"
	"flexspace/internal/bookings/repository"
	"flexspace/internal/bookings/service"
	"flexspace/internal/bookings/validator"
	"flexspace/pkg/app"
	"flexspace/pkg/config"
	kafka_config "flexspace/pkg/kafka/config"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	cfg.SetServiceClients()

	kafkaCfg := kafka_config.Load()
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	cfg.Log.Info("Starting Bookings service")

	publisher := initPublisher(cfg, kafkaCfg)
	bookingService := initServices(cfg, publisher)

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg, handler.NewAPI(bookingService, cfg.Log))
	serverApp.SetWebhookHandler(handler.NewPaymentWebhookHandler(bookingService, cfg.Log))

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	consumer, err := events.NewPaymentConsumer(cfg, kafkaCfg, bookingService, cfg.Log)
	if err != nil {
		cfg.Log.Error("Failed to start payment consumer, payment events will not be applied", "error", err)
	} else {
		go func() {
			if err := consumer.Start(consumerCtx); err != nil && !errors.Is(err, context.Canceled) {
				cfg.Log.Error("Payment consumer stopped", "error", err)
			}
		}()
	}

	serverApp.OnShutdown(func() {
		stopConsumer()
		if consumer != nil {
			if err := consumer.Close(); err != nil {
				cfg.Log.Error("Failed to close payment consumer", "error", err)
			}
		}
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	})

	serverApp.Run()
}

func initPublisher(cfg *config.Config, kafkaCfg *kafka_config.Config) events.Publisher {
	publisher, err := events.NewKafkaPublisher(cfg, kafkaCfg, cfg.Log)
	if err != nil {
		cfg.Log.Error("Failed to build Kafka publisher, booking events will not be emitted", "error", err)
		return events.NoopPublisher{}
	}
	return publisher
}

func initServices(cfg *config.Config, publisher events.Publisher) service.BookingService {
	bookingValidator := validator.NewBookingValidator(cfg.Log)
	bookingRepo := repository.NewMongoBookingRepository(cfg)
	recurringRepo := repository.NewMongoRecurringBookingRepository(cfg)
	lockRepo := repository.NewBookingLockRepository(cfg)
	roomGateway := service.NewHTTPRoomGateway(cfg.Client.RoomClient)

	bookingService := service.NewBookingService(
		bookingRepo,
		recurringRepo,
		lockRepo,
		roomGateway,
		bookingValidator,
		publisher,
		cfg,
	)

	cfg.Log.Info("Booking service initialized", "database", cfg.MongoDatabaseName)
	return bookingService
}
