package main

import (
	"flexspace/internal/settings/handler"
	"flexspace/internal/settings/repository"
	"flexspace/internal/settings/service"
	"flexspace/internal/settings/validator"
	"flexspace/pkg/app"
	"flexspace/pkg/config"
)

const ServiceName = "settings"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Settings service")
	settingsService := initServices(cfg)
	serverApp := app.NewApplication()
	serverApp.SetApp(cfg, handler.NewSettingsHandler(settingsService, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config) service.SettingsService {
	settingsValidator, err := validator.NewSettingsValidator(cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to build settings validator", "error", err)
	}
	settingsRepo := repository.NewMongoSettingsRepository(cfg)
	settingsService := service.NewSettingsService(
		settingsRepo,
		settingsValidator,
		cfg,
	)

	cfg.Log.Info("Settings service initialized", "database", cfg.MongoDatabaseName)
	return settingsService
}
