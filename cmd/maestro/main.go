package main

import (
	"net/http"
	"os"

	"flexspace/internal/maestro/api"
	"flexspace/pkg/config"
)

const ServiceName = "maestro"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetServiceClients()

	port := os.Getenv("MAESTRO_PORT")
	if port == "" {
		port = "8090"
	}

	router := api.SetupRouter(cfg.Client, cfg.Log)

	addr := ":" + port
	cfg.Log.Info("Starting Maestro API server",
		"address", addr,
		"rooms_url", cfg.RoomsServiceURL,
		"settings_url", cfg.SettingsServiceURL,
		"bookings_url", cfg.BookingsServiceURL,
	)

	if err := http.ListenAndServe(addr, router); err != nil {
		cfg.Log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
