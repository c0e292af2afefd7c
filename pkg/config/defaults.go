package config

import (
	"time"

	"flexspace/pkg/model"
)

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "flexspace"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort = "8080"

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultPaginationLimit = 200

	DefaultBookingLockTTL = 10 * time.Second

	// Slot boundaries used when a site has no explicit settings document.
	DefaultMorningStart   = "08:00"
	DefaultMorningEnd     = "12:00"
	DefaultAfternoonStart = "12:00"
	DefaultAfternoonEnd   = "17:00"
	DefaultNightStart     = "17:00"
	DefaultNightEnd       = "22:00"

	DefaultTimeZone = "Europe/Amsterdam"
	DefaultCurrency = "EUR"

	DefaultRoomsServiceURL    = "http://localhost:8081"
	DefaultSettingsServiceURL = "http://localhost:8082"
	DefaultBookingsServiceURL = "http://localhost:8083"

	DefaultKafkaBrokers = "localhost:9092"

	DefaultBookingEventsTopic    = "flexspace.bookings.events"
	DefaultBookingEventsDLQTopic = "flexspace.bookings.events.dlq"
	DefaultPaymentEventsTopic    = "flexspace.payments.events"
	DefaultPaymentEventsDLQTopic = "flexspace.payments.events.dlq"
	DefaultPaymentConsumerGroup  = "flexspace-bookings"
)

var DefaultOpenDays = []model.Weekday{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
}
