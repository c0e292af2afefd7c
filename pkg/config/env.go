package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvPaymentWebhookSecret = "PAYMENT_WEBHOOK_SECRET"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvBookingLockTTL = "BOOKING_LOCK_TTL"

	EnvMorningStart   = "SLOT_MORNING_START"
	EnvMorningEnd     = "SLOT_MORNING_END"
	EnvAfternoonStart = "SLOT_AFTERNOON_START"
	EnvAfternoonEnd   = "SLOT_AFTERNOON_END"
	EnvNightStart     = "SLOT_NIGHT_START"
	EnvNightEnd       = "SLOT_NIGHT_END"

	EnvTimeZone = "SITE_TIME_ZONE"
	EnvCurrency = "CURRENCY"

	EnvRoomsServiceURL    = "ROOMS_SERVICE_URL"
	EnvSettingsServiceURL = "SETTINGS_SERVICE_URL"
	EnvBookingsServiceURL = "BOOKINGS_SERVICE_URL"

	EnvKafkaBrokers = "KAFKA_BROKERS"

	EnvBookingEventsTopic    = "BOOKING_EVENTS_TOPIC"
	EnvBookingEventsDLQTopic = "BOOKING_EVENTS_DLQ_TOPIC"
	EnvPaymentEventsTopic    = "PAYMENT_EVENTS_TOPIC"
	EnvPaymentEventsDLQTopic = "PAYMENT_EVENTS_DLQ_TOPIC"
	EnvPaymentConsumerGroup  = "PAYMENT_CONSUMER_GROUP"
)
