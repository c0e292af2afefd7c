package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"flexspace/pkg/client"
	"flexspace/pkg/logger"
	"flexspace/pkg/model"
)

type Config struct {
	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	Port string

	PaymentWebhookSecret string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	BookingLockTTL time.Duration

	// Fallback slot boundaries for sites without a settings document.
	MorningStart   string
	MorningEnd     string
	AfternoonStart string
	AfternoonEnd   string
	NightStart     string
	NightEnd       string

	TimeZone string
	Currency string

	DefaultOpenDays []model.Weekday

	RoomsServiceURL    string
	SettingsServiceURL string
	BookingsServiceURL string

	KafkaBrokers string

	BookingEventsTopic    string
	BookingEventsDLQTopic string
	PaymentEventsTopic    string
	PaymentEventsDLQTopic string
	PaymentConsumerGroup  string

	Log    *logger.Logger
	Client *client.Client
}

func Load(serviceName string) *Config {
	cfg := &Config{
		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		Port: getEnvStr(EnvPort, DefaultPort),

		PaymentWebhookSecret: getEnvStr(EnvPaymentWebhookSecret, ""),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		BookingLockTTL: getEnvDuration(EnvBookingLockTTL, DefaultBookingLockTTL),

		MorningStart:   getEnvStr(EnvMorningStart, DefaultMorningStart),
		MorningEnd:     getEnvStr(EnvMorningEnd, DefaultMorningEnd),
		AfternoonStart: getEnvStr(EnvAfternoonStart, DefaultAfternoonStart),
		AfternoonEnd:   getEnvStr(EnvAfternoonEnd, DefaultAfternoonEnd),
		NightStart:     getEnvStr(EnvNightStart, DefaultNightStart),
		NightEnd:       getEnvStr(EnvNightEnd, DefaultNightEnd),

		TimeZone: getEnvStr(EnvTimeZone, DefaultTimeZone),
		Currency: getEnvStr(EnvCurrency, DefaultCurrency),

		DefaultOpenDays: DefaultOpenDays,

		RoomsServiceURL:    getEnvStr(EnvRoomsServiceURL, DefaultRoomsServiceURL),
		SettingsServiceURL: getEnvStr(EnvSettingsServiceURL, DefaultSettingsServiceURL),
		BookingsServiceURL: getEnvStr(EnvBookingsServiceURL, DefaultBookingsServiceURL),

		KafkaBrokers: getEnvStr(EnvKafkaBrokers, DefaultKafkaBrokers),

		BookingEventsTopic:    getEnvStr(EnvBookingEventsTopic, DefaultBookingEventsTopic),
		BookingEventsDLQTopic: getEnvStr(EnvBookingEventsDLQTopic, DefaultBookingEventsDLQTopic),
		PaymentEventsTopic:    getEnvStr(EnvPaymentEventsTopic, DefaultPaymentEventsTopic),
		PaymentEventsDLQTopic: getEnvStr(EnvPaymentEventsDLQTopic, DefaultPaymentEventsDLQTopic),
		PaymentConsumerGroup:  getEnvStr(EnvPaymentConsumerGroup, DefaultPaymentConsumerGroup),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, logger.INFO),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
		Client: client.NewClient(),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) SetMongo() {
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

func (cfg *Config) SetServiceClients() {
	cfg.Client.SetServiceClients(cfg.RoomsServiceURL, cfg.SettingsServiceURL, cfg.BookingsServiceURL)
}

var (
	timeOfDayRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	mongoURIRegex  = regexp.MustCompile(`^mongodb(\+srv)?://`)
)

func (cfg *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	for name, value := range map[string]string{
		"MorningStart":   cfg.MorningStart,
		"MorningEnd":     cfg.MorningEnd,
		"AfternoonStart": cfg.AfternoonStart,
		"AfternoonEnd":   cfg.AfternoonEnd,
		"NightStart":     cfg.NightStart,
		"NightEnd":       cfg.NightEnd,
	} {
		if !timeOfDayRegex.MatchString(value) {
			problems = append(problems, fmt.Sprintf("%s must be in HH:MM format (00:00-23:59), got: %s", name, value))
		}
	}

	if cfg.MongoURI == "" {
		problems = append(problems, "MongoURI cannot be empty")
	} else if !mongoURIRegex.MatchString(cfg.MongoURI) {
		problems = append(problems, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", cfg.MongoURI))
	}

	if cfg.MongoDatabaseName == "" {
		problems = append(problems, "MongoDatabaseName cannot be empty")
	}

	for name, d := range map[string]time.Duration{
		"MongoConnTimeout": cfg.MongoConnTimeout,
		"RateLimitWindow":  cfg.RateLimitWindow,
		"RequestTimeout":   cfg.RequestTimeout,
		"IdempotencyTTL":   cfg.IdempotencyTTL,
		"ReadTimeout":      cfg.ReadTimeout,
		"WriteTimeout":     cfg.WriteTimeout,
		"IdleTimeout":      cfg.IdleTimeout,
		"ShutdownTimeout":  cfg.ShutdownTimeout,
		"BookingLockTTL":   cfg.BookingLockTTL,
	} {
		if d <= 0 {
			problems = append(problems, fmt.Sprintf("%s must be positive, got: %s", name, d))
		}
	}

	if cfg.RateLimitRequests <= 0 {
		problems = append(problems, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.MaxRequestSize <= 0 {
		problems = append(problems, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}

	if _, err := time.LoadLocation(cfg.TimeZone); err != nil {
		problems = append(problems, fmt.Sprintf("TimeZone must be a valid IANA zone, got: %s", cfg.TimeZone))
	}

	if len(cfg.DefaultOpenDays) == 0 {
		problems = append(problems, "DefaultOpenDays cannot be empty")
	}
	for _, day := range cfg.DefaultOpenDays {
		if !model.IsCanonicalWeekday(day) {
			problems = append(problems, fmt.Sprintf("DefaultOpenDays contains unknown weekday: %s", day))
		}
	}

	if len(problems) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, p := range problems {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, p)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"port", cfg.Port,
		"payment_webhook_secret_set", cfg.PaymentWebhookSecret != "",
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"booking_lock_ttl", cfg.BookingLockTTL,
		"morning_slot", cfg.MorningStart+"-"+cfg.MorningEnd,
		"afternoon_slot", cfg.AfternoonStart+"-"+cfg.AfternoonEnd,
		"night_slot", cfg.NightStart+"-"+cfg.NightEnd,
		"time_zone", cfg.TimeZone,
		"currency", cfg.Currency,
		"default_open_days", cfg.DefaultOpenDays,
		"kafka_brokers", cfg.KafkaBrokers,
		"booking_events_topic", cfg.BookingEventsTopic,
		"payment_events_topic", cfg.PaymentEventsTopic,
	)
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown()
}

func NormalizePaginationLimit(limit int) int {
	if limit <= 0 {
		limit = 10
	} else if limit > DefaultPaginationLimit {
		limit = DefaultPaginationLimit
	}
	return limit
}

func NormalizeOffset(offset int64) int64 {
	return max(0, offset)
}
