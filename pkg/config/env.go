package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvHoldTTL        = "HOLD_TTL"
	EnvReaperInterval = "REAPER_INTERVAL"
	EnvDefaultAmount  = "DEFAULT_BOOKING_AMOUNT"
	EnvCurrency       = "BOOKING_CURRENCY"

	EnvPaystackBaseURL   = "PAYSTACK_BASE_URL"
	EnvPaystackSecretKey = "PAYSTACK_SECRET_KEY"
	EnvPaymentTimeout    = "PAYMENT_TIMEOUT"

	EnvConfirmedTopic = "BOOKINGS_CONFIRMED_TOPIC"

	EnvSMTPHost     = "SMTP_HOST"
	EnvSMTPPort     = "SMTP_PORT"
	EnvSMTPUser     = "SMTP_USER"
	EnvSMTPPassword = "SMTP_PASSWORD"
	EnvFromEmail    = "FROM_EMAIL"
	EnvAdminEmail   = "ADMIN_EMAIL"
)
