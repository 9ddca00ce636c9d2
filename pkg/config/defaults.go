package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "studiobook"
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

	// Business policy: an unpaid hold lives for two hours, the reaper sweeps
	// every minute, and an unspecified amount falls back to 5000 minor units.
	DefaultHoldTTL        = 2 * time.Hour
	DefaultReaperInterval = 60 * time.Second
	DefaultBookingAmount  = 5000
	DefaultCurrency       = "NGN"

	DefaultPaystackBaseURL = "https://api.paystack.co"
	DefaultPaymentTimeout  = 10 * time.Second

	DefaultConfirmedTopic = "bookings.confirmed"

	DefaultSMTPHost   = "localhost"
	DefaultSMTPPort   = 587
	DefaultFromEmail  = "bookings@studiobook.local"
	DefaultAdminEmail = "admin@studiobook.local"

	DefaultPaginationLimit = 100
)
