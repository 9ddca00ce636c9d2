package main

import (
	"studiobook/internal/bookings/handler"
	"studiobook/internal/bookings/repository"
	"studiobook/internal/bookings/service"
	"studiobook/internal/bookings/validator"
	"studiobook/pkg/app"
	"studiobook/pkg/config"
	"studiobook/pkg/kafka"
	kafka_config "studiobook/pkg/kafka/config"
	"studiobook/pkg/payment"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.Client.GracefulShutdown(cfg.Log)

	cfg.Log.Info("Starting Bookings service")

	producer := initProducer(cfg)
	bookingService := initServices(cfg, producer)

	reaper := service.NewReaper(bookingService, cfg)
	go reaper.Start()

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg, handler.NewBookingHandler(bookingService, cfg.Log))
	serverApp.OnShutdown(reaper.Stop)
	if producer != nil {
		serverApp.OnShutdown(func() {
			if err := producer.Close(); err != nil {
				cfg.Log.Error("Failed to close Kafka producer", "error", err)
			}
		})
	}
	serverApp.Run()
}

func initProducer(cfg *config.Config) *kafka.Producer {
	kafkaCfg := kafka_config.Load()
	producer, err := kafka.NewProducer(kafkaCfg, cfg.ConfirmedTopic)
	if err != nil {
		// Confirmation notifications are best-effort: the API stays up
		// without them.
		cfg.Log.Error("Kafka producer unavailable, confirmation events disabled", "error", err)
		return nil
	}
	return producer
}

func initServices(cfg *config.Config, producer *kafka.Producer) service.BookingService {
	bookingValidator := validator.NewBookingValidator(cfg.Log)
	bookingRepo := repository.NewMongoBookingRepository(cfg)
	lockRepo := repository.NewHoldLockRepository(cfg)
	verifier := payment.NewPaystackClient(cfg.PaystackBaseURL, cfg.PaystackSecretKey, cfg.PaymentTimeout, cfg.Log)

	var publisher service.EventPublisher
	if producer != nil {
		publisher = producer
	}

	bookingService := service.NewBookingService(
		bookingRepo,
		lockRepo,
		bookingValidator,
		verifier,
		publisher,
		cfg,
	)

	cfg.Log.Info("Booking service initialized", "database", cfg.MongoDatabaseName)
	return bookingService
}
