package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"studiobook/internal/notify"
	"studiobook/pkg/config"
	kafka_config "studiobook/pkg/kafka/config"
)

const ServiceName = "notify"

func main() {
	cfg := config.Load(ServiceName)
	kafkaCfg := kafka_config.Load()

	cfg.Log.Info("Starting notification worker")

	mailer := notify.NewMailer(cfg)
	worker, err := notify.NewWorker(cfg, kafkaCfg, mailer)
	if err != nil {
		cfg.Log.Fatal("Failed to create notification worker", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	workerErrors := make(chan error, 1)
	go func() {
		workerErrors <- worker.Run(ctx)
	}()

	select {
	case err := <-workerErrors:
		if err != nil {
			cfg.Log.Fatal("Notification worker failed", "error", err)
		}
	case sig := <-shutdown:
		cfg.Log.Info("Shutdown signal received", "signal", sig)
		cancel()
		<-workerErrors
	}

	if err := worker.Close(); err != nil {
		cfg.Log.Error("Failed to close consumer", "error", err)
	}
	cfg.Log.Info("Notification worker stopped")
}
