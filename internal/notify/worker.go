// Package notify consumes booking confirmation events and fans them out as
// email. It runs as its own process so a slow or failing SMTP server can
// never delay the booking API.
package notify

import (
	"context"
	"studiobook/internal/events"
	"studiobook/pkg/config"
	"studiobook/pkg/kafka"
	kafka_config "studiobook/pkg/kafka/config"
)

const consumerGroup = "studiobook-notify"

type Worker struct {
	consumer *kafka.Consumer
	mailer   *Mailer
	cfg      *config.Config
}

func NewWorker(cfg *config.Config, kafkaCfg *kafka_config.Config, mailer *Mailer) (*Worker, error) {
	w := &Worker{
		mailer: mailer,
		cfg:    cfg,
	}

	consumer, err := kafka.NewConsumer(kafkaCfg, cfg.ConfirmedTopic, consumerGroup, w.handleMessage)
	if err != nil {
		return nil, err
	}
	w.consumer = consumer

	return w, nil
}

// Run consumes until the context is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	w.cfg.Log.Info("Notification worker started", "topic", w.cfg.ConfirmedTopic, "group", consumerGroup)
	return w.consumer.Start(ctx)
}

func (w *Worker) Close() error {
	return w.consumer.Close()
}

func (w *Worker) handleMessage(ctx context.Context, msg kafka.Message) error {
	if eventType := msg.GetEventType(); eventType != events.TypeBookingConfirmed {
		w.cfg.Log.Warn("Skipping message with unexpected event type",
			"event_type", eventType,
			"event_id", msg.GetEventID(),
		)
		return nil
	}

	var event events.BookingConfirmed
	if err := msg.DecodeValue(&event); err != nil {
		w.cfg.Log.Error("Failed to decode confirmation event",
			"event_id", msg.GetEventID(),
			"error", err,
		)
		return nil
	}

	w.cfg.Log.Info("Processing booking confirmation",
		"booking_id", event.BookingID,
		"date", event.Date,
		"event_id", msg.GetEventID(),
	)

	// Notifications are best-effort: a delivery failure is logged by the
	// mailer and the offset is still committed.
	return w.mailer.SendConfirmation(&event)
}
