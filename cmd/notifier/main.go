package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	kafkaGo "github.com/segmentio/kafka-go"

	"github.com/voyago/travel_booking_app/internal/kafka"
	"github.com/voyago/travel_booking_app/internal/platform/config"
)

// The notifier consumes booking lifecycle events and emits user
// notifications. Delivery is currently a structured log line; swapping in an
// email or push sender only touches handleEvent.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(cfg.KafkaBrokers) == 0 {
		logger.Error("KAFKA_BROKERS must be set for the notifier")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaGroupID, cfg.KafkaBookingTopic)
	defer consumer.Close()

	logger.Info("Notifier starting",
		slog.String("topic", cfg.KafkaBookingTopic),
		slog.String("group_id", cfg.KafkaGroupID),
	)

	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var event kafka.BookingEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Warn("Skipping undecodable event", slog.String("error", err.Error()))
			return nil
		}
		handleEvent(logger, event)
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Consumer stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Notifier shut down")
}

func handleEvent(logger *slog.Logger, event kafka.BookingEvent) {
	switch event.EventType {
	case "booking_confirmed":
		logger.Info("Notify user: booking confirmed",
			slog.String("user_id", event.UserID),
			slog.String("reference", event.Reference),
			slog.String("type", event.Type),
			slog.Int64("total_amount", event.TotalAmount),
		)
	case "booking_cancelled":
		logger.Info("Notify user: booking cancelled and refunded",
			slog.String("user_id", event.UserID),
			slog.String("reference", event.Reference),
			slog.Int64("refund_amount", event.TotalAmount),
		)
	default:
		logger.Warn("Unknown booking event type", slog.String("event_type", event.EventType))
	}
}
