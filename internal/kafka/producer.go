// Package kafka carries booking lifecycle events between the API server and
// the notifier worker.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/voyago/travel_booking_app/internal/core/domain"
)

// BookingEvent is the wire payload published for every booking lifecycle
// transition.
type BookingEvent struct {
	EventType      string    `json:"eventType"` // booking_confirmed | booking_cancelled
	BookingID      string    `json:"bookingID"`
	Reference      string    `json:"reference"`
	UserID         string    `json:"userID"`
	Type           string    `json:"type"`
	TotalAmount    int64     `json:"totalAmount"`
	DiscountAmount int64     `json:"discountAmount"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// Producer publishes booking events to a single topic, keyed by user so a
// user's events stay ordered within a partition.
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer creates a Producer for the given brokers and topic.
func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
		topic: topic,
	}
}

// PublishBookingEvent serializes the booking into a BookingEvent and writes
// it to the topic.
func (p *Producer) PublishBookingEvent(ctx context.Context, eventType string, booking *domain.Booking) error {
	event := BookingEvent{
		EventType:      eventType,
		BookingID:      booking.BookingID,
		Reference:      booking.Reference,
		UserID:         booking.UserID,
		Type:           string(booking.Type),
		TotalAmount:    booking.TotalAmount,
		DiscountAmount: booking.DiscountAmount,
		Status:         string(booking.Status),
		OccurredAt:     time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(booking.UserID),
		Value: data,
		Time:  event.OccurredAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write booking event to kafka: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
