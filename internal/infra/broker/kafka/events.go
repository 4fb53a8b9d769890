package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	domainbooking "stayhub/internal/domain/booking"
	"stayhub/internal/infra/obs"
)

const (
	EventBookingCreated = "booking.created"
	EventBookingDeleted = "booking.deleted"
)

type bookingEvent struct {
	Type       string  `json:"type"`
	BookingID  string  `json:"booking_id"`
	RoomNumber string  `json:"room_number"`
	GuestName  string  `json:"guest_name"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	TotalPrice float64 `json:"total_price"`
	OccurredAt string  `json:"occurred_at"`
}

// BookingEvents emits booking lifecycle events keyed by room number, so
// consumers see each room's history in order.
type BookingEvents struct {
	producer *Producer
	topic    string
}

func NewBookingEvents(producer *Producer, topic string) *BookingEvents {
	return &BookingEvents{producer: producer, topic: topic}
}

func (e *BookingEvents) BookingCreated(ctx context.Context, b domainbooking.Booking) error {
	return e.emit(ctx, EventBookingCreated, b)
}

func (e *BookingEvents) BookingDeleted(ctx context.Context, b domainbooking.Booking) error {
	return e.emit(ctx, EventBookingDeleted, b)
}

func (e *BookingEvents) emit(ctx context.Context, eventType string, b domainbooking.Booking) error {
	payload, err := json.Marshal(bookingEvent{
		Type:       eventType,
		BookingID:  b.ID,
		RoomNumber: b.RoomNumber,
		GuestName:  b.GuestName,
		CheckIn:    string(b.Range.CheckIn),
		CheckOut:   string(b.Range.CheckOut),
		TotalPrice: b.TotalPrice,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("encode %s: %w", eventType, err)
	}
	headers := map[string]string{"event-type": eventType}
	if id := obs.RequestIDFromContext(ctx); id != "" {
		headers["request-id"] = id
	}
	return e.producer.Publish(ctx, e.topic, b.RoomNumber, payload, headers)
}
