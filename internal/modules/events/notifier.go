package events

import (
	"context"
	"time"

	"lakeview/internal/domain"
)

// BookingEvent is the payload pushed to the admin live feed.
type BookingEvent struct {
	Event     string          `json:"event"`
	Booking   *domain.Booking `json:"booking"`
	Timestamp time.Time       `json:"timestamp"`
}

const (
	EventBookingCreated       = "booking.created"
	EventBookingCancelled     = "booking.cancelled"
	EventBookingStatusChanged = "booking.status_changed"
)

// Notifier publishes booking lifecycle events to the hub.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking) error {
	return n.publish(EventBookingCreated, b)
}

func (n *Notifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking) error {
	return n.publish(EventBookingCancelled, b)
}

func (n *Notifier) NotifyBookingStatusChanged(ctx context.Context, b *domain.Booking) error {
	return n.publish(EventBookingStatusChanged, b)
}

func (n *Notifier) publish(event string, b *domain.Booking) error {
	n.hub.Broadcast(BookingEvent{
		Event:     event,
		Booking:   b,
		Timestamp: time.Now().UTC(),
	})
	return nil
}
