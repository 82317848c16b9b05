package events

import (
	"time"

	"github.com/google/uuid"
)

// Topics carrying front-desk domain events.
const (
	TopicBookingEvents  = "booking.events"
	TopicProviderEvents = "provider.events"
)

// Event type identifiers.
const (
	BookingCreated   = "booking.created"
	BookingConfirmed = "booking.confirmed"
	BookingCompleted = "booking.completed"
	BookingCancelled = "booking.cancelled"

	ProviderRegistered  = "provider.registered"
	ProviderDeactivated = "provider.deactivated"
)

// BookingCreatedEvent is published after a booking is persisted with
// status=pending.
type BookingCreatedEvent struct {
	BookingID   uuid.UUID `json:"booking_id"`
	Reference   string    `json:"reference"`
	ProviderID  uuid.UUID `json:"provider_id"`
	Sector      string    `json:"sector"`
	ServiceType string    `json:"service_type,omitempty"`
	ScheduledAt time.Time `json:"scheduled_at"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// BookingStatusChangedEvent is published after a successful lifecycle
// transition. It backs the confirmed, completed and cancelled event types.
type BookingStatusChangedEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	Reference  string    `json:"reference"`
	ProviderID uuid.UUID `json:"provider_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ProviderRegisteredEvent is published after a provider registration.
type ProviderRegisteredEvent struct {
	ProviderID uuid.UUID `json:"provider_id"`
	Name       string    `json:"name"`
	Sector     string    `json:"sector"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ProviderDeactivatedEvent is published after a provider is deactivated.
type ProviderDeactivatedEvent struct {
	ProviderID uuid.UUID `json:"provider_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
