package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Filter narrows booking list queries. Nil fields are ignored; predicates
// are expressed as (field, operator, value) tuples by the storage layer.
type Filter struct {
	ProviderID *uuid.UUID
	Status     *BookingStatus
	From       *time.Time
	To         *time.Time
}

// BookingRepository defines the persistence contract for booking aggregates.
type BookingRepository interface {
	// FindByID retrieves a booking by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// FindByReference retrieves a booking by its human-readable reference.
	FindByReference(ctx context.Context, reference string) (*Booking, error)

	// List retrieves bookings matching the filter with pagination, ordered
	// by scheduled time with insertion order as tiebreak.
	List(ctx context.Context, filter Filter, page, limit int) ([]*Booking, int64, error)

	// CountByStatus returns booking counts grouped by status.
	CountByStatus(ctx context.Context) (map[string]int64, error)

	// Save persists a new booking.
	Save(ctx context.Context, b *Booking) error

	// Update persists changes to an existing booking (last writer wins,
	// atomic at the single-record granularity).
	Update(ctx context.Context, b *Booking) error

	// Delete removes a booking record.
	Delete(ctx context.Context, id uuid.UUID) error
}
