package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/frontdesk-suite/service-frontdesk/internal/domain"
)

const referenceChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Booking is the aggregate root for the booking domain. Status changes go
// exclusively through the transition methods below; all other fields mutate
// via partial update.
type Booking struct {
	id          uuid.UUID
	reference   string
	providerID  uuid.UUID
	clientName  string
	clientPhone string
	clientEmail string
	serviceType string
	scheduledAt time.Time
	status      BookingStatus
	notes       string
	createdAt   time.Time
	updatedAt   time.Time
}

// generateReference creates a human-readable booking reference in the format "FD-XXXXXX".
func generateReference() (string, error) {
	result := make([]byte, 6)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(referenceChars))))
		if err != nil {
			return "", fmt.Errorf("failed to generate booking reference: %w", err)
		}
		result[i] = referenceChars[n.Int64()]
	}
	return "FD-" + string(result), nil
}

// NewBooking creates a new Booking with status=pending after running the
// generic checks: required client fields, provider reference present, and
// scheduled_at strictly in the future.
func NewBooking(
	providerID uuid.UUID,
	clientName, clientPhone, clientEmail string,
	serviceType string,
	scheduledAt time.Time,
	notes string,
) (*Booking, error) {
	if providerID == uuid.Nil {
		return nil, domain.NewValidationError("provider ID is required")
	}
	if strings.TrimSpace(clientName) == "" {
		return nil, domain.NewValidationError("client name is required")
	}
	if strings.TrimSpace(clientPhone) == "" {
		return nil, domain.NewValidationError("client phone is required")
	}
	if !scheduledAt.After(time.Now()) {
		return nil, domain.NewValidationError("scheduled time must be in the future")
	}

	reference, err := generateReference()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Booking{
		id:          uuid.New(),
		reference:   reference,
		providerID:  providerID,
		clientName:  clientName,
		clientPhone: clientPhone,
		clientEmail: clientEmail,
		serviceType: serviceType,
		scheduledAt: scheduledAt,
		status:      StatusPending,
		notes:       notes,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstruct rebuilds a Booking from persistence data (no validation).
func Reconstruct(
	id uuid.UUID,
	reference string,
	providerID uuid.UUID,
	clientName, clientPhone, clientEmail string,
	serviceType string,
	scheduledAt time.Time,
	status BookingStatus,
	notes string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		reference:   reference,
		providerID:  providerID,
		clientName:  clientName,
		clientPhone: clientPhone,
		clientEmail: clientEmail,
		serviceType: serviceType,
		scheduledAt: scheduledAt,
		status:      status,
		notes:       notes,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// --- Getters ---

// ID returns the booking's unique identifier.
func (b *Booking) ID() uuid.UUID { return b.id }

// Reference returns the human-readable booking reference.
func (b *Booking) Reference() string { return b.reference }

// ProviderID returns the ID of the provider the booking is against.
func (b *Booking) ProviderID() uuid.UUID { return b.providerID }

// ClientName returns the client's full name.
func (b *Booking) ClientName() string { return b.clientName }

// ClientPhone returns the client's contact phone.
func (b *Booking) ClientPhone() string { return b.clientPhone }

// ClientEmail returns the client's email, possibly empty.
func (b *Booking) ClientEmail() string { return b.clientEmail }

// ServiceType returns the open-vocabulary service classification.
func (b *Booking) ServiceType() string { return b.serviceType }

// ScheduledAt returns when the engagement is scheduled.
func (b *Booking) ScheduledAt() time.Time { return b.scheduledAt }

// Status returns the current booking status.
func (b *Booking) Status() BookingStatus { return b.status }

// Notes returns the free-form notes attached to the booking.
func (b *Booking) Notes() string { return b.notes }

// CreatedAt returns the creation timestamp.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// --- Behavior ---

// TransitionTo moves the booking to the target status if the state machine
// allows the edge. On a rejected edge the booking is left unchanged.
func (b *Booking) TransitionTo(target BookingStatus) error {
	if !b.status.CanTransitionTo(target) {
		return domain.NewInvalidTransitionError(string(b.status), string(target))
	}
	b.status = target
	b.updatedAt = time.Now().UTC()
	return nil
}

// Confirm transitions the booking from pending to confirmed.
func (b *Booking) Confirm() error {
	return b.TransitionTo(StatusConfirmed)
}

// Complete transitions the booking from confirmed to completed.
func (b *Booking) Complete() error {
	return b.TransitionTo(StatusCompleted)
}

// Cancel transitions the booking to cancelled from pending or confirmed.
// Cancelling an already-cancelled booking is rejected.
func (b *Booking) Cancel() error {
	return b.TransitionTo(StatusCancelled)
}

// Reschedule moves the booking to a new time. The temporal check is re-run
// here; status-only transitions never re-validate time ordering.
func (b *Booking) Reschedule(scheduledAt time.Time) error {
	if !scheduledAt.After(time.Now()) {
		return domain.NewValidationError("scheduled time must be in the future")
	}
	b.scheduledAt = scheduledAt
	b.updatedAt = time.Now().UTC()
	return nil
}

// UpdateDetails applies a partial update to the non-status client fields;
// empty strings leave fields unchanged.
func (b *Booking) UpdateDetails(clientName, clientPhone, clientEmail, serviceType, notes string) error {
	if clientName != "" && strings.TrimSpace(clientName) == "" {
		return domain.NewValidationError("client name is required")
	}
	if clientPhone != "" && strings.TrimSpace(clientPhone) == "" {
		return domain.NewValidationError("client phone is required")
	}

	if clientName != "" {
		b.clientName = clientName
	}
	if clientPhone != "" {
		b.clientPhone = clientPhone
	}
	if clientEmail != "" {
		b.clientEmail = clientEmail
	}
	if serviceType != "" {
		b.serviceType = serviceType
	}
	if notes != "" {
		b.notes = notes
	}
	b.updatedAt = time.Now().UTC()
	return nil
}
