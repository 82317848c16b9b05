package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/frontdesk-suite/service-frontdesk/internal/domain"
	bookingDomain "github.com/frontdesk-suite/service-frontdesk/internal/domain/booking"
	providerDomain "github.com/frontdesk-suite/service-frontdesk/internal/domain/provider"
	"github.com/frontdesk-suite/service-frontdesk/internal/events"
	"github.com/frontdesk-suite/service-frontdesk/internal/rules"
)

// CreateBookingRequest holds the data needed to create a new booking.
type CreateBookingRequest struct {
	ProviderID  uuid.UUID `json:"provider_id" binding:"required"`
	ClientName  string    `json:"client_name" binding:"required"`
	ClientPhone string    `json:"client_phone" binding:"required"`
	ClientEmail string    `json:"client_email" binding:"omitempty,email"`
	ServiceType string    `json:"service_type"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Notes       string    `json:"notes"`
}

// UpdateBookingRequest holds a partial booking update. Zero values leave the
// corresponding field unchanged; a non-empty Status delegates to the
// lifecycle state machine.
type UpdateBookingRequest struct {
	ClientName  string     `json:"client_name"`
	ClientPhone string     `json:"client_phone"`
	ClientEmail string     `json:"client_email" binding:"omitempty,email"`
	ServiceType string     `json:"service_type"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes"`
}

// ListBookingsQuery narrows a booking list request.
type ListBookingsQuery struct {
	ProviderID *uuid.UUID
	Status     string
	From       *time.Time
	To         *time.Time
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID          uuid.UUID `json:"id"`
	Reference   string    `json:"reference"`
	ProviderID  uuid.UUID `json:"provider_id"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	ClientEmail string    `json:"client_email,omitempty"`
	ServiceType string    `json:"service_type,omitempty"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BookingStatsDTO holds booking counts grouped by status.
type BookingStatsDTO struct {
	TotalBookings int64            `json:"total_bookings"`
	ByStatus      map[string]int64 `json:"by_status"`
}

// BookingService is the application service orchestrating booking use cases:
// validation, lifecycle transitions, persistence and event publication. It is
// stateless; each call validates fully before committing anything.
type BookingService struct {
	repo      bookingDomain.BookingRepository
	providers providerDomain.ProviderRepository
	publisher EventPublisher
	logger    *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	repo bookingDomain.BookingRepository,
	providers providerDomain.ProviderRepository,
	publisher EventPublisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		repo:      repo,
		providers: providers,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateBooking validates the request and persists a new booking with
// status=pending. The referenced provider must exist; an inactive provider
// still resolves. Sector-specific rules run against the provider's sector.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingDTO, error) {
	b, err := bookingDomain.NewBooking(
		req.ProviderID,
		req.ClientName, req.ClientPhone, req.ClientEmail,
		req.ServiceType,
		req.ScheduledAt,
		req.Notes,
	)
	if err != nil {
		return nil, err
	}

	p, err := s.providers.FindByID(ctx, req.ProviderID)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, domain.NewReferenceError("Provider", req.ProviderID.String())
		}
		return nil, err
	}

	if err := rules.Check(p.Sector(), rules.BookingDetails{
		ServiceType: req.ServiceType,
		Notes:       req.Notes,
		ScheduledAt: req.ScheduledAt,
	}); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		zap.String("booking_id", b.ID().String()),
		zap.String("reference", b.Reference()),
		zap.String("provider_id", p.ID().String()),
	)

	evt := events.BookingCreatedEvent{
		BookingID:   b.ID(),
		Reference:   b.Reference(),
		ProviderID:  b.ProviderID(),
		Sector:      p.Sector(),
		ServiceType: b.ServiceType(),
		ScheduledAt: b.ScheduledAt(),
		OccurredAt:  time.Now().UTC(),
	}
	s.publishEvent(ctx, events.TopicBookingEvents, events.BookingCreated, b.ID().String(), evt)

	result := toBookingDTO(b)
	return &result, nil
}

// GetBooking retrieves a single booking by ID.
func (s *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (*BookingDTO, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toBookingDTO(b)
	return &result, nil
}

// GetBookingByReference retrieves a single booking by its reference.
func (s *BookingService) GetBookingByReference(ctx context.Context, reference string) (*BookingDTO, error) {
	b, err := s.repo.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	result := toBookingDTO(b)
	return &result, nil
}

// ListBookings retrieves paginated bookings matching the query.
func (s *BookingService) ListBookings(ctx context.Context, query ListBookingsQuery, page, limit int) (*domain.PaginatedResult[BookingDTO], error) {
	filter := bookingDomain.Filter{
		ProviderID: query.ProviderID,
		From:       query.From,
		To:         query.To,
	}
	if query.Status != "" {
		status, err := bookingDomain.ParseBookingStatus(query.Status)
		if err != nil {
			return nil, domain.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	bookings, total, err := s.repo.List(ctx, filter, page, limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]BookingDTO, len(bookings))
	for i, b := range bookings {
		dtos[i] = toBookingDTO(b)
	}

	result := domain.NewPaginatedResult(dtos, total, page, limit)
	return &result, nil
}

// UpdateBooking applies a partial update. A status field delegates to the
// lifecycle state machine; a new scheduled time re-runs the temporal check.
func (s *BookingService) UpdateBooking(ctx context.Context, id uuid.UUID, req UpdateBookingRequest) (*BookingDTO, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fromStatus := b.Status()
	if req.Status != "" {
		target, err := bookingDomain.ParseBookingStatus(req.Status)
		if err != nil {
			return nil, domain.NewValidationError(err.Error())
		}
		if err := b.TransitionTo(target); err != nil {
			return nil, err
		}
	}

	if req.ScheduledAt != nil {
		if err := b.Reschedule(*req.ScheduledAt); err != nil {
			return nil, err
		}
	}

	if err := b.UpdateDetails(req.ClientName, req.ClientPhone, req.ClientEmail, req.ServiceType, req.Notes); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("booking updated", zap.String("booking_id", id.String()))

	if b.Status() != fromStatus {
		s.publishStatusChanged(ctx, b, fromStatus)
	}

	result := toBookingDTO(b)
	return &result, nil
}

// ConfirmBooking transitions a pending booking to confirmed.
func (s *BookingService) ConfirmBooking(ctx context.Context, id uuid.UUID) (*BookingDTO, error) {
	return s.transition(ctx, id, (*bookingDomain.Booking).Confirm)
}

// CompleteBooking transitions a confirmed booking to completed.
func (s *BookingService) CompleteBooking(ctx context.Context, id uuid.UUID) (*BookingDTO, error) {
	return s.transition(ctx, id, (*bookingDomain.Booking).Complete)
}

// CancelBooking cancels a pending or confirmed booking. Cancelling an
// already-cancelled booking fails with an invalid-transition error.
func (s *BookingService) CancelBooking(ctx context.Context, id uuid.UUID) (*BookingDTO, error) {
	return s.transition(ctx, id, (*bookingDomain.Booking).Cancel)
}

// DeleteBooking hard-deletes a booking record, independent of status.
func (s *BookingService) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("booking deleted", zap.String("booking_id", id.String()))
	return nil
}

// GetBookingStats returns aggregate booking counts grouped by status.
func (s *BookingService) GetBookingStats(ctx context.Context) (*BookingStatsDTO, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, c := range counts {
		total += c
	}

	return &BookingStatsDTO{
		TotalBookings: total,
		ByStatus:      counts,
	}, nil
}

// --- Helpers ---

func (s *BookingService) transition(ctx context.Context, id uuid.UUID, move func(*bookingDomain.Booking) error) (*BookingDTO, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fromStatus := b.Status()
	if err := move(b); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("booking status changed",
		zap.String("booking_id", b.ID().String()),
		zap.String("from", string(fromStatus)),
		zap.String("to", string(b.Status())),
	)
	s.publishStatusChanged(ctx, b, fromStatus)

	result := toBookingDTO(b)
	return &result, nil
}

func (s *BookingService) publishStatusChanged(ctx context.Context, b *bookingDomain.Booking, from bookingDomain.BookingStatus) {
	var eventType string
	switch b.Status() {
	case bookingDomain.StatusConfirmed:
		eventType = events.BookingConfirmed
	case bookingDomain.StatusCompleted:
		eventType = events.BookingCompleted
	case bookingDomain.StatusCancelled:
		eventType = events.BookingCancelled
	default:
		return
	}

	evt := events.BookingStatusChangedEvent{
		BookingID:  b.ID(),
		Reference:  b.Reference(),
		ProviderID: b.ProviderID(),
		FromStatus: string(from),
		ToStatus:   string(b.Status()),
		OccurredAt: time.Now().UTC(),
	}
	s.publishEvent(ctx, events.TopicBookingEvents, eventType, b.ID().String(), evt)
}

func (s *BookingService) publishEvent(ctx context.Context, topic, eventType, key string, data interface{}) {
	cloudEvent, err := events.NewCloudEvent("service-frontdesk", eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := s.publisher.PublishEvent(ctx, topic, key, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", topic),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

func toBookingDTO(b *bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		ID:          b.ID(),
		Reference:   b.Reference(),
		ProviderID:  b.ProviderID(),
		ClientName:  b.ClientName(),
		ClientPhone: b.ClientPhone(),
		ClientEmail: b.ClientEmail(),
		ServiceType: b.ServiceType(),
		ScheduledAt: b.ScheduledAt(),
		Status:      string(b.Status()),
		Notes:       b.Notes(),
		CreatedAt:   b.CreatedAt(),
		UpdatedAt:   b.UpdatedAt(),
	}
}
