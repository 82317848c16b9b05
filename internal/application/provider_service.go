package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/frontdesk-suite/service-frontdesk/internal/domain"
	providerDomain "github.com/frontdesk-suite/service-frontdesk/internal/domain/provider"
	"github.com/frontdesk-suite/service-frontdesk/internal/events"
)

// EventPublisher publishes domain events. Publishing is best effort; failures
// are logged and never fail the operation that produced the event.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event events.CloudEvent) error
}

// RegisterProviderRequest holds the data needed to register a provider.
type RegisterProviderRequest struct {
	Name    string `json:"name" binding:"required"`
	Sector  string `json:"sector" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
}

// UpdateProviderRequest holds a partial provider update. Zero values leave
// the corresponding field unchanged.
type UpdateProviderRequest struct {
	Name     string `json:"name"`
	Sector   string `json:"sector"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"omitempty,email"`
	Address  string `json:"address"`
	IsActive *bool  `json:"is_active"`
}

// ProviderDTO is the response representation of a provider.
type ProviderDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Sector    string    `json:"sector"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProviderService is the application service orchestrating provider use
// cases. It is stateless; every dependency arrives through the constructor.
type ProviderService struct {
	repo      providerDomain.ProviderRepository
	publisher EventPublisher
	logger    *zap.Logger
}

// NewProviderService creates a new ProviderService.
func NewProviderService(
	repo providerDomain.ProviderRepository,
	publisher EventPublisher,
	logger *zap.Logger,
) *ProviderService {
	return &ProviderService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// RegisterProvider registers a new provider. The sector value is an open
// string; it is never validated against a closed set.
func (s *ProviderService) RegisterProvider(ctx context.Context, req RegisterProviderRequest) (*ProviderDTO, error) {
	p, err := providerDomain.NewProvider(req.Name, req.Sector, req.Phone, req.Email, req.Address)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("provider registered",
		zap.String("provider_id", p.ID().String()),
		zap.String("sector", p.Sector()),
	)

	evt := events.ProviderRegisteredEvent{
		ProviderID: p.ID(),
		Name:       p.Name(),
		Sector:     p.Sector(),
		OccurredAt: time.Now().UTC(),
	}
	s.publishEvent(ctx, events.TopicProviderEvents, events.ProviderRegistered, p.ID().String(), evt)

	result := toProviderDTO(p)
	return &result, nil
}

// GetProvider retrieves a single provider by ID.
func (s *ProviderService) GetProvider(ctx context.Context, id uuid.UUID) (*ProviderDTO, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toProviderDTO(p)
	return &result, nil
}

// ListProviders retrieves paginated providers, optionally filtered by sector.
func (s *ProviderService) ListProviders(ctx context.Context, sector string, page, limit int) (*domain.PaginatedResult[ProviderDTO], error) {
	providers, total, err := s.repo.List(ctx, sector, page, limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]ProviderDTO, len(providers))
	for i, p := range providers {
		dtos[i] = toProviderDTO(p)
	}

	result := domain.NewPaginatedResult(dtos, total, page, limit)
	return &result, nil
}

// UpdateProvider applies a partial update to a provider.
func (s *ProviderService) UpdateProvider(ctx context.Context, id uuid.UUID, req UpdateProviderRequest) (*ProviderDTO, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := p.Update(req.Name, req.Sector, req.Phone, req.Email, req.Address); err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		if *req.IsActive {
			p.Activate()
		} else {
			p.Deactivate()
		}
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("provider updated", zap.String("provider_id", id.String()))
	result := toProviderDTO(p)
	return &result, nil
}

// DeactivateProvider marks a provider inactive. Preferred over deletion;
// existing bookings keep a resolvable provider reference.
func (s *ProviderService) DeactivateProvider(ctx context.Context, id uuid.UUID) (*ProviderDTO, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Deactivate()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("provider deactivated", zap.String("provider_id", id.String()))

	evt := events.ProviderDeactivatedEvent{
		ProviderID: p.ID(),
		OccurredAt: time.Now().UTC(),
	}
	s.publishEvent(ctx, events.TopicProviderEvents, events.ProviderDeactivated, p.ID().String(), evt)

	result := toProviderDTO(p)
	return &result, nil
}

// DeleteProvider hard-deletes a provider record.
func (s *ProviderService) DeleteProvider(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("provider deleted", zap.String("provider_id", id.String()))
	return nil
}

func (s *ProviderService) publishEvent(ctx context.Context, topic, eventType, key string, data interface{}) {
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

func toProviderDTO(p *providerDomain.Provider) ProviderDTO {
	return ProviderDTO{
		ID:        p.ID(),
		Name:      p.Name(),
		Sector:    p.Sector(),
		Phone:     p.Phone(),
		Email:     p.Email(),
		Address:   p.Address(),
		IsActive:  p.IsActive(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}
