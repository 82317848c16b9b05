package provider

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/frontdesk-suite/service-frontdesk/internal/domain"
)

// RecommendedSectors is a non-binding vocabulary used by UIs. The core
// accepts any non-empty sector string; new business types need no code
// changes here.
var RecommendedSectors = []string{
	"medical", "dental", "real_estate", "transportation", "laboratory",
	"hospitality", "automotive", "beauty", "legal", "education",
	"veterinary", "fitness", "photography", "consulting", "maintenance",
	"food_service", "entertainment", "other",
}

// Provider is the aggregate root for a service-providing business.
type Provider struct {
	id        uuid.UUID
	name      string
	sector    string
	phone     string
	email     string
	address   string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

// NewProvider creates an active provider with validated fields.
func NewProvider(name, sector, phone, email, address string) (*Provider, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewValidationError("provider name is required")
	}
	if strings.TrimSpace(sector) == "" {
		return nil, domain.NewValidationError("provider sector is required")
	}

	now := time.Now().UTC()
	return &Provider{
		id:        uuid.New(),
		name:      name,
		sector:    sector,
		phone:     phone,
		email:     email,
		address:   address,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a Provider from persistence data (no validation).
func Reconstruct(
	id uuid.UUID,
	name, sector, phone, email, address string,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Provider {
	return &Provider{
		id:        id,
		name:      name,
		sector:    sector,
		phone:     phone,
		email:     email,
		address:   address,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// --- Getters ---

func (p *Provider) ID() uuid.UUID        { return p.id }
func (p *Provider) Name() string         { return p.name }
func (p *Provider) Sector() string       { return p.sector }
func (p *Provider) Phone() string        { return p.phone }
func (p *Provider) Email() string        { return p.email }
func (p *Provider) Address() string      { return p.address }
func (p *Provider) IsActive() bool       { return p.isActive }
func (p *Provider) CreatedAt() time.Time { return p.createdAt }
func (p *Provider) UpdatedAt() time.Time { return p.updatedAt }

// --- Behavior ---

// Update applies a partial update; empty strings leave fields unchanged.
func (p *Provider) Update(name, sector, phone, email, address string) error {
	if name != "" && strings.TrimSpace(name) == "" {
		return domain.NewValidationError("provider name is required")
	}
	if sector != "" && strings.TrimSpace(sector) == "" {
		return domain.NewValidationError("provider sector is required")
	}

	if name != "" {
		p.name = name
	}
	if sector != "" {
		p.sector = sector
	}
	if phone != "" {
		p.phone = phone
	}
	if email != "" {
		p.email = email
	}
	if address != "" {
		p.address = address
	}
	p.updatedAt = time.Now().UTC()
	return nil
}

// Deactivate marks the provider as inactive. Deactivation is preferred over
// hard deletion; existing bookings keep a resolvable reference.
func (p *Provider) Deactivate() {
	p.isActive = false
	p.updatedAt = time.Now().UTC()
}

// Activate marks the provider as active again.
func (p *Provider) Activate() {
	p.isActive = true
	p.updatedAt = time.Now().UTC()
}
