package provider

import (
	"context"

	"github.com/google/uuid"
)

// ProviderRepository defines the persistence contract for provider aggregates.
type ProviderRepository interface {
	// FindByID retrieves a provider by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Provider, error)

	// List retrieves providers with pagination, optionally filtered by sector.
	List(ctx context.Context, sector string, page, limit int) ([]*Provider, int64, error)

	// Save persists a new provider.
	Save(ctx context.Context, p *Provider) error

	// Update persists changes to an existing provider (last writer wins).
	Update(ctx context.Context, p *Provider) error

	// Delete removes a provider record.
	Delete(ctx context.Context, id uuid.UUID) error
}
