package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/frontdesk-suite/service-frontdesk/internal/domain"
	providerDomain "github.com/frontdesk-suite/service-frontdesk/internal/domain/provider"
)

// ProviderModel is the GORM model for the providers table.
type ProviderModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:255;not null;index"`
	Sector    string    `gorm:"size:100;not null;index"`
	Phone     string    `gorm:"size:50"`
	Email     string    `gorm:"size:255"`
	Address   string    `gorm:"size:500"`
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (ProviderModel) TableName() string {
	return "providers"
}

// GormProviderRepository is the GORM-based implementation of ProviderRepository.
type GormProviderRepository struct {
	db *gorm.DB
}

// NewGormProviderRepository creates a new GormProviderRepository.
func NewGormProviderRepository(db *gorm.DB) *GormProviderRepository {
	return &GormProviderRepository{db: db}
}

// FindByID retrieves a provider by its unique identifier.
func (r *GormProviderRepository) FindByID(ctx context.Context, id uuid.UUID) (*providerDomain.Provider, error) {
	var model ProviderModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Provider", id.String())
		}
		return nil, domain.NewStorageError("failed to find provider by ID", err)
	}
	return toDomainProvider(&model), nil
}

// List retrieves providers with pagination, optionally filtered by sector.
func (r *GormProviderRepository) List(ctx context.Context, sector string, page, limit int) ([]*providerDomain.Provider, int64, error) {
	query := r.db.WithContext(ctx).Model(&ProviderModel{})
	if sector != "" {
		query = query.Where("sector = ?", sector)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, domain.NewStorageError("failed to count providers", err)
	}

	var models []ProviderModel
	offset := (page - 1) * limit
	if err := query.
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, domain.NewStorageError("failed to list providers", err)
	}

	providers := make([]*providerDomain.Provider, len(models))
	for i, m := range models {
		providers[i] = toDomainProvider(&m)
	}
	return providers, total, nil
}

// Save persists a new provider.
func (r *GormProviderRepository) Save(ctx context.Context, p *providerDomain.Provider) error {
	model := toProviderModel(p)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return domain.NewStorageError("failed to save provider", err)
	}
	return nil
}

// Update persists changes to an existing provider (last writer wins).
func (r *GormProviderRepository) Update(ctx context.Context, p *providerDomain.Provider) error {
	model := toProviderModel(p)
	result := r.db.WithContext(ctx).
		Model(&ProviderModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"sector":     model.Sector,
			"phone":      model.Phone,
			"email":      model.Email,
			"address":    model.Address,
			"is_active":  model.IsActive,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		return domain.NewStorageError("failed to update provider", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Provider", p.ID().String())
	}
	return nil
}

// Delete removes a provider record.
func (r *GormProviderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ProviderModel{})
	if result.Error != nil {
		return domain.NewStorageError("failed to delete provider", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Provider", id.String())
	}
	return nil
}

// --- Conversion Helpers ---

func toProviderModel(p *providerDomain.Provider) *ProviderModel {
	return &ProviderModel{
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

func toDomainProvider(m *ProviderModel) *providerDomain.Provider {
	return providerDomain.Reconstruct(
		m.ID,
		m.Name, m.Sector, m.Phone, m.Email, m.Address,
		m.IsActive,
		m.CreatedAt, m.UpdatedAt,
	)
}
