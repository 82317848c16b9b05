package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/frontdesk-suite/service-frontdesk/internal/domain"
	bookingDomain "github.com/frontdesk-suite/service-frontdesk/internal/domain/booking"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Reference   string    `gorm:"uniqueIndex;not null;size:20"`
	ProviderID  uuid.UUID `gorm:"type:uuid;index;not null"`
	ClientName  string    `gorm:"size:255;not null"`
	ClientPhone string    `gorm:"size:50;not null"`
	ClientEmail string    `gorm:"size:255"`
	ServiceType string    `gorm:"size:100"`
	ScheduledAt time.Time `gorm:"not null;index"`
	Status      string    `gorm:"size:30;not null;index"`
	Notes       string    `gorm:"size:1000"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of BookingRepository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID retrieves a booking by its unique identifier.
func (r *GormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", id.String())
		}
		return nil, domain.NewStorageError("failed to find booking by ID", err)
	}
	return toDomainBooking(&model)
}

// FindByReference retrieves a booking by its human-readable reference.
func (r *GormBookingRepository) FindByReference(ctx context.Context, reference string) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", reference)
		}
		return nil, domain.NewStorageError("failed to find booking by reference", err)
	}
	return toDomainBooking(&model)
}

// List retrieves bookings matching the filter with pagination.
func (r *GormBookingRepository) List(ctx context.Context, filter bookingDomain.Filter, page, limit int) ([]*bookingDomain.Booking, int64, error) {
	query := r.db.WithContext(ctx).Model(&BookingModel{})
	if filter.ProviderID != nil {
		query = query.Where("provider_id = ?", *filter.ProviderID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.From != nil {
		query = query.Where("scheduled_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("scheduled_at <= ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, domain.NewStorageError("failed to count bookings", err)
	}

	var models []BookingModel
	offset := (page - 1) * limit
	if err := query.
		Order("scheduled_at ASC, created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, domain.NewStorageError("failed to list bookings", err)
	}

	bookings := make([]*bookingDomain.Booking, len(models))
	for i, m := range models {
		b, err := toDomainBooking(&m)
		if err != nil {
			return nil, 0, err
		}
		bookings[i] = b
	}
	return bookings, total, nil
}

// CountByStatus returns booking counts grouped by status.
func (r *GormBookingRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var results []statusCount
	if err := r.db.WithContext(ctx).Model(&BookingModel{}).
		Select("status, count(*) as count").
		Group("status").
		Find(&results).Error; err != nil {
		return nil, domain.NewStorageError("failed to count bookings by status", err)
	}

	counts := make(map[string]int64)
	for _, sc := range results {
		counts[sc.Status] = sc.Count
	}
	return counts, nil
}

// Save persists a new booking.
func (r *GormBookingRepository) Save(ctx context.Context, b *bookingDomain.Booking) error {
	model := toBookingModel(b)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return domain.NewStorageError("failed to save booking", err)
	}
	return nil
}

// Update persists changes to an existing booking. The row update is atomic;
// concurrent writers follow last-writer-wins.
func (r *GormBookingRepository) Update(ctx context.Context, b *bookingDomain.Booking) error {
	model := toBookingModel(b)
	result := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"client_name":  model.ClientName,
			"client_phone": model.ClientPhone,
			"client_email": model.ClientEmail,
			"service_type": model.ServiceType,
			"scheduled_at": model.ScheduledAt,
			"status":       model.Status,
			"notes":        model.Notes,
			"updated_at":   model.UpdatedAt,
		})

	if result.Error != nil {
		return domain.NewStorageError("failed to update booking", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Booking", b.ID().String())
	}
	return nil
}

// Delete removes a booking record.
func (r *GormBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&BookingModel{})
	if result.Error != nil {
		return domain.NewStorageError("failed to delete booking", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Booking", id.String())
	}
	return nil
}

// --- Conversion Helpers ---

func toBookingModel(b *bookingDomain.Booking) *BookingModel {
	return &BookingModel{
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

func toDomainBooking(m *BookingModel) (*bookingDomain.Booking, error) {
	status, err := bookingDomain.ParseBookingStatus(m.Status)
	if err != nil {
		return nil, err
	}

	return bookingDomain.Reconstruct(
		m.ID,
		m.Reference,
		m.ProviderID,
		m.ClientName, m.ClientPhone, m.ClientEmail,
		m.ServiceType,
		m.ScheduledAt,
		status,
		m.Notes,
		m.CreatedAt, m.UpdatedAt,
	), nil
}
