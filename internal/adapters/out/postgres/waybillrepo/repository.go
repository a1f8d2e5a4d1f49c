package waybillrepo

import (
	"context"
	"errors"

	"waybill/internal/core/domain/model/kernel"
	"waybill/internal/core/domain/model/waybill"
	"waybill/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWaybillRepository implements WaybillRepository using GORM.
type GormWaybillRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWaybillRepository creates a new GORM waybill repository.
func NewGormWaybillRepository(db *gorm.DB, tracker aggregateTracker) *GormWaybillRepository {
	return &GormWaybillRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new waybill to the database.
func (r *GormWaybillRepository) Add(ctx context.Context, aggregate *waybill.Waybill) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a waybill by ID.
func (r *GormWaybillRepository) Get(ctx context.Context, id kernel.UUID) (*waybill.Waybill, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WaybillDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("waybill", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// CompareAndSwap writes the aggregate's new status, version and timestamp only
// if the stored row still carries the expected version and status. A row that
// has moved on since the read matches neither condition, so the update affects
// zero rows and the swap reports a conflict instead of overwriting the
// concurrent change.
func (r *GormWaybillRepository) CompareAndSwap(
	ctx context.Context,
	aggregate *waybill.Waybill,
	expectedVersion int64,
	expectedStatus waybill.Status,
) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&WaybillDTO{}).
		Where("id = ? AND version = ? AND status = ?", dto.ID, expectedVersion, int(expectedStatus)).
		Updates(map[string]any{
			"status":     dto.Status,
			"version":    dto.Version,
			"updated_at": dto.UpdatedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return true, nil
}
