package translogrepo

import (
	"context"

	"waybill/internal/core/domain/model/kernel"
	"waybill/internal/core/domain/model/waybill"

	"gorm.io/gorm"
)

// GormTransitionLogRepository implements TransitionLogRepository using GORM.
type GormTransitionLogRepository struct {
	db *gorm.DB
}

// NewGormTransitionLogRepository creates a new GORM transition log repository.
func NewGormTransitionLogRepository(db *gorm.DB) *GormTransitionLogRepository {
	return &GormTransitionLogRepository{db: db}
}

// Append saves a new transition log entry to the database.
func (r *GormTransitionLogRepository) Append(ctx context.Context, entry *waybill.TransitionLogEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByWaybillID retrieves all transition log entries for a waybill, oldest first.
func (r *GormTransitionLogRepository) GetByWaybillID(
	ctx context.Context,
	waybillID kernel.UUID,
) ([]*waybill.TransitionLogEntry, error) {
	if err := waybillID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransitionLogDTO
	err := r.db.WithContext(ctx).
		Where("waybill_id = ?", waybillID.Bytes()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*waybill.TransitionLogEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
