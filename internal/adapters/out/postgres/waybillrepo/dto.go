// Package waybillrepo provides data transfer objects and mapping functions for waybill persistence.
// This package implements the repository pattern for the waybill domain aggregate, handling
// the conversion between domain entities and database representations.
package waybillrepo

import (
	"time"

	"waybill/internal/core/domain/model/kernel"
	"waybill/internal/core/domain/model/waybill"

	"github.com/google/uuid"
)

// WaybillDTO represents the database structure for persisting waybill aggregates.
// Status is indexed because the monitoring queries filter on non-terminal
// statuses; version backs the conditional-write concurrency check.
type WaybillDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status    int       `gorm:"index"`
	Version   int64
	UpdatedAt time.Time
}

// TableName specifies the database table name for waybill entities.
// Overrides GORM's default naming convention to use "waybills".
func (WaybillDTO) TableName() string {
	return "waybills"
}

// fromDomain converts a waybill domain aggregate to its database representation.
func fromDomain(aggregate *waybill.Waybill) WaybillDTO {
	return WaybillDTO{
		ID:        aggregate.ID().Bytes(),
		Status:    int(aggregate.Status()),
		Version:   aggregate.Version(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a waybill domain aggregate using RestoreWaybill.
func toDomain(dto WaybillDTO) (*waybill.Waybill, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return waybill.RestoreWaybill(id, waybill.Status(dto.Status), dto.Version, dto.UpdatedAt)
}
