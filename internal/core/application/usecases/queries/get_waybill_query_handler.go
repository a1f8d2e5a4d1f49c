package queries

import (
	"context"
	"time"

	"waybill/internal/core/domain/model/kernel"
	"waybill/internal/core/domain/model/waybill"
	"waybill/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWaybillQueryHandler reads the current waybill projection straight from
// the database, bypassing the aggregate.
type GetWaybillQueryHandler struct {
	db *gorm.DB
}

// NewGetWaybillQueryHandler creates a handler for single-waybill lookups.
// Requires a GORM database connection for query execution.
func NewGetWaybillQueryHandler(db *gorm.DB) GetWaybillQueryHandler {
	return GetWaybillQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound when no record
// exists for the requested id.
func (h GetWaybillQueryHandler) Handle(
	ctx context.Context,
	query GetWaybillQuery,
) (GetWaybillQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWaybillQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			version,
			updated_at
		FROM waybills
		WHERE id = ?
	`, query.WaybillID().String()).Rows()
	if err != nil {
		return GetWaybillQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetWaybillQueryResponse{}, err
		}
		return GetWaybillQueryResponse{}, errs.NewObjectNotFoundError("waybillId", query.WaybillID().String())
	}

	var id uuid.UUID
	var status int
	var version int64
	var updatedAt time.Time

	if err = rows.Scan(&id, &status, &version, &updatedAt); err != nil {
		return GetWaybillQueryResponse{}, err
	}

	waybillID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetWaybillQueryResponse{}, idErr
	}

	return GetWaybillQueryResponse{
		ID:        waybillID,
		Status:    waybill.Status(status),
		Version:   version,
		UpdatedAt: updatedAt,
	}, nil
}
