package queries

import (
	"context"

	"waybill/internal/core/domain/model/kernel"
	"waybill/internal/core/domain/model/waybill"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUncompletedWaybillsQueryHandler retrieves waybills that have not reached
// a terminal status. Completed and Cancelled records are filtered out.
type GetUncompletedWaybillsQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedWaybillsQueryHandler creates a handler for in-flight waybill queries.
// Requires a GORM database connection for query execution.
func NewGetUncompletedWaybillsQueryHandler(db *gorm.DB) GetUncompletedWaybillsQueryHandler {
	return GetUncompletedWaybillsQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal waybills.
// Results are sorted by waybill ID for consistent output.
func (h GetUncompletedWaybillsQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedWaybillsQuery,
) ([]GetUncompletedWaybillsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	waybills := make([]GetUncompletedWaybillsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			version
		FROM waybills
		WHERE status NOT IN (?, ?)
		ORDER BY id
	`, waybill.Completed, waybill.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUncompletedWaybillsQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(&id, &status, &resp.Version)
		if err != nil {
			return nil, err
		}

		waybillID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = waybillID
		resp.Status = waybill.Status(status)
		waybills = append(waybills, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return waybills, nil
}
