package queries

import (
	"context"
	"time"

	"waybill/internal/core/domain/model/kernel"
	"waybill/internal/core/domain/model/waybill"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTransitionHistoryQueryHandler reads the transition log of a waybill from
// the database. Entries come back in insertion order, which is also
// chronological order since the log is append-only.
type GetTransitionHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetTransitionHistoryQueryHandler creates a handler for transition log queries.
// Requires a GORM database connection for query execution.
func NewGetTransitionHistoryQueryHandler(db *gorm.DB) GetTransitionHistoryQueryHandler {
	return GetTransitionHistoryQueryHandler{db: db}
}

// Handle executes the query. An unknown waybill id yields an empty slice, not
// an error: an empty log and an absent waybill are indistinguishable here.
func (h GetTransitionHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetTransitionHistoryQuery,
) ([]GetTransitionHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetTransitionHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			waybill_id,
			from_status,
			to_status,
			operator,
			operate_time,
			remark
		FROM transition_logs
		WHERE waybill_id = ?
		ORDER BY id
	`, query.WaybillID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetTransitionHistoryQueryResponse
		var waybillID uuid.UUID
		var fromStatus, toStatus int
		var operateTime time.Time

		err = rows.Scan(
			&entry.ID,
			&waybillID,
			&fromStatus,
			&toStatus,
			&entry.Operator,
			&operateTime,
			&entry.Remark,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(waybillID[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.WaybillID = id
		entry.FromStatus = waybill.Status(fromStatus)
		entry.ToStatus = waybill.Status(toStatus)
		entry.OperateTime = operateTime
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
