package ports

import (
	"context"

	"waybill/internal/core/domain/model/kernel"
	"waybill/internal/core/domain/model/waybill"
)

// TransitionLogRepository defines the persistence contract for the transition
// audit log. The interface is deliberately append-only: no update or delete
// operation exists, so immutability of the history is enforced by design
// rather than by convention.
type TransitionLogRepository interface {
	// Append persists a new transition log entry. The entry's id is assigned
	// by storage. Append never fails due to logical conflict; the entry must
	// be durable once Append returns within a committed unit of work.
	Append(ctx context.Context, entry *waybill.TransitionLogEntry) error

	// GetByWaybillID retrieves the full transition history of a waybill,
	// ordered by entry id ascending. Returns an empty slice for waybills
	// without applied transitions.
	GetByWaybillID(ctx context.Context, waybillID kernel.UUID) ([]*waybill.TransitionLogEntry, error)
}
