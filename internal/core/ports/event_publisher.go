package ports

import (
	"context"
	"time"

	"waybill/internal/core/domain/model/kernel"
	"waybill/internal/core/domain/model/waybill"
)

// WaybillTransferredEvent describes one applied, non-no-op transition.
// Its content is identical to the persisted transition log entry, letting
// external consumers (notification publishers, projections) react to status
// changes without reading the log table.
type WaybillTransferredEvent struct {
	WaybillID  kernel.UUID
	FromStatus waybill.Status
	ToStatus   waybill.Status
	Operator   string
	OccurredAt time.Time
}

// TransitionPublisher emits transition events to external collaborators.
// Publish is called after the transition has been committed; implementations
// must not be able to fail the transfer itself.
type TransitionPublisher interface {
	Publish(ctx context.Context, event WaybillTransferredEvent)
}
