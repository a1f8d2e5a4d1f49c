// Package notifier provides the outbound notification adapter for applied
// transitions. The current implementation writes structured log records; a
// message broker can replace it behind the same port without touching the
// application layer.
package notifier

import (
	"context"
	"log/slog"

	"waybill/internal/core/ports"
)

// SlogTransitionPublisher publishes transition events as structured log records.
type SlogTransitionPublisher struct {
	logger *slog.Logger
}

// NewSlogTransitionPublisher creates a publisher backed by the given logger.
func NewSlogTransitionPublisher(logger *slog.Logger) *SlogTransitionPublisher {
	return &SlogTransitionPublisher{
		logger: logger.With("component", "transition_publisher"),
	}
}

// Publish emits one record per applied transition. Called by the transfer
// handler after the transaction has committed, so every published event
// corresponds to a durable state change.
func (p *SlogTransitionPublisher) Publish(ctx context.Context, event ports.WaybillTransferredEvent) {
	p.logger.InfoContext(ctx, "Waybill status transferred",
		"waybillId", event.WaybillID.String(),
		"fromStatus", event.FromStatus.String(),
		"toStatus", event.ToStatus.String(),
		"operator", event.Operator,
		"occurredAt", event.OccurredAt,
	)
}
