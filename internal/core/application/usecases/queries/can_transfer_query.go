package queries

import (
	"errors"

	"waybill/internal/core/domain/model/waybill"
	"waybill/internal/pkg/guard"
)

var (
	ErrCanTransferQueryIsNotConstructed = errors.New(
		"CanTransferQuery must be created via NewCanTransferQuery constructor",
	)
)

// CanTransferQuery asks whether a transfer between two statuses would be
// accepted. It consults the transition rules only and never touches storage,
// so the answer reflects the graph, not the current state of any particular
// waybill.
//
// Example:
//
//	query, _ := NewCanTransferQuery(waybill.Paid, waybill.Assigned)
//	handler := NewCanTransferQueryHandler()
//
//	allowed, err := handler.Handle(ctx, query)
type CanTransferQuery struct { //nolint:recvcheck //using for validation
	fromStatus waybill.Status
	toStatus   waybill.Status

	guard guard.ConstructorGuard
}

// NewCanTransferQuery creates a query for a single from/to status pair.
// Both statuses must be valid members of the lifecycle.
func NewCanTransferQuery(fromStatus waybill.Status, toStatus waybill.Status) (CanTransferQuery, error) {
	query := CanTransferQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setFromStatus(fromStatus); err != nil {
		return CanTransferQuery{}, err
	}
	if err := query.setToStatus(toStatus); err != nil {
		return CanTransferQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrCanTransferQueryIsNotConstructed if validation fails.
func (q CanTransferQuery) Validate() error {
	return q.guard.Validate(ErrCanTransferQueryIsNotConstructed)
}

// FromStatus returns the status the transfer would start from.
func (q CanTransferQuery) FromStatus() waybill.Status {
	return q.fromStatus
}

// ToStatus returns the requested target status.
func (q CanTransferQuery) ToStatus() waybill.Status {
	return q.toStatus
}

func (q *CanTransferQuery) setFromStatus(fromStatus waybill.Status) error {
	if err := fromStatus.Validate(); err != nil {
		return err
	}

	q.fromStatus = fromStatus
	return nil
}

func (q *CanTransferQuery) setToStatus(toStatus waybill.Status) error {
	if err := toStatus.Validate(); err != nil {
		return err
	}

	q.toStatus = toStatus
	return nil
}
