package queries

import (
	"context"

	"waybill/internal/core/domain/model/waybill"
)

// CanTransferQueryHandler answers transfer-legality questions from the
// transition rules. Both an allowed edge and an idempotent repeat (from equals
// to) count as acceptable, since a transfer request for either would succeed.
type CanTransferQueryHandler struct{}

// NewCanTransferQueryHandler creates a handler for transfer-legality queries.
func NewCanTransferQueryHandler() CanTransferQueryHandler {
	return CanTransferQueryHandler{}
}

// Handle reports whether a transfer request for the given pair would be
// accepted.
func (h CanTransferQueryHandler) Handle(_ context.Context, query CanTransferQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	switch query.FromStatus().ClassifyTransition(query.ToStatus()) {
	case waybill.TransitionLegal, waybill.TransitionNoOp:
		return true, nil
	case waybill.TransitionIllegal:
	}

	return false, nil
}
