package queries

import (
	"errors"
	"time"

	"waybill/internal/core/domain/model/kernel"
	"waybill/internal/core/domain/model/waybill"
	"waybill/internal/pkg/guard"
)

var (
	ErrGetTransitionHistoryQueryIsNotConstructed = errors.New(
		"GetTransitionHistoryQuery must be created via NewGetTransitionHistoryQuery constructor",
	)
)

// GetTransitionHistoryQuery retrieves the recorded transition log of one
// waybill, oldest entry first. Only applied transitions appear: idempotent
// repeats and rejected requests leave no trace.
//
// Example:
//
//	query, _ := NewGetTransitionHistoryQuery(waybillID)
//	handler := NewGetTransitionHistoryQueryHandler(db)
//
//	history, err := handler.Handle(ctx, query)
//	for _, entry := range history {
//	    fmt.Printf("%s -> %s by %s\n", entry.FromStatus, entry.ToStatus, entry.Operator)
//	}
type GetTransitionHistoryQuery struct { //nolint:recvcheck //using for validation
	waybillID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTransitionHistoryQuery creates a query for one waybill's transition log.
func NewGetTransitionHistoryQuery(waybillID kernel.UUID) (GetTransitionHistoryQuery, error) {
	query := GetTransitionHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setWaybillID(waybillID); err != nil {
		return GetTransitionHistoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTransitionHistoryQueryIsNotConstructed if validation fails.
func (q GetTransitionHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetTransitionHistoryQueryIsNotConstructed)
}

// WaybillID returns the identifier of the waybill whose log is requested.
func (q GetTransitionHistoryQuery) WaybillID() kernel.UUID {
	return q.waybillID
}

func (q *GetTransitionHistoryQuery) setWaybillID(waybillID kernel.UUID) error {
	if err := waybillID.Validate(); err != nil {
		return err
	}

	q.waybillID = waybillID
	return nil
}

// GetTransitionHistoryQueryResponse represents one recorded transition.
type GetTransitionHistoryQueryResponse struct {
	ID          int64
	WaybillID   kernel.UUID
	FromStatus  waybill.Status
	ToStatus    waybill.Status
	Operator    string
	OperateTime time.Time
	Remark      string
}
