package queries

import (
	"errors"
	"time"

	"waybill/internal/core/domain/model/kernel"
	"waybill/internal/core/domain/model/waybill"
	"waybill/internal/pkg/guard"
)

var (
	ErrGetWaybillQueryIsNotConstructed = errors.New(
		"GetWaybillQuery must be created via NewGetWaybillQuery constructor",
	)
)

// GetWaybillQuery retrieves the current state of a single waybill.
//
// Example:
//
//	query, _ := NewGetWaybillQuery(waybillID)
//	handler := NewGetWaybillQueryHandler(db)
//
//	wb, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown waybill
//	}
type GetWaybillQuery struct { //nolint:recvcheck //using for validation
	waybillID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWaybillQuery creates a query for a single waybill by id.
func NewGetWaybillQuery(waybillID kernel.UUID) (GetWaybillQuery, error) {
	query := GetWaybillQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setWaybillID(waybillID); err != nil {
		return GetWaybillQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetWaybillQueryIsNotConstructed if validation fails.
func (q GetWaybillQuery) Validate() error {
	return q.guard.Validate(ErrGetWaybillQueryIsNotConstructed)
}

// WaybillID returns the identifier of the requested waybill.
func (q GetWaybillQuery) WaybillID() kernel.UUID {
	return q.waybillID
}

func (q *GetWaybillQuery) setWaybillID(waybillID kernel.UUID) error {
	if err := waybillID.Validate(); err != nil {
		return err
	}

	q.waybillID = waybillID
	return nil
}

// GetWaybillQueryResponse is the read-model projection of a waybill record.
type GetWaybillQueryResponse struct {
	ID        kernel.UUID
	Status    waybill.Status
	Version   int64
	UpdatedAt time.Time
}
