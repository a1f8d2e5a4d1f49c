package queries

import (
	"errors"

	"waybill/internal/core/domain/model/kernel"
	"waybill/internal/core/domain/model/waybill"
	"waybill/internal/pkg/guard"
)

var (
	ErrGetUncompletedWaybillsQueryIsNotConstructed = errors.New(
		"GetUncompletedWaybillsQuery must be created via NewGetUncompletedWaybillsQuery constructor",
	)
)

// GetUncompletedWaybillsQuery retrieves all waybills still in flight, meaning
// any status that is not terminal. Used for monitoring and operational
// dashboards.
//
// Example:
//
//	query := NewGetUncompletedWaybillsQuery()
//	handler := NewGetUncompletedWaybillsQueryHandler(db)
//
//	waybills, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get uncompleted waybills: %w", err)
//	}
//
//	fmt.Printf("%d waybills in flight\n", len(waybills))
type GetUncompletedWaybillsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUncompletedWaybillsQuery creates a query to retrieve in-flight waybills.
// This is a parameterless query that fetches all non-terminal waybills.
func NewGetUncompletedWaybillsQuery() GetUncompletedWaybillsQuery {
	return GetUncompletedWaybillsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUncompletedWaybillsQueryIsNotConstructed if validation fails.
func (q GetUncompletedWaybillsQuery) Validate() error {
	return q.guard.Validate(ErrGetUncompletedWaybillsQueryIsNotConstructed)
}

// GetUncompletedWaybillsQueryResponse represents one in-flight waybill.
type GetUncompletedWaybillsQueryResponse struct {
	ID      kernel.UUID
	Status  waybill.Status
	Version int64
}
