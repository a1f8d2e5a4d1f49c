package commands

import (
	"context"
	"time"

	"waybill/internal/core/domain/model/waybill"
)

// CreateWaybillCommandHandler registers new waybills in the system.
// Creation is the only write that bypasses the compare-and-swap path: the
// record does not exist yet, so there is nothing to race against beyond the
// primary-key constraint.
type CreateWaybillCommandHandler struct {
	uowFactory WaybillUoWFactory
}

// NewCreateWaybillCommandHandler creates a handler for waybill registration.
func NewCreateWaybillCommandHandler(uowFactory WaybillUoWFactory) CreateWaybillCommandHandler {
	return CreateWaybillCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the create command: builds the aggregate in the Created
// status and persists it within a transaction.
func (h CreateWaybillCommandHandler) Handle(ctx context.Context, command CreateWaybillCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	aggregate, err := waybill.NewWaybill(command.WaybillID(), time.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WaybillRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
