package commands

import (
	"errors"

	"waybill/internal/core/domain/model/kernel"
	"waybill/internal/core/domain/model/waybill"
	"waybill/internal/pkg/errs"
	"waybill/internal/pkg/guard"
)

var (
	ErrTransferStatusCommandIsNotConstructed = errors.New(
		"TransferStatusCommand must be created via NewTransferStatusCommand constructor",
	)
)

// TransferStatusCommand represents a request to move a waybill to a target status.
// Carries the requesting operator's identity and an optional remark that ends up
// in the transition log when the transfer is applied.
//
// Example:
//
//	cmd, err := NewTransferStatusCommand(waybillID, waybill.Paid, "agent1", "card payment")
//	if err != nil {
//	    return fmt.Errorf("invalid transfer request: %w", err)
//	}
//
//	handler := NewTransferStatusCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("transfer failed: %w", err)
//	}
type TransferStatusCommand struct { //nolint:recvcheck //using for validation
	waybillID    kernel.UUID
	targetStatus waybill.Status
	operator     string
	remark       string

	guard guard.ConstructorGuard
}

// NewTransferStatusCommand creates a command to transfer a waybill's status.
// Validates that the waybill id is valid, the target status is a member of the
// enumerated set, and the operator is not empty. The remark is optional.
func NewTransferStatusCommand(
	waybillID kernel.UUID,
	targetStatus waybill.Status,
	operator string,
	remark string,
) (TransferStatusCommand, error) {
	command := TransferStatusCommand{
		remark: remark,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWaybillID(waybillID),
		command.setTargetStatus(targetStatus),
		command.setOperator(operator),
	); err != nil {
		return TransferStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransferStatusCommandIsNotConstructed if validation fails.
func (c TransferStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransferStatusCommandIsNotConstructed)
}

// WaybillID returns the identifier of the waybill to transfer.
func (c TransferStatusCommand) WaybillID() kernel.UUID {
	return c.waybillID
}

// TargetStatus returns the requested status.
func (c TransferStatusCommand) TargetStatus() waybill.Status {
	return c.targetStatus
}

// Operator returns the identifier of whoever requested the transfer.
func (c TransferStatusCommand) Operator() string {
	return c.operator
}

// Remark returns the optional note to record in the transition log.
func (c TransferStatusCommand) Remark() string {
	return c.remark
}

func (c *TransferStatusCommand) setWaybillID(waybillID kernel.UUID) error {
	if err := waybillID.Validate(); err != nil {
		return err
	}

	c.waybillID = waybillID
	return nil
}

func (c *TransferStatusCommand) setTargetStatus(targetStatus waybill.Status) error {
	if err := targetStatus.Validate(); err != nil {
		return err
	}

	c.targetStatus = targetStatus
	return nil
}

func (c *TransferStatusCommand) setOperator(operator string) error {
	if operator == "" {
		return errs.NewValueIsRequiredError("operator")
	}

	c.operator = operator
	return nil
}
