package commands

import (
	"errors"

	"waybill/internal/core/domain/model/kernel"
	"waybill/internal/pkg/guard"
)

var (
	ErrCreateWaybillCommandIsNotConstructed = errors.New(
		"CreateWaybillCommand must be created via NewCreateWaybillCommand constructor",
	)
)

// CreateWaybillCommand represents a request to register a new waybill.
// The waybill enters the system in the Created status with version 0.
type CreateWaybillCommand struct { //nolint:recvcheck //using for validation
	waybillID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateWaybillCommand creates a command to register a new waybill.
// Validates that the waybill id is a valid UUID.
func NewCreateWaybillCommand(waybillID kernel.UUID) (CreateWaybillCommand, error) {
	command := CreateWaybillCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setWaybillID(waybillID); err != nil {
		return CreateWaybillCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateWaybillCommandIsNotConstructed if validation fails.
func (c CreateWaybillCommand) Validate() error {
	return c.guard.Validate(ErrCreateWaybillCommandIsNotConstructed)
}

// WaybillID returns the unique identifier for the waybill.
func (c CreateWaybillCommand) WaybillID() kernel.UUID {
	return c.waybillID
}

func (c *CreateWaybillCommand) setWaybillID(waybillID kernel.UUID) error {
	if err := waybillID.Validate(); err != nil {
		return err
	}

	c.waybillID = waybillID
	return nil
}
