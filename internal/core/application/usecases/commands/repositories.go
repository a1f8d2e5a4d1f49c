// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"waybill/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// WaybillRepoFactory provides access to the waybill repository within a transaction.
	WaybillRepoFactory interface {
		WaybillRepository() ports.WaybillRepository
	}

	// TransitionLogRepoFactory provides access to the transition log repository within a transaction.
	TransitionLogRepoFactory interface {
		TransitionLogRepository() ports.TransitionLogRepository
	}

	// WaybillUoW manages transactions for waybill-only operations.
	// Used when commands only touch the waybill record, such as creation.
	WaybillUoW interface {
		TxManager
		WaybillRepoFactory
	}

	// WaybillUoWFactory creates new waybill unit of work instances.
	WaybillUoWFactory interface {
		Create() WaybillUoW
	}

	// UoW manages transactions spanning the waybill record and its transition log.
	// A status transfer writes both inside one transaction: the conditional
	// status update and the audit append commit together or not at all.
	UoW interface {
		TxManager
		WaybillRepoFactory
		TransitionLogRepoFactory
	}

	// UoWFactory creates new unit of work instances for transfer operations.
	UoWFactory interface {
		Create() UoW
	}
)
