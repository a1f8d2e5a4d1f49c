package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// For a status transfer, the waybill write and the log append happen inside
// the same unit of work: both become durable on Commit or neither does.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// WaybillRepository returns a WaybillRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	WaybillRepository() WaybillRepository

	// TransitionLogRepository returns a TransitionLogRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	TransitionLogRepository() TransitionLogRepository
}
