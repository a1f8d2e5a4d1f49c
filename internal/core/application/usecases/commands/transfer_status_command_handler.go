package commands

import (
	"context"
	"errors"
	"time"

	"waybill/internal/core/domain/model/waybill"
	"waybill/internal/core/ports"
)

const (
	// maxTransferAttempts bounds the optimistic-concurrency retry loop.
	maxTransferAttempts = 3

	// transferRetryBackoff is the pause between retry attempts after a
	// conflicting concurrent write.
	transferRetryBackoff = 20 * time.Millisecond
)

var (
	// ErrConcurrencyExceeded is returned when the retry bound is exhausted due
	// to sustained contention on the same waybill. The request itself may be
	// valid; callers are free to retry the whole operation.
	ErrConcurrencyExceeded = errors.New("transfer retry limit exceeded due to concurrent updates")
)

// TransferStatusCommandHandler orchestrates a status transfer request.
//
// A transfer runs as: read current state, classify the requested transition,
// then apply it with a compare-and-swap write and append the audit entry, all
// inside one transaction. When a concurrent writer wins the race the handler
// re-reads the now-current state and re-runs classification, up to
// maxTransferAttempts; on the retry the request may turn out to be a no-op,
// illegal from the new state, or still legal.
//
// Idempotent re-requests (target equals current status) succeed immediately
// with no store write, no log entry, and no event.
//
// Example:
//
//	handler := NewTransferStatusCommandHandler(uowFactory, publisher)
//	cmd, _ := NewTransferStatusCommand(id, waybill.Cancelled, "dispatcher", "customer request")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown waybill
//	case errors.Is(err, waybill.ErrInvalidTransition):
//	    // edge rejected; pick a valid target
//	case errors.Is(err, ErrConcurrencyExceeded):
//	    // transient; retry the request
//	}
type TransferStatusCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.TransitionPublisher
}

// NewTransferStatusCommandHandler creates a handler for status transfer operations.
// Requires a UoWFactory so each attempt runs in its own transaction, and a
// publisher notified once per applied transition after commit.
func NewTransferStatusCommandHandler(
	uowFactory UoWFactory,
	publisher ports.TransitionPublisher,
) TransferStatusCommandHandler {
	return TransferStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the transfer command.
//
// Returns nil on an applied transition or an idempotent no-op. Error outcomes:
//   - errs.ErrObjectNotFound when the waybill id is unknown
//   - waybill.ErrInvalidTransition when the edge is rejected (also after a
//     lost race left the waybill in a state the request is illegal from)
//   - ErrConcurrencyExceeded when the retry bound is exhausted
//   - any storage error from the underlying unit of work
func (h TransferStatusCommandHandler) Handle(ctx context.Context, command TransferStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	for attempt := 1; attempt <= maxTransferAttempts; attempt++ {
		event, conflicted, err := h.attemptTransfer(ctx, command)
		if err != nil {
			return err
		}

		if !conflicted {
			if event != nil {
				h.publisher.Publish(ctx, *event)
			}
			return nil
		}

		if attempt == maxTransferAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(transferRetryBackoff):
		}
	}

	return ErrConcurrencyExceeded
}

// attemptTransfer runs one read-classify-write-log cycle in its own transaction.
// The returned event is non-nil only when a transition was applied and committed;
// conflicted reports that a concurrent writer won the race and nothing was written.
func (h TransferStatusCommandHandler) attemptTransfer(
	ctx context.Context,
	command TransferStatusCommand,
) (event *ports.WaybillTransferredEvent, conflicted bool, err error) {
	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	waybillRepo := uow.WaybillRepository()
	logRepo := uow.TransitionLogRepository()

	aggregate, err := waybillRepo.Get(ctx, command.WaybillID())
	if err != nil {
		return nil, false, err
	}

	switch aggregate.ClassifyTransfer(command.TargetStatus()) {
	case waybill.TransitionNoOp:
		// Already satisfied: repeated requests for the current status are
		// free and invisible in history.
		return nil, false, nil
	case waybill.TransitionIllegal:
		return nil, false, waybill.NewInvalidTransitionError(aggregate.Status(), command.TargetStatus())
	case waybill.TransitionLegal:
	}

	expectedVersion := aggregate.Version()
	expectedStatus := aggregate.Status()

	entry, err := aggregate.TransferTo(command.TargetStatus(), command.Operator(), command.Remark(), time.Now())
	if err != nil {
		return nil, false, err
	}

	swapped, err := waybillRepo.CompareAndSwap(ctx, aggregate, expectedVersion, expectedStatus)
	if err != nil {
		return nil, false, err
	}
	if !swapped {
		// A concurrent writer changed the record between read and write.
		return nil, true, nil
	}

	if err = logRepo.Append(ctx, entry); err != nil {
		return nil, false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, false, err
	}

	return &ports.WaybillTransferredEvent{
		WaybillID:  entry.WaybillID(),
		FromStatus: entry.From(),
		ToStatus:   entry.To(),
		Operator:   entry.Operator(),
		OccurredAt: entry.OperateTime(),
	}, false, nil
}
