package waybill

import (
	"errors"
	"fmt"
	"time"

	"waybill/internal/core/domain/model/kernel"
	"waybill/internal/pkg/errs"
)

var (
	// ErrWaybillIsNotConstructed is returned when a Waybill instance was not created
	// through NewWaybill or RestoreWaybill. This ensures all waybills are properly validated.
	ErrWaybillIsNotConstructed = errors.New("Waybill must be created via NewWaybill or RestoreWaybill")
)

// Waybill represents a tracked shipment in the system. It is the aggregate root
// that manages the shipment lifecycle from creation through the forward status
// chain to completion or cancellation.
//
// Waybill maintains these invariants:
//   - Must have a valid unique identifier
//   - Status is always a member of the enumerated set
//   - Status only changes along edges present in the transition table
//   - Version starts at 0 and increments by exactly 1 per applied transition;
//     it never decreases or repeats
//   - Can only be created through NewWaybill or RestoreWaybill
//
// The struct uses private fields to ensure encapsulation; the only mutation
// path is TransferTo, which also produces the audit record for the edge taken.
type Waybill struct {
	// id is the unique identifier for the waybill
	id kernel.UUID

	// status represents the current state in the shipment lifecycle
	status Status

	// version counts applied transitions; used for optimistic concurrency
	version int64

	// updatedAt is the time of the last applied transition (or creation)
	updatedAt time.Time

	// isConstructed ensures the waybill was created via a constructor
	isConstructed bool
}

// NewWaybill creates a new Waybill in the Created status with version 0.
//
// Parameters:
//   - id: Unique identifier for the waybill (must be a valid UUID)
//   - createdAt: Creation timestamp, recorded as the initial updatedAt
//
// Returns the created waybill, or a validation error if the id is invalid
// or the timestamp is zero.
func NewWaybill(id kernel.UUID, createdAt time.Time) (*Waybill, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Waybill{
		id:            id,
		status:        Created,
		version:       0,
		updatedAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreWaybill reconstructs a Waybill from persisted state.
// Unlike NewWaybill it accepts any valid status and version, trusting that the
// stored record was produced through the aggregate's own mutation path.
// Returns an error if any component of the stored state is invalid.
func RestoreWaybill(id kernel.UUID, status Status, version int64, updatedAt time.Time) (*Waybill, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if version < 0 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is negative", version))
	}
	if updatedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("updatedAt")
	}

	return &Waybill{
		id:            id,
		status:        status,
		version:       version,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Waybill instance was properly constructed.
// Returns ErrWaybillIsNotConstructed for zero-value instances. Called by
// repositories before any write to prevent bypassing construction validation.
func (w *Waybill) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWaybillIsNotConstructed
	}
	return nil
}

// IsEqual compares two waybills by their unique identifiers.
func (w *Waybill) IsEqual(other *Waybill) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the waybill's unique identifier.
func (w *Waybill) ID() kernel.UUID {
	return w.id
}

// Status returns the current status of the waybill.
func (w *Waybill) Status() Status {
	return w.status
}

// Version returns the number of transitions applied to the waybill.
// The version is the optimistic-concurrency token: a compare-and-swap write
// only succeeds if the stored version still equals the one read.
func (w *Waybill) Version() int64 {
	return w.version
}

// UpdatedAt returns the time of the last applied transition.
func (w *Waybill) UpdatedAt() time.Time {
	return w.updatedAt
}

// CanTransferTo reports whether a transfer request targeting the given status
// would be accepted: either the edge is legal or the waybill is already there.
// This is a pure pre-check with no side effects.
func (w *Waybill) CanTransferTo(target Status) bool {
	decision := w.status.ClassifyTransition(target)
	return decision == TransitionLegal || decision == TransitionNoOp
}

// ClassifyTransfer classifies a transfer request against the current status.
func (w *Waybill) ClassifyTransfer(target Status) TransitionDecision {
	return w.status.ClassifyTransition(target)
}

// TransferTo applies a legal transition to the target status.
//
// On success the status becomes target, the version increments by exactly 1,
// updatedAt is set to at, and the returned TransitionLogEntry records the edge
// taken. The entry must be persisted in the same unit of work as the waybill:
// a committed status change without its log entry violates the audit invariant.
//
// Returns:
//   - ErrTransitionIsNoOp when the waybill is already at target; nothing is
//     mutated and no log entry is produced
//   - an error wrapping ErrInvalidTransition when the edge is rejected;
//     nothing is mutated
//   - a validation error when operator is empty or at is zero
func (w *Waybill) TransferTo(target Status, operator string, remark string, at time.Time) (*TransitionLogEntry, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	newStatus, err := w.status.TransferTo(target)
	if err != nil {
		return nil, err
	}

	entry, err := NewTransitionLogEntry(w.id, w.status, newStatus, operator, remark, at)
	if err != nil {
		return nil, err
	}

	w.status = newStatus
	w.version++
	w.updatedAt = at
	return entry, nil
}
