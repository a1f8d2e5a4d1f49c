package waybill

import (
	"errors"
	"time"

	"waybill/internal/core/domain/model/kernel"
	"waybill/internal/pkg/errs"
)

var (
	// ErrTransitionLogEntryIsNotConstructed is returned when a TransitionLogEntry
	// was not created through its constructor functions.
	ErrTransitionLogEntryIsNotConstructed = errors.New(
		"TransitionLogEntry must be created via NewTransitionLogEntry or RestoreTransitionLogEntry",
	)
)

// TransitionLogEntry is the immutable audit record of one applied transition.
// Exactly one entry exists per applied (non-no-op) transition; entries are
// never updated or deleted. The sequence of a waybill's entries, ordered by
// id, is its full lifecycle history.
type TransitionLogEntry struct {
	// id is assigned by storage; zero until the entry has been persisted
	id int64

	// waybillID is a back-reference to the waybill, not ownership
	waybillID kernel.UUID

	// fromStatus and toStatus describe the edge taken
	fromStatus Status
	toStatus   Status

	// operator identifies who requested the transition
	operator string

	// operateTime is when the transition was applied
	operateTime time.Time

	// remark is an optional free-form note from the operator
	remark string

	isConstructed bool
}

// NewTransitionLogEntry creates the audit record for an applied transition.
// The from/to pair must be a legal edge of the transition table; an entry for
// an edge that cannot be taken would corrupt the history.
func NewTransitionLogEntry(
	waybillID kernel.UUID,
	from Status,
	to Status,
	operator string,
	remark string,
	operateTime time.Time,
) (*TransitionLogEntry, error) {
	if err := waybillID.Validate(); err != nil {
		return nil, err
	}
	if !from.CanTransitionTo(to) {
		return nil, NewInvalidTransitionError(from, to)
	}
	if operator == "" {
		return nil, errs.NewValueIsRequiredError("operator")
	}
	if operateTime.IsZero() {
		return nil, errs.NewValueIsRequiredError("operateTime")
	}

	return &TransitionLogEntry{
		waybillID:     waybillID,
		fromStatus:    from,
		toStatus:      to,
		operator:      operator,
		operateTime:   operateTime,
		remark:        remark,
		isConstructed: true,
	}, nil
}

// RestoreTransitionLogEntry reconstructs an entry from persisted state,
// including its storage-assigned id.
func RestoreTransitionLogEntry(
	id int64,
	waybillID kernel.UUID,
	from Status,
	to Status,
	operator string,
	remark string,
	operateTime time.Time,
) (*TransitionLogEntry, error) {
	entry, err := NewTransitionLogEntry(waybillID, from, to, operator, remark, operateTime)
	if err != nil {
		return nil, err
	}

	entry.id = id
	return entry, nil
}

// Validate ensures the entry was properly constructed.
func (e *TransitionLogEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrTransitionLogEntryIsNotConstructed
	}
	return nil
}

// ID returns the storage-assigned identifier, or 0 if the entry has not been persisted.
func (e *TransitionLogEntry) ID() int64 {
	return e.id
}

// WaybillID returns the identifier of the waybill this entry belongs to.
func (e *TransitionLogEntry) WaybillID() kernel.UUID {
	return e.waybillID
}

// From returns the status the waybill left.
func (e *TransitionLogEntry) From() Status {
	return e.fromStatus
}

// To returns the status the waybill entered.
func (e *TransitionLogEntry) To() Status {
	return e.toStatus
}

// Operator returns the identifier of whoever requested the transition.
func (e *TransitionLogEntry) Operator() string {
	return e.operator
}

// OperateTime returns when the transition was applied.
func (e *TransitionLogEntry) OperateTime() time.Time {
	return e.operateTime
}

// Remark returns the optional operator note; empty when none was given.
func (e *TransitionLogEntry) Remark() string {
	return e.remark
}
