package waybill

import (
	"errors"
	"fmt"

	"waybill/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel for rejected status transitions.
// Use errors.Is to detect it; NewInvalidTransitionError wraps it with the
// offending edge.
var ErrInvalidTransition = errors.New("invalid status transition")

// NewInvalidTransitionError creates an error describing a rejected edge.
func NewInvalidTransitionError(from, to Status) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// Status represents the lifecycle state of a waybill.
// It implements a state machine with a closed set of transitions to ensure
// waybills follow the shipment workflow.
//
// State transitions:
//
//	Created -> Paid -> Assigned -> PickedUp -> InTransit -> Delivered -> Signed -> Completed
//
// Every non-terminal status additionally admits a transition to Cancelled.
// Completed and Cancelled are terminal: no outgoing edges.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when a waybill is first registered.
	Created

	// Paid indicates the shipment has been paid for.
	Paid

	// Assigned indicates a carrier has been assigned to the shipment.
	Assigned

	// PickedUp indicates the carrier has collected the shipment.
	PickedUp

	// InTransit indicates the shipment is on its way.
	InTransit

	// Delivered indicates the shipment has reached its destination.
	Delivered

	// Signed indicates the recipient has signed for the shipment.
	Signed

	// Completed indicates the shipment lifecycle has finished successfully.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Cancelled indicates the shipment was cancelled before completion.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// TransitionDecision classifies a requested status transition.
type TransitionDecision int

const (
	// TransitionIllegal means the requested edge is not permitted.
	TransitionIllegal TransitionDecision = iota

	// TransitionLegal means the requested edge may be applied.
	TransitionLegal

	// TransitionNoOp means the waybill is already at the requested status.
	// Such requests are treated as already satisfied.
	TransitionNoOp
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Paid:      "Paid",
		Assigned:  "Assigned",
		PickedUp:  "PickedUp",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Signed:    "Signed",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		Paid:      "Paid",
		Assigned:  "Assigned",
		PickedUp:  "PickedUp",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Signed:    "Signed",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// getForwardEdges returns the closed transition table: each non-terminal
// status maps to its single designated forward successor. The wildcard edge
// into Cancelled is handled separately by CanTransitionTo; it is not part of
// this table so the legality set stays explicit and auditable.
func getForwardEdges() map[Status]Status {
	return map[Status]Status{
		Created:   Paid,
		Paid:      Assigned,
		Assigned:  PickedUp,
		PickedUp:  InTransit,
		InTransit: Delivered,
		Delivered: Signed,
		Signed:    Completed,
	}
}

// StatusFromString parses a status from its string representation.
// Used when accepting target statuses from external callers.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is a member of the enumerated set.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values. Implements fmt.Stringer and
// is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no outgoing transitions.
// Completed and Cancelled are the only terminal statuses.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the edge from s to target exists in the
// transition table. Legal edges are the forward chain plus the wildcard edge
// into Cancelled from any non-terminal status. Terminal statuses have no
// outgoing edges, even if the table were ever to gain entries for them by
// mistake. Invalid statuses on either side are never legal.
func (s Status) CanTransitionTo(target Status) bool {
	if s.Validate() != nil || target.Validate() != nil {
		return false
	}
	if s.IsTerminal() {
		return false
	}
	if target == Cancelled {
		return true
	}
	next, ok := getForwardEdges()[s]
	return ok && next == target
}

// ClassifyTransition classifies a requested transition from s to target.
//
// The checks run in a fixed order:
//  1. target == s is a no-op (idempotent re-request, already satisfied)
//  2. a terminal source rejects everything else
//  3. otherwise the edge table decides
//
// Idempotency and terminality come ahead of the table lookup so that repeated
// client retries of an already-applied request are cheap and side-effect-free.
func (s Status) ClassifyTransition(target Status) TransitionDecision {
	if s.Validate() != nil || target.Validate() != nil {
		return TransitionIllegal
	}
	if s == target {
		return TransitionNoOp
	}
	if s.IsTerminal() {
		return TransitionIllegal
	}
	if s.CanTransitionTo(target) {
		return TransitionLegal
	}
	return TransitionIllegal
}

// TransferTo returns the status after applying the transition to target.
//
// Returns:
//   - (target, nil) on a legal transition
//   - (s, ErrTransitionIsNoOp) when the status is already target
//   - (0, error wrapping ErrInvalidTransition) when the edge is rejected
func (s Status) TransferTo(target Status) (Status, error) {
	switch s.ClassifyTransition(target) {
	case TransitionNoOp:
		return s, ErrTransitionIsNoOp
	case TransitionLegal:
		return target, nil
	default:
		return 0, NewInvalidTransitionError(s, target)
	}
}

// ErrTransitionIsNoOp signals that a requested transition targets the current
// status. Callers treat it as success without side effects.
var ErrTransitionIsNoOp = errors.New("transition is a no-op")
