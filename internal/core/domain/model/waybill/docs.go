// Package waybill provides domain entities and business logic for shipment
// lifecycle tracking. It implements the Waybill aggregate root with a closed
// status state machine and an immutable transition audit record.
//
// The package includes:
//   - Waybill: The aggregate root carrying identity, current status, and an
//     optimistic-concurrency version counter
//   - Status: A state machine over a closed nine-status enumeration that
//     enforces the legal transition edges
//   - TransitionLogEntry: The immutable audit record produced for every
//     applied transition
//
// Key business rules:
//   - Statuses follow the forward chain Created -> Paid -> Assigned ->
//     PickedUp -> InTransit -> Delivered -> Signed -> Completed
//   - Any non-terminal waybill can be cancelled; Completed and Cancelled are
//     terminal and admit no further transitions
//   - Requesting the current status again is a no-op: it succeeds without a
//     version bump or a log entry
//   - The version increments by exactly 1 per applied transition and backs
//     the compare-and-swap persistence discipline
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package waybill
