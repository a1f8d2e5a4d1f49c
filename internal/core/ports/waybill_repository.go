// Package ports defines repository and publisher interfaces for the waybill domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"waybill/internal/core/domain/model/kernel"
	"waybill/internal/core/domain/model/waybill"
)

// WaybillRepository defines the persistence contract for waybill aggregates.
// The repository is the sole mutation path for a waybill's status; all writes
// after creation go through the compare-and-swap primitive.
type WaybillRepository interface {
	// Add persists a new waybill aggregate to storage.
	// The waybill must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *waybill.Waybill) error

	// Get retrieves a waybill aggregate by its unique identifier.
	// Returns an error unwrapping to errs.ErrObjectNotFound if the waybill does not exist.
	Get(ctx context.Context, id kernel.UUID) (*waybill.Waybill, error)

	// CompareAndSwap persists the aggregate's current state only if the stored
	// record still matches the expected version and status at write time.
	//
	// The aggregate must already carry the new status and the incremented
	// version (i.e. Waybill.TransferTo has been applied); expectedVersion and
	// expectedStatus are the values read before the transition.
	//
	// Returns:
	//   - (true, nil) when the conditional write was applied
	//   - (false, nil) when a concurrent writer changed the record first;
	//     nothing was mutated and the caller should re-read and re-classify
	//   - (false, err) on storage failure
	CompareAndSwap(
		ctx context.Context,
		aggregate *waybill.Waybill,
		expectedVersion int64,
		expectedStatus waybill.Status,
	) (bool, error)
}
