package waybill_test

import (
	"testing"
	"time"

	"waybill/internal/core/domain/model/kernel"
	"waybill/internal/core/domain/model/waybill"
	"waybill/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNewWaybill(t *testing.T) *waybill.Waybill {
	t.Helper()
	wb, err := waybill.NewWaybill(kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	return wb
}

// advanceTo walks the waybill along the forward chain until it reaches target.
func advanceTo(t *testing.T, wb *waybill.Waybill, target waybill.Status) {
	t.Helper()
	chain := []waybill.Status{
		waybill.Paid,
		waybill.Assigned,
		waybill.PickedUp,
		waybill.InTransit,
		waybill.Delivered,
		waybill.Signed,
		waybill.Completed,
	}
	for _, next := range chain {
		if wb.Status() == target {
			return
		}
		_, err := wb.TransferTo(next, "tester", "", time.Now())
		require.NoError(t, err)
	}
	require.Equal(t, target, wb.Status())
}

func TestNewWaybill(t *testing.T) {
	t.Run("should create waybill in Created status with version 0", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Now()

		wb, err := waybill.NewWaybill(id, createdAt)

		require.NoError(t, err)
		assert.True(t, wb.ID().IsEqual(id))
		assert.Equal(t, waybill.Created, wb.Status())
		assert.Equal(t, int64(0), wb.Version())
		assert.Equal(t, createdAt, wb.UpdatedAt())
		require.NoError(t, wb.Validate())
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		var zeroID kernel.UUID
		_, err := waybill.NewWaybill(zeroID, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero timestamp", func(t *testing.T) {
		_, err := waybill.NewWaybill(kernel.NewUUID(), time.Time{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreWaybill(t *testing.T) {
	t.Run("should restore waybill from persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		updatedAt := time.Now()

		wb, err := waybill.RestoreWaybill(id, waybill.InTransit, 4, updatedAt)

		require.NoError(t, err)
		assert.Equal(t, waybill.InTransit, wb.Status())
		assert.Equal(t, int64(4), wb.Version())
		assert.Equal(t, updatedAt, wb.UpdatedAt())
		require.NoError(t, wb.Validate())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := waybill.RestoreWaybill(kernel.NewUUID(), waybill.Unknown, 0, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative version", func(t *testing.T) {
		_, err := waybill.RestoreWaybill(kernel.NewUUID(), waybill.Created, -1, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})
}

func TestWaybill_Validate(t *testing.T) {
	t.Run("should reject zero-value waybill", func(t *testing.T) {
		var wb waybill.Waybill
		require.ErrorIs(t, wb.Validate(), waybill.ErrWaybillIsNotConstructed)
	})

	t.Run("should reject nil waybill", func(t *testing.T) {
		var wb *waybill.Waybill
		require.ErrorIs(t, wb.Validate(), waybill.ErrWaybillIsNotConstructed)
	})
}

func TestWaybill_TransferTo(t *testing.T) {
	t.Run("should apply legal transition and bump version by exactly one", func(t *testing.T) {
		wb := mustNewWaybill(t)
		at := time.Now()

		entry, err := wb.TransferTo(waybill.Paid, "agent1", "card payment", at)

		require.NoError(t, err)
		assert.Equal(t, waybill.Paid, wb.Status())
		assert.Equal(t, int64(1), wb.Version())
		assert.Equal(t, at, wb.UpdatedAt())

		require.NotNil(t, entry)
		assert.True(t, entry.WaybillID().IsEqual(wb.ID()))
		assert.Equal(t, waybill.Created, entry.From())
		assert.Equal(t, waybill.Paid, entry.To())
		assert.Equal(t, "agent1", entry.Operator())
		assert.Equal(t, "card payment", entry.Remark())
		assert.Equal(t, at, entry.OperateTime())
	})

	t.Run("should walk the full forward chain", func(t *testing.T) {
		wb := mustNewWaybill(t)

		advanceTo(t, wb, waybill.Completed)

		assert.Equal(t, waybill.Completed, wb.Status())
		assert.Equal(t, int64(7), wb.Version())
	})

	t.Run("should return no-op without mutation when already at target", func(t *testing.T) {
		wb := mustNewWaybill(t)
		_, err := wb.TransferTo(waybill.Paid, "agent1", "", time.Now())
		require.NoError(t, err)
		versionBefore := wb.Version()
		updatedBefore := wb.UpdatedAt()

		entry, err := wb.TransferTo(waybill.Paid, "agent1", "", time.Now())

		require.ErrorIs(t, err, waybill.ErrTransitionIsNoOp)
		assert.Nil(t, entry)
		assert.Equal(t, versionBefore, wb.Version())
		assert.Equal(t, updatedBefore, wb.UpdatedAt())
		assert.Equal(t, waybill.Paid, wb.Status())
	})

	t.Run("should reject illegal transition without mutation", func(t *testing.T) {
		wb := mustNewWaybill(t)
		advanceTo(t, wb, waybill.Delivered)
		versionBefore := wb.Version()

		entry, err := wb.TransferTo(waybill.Created, "agent1", "", time.Now())

		require.ErrorIs(t, err, waybill.ErrInvalidTransition)
		assert.Nil(t, entry)
		assert.Equal(t, waybill.Delivered, wb.Status())
		assert.Equal(t, versionBefore, wb.Version())
	})

	t.Run("should allow cancellation from every non-terminal status", func(t *testing.T) {
		nonTerminal := []waybill.Status{
			waybill.Created,
			waybill.Paid,
			waybill.Assigned,
			waybill.PickedUp,
			waybill.InTransit,
			waybill.Delivered,
			waybill.Signed,
		}

		for _, from := range nonTerminal {
			wb := mustNewWaybill(t)
			advanceTo(t, wb, from)
			versionBefore := wb.Version()

			entry, err := wb.TransferTo(waybill.Cancelled, "dispatcher", "customer request", time.Now())

			require.NoError(t, err, "cancel from %s", from)
			assert.Equal(t, waybill.Cancelled, wb.Status())
			assert.Equal(t, versionBefore+1, wb.Version())
			assert.Equal(t, from, entry.From())
			assert.Equal(t, waybill.Cancelled, entry.To())
		}
	})

	t.Run("should reject any transition out of a terminal status", func(t *testing.T) {
		wb := mustNewWaybill(t)
		_, err := wb.TransferTo(waybill.Cancelled, "dispatcher", "", time.Now())
		require.NoError(t, err)
		versionBefore := wb.Version()

		entry, err := wb.TransferTo(waybill.Paid, "agent1", "", time.Now())

		require.ErrorIs(t, err, waybill.ErrInvalidTransition)
		assert.Nil(t, entry)
		assert.Equal(t, waybill.Cancelled, wb.Status())
		assert.Equal(t, versionBefore, wb.Version())
	})

	t.Run("should require operator", func(t *testing.T) {
		wb := mustNewWaybill(t)

		_, err := wb.TransferTo(waybill.Paid, "", "", time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, waybill.Created, wb.Status())
		assert.Equal(t, int64(0), wb.Version())
	})

	t.Run("should reject zero-value waybill", func(t *testing.T) {
		var wb waybill.Waybill

		_, err := wb.TransferTo(waybill.Paid, "agent1", "", time.Now())

		require.ErrorIs(t, err, waybill.ErrWaybillIsNotConstructed)
	})
}

func TestWaybill_CanTransferTo(t *testing.T) {
	t.Run("should accept legal edges and no-ops", func(t *testing.T) {
		wb := mustNewWaybill(t)

		assert.True(t, wb.CanTransferTo(waybill.Paid))
		assert.True(t, wb.CanTransferTo(waybill.Cancelled))
		assert.True(t, wb.CanTransferTo(waybill.Created)) // already there
	})

	t.Run("should reject illegal edges", func(t *testing.T) {
		wb := mustNewWaybill(t)

		assert.False(t, wb.CanTransferTo(waybill.Delivered))
		assert.False(t, wb.CanTransferTo(waybill.Completed))
	})
}

func TestWaybill_IsEqual(t *testing.T) {
	t.Run("should compare by identity", func(t *testing.T) {
		id := kernel.NewUUID()
		wb1, err := waybill.NewWaybill(id, time.Now())
		require.NoError(t, err)
		wb2, err := waybill.RestoreWaybill(id, waybill.Paid, 1, time.Now())
		require.NoError(t, err)

		assert.True(t, wb1.IsEqual(wb2))
		assert.False(t, wb1.IsEqual(mustNewWaybill(t)))
		assert.False(t, wb1.IsEqual(nil))
	})
}
