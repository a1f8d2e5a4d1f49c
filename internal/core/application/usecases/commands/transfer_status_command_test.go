package commands_test

import (
	"testing"

	"waybill/internal/core/application/usecases/commands"
	"waybill/internal/core/domain/model/kernel"
	"waybill/internal/core/domain/model/waybill"
	"waybill/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransferStatusCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewTransferStatusCommand(id, waybill.Paid, "agent1", "prepaid")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.WaybillID().IsEqual(id))
		assert.Equal(t, waybill.Paid, cmd.TargetStatus())
		assert.Equal(t, "agent1", cmd.Operator())
		assert.Equal(t, "prepaid", cmd.Remark())
	})

	t.Run("should allow empty remark", func(t *testing.T) {
		cmd, err := commands.NewTransferStatusCommand(kernel.NewUUID(), waybill.Cancelled, "dispatcher", "")

		require.NoError(t, err)
		assert.Empty(t, cmd.Remark())
	})

	t.Run("should reject invalid waybill id", func(t *testing.T) {
		var zeroID kernel.UUID

		_, err := commands.NewTransferStatusCommand(zeroID, waybill.Paid, "agent1", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid target status", func(t *testing.T) {
		_, err := commands.NewTransferStatusCommand(kernel.NewUUID(), waybill.Unknown, "agent1", "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty operator", func(t *testing.T) {
		_, err := commands.NewTransferStatusCommand(kernel.NewUUID(), waybill.Paid, "", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero-value command", func(t *testing.T) {
		var cmd commands.TransferStatusCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrTransferStatusCommandIsNotConstructed)
	})
}
