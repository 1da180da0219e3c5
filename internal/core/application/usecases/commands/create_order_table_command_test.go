package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderTableCommand(t *testing.T) {
	t.Run("ValidInput", func(t *testing.T) {
		tableID := kernel.NewUUID()

		cmd, err := commands.NewCreateOrderTableCommand(tableID, "Table 1")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderTableID().IsEqual(tableID))
		assert.Equal(t, "Table 1", cmd.Name())
	})

	t.Run("InvalidTableID", func(t *testing.T) {
		_, err := commands.NewCreateOrderTableCommand(kernel.UUID{}, "Table 1")

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("BlankName", func(t *testing.T) {
		_, err := commands.NewCreateOrderTableCommand(kernel.NewUUID(), "   ")

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrNameIsRequired)
	})

	t.Run("ZeroValueCommandIsNotConstructed", func(t *testing.T) {
		var cmd commands.CreateOrderTableCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderTableCommandIsNotConstructed)
	})
}

func TestNewOccupyOrderTableCommand(t *testing.T) {
	t.Run("ValidInput", func(t *testing.T) {
		tableID := kernel.NewUUID()

		cmd, err := commands.NewOccupyOrderTableCommand(tableID, 4)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderTableID().IsEqual(tableID))
		assert.Equal(t, 4, cmd.NumberOfGuests())
	})

	t.Run("NegativeGuests", func(t *testing.T) {
		_, err := commands.NewOccupyOrderTableCommand(kernel.NewUUID(), -1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("ZeroValueCommandIsNotConstructed", func(t *testing.T) {
		var cmd commands.OccupyOrderTableCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrOccupyOrderTableCommandIsNotConstructed)
	})
}
