package ordertable_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/ordertable"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderTable(t *testing.T) {
	t.Run("should create empty table", func(t *testing.T) {
		table, err := ordertable.NewOrderTable(kernel.NewUUID(), "table 1")

		require.NoError(t, err)
		require.NoError(t, table.Validate())
		assert.Equal(t, "table 1", table.Name())
		assert.Equal(t, 0, table.NumberOfGuests())
		assert.False(t, table.IsOccupied())
	})

	t.Run("should fail with blank name", func(t *testing.T) {
		_, err := ordertable.NewOrderTable(kernel.NewUUID(), "  ")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := ordertable.NewOrderTable(invalidID, "table 1")

		require.Error(t, err)
	})
}

func TestOrderTable_OccupyAndRelease(t *testing.T) {
	t.Run("should seat a party", func(t *testing.T) {
		table, _ := ordertable.NewOrderTable(kernel.NewUUID(), "table 1")

		err := table.Occupy(4)

		require.NoError(t, err)
		assert.True(t, table.IsOccupied())
		assert.Equal(t, 4, table.NumberOfGuests())
	})

	t.Run("should reject negative guest count", func(t *testing.T) {
		table, _ := ordertable.NewOrderTable(kernel.NewUUID(), "table 1")

		err := table.Occupy(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.False(t, table.IsOccupied())
	})

	t.Run("release clears the table", func(t *testing.T) {
		table, _ := ordertable.NewOrderTable(kernel.NewUUID(), "table 1")
		require.NoError(t, table.Occupy(4))

		table.Release()

		assert.False(t, table.IsOccupied())
		assert.Equal(t, 0, table.NumberOfGuests())
	})
}

func TestRestoreOrderTable(t *testing.T) {
	t.Run("should restore occupied table", func(t *testing.T) {
		id := kernel.NewUUID()

		table, err := ordertable.RestoreOrderTable(id, "table 2", 2, true)

		require.NoError(t, err)
		assert.True(t, table.ID().IsEqual(id))
		assert.True(t, table.IsOccupied())
		assert.Equal(t, 2, table.NumberOfGuests())
	})

	t.Run("should fail on negative guest count", func(t *testing.T) {
		_, err := ordertable.RestoreOrderTable(kernel.NewUUID(), "table 2", -1, false)

		require.Error(t, err)
	})
}
