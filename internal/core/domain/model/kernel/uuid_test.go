package kernel_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create valid UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.NotEqual(t, uuid.Nil, id.Bytes())
	})

	t.Run("should create unique UUIDs", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		assert.False(t, id1.IsEqual(id2))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should parse valid UUID string", func(t *testing.T) {
		raw := "550e8400-e29b-41d4-a716-446655440000"

		id, err := kernel.UUIDFromString(raw)

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, raw, id.String())
	})

	t.Run("should fail on malformed string", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should create UUID from valid bytes", func(t *testing.T) {
		source := kernel.NewUUID()
		raw := source.Bytes()

		id, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, id.IsEqual(source))
	})

	t.Run("should fail on wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x01, 0x02})

		require.Error(t, err)
	})

	t.Run("should fail on nil UUID bytes", func(t *testing.T) {
		var zero [16]byte

		_, err := kernel.UUIDFromBytes(zero[:])

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var id kernel.UUID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})

	t.Run("should pass for constructed UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
	})
}
