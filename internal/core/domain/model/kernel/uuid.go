package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not properly initialized through
// one of the constructor functions. It is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is a value object that represents a universally unique identifier.
// It wraps the github.com/google/uuid implementation to provide domain-specific
// behavior and ensure immutability. UUID identifies entities and aggregates
// throughout the domain model.
//
// The zero value of UUID is invalid and must be constructed using one of the
// provided factory functions: NewUUID, UUIDFromString, or UUIDFromBytes.
//
// Example usage:
//
//	// Create a new random UUID
//	id := kernel.NewUUID()
//
//	// Create from string representation
//	id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // handle error
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4).
// This is the primary way to create new identifiers for entities.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation.
// Returns an error if the string is not a valid UUID format.
// Typically used when reconstructing entities from persistence or
// when parsing identifiers received over the API.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a 16-byte slice.
// Useful when identifiers are stored as binary data in the database.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the standard "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" representation.
// For a zero value UUID this returns the nil UUID string.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID value.
// For a byte slice representation, use Bytes()[:].
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual compares two UUIDs for equality.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate checks if the UUID is properly constructed.
// Returns ErrUUIDIsNotConstructed for the zero value (nil UUID).
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
