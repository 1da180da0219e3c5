// Package kernel provides core domain primitives shared by every aggregate
// of the restaurant system.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Price: A value object for non-negative money amounts in minor currency units
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
