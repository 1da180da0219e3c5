// Package errs provides standardized error types for the restaurant application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - InvalidTransitionError: For when an order status transition is not permitted
//   - CapabilityNotSupportedError: For when an order type does not support an operation
//   - DispatchFailedError: For when the external courier service fails a dispatch
//   - Other specialized error types for specific validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers are expected to classify errors with errors.Is against the sentinel
// values. InvalidTransitionError and CapabilityNotSupportedError are deliberately
// distinct sentinels: the first means "wrong state", the second "wrong order type".
package errs
