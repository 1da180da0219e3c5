package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is.
// Each structured error type below unwraps to one of these.
var (
	ErrObjectNotFound         = errors.New("object not found")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrValueIsOutOfRange      = errors.New("value is out of range")
	ErrValueIsRequired        = errors.New("value is required")
	ErrVersionIsInvalid       = errors.New("version is invalid")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrCapabilityNotSupported = errors.New("operation is not supported by order type")
	ErrDispatchFailed         = errors.New("courier dispatch failed")
)

// sanitize collapses line breaks so error messages stay single-line in logs.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ObjectNotFoundError indicates that an object with the given identifier
// does not exist in the repository it was requested from.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value fails a domain validation rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value lies outside its allowed range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value was not supplied.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates a mismatch of an aggregate version during persistence.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError wrapping an underlying cause.
func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without an underlying cause.
func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName))
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// InvalidTransitionError indicates that an order status transition is not legal
// from the order's current status. It is distinct from CapabilityNotSupportedError:
// the operation itself is supported by the order type, but not right now.
type InvalidTransitionError struct {
	Operation string
	Status    string
	Cause     error
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// operation attempted from the given status.
func NewInvalidTransitionError(operation, status string) *InvalidTransitionError {
	return &InvalidTransitionError{Operation: operation, Status: status}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s is not a valid status to %s (cause: %s)",
			ErrInvalidTransition, e.Status, e.Operation, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is not a valid status to %s",
		ErrInvalidTransition, e.Status, e.Operation))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// CapabilityNotSupportedError indicates that an operation was invoked on an order
// type that never supports it, regardless of the order's current status.
type CapabilityNotSupportedError struct {
	Operation string
	OrderType string
}

// NewCapabilityNotSupportedError creates a CapabilityNotSupportedError for the
// given operation and order type.
func NewCapabilityNotSupportedError(operation, orderType string) *CapabilityNotSupportedError {
	return &CapabilityNotSupportedError{Operation: operation, OrderType: orderType}
}

func (e *CapabilityNotSupportedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s does not support %s",
		ErrCapabilityNotSupported, e.OrderType, e.Operation))
}

func (e *CapabilityNotSupportedError) Unwrap() error {
	return ErrCapabilityNotSupported
}

// DispatchFailedError indicates that the external courier service rejected or
// failed a dispatch request for a delivery order.
type DispatchFailedError struct {
	OrderID string
	Cause   error
}

// NewDispatchFailedError creates a DispatchFailedError wrapping the transport cause.
func NewDispatchFailedError(orderID string, cause error) *DispatchFailedError {
	return &DispatchFailedError{OrderID: orderID, Cause: cause}
}

func (e *DispatchFailedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: order is: %s (cause: %s)", ErrDispatchFailed, e.OrderID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: order is: %s", ErrDispatchFailed, e.OrderID))
}

func (e *DispatchFailedError) Unwrap() error {
	return ErrDispatchFailed
}
