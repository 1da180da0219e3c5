package errs_test

import (
	"errors"
	"testing"

	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("menuId", "123")

		assert.Equal(t, "menuId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("menuId", "123", cause)

		assert.Equal(t, "menuId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: menuId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("name")

		assert.Equal(t, "name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: name", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("name", cause)

		assert.Equal(t, "name", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: name (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", -1, 0, 100)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, -1, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: -1 is quantity, min value is 0, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("price", -5, 0, 100, cause)

		assert.Equal(t, "price", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is price, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("price")

		assert.Equal(t, "price", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: price", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("price", cause)

		assert.Equal(t, "price", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: price (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("NewVersionIsInvalidError", func(t *testing.T) {
		cause := errors.New("invalid semver")
		err := errs.NewVersionIsInvalidError("version", cause)

		assert.Equal(t, "version", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "version is invalid: version (cause: invalid semver)", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})

	t.Run("NewVersionIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewVersionIsInvalidErrorWithCause("version")

		assert.Equal(t, "version", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "version is invalid: version", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("serve", "Waiting")

		assert.Equal(t, "serve", err.Operation)
		assert.Equal(t, "Waiting", err.Status)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid status transition: Waiting is not a valid status to serve", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("is distinguishable from capability errors", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("complete", "Accepted")

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		require.NotErrorIs(t, err, errs.ErrCapabilityNotSupported)
	})
}

func TestCapabilityNotSupportedError(t *testing.T) {
	t.Run("NewCapabilityNotSupportedError", func(t *testing.T) {
		err := errs.NewCapabilityNotSupportedError("start delivering", "DineIn")

		assert.Equal(t, "start delivering", err.Operation)
		assert.Equal(t, "DineIn", err.OrderType)
		assert.Equal(t,
			"operation is not supported by order type: DineIn does not support start delivering",
			err.Error())
		assert.Equal(t, errs.ErrCapabilityNotSupported, err.Unwrap())
	})

	t.Run("is distinguishable from transition errors", func(t *testing.T) {
		err := errs.NewCapabilityNotSupportedError("mark delivered", "Takeout")

		require.ErrorIs(t, err, errs.ErrCapabilityNotSupported)
		require.NotErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestDispatchFailedError(t *testing.T) {
	t.Run("NewDispatchFailedError", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewDispatchFailedError("abc-123", cause)

		assert.Equal(t, "abc-123", err.OrderID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "courier dispatch failed: order is: abc-123 (cause: connection refused)", err.Error())
		assert.Equal(t, errs.ErrDispatchFailed, err.Unwrap())
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewDispatchFailedError("abc-123", nil)

		assert.Equal(t, "courier dispatch failed: order is: abc-123", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrVersionIsInvalid)
		require.Error(t, errs.ErrInvalidTransition)
		require.Error(t, errs.ErrCapabilityNotSupported)
		require.Error(t, errs.ErrDispatchFailed)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
		assert.Equal(t, "invalid status transition", errs.ErrInvalidTransition.Error())
		assert.Equal(t, "operation is not supported by order type", errs.ErrCapabilityNotSupported.Error())
		assert.Equal(t, "courier dispatch failed", errs.ErrDispatchFailed.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("menuId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("name")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("quantity", -1, 0, 100)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("price")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		versionInvalidErr := errs.NewVersionIsInvalidError("version", errors.New("test"))
		require.ErrorIs(t, versionInvalidErr, errs.ErrVersionIsInvalid)

		invalidTransitionErr := errs.NewInvalidTransitionError("accept", "Completed")
		require.ErrorIs(t, invalidTransitionErr, errs.ErrInvalidTransition)

		capabilityErr := errs.NewCapabilityNotSupportedError("start delivering", "Takeout")
		require.ErrorIs(t, capabilityErr, errs.ErrCapabilityNotSupported)

		dispatchErr := errs.NewDispatchFailedError("abc-123", errors.New("test"))
		require.ErrorIs(t, dispatchErr, errs.ErrDispatchFailed)
	})
}
