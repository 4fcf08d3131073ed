package errs_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainRuleViolationError(t *testing.T) {
	t.Run("NewDomainRuleViolationError", func(t *testing.T) {
		err := errs.NewDomainRuleViolationError("cannot modify locked cart")

		assert.Equal(t, "cannot modify locked cart", err.Rule)
		require.NoError(t, err.Cause)
		assert.Equal(t, "domain rule violated: cannot modify locked cart", err.Error())
		assert.Equal(t, errs.ErrDomainRuleViolation, err.Unwrap())
	})

	t.Run("NewDomainRuleViolationErrorWithCause", func(t *testing.T) {
		cause := errors.New("quantity exceeds limit")
		err := errs.NewDomainRuleViolationErrorWithCause("cannot add item", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "domain rule violated: cannot add item (cause: quantity exceeds limit)", err.Error())
	})
}

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("cartId", "123")

		assert.Equal(t, "cartId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("cartId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: cartId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})
}

func TestConcurrencyConflictError(t *testing.T) {
	t.Run("NewConcurrencyConflictError", func(t *testing.T) {
		err := errs.NewConcurrencyConflictError("order", "abc")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "abc", err.ID)
		assert.Equal(t, "concurrency conflict: order abc", err.Error())
		assert.Equal(t, errs.ErrConcurrencyConflict, err.Unwrap())
	})

	t.Run("NewConcurrencyConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("zero rows affected")
		err := errs.NewConcurrencyConflictErrorWithCause("order", "abc", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"concurrency conflict: param is: order, ID is: abc (cause: zero rows affected)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 1500, 1, 1000)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 1500, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 1000, err.Max)
		assert.Equal(t, "value is out of range: 1500 is quantity, min value is 1, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize_function_with_newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("ownerId")

		assert.Equal(t, "ownerId", err.ParamName)
		assert.Equal(t, "value is required: ownerId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("ownerId", cause)

		assert.Equal(t, "value is required: ownerId (cause: missing required field)", err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewDomainRuleViolationError("rule"), errs.ErrDomainRuleViolation)
		require.ErrorIs(t, errs.NewObjectNotFoundError("cartId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewConcurrencyConflictError("order", "abc"), errs.ErrConcurrencyConflict)
		require.ErrorIs(t, errs.NewValueIsInvalidError("email"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("qty", 0, 1, 1000), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("ownerId"), errs.ErrValueIsRequired)
	})
}
