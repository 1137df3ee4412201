package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"setralog/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("userId", "123")

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("snapshot missing")
		err := errs.NewObjectNotFoundErrorWithCause("userId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: userId, ID is: 123 (cause: snapshot missing)",
			err.Error())
	})

	t.Run("Error with integer order IDs", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", int64(456))
		assert.Equal(t, "object not found: %!s(int64=456)", err.Error())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	t.Run("NewObjectAlreadyExistsError", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("email", "ana@example.cl")

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, "ana@example.cl", err.Value)
		assert.Equal(t, "object already exists: email is ana@example.cl", err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
	})

	t.Run("NewObjectAlreadyExistsErrorWithCause", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsErrorWithCause("rut", "12.345.678-5", errors.New("taken"))

		assert.Equal(t, "object already exists: rut is 12.345.678-5 (cause: taken)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("rut", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: rut (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 1000, err.Max)
		assert.Equal(t, "value is invalid: 0 is quantity, min value is 1, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("weight", -5, 0, 100, errors.New("negative"))

		assert.Equal(t,
			"value is invalid: -5 is weight, min value is 0, max value is 100 (cause: negative)",
			err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("name")

	assert.Equal(t, "name", err.ParamName)
	assert.Equal(t, "value is required: name", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("name", errors.New("empty"))
	assert.Equal(t, "value is required: name (cause: empty)", withCause.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("user", "1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewObjectAlreadyExistsError("email", "x"), errs.ErrObjectAlreadyExists)
	require.ErrorIs(t, errs.NewValueIsInvalidError("rut"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("quantity", 0, 1, 2), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)

	wrapped := fmt.Errorf("register: %w", errs.NewObjectAlreadyExistsError("rut", "1-9"))
	require.ErrorIs(t, wrapped, errs.ErrObjectAlreadyExists)

	var target *errs.ObjectAlreadyExistsError
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, "rut", target.ParamName)
}
