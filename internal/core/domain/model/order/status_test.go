package order_test

import (
	"fmt"
	"testing"

	"setralog/internal/core/domain/model/order"
	"setralog/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Parse(t *testing.T) {
	for _, status := range order.Statuses() {
		t.Run(status.String(), func(t *testing.T) {
			parsed, err := order.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		})
	}

	_, err := order.ParseStatus("SHIPPED")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Validate(t *testing.T) {
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
	assert.Equal(t, "UNKNOWN", order.Status(99).String())
	assert.Equal(t, "IN_PROGRESS", order.InProgress.String())
}

func TestStatus_Cancel(t *testing.T) {
	next, err := order.Pending.Cancel()
	require.NoError(t, err)
	assert.Equal(t, order.Rejected, next)

	for _, status := range []order.Status{order.Received, order.InProgress, order.Completed, order.Rejected} {
		_, err = status.Cancel()
		require.ErrorIs(t, err, order.ErrIllegalTransition, "from %s", status)
	}
}

func TestTransitionMode_Allows(t *testing.T) {
	t.Run("permissive allows every valid target from every status", func(t *testing.T) {
		for _, from := range order.Statuses() {
			for _, to := range order.Statuses() {
				require.NoError(t, order.Permissive.Allows(from, to), "%s -> %s", from, to)
			}
		}
		require.Error(t, order.Permissive.Allows(order.Pending, order.Unknown))
	})

	t.Run("strict follows the workflow", func(t *testing.T) {
		allowed := map[string]bool{
			"RECEIVED->PENDING":      true,
			"PENDING->IN_PROGRESS":   true,
			"PENDING->REJECTED":      true,
			"IN_PROGRESS->COMPLETED": true,
			"IN_PROGRESS->REJECTED":  true,
		}
		for _, from := range order.Statuses() {
			for _, to := range order.Statuses() {
				key := fmt.Sprintf("%s->%s", from, to)
				err := order.Strict.Allows(from, to)
				if allowed[key] {
					require.NoError(t, err, key)
				} else {
					require.ErrorIs(t, err, order.ErrIllegalTransition, key)
				}
			}
		}
	})
}

func TestParseTransitionMode(t *testing.T) {
	mode, err := order.ParseTransitionMode("")
	require.NoError(t, err)
	assert.Equal(t, order.Permissive, mode)

	mode, err = order.ParseTransitionMode("strict")
	require.NoError(t, err)
	assert.Equal(t, order.Strict, mode)
	assert.Equal(t, "strict", mode.String())

	_, err = order.ParseTransitionMode("lenient")
	require.Error(t, err)
}
