package payment_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/pkg/errs"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newPayment(t *testing.T) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(kernel.NewUUID(), money("5.65"), payment.CreditCard)
	require.NoError(t, err)
	return p
}

func TestNewPayment(t *testing.T) {
	t.Run("creates initiated payment and records event", func(t *testing.T) {
		orderID := kernel.NewUUID()

		p, err := payment.NewPayment(orderID, money("5.65"), payment.BankTransfer)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.OrderID().IsEqual(orderID))
		assert.Equal(t, payment.Initiated, p.Status())
		assert.Equal(t, payment.BankTransfer, p.Method())
		assert.False(t, p.IsCompleted())

		events := p.PendingEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "payment.initiated", events[0].EventName())
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		_, err := payment.NewPayment(kernel.NewUUID(), decimal.Zero, payment.CreditCard)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("accepts the maximum amount and rejects above it", func(t *testing.T) {
		_, err := payment.NewPayment(kernel.NewUUID(), money("1000000"), payment.CreditCard)
		require.NoError(t, err)

		_, err = payment.NewPayment(kernel.NewUUID(), money("1000000.01"), payment.CreditCard)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects unknown method", func(t *testing.T) {
		_, err := payment.NewPayment(kernel.NewUUID(), money("1.00"), payment.MethodUnknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPayment_MarkPending(t *testing.T) {
	t.Run("moves initiated payment to pending", func(t *testing.T) {
		p := newPayment(t)

		require.NoError(t, p.MarkPending())
		assert.Equal(t, payment.Pending, p.Status())

		require.NoError(t, p.MarkPending())
		assert.Equal(t, payment.Pending, p.Status())
	})

	t.Run("rejected from terminal states", func(t *testing.T) {
		succeeded := newPayment(t)
		require.NoError(t, succeeded.MarkSucceeded("gw-1"))
		assert.Equal(t, payment.ErrTerminalState, succeeded.MarkPending())

		failed := newPayment(t)
		require.NoError(t, failed.MarkFailed("declined", ""))
		assert.Equal(t, payment.ErrTerminalState, failed.MarkPending())
	})
}

func TestPayment_MarkSucceeded(t *testing.T) {
	t.Run("records outcome and clears failure fields", func(t *testing.T) {
		p := newPayment(t)
		require.NoError(t, p.MarkPending())
		p.ClearPendingEvents()

		err := p.MarkSucceeded("  gw-12345  ")

		require.NoError(t, err)
		assert.True(t, p.IsSuccessful())
		assert.True(t, p.IsCompleted())
		assert.Equal(t, "gw-12345", p.GatewayRef())
		require.NotNil(t, p.SucceededAt())
		assert.Empty(t, p.ErrorCode())
		assert.Nil(t, p.FailedAt())

		events := p.PendingEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "payment.succeeded", events[0].EventName())
	})

	t.Run("requires gateway reference", func(t *testing.T) {
		p := newPayment(t)

		assert.Equal(t, payment.ErrGatewayRefRequired, p.MarkSucceeded("   "))
	})

	t.Run("re-affirmation is a no-op", func(t *testing.T) {
		p := newPayment(t)
		require.NoError(t, p.MarkSucceeded("gw-1"))
		succeededAt := *p.SucceededAt()
		p.ClearPendingEvents()

		require.NoError(t, p.MarkSucceeded("gw-2"))

		assert.Equal(t, "gw-1", p.GatewayRef())
		assert.Equal(t, succeededAt, *p.SucceededAt())
		assert.Empty(t, p.PendingEvents())
	})

	t.Run("cannot succeed after failure", func(t *testing.T) {
		p := newPayment(t)
		require.NoError(t, p.MarkFailed("declined", "insufficient funds"))

		err := p.MarkSucceeded("gw-1")

		assert.Equal(t, payment.ErrAlreadyFailed, err)
		assert.True(t, p.IsFailed())
		assert.Equal(t, "declined", p.ErrorCode())
	})
}

func TestPayment_MarkFailed(t *testing.T) {
	t.Run("records outcome and clears success fields", func(t *testing.T) {
		p := newPayment(t)
		p.ClearPendingEvents()

		err := p.MarkFailed(" declined ", " insufficient funds ")

		require.NoError(t, err)
		assert.True(t, p.IsFailed())
		assert.Equal(t, "declined", p.ErrorCode())
		assert.Equal(t, "insufficient funds", p.ErrorMessage())
		require.NotNil(t, p.FailedAt())
		assert.Empty(t, p.GatewayRef())
		assert.Nil(t, p.SucceededAt())

		events := p.PendingEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "payment.failed", events[0].EventName())
	})

	t.Run("message is optional", func(t *testing.T) {
		p := newPayment(t)

		require.NoError(t, p.MarkFailed("timeout", ""))

		assert.Empty(t, p.ErrorMessage())
	})

	t.Run("requires error code within bounds", func(t *testing.T) {
		p := newPayment(t)

		assert.Equal(t, payment.ErrErrorCodeRequired, p.MarkFailed("  ", "message"))
		assert.Equal(t, payment.ErrErrorCodeTooLong, p.MarkFailed(strings.Repeat("x", 51), ""))
		assert.Equal(t, payment.ErrErrorMessageTooLong, p.MarkFailed("code", strings.Repeat("x", 501)))
	})

	t.Run("re-affirmation is a no-op", func(t *testing.T) {
		p := newPayment(t)
		require.NoError(t, p.MarkFailed("declined", ""))
		p.ClearPendingEvents()

		require.NoError(t, p.MarkFailed("timeout", "other"))

		assert.Equal(t, "declined", p.ErrorCode())
		assert.Empty(t, p.PendingEvents())
	})

	t.Run("cannot fail after success", func(t *testing.T) {
		p := newPayment(t)
		require.NoError(t, p.MarkSucceeded("gw-1"))

		err := p.MarkFailed("declined", "")

		assert.Equal(t, payment.ErrAlreadySucceeded, err)
		assert.True(t, p.IsSuccessful())
		assert.Equal(t, "gw-1", p.GatewayRef())
	})
}

func TestRestorePayment(t *testing.T) {
	t.Run("reconstructs a succeeded payment without events", func(t *testing.T) {
		id := kernel.NewUUID()
		now := time.Now().UTC()

		p, err := payment.RestorePayment(
			id, now.Add(-time.Hour), &now, kernel.NewUUID().String(),
			kernel.NewUUID(), money("5.65"), payment.CreditCard, payment.Succeeded,
			"gw-1", "", "", &now, nil)

		require.NoError(t, err)
		assert.True(t, p.ID().IsEqual(id))
		assert.True(t, p.IsSuccessful())
		assert.Empty(t, p.PendingEvents())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := payment.RestorePayment(
			kernel.NewUUID(), time.Now().UTC(), nil, kernel.NewUUID().String(),
			kernel.NewUUID(), money("1.00"), payment.CreditCard, payment.StatusUnknown,
			"", "", "", nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
