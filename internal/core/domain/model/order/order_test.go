package order_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), money("56.50"))
	require.NoError(t, err)
	return o
}

func confirmedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newOrder(t)
	require.NoError(t, o.RegisterDeposit(o.DepositAmount()))
	require.NoError(t, o.Confirm("id-images/buyer.jpg"))
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("fixes deposit to ten percent rounded to cents", func(t *testing.T) {
		ownerID := kernel.NewUUID()
		quoteID := kernel.NewUUID()

		o, err := order.NewOrder(ownerID, quoteID, money("56.50"))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.OwnerID().IsEqual(ownerID))
		assert.True(t, o.QuoteID().IsEqual(quoteID))
		assert.Equal(t, order.PendingDeposit, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.True(t, o.DepositAmount().Equal(money("5.65")))

		events := o.PendingEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "order.created", events[0].EventName())
	})

	t.Run("rounds half cents away from zero", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), money("100.25"))

		require.NoError(t, err)
		assert.True(t, o.DepositAmount().Equal(money("10.03")))
	})

	t.Run("rejects non-positive quote total", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), decimal.Zero)

		assert.Equal(t, order.ErrQuoteTotalNotPositive, err)
	})

	t.Run("zero value order fails validation", func(t *testing.T) {
		var o order.Order

		require.Error(t, o.Validate())
	})
}

func TestOrder_RegisterDeposit(t *testing.T) {
	t.Run("sufficient amount marks payment succeeded", func(t *testing.T) {
		o := newOrder(t)
		o.ClearPendingEvents()

		err := o.RegisterDeposit(money("5.65"))

		require.NoError(t, err)
		assert.Equal(t, order.PendingDeposit, o.Status())
		assert.Equal(t, order.PaymentSucceeded, o.PaymentStatus())
		require.NotNil(t, o.DepositPaidAt())

		events := o.PendingEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "order.deposit_registered", events[0].EventName())
	})

	t.Run("insufficient amount fails with shortfall", func(t *testing.T) {
		o := newOrder(t)

		err := o.RegisterDeposit(money("5.00"))

		require.ErrorIs(t, err, errs.ErrDomainRuleViolation)
		assert.Contains(t, err.Error(), "short by 0.65")
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
	})

	t.Run("rejected outside PendingDeposit", func(t *testing.T) {
		o := confirmedOrder(t)

		err := o.RegisterDeposit(money("5.65"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("deposit amount is immutable through transitions", func(t *testing.T) {
		o := confirmedOrder(t)
		require.NoError(t, o.AdvanceToProcessing())
		require.NoError(t, o.Ship("TRK-1"))
		require.NoError(t, o.Deliver())

		assert.True(t, o.DepositAmount().Equal(money("5.65")))
	})
}

func TestOrder_Confirm(t *testing.T) {
	t.Run("succeeds after deposit with identity reference", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.RegisterDeposit(money("6.00")))
		o.ClearPendingEvents()

		err := o.Confirm("  id-images/buyer.jpg  ")

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, "id-images/buyer.jpg", o.NationalIDImageRef())
		require.NotNil(t, o.ConfirmedAt())

		events := o.PendingEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "order.confirmed", events[0].EventName())
	})

	t.Run("rejected while deposit unpaid", func(t *testing.T) {
		o := newOrder(t)

		err := o.Confirm("id-images/buyer.jpg")

		assert.Equal(t, order.ErrDepositNotPaid, err)
		assert.Equal(t, order.PendingDeposit, o.Status())
	})

	t.Run("requires identity reference", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.RegisterDeposit(money("5.65")))

		err := o.Confirm("   ")

		assert.Equal(t, order.ErrNationalIDRequired, err)
	})

	t.Run("confirming twice fails on status", func(t *testing.T) {
		o := confirmedOrder(t)

		err := o.Confirm("id-images/buyer.jpg")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Pipeline(t *testing.T) {
	t.Run("advances strictly through processing, shipped, delivered", func(t *testing.T) {
		o := confirmedOrder(t)
		o.ClearPendingEvents()

		require.NoError(t, o.AdvanceToProcessing())
		require.NoError(t, o.Ship(" TRK-001 "))
		require.NoError(t, o.Deliver())

		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, "TRK-001", o.TrackingNumber())
		require.NotNil(t, o.ProcessingAt())
		require.NotNil(t, o.ShippedAt())
		require.NotNil(t, o.DeliveredAt())

		events := o.PendingEvents()
		require.Len(t, events, 3)
		assert.Equal(t, "order.processing", events[0].EventName())
		assert.Equal(t, "order.shipped", events[1].EventName())
		assert.Equal(t, "order.delivered", events[2].EventName())
	})

	t.Run("stages cannot be skipped", func(t *testing.T) {
		pending := newOrder(t)
		require.ErrorIs(t, pending.Ship("TRK-1"), errs.ErrValueIsInvalid)

		confirmed := confirmedOrder(t)
		require.ErrorIs(t, confirmed.Deliver(), errs.ErrValueIsInvalid)
		require.ErrorIs(t, confirmed.Ship("TRK-1"), errs.ErrValueIsInvalid)
	})

	t.Run("tracking number only updatable while shipped", func(t *testing.T) {
		o := confirmedOrder(t)
		require.NoError(t, o.AdvanceToProcessing())

		assert.Equal(t, order.ErrTrackingOnlyWhileShipped, o.UpdateTrackingNumber("TRK-2"))

		require.NoError(t, o.Ship(""))
		require.NoError(t, o.UpdateTrackingNumber(" TRK-2 "))
		assert.Equal(t, "TRK-2", o.TrackingNumber())

		require.NoError(t, o.Deliver())
		assert.Equal(t, order.ErrTrackingOnlyWhileShipped, o.UpdateTrackingNumber("TRK-3"))
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("succeeds from every state except delivered", func(t *testing.T) {
		states := map[string]func(t *testing.T) *order.Order{
			"pending deposit": newOrder,
			"confirmed":       confirmedOrder,
			"processing": func(t *testing.T) *order.Order {
				o := confirmedOrder(t)
				require.NoError(t, o.AdvanceToProcessing())
				return o
			},
			"shipped": func(t *testing.T) *order.Order {
				o := confirmedOrder(t)
				require.NoError(t, o.AdvanceToProcessing())
				require.NoError(t, o.Ship("TRK-1"))
				return o
			},
		}

		for name, build := range states {
			t.Run(name, func(t *testing.T) {
				o := build(t)
				o.ClearPendingEvents()

				require.NoError(t, o.Cancel("buyer changed their mind"))

				assert.Equal(t, order.Cancelled, o.Status())
				assert.Equal(t, "buyer changed their mind", o.CancellationReason())
				require.NotNil(t, o.CancelledAt())
				events := o.PendingEvents()
				require.Len(t, events, 1)
				assert.Equal(t, "order.cancelled", events[0].EventName())
			})
		}
	})

	t.Run("blocked from delivered", func(t *testing.T) {
		o := confirmedOrder(t)
		require.NoError(t, o.AdvanceToProcessing())
		require.NoError(t, o.Ship("TRK-1"))
		require.NoError(t, o.Deliver())

		err := o.Cancel("too late")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("idempotent once cancelled", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Cancel("first reason"))
		cancelledAt := *o.CancelledAt()
		o.ClearPendingEvents()

		require.NoError(t, o.Cancel("second reason"))

		assert.Equal(t, "first reason", o.CancellationReason())
		assert.Equal(t, cancelledAt, *o.CancelledAt())
		assert.Empty(t, o.PendingEvents())
	})

	t.Run("requires a reason within bounds", func(t *testing.T) {
		o := newOrder(t)

		assert.Equal(t, order.ErrCancellationReasonRequired, o.Cancel("   "))

		long := make([]byte, 501)
		for i := range long {
			long[i] = 'x'
		}
		assert.Equal(t, order.ErrCancellationReasonTooLong, o.Cancel(string(long)))
	})
}

func TestOrder_DerivedPredicates(t *testing.T) {
	t.Run("cancellable until delivered or cancelled", func(t *testing.T) {
		o := newOrder(t)
		assert.True(t, o.CanBeCancelled())

		require.NoError(t, o.Cancel("reason"))
		assert.False(t, o.CanBeCancelled())
	})

	t.Run("modifiable only while pending deposit", func(t *testing.T) {
		o := newOrder(t)
		assert.True(t, o.CanBeModified())

		require.NoError(t, o.RegisterDeposit(o.DepositAmount()))
		assert.True(t, o.CanBeModified())

		require.NoError(t, o.Confirm("id-images/buyer.jpg"))
		assert.False(t, o.CanBeModified())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("reconstructs a shipped order without events", func(t *testing.T) {
		id := kernel.NewUUID()
		now := time.Now().UTC()

		o, err := order.RestoreOrder(
			id, now.Add(-time.Hour), &now, kernel.NewUUID().String(),
			kernel.NewUUID(), kernel.NewUUID(), money("56.50"), money("5.65"),
			order.Shipped, order.PaymentSucceeded,
			"id-images/buyer.jpg", "TRK-1", "",
			&now, &now, &now, &now, nil, nil)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Shipped, o.Status())
		assert.Empty(t, o.PendingEvents())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), time.Now().UTC(), nil, kernel.NewUUID().String(),
			kernel.NewUUID(), kernel.NewUUID(), money("1.00"), money("0.10"),
			order.Unknown, order.PaymentPending,
			"", "", "", nil, nil, nil, nil, nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
