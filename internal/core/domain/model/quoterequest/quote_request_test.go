package quoterequest_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/quoterequest"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(t *testing.T, itemsCount int) kernel.CartSnapshot {
	t.Helper()
	s, err := kernel.NewCartSnapshot(`{"items":[{"productId":"p1","quantity":2}]}`, itemsCount)
	require.NoError(t, err)
	return s
}

func newRequest(t *testing.T) *quoterequest.QuoteRequest {
	t.Helper()
	qr, err := quoterequest.NewQuoteRequest(kernel.NewUUID(), kernel.NewUUID(), snapshot(t, 2), "")
	require.NoError(t, err)
	return qr
}

func TestNewQuoteRequest(t *testing.T) {
	t.Run("creates pending request with default expiry window", func(t *testing.T) {
		ownerID := kernel.NewUUID()
		cartID := kernel.NewUUID()

		qr, err := quoterequest.NewQuoteRequest(ownerID, cartID, snapshot(t, 2), "  urgent  ")

		require.NoError(t, err)
		require.NoError(t, qr.Validate())
		assert.True(t, qr.OwnerID().IsEqual(ownerID))
		assert.True(t, qr.CartID().IsEqual(cartID))
		assert.Equal(t, quoterequest.Pending, qr.Status())
		assert.Equal(t, "urgent", qr.Notes())
		assert.Nil(t, qr.PricedAt())
		assert.Nil(t, qr.QuoteID())

		require.NotNil(t, qr.ExpiresAt())
		expected := time.Now().UTC().Add(7 * 24 * time.Hour)
		assert.WithinDuration(t, expected, *qr.ExpiresAt(), time.Minute)
		assert.False(t, qr.IsExpired(time.Now().UTC()))

		events := qr.PendingEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "quote_request.created", events[0].EventName())
	})

	t.Run("rejects empty snapshot", func(t *testing.T) {
		empty, err := kernel.NewCartSnapshot(`{"items":[]}`, 0)
		require.NoError(t, err)

		qr, err := quoterequest.NewQuoteRequest(kernel.NewUUID(), kernel.NewUUID(), empty, "")

		assert.Equal(t, quoterequest.ErrSnapshotIsEmpty, err)
		assert.Nil(t, qr)
	})

	t.Run("rejects invalid owner", func(t *testing.T) {
		var ownerID kernel.UUID

		_, err := quoterequest.NewQuoteRequest(ownerID, kernel.NewUUID(), snapshot(t, 2), "")

		require.Error(t, err)
	})

	t.Run("zero value request fails validation", func(t *testing.T) {
		var qr quoterequest.QuoteRequest

		require.Error(t, qr.Validate())
	})
}

func TestQuoteRequest_MarkPriced(t *testing.T) {
	t.Run("transitions pending request to priced", func(t *testing.T) {
		qr := newRequest(t)
		qr.ClearPendingEvents()
		quoteID := kernel.NewUUID()

		err := qr.MarkPriced(quoteID)

		require.NoError(t, err)
		assert.Equal(t, quoterequest.Priced, qr.Status())
		require.NotNil(t, qr.QuoteID())
		assert.True(t, qr.QuoteID().IsEqual(quoteID))
		require.NotNil(t, qr.PricedAt())

		events := qr.PendingEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "quote_request.priced", events[0].EventName())
	})

	t.Run("rejects pricing a logically expired request before the sweep", func(t *testing.T) {
		qr := newRequest(t)
		patchExpiry(t, qr, time.Now().UTC().Add(time.Millisecond))
		time.Sleep(5 * time.Millisecond)

		err := qr.MarkPriced(kernel.NewUUID())

		assert.Equal(t, quoterequest.ErrQuoteRequestExpired, err)
		assert.Equal(t, quoterequest.Pending, qr.Status())
		assert.Nil(t, qr.QuoteID())
	})

	t.Run("rejects pricing twice", func(t *testing.T) {
		qr := newRequest(t)
		require.NoError(t, qr.MarkPriced(kernel.NewUUID()))

		err := qr.MarkPriced(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects pricing a formally expired request", func(t *testing.T) {
		qr := newRequest(t)
		require.NoError(t, qr.Expire())

		err := qr.MarkPriced(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestQuoteRequest_Expire(t *testing.T) {
	t.Run("transitions pending request to expired and records event", func(t *testing.T) {
		qr := newRequest(t)
		qr.ClearPendingEvents()

		require.NoError(t, qr.Expire())

		assert.Equal(t, quoterequest.Expired, qr.Status())
		events := qr.PendingEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "quote_request.expired", events[0].EventName())
	})

	t.Run("priced request can still expire", func(t *testing.T) {
		qr := newRequest(t)
		require.NoError(t, qr.MarkPriced(kernel.NewUUID()))

		require.NoError(t, qr.Expire())

		assert.Equal(t, quoterequest.Expired, qr.Status())
	})

	t.Run("expiring twice is a no-op", func(t *testing.T) {
		qr := newRequest(t)
		require.NoError(t, qr.Expire())
		qr.ClearPendingEvents()

		require.NoError(t, qr.Expire())

		assert.Empty(t, qr.PendingEvents())
	})
}

func TestQuoteRequest_SetExpiryDate(t *testing.T) {
	t.Run("replaces the deadline with a future date", func(t *testing.T) {
		qr := newRequest(t)
		deadline := time.Now().UTC().Add(48 * time.Hour)

		require.NoError(t, qr.SetExpiryDate(deadline))

		require.NotNil(t, qr.ExpiresAt())
		assert.WithinDuration(t, deadline, *qr.ExpiresAt(), time.Second)
	})

	t.Run("rejects past date", func(t *testing.T) {
		qr := newRequest(t)

		err := qr.SetExpiryDate(time.Now().UTC().Add(-time.Hour))

		assert.Equal(t, quoterequest.ErrExpiryDateNotInFuture, err)
	})
}

func TestQuoteRequest_IsExpired(t *testing.T) {
	t.Run("deadline has not passed", func(t *testing.T) {
		qr := newRequest(t)

		assert.False(t, qr.IsExpired(time.Now().UTC()))
	})

	t.Run("moment of deadline counts as expired", func(t *testing.T) {
		qr := newRequest(t)

		assert.True(t, qr.IsExpired(*qr.ExpiresAt()))
	})

	t.Run("nil deadline never expires", func(t *testing.T) {
		qr, err := quoterequest.RestoreQuoteRequest(
			kernel.NewUUID(), time.Now().UTC(), nil, kernel.NewUUID().String(),
			kernel.NewUUID(), kernel.NewUUID(), kernel.CartSnapshot{}, "",
			quoterequest.Pending, nil, nil, nil)
		require.NoError(t, err)

		assert.False(t, qr.IsExpired(time.Now().UTC().Add(100*365*24*time.Hour)))
	})
}

func TestRestoreQuoteRequest(t *testing.T) {
	t.Run("reconstructs a priced request without events", func(t *testing.T) {
		id := kernel.NewUUID()
		quoteID := kernel.NewUUID()
		pricedAt := time.Now().UTC()
		expiresAt := pricedAt.Add(24 * time.Hour)

		qr, err := quoterequest.RestoreQuoteRequest(
			id, pricedAt.Add(-time.Hour), &pricedAt, kernel.NewUUID().String(),
			kernel.NewUUID(), kernel.NewUUID(), kernel.CartSnapshot{}, "notes",
			quoterequest.Priced, &expiresAt, &pricedAt, &quoteID)

		require.NoError(t, err)
		assert.True(t, qr.ID().IsEqual(id))
		assert.Equal(t, quoterequest.Priced, qr.Status())
		assert.Empty(t, qr.PendingEvents())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := quoterequest.RestoreQuoteRequest(
			kernel.NewUUID(), time.Now().UTC(), nil, kernel.NewUUID().String(),
			kernel.NewUUID(), kernel.NewUUID(), kernel.CartSnapshot{}, "",
			quoterequest.Unknown, nil, nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

// patchExpiry narrows the pricing window through SetExpiryDate so the
// time-based guard can be observed without waiting out the default window.
func patchExpiry(t *testing.T, qr *quoterequest.QuoteRequest, deadline time.Time) {
	t.Helper()
	require.NoError(t, qr.SetExpiryDate(deadline))
}
