package cart_test

import (
	"testing"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCart(t *testing.T) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID())
	require.NoError(t, err)
	return c
}

func TestNewCart(t *testing.T) {
	t.Run("creates empty unlocked cart and records created event", func(t *testing.T) {
		ownerID := kernel.NewUUID()

		c, err := cart.NewCart(ownerID)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.OwnerID().IsEqual(ownerID))
		assert.True(t, c.IsEmpty())
		assert.False(t, c.IsLocked())
		assert.Zero(t, c.TotalItems())

		events := c.PendingEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "cart.created", events[0].EventName())
	})

	t.Run("rejects invalid owner", func(t *testing.T) {
		var ownerID kernel.UUID

		c, err := cart.NewCart(ownerID)

		require.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("zero value cart fails validation", func(t *testing.T) {
		var c cart.Cart

		require.Error(t, c.Validate())
	})
}

func TestCart_AddItem(t *testing.T) {
	productID := kernel.NewUUID()

	t.Run("appends a new line", func(t *testing.T) {
		c := newCart(t)

		err := c.AddItem(productID, 3, kernel.JsonSpec{})

		require.NoError(t, err)
		require.Len(t, c.Items(), 1)
		assert.Equal(t, 3, c.Item(productID).Quantity())
		assert.True(t, c.HasItem(productID))
		assert.NotNil(t, c.UpdatedAt())
	})

	t.Run("merges quantity for already present product without duplicating the line", func(t *testing.T) {
		c := newCart(t)
		require.NoError(t, c.AddItem(productID, 3, kernel.JsonSpec{}))

		err := c.AddItem(productID, 5, kernel.JsonSpec{})

		require.NoError(t, err)
		require.Len(t, c.Items(), 1)
		assert.Equal(t, 8, c.Item(productID).Quantity())
		assert.Equal(t, 8, c.TotalItems())
	})

	t.Run("merge exceeding quantity cap fails without mutating state", func(t *testing.T) {
		c := newCart(t)
		require.NoError(t, c.AddItem(productID, 900, kernel.JsonSpec{}))

		err := c.AddItem(productID, 200, kernel.JsonSpec{})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, 900, c.Item(productID).Quantity())
		require.Len(t, c.Items(), 1)
	})

	t.Run("merge replaces selected specs", func(t *testing.T) {
		c := newCart(t)
		first, _ := kernel.NewJsonSpec(`{"color":"red"}`)
		second, _ := kernel.NewJsonSpec(`{"color":"blue"}`)
		require.NoError(t, c.AddItem(productID, 1, first))

		require.NoError(t, c.AddItem(productID, 1, second))

		assert.True(t, c.Item(productID).SelectedSpecs().IsEqual(second))
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		c := newCart(t)

		err := c.AddItem(productID, 0, kernel.JsonSpec{})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.True(t, c.IsEmpty())
	})

	t.Run("rejects quantity above cap", func(t *testing.T) {
		c := newCart(t)

		err := c.AddItem(productID, 1001, kernel.JsonSpec{})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects new line beyond 200 distinct products", func(t *testing.T) {
		c := newCart(t)
		for range 200 {
			require.NoError(t, c.AddItem(kernel.NewUUID(), 1, kernel.JsonSpec{}))
		}

		err := c.AddItem(kernel.NewUUID(), 1, kernel.JsonSpec{})

		assert.Equal(t, cart.ErrCartIsFull, err)
		assert.Len(t, c.Items(), 200)
	})

	t.Run("rejects mutation while locked", func(t *testing.T) {
		c := newCart(t)
		require.NoError(t, c.AddItem(productID, 1, kernel.JsonSpec{}))
		require.NoError(t, c.Lock())

		err := c.AddItem(kernel.NewUUID(), 1, kernel.JsonSpec{})

		assert.Equal(t, cart.ErrCartIsLocked, err)
	})

	t.Run("records added then updated events", func(t *testing.T) {
		c := newCart(t)
		c.ClearPendingEvents()

		require.NoError(t, c.AddItem(productID, 2, kernel.JsonSpec{}))
		require.NoError(t, c.AddItem(productID, 3, kernel.JsonSpec{}))

		events := c.PendingEvents()
		require.Len(t, events, 2)
		assert.Equal(t, "cart.item_added", events[0].EventName())
		assert.Equal(t, "cart.item_updated", events[1].EventName())
	})
}

func TestCart_UpdateQuantity(t *testing.T) {
	productID := kernel.NewUUID()

	t.Run("replaces quantity of existing line", func(t *testing.T) {
		c := newCart(t)
		require.NoError(t, c.AddItem(productID, 2, kernel.JsonSpec{}))

		err := c.UpdateQuantity(productID, 7)

		require.NoError(t, err)
		assert.Equal(t, 7, c.Item(productID).Quantity())
	})

	t.Run("fails for absent product", func(t *testing.T) {
		c := newCart(t)

		err := c.UpdateQuantity(productID, 7)

		assert.Equal(t, cart.ErrProductNotInCart, err)
	})

	t.Run("fails above cap without mutating", func(t *testing.T) {
		c := newCart(t)
		require.NoError(t, c.AddItem(productID, 2, kernel.JsonSpec{}))

		err := c.UpdateQuantity(productID, 1001)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, 2, c.Item(productID).Quantity())
	})

	t.Run("fails while locked", func(t *testing.T) {
		c := newCart(t)
		require.NoError(t, c.AddItem(productID, 2, kernel.JsonSpec{}))
		require.NoError(t, c.Lock())

		err := c.UpdateQuantity(productID, 7)

		assert.Equal(t, cart.ErrCartIsLocked, err)
	})
}

func TestCart_RemoveItem(t *testing.T) {
	productID := kernel.NewUUID()

	t.Run("removes existing line and records event", func(t *testing.T) {
		c := newCart(t)
		require.NoError(t, c.AddItem(productID, 2, kernel.JsonSpec{}))
		c.ClearPendingEvents()

		err := c.RemoveItem(productID)

		require.NoError(t, err)
		assert.False(t, c.HasItem(productID))
		events := c.PendingEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "cart.item_removed", events[0].EventName())
	})

	t.Run("removing absent product is a no-op", func(t *testing.T) {
		c := newCart(t)
		c.ClearPendingEvents()

		err := c.RemoveItem(productID)

		require.NoError(t, err)
		assert.Empty(t, c.PendingEvents())
	})

	t.Run("fails while locked", func(t *testing.T) {
		c := newCart(t)
		require.NoError(t, c.AddItem(productID, 2, kernel.JsonSpec{}))
		require.NoError(t, c.Lock())

		assert.Equal(t, cart.ErrCartIsLocked, c.RemoveItem(productID))
	})
}

func TestCart_Clear(t *testing.T) {
	t.Run("drops all lines", func(t *testing.T) {
		c := newCart(t)
		require.NoError(t, c.AddItem(kernel.NewUUID(), 2, kernel.JsonSpec{}))
		require.NoError(t, c.AddItem(kernel.NewUUID(), 4, kernel.JsonSpec{}))

		require.NoError(t, c.Clear())

		assert.True(t, c.IsEmpty())
	})

	t.Run("fails while locked", func(t *testing.T) {
		c := newCart(t)
		require.NoError(t, c.AddItem(kernel.NewUUID(), 2, kernel.JsonSpec{}))
		require.NoError(t, c.Lock())

		assert.Equal(t, cart.ErrCartIsLocked, c.Clear())
	})
}

func TestCart_UpdateNotes(t *testing.T) {
	t.Run("trims and stores notes", func(t *testing.T) {
		c := newCart(t)

		require.NoError(t, c.UpdateNotes("  deliver to warehouse 3  "))

		assert.Equal(t, "deliver to warehouse 3", c.Notes())
	})

	t.Run("whitespace only clears notes", func(t *testing.T) {
		c := newCart(t)
		require.NoError(t, c.UpdateNotes("something"))

		require.NoError(t, c.UpdateNotes("   "))

		assert.Empty(t, c.Notes())
	})

	t.Run("rejects notes above 1000 characters", func(t *testing.T) {
		c := newCart(t)
		long := make([]byte, 1001)
		for i := range long {
			long[i] = 'a'
		}

		err := c.UpdateNotes(string(long))

		assert.Equal(t, cart.ErrNotesTooLong, err)
	})
}

func TestCart_LockUnlock(t *testing.T) {
	t.Run("lock requires at least one item", func(t *testing.T) {
		c := newCart(t)

		err := c.Lock()

		assert.Equal(t, cart.ErrCannotLockEmptyCart, err)
		assert.False(t, c.IsLocked())
	})

	t.Run("lock records event and is idempotent", func(t *testing.T) {
		c := newCart(t)
		require.NoError(t, c.AddItem(kernel.NewUUID(), 1, kernel.JsonSpec{}))
		c.ClearPendingEvents()

		require.NoError(t, c.Lock())
		require.NoError(t, c.Lock())

		assert.True(t, c.IsLocked())
		events := c.PendingEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "cart.locked", events[0].EventName())
	})

	t.Run("unlock releases the cart and is idempotent", func(t *testing.T) {
		c := newCart(t)
		require.NoError(t, c.AddItem(kernel.NewUUID(), 1, kernel.JsonSpec{}))
		require.NoError(t, c.Lock())

		require.NoError(t, c.Unlock())
		require.NoError(t, c.Unlock())

		assert.False(t, c.IsLocked())
		require.NoError(t, c.AddItem(kernel.NewUUID(), 1, kernel.JsonSpec{}))
	})
}
