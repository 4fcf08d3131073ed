package cart

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	// maxItems is the hard cap on distinct product lines per cart.
	maxItems = 200
	// maxQuantityPerProduct caps the total quantity of a single product,
	// including merges of repeated AddItem calls.
	maxQuantityPerProduct = 1000
	// maxNotesLength caps the free-text notes attached to the cart.
	maxNotesLength = 1000
)

// Domain errors for cart operations.
var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not created
	// through NewCart or RestoreCart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")
	// ErrCartIsLocked is returned by every mutation except Lock/Unlock while
	// the cart is locked.
	ErrCartIsLocked = errs.NewDomainRuleViolationError("cannot modify locked cart")
	// ErrCartIsFull is returned when the distinct-line cap is reached.
	ErrCartIsFull = errs.NewDomainRuleViolationError("cannot add more than 200 items to cart")
	// ErrProductNotInCart is returned when operating on a product the cart does not hold.
	ErrProductNotInCart = errs.NewDomainRuleViolationError("product not found in cart")
	// ErrCannotLockEmptyCart is returned when locking a cart with no items.
	ErrCannotLockEmptyCart = errs.NewDomainRuleViolationError("cannot lock empty cart")
	// ErrNotesTooLong is returned when notes exceed the length cap.
	ErrNotesTooLong = errs.NewDomainRuleViolationError("notes cannot exceed 1000 characters")
)

// Cart is the aggregate root for a buyer's shopping cart.
//
// Invariants:
//   - at most 200 distinct product lines
//   - total quantity per product within [1, 1000], merges included
//   - no mutation while locked (Lock/Unlock themselves excepted)
//   - a cart can only be locked with at least one item
//
// Validation happens before any field write, so a failed operation leaves the
// cart exactly as it was.
type Cart struct {
	kernel.Entity

	ownerID       kernel.UUID
	notes         string
	lastTouchedAt time.Time
	locked        bool
	items         []*CartItem

	guard guard.ConstructorGuard
}

// NewCart opens an empty, unlocked cart for the given owner.
func NewCart(ownerID kernel.UUID) (*Cart, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	c := &Cart{
		Entity:        kernel.NewEntity(),
		ownerID:       ownerID,
		lastTouchedAt: time.Now().UTC(),
		guard:         guard.NewConstructorGuard(),
	}
	c.RecordEvent(CreatedEvent{EventBase: kernel.NewEventBase(), CartID: c.ID(), OwnerID: ownerID})
	return c, nil
}

// RestoreCart reconstructs a cart aggregate from persistence, including its
// owned items. No events are recorded.
func RestoreCart(
	id kernel.UUID,
	createdAt time.Time,
	updatedAt *time.Time,
	concurrencyToken string,
	ownerID kernel.UUID,
	notes string,
	lastTouchedAt time.Time,
	locked bool,
	items []*CartItem,
) (*Cart, error) {
	entity, err := kernel.RestoreEntity(id, createdAt, updatedAt, concurrencyToken)
	if err != nil {
		return nil, err
	}
	if err = ownerID.Validate(); err != nil {
		return nil, err
	}
	if len(items) > maxItems {
		return nil, ErrCartIsFull
	}

	return &Cart{
		Entity:        entity,
		ownerID:       ownerID,
		notes:         notes,
		lastTouchedAt: lastTouchedAt,
		locked:        locked,
		items:         items,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Cart was created through a constructor.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// OwnerID returns the buyer who owns the cart.
func (c *Cart) OwnerID() kernel.UUID {
	return c.ownerID
}

// Notes returns the free-text notes, empty if none.
func (c *Cart) Notes() string {
	return c.notes
}

// LastTouchedAt returns the UTC time of the last cart activity.
func (c *Cart) LastTouchedAt() time.Time {
	return c.lastTouchedAt
}

// IsLocked reports whether the cart is locked for quote request conversion.
func (c *Cart) IsLocked() bool {
	return c.locked
}

// Items returns a copy of the cart's lines in insertion order.
func (c *Cart) Items() []*CartItem {
	items := make([]*CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// TotalItems returns the summed quantity across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity()
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// HasItem reports whether the cart holds a line for the given product.
func (c *Cart) HasItem(productID kernel.UUID) bool {
	return c.findItem(productID) != nil
}

// Item returns the line for the given product, nil if absent.
func (c *Cart) Item(productID kernel.UUID) *CartItem {
	return c.findItem(productID)
}

// AddItem puts a product into the cart. If the product is already present the
// quantities are merged into the existing line (re-validated against the
// per-product cap) and the selected specs are replaced; otherwise a new line
// is appended.
func (c *Cart) AddItem(productID kernel.UUID, quantity int, selectedSpecs kernel.JsonSpec) error {
	if c.locked {
		return ErrCartIsLocked
	}
	if err := productID.Validate(); err != nil {
		return err
	}
	if quantity < 1 || quantity > maxQuantityPerProduct {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxQuantityPerProduct)
	}

	if existing := c.findItem(productID); existing != nil {
		newQuantity := existing.Quantity() + quantity
		if newQuantity > maxQuantityPerProduct {
			return errs.NewValueIsOutOfRangeError("total quantity", newQuantity, 1, maxQuantityPerProduct)
		}

		if err := existing.updateQuantity(newQuantity); err != nil {
			return err
		}
		existing.updateSelectedSpecs(selectedSpecs)

		c.touch()
		c.RecordEvent(ItemUpdatedEvent{
			EventBase:   kernel.NewEventBase(),
			CartID:      c.ID(),
			OwnerID:     c.ownerID,
			ProductID:   productID,
			NewQuantity: newQuantity,
		})
		return nil
	}

	if len(c.items) >= maxItems {
		return ErrCartIsFull
	}

	c.items = append(c.items, newCartItem(c.ID(), productID, quantity, selectedSpecs))
	c.touch()
	c.RecordEvent(ItemAddedEvent{
		EventBase: kernel.NewEventBase(),
		CartID:    c.ID(),
		OwnerID:   c.ownerID,
		ProductID: productID,
		Quantity:  quantity,
	})
	return nil
}

// UpdateQuantity replaces the quantity of an existing line.
func (c *Cart) UpdateQuantity(productID kernel.UUID, quantity int) error {
	if c.locked {
		return ErrCartIsLocked
	}

	item := c.findItem(productID)
	if item == nil {
		return ErrProductNotInCart
	}

	if err := item.updateQuantity(quantity); err != nil {
		return err
	}

	c.touch()
	c.RecordEvent(ItemUpdatedEvent{
		EventBase:   kernel.NewEventBase(),
		CartID:      c.ID(),
		OwnerID:     c.ownerID,
		ProductID:   productID,
		NewQuantity: quantity,
	})
	return nil
}

// RemoveItem deletes the line for the given product. Removing an absent
// product is a no-op.
func (c *Cart) RemoveItem(productID kernel.UUID) error {
	if c.locked {
		return ErrCartIsLocked
	}

	for idx, item := range c.items {
		if item.ProductID().IsEqual(productID) {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			c.touch()
			c.RecordEvent(ItemRemovedEvent{
				EventBase: kernel.NewEventBase(),
				CartID:    c.ID(),
				OwnerID:   c.ownerID,
				ProductID: productID,
			})
			return nil
		}
	}

	return nil
}

// Clear removes all lines. Clearing an empty cart is a no-op.
func (c *Cart) Clear() error {
	if c.locked {
		return ErrCartIsLocked
	}

	if len(c.items) > 0 {
		c.items = nil
		c.touch()
	}
	return nil
}

// UpdateNotes replaces the cart notes. Whitespace-only input clears them.
func (c *Cart) UpdateNotes(notes string) error {
	if c.locked {
		return ErrCartIsLocked
	}

	trimmed := strings.TrimSpace(notes)
	if len(trimmed) > maxNotesLength {
		return ErrNotesTooLong
	}

	c.notes = trimmed
	c.touch()
	return nil
}

// Lock freezes the cart for conversion into a quote request.
// Locking an already locked cart is a no-op; locking an empty cart fails.
func (c *Cart) Lock() error {
	if c.locked {
		return nil
	}
	if len(c.items) == 0 {
		return ErrCannotLockEmptyCart
	}

	c.locked = true
	c.touch()
	c.RecordEvent(LockedEvent{EventBase: kernel.NewEventBase(), CartID: c.ID(), OwnerID: c.ownerID})
	return nil
}

// Unlock releases a locked cart. Unlocking an unlocked cart is a no-op.
func (c *Cart) Unlock() error {
	if !c.locked {
		return nil
	}

	c.locked = false
	c.touch()
	return nil
}

func (c *Cart) findItem(productID kernel.UUID) *CartItem {
	for _, item := range c.items {
		if item.ProductID().IsEqual(productID) {
			return item
		}
	}
	return nil
}

func (c *Cart) touch() {
	c.lastTouchedAt = time.Now().UTC()
	c.MarkModified()
}
