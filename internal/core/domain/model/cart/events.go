package cart

import "marketplace/internal/core/domain/model/kernel"

// CreatedEvent is recorded when a new cart is opened for a buyer.
type CreatedEvent struct {
	kernel.EventBase
	CartID  kernel.UUID
	OwnerID kernel.UUID
}

func (CreatedEvent) EventName() string { return "cart.created" }

// ItemAddedEvent is recorded when a product enters the cart as a new line.
type ItemAddedEvent struct {
	kernel.EventBase
	CartID    kernel.UUID
	OwnerID   kernel.UUID
	ProductID kernel.UUID
	Quantity  int
}

func (ItemAddedEvent) EventName() string { return "cart.item_added" }

// ItemUpdatedEvent is recorded when an existing line's quantity changes,
// including the merge performed by AddItem on an already-present product.
type ItemUpdatedEvent struct {
	kernel.EventBase
	CartID      kernel.UUID
	OwnerID     kernel.UUID
	ProductID   kernel.UUID
	NewQuantity int
}

func (ItemUpdatedEvent) EventName() string { return "cart.item_updated" }

// ItemRemovedEvent is recorded when a line leaves the cart.
type ItemRemovedEvent struct {
	kernel.EventBase
	CartID    kernel.UUID
	OwnerID   kernel.UUID
	ProductID kernel.UUID
}

func (ItemRemovedEvent) EventName() string { return "cart.item_removed" }

// LockedEvent is recorded when the cart is locked for conversion into a
// quote request.
type LockedEvent struct {
	kernel.EventBase
	CartID  kernel.UUID
	OwnerID kernel.UUID
}

func (LockedEvent) EventName() string { return "cart.locked" }
